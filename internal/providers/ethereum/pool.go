package ethereum

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/ratelimit"
)

// ErrRPCNotConfigured is returned for networks without an RPC url
var ErrRPCNotConfigured = fmt.Errorf("rpc url not configured")

// Pool hands out one lazily dialed client per chain
//
//go:generate mockgen -source=pool.go -destination=../../mocks/ethereum_pool.go -package=mocks -mock_names=Pool=MockEthereumPool
type Pool interface {
	// Client returns the client of the network, dialing it on first use
	Client(ctx context.Context, network domain.Network) (EthereumClient, error)

	// Close closes every dialed client
	Close()
}

type pool struct {
	mu             sync.Mutex
	dialer         adapter.EthClientDialer
	rateLimitProxy ratelimit.Proxy
	clients        map[domain.ChainID]EthereumClient
}

func NewPool(dialer adapter.EthClientDialer, rateLimitProxy ratelimit.Proxy) Pool {
	return &pool{
		dialer:         dialer,
		rateLimitProxy: rateLimitProxy,
		clients:        make(map[domain.ChainID]EthereumClient),
	}
}

func (p *pool) Client(ctx context.Context, network domain.Network) (EthereumClient, error) {
	if network.RPCURL == "" {
		return nil, fmt.Errorf("%w: chain %s", ErrRPCNotConfigured, network.ChainID)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.clients[network.ChainID]; ok {
		return client, nil
	}

	ethClient, err := p.dialer.Dial(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc for chain %s: %w", network.ChainID, err)
	}

	client := NewClient(network.ChainID, ethClient, p.rateLimitProxy)
	p.clients[network.ChainID] = client

	logger.Info("Dialed rpc client", zap.String("chain_id", network.ChainID.String()))
	return client, nil
}

func (p *pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for chainID, client := range p.clients {
		client.Close()
		delete(p.clients, chainID)
	}
}
