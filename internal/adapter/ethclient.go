package adapter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthClient is the subset of the JSON-RPC API used to verify transactions and read token contracts
//
//go:generate mockgen -source=ethclient.go -destination=../mocks/ethclient.go -package=mocks -mock_names=EthClient=MockEthClient,EthClientDialer=MockEthClientDialer
type EthClient interface {
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	// HeaderByNumber with a nil number returns the latest header
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// CallContract executes a read-only call at blockNumber, or at the latest block when nil
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)

	Close()
}

// EthClientDialer opens one RPC connection per network endpoint
type EthClientDialer interface {
	Dial(ctx context.Context, rpcURL string) (EthClient, error)
}

type ethclientDialer struct{}

// NewEthClientDialer returns a dialer backed by go-ethereum's ethclient
func NewEthClientDialer() EthClientDialer {
	return ethclientDialer{}
}

func (ethclientDialer) Dial(ctx context.Context, rpcURL string) (EthClient, error) {
	return ethclient.DialContext(ctx, rpcURL)
}
