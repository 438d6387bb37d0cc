package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/metrics"
	"github.com/feral-file/ff-account-sync/internal/providers/covalent"
	"github.com/feral-file/ff-account-sync/internal/providers/etherscan"
	"github.com/feral-file/ff-account-sync/internal/ratelimit"
	"github.com/feral-file/ff-account-sync/internal/store"
)

const (
	actionTxList = "txlist"
)

// Fetcher retrieves pages of account history from the network's explorer.
// It never returns an error; failures are reported through the page status.
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/fetcher.go -package=mocks -mock_names=Fetcher=MockFetcher
type Fetcher interface {
	// FetchPage fetches one page of native transactions of scope.
	// Ascending pages start at boundaryBlock; descending pages end at it.
	FetchPage(ctx context.Context, network domain.Network, wallet, scope string, boundaryBlock uint64, ascending bool, page, pageSize int) Page

	// FetchTransferBatch fetches one ascending batch of token transfer events after lastBlock
	FetchTransferBatch(ctx context.Context, network domain.Network, wallet string, nft bool, lastBlock uint64) EventPage
}

// Config holds the fetcher configuration
type Config struct {
	TransferBatchSize int
}

type fetcher struct {
	config    Config
	etherscan etherscan.Client
	covalent  covalent.Client
	store     store.Store
}

// New creates a fetcher dispatching on the network's provider
func New(cfg Config, etherscanClient etherscan.Client, covalentClient covalent.Client, st store.Store) Fetcher {
	if cfg.TransferBatchSize <= 0 {
		cfg.TransferBatchSize = domain.DEFAULT_TRANSFER_BATCH_SIZE
	}
	return &fetcher{
		config:    cfg,
		etherscan: etherscanClient,
		covalent:  covalentClient,
		store:     st,
	}
}

func (f *fetcher) FetchPage(ctx context.Context, network domain.Network, wallet, scope string, boundaryBlock uint64, ascending bool, page, pageSize int) Page {
	var records []domain.RawTransaction
	var err error

	switch network.Provider {
	case domain.ProviderEtherscan:
		records, err = f.etherscan.ListTransactions(ctx, network, scope, boundaryBlock, ascending, page, pageSize)
	case domain.ProviderCovalent:
		records, err = f.covalent.ListTransactions(ctx, network, scope, ascending, page, pageSize)
		if err == nil {
			records, err = f.dropCached(ctx, network, wallet, records)
		}
	default:
		err = fmt.Errorf("%w: %s", domain.ErrProviderNotConfigured, network.Provider)
	}

	status := f.classify(ctx, err, len(records))
	metrics.PagesFetched.WithLabelValues(string(network.Provider), actionTxList, string(status)).Inc()
	metrics.RecordsFetched.WithLabelValues(string(network.Provider), actionTxList).Add(float64(len(records)))

	if status == PageStatusFailed {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to fetch transaction page: %w", err),
			zap.String("chain_id", network.ChainID.String()),
			zap.String("wallet", wallet),
			zap.String("scope", scope),
			zap.Uint64("boundary_block", boundaryBlock),
			zap.Bool("ascending", ascending),
			zap.Int("page", page),
		)
	}
	if status.Interrupted() {
		return Page{Status: status}
	}

	return Page{Status: status, Records: records}
}

func (f *fetcher) FetchTransferBatch(ctx context.Context, network domain.Network, wallet string, nft bool, lastBlock uint64) EventPage {
	action := etherscan.ActionTokenTx
	if nft {
		action = etherscan.ActionTokenNFTTx
	}

	var events []domain.RawTransferEvent
	var err error

	switch network.Provider {
	case domain.ProviderEtherscan:
		events, err = f.etherscan.ListTransferEvents(ctx, network, wallet, action, lastBlock+1, f.config.TransferBatchSize)
	case domain.ProviderCovalent:
		// transfer batches are not served by this provider
	default:
		err = fmt.Errorf("%w: %s", domain.ErrProviderNotConfigured, network.Provider)
	}

	status := f.classify(ctx, err, len(events))
	metrics.PagesFetched.WithLabelValues(string(network.Provider), string(action), string(status)).Inc()
	metrics.RecordsFetched.WithLabelValues(string(network.Provider), string(action)).Add(float64(len(events)))

	if status == PageStatusFailed {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to fetch transfer batch: %w", err),
			zap.String("chain_id", network.ChainID.String()),
			zap.String("wallet", wallet),
			zap.String("action", string(action)),
			zap.Uint64("last_block", lastBlock),
		)
	}
	if status.Interrupted() {
		return EventPage{Status: status}
	}

	return EventPage{Status: status, Events: events}
}

// dropCached removes records whose hash is already in the local cache
func (f *fetcher) dropCached(ctx context.Context, network domain.Network, wallet string, records []domain.RawTransaction) ([]domain.RawTransaction, error) {
	if len(records) == 0 {
		return records, nil
	}

	hashes := make([]string, 0, len(records))
	for _, r := range records {
		hashes = append(hashes, strings.ToLower(r.Hash))
	}

	existing, err := f.store.ExistingTransactionHashes(ctx, domain.NormalizeAddress(wallet), network.ChainID, hashes)
	if err != nil {
		return nil, fmt.Errorf("failed to check cached transactions: %w", err)
	}

	filtered := records[:0]
	for _, r := range records {
		if !existing[strings.ToLower(r.Hash)] {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (f *fetcher) classify(ctx context.Context, err error, count int) PageStatus {
	switch {
	case err != nil && IsCancellation(ctx, err):
		return PageStatusCancelled
	case err != nil:
		return PageStatusFailed
	case count == 0:
		return PageStatusEmpty
	default:
		return PageStatusOK
	}
}

// IsCancellation reports whether err stems from the operation being cancelled rather than a remote failure
func IsCancellation(ctx context.Context, err error) bool {
	return ctx.Err() != nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ratelimit.ErrProxyClosed)
}
