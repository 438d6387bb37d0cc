package syncer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/fetcher"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/metrics"
	"github.com/feral-file/ff-account-sync/internal/providers/ethereum"
	"github.com/feral-file/ff-account-sync/internal/reconciler"
	"github.com/feral-file/ff-account-sync/internal/store"
)

const (
	directionUpward   = "upward"
	directionDownward = "downward"

	defaultHydrationBatchSize = 50
	defaultVerifyBatchSize    = 50
	defaultMaxVerifyAttempts  = 5
	defaultMaxHydrateAttempts = 3
)

// Config holds the paging parameters of the sync engine
type Config struct {
	PageSize           int
	PageBudget         int
	ResetMarkerVersion int
	HydrationBatchSize int
	VerifyBatchSize    int
	MaxVerifyAttempts  int
	MaxHydrateAttempts int
}

// Syncer keeps the local cache of an account consistent with the explorer
//
//go:generate mockgen -source=syncer.go -destination=../mocks/syncer.go -package=mocks -mock_names=Syncer=MockSyncer
type Syncer interface {
	// SyncAccountTransactions runs one sync cycle of the native transactions of scope.
	// lastKnownBlock 0 starts a downward sync from the head; otherwise one ascending page is read.
	// Callers must serialize calls per (wallet, chain, scope).
	SyncAccountTransactions(ctx context.Context, network domain.Network, wallet, scope string, lastKnownBlock uint64) domain.SyncOutcome

	// Sync runs SyncAccountTransactions for the wallet from its stored native checkpoint
	Sync(ctx context.Context, network domain.Network, wallet string) domain.SyncOutcome

	// ReadTransfers reads one batch of token transfer events after the account's event checkpoint
	// and returns the number of events processed
	ReadTransfers(ctx context.Context, network domain.Network, wallet string, nft bool) (int, error)

	// CheckResetMarker applies the reset marker of an account and reports whether a reset happened
	CheckResetMarker(ctx context.Context, wallet string, chainID domain.ChainID) (bool, error)

	// GetSyncState reports the reset state machine state of an account
	GetSyncState(ctx context.Context, wallet string, chainID domain.ChainID) (domain.SyncState, error)

	// FetchOlderThan returns at most one page of cached transactions older than before,
	// extending the cache downward once when it holds less than a page
	FetchOlderThan(ctx context.Context, network domain.Network, wallet string, before int64) ([]domain.TransactionMeta, error)

	// HydrateTransactions fills in the execution data of cached transaction skeletons
	HydrateTransactions(ctx context.Context, network domain.Network, wallet string) (int, error)

	// VerifyUnknownTokens reads the ERC20 metadata of queued contracts over RPC
	VerifyUnknownTokens(ctx context.Context, network domain.Network) (int, error)
}

type syncer struct {
	config     Config
	fetcher    fetcher.Fetcher
	reconciler reconciler.Reconciler
	store      store.Store
	ethPool    ethereum.Pool
	clock      adapter.Clock
}

// New creates a syncer
func New(
	cfg Config,
	f fetcher.Fetcher,
	r reconciler.Reconciler,
	st store.Store,
	ethPool ethereum.Pool,
	clock adapter.Clock,
) Syncer {
	if cfg.PageSize <= 0 {
		cfg.PageSize = domain.DEFAULT_PAGE_SIZE
	}
	if cfg.PageBudget <= 0 {
		cfg.PageBudget = domain.DEFAULT_PAGE_BUDGET
	}
	if cfg.ResetMarkerVersion <= 0 {
		cfg.ResetMarkerVersion = domain.DEFAULT_RESET_MARKER_VERSION
	}
	if cfg.HydrationBatchSize <= 0 {
		cfg.HydrationBatchSize = defaultHydrationBatchSize
	}
	if cfg.VerifyBatchSize <= 0 {
		cfg.VerifyBatchSize = defaultVerifyBatchSize
	}
	if cfg.MaxVerifyAttempts <= 0 {
		cfg.MaxVerifyAttempts = defaultMaxVerifyAttempts
	}
	if cfg.MaxHydrateAttempts <= 0 {
		cfg.MaxHydrateAttempts = defaultMaxHydrateAttempts
	}

	return &syncer{
		config:     cfg,
		fetcher:    f,
		reconciler: r,
		store:      st,
		ethPool:    ethPool,
		clock:      clock,
	}
}

// syncRun accumulates the state of one orchestrator call
type syncRun struct {
	merged      []domain.Transaction
	head        uint64
	headFound   bool
	interrupted bool
	overflowed  bool
}

func (r *syncRun) setHead(block uint64) {
	r.head = block
	r.headFound = true
}

func (r *syncRun) status() domain.SyncStatus {
	switch {
	case r.overflowed:
		return domain.SyncStatusNeedsFullRefresh
	case len(r.merged) > 0:
		return domain.SyncStatusApplied
	case r.interrupted:
		return domain.SyncStatusTransientFailure
	default:
		return domain.SyncStatusEmpty
	}
}

func (s *syncer) SyncAccountTransactions(ctx context.Context, network domain.Network, wallet, scope string, lastKnownBlock uint64) (outcome domain.SyncOutcome) {
	wallet = domain.NormalizeAddress(wallet)
	scope = domain.NormalizeAddress(scope)
	if scope == "" {
		scope = wallet
	}

	key := domain.CheckpointKey{
		Wallet:  wallet,
		ChainID: network.ChainID,
		Scope:   scope,
		Kind:    domain.CheckpointNativeTx,
	}
	chain := network.ChainID.String()
	direction := directionUpward
	if lastKnownBlock == 0 {
		direction = directionDownward
	}

	start := s.clock.Now()
	run := &syncRun{}

	defer func() {
		latest := lastKnownBlock
		if run.headFound {
			latest = run.head
		}

		// The head is written even when the call was cancelled
		if err := s.store.SetLatestBlock(context.WithoutCancel(ctx), key, latest); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to write latest block: %w", err),
				zap.String("chain_id", chain),
				zap.String("wallet", wallet),
				zap.Uint64("latest_block", latest),
			)
			metrics.ErrorsTotal.WithLabelValues("syncer", "checkpoint").Inc()
		} else {
			metrics.LatestBlock.WithLabelValues(chain).Set(float64(latest))
		}

		outcome = domain.SyncOutcome{
			Status:       run.status(),
			Transactions: run.merged,
			LatestBlock:  latest,
		}

		metrics.SyncRunsTotal.WithLabelValues(chain, direction, string(outcome.Status)).Inc()
		metrics.SyncDuration.WithLabelValues(chain, direction).Observe(s.clock.Since(start).Seconds())

		logger.InfoCtx(ctx, "Transaction sync finished",
			zap.String("chain_id", chain),
			zap.String("wallet", wallet),
			zap.String("scope", scope),
			zap.String("direction", direction),
			zap.String("status", string(outcome.Status)),
			zap.Int("merged", len(run.merged)),
			zap.Uint64("latest_block", latest),
		)
	}()

	if lastKnownBlock == 0 {
		s.syncDownward(ctx, network, wallet, scope, domain.DOWNWARD_SYNC_START_BLOCK, run)
		return
	}

	s.syncUpward(ctx, network, wallet, scope, lastKnownBlock, run)
	return
}

// syncDownward fetches descending pages ending at fromBlock until the page budget is spent or a short page is seen
func (s *syncer) syncDownward(ctx context.Context, network domain.Network, wallet, scope string, fromBlock uint64, run *syncRun) {
	key := domain.CheckpointKey{Wallet: wallet, ChainID: network.ChainID, Scope: scope, Kind: domain.CheckpointNativeTx}

	// Oldest block parsed so far in this run
	var oldest uint64
	seen := false

	for page := 1; page <= s.config.PageBudget; page++ {
		p := s.fetcher.FetchPage(ctx, network, wallet, scope, fromBlock, false, page, s.config.PageSize)
		if p.Status.Interrupted() {
			run.interrupted = true
			return
		}
		if p.Status == fetcher.PageStatusEmpty {
			// The previous page ended exactly at the oldest record
			if seen {
				s.recordEarliest(ctx, key, oldest)
			}
			return
		}

		blocks := s.merge(ctx, network, wallet, p.Records, run)
		if !run.headFound && len(blocks) > 0 {
			run.setHead(blocks[0])
		}
		if len(blocks) > 0 {
			oldest = blocks[len(blocks)-1]
			seen = true
		}

		if len(p.Records) < s.config.PageSize {
			// Oldest page: nothing exists below its last record
			if seen {
				s.recordEarliest(ctx, key, oldest)
			}
			return
		}
	}
}

func (s *syncer) recordEarliest(ctx context.Context, key domain.CheckpointKey, earliest uint64) {
	if err := s.store.SetEarliestBlock(ctx, key, earliest); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to write earliest block: %w", err),
			zap.String("chain_id", key.ChainID.String()),
			zap.String("wallet", key.Wallet),
			zap.Uint64("earliest_block", earliest),
		)
		metrics.ErrorsTotal.WithLabelValues("syncer", "checkpoint").Inc()
	}
}

// syncUpward fetches one ascending page after lastKnownBlock. A full page means the gap is
// larger than one page can cover, so the cache is wiped and rebuilt from the head.
func (s *syncer) syncUpward(ctx context.Context, network domain.Network, wallet, scope string, lastKnownBlock uint64, run *syncRun) {
	p := s.fetcher.FetchPage(ctx, network, wallet, scope, lastKnownBlock+1, true, 1, s.config.PageSize)
	if p.Status.Interrupted() {
		run.interrupted = true
		return
	}
	if p.Status == fetcher.PageStatusEmpty {
		return
	}

	if len(p.Records) >= s.config.PageSize {
		s.fullResync(ctx, network, wallet, scope, run)
		return
	}

	blocks := s.merge(ctx, network, wallet, p.Records, run)
	if len(blocks) > 0 {
		run.setHead(blocks[len(blocks)-1])
	}
}

func (s *syncer) fullResync(ctx context.Context, network domain.Network, wallet, scope string, run *syncRun) {
	chain := network.ChainID.String()
	logger.WarnCtx(ctx, "Upward page overflowed, wiping cache for a full resync",
		zap.String("chain_id", chain),
		zap.String("wallet", wallet),
		zap.String("scope", scope),
	)
	metrics.FullResyncs.WithLabelValues(chain).Inc()
	run.overflowed = true

	if err := s.store.DeleteChainTransactions(ctx, wallet, network.ChainID); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to purge cached transactions: %w", err), zap.String("chain_id", chain), zap.String("wallet", wallet))
		metrics.ErrorsTotal.WithLabelValues("syncer", "purge").Inc()
	}

	key := domain.CheckpointKey{Wallet: wallet, ChainID: network.ChainID, Scope: scope, Kind: domain.CheckpointNativeTx}
	if err := s.store.ResetCheckpoint(ctx, key); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to reset checkpoint: %w", err), zap.String("chain_id", chain), zap.String("wallet", wallet))
		metrics.ErrorsTotal.WithLabelValues("syncer", "checkpoint").Inc()
	}

	s.syncDownward(ctx, network, wallet, scope, domain.RESYNC_START_BLOCK, run)
}

// merge upserts the page records and returns the blocks of the records that parsed, in page order
func (s *syncer) merge(ctx context.Context, network domain.Network, wallet string, records []domain.RawTransaction, run *syncRun) []uint64 {
	blocks := make([]uint64, 0, len(records))

	for i := range records {
		tx, err := records[i].ToTransaction(wallet, network.ChainID)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping malformed transaction record",
				zap.String("chain_id", network.ChainID.String()),
				zap.String("hash", records[i].Hash),
				zap.Error(err),
			)
			continue
		}
		blocks = append(blocks, tx.BlockNumber)

		if err := s.store.UpsertTransaction(ctx, *tx); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to upsert transaction: %w", err),
				zap.String("chain_id", network.ChainID.String()),
				zap.String("wallet", wallet),
				zap.String("hash", tx.Hash),
			)
			metrics.ErrorsTotal.WithLabelValues("syncer", "upsert_transaction").Inc()
			continue
		}
		run.merged = append(run.merged, *tx)
	}

	return blocks
}

func (s *syncer) Sync(ctx context.Context, network domain.Network, wallet string) domain.SyncOutcome {
	key := domain.AccountCheckpoint(wallet, network.ChainID, domain.CheckpointNativeTx)
	checkpoint, err := s.store.GetCheckpoint(ctx, key)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to read checkpoint: %w", err),
			zap.String("chain_id", network.ChainID.String()),
			zap.String("wallet", key.Wallet),
		)
		return domain.SyncOutcome{Status: domain.SyncStatusTransientFailure}
	}

	var lastKnownBlock uint64
	if checkpoint != nil {
		lastKnownBlock = checkpoint.LatestBlock
	}
	return s.SyncAccountTransactions(ctx, network, key.Wallet, key.Scope, lastKnownBlock)
}

func (s *syncer) ReadTransfers(ctx context.Context, network domain.Network, wallet string, nft bool) (int, error) {
	kind := domain.CheckpointERC20Events
	if nft {
		kind = domain.CheckpointNFTEvents
	}
	key := domain.AccountCheckpoint(wallet, network.ChainID, kind)

	checkpoint, err := s.store.GetCheckpoint(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s checkpoint: %w", kind, err)
	}
	var lastBlock uint64
	if checkpoint != nil {
		lastBlock = checkpoint.LatestBlock
	}

	page := s.fetcher.FetchTransferBatch(ctx, network, key.Wallet, nft, lastBlock)
	if page.Status != fetcher.PageStatusOK {
		return 0, nil
	}

	inserted, err := s.reconciler.WriteEvents(ctx, network, key.Wallet, page.Events, nft)
	if err != nil {
		return 0, err
	}

	if nft {
		err = s.reconciler.ReconcileNonFungible(ctx, network, key.Wallet, page.Events)
	} else {
		err = s.reconciler.ReconcileFungible(ctx, network, key.Wallet, page.Events)
	}
	if err != nil {
		return 0, err
	}

	if block, ok := lastEventBlock(page.Events); ok {
		if err := s.store.SetLatestBlock(ctx, key, block); err != nil {
			return 0, fmt.Errorf("failed to write %s checkpoint: %w", kind, err)
		}
	}

	logger.InfoCtx(ctx, "Transfer events read",
		zap.String("chain_id", network.ChainID.String()),
		zap.String("wallet", key.Wallet),
		zap.String("kind", string(kind)),
		zap.Int("events", len(page.Events)),
		zap.Int("inserted", inserted),
	)

	return len(page.Events), nil
}

// lastEventBlock returns the block of the last event whose block parses
func lastEventBlock(events []domain.RawTransferEvent) (uint64, bool) {
	for i := len(events) - 1; i >= 0; i-- {
		if block, err := events[i].Block(); err == nil {
			return block, true
		}
	}
	return 0, false
}

func (s *syncer) CheckResetMarker(ctx context.Context, wallet string, chainID domain.ChainID) (bool, error) {
	wallet = domain.NormalizeAddress(wallet)

	applied, err := s.store.ApplyResetMarker(ctx, wallet, chainID, s.config.ResetMarkerVersion)
	if err != nil {
		return false, fmt.Errorf("failed to apply reset marker: %w", err)
	}

	if applied {
		metrics.ResetMarkersApplied.WithLabelValues(chainID.String()).Inc()
		logger.InfoCtx(ctx, "Reset marker applied",
			zap.String("chain_id", chainID.String()),
			zap.String("wallet", wallet),
			zap.Int("version", s.config.ResetMarkerVersion),
		)
	}

	return applied, nil
}

func (s *syncer) GetSyncState(ctx context.Context, wallet string, chainID domain.ChainID) (domain.SyncState, error) {
	return s.store.GetSyncState(ctx, domain.NormalizeAddress(wallet), chainID, s.config.ResetMarkerVersion)
}

func (s *syncer) FetchOlderThan(ctx context.Context, network domain.Network, wallet string, before int64) ([]domain.TransactionMeta, error) {
	wallet = domain.NormalizeAddress(wallet)

	metas, err := s.store.GetTransactionsOlderThan(ctx, wallet, network.ChainID, before, s.config.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached transactions: %w", err)
	}
	if len(metas) >= s.config.PageSize {
		return metas, nil
	}

	oldest, err := s.store.GetOldestTransactionBlock(ctx, wallet, network.ChainID)
	if err != nil {
		return nil, fmt.Errorf("failed to read oldest cached block: %w", err)
	}

	checkpoint, err := s.store.GetCheckpoint(ctx, domain.AccountCheckpoint(wallet, network.ChainID, domain.CheckpointNativeTx))
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint: %w", err)
	}
	var earliest uint64
	if checkpoint != nil {
		earliest = checkpoint.EarliestBlock
	}

	// Cache already reaches the start of the account history
	if oldest == 0 || oldest == earliest {
		return metas, nil
	}

	run := &syncRun{}
	s.syncDownward(ctx, network, wallet, wallet, oldest, run)
	logger.DebugCtx(ctx, "Extended cache below the oldest cached block",
		zap.String("chain_id", network.ChainID.String()),
		zap.String("wallet", wallet),
		zap.Uint64("oldest_block", oldest),
		zap.Int("merged", len(run.merged)),
	)

	metas, err = s.store.GetTransactionsOlderThan(ctx, wallet, network.ChainID, before, s.config.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached transactions: %w", err)
	}
	return metas, nil
}

func (s *syncer) HydrateTransactions(ctx context.Context, network domain.Network, wallet string) (int, error) {
	wallet = domain.NormalizeAddress(wallet)

	txs, err := s.store.ListTransactionsNeedingHydration(ctx, wallet, network.ChainID, s.config.MaxHydrateAttempts, s.config.HydrationBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list transactions to hydrate: %w", err)
	}
	if len(txs) == 0 {
		return 0, nil
	}

	client, err := s.ethPool.Client(ctx, network)
	if err != nil {
		if errors.Is(err, ethereum.ErrRPCNotConfigured) {
			logger.DebugCtx(ctx, "Skipping hydration, no rpc configured", zap.String("chain_id", network.ChainID.String()))
			return 0, nil
		}
		return 0, err
	}

	hydrated := 0
	for i := range txs {
		tx := txs[i]

		details, err := client.TransactionDetails(ctx, tx.Hash)
		if err != nil {
			if ctx.Err() != nil {
				return hydrated, ctx.Err()
			}
			if !errors.Is(err, ethereum.ErrTransactionPending) {
				logger.WarnCtx(ctx, "Failed to hydrate transaction",
					zap.String("chain_id", network.ChainID.String()),
					zap.String("hash", tx.Hash),
					zap.Error(err),
				)
			}
			if err := s.store.IncrementHydrationAttempts(ctx, wallet, network.ChainID, tx.Hash); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("hash", tx.Hash))
			}
			continue
		}

		tx.Input = details.Input
		tx.Nonce = details.Nonce
		tx.Gas = fmt.Sprintf("%d", details.Gas)
		tx.GasUsed = fmt.Sprintf("%d", details.GasUsed)
		if details.GasPrice != nil {
			tx.GasPrice = details.GasPrice.String()
		}
		if details.Status != "" {
			tx.Status = details.Status
		}

		if err := s.store.UpsertTransaction(ctx, tx); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to store hydrated transaction: %w", err), zap.String("hash", tx.Hash))
			continue
		}
		hydrated++
	}

	return hydrated, nil
}

func (s *syncer) VerifyUnknownTokens(ctx context.Context, network domain.Network) (int, error) {
	queued, err := s.store.ListUnverifiedTokens(ctx, network.ChainID, s.config.MaxVerifyAttempts, s.config.VerifyBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list unverified tokens: %w", err)
	}
	if len(queued) == 0 {
		return 0, nil
	}

	client, err := s.ethPool.Client(ctx, network)
	if err != nil {
		if errors.Is(err, ethereum.ErrRPCNotConfigured) {
			return 0, nil
		}
		return 0, err
	}

	verified := 0
	for _, q := range queued {
		info, err := client.ERC20Info(ctx, q.Address)
		if err != nil {
			if ctx.Err() != nil {
				return verified, ctx.Err()
			}
			logger.WarnCtx(ctx, "Token verification failed",
				zap.String("chain_id", network.ChainID.String()),
				zap.String("contract", q.Address),
				zap.Int("attempts", q.Attempts+1),
				zap.Error(err),
			)
			if err := s.store.IncrementUnverifiedAttempts(ctx, network.ChainID, q.Address); err != nil {
				return verified, fmt.Errorf("failed to record verification attempt: %w", err)
			}
			continue
		}

		kind := domain.InterfaceMaybeERC20
		if info.Decimals > 0 {
			kind = domain.InterfaceERC20
		}
		descriptor := domain.TokenDescriptor{
			Wallet:   q.Wallet,
			ChainID:  network.ChainID,
			Address:  q.Address,
			Name:     info.Name,
			Symbol:   info.Symbol,
			Decimals: info.Decimals,
			Kind:     kind,
		}
		if err := s.store.StoreToken(ctx, descriptor); err != nil {
			return verified, fmt.Errorf("failed to store verified token: %w", err)
		}
		if err := s.store.DeleteUnverifiedToken(ctx, network.ChainID, q.Address); err != nil {
			return verified, fmt.Errorf("failed to dequeue verified token: %w", err)
		}
		metrics.TokensRegistered.WithLabelValues(network.ChainID.String(), string(kind)).Inc()
		verified++
	}

	return verified, nil
}
