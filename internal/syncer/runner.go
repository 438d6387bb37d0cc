package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alitto/pond/v2"

	"github.com/feral-file/ff-account-sync/internal/domain"
)

// ErrRunnerClosed is returned when work is submitted after Close
var ErrRunnerClosed = errors.New("runner closed")

// Runner executes syncer operations as futures on a bounded worker pool.
// At most one transaction sync per (wallet, chain, scope) is in flight.
type Runner struct {
	syncer      Syncer
	syncPool    pond.ResultPool[domain.SyncOutcome]
	historyPool pond.ResultPool[[]domain.TransactionMeta]

	mu       sync.Mutex
	closed   bool
	inFlight map[string]struct{}
}

// NewRunner creates a runner with poolSize workers per operation kind
func NewRunner(s Syncer, poolSize int) *Runner {
	if poolSize <= 0 {
		poolSize = 16
	}
	return &Runner{
		syncer:      s,
		syncPool:    pond.NewResultPool[domain.SyncOutcome](poolSize),
		historyPool: pond.NewResultPool[[]domain.TransactionMeta](poolSize),
		inFlight:    make(map[string]struct{}),
	}
}

func scopeKey(wallet string, chainID domain.ChainID, scope string) string {
	return fmt.Sprintf("%s:%d:%s", domain.NormalizeAddress(wallet), chainID, domain.NormalizeAddress(scope))
}

// SyncAccountTransactions submits a transaction sync. It fails with domain.ErrSyncInProgress
// when a sync of the same scope has not finished yet. A cancelled ctx resolves to a transient outcome.
func (r *Runner) SyncAccountTransactions(ctx context.Context, network domain.Network, wallet, scope string, lastKnownBlock uint64) (pond.Result[domain.SyncOutcome], error) {
	if scope == "" {
		scope = wallet
	}
	key := scopeKey(wallet, network.ChainID, scope)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrRunnerClosed
	}
	if _, ok := r.inFlight[key]; ok {
		return nil, domain.ErrSyncInProgress
	}
	r.inFlight[key] = struct{}{}

	return r.syncPool.Submit(func() domain.SyncOutcome {
		defer r.release(key)
		return r.syncer.SyncAccountTransactions(ctx, network, wallet, scope, lastKnownBlock)
	}), nil
}

// Sync submits a transaction sync of the wallet from its stored checkpoint
func (r *Runner) Sync(ctx context.Context, network domain.Network, wallet string) (pond.Result[domain.SyncOutcome], error) {
	key := scopeKey(wallet, network.ChainID, wallet)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrRunnerClosed
	}
	if _, ok := r.inFlight[key]; ok {
		return nil, domain.ErrSyncInProgress
	}
	r.inFlight[key] = struct{}{}

	return r.syncPool.Submit(func() domain.SyncOutcome {
		defer r.release(key)
		return r.syncer.Sync(ctx, network, wallet)
	}), nil
}

// FetchOlderThan submits an older-history read
func (r *Runner) FetchOlderThan(ctx context.Context, network domain.Network, wallet string, before int64) (pond.Result[[]domain.TransactionMeta], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrRunnerClosed
	}

	return r.historyPool.SubmitErr(func() ([]domain.TransactionMeta, error) {
		return r.syncer.FetchOlderThan(ctx, network, wallet, before)
	}), nil
}

func (r *Runner) release(key string) {
	r.mu.Lock()
	delete(r.inFlight, key)
	r.mu.Unlock()
}

// Close stops accepting work and waits for running operations
func (r *Runner) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	r.syncPool.StopAndWait()
	r.historyPool.StopAndWait()
}
