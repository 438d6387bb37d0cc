package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/metrics"
	"github.com/feral-file/ff-account-sync/internal/providers/temporal"
	"github.com/feral-file/ff-account-sync/internal/store"
)

// WatchedAccountSweeperConfig holds configuration for the watched account sweeper
type WatchedAccountSweeperConfig struct {
	Interval    time.Duration // Time to sleep between cycles
	BatchSize   int           // Accounts scheduled per cycle
	MinInterval time.Duration // Accounts triggered more recently than this are skipped

	// Retry schedule of a failed batch trigger
	TriggerRetryInitialInterval time.Duration
	TriggerRetryMaxElapsed      time.Duration
}

// watchedAccountSweeper periodically starts a batch sync workflow for watched accounts that are due
type watchedAccountSweeper struct {
	config    WatchedAccountSweeperConfig
	store     store.Store
	trigger   temporal.SyncTrigger
	clock     adapter.Clock
	running   atomic.Bool
	stopOnce  sync.Once
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewWatchedAccountSweeper creates a new watched account sweeper
func NewWatchedAccountSweeper(
	config WatchedAccountSweeperConfig,
	st store.Store,
	trigger temporal.SyncTrigger,
	clock adapter.Clock,
) Sweeper {
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.Interval <= 0 {
		config.Interval = time.Minute
	}
	if config.TriggerRetryInitialInterval <= 0 {
		config.TriggerRetryInitialInterval = time.Second
	}
	if config.TriggerRetryMaxElapsed <= 0 {
		config.TriggerRetryMaxElapsed = time.Minute
	}

	return &watchedAccountSweeper{
		config:    config,
		store:     st,
		trigger:   trigger,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (s *watchedAccountSweeper) Name() string {
	return "watched-account-sweeper"
}

// Start runs a cycle immediately, then one every configured interval
func (s *watchedAccountSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting watched account sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Duration("min_interval", s.config.MinInterval),
	)

	for {
		if _, err := s.runCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		if !s.sleep(ctx, s.config.Interval) {
			logger.InfoCtx(ctx, "Watched account sweeper stopping")
			return nil
		}
	}
}

func (s *watchedAccountSweeper) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	s.stopOnce.Do(func() { close(s.stopChan) })

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Watched account sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Watched account sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runCycle schedules one batch of due accounts and returns how many were scheduled
func (s *watchedAccountSweeper) runCycle(ctx context.Context) (int, error) {
	now := s.clock.Now()
	cycleID := ulid.MustNewDefault(now).String()

	due, err := s.store.ListWatchedAccountsDue(ctx, now.Add(-s.config.MinInterval), s.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list watched accounts due: %w", err)
	}
	if len(due) == 0 {
		logger.DebugCtx(ctx, "No watched accounts due", zap.String("cycle_id", cycleID))
		return 0, nil
	}

	reqs := make([]domain.SyncRequest, 0, len(due))
	for _, account := range due {
		reqs = append(reqs, domain.SyncRequest{Wallet: account.Wallet, ChainID: account.ChainID})
	}

	workflowID, err := s.startBatch(ctx, reqs)
	if err != nil {
		return 0, fmt.Errorf("failed to start batch sync: %w", err)
	}

	// Unstamped accounts are picked again next cycle; the per-account workflow id dedupes them
	if err := s.store.MarkWatchedAccountsTriggered(ctx, reqs, now); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to mark watched accounts triggered: %w", err),
			zap.String("cycle_id", cycleID),
		)
	}

	metrics.ScheduledAccounts.Add(float64(len(reqs)))
	logger.InfoCtx(ctx, "Scheduled watched accounts",
		zap.String("cycle_id", cycleID),
		zap.String("workflow_id", workflowID),
		zap.Int("count", len(reqs)),
		zap.Duration("duration", s.clock.Since(now)),
	)

	return len(reqs), nil
}

// startBatch starts the batch workflow, retrying with exponential backoff
func (s *watchedAccountSweeper) startBatch(ctx context.Context, reqs []domain.SyncRequest) (string, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.TriggerRetryInitialInterval
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = s.config.TriggerRetryMaxElapsed

	var workflowID string
	operation := func() error {
		id, err := s.trigger.StartSyncAccounts(ctx, reqs)
		if err != nil {
			return err
		}
		workflowID = id
		return nil
	}

	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Batch sync trigger failed, retrying",
			zap.Error(err),
			zap.Duration("next_retry_in", next),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return "", err
	}
	return workflowID, nil
}

// sleep returns false when interrupted by ctx or Stop
func (s *watchedAccountSweeper) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-s.clock.After(d):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
