package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/ff-account-sync/internal/domain"
)

// SyncWorker defines the account sync workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/sync_worker.go -package=mocks -mock_names=SyncWorker=MockSyncWorker
type SyncWorker interface {
	// SyncAccount runs one full sync cycle of an account: reset marker, native transactions,
	// token transfers, hydration and token verification
	SyncAccount(ctx workflow.Context, req domain.SyncRequest) (*domain.SyncReport, error)

	// SyncAccounts syncs several accounts as child workflows, continuing past failed ones
	SyncAccounts(ctx workflow.Context, reqs []domain.SyncRequest) error
}

// SyncWorkerConfig holds the loop bounds of the sync workflows
type SyncWorkerConfig struct {
	// TransferBatchSize must match the fetcher batch size; a full batch means more events may follow
	TransferBatchSize int
	// MaxTransferBatches bounds the transfer batches read per kind in one cycle
	MaxTransferBatches int
	// ActivityTimeout is the start-to-close timeout of the sync activities
	ActivityTimeout time.Duration
}

type syncWorker struct {
	config   SyncWorkerConfig
	executor Executor
}

// NewSyncWorker creates the sync workflows
func NewSyncWorker(executor Executor, config SyncWorkerConfig) SyncWorker {
	if config.TransferBatchSize <= 0 {
		config.TransferBatchSize = domain.DEFAULT_TRANSFER_BATCH_SIZE
	}
	if config.MaxTransferBatches <= 0 {
		config.MaxTransferBatches = 10
	}
	if config.ActivityTimeout <= 0 {
		config.ActivityTimeout = 10 * time.Minute
	}
	return &syncWorker{
		executor: executor,
		config:   config,
	}
}

func (w *syncWorker) activityOptions(maxAttempts int32) workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: w.config.ActivityTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    maxAttempts,
		},
	}
}
