package workflows

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/messaging"
	"github.com/feral-file/ff-account-sync/internal/store"
	"github.com/feral-file/ff-account-sync/internal/syncer"
)

const (
	// ErrTypeInvalidRequest tags activity errors that retrying cannot fix
	ErrTypeInvalidRequest = "InvalidSyncRequest"
)

// TransactionSyncResult is the activity-serializable summary of a transaction sync cycle
type TransactionSyncResult struct {
	Status      domain.SyncStatus `json:"status"`
	LatestBlock uint64            `json:"latest_block"`
	TxCount     int               `json:"tx_count"`
}

// Executor defines the activities of the account sync workflows
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// CheckResetMarker applies a pending reset marker and reports whether the account was reset
	CheckResetMarker(ctx context.Context, req domain.SyncRequest) (bool, error)

	// SyncTransactions runs one native transaction sync cycle from the stored checkpoint
	SyncTransactions(ctx context.Context, req domain.SyncRequest) (*TransactionSyncResult, error)

	// ReadTransfers reads one batch of ERC20 (nft=false) or NFT (nft=true) transfer events
	ReadTransfers(ctx context.Context, req domain.SyncRequest, nft bool) (int, error)

	// HydrateTransactions fills in execution data of cached transaction skeletons
	HydrateTransactions(ctx context.Context, req domain.SyncRequest) (int, error)

	// VerifyUnknownTokens drains a batch of the unverified token queue of a chain
	VerifyUnknownTokens(ctx context.Context, chainID domain.ChainID) (int, error)

	// PublishSyncCompleted announces a finished sync cycle
	PublishSyncCompleted(ctx context.Context, report *domain.SyncReport) error

	// MarkAccountSynced stamps the watched account with the completion time
	MarkAccountSynced(ctx context.Context, req domain.SyncRequest) error
}

type executor struct {
	syncer    syncer.Syncer
	networks  domain.Networks
	publisher messaging.Publisher
	store     store.Store
	clock     adapter.Clock
}

// NewExecutor creates the activity executor. publisher may be nil, in which case completion events are not sent.
func NewExecutor(
	s syncer.Syncer,
	networks domain.Networks,
	publisher messaging.Publisher,
	st store.Store,
	clock adapter.Clock,
) Executor {
	return &executor{
		syncer:    s,
		networks:  networks,
		publisher: publisher,
		store:     st,
		clock:     clock,
	}
}

// resolve validates the request and looks up its network.
// Failures are wrapped as non-retryable application errors.
func (e *executor) resolve(req domain.SyncRequest) (string, domain.Network, error) {
	wallet, err := domain.ValidateAddress(req.Wallet)
	if err != nil {
		return "", domain.Network{}, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidRequest, err)
	}

	network, err := e.networks.Get(req.ChainID)
	if err != nil {
		return "", domain.Network{}, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidRequest, err)
	}

	return wallet, network, nil
}

func (e *executor) CheckResetMarker(ctx context.Context, req domain.SyncRequest) (bool, error) {
	wallet, network, err := e.resolve(req)
	if err != nil {
		return false, err
	}

	return e.syncer.CheckResetMarker(ctx, wallet, network.ChainID)
}

func (e *executor) SyncTransactions(ctx context.Context, req domain.SyncRequest) (*TransactionSyncResult, error) {
	wallet, network, err := e.resolve(req)
	if err != nil {
		return nil, err
	}

	outcome := e.syncer.Sync(ctx, network, wallet)

	// a cancelled activity is retried by Temporal; other transient failures surface in the report
	if outcome.Status == domain.SyncStatusTransientFailure && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &TransactionSyncResult{
		Status:      outcome.Status,
		LatestBlock: outcome.LatestBlock,
		TxCount:     len(outcome.Transactions),
	}, nil
}

func (e *executor) ReadTransfers(ctx context.Context, req domain.SyncRequest, nft bool) (int, error) {
	wallet, network, err := e.resolve(req)
	if err != nil {
		return 0, err
	}

	return e.syncer.ReadTransfers(ctx, network, wallet, nft)
}

func (e *executor) HydrateTransactions(ctx context.Context, req domain.SyncRequest) (int, error) {
	wallet, network, err := e.resolve(req)
	if err != nil {
		return 0, err
	}

	return e.syncer.HydrateTransactions(ctx, network, wallet)
}

func (e *executor) VerifyUnknownTokens(ctx context.Context, chainID domain.ChainID) (int, error) {
	network, err := e.networks.Get(chainID)
	if err != nil {
		return 0, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidRequest, err)
	}

	return e.syncer.VerifyUnknownTokens(ctx, network)
}

func (e *executor) PublishSyncCompleted(ctx context.Context, report *domain.SyncReport) error {
	if report == nil {
		return temporal.NewNonRetryableApplicationError("nil sync report", ErrTypeInvalidRequest, nil)
	}
	if e.publisher == nil {
		logger.DebugCtx(ctx, "No publisher configured, skipping sync completed event",
			zap.String("wallet", report.Wallet),
		)
		return nil
	}

	if err := e.publisher.PublishSyncCompleted(ctx, report); err != nil {
		return fmt.Errorf("failed to publish sync completed event: %w", err)
	}

	return nil
}

func (e *executor) MarkAccountSynced(ctx context.Context, req domain.SyncRequest) error {
	wallet, err := domain.ValidateAddress(req.Wallet)
	if err != nil {
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidRequest, err)
	}

	if err := e.store.MarkWatchedAccountSynced(ctx, wallet, req.ChainID, e.clock.Now()); err != nil {
		return fmt.Errorf("failed to mark account synced: %w", err)
	}

	return nil
}
