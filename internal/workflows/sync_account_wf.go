package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/providers/temporal"
)

// SyncAccount runs one full sync cycle of an account
func (w *syncWorker) SyncAccount(ctx workflow.Context, req domain.SyncRequest) (*domain.SyncReport, error) {
	logger.InfoWf(ctx, "Starting account sync",
		zap.String("wallet", req.Wallet),
		zap.Int64("chainID", int64(req.ChainID)),
	)

	ctx = workflow.WithActivityOptions(ctx, w.activityOptions(3))

	// Step 1: Apply a pending reset marker before any checkpoint is read
	var resetApplied bool
	err := workflow.ExecuteActivity(ctx, w.executor.CheckResetMarker, req).Get(ctx, &resetApplied)
	if err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to check reset marker: %w", err),
			zap.String("wallet", req.Wallet),
		)
		return nil, err
	}

	// Step 2: Native transactions
	var txResult TransactionSyncResult
	err = workflow.ExecuteActivity(ctx, w.executor.SyncTransactions, req).Get(ctx, &txResult)
	if err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to sync transactions: %w", err),
			zap.String("wallet", req.Wallet),
		)
		return nil, err
	}

	// Step 3: Token transfers, fungible first so NFT reconciliation sees the final fungible registry
	erc20Events, err := w.readTransfers(ctx, req, false)
	if err != nil {
		return nil, err
	}
	nftEvents, err := w.readTransfers(ctx, req, true)
	if err != nil {
		return nil, err
	}

	// Step 4: Best-effort enrichment over RPC
	bestEffortCtx := workflow.WithActivityOptions(ctx, w.activityOptions(1))

	var hydrated int
	if err := workflow.ExecuteActivity(bestEffortCtx, w.executor.HydrateTransactions, req).Get(ctx, &hydrated); err != nil {
		logger.WarnWf(ctx, "Failed to hydrate transactions",
			zap.String("wallet", req.Wallet),
			zap.Error(err),
		)
	}

	var verified int
	if err := workflow.ExecuteActivity(bestEffortCtx, w.executor.VerifyUnknownTokens, req.ChainID).Get(ctx, &verified); err != nil {
		logger.WarnWf(ctx, "Failed to verify unknown tokens",
			zap.Int64("chainID", int64(req.ChainID)),
			zap.Error(err),
		)
	}

	report := &domain.SyncReport{
		Wallet:       domain.NormalizeAddress(req.Wallet),
		ChainID:      req.ChainID,
		Status:       txResult.Status,
		LatestBlock:  txResult.LatestBlock,
		TxCount:      txResult.TxCount,
		ERC20Events:  erc20Events,
		NFTEvents:    nftEvents,
		ResetApplied: resetApplied,
		CompletedAt:  workflow.Now(ctx).UTC(),
	}

	// Step 5: Announce and stamp; neither failure invalidates the synced data
	if err := workflow.ExecuteActivity(ctx, w.executor.PublishSyncCompleted, report).Get(ctx, nil); err != nil {
		logger.WarnWf(ctx, "Failed to publish sync completed event",
			zap.String("wallet", req.Wallet),
			zap.Error(err),
		)
	}

	if err := workflow.ExecuteActivity(ctx, w.executor.MarkAccountSynced, req).Get(ctx, nil); err != nil {
		logger.WarnWf(ctx, "Failed to mark account synced",
			zap.String("wallet", req.Wallet),
			zap.Error(err),
		)
	}

	logger.InfoWf(ctx, "Account sync completed",
		zap.String("wallet", report.Wallet),
		zap.String("status", string(report.Status)),
		zap.Uint64("latestBlock", report.LatestBlock),
		zap.Int("txCount", report.TxCount),
		zap.Int("erc20Events", erc20Events),
		zap.Int("nftEvents", nftEvents),
		zap.Int("hydrated", hydrated),
		zap.Int("verified", verified),
	)

	return report, nil
}

// readTransfers reads transfer batches of one kind until a short batch or the batch bound
func (w *syncWorker) readTransfers(ctx workflow.Context, req domain.SyncRequest, nft bool) (int, error) {
	total := 0
	for i := 0; i < w.config.MaxTransferBatches; i++ {
		var n int
		err := workflow.ExecuteActivity(ctx, w.executor.ReadTransfers, req, nft).Get(ctx, &n)
		if err != nil {
			logger.ErrorWf(ctx, fmt.Errorf("failed to read transfers: %w", err),
				zap.String("wallet", req.Wallet),
				zap.Bool("nft", nft),
				zap.Int("batch", i),
			)
			return total, err
		}

		total += n
		if n < w.config.TransferBatchSize {
			break
		}
	}
	return total, nil
}

// SyncAccounts syncs several accounts as child workflows
func (w *syncWorker) SyncAccounts(ctx workflow.Context, reqs []domain.SyncRequest) error {
	logger.InfoWf(ctx, "Starting batch account sync",
		zap.Int("accountCount", len(reqs)),
	)

	futures := make([]workflow.ChildWorkflowFuture, 0, len(reqs))
	for _, req := range reqs {
		childWorkflowOptions := workflow.ChildWorkflowOptions{
			WorkflowID:               temporal.SyncAccountWorkflowID(req),
			WorkflowExecutionTimeout: 30 * time.Minute,
			WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
			ParentClosePolicy:        enums.PARENT_CLOSE_POLICY_REQUEST_CANCEL,
		}
		childCtx := workflow.WithChildOptions(ctx, childWorkflowOptions)
		futures = append(futures, workflow.ExecuteChildWorkflow(childCtx, w.SyncAccount, req))
	}

	failed := 0
	for i, future := range futures {
		var report domain.SyncReport
		if err := future.Get(ctx, &report); err != nil {
			// Continue with the remaining accounts even if one fails
			failed++
			logger.ErrorWf(ctx, fmt.Errorf("failed to sync account: %w", err),
				zap.String("wallet", reqs[i].Wallet),
				zap.Int64("chainID", int64(reqs[i].ChainID)),
			)
			continue
		}
	}

	logger.InfoWf(ctx, "Batch account sync completed",
		zap.Int("accountCount", len(reqs)),
		zap.Int("failed", failed),
	)

	return nil
}
