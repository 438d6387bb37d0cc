package temporal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"github.com/feral-file/ff-account-sync/internal/domain"
)

const (
	// SyncAccountWorkflow is the registered name of the single account sync workflow
	SyncAccountWorkflow = "SyncAccount"
	// SyncAccountsWorkflow is the registered name of the batch sync workflow
	SyncAccountsWorkflow = "SyncAccounts"
)

// TemporalOrchestrator is the subset of the Temporal client used to start workflows
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator,SyncTrigger=MockSyncTrigger
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// SyncTrigger starts account sync workflows
type SyncTrigger interface {
	// StartSyncAccount starts the sync workflow of one account. A running sync of the same account is reused.
	StartSyncAccount(ctx context.Context, req domain.SyncRequest) (string, error)
	// StartSyncAccounts starts one batch workflow that syncs every account in reqs
	StartSyncAccounts(ctx context.Context, reqs []domain.SyncRequest) (string, error)
}

// SyncAccountWorkflowID is the workflow id of an account sync; one run per account at a time
func SyncAccountWorkflowID(req domain.SyncRequest) string {
	return fmt.Sprintf("sync-account-%d-%s", req.ChainID, domain.NormalizeAddress(req.Wallet))
}

type syncTrigger struct {
	orchestrator TemporalOrchestrator
	taskQueue    string
}

// NewSyncTrigger creates a sync trigger submitting to the given task queue
func NewSyncTrigger(orchestrator TemporalOrchestrator, taskQueue string) SyncTrigger {
	return &syncTrigger{
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
	}
}

func (t *syncTrigger) StartSyncAccount(ctx context.Context, req domain.SyncRequest) (string, error) {
	options := client.StartWorkflowOptions{
		ID:                       SyncAccountWorkflowID(req),
		TaskQueue:                t.taskQueue,
		WorkflowExecutionTimeout: 30 * time.Minute,
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		WorkflowIDConflictPolicy: enums.WORKFLOW_ID_CONFLICT_POLICY_USE_EXISTING,
	}

	run, err := t.orchestrator.ExecuteWorkflow(ctx, options, SyncAccountWorkflow, req)
	if err != nil {
		return "", fmt.Errorf("failed to start sync workflow for %s: %w", req.Wallet, err)
	}

	return run.GetID(), nil
}

func (t *syncTrigger) StartSyncAccounts(ctx context.Context, reqs []domain.SyncRequest) (string, error) {
	if len(reqs) == 0 {
		return "", nil
	}

	options := client.StartWorkflowOptions{
		ID:                       "sync-accounts-" + uuid.New().String(),
		TaskQueue:                t.taskQueue,
		WorkflowExecutionTimeout: 2 * time.Hour,
	}

	run, err := t.orchestrator.ExecuteWorkflow(ctx, options, SyncAccountsWorkflow, reqs)
	if err != nil {
		return "", fmt.Errorf("failed to start batch sync workflow: %w", err)
	}

	return run.GetID(), nil
}
