package temporal_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	temporalmocks "go.temporal.io/sdk/mocks"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/mocks"
	"github.com/feral-file/ff-account-sync/internal/providers/temporal"
)

func TestSyncAccountWorkflowID(t *testing.T) {
	id := temporal.SyncAccountWorkflowID(domain.SyncRequest{
		Wallet:  "0xABCDEF1234567890123456789012345678901234",
		ChainID: 137,
	})
	assert.Equal(t, "sync-account-137-0xabcdef1234567890123456789012345678901234", id)
}

func TestSyncTrigger_StartSyncAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	trigger := temporal.NewSyncTrigger(orchestrator, "sync-queue")
	req := domain.SyncRequest{Wallet: "0x1234567890123456789012345678901234567890", ChainID: 1}

	run := &temporalmocks.WorkflowRun{}
	run.On("GetID").Return("sync-account-1-0x1234567890123456789012345678901234567890")

	orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), temporal.SyncAccountWorkflow, req).
		DoAndReturn(func(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "sync-queue", options.TaskQueue)
			assert.Equal(t, temporal.SyncAccountWorkflowID(req), options.ID)
			assert.Equal(t, enums.WORKFLOW_ID_CONFLICT_POLICY_USE_EXISTING, options.WorkflowIDConflictPolicy)
			return run, nil
		})

	id, err := trigger.StartSyncAccount(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "sync-account-1-0x1234567890123456789012345678901234567890", id)
	run.AssertExpectations(t)
}

func TestSyncTrigger_StartSyncAccount_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	trigger := temporal.NewSyncTrigger(orchestrator, "sync-queue")

	orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), temporal.SyncAccountWorkflow, gomock.Any()).
		Return(nil, errors.New("temporal unavailable"))

	_, err := trigger.StartSyncAccount(context.Background(), domain.SyncRequest{Wallet: "0x1234567890123456789012345678901234567890", ChainID: 1})
	assert.Error(t, err)
}

func TestSyncTrigger_StartSyncAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	trigger := temporal.NewSyncTrigger(orchestrator, "sync-queue")
	reqs := []domain.SyncRequest{
		{Wallet: "0x1234567890123456789012345678901234567890", ChainID: 1},
		{Wallet: "0xabcdef1234567890123456789012345678901234", ChainID: 10},
	}

	run := &temporalmocks.WorkflowRun{}
	run.On("GetID").Return("sync-accounts-x")

	orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), temporal.SyncAccountsWorkflow, reqs).
		DoAndReturn(func(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error) {
			assert.True(t, strings.HasPrefix(options.ID, "sync-accounts-"))
			return run, nil
		})

	id, err := trigger.StartSyncAccounts(context.Background(), reqs)
	require.NoError(t, err)
	assert.Equal(t, "sync-accounts-x", id)

	// Nothing to start
	id, err = trigger.StartSyncAccounts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, id)
}
