package workflows_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/mocks"
	"github.com/feral-file/ff-account-sync/internal/workflows"
)

const testWallet = "0x1234567890123456789012345678901234567890"

type SyncAccountWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env      *testsuite.TestWorkflowEnvironment
	ctrl     *gomock.Controller
	executor *mocks.MockExecutor
	worker   workflows.SyncWorker
	req      domain.SyncRequest
}

func (s *SyncAccountWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockExecutor(s.ctrl)
	s.worker = workflows.NewSyncWorker(s.executor, workflows.SyncWorkerConfig{
		TransferBatchSize:  2,
		MaxTransferBatches: 3,
		ActivityTimeout:    time.Minute,
	})
	s.req = domain.SyncRequest{Wallet: testWallet, ChainID: 1}
}

func (s *SyncAccountWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

func TestSyncAccountWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(SyncAccountWorkflowTestSuite))
}

// ====================================================================================
// SyncAccount Tests
// ====================================================================================

func (s *SyncAccountWorkflowTestSuite) TestSyncAccount_Success() {
	s.env.OnActivity(s.executor.CheckResetMarker, mock.Anything, s.req).Return(true, nil)
	s.env.OnActivity(s.executor.SyncTransactions, mock.Anything, s.req).Return(&workflows.TransactionSyncResult{
		Status:      domain.SyncStatusApplied,
		LatestBlock: 1200,
		TxCount:     7,
	}, nil)

	// ERC20: a full batch, then a short one
	s.env.OnActivity(s.executor.ReadTransfers, mock.Anything, s.req, false).Return(2, nil).Once()
	s.env.OnActivity(s.executor.ReadTransfers, mock.Anything, s.req, false).Return(1, nil).Once()
	// NFT: empty on the first batch
	s.env.OnActivity(s.executor.ReadTransfers, mock.Anything, s.req, true).Return(0, nil).Once()

	s.env.OnActivity(s.executor.HydrateTransactions, mock.Anything, s.req).Return(3, nil)
	s.env.OnActivity(s.executor.VerifyUnknownTokens, mock.Anything, domain.ChainID(1)).Return(1, nil)
	s.env.OnActivity(s.executor.PublishSyncCompleted, mock.Anything, mock.MatchedBy(func(report *domain.SyncReport) bool {
		return report.Wallet == testWallet &&
			report.Status == domain.SyncStatusApplied &&
			report.LatestBlock == 1200 &&
			report.TxCount == 7 &&
			report.ERC20Events == 3 &&
			report.NFTEvents == 0 &&
			report.ResetApplied
	})).Return(nil)
	s.env.OnActivity(s.executor.MarkAccountSynced, mock.Anything, s.req).Return(nil)

	s.env.ExecuteWorkflow(s.worker.SyncAccount, s.req)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var report domain.SyncReport
	s.NoError(s.env.GetWorkflowResult(&report))
	s.Equal(domain.SyncStatusApplied, report.Status)
	s.Equal(3, report.ERC20Events)
	s.True(report.ResetApplied)
	s.False(report.CompletedAt.IsZero())
}

func (s *SyncAccountWorkflowTestSuite) TestSyncAccount_TransferBatchesAreBounded() {
	s.env.OnActivity(s.executor.CheckResetMarker, mock.Anything, s.req).Return(false, nil)
	s.env.OnActivity(s.executor.SyncTransactions, mock.Anything, s.req).Return(&workflows.TransactionSyncResult{
		Status: domain.SyncStatusEmpty,
	}, nil)

	// Always a full batch: stops after MaxTransferBatches
	s.env.OnActivity(s.executor.ReadTransfers, mock.Anything, s.req, false).Return(2, nil).Times(3)
	s.env.OnActivity(s.executor.ReadTransfers, mock.Anything, s.req, true).Return(2, nil).Times(3)

	s.env.OnActivity(s.executor.HydrateTransactions, mock.Anything, s.req).Return(0, nil)
	s.env.OnActivity(s.executor.VerifyUnknownTokens, mock.Anything, domain.ChainID(1)).Return(0, nil)
	s.env.OnActivity(s.executor.PublishSyncCompleted, mock.Anything, mock.MatchedBy(func(report *domain.SyncReport) bool {
		return report.ERC20Events == 6 && report.NFTEvents == 6
	})).Return(nil)
	s.env.OnActivity(s.executor.MarkAccountSynced, mock.Anything, s.req).Return(nil)

	s.env.ExecuteWorkflow(s.worker.SyncAccount, s.req)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *SyncAccountWorkflowTestSuite) TestSyncAccount_InvalidRequestFailsFast() {
	invalid := temporal.NewNonRetryableApplicationError("invalid address", workflows.ErrTypeInvalidRequest, domain.ErrInvalidAddress)
	s.env.OnActivity(s.executor.CheckResetMarker, mock.Anything, s.req).Return(false, invalid).Once()

	s.env.ExecuteWorkflow(s.worker.SyncAccount, s.req)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *SyncAccountWorkflowTestSuite) TestSyncAccount_TransactionSyncError() {
	s.env.OnActivity(s.executor.CheckResetMarker, mock.Anything, s.req).Return(false, nil)
	s.env.OnActivity(s.executor.SyncTransactions, mock.Anything, s.req).Return((*workflows.TransactionSyncResult)(nil), errors.New("db down"))

	s.env.ExecuteWorkflow(s.worker.SyncAccount, s.req)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *SyncAccountWorkflowTestSuite) TestSyncAccount_TransferErrorFailsCycle() {
	s.env.OnActivity(s.executor.CheckResetMarker, mock.Anything, s.req).Return(false, nil)
	s.env.OnActivity(s.executor.SyncTransactions, mock.Anything, s.req).Return(&workflows.TransactionSyncResult{
		Status: domain.SyncStatusApplied,
	}, nil)
	s.env.OnActivity(s.executor.ReadTransfers, mock.Anything, s.req, false).Return(0, errors.New("db down"))

	s.env.ExecuteWorkflow(s.worker.SyncAccount, s.req)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *SyncAccountWorkflowTestSuite) TestSyncAccount_BestEffortStepsDoNotFail() {
	s.env.OnActivity(s.executor.CheckResetMarker, mock.Anything, s.req).Return(false, nil)
	s.env.OnActivity(s.executor.SyncTransactions, mock.Anything, s.req).Return(&workflows.TransactionSyncResult{
		Status:      domain.SyncStatusNeedsFullRefresh,
		LatestBlock: 5000,
	}, nil)
	s.env.OnActivity(s.executor.ReadTransfers, mock.Anything, s.req, mock.Anything).Return(0, nil)
	s.env.OnActivity(s.executor.HydrateTransactions, mock.Anything, s.req).Return(0, errors.New("rpc down"))
	s.env.OnActivity(s.executor.VerifyUnknownTokens, mock.Anything, domain.ChainID(1)).Return(0, errors.New("rpc down"))
	s.env.OnActivity(s.executor.PublishSyncCompleted, mock.Anything, mock.Anything).Return(errors.New("nats down"))
	s.env.OnActivity(s.executor.MarkAccountSynced, mock.Anything, s.req).Return(errors.New("db down"))

	s.env.ExecuteWorkflow(s.worker.SyncAccount, s.req)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var report domain.SyncReport
	s.NoError(s.env.GetWorkflowResult(&report))
	s.Equal(domain.SyncStatusNeedsFullRefresh, report.Status)
	s.Equal(uint64(5000), report.LatestBlock)
}

// ====================================================================================
// SyncAccounts Tests
// ====================================================================================

func (s *SyncAccountWorkflowTestSuite) TestSyncAccounts_ContinuesPastFailures() {
	other := domain.SyncRequest{Wallet: "0xabcdef1234567890123456789012345678901234", ChainID: 137}

	s.env.OnWorkflow(s.worker.SyncAccount, mock.Anything, s.req).Return((*domain.SyncReport)(nil), errors.New("sync failed"))
	s.env.OnWorkflow(s.worker.SyncAccount, mock.Anything, other).Return(&domain.SyncReport{
		Wallet:  other.Wallet,
		ChainID: other.ChainID,
		Status:  domain.SyncStatusApplied,
	}, nil)

	s.env.ExecuteWorkflow(s.worker.SyncAccounts, []domain.SyncRequest{s.req, other})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *SyncAccountWorkflowTestSuite) TestSyncAccounts_Empty() {
	s.env.ExecuteWorkflow(s.worker.SyncAccounts, []domain.SyncRequest{})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}
