package syncer_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/mocks"
	"github.com/feral-file/ff-account-sync/internal/syncer"
)

func TestRunner_RejectsConcurrentSyncOfSameScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := mocks.NewMockSyncer(ctrl)
	runner := syncer.NewRunner(mockSyncer, 4)
	defer runner.Close()

	started := make(chan struct{})
	unblock := make(chan struct{})
	mockSyncer.EXPECT().
		Sync(gomock.Any(), testNetwork, testWallet).
		DoAndReturn(func(ctx context.Context, network domain.Network, wallet string) domain.SyncOutcome {
			close(started)
			<-unblock
			return domain.SyncOutcome{Status: domain.SyncStatusApplied, LatestBlock: 42}
		})

	first, err := runner.Sync(context.Background(), testNetwork, testWallet)
	require.NoError(t, err)
	<-started

	_, err = runner.Sync(context.Background(), testNetwork, testWallet)
	assert.ErrorIs(t, err, domain.ErrSyncInProgress)

	// Same wallet through the explicit scope entry point shares the guard
	_, err = runner.SyncAccountTransactions(context.Background(), testNetwork, testWallet, "", 10)
	assert.ErrorIs(t, err, domain.ErrSyncInProgress)

	close(unblock)
	outcome, err := first.Wait()
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusApplied, outcome.Status)
	assert.Equal(t, uint64(42), outcome.LatestBlock)

	// Guard is released once the first sync finished
	mockSyncer.EXPECT().
		SyncAccountTransactions(gomock.Any(), testNetwork, testWallet, testWallet, uint64(42)).
		Return(domain.SyncOutcome{Status: domain.SyncStatusEmpty, LatestBlock: 42})

	second, err := runner.SyncAccountTransactions(context.Background(), testNetwork, testWallet, testWallet, 42)
	require.NoError(t, err)
	outcome, err = second.Wait()
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusEmpty, outcome.Status)
}

func TestRunner_FetchOlderThan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := mocks.NewMockSyncer(ctrl)
	runner := syncer.NewRunner(mockSyncer, 2)
	defer runner.Close()

	metas := []domain.TransactionMeta{{Hash: "0x1", BlockNumber: 5}}
	mockSyncer.EXPECT().FetchOlderThan(gomock.Any(), testNetwork, testWallet, int64(1000)).Return(metas, nil)

	result, err := runner.FetchOlderThan(context.Background(), testNetwork, testWallet, 1000)
	require.NoError(t, err)

	got, err := result.Wait()
	require.NoError(t, err)
	assert.Equal(t, metas, got)
}

func TestRunner_Closed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := syncer.NewRunner(mocks.NewMockSyncer(ctrl), 1)
	runner.Close()

	_, err := runner.Sync(context.Background(), testNetwork, testWallet)
	assert.ErrorIs(t, err, syncer.ErrRunnerClosed)

	_, err = runner.FetchOlderThan(context.Background(), testNetwork, testWallet, 1)
	assert.ErrorIs(t, err, syncer.ErrRunnerClosed)
}
