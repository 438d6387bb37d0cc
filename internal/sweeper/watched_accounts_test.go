package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/mocks"
	"github.com/feral-file/ff-account-sync/internal/sweeper"
)

const (
	walletA = "0x1111111111111111111111111111111111111111"
	walletB = "0x2222222222222222222222222222222222222222"
)

type testSweeperMocks struct {
	store   *mocks.MockStore
	trigger *mocks.MockSyncTrigger
	clock   *mocks.MockClock
	sweeper sweeper.Sweeper
}

func setupTestSweeper(t *testing.T) *testSweeperMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tm := &testSweeperMocks{
		store:   mocks.NewMockStore(ctrl),
		trigger: mocks.NewMockSyncTrigger(ctrl),
		clock:   mocks.NewMockClock(ctrl),
	}
	tm.sweeper = sweeper.NewWatchedAccountSweeper(sweeper.WatchedAccountSweeperConfig{
		Interval:                    time.Minute,
		BatchSize:                   10,
		MinInterval:                 5 * time.Minute,
		TriggerRetryInitialInterval: time.Millisecond,
		TriggerRetryMaxElapsed:      time.Second,
	}, tm.store, tm.trigger, tm.clock)

	return tm
}

// runOneCycle starts the sweeper, waits for the first cycle to reach its sleep and stops it
func runOneCycle(t *testing.T, tm *testSweeperMocks) {
	t.Helper()

	slept := make(chan struct{})
	tm.clock.EXPECT().
		After(time.Minute).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			close(slept)
			return make(chan time.Time)
		})

	errCh := make(chan error, 1)
	go func() { errCh <- tm.sweeper.Start(context.Background()) }()

	select {
	case <-slept:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper cycle did not finish")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, tm.sweeper.Stop(ctx))
	require.NoError(t, <-errCh)
}

func TestWatchedAccountSweeper_Name(t *testing.T) {
	tm := setupTestSweeper(t)
	assert.Equal(t, "watched-account-sweeper", tm.sweeper.Name())
}

func TestWatchedAccountSweeper_SchedulesDueAccounts(t *testing.T) {
	tm := setupTestSweeper(t)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reqs := []domain.SyncRequest{
		{Wallet: walletA, ChainID: 1},
		{Wallet: walletB, ChainID: 137},
	}

	tm.clock.EXPECT().Now().Return(now)
	tm.clock.EXPECT().Since(now).Return(time.Millisecond)
	gomock.InOrder(
		tm.store.EXPECT().
			ListWatchedAccountsDue(gomock.Any(), now.Add(-5*time.Minute), 10).
			Return([]domain.WatchedAccount{
				{Wallet: walletA, ChainID: 1},
				{Wallet: walletB, ChainID: 137},
			}, nil),
		tm.trigger.EXPECT().
			StartSyncAccounts(gomock.Any(), reqs).
			Return("sync-accounts-1", nil),
		tm.store.EXPECT().
			MarkWatchedAccountsTriggered(gomock.Any(), reqs, now).
			Return(nil),
	)

	runOneCycle(t, tm)
}

func TestWatchedAccountSweeper_NothingDue(t *testing.T) {
	tm := setupTestSweeper(t)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().
		ListWatchedAccountsDue(gomock.Any(), gomock.Any(), 10).
		Return(nil, nil)

	runOneCycle(t, tm)
}

func TestWatchedAccountSweeper_RetriesTrigger(t *testing.T) {
	tm := setupTestSweeper(t)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.clock.EXPECT().Since(now).Return(time.Millisecond)
	tm.store.EXPECT().
		ListWatchedAccountsDue(gomock.Any(), gomock.Any(), 10).
		Return([]domain.WatchedAccount{{Wallet: walletA, ChainID: 1}}, nil)

	gomock.InOrder(
		tm.trigger.EXPECT().
			StartSyncAccounts(gomock.Any(), gomock.Any()).
			Return("", errors.New("temporal unavailable")),
		tm.trigger.EXPECT().
			StartSyncAccounts(gomock.Any(), gomock.Any()).
			Return("sync-accounts-1", nil),
	)
	tm.store.EXPECT().
		MarkWatchedAccountsTriggered(gomock.Any(), []domain.SyncRequest{{Wallet: walletA, ChainID: 1}}, now).
		Return(nil)

	runOneCycle(t, tm)
}

func TestWatchedAccountSweeper_ListFailureKeepsRunning(t *testing.T) {
	tm := setupTestSweeper(t)

	tm.clock.EXPECT().Now().Return(time.Now())
	tm.store.EXPECT().
		ListWatchedAccountsDue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	// No trigger or mark expected
	runOneCycle(t, tm)
}

func TestWatchedAccountSweeper_MarkFailureIsLogged(t *testing.T) {
	tm := setupTestSweeper(t)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.clock.EXPECT().Since(now).Return(time.Millisecond)
	tm.store.EXPECT().
		ListWatchedAccountsDue(gomock.Any(), gomock.Any(), 10).
		Return([]domain.WatchedAccount{{Wallet: walletA, ChainID: 1}}, nil)
	tm.trigger.EXPECT().
		StartSyncAccounts(gomock.Any(), gomock.Any()).
		Return("sync-accounts-1", nil)
	tm.store.EXPECT().
		MarkWatchedAccountsTriggered(gomock.Any(), gomock.Any(), now).
		Return(errors.New("db down"))

	runOneCycle(t, tm)
}

func TestWatchedAccountSweeper_StopWhenNotRunning(t *testing.T) {
	tm := setupTestSweeper(t)
	assert.NoError(t, tm.sweeper.Stop(context.Background()))
}
