package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-account-sync/internal/config"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/mocks"
	"github.com/feral-file/ff-account-sync/internal/ratelimit"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testProxyMocks contains all the mocks needed for testing the proxy
type testProxyMocks struct {
	ctrl             *gomock.Controller
	redisClient      *mocks.MockRedisClient
	redisRateLimiter *mocks.MockRedisRateLimiter
	clock            *mocks.MockClock
}

func setupTestProxy(t *testing.T) *testProxyMocks {
	ctrl := gomock.NewController(t)

	tm := &testProxyMocks{
		ctrl:             ctrl,
		redisClient:      mocks.NewMockRedisClient(ctrl),
		redisRateLimiter: mocks.NewMockRedisRateLimiter(ctrl),
		clock:            mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Millisecond).AnyTimes()

	return tm
}

func testConfig() config.RateLimiterConfig {
	return config.RateLimiterConfig{
		RedisKeyPrefix:          "test:limiter:",
		MaxWorkers:              10,
		MaxQueueSize:            100,
		EnableLocalFallback:     true,
		LocalFallbackMultiplier: 0.5,
		Providers: map[string]config.RateLimitConfig{
			"etherscan": {
				RequestsPerSecond: 100,
				Burst:             100,
				MaxQueueTime:      time.Minute,
			},
		},
	}
}

// setupProxyWithMocks creates a redis-backed proxy with common mock expectations
func setupProxyWithMocks(t *testing.T, tm *testProxyMocks, cfg config.RateLimiterConfig, redisAvailable bool) (ratelimit.Proxy, *time.Ticker) {
	var pingErr error
	if !redisAvailable {
		pingErr = errors.New("connection refused")
	}
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(pingErr)
	tm.redisClient.EXPECT().NewRateLimiter().Return(tm.redisRateLimiter)

	ticker := time.NewTicker(10 * time.Second)
	tm.clock.EXPECT().NewTicker(10 * time.Second).Return(ticker)

	proxy, err := ratelimit.NewProxy(cfg, tm.redisClient, tm.clock)
	require.NoError(t, err)

	t.Cleanup(func() {
		tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
		_ = proxy.Close()
	})

	return proxy, ticker
}

func TestNewProxy_InvalidConfig(t *testing.T) {
	tm := setupTestProxy(t)

	tests := []struct {
		name string
		cfg  config.RateLimiterConfig
	}{
		{
			name: "no providers",
			cfg:  config.RateLimiterConfig{},
		},
		{
			name: "non-positive rate",
			cfg: config.RateLimiterConfig{
				Providers: map[string]config.RateLimitConfig{"etherscan": {RequestsPerSecond: 0}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proxy, err := ratelimit.NewProxy(tt.cfg, nil, tm.clock)
			assert.Error(t, err)
			assert.Nil(t, proxy)
		})
	}
}

func TestNewProxy_RedisUnavailableWithoutFallback(t *testing.T) {
	tm := setupTestProxy(t)

	cfg := testConfig()
	cfg.EnableLocalFallback = false

	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	proxy, err := ratelimit.NewProxy(cfg, tm.redisClient, tm.clock)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fallback disabled")
	assert.Nil(t, proxy)
}

func TestRequest_LocalOnly(t *testing.T) {
	tm := setupTestProxy(t)

	proxy, err := ratelimit.NewProxy(testConfig(), nil, tm.clock)
	require.NoError(t, err)
	defer func() { _ = proxy.Close() }()

	result, err := proxy.Request(context.Background(), "etherscan", func(ctx context.Context) (interface{}, error) {
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestRequest_DistributedAllowed(t *testing.T) {
	tm := setupTestProxy(t)
	proxy, _ := setupProxyWithMocks(t, tm, testConfig(), true)

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), "test:limiter:etherscan", redis_rate.PerSecond(100)).
		Return(&redis_rate.Result{Allowed: 1, Remaining: 99}, nil)

	calls := 0
	result, err := proxy.Request(context.Background(), "etherscan", func(ctx context.Context) (interface{}, error) {
		calls++
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 1, calls)
}

func TestRequest_DistributedRetryAfter(t *testing.T) {
	tm := setupTestProxy(t)
	proxy, _ := setupProxyWithMocks(t, tm, testConfig(), true)

	gomock.InOrder(
		tm.redisRateLimiter.EXPECT().
			Allow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&redis_rate.Result{Allowed: 0, RetryAfter: 20 * time.Millisecond}, nil),
		tm.redisRateLimiter.EXPECT().
			Allow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&redis_rate.Result{Allowed: 1}, nil),
	)
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- time.Now()
		return ch
	})

	result, err := proxy.Request(context.Background(), "etherscan", func(ctx context.Context) (interface{}, error) {
		return "done", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "done", result)
}

func TestRequest_RedisErrorFallsBackToLocal(t *testing.T) {
	tm := setupTestProxy(t)
	proxy, _ := setupProxyWithMocks(t, tm, testConfig(), true)

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis: connection reset"))

	result, err := proxy.Request(context.Background(), "etherscan", func(ctx context.Context) (interface{}, error) {
		return "local", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "local", result)

	// The distributed limiter stays off until the health monitor sees redis again
	result, err = proxy.Request(context.Background(), "etherscan", func(ctx context.Context) (interface{}, error) {
		return "local again", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "local again", result)
}

func TestRequest_RedisUnavailableAtStartup(t *testing.T) {
	tm := setupTestProxy(t)
	proxy, _ := setupProxyWithMocks(t, tm, testConfig(), false)

	result, err := proxy.Request(context.Background(), "etherscan", func(ctx context.Context) (interface{}, error) {
		return "fallback", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "fallback", result)
}

func TestRequest_UnknownProvider(t *testing.T) {
	tm := setupTestProxy(t)

	proxy, err := ratelimit.NewProxy(testConfig(), nil, tm.clock)
	require.NoError(t, err)
	defer func() { _ = proxy.Close() }()

	_, err = proxy.Request(context.Background(), "unknown", func(ctx context.Context) (interface{}, error) {
		t.Fatal("request should not run")
		return nil, nil
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestRequest_PropagatesRequestError(t *testing.T) {
	tm := setupTestProxy(t)

	proxy, err := ratelimit.NewProxy(testConfig(), nil, tm.clock)
	require.NoError(t, err)
	defer func() { _ = proxy.Close() }()

	boom := errors.New("boom")
	_, err = proxy.Request(context.Background(), "etherscan", func(ctx context.Context) (interface{}, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRequest_CanceledContext(t *testing.T) {
	tm := setupTestProxy(t)

	proxy, err := ratelimit.NewProxy(testConfig(), nil, tm.clock)
	require.NoError(t, err)
	defer func() { _ = proxy.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = proxy.Request(ctx, "etherscan", func(ctx context.Context) (interface{}, error) {
		return "never", nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRequest_AfterClose(t *testing.T) {
	tm := setupTestProxy(t)

	proxy, err := ratelimit.NewProxy(testConfig(), nil, tm.clock)
	require.NoError(t, err)
	require.NoError(t, proxy.Close())
	// Close is idempotent
	require.NoError(t, proxy.Close())

	_, err = proxy.Request(context.Background(), "etherscan", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, ratelimit.ErrProxyClosed)
}

func TestTypedRequest(t *testing.T) {
	tm := setupTestProxy(t)

	proxy, err := ratelimit.NewProxy(testConfig(), nil, tm.clock)
	require.NoError(t, err)
	defer func() { _ = proxy.Close() }()

	body, err := ratelimit.Request(context.Background(), proxy, "etherscan", func(ctx context.Context) ([]byte, error) {
		return []byte(`{"status":"1"}`), nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"status":"1"}`), body)

	t.Run("nil proxy runs directly", func(t *testing.T) {
		n, err := ratelimit.Request(context.Background(), nil, "etherscan", func(ctx context.Context) (int, error) {
			return 7, nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, n)
	})
}
