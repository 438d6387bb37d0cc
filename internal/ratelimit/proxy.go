package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/config"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/metrics"
)

// ErrProxyClosed is returned for requests submitted after Close
var ErrProxyClosed = errors.New("proxy is closed")

// RequestFunc is a function that performs the actual API request
type RequestFunc func(ctx context.Context) (interface{}, error)

// requestResult wraps the result and error of a request
type requestResult struct {
	value interface{}
	err   error
}

// Proxy defines the interface for rate-limiting proxy
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request submits a rate-limited request for execution
	Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error)

	// Close gracefully shuts down the proxy
	Close() error
}

// proxy throttles explorer, RPC and metadata calls per provider.
// With a redis client the limit is shared across workers; otherwise, or while redis is down, a local limiter is used.
type proxy struct {
	config         config.RateLimiterConfig
	pool           pond.ResultPool[*requestResult]
	limiters       map[string]*providerLimiter
	redis          adapter.RedisClient
	clock          adapter.Clock
	closed         atomic.Bool
	closeOnce      sync.Once
	done           chan struct{}
	redisAvailable atomic.Bool
}

// providerLimiter holds the rate limiting state for a single provider
type providerLimiter struct {
	name               string
	config             config.RateLimitConfig
	distributedLimiter adapter.RedisRateLimiter
	localLimiter       *rate.Limiter
	preFilterLimiter   *rate.Limiter
}

// NewProxy creates a new rate-limiting proxy. rc may be nil for a local-only proxy.
func NewProxy(cfg config.RateLimiterConfig, rc adapter.RedisClient, clock adapter.Clock) (Proxy, error) {
	// Validate and set defaults
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	redisAvailable := false
	var distributedLimiter adapter.RedisRateLimiter
	if rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		redisAvailable = true
		if err := rc.Ping(ctx); err != nil {
			redisAvailable = false
			if !cfg.EnableLocalFallback {
				return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
			}
			logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
		}
		distributedLimiter = rc.NewRateLimiter()
	}

	limiters := make(map[string]*providerLimiter, len(cfg.Providers))
	for name, providerConfig := range cfg.Providers {
		// A local-only proxy owns the whole budget; a fallback limiter only a share of it
		localRate := float64(providerConfig.RequestsPerSecond)
		if rc != nil {
			localRate = max(localRate*cfg.LocalFallbackMultiplier, 1.0)
		}

		limiters[name] = &providerLimiter{
			name:               name,
			config:             providerConfig,
			distributedLimiter: distributedLimiter,
			localLimiter:       rate.NewLimiter(rate.Limit(localRate), providerConfig.Burst),
			preFilterLimiter:   rate.NewLimiter(rate.Limit(providerConfig.RequestsPerSecond), providerConfig.Burst),
		}
	}

	p := &proxy{
		config:   cfg,
		pool:     pond.NewResultPool[*requestResult](cfg.MaxWorkers, pond.WithQueueSize(cfg.MaxQueueSize)),
		limiters: limiters,
		redis:    rc,
		clock:    clock,
		done:     make(chan struct{}),
	}
	p.redisAvailable.Store(redisAvailable)

	if rc != nil {
		go p.monitorRedisHealth(clock.NewTicker(10 * time.Second))
	}

	logger.Info("Rate limit proxy initialized",
		zap.Int("max_workers", cfg.MaxWorkers),
		zap.Int("max_queue_size", cfg.MaxQueueSize),
		zap.Int("providers", len(cfg.Providers)),
		zap.Bool("distributed", rc != nil),
	)

	return p, nil
}

// Request submits a rate-limited request and returns its typed result.
// A nil proxy executes fn directly.
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, nil
	}
	return typed, nil
}

// Request blocks until a token is acquired and fn completes, the context is canceled
// or the provider's maximum queue time is exceeded
func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error) {
	if p.closed.Load() {
		return nil, ErrProxyClosed
	}

	limiter, ok := p.limiters[providerName]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not configured", providerName)
	}

	// Only the wait for a token is bounded by the queue time; fn runs on the caller's context
	queueCtx, cancel := context.WithTimeout(ctx, limiter.config.MaxQueueTime)
	defer cancel()

	task := p.pool.Submit(func() *requestResult {
		start := p.clock.Now()
		if err := p.acquireToken(queueCtx, limiter); err != nil {
			if ctx.Err() != nil {
				return &requestResult{err: ctx.Err()}
			}
			return &requestResult{err: fmt.Errorf("rate limit wait for %s: %w", limiter.name, err)}
		}
		metrics.RateLimitWait.WithLabelValues(limiter.name).Observe(p.clock.Since(start).Seconds())

		value, err := fn(ctx)
		return &requestResult{value: value, err: err}
	})

	result, err := task.Wait()
	if err != nil {
		return nil, err
	}
	if result.err != nil {
		return nil, result.err
	}
	return result.value, nil
}

// acquireToken acquires a rate limit token, blocking until one is available
func (p *proxy) acquireToken(ctx context.Context, limiter *providerLimiter) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !p.redisAvailable.Load() {
			if p.redis != nil && !p.config.EnableLocalFallback {
				return fmt.Errorf("redis rate limiter unavailable")
			}
			return limiter.localLimiter.Wait(ctx)
		}

		allowed, retryAfter, err := p.tryDistributedLimit(ctx, limiter)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.redisAvailable.Store(false)
			if !p.config.EnableLocalFallback {
				return fmt.Errorf("redis rate limiter unavailable: %w", err)
			}
			logger.Warn("Redis rate limiter error, falling back to local",
				zap.String("provider", limiter.name),
				zap.Error(err),
			)
		case allowed:
			return nil
		default:
			// Spread retries over 50-150% of retryAfter
			wait := max(retryAfter, 10*time.Millisecond)
			jitter := time.Duration(float64(wait) * (0.5 + rand.Float64())) //nolint:gosec,G404
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-p.clock.After(jitter):
			}
		}
	}
}

// tryDistributedLimit attempts to acquire a token from the distributed limiter
func (p *proxy) tryDistributedLimit(ctx context.Context, limiter *providerLimiter) (bool, time.Duration, error) {
	if limiter.distributedLimiter == nil {
		return false, 0, fmt.Errorf("distributed limiter not available")
	}

	// Pre-filter locally to reduce Redis pressure
	if err := limiter.preFilterLimiter.Wait(ctx); err != nil {
		return false, 0, err
	}

	redisKey := p.config.RedisKeyPrefix + limiter.name
	res, err := limiter.distributedLimiter.Allow(ctx, redisKey, redis_rate.PerSecond(limiter.config.RequestsPerSecond))
	if err != nil {
		return false, 0, err
	}

	if res.Allowed == 0 {
		logger.Debug("Rate limit token unavailable, waiting",
			zap.String("provider", limiter.name),
			zap.Duration("retry_after", res.RetryAfter),
		)
		return false, res.RetryAfter, nil
	}
	return true, 0, nil
}

// monitorRedisHealth periodically pings Redis and restores the distributed limiter when it recovers
func (p *proxy) monitorRedisHealth(ticker *time.Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := p.redis.Ping(ctx)
		cancel()

		available := err == nil
		if wasAvailable := p.redisAvailable.Swap(available); !wasAvailable && available {
			logger.Info("Redis connection restored")
		}
	}
}

// Close stops accepting requests and waits for in-flight ones
func (p *proxy) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.done)

		logger.Info("Shutting down rate limit proxy")

		p.pool.StopAndWait()

		if p.redis != nil {
			if closeErr := p.redis.Close(); closeErr != nil {
				logger.Warn("Error closing Redis connection", zap.Error(closeErr))
				err = closeErr
			}
		}

		logger.Info("Rate limit proxy shutdown complete")
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimiterConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	providers := make(map[string]config.RateLimitConfig, len(cfg.Providers))
	for name, provider := range cfg.Providers {
		if provider.RequestsPerSecond <= 0 {
			return fmt.Errorf("provider %s: requests_per_second must be positive", name)
		}
		if provider.Burst <= 0 {
			provider.Burst = provider.RequestsPerSecond
		}
		if provider.MaxQueueTime <= 0 {
			provider.MaxQueueTime = 5 * time.Minute
		}
		providers[name] = provider
	}
	cfg.Providers = providers

	if cfg.RedisKeyPrefix == "" {
		cfg.RedisKeyPrefix = "ff:account-sync:limiter:"
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = runtime.NumCPU() * 10
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 10000
	}
	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 0.5
	}

	return nil
}
