package adapter

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisClient is the connection behind the shared provider rate limits
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient,RedisRateLimiter=MockRedisRateLimiter
type RedisClient interface {
	// Ping returns nil when the server answers
	Ping(ctx context.Context) error

	// NewRateLimiter returns a GCRA limiter sharing this connection
	NewRateLimiter() RedisRateLimiter

	Close() error
}

// RedisRateLimiter takes tokens from a limit shared by every process using the same key
type RedisRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RedisOptions selects the server and logical database
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

type goRedisClient struct {
	client *redis.Client
}

// NewRedisClient connects lazily; the first command dials the server
func NewRedisClient(opts RedisOptions) RedisClient {
	return &goRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
	}
}

func (r *goRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *goRedisClient) NewRateLimiter() RedisRateLimiter {
	return redis_rate.NewLimiter(r.client)
}

func (r *goRedisClient) Close() error {
	return r.client.Close()
}
