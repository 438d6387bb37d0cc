package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-account-sync/internal/logger"
)

// maxErrorBodySize caps how much of a failed response is kept in the error
const maxErrorBodySize = 512

// HTTPClient fetches explorer and metadata documents
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// GetBytes performs a GET request and returns the raw body of a 200 response
	GetBytes(ctx context.Context, url string) ([]byte, error)
}

// StatusError is returned for a non-200 response that is not retried
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err carries the given HTTP status code
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

type retryingHTTPClient struct {
	client  *http.Client
	backoff func() backoff.BackOff
}

// NewHTTPClient returns a client that retries network failures and 429 responses with exponential backoff
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &retryingHTTPClient{
		client: &http.Client{Timeout: timeout},
		backoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 2 * time.Second
			b.MaxInterval = 30 * time.Second
			b.MaxElapsedTime = time.Minute
			b.RandomizationFactor = 0.5
			return b
		},
	}
}

func (c *retryingHTTPClient) GetBytes(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.Redacted()))
			}
		}()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return &StatusError{StatusCode: resp.StatusCode}
		case resp.StatusCode != http.StatusOK:
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
			return backoff.Permanent(&StatusError{StatusCode: resp.StatusCode, Body: string(snippet)})
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}
		return nil
	}

	notify := func(err error, next time.Duration) {
		logger.Warn("request failed, retrying", zap.Error(err), zap.Duration("next_retry_in", next))
	}

	if err := backoff.RetryNotify(attempt, backoff.WithContext(c.backoff(), ctx), notify); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}
	return body, nil
}
