package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPClient() *retryingHTTPClient {
	return &retryingHTTPClient{
		client: &http.Client{Timeout: time.Second},
		backoff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), 3)
		},
	}
}

func TestGetBytes_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"status":"1"}`))
	}))
	defer srv.Close()

	body, err := newTestHTTPClient().GetBytes(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"1"}`, string(body))
}

func TestGetBytes_RetriesTooManyRequests(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`ok`))
	}))
	defer srv.Close()

	body, err := newTestHTTPClient().GetBytes(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetBytes_StatusErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := newTestHTTPClient().GetBytes(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadGateway))
	assert.Contains(t, err.Error(), "upstream down")
	assert.Equal(t, int32(1), calls.Load())
}

func TestBase64Decode(t *testing.T) {
	codec := NewBase64()

	padded, err := codec.Decode("eyJhIjoxfQ==")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(padded))

	unpadded, err := codec.Decode("eyJhIjoxfQ")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(unpadded))

	_, err = codec.Decode("%%%")
	assert.Error(t, err)
}
