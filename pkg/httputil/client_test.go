package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/govdash/pkg/logger"
)

func TestNew(t *testing.T) {
	client := New(logger.Nop())

	require.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	assert.Equal(t, 3, client.retryConfig.MaxRetries)
	assert.True(t, client.retryConfig.Enabled)
	assert.Nil(t, client.limiter)
}

func TestOptions(t *testing.T) {
	client := NewWithTimeout(logger.Nop(), 5*time.Second).WithRetry(5, 2*time.Second)

	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Equal(t, 5, client.retryConfig.MaxRetries)
	assert.Equal(t, 2*time.Second, client.retryConfig.InitialDelay)

	client.DisableRetry().WithRateLimit(10, 1)
	assert.False(t, client.retryConfig.Enabled)
	assert.NotNil(t, client.limiter)
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte("Company Name,Ticker\n"))
	}))
	defer server.Close()

	body, err := New(logger.Nop()).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Company Name,Ticker\n", string(body))
}

func TestFetch_RetryOn5xx(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := New(logger.Nop()).WithRetry(3, time.Millisecond)
	body, err := client.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, int32(3), attempts.Load())
}

func TestFetch_GivesUp(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(logger.Nop()).WithRetry(2, time.Millisecond)
	_, err := client.Fetch(context.Background(), server.URL)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestFetch_NoRetryOn4xx(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(logger.Nop()).WithRetry(3, time.Millisecond).Fetch(context.Background(), server.URL)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestFetch_ContextCancelledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New(logger.Nop()).WithRetry(3, time.Hour).Fetch(ctx, server.URL)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetch_TooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chunk := strings.Repeat("x", 1<<20)
		for i := 0; i <= maxBodySize>>20; i++ {
			if _, err := w.Write([]byte(chunk)); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	_, err := New(logger.Nop()).Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		statusCode int
		want       bool
	}{
		{200, false},
		{400, false},
		{404, false},
		{429, true},
		{500, true},
		{503, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRetryableError(tt.statusCode), "status %d", tt.statusCode)
	}
}
