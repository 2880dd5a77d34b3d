package httpclient

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/projectboard/internal/platform/config"
)

func testPolicy() retryPolicy {
	return retryPolicy{
		attempts:   3,
		initial:    100 * time.Millisecond,
		ceiling:    time.Second,
		multiplier: 2,
	}
}

func TestRetryPolicy_DelayGrowsWithinJitter(t *testing.T) {
	t.Parallel()

	p := testPolicy()
	for n, base := range map[int]time.Duration{
		1: 100 * time.Millisecond,
		2: 200 * time.Millisecond,
		3: 400 * time.Millisecond,
		9: time.Second,
	} {
		lo := time.Duration(float64(base) * (1 - jitter))
		hi := time.Duration(float64(base) * (1 + jitter))
		for range 200 {
			d := p.delay(n)
			assert.GreaterOrEqual(t, d, lo, "retry %d", n)
			assert.LessOrEqual(t, d, hi, "retry %d", n)
		}
	}
}

func TestRetryPolicy_After(t *testing.T) {
	t.Parallel()

	withHeader := func(v string) *http.Response {
		return &http.Response{Header: http.Header{"Retry-After": []string{v}}}
	}

	tests := []struct {
		name   string
		resp   *http.Response
		lo, hi time.Duration
	}{
		{name: "no response", resp: nil, lo: 75 * time.Millisecond, hi: 125 * time.Millisecond},
		{name: "no header", resp: &http.Response{Header: http.Header{}}, lo: 75 * time.Millisecond, hi: 125 * time.Millisecond},
		{name: "date form ignored", resp: withHeader("Wed, 21 Oct 2026 07:28:00 GMT"), lo: 75 * time.Millisecond, hi: 125 * time.Millisecond},
		{name: "seconds capped at ceiling", resp: withHeader(strconv.Itoa(30)), lo: time.Second, hi: time.Second},
	}

	p := testPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := p.after(tt.resp, 1)
			assert.GreaterOrEqual(t, d, tt.lo)
			assert.LessOrEqual(t, d, tt.hi)
		})
	}
}

func TestRetryableErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "net error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "other", err: errors.New("EOF"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, retryableErr(tt.err))
		})
	}
}

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	for code, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusCreated:             false,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusConflict:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
	} {
		assert.Equal(t, want, retryableStatus(code), "status %d", code)
	}
}

func TestReplayable(t *testing.T) {
	t.Parallel()

	refused := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	reset := &net.OpError{Op: "read", Err: errors.New("connection reset by peer")}

	tests := []struct {
		name   string
		method string
		status int
		err    error
		want   bool
	}{
		{name: "GET on 500", method: http.MethodGet, status: http.StatusInternalServerError, want: true},
		{name: "PATCH on 504", method: http.MethodPatch, status: http.StatusGatewayTimeout, want: true},
		{name: "GET on reset", method: http.MethodGet, err: reset, want: true},
		{name: "POST on 429", method: http.MethodPost, status: http.StatusTooManyRequests, want: true},
		{name: "POST on refused dial", method: http.MethodPost, err: refused, want: true},
		{name: "POST on 500", method: http.MethodPost, status: http.StatusInternalServerError},
		{name: "POST on 504", method: http.MethodPost, status: http.StatusGatewayTimeout},
		{name: "POST on reset", method: http.MethodPost, err: reset},
		{name: "POST on EOF", method: http.MethodPost, err: errors.New("EOF")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, replayable(tt.method, tt.status, tt.err))
		})
	}
}

// postOnce sends one POST through a three-attempt client to a server that
// answers first for its first call and 201 afterwards. It returns the status
// the caller saw, how many requests reached the server, and the error.
func postOnce(t *testing.T, first int) (int, int32, error) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(first)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	c := New(&config.ClientConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	}, "board-api", nil, slog.New(slog.DiscardHandler))

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, srv.URL+"/api/v1/projects",
		strings.NewReader(`{"title":"Board","description":"Ship it","people":2}`))
	require.NoError(t, err)

	resp, err := c.Do(t.Context(), req)
	require.NotNil(t, resp)
	_ = resp.Body.Close()
	return resp.StatusCode, hits.Load(), err
}

func TestSend_PostNotRepeatedAfterServerError(t *testing.T) {
	t.Parallel()

	status, hits, err := postOnce(t, http.StatusInternalServerError)

	assert.Equal(t, int32(1), hits)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.ErrorContains(t, err, "HTTP 500")
}

func TestSend_PostNotRepeatedAfterGatewayTimeout(t *testing.T) {
	t.Parallel()

	status, hits, err := postOnce(t, http.StatusGatewayTimeout)

	assert.Equal(t, int32(1), hits)
	assert.Equal(t, http.StatusGatewayTimeout, status)
	assert.Error(t, err)
}

func TestSend_PostRepeatedAfterTooManyRequests(t *testing.T) {
	t.Parallel()

	status, hits, err := postOnce(t, http.StatusTooManyRequests)

	require.NoError(t, err)
	assert.Equal(t, int32(2), hits)
	assert.Equal(t, http.StatusCreated, status)
}
