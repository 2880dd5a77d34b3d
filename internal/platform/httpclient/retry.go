package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/projectboard/internal/platform/config"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
)

// jitter spreads each delay uniformly over ±25%.
const jitter = 0.25

// retryPolicy decides whether and when an attempt is repeated.
type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   cfg.MaxAttempts,
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// delay returns the wait before retry n (n >= 1). The exponential value is
// capped at the ceiling before jitter is applied.
func (p retryPolicy) delay(n int) time.Duration {
	d := min(float64(p.initial)*math.Pow(p.multiplier, float64(n-1)), float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1) //nolint:gosec // jitter needs no crypto randomness
	return time.Duration(max(d, 0))
}

// after honours a Retry-After given in seconds, bounded by the ceiling.
func (p retryPolicy) after(resp *http.Response, n int) time.Duration {
	d := p.delay(n)
	if resp == nil {
		return d
	}
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return d
	}
	return min(max(d, time.Duration(secs)*time.Second), p.ceiling)
}

// retryableErr reports whether a transport error is worth another attempt.
// Only the caller giving up is final.
func retryableErr(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// idempotent lists the methods that may be sent again after the server
// could have acted on them. PATCH is included because the board's only
// PATCH sets a status to a given value.
var idempotent = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
	http.MethodPut:     true,
	http.MethodDelete:  true,
	http.MethodPatch:   true,
}

// replayable reports whether a failed attempt of method may be repeated.
// Other methods are only repeated when the server cannot have acted: the
// connection was never made, or it answered 429.
func replayable(method string, status int, err error) bool {
	if idempotent[method] {
		return true
	}
	if err != nil {
		var opErr *net.OpError
		return errors.As(err, &opErr) && opErr.Op == "dial"
	}
	return status == http.StatusTooManyRequests
}

// send runs the attempts for req. The body is buffered once and replayed on
// every attempt. When the last attempt still gets a retryable status, or the
// method may not be replayed, that response comes back with its body open
// alongside the error.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.attempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retry.attempts)
	}

	payload, err := readBody(req)
	if err != nil {
		return nil, err
	}

	var (
		last    *http.Response
		lastErr error
	)
	for n := range c.retry.attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, last, lastErr); err != nil {
				return nil, err
			}
			discard(last)
			last = nil
		}
		if payload != nil {
			req.Body = io.NopCloser(bytes.NewReader(payload))
			req.ContentLength = int64(len(payload))
		}

		resp, err := c.http.Do(req)
		switch {
		case err != nil:
			if !retryableErr(err) || !replayable(req.Method, 0, err) {
				return nil, err
			}
			lastErr = err
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		default:
			last = resp
			lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
			if !replayable(req.Method, resp.StatusCode, nil) {
				return last, lastErr
			}
		}
	}

	return last, lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, n int, last *http.Response, cause error) error {
	wait := c.retry.after(last, n)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		discard(last)
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// discard drains and closes resp so the connection can be reused.
func discard(resp *http.Response) {
	if resp == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
