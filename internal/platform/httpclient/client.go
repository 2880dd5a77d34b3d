// Package httpclient is the outbound HTTP client used by projectctl to reach
// a board server. Each call passes, in order, through a circuit breaker, a
// client-side rate limiter, request metadata propagation, a client span and
// a retry loop with jittered exponential backoff:
//
//	client := httpclient.New(&cfg.Client, "board-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// Request and correlation IDs placed on the context with WithRequestID and
// WithCorrelationID are forwarded as headers.
package httpclient

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/projectboard/internal/platform/config"
	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
)

// Client sends requests to one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	peer    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil when unlimited
	retry   retryPolicy
	metrics *telemetry.Metrics
}

// New builds a Client from cfg. peer names the downstream service in spans,
// metrics and breaker logs. A nil metrics disables the instruments.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		peer:    peer,
		retry:   newRetryPolicy(cfg.Retry),
		metrics: metrics,
	}

	maxFailures := clampUint32(cfg.CircuitBreaker.MaxFailures)
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        peer,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}

	return c
}

// Do sends req and returns the response, whose body the caller closes.
//
// A retryable status that survives every attempt is returned together with
// an error, so the caller can still read the server's error body. Breaker
// rejections, limiter waits that outlive ctx, and transport failures return
// a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		propagate(ctx, req.Header)
		ctx, span := c.startSpan(ctx, req)
		defer span.End()

		r, err := c.send(ctx, req.WithContext(ctx))
		endSpan(span, r, err)
		return r, err
	})

	c.recordMetrics(ctx, req.Method, resp, err, time.Since(start))
	return resp, err
}

// BaseURL returns the configured downstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CircuitBreakerState reports "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
