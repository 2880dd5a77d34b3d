package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/projectboard/internal/platform/httpclient"
)

// requester sends one JSON exchange through the instrumented client.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// call sends method to path under the client's base URL. in is encoded as
// the JSON body and must be nil for GET and DELETE; out, when non-nil,
// receives the decoded answer. Any status but want becomes a domain error.
func (r *requester) call(ctx context.Context, method, path string, want int, in, out any) error {
	body, err := encodeBody(method, in)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.close(ctx, resp)
	}
	switch {
	case err != nil && (resp == nil || resp.StatusCode == want):
		r.logger.ErrorContext(ctx, "board request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("breaker", r.client.CircuitBreakerState()),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	case resp.StatusCode != want:
		// Also reached when retries ran out on a retryable status: the
		// server's problem detail says more than the retry error.
		r.logger.DebugContext(ctx, "board answered with an error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return responseError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}

func encodeBody(method string, in any) (io.Reader, error) {
	switch method {
	case http.MethodGet, http.MethodDelete:
		if in != nil {
			return nil, fmt.Errorf("%s takes no body", method)
		}
		return http.NoBody, nil
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encoding body: %w", err)
		}
		return bytes.NewReader(raw), nil
	}
	return nil, fmt.Errorf("unsupported method %s", method)
}

func (r *requester) close(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing board response body", slog.Any("error", err))
	}
}
