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
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/api-conventions/internal/platform/config"
	"github.com/jsamuelsen11/api-conventions/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// retryPolicy is the retry schedule for registry calls. Only idempotent
// requests are sent more than once. A Retry-After header on a 429 or 503
// replaces the computed backoff, capped at maxInterval.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     cfg.MaxAttempts,
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
	}
}

// attemptsFor returns how many times req may be sent.
func (p retryPolicy) attemptsFor(req *http.Request) int {
	if !idempotent(req.Method) {
		return 1
	}
	return p.maxAttempts
}

// delay returns the wait before retry number attempt (1-indexed). prev is the
// response that triggered the retry, nil after a transport error.
func (p retryPolicy) delay(attempt int, prev *http.Response, now time.Time) time.Duration {
	if d, ok := retryAfter(prev, now); ok {
		return min(d, p.maxInterval)
	}
	return p.backoff(attempt)
}

// backoff is exponential in attempt, capped at maxInterval, with ±25% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	delay = min(delay, float64(p.maxInterval))

	//nolint:gosec // jitter does not need a secure source
	delay += delay * jitterFraction * (2*rand.Float64() - 1)

	return time.Duration(max(delay, 0))
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// retryAfter reads Retry-After from a 429 or 503 response, given either in
// seconds or as an HTTP date.
func retryAfter(resp *http.Response, now time.Time) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
		return 0, false
	}

	v := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0), true
	}
	return 0, false
}

// doWithRetry sends req until it gets a non-retryable answer or the policy's
// attempts run out. Request bodies are buffered so they can be replayed. The
// result is written to resp rather than returned to keep the bodyclose linter
// quiet; the caller closes the response body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	bodyBytes, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	attempts := c.retry.attemptsFor(req)
	var (
		lastErr error
		prev    *http.Response
	)

	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, prev, lastErr); err != nil {
				return err
			}
		}

		resetRequestBody(req, bodyBytes)

		r, err := c.httpClient.Do(req)
		prev = nil
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)

		// The final answer keeps its body for the caller.
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}

		drainResponseBody(r)
		prev = r
	}

	return lastErr
}

// bufferRequestBody reads and closes the request body for replay. Returns nil
// if the body is nil.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return bodyBytes, nil
}

func resetRequestBody(req *http.Request, bodyBytes []byte) {
	if bodyBytes == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	req.ContentLength = int64(len(bodyBytes))
}

// drainResponseBody discards the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry logs the retry, records it on the client span and sleeps for
// the policy's delay or until ctx ends.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, prev *http.Response, lastErr error) error {
	delay := c.retry.delay(attempt, prev, time.Now())

	logging.FromContext(ctx).WarnContext(ctx, "retrying registry request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)
	trace.SpanFromContext(ctx).AddEvent("retry", trace.WithAttributes(
		attribute.Int("http.retry.attempt", attempt+1),
		attribute.Int64("http.retry.backoff_ms", delay.Milliseconds()),
	))

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// isRetryable reports whether a transport error may be retried. Only the
// caller's cancellation or deadline is final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether the registry's status is worth another
// attempt: 429 and every 5xx.
func isRetryableStatus(statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	return statusCode >= http.StatusInternalServerError
}
