package httpclient

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/jsamuelsen11/api-conventions/internal/platform/config"
)

func testPolicy() retryPolicy {
	return newRetryPolicy(config.RetryConfig{
		MaxAttempts:     4,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		Multiplier:      2.0,
	})
}

func TestRetryPolicy_BackoffWithinJitter(t *testing.T) {
	t.Parallel()

	p := testPolicy()

	for attempt := 1; attempt <= 4; attempt++ {
		base := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
		lo := time.Duration(base * (1 - jitterFraction))
		hi := time.Duration(base * (1 + jitterFraction))

		for range 200 {
			if d := p.backoff(attempt); d < lo || d > hi {
				t.Fatalf("backoff(%d) = %v, want within [%v, %v]", attempt, d, lo, hi)
			}
		}
	}
}

func TestRetryPolicy_BackoffCapped(t *testing.T) {
	t.Parallel()

	p := testPolicy()
	limit := time.Duration(float64(p.maxInterval) * (1 + jitterFraction))

	for range 200 {
		if d := p.backoff(20); d > limit {
			t.Fatalf("backoff(20) = %v, want <= %v", d, limit)
		}
	}
}

func TestRetryPolicy_AttemptsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, 4},
		{http.MethodHead, 4},
		{http.MethodPut, 4},
		{http.MethodDelete, 4},
		{http.MethodPost, 1},
		{http.MethodPatch, 1},
	}

	p := testPolicy()
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequestWithContext(context.Background(), tt.method, "http://registry/api/v1/conventions", http.NoBody)
			if err != nil {
				t.Fatalf("creating request: %v", err)
			}
			if got := p.attemptsFor(req); got != tt.want {
				t.Errorf("attemptsFor(%s) = %d, want %d", tt.method, got, tt.want)
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status int
		header string
		want   time.Duration
		wantOK bool
	}{
		{"seconds on 503", http.StatusServiceUnavailable, "3", 3 * time.Second, true},
		{"seconds on 429", http.StatusTooManyRequests, " 1 ", time.Second, true},
		{"http date", http.StatusServiceUnavailable, now.Add(5 * time.Second).Format(http.TimeFormat), 5 * time.Second, true},
		{"date in the past", http.StatusServiceUnavailable, now.Add(-time.Minute).Format(http.TimeFormat), 0, true},
		{"negative seconds", http.StatusServiceUnavailable, "-1", 0, false},
		{"garbage", http.StatusServiceUnavailable, "soon", 0, false},
		{"absent", http.StatusServiceUnavailable, "", 0, false},
		{"ignored on 500", http.StatusInternalServerError, "3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := &http.Response{StatusCode: tt.status, Header: http.Header{}}
			if tt.header != "" {
				resp.Header.Set("Retry-After", tt.header)
			}

			got, ok := retryAfter(resp, now)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("retryAfter() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRetryAfter_NilResponse(t *testing.T) {
	t.Parallel()

	if _, ok := retryAfter(nil, time.Now()); ok {
		t.Error("retryAfter(nil) ok = true, want false")
	}
}

func TestRetryPolicy_DelayPrefersRetryAfter(t *testing.T) {
	t.Parallel()

	p := testPolicy()
	now := time.Now()

	resp := &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{"Retry-After": {"1"}}}
	if got := p.delay(1, resp, now); got != time.Second {
		t.Errorf("delay() = %v, want 1s from Retry-After", got)
	}

	resp.Header.Set("Retry-After", "120")
	if got := p.delay(1, resp, now); got != p.maxInterval {
		t.Errorf("delay() = %v, want cap %v", got, p.maxInterval)
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("dial: %w", context.DeadlineExceeded), false},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, true},
		{"unknown", errors.New("unexpected EOF"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, false},
		{http.StatusNotFound, false},
		{http.StatusConflict, false},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			if got := isRetryableStatus(tt.status); got != tt.want {
				t.Errorf("isRetryableStatus(%d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
