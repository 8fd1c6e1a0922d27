package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/api-conventions/internal/platform/health"
	"github.com/jsamuelsen11/api-conventions/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	checkerA := mocks.NewMockHealthChecker(t)
	checkerA.EXPECT().Name().Return("manifest")
	checkerA.EXPECT().HealthCheck(mock.Anything).Return(nil)

	checkerB := mocks.NewMockHealthChecker(t)
	checkerB.EXPECT().Name().Return("redis-cache")
	checkerB.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(checkerA)
	r.Register(checkerB)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["manifest"] != nil {
		t.Errorf("manifest check = %v, want nil", results["manifest"])
	}
	if results["redis-cache"] != nil {
		t.Errorf("redis-cache check = %v, want nil", results["redis-cache"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("manifest")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthyErr := errors.New("connection refused")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("convention-registry")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(unhealthyErr)

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["manifest"] != nil {
		t.Errorf("manifest check = %v, want nil", results["manifest"])
	}
	if results["convention-registry"] == nil {
		t.Fatal("convention-registry check = nil, want error")
	}
	if results["convention-registry"].Error() != "connection refused" {
		t.Errorf("convention-registry check = %q, want %q", results["convention-registry"].Error(), "connection refused")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("convention-registry")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["convention-registry"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["convention-registry"])
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("manifest")
	first.EXPECT().HealthCheck(mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("manifest")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["manifest"]
	if !ok {
		t.Fatal(`expected result for key "manifest", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("manifest check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}

func TestCheckAll_AppliesPerCheckTimeout(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("convention-registry")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return errors.New("registry did not answer")
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)

	start := time.Now()
	results := r.CheckAll(context.Background())

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll took %v, want bounded by the check timeout", elapsed)
	}
	if !errors.Is(results["convention-registry"], context.DeadlineExceeded) {
		t.Errorf("convention-registry check = %v, want DeadlineExceeded", results["convention-registry"])
	}
}

func TestCheckAll_RunsConcurrently(t *testing.T) {
	t.Parallel()

	r := health.New()
	for _, name := range []string{"manifest", "convention-registry", "redis-cache"} {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(name)
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
			time.Sleep(100 * time.Millisecond)
			return nil
		})
		r.Register(c)
	}

	start := time.Now()
	results := r.CheckAll(context.Background())

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if elapsed := time.Since(start); elapsed >= 300*time.Millisecond {
		t.Errorf("CheckAll took %v, want checks to overlap", elapsed)
	}
}

func TestRegister_IgnoresNil(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(nil)

	if results := r.CheckAll(context.Background()); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
