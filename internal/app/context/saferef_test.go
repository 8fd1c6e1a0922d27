package appctx

import (
	"sync"
	"testing"
)

func TestSafeRef_GetReturnsInitialValue(t *testing.T) {
	t.Parallel()

	ref := NewRef("default")
	if got := ref.Get(); got != "default" {
		t.Errorf("Get() = %q, want %q", got, "default")
	}
}

func TestSafeRef_ConcurrentTally(t *testing.T) {
	t.Parallel()

	ref := NewRef(map[string]int{})

	const workers = 50
	var wg sync.WaitGroup
	for i := range workers {
		wg.Go(func() {
			key := "matched"
			if i%2 == 0 {
				key = "declared"
			}
			ref.Update(func(m *map[string]int) { (*m)[key]++ })
		})
	}
	wg.Wait()

	got := ref.Get()
	if got["matched"] != workers/2 || got["declared"] != workers/2 {
		t.Errorf("tally = %v, want %d of each", got, workers/2)
	}
}

func TestSafeRef_UpdateStruct(t *testing.T) {
	t.Parallel()

	type counts struct{ ok, failed int }
	ref := NewRef(counts{})

	ref.Update(func(c *counts) { c.ok++ })
	ref.Update(func(c *counts) { c.failed += 2 })

	if got := ref.Get(); got != (counts{ok: 1, failed: 2}) {
		t.Errorf("Get() = %+v, want {ok:1 failed:2}", got)
	}
}
