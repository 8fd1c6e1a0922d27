package appctx

import "sync"

// SafeRef guards a value shared by the goroutines of one request, such as
// tallies collected while a batch fans out.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a SafeRef holding val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns the current value under a read lock. Reference types such as
// maps are returned as-is, so read them only once writers are done.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Update applies fn to the value under the write lock.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}
