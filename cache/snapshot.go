package cache

import "sync/atomic"

// Snapshot holds an immutable value that is replaced wholesale, never
// patched: the generated lookup table's in-memory home. Readers load the
// current snapshot without locks; regeneration builds a fresh value and
// swaps it in.
type Snapshot[T any] struct {
	ptr atomic.Pointer[T]
}

// NewSnapshot creates a holder with an initial value. A nil initial value
// is allowed; Load reports ok=false until the first Replace.
func NewSnapshot[T any](initial *T) *Snapshot[T] {
	s := &Snapshot[T]{}
	if initial != nil {
		s.ptr.Store(initial)
	}
	return s
}

// Load returns the current value.
func (s *Snapshot[T]) Load() (*T, bool) {
	v := s.ptr.Load()
	return v, v != nil
}

// Replace swaps in a new value and returns the previous one.
func (s *Snapshot[T]) Replace(v *T) *T {
	return s.ptr.Swap(v)
}
