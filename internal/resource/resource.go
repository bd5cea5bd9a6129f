package resource

// Package resource provides the one fetch lifecycle every screen shares:
// a value moves idle -> loading -> ready or failed, and each refetch
// replaces it wholesale with the server's payload.

import "sync"

// State is the lifecycle phase of a fetched value.
type State int

const (
	// StateIdle means no fetch has been issued yet
	StateIdle State = iota

	// StateLoading means a fetch is in flight
	StateLoading

	// StateReady means the last fetch succeeded and the value is current
	StateReady

	// StateFailed means the last fetch failed
	StateFailed
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Resource holds a server-fetched value together with its lifecycle state.
// It replaces the per-screen isLoading/error/data flag triples. Generation
// counting makes stale completions harmless: a fetch that was superseded by
// a newer Begin is dropped instead of overwriting fresher state.
type Resource[T any] struct {
	mu    sync.RWMutex
	state State
	value T
	err   error
	gen   uint64
}

// New returns an idle resource.
func New[T any]() *Resource[T] {
	return &Resource[T]{}
}

// Begin marks a fetch as in flight and returns its generation. The matching
// Resolve or Fail must pass the same generation back.
func (r *Resource[T]) Begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = StateLoading
	r.err = nil
	r.gen++
	return r.gen
}

// Resolve stores a successful payload. A stale generation is ignored.
func (r *Resource[T]) Resolve(gen uint64, value T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return false
	}
	r.state = StateReady
	r.value = value
	r.err = nil
	return true
}

// Fail stores a failed fetch. A stale generation is ignored.
func (r *Resource[T]) Fail(gen uint64, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return false
	}
	r.state = StateFailed
	r.err = err
	return true
}

// Set replaces the value directly, e.g. with a mutation's response payload,
// and marks the resource ready.
func (r *Resource[T]) Set(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.state = StateReady
	r.value = value
	r.err = nil
}

// Get returns the current value and state.
func (r *Resource[T]) Get() (T, State) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value, r.state
}

// Value returns the current value regardless of state.
func (r *Resource[T]) Value() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// Err returns the failure of the last fetch, or nil.
func (r *Resource[T]) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Loading reports whether a fetch is in flight.
func (r *Resource[T]) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state == StateLoading
}
