// Package remote fetches auxiliary detail from sibling services.
//
// A lookup either finds a value or is absent. Transport failures, timeouts,
// non-200 responses and undecodable bodies are all reported as absent; they
// never surface as errors to callers.
package remote

import "context"

// Result is the outcome of a single lookup: a value, or nothing.
type Result[T any] struct {
	value T
	found bool
}

// Found wraps a successfully fetched value.
func Found[T any](v T) Result[T] {
	return Result[T]{value: v, found: true}
}

// Absent reports that the value could not be obtained, for whatever reason.
func Absent[T any]() Result[T] {
	return Result[T]{}
}

// Get returns the value and whether it was found.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.found
}

func (r Result[T]) IsFound() bool {
	return r.found
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (r Result[T]) Ptr() *T {
	if !r.found {
		return nil
	}
	v := r.value
	return &v
}

// Source looks up detail records by integer id. Implementations must be safe
// for concurrent use and should honour ctx cancellation.
type Source[T any] interface {
	FetchByID(ctx context.Context, id int) Result[T]
}

// SourceFunc adapts an ordinary function to a Source.
type SourceFunc[T any] func(ctx context.Context, id int) Result[T]

func (f SourceFunc[T]) FetchByID(ctx context.Context, id int) Result[T] {
	return f(ctx, id)
}
