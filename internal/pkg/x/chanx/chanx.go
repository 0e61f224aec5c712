// Package chanx provides context-aware channel send and receive helpers so
// that pipeline stages never block past the cancellation of their context.
package chanx

import "context"

// Recv waits for a value from ch or for ctx to be canceled, whichever comes
// first. The boolean result is false when ctx was done or ch was closed.
func Recv[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, false
	case v, ok := <-ch:
		if !ok {
			return zero, false
		}
		return v, true
	}
}

// Send delivers v to ch unless ctx is canceled first. It reports whether the
// value was sent.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- v:
		return true
	}
}
