package sendpigeon

import "fmt"

// Result holds the outcome of an API operation: either decoded response data
// or an *Error, never both. Expected failures (API errors, network failures,
// timeouts, validation) travel through Result instead of panicking, so call
// sites branch on OK rather than wrapping every call in error handling.
type Result[T any] struct {
	data T
	err  *Error
}

// Ok returns a successful Result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// Fail returns a failed Result carrying err.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		panic("sendpigeon: Fail called with nil error")
	}
	return Result[T]{err: err}
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool { return r.err == nil }

// Data returns the response data. It is the zero value of T when the
// operation failed; check OK or Err first.
func (r Result[T]) Data() T { return r.data }

// Err returns the error, or nil on success.
func (r Result[T]) Err() *Error { return r.err }

// Unwrap converts the Result into Go's native (value, error) form.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.data, nil
}

// Must returns the data or panics on failure. Useful for scripts and tests
// where a failed call should abort immediately.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic(fmt.Sprintf("sendpigeon: %v", r.err))
	}
	return r.data
}
