// Package result provides Result, the success/failure outcome returned by every
// command handler. A Result holds either a value or an error, never both.
package result

import (
	"usersvc/internal/errors"
)

var (
	// ErrUnwrapFailure is reported when the value of a failed Result is requested.
	ErrUnwrapFailure = errors.New("result: unwrap called on failure")

	// ErrNilFailure is stored when Failure is given a nil error.
	ErrNilFailure = errors.New("result: failure without error")
)

// Result is a tagged union of Success(value) and Failure(error).
// The zero value is a failure carrying ErrNilFailure.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Success wraps a value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure wraps an error. A nil err is replaced by ErrNilFailure so that a
// failure always reports why it failed.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}

	return Result[T]{err: err}
}

// IsSuccess reports whether r holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether r holds an error.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Err returns the failure error, or nil for a success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return ErrNilFailure
	}

	return r.err
}

// Unwrap returns the value of a success. Unwrapping a failure returns the zero
// value and an error matching both ErrUnwrapFailure and the original cause.
func (r Result[T]) Unwrap() (T, error) {
	if !r.ok {
		var zero T

		return zero, errors.Join(ErrUnwrapFailure, r.Err())
	}

	return r.value, nil
}

// Match runs exactly one of the callbacks depending on the variant.
func (r Result[T]) Match(onSuccess func(T), onFailure func(error)) {
	if r.ok {
		onSuccess(r.value)

		return
	}
	onFailure(r.Err())
}

// Fold collapses r into a single value, one callback per variant.
func Fold[T, U any](r Result[T], onSuccess func(T) U, onFailure func(error) U) U {
	if r.ok {
		return onSuccess(r.value)
	}

	return onFailure(r.Err())
}

// Map transforms the value of a success and passes failures through untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Failure[U](r.Err())
	}

	return Success(fn(r.value))
}
