// Package optional provides Optional, the present/absent wrapper returned by
// repository lookups. Absence is a normal outcome and is never an error.
package optional

import (
	"usersvc/internal/errors"
)

// ErrAbsent is returned when the value of an empty Optional is requested.
var ErrAbsent = errors.New("optional: value is absent")

// Optional is a tagged union of Present(value) and Absent.
// The zero value is Absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Of wraps a present value.
func Of[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// Empty returns an absent Optional.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the value and whether it was present, comma-ok style.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the value or ErrAbsent.
func (o Optional[T]) Unwrap() (T, error) {
	if !o.present {
		var zero T

		return zero, ErrAbsent
	}

	return o.value, nil
}

// OrElse returns the value when present and fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}

	return o.value
}
