// ABOUTME: Guarded execution helpers that turn any failure into a fallback value
// ABOUTME: Used by the settings layer so a single bad read never reaches the caller

package guard

import "errors"

// errUnavailable marks a lookup that reported no value.
var errUnavailable = errors.New("value unavailable")

// Execute runs op once and returns its result. If op returns a non-nil error
// or panics, fallback is returned instead.
func Execute[T any](op func() (T, error), fallback T) (result T) {
	defer func() {
		if recover() != nil {
			result = fallback
		}
	}()

	v, err := op()
	if err != nil {
		return fallback
	}
	return v
}

// Value adapts a (value, ok) lookup. A false ok, or a panic, yields fallback.
func Value[T any](op func() (T, bool), fallback T) T {
	return Execute(func() (T, error) {
		v, ok := op()
		if !ok {
			return fallback, errUnavailable
		}
		return v, nil
	}, fallback)
}

// Call runs an operation that has no error return, recovering from panics.
func Call[T any](op func() T, fallback T) T {
	return Execute(func() (T, error) {
		return op(), nil
	}, fallback)
}
