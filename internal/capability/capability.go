// Package capability models operating system entry points that may or may not
// exist on the running machine.
package capability

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrMissing reports that an entry point every supported host must provide
// could not be found.
var ErrMissing = errors.New("required capability missing")

// Missing wraps err as a fatal absence of the named capability.
func Missing(name string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrMissing, name)
	}
	return fmt.Errorf("%w: %s: %w", ErrMissing, name, err)
}

// Optional holds either a present value or nothing. The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) Present() bool {
	return o.present
}

// OrElse returns the value if present, otherwise def.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// Try runs lookup and records its result. A failed lookup is not an error for
// optional capabilities, it only narrows which strategies are available.
func Try[T any](name string, lookup func() (T, error)) Optional[T] {
	v, err := lookup()
	if err != nil {
		slog.Debug("optional capability unavailable", "name", name, "error", err)
		return None[T]()
	}
	return Some(v)
}

// Map converts a present value with fn. Absent stays absent.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	v, ok := o.Get()
	if !ok {
		return None[U]()
	}
	return Some(fn(v))
}

// Then chains a second fallible lookup onto a present value.
func Then[T, U any](o Optional[T], name string, lookup func(T) (U, error)) Optional[U] {
	v, ok := o.Get()
	if !ok {
		return None[U]()
	}
	return Try(name, func() (U, error) { return lookup(v) })
}
