// Package dynlib loads system libraries and resolves entry points in them at
// runtime, so callers can probe for APIs that only exist on newer systems.
package dynlib

import (
	"errors"

	"github.com/tinyrange/hidpi/internal/capability"
)

// ErrNotFound is wrapped by every failed Open or Symbol lookup.
var ErrNotFound = errors.New("not found")

// Symbol is the address of a resolved entry point.
type Symbol uintptr

// Optional opens the named library, swallowing the failure.
func Optional(name string) capability.Optional[*Library] {
	return capability.Try(name, func() (*Library, error) {
		return Open(name)
	})
}

// OptionalSymbol resolves name in lib when lib is present.
func OptionalSymbol(lib capability.Optional[*Library], name string) capability.Optional[Symbol] {
	return capability.Then(lib, name, func(l *Library) (Symbol, error) {
		return l.Symbol(name)
	})
}
