//go:build !darwin && !windows && !(linux && (amd64 || arm64))

package dynlib

import (
	"errors"
	"fmt"
)

type Library struct {
	name string
}

func Open(name string) (*Library, error) {
	return nil, fmt.Errorf("%w: library %q: %w", ErrNotFound, name, errors.ErrUnsupported)
}

func (l *Library) Name() string { return l.name }

func (l *Library) Symbol(name string) (Symbol, error) {
	return 0, fmt.Errorf("%w: symbol %q: %w", ErrNotFound, name, errors.ErrUnsupported)
}

func (s Symbol) Call(args ...uintptr) uintptr { return 0 }
