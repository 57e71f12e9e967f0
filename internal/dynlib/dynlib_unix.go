//go:build darwin || (linux && (amd64 || arm64))

package dynlib

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Library is a handle returned by dlopen. It is never closed; entry points
// resolved from it stay valid until the process exits.
type Library struct {
	name   string
	handle uintptr
}

// Open loads name with RTLD_LAZY|RTLD_GLOBAL so its classes and symbols are
// visible to later lookups through other handles.
func Open(name string) (*Library, error) {
	h, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: library %q: %w", ErrNotFound, name, err)
	}
	return &Library{name: name, handle: h}, nil
}

func (l *Library) Name() string { return l.name }

func (l *Library) Symbol(name string) (Symbol, error) {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: symbol %q in %s: %w", ErrNotFound, name, l.name, err)
	}
	return Symbol(addr), nil
}

// Call invokes the entry point with integer/pointer arguments and returns the
// first result register.
//
//go:uintptrescapes
func (s Symbol) Call(args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(uintptr(s), args...)
	return r1
}
