//go:build windows

package dynlib

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
)

// Library is a DLL loaded from the System32 directory only.
type Library struct {
	dll *windows.LazyDLL
}

func Open(name string) (*Library, error) {
	dll := windows.NewLazySystemDLL(name)
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("%w: library %q: %w", ErrNotFound, name, err)
	}
	return &Library{dll: dll}, nil
}

func (l *Library) Name() string { return l.dll.Name }

func (l *Library) Symbol(name string) (Symbol, error) {
	proc := l.dll.NewProc(name)
	if err := proc.Find(); err != nil {
		return 0, fmt.Errorf("%w: procedure %q in %s: %w", ErrNotFound, name, l.dll.Name, err)
	}
	return Symbol(proc.Addr()), nil
}

// Call invokes a stdcall entry point and returns its result register.
//
//go:uintptrescapes
func (s Symbol) Call(args ...uintptr) uintptr {
	r1, _, _ := syscall.SyscallN(uintptr(s), args...)
	return r1
}
