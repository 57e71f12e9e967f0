//go:build windows

package hidpi

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/tinyrange/hidpi/internal/capability"
	"github.com/tinyrange/hidpi/internal/dynlib"
)

const (
	monitorDefaultToPrimary = 0x00000001
	mdtEffectiveDPI         = 0
	logPixelsX              = 88

	// Returned by SetProcessDpiAwareness when awareness was already set,
	// either by an earlier call or by the application manifest.
	eAccessDenied = windows.Errno(0x80070005)
)

// required resolves baseline entry points, keeping the first failure.
type required struct {
	err error
}

func (r *required) library(name string) *dynlib.Library {
	if r.err != nil {
		return nil
	}
	lib, err := dynlib.Open(name)
	if err != nil {
		r.err = capability.Missing(name, err)
	}
	return lib
}

func (r *required) symbol(lib *dynlib.Library, name string) dynlib.Symbol {
	if r.err != nil {
		return 0
	}
	sym, err := lib.Symbol(name)
	if err != nil {
		r.err = capability.Missing(lib.Name()+"!"+name, err)
	}
	return sym
}

// hresultError maps an HRESULT to an error. Only the low 32 bits of the
// result register are defined.
func hresultError(op string, hr uintptr) error {
	code := uint32(hr)
	if int32(code) >= 0 {
		return nil
	}
	return fmt.Errorf("%s: %w", op, windows.Errno(code))
}

// awarenessError maps the result of SetProcessDpiAwareness. Access denied
// means awareness is already set, which is what the caller asked for.
func awarenessError(hr uintptr) error {
	if windows.Errno(uint32(hr)) == eAccessDenied {
		return nil
	}
	return hresultError("SetProcessDpiAwareness", hr)
}

func probe() (Scaler, error) {
	var req required
	user32 := req.library("user32.dll")
	gdi32 := req.library("gdi32.dll")
	procSetProcessDPIAware := req.symbol(user32, "SetProcessDPIAware")
	procMonitorFromWindow := req.symbol(user32, "MonitorFromWindow")
	procGetDC := req.symbol(user32, "GetDC")
	procReleaseDC := req.symbol(user32, "ReleaseDC")
	procGetDeviceCaps := req.symbol(gdi32, "GetDeviceCaps")
	if req.err != nil {
		return nil, req.err
	}

	// shcore.dll only ships with Windows 8.1 and newer.
	shcore := dynlib.Optional("shcore.dll")
	procSetProcessDpiAwareness := dynlib.OptionalSymbol(shcore, "SetProcessDpiAwareness")
	procGetDpiForMonitor := dynlib.OptionalSymbol(shcore, "GetDpiForMonitor")

	return &tiered{
		setAwareness: capability.Map(procSetProcessDpiAwareness, func(proc dynlib.Symbol) func(Awareness) error {
			return func(a Awareness) error {
				return awarenessError(proc.Call(uintptr(a)))
			}
		}),
		setProcessDPIAware: func() error {
			if procSetProcessDPIAware.Call() == 0 {
				return errors.New("SetProcessDPIAware failed")
			}
			return nil
		},
		dpiForMonitor: capability.Map(procGetDpiForMonitor, func(proc dynlib.Symbol) func(uintptr) (uint32, error) {
			return func(monitor uintptr) (uint32, error) {
				var dpiX, dpiY uint32
				hr := proc.Call(monitor, mdtEffectiveDPI,
					uintptr(unsafe.Pointer(&dpiX)), uintptr(unsafe.Pointer(&dpiY)))
				if err := hresultError("GetDpiForMonitor", hr); err != nil {
					return 0, err
				}
				return dpiX, nil
			}
		}),
		monitorFromSurface: func(s Surface) uintptr {
			return procMonitorFromWindow.Call(uintptr(s), monitorDefaultToPrimary)
		},
		globalDPI: func() (uint32, error) {
			hdc := procGetDC.Call(0)
			if hdc == 0 {
				return 0, errors.New("GetDC failed")
			}
			defer procReleaseDC.Call(0, hdc)
			return uint32(procGetDeviceCaps.Call(hdc, logPixelsX)), nil
		},
	}, nil
}
