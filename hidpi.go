// Package hidpi reports the display scale factor a graphical application
// should render at, and opts the process into per-monitor DPI awareness.
//
// The platform probe runs once, on first use of Default or any of the
// package-level functions, and picks the best strategy the running system
// supports. Older systems without per-monitor APIs fall back to the single
// global DPI setting; systems without a native DPI concept always report 1.0.
package hidpi

import (
	"math"
	"sync"

	"github.com/tinyrange/hidpi/internal/capability"
)

// ReferenceDPI is the pixel density that corresponds to a scale factor of 1.0.
const ReferenceDPI = 96

// ErrMissingCapability is wrapped by probe errors when an entry point that
// every supported version of the host OS provides cannot be found.
var ErrMissingCapability = capability.ErrMissing

// Surface identifies what a DPI query is about. On Windows it is an HWND, on
// macOS an Objective-C object such as an NSWindow or NSScreen. The caller keeps
// ownership; queries never retain it.
type Surface uintptr

// NoSurface asks about the desktop as a whole.
const NoSurface Surface = 0

// Awareness is the DPI awareness level requested from the OS.
type Awareness int

const (
	Unaware Awareness = iota
	SystemAware
	PerMonitorAware
)

func (a Awareness) String() string {
	switch a {
	case Unaware:
		return "unaware"
	case SystemAware:
		return "system"
	case PerMonitorAware:
		return "per-monitor"
	default:
		return "unknown"
	}
}

// Scaler is one platform's DPI strategy.
type Scaler interface {
	// EnableDPI declares the process DPI aware at the finest level the OS
	// supports. Calling it more than once is harmless.
	EnableDPI()

	// DesktopDPI returns the scale factor of the primary display.
	DesktopDPI() float32

	// DPIFor returns the scale factor of the display s is on. NoSurface
	// gives the same result as DesktopDPI.
	DPIFor(s Surface) float32
}

var (
	probeFunc     = probe
	defaultScaler = sync.OnceValues(func() (Scaler, error) { return probeFunc() })
)

// Probe inspects the running system and returns the best available
// strategy. Unlike Default it probes again on every call.
func Probe() (Scaler, error) {
	return probeFunc()
}

// Default returns the process-wide strategy, probing on first use. It panics
// if the host lacks an entry point the strategy cannot work without.
func Default() Scaler {
	s, err := defaultScaler()
	if err != nil {
		panic(err)
	}
	return s
}

func EnableDPI() {
	Default().EnableDPI()
}

func DesktopDPI() float32 {
	return Default().DesktopDPI()
}

func GetDPIFor(s Surface) float32 {
	return Default().DPIFor(s)
}

// scaleOf converts a DPI reading into a scale factor. Zero means the reading
// failed.
func scaleOf(dpi uint32) float32 {
	if dpi == 0 {
		return 1.0
	}
	return float32(dpi) / ReferenceDPI
}

// validScale replaces unusable scale readings with 1.0.
func validScale(v float64) (float32, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 1.0, false
	}
	return float32(v), true
}
