package hidpi

import (
	"github.com/tinyrange/hidpi/internal/capability"
)

// screen asks objects that know their own backing scale, such as NSScreen
// and NSWindow. Awareness is always on, so there is nothing to enable.
type screen struct {
	mainScreenScale capability.Optional[func() float64]

	// respondsToScale reports whether the surface object itself answers the
	// scale query. Surfaces that don't are treated as the desktop.
	respondsToScale func(Surface) bool
	surfaceScale    func(Surface) float64
}

func (sc *screen) EnableDPI() {}

func (sc *screen) DesktopDPI() float32 {
	query := sc.mainScreenScale.OrElse(func() float64 { return 1.0 })
	v, _ := validScale(query())
	return v
}

func (sc *screen) DPIFor(s Surface) float32 {
	if s == NoSurface || !sc.respondsToScale(s) {
		return sc.DesktopDPI()
	}
	if v, ok := validScale(sc.surfaceScale(s)); ok {
		return v
	}
	return sc.DesktopDPI()
}

func (sc *screen) String() string {
	if sc.mainScreenScale.Present() {
		return "backing-scale"
	}
	return "fixed"
}
