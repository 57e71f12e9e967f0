package hidpi

import (
	"log/slog"

	"github.com/tinyrange/hidpi/internal/capability"
)

// tiered prefers the per-monitor APIs introduced with Windows 8.1 and falls
// back to the process-wide legacy APIs every supported Windows version has.
type tiered struct {
	setAwareness       capability.Optional[func(Awareness) error]
	setProcessDPIAware func() error

	dpiForMonitor      capability.Optional[func(monitor uintptr) (uint32, error)]
	monitorFromSurface func(Surface) uintptr

	// globalDPI reads the single system-wide DPI of the screen device context.
	globalDPI func() (uint32, error)
}

func (t *tiered) EnableDPI() {
	if set, ok := t.setAwareness.Get(); ok {
		if err := set(PerMonitorAware); err != nil {
			slog.Warn("failed to set process DPI awareness", "awareness", PerMonitorAware, "error", err)
		}
		return
	}
	if err := t.setProcessDPIAware(); err != nil {
		slog.Warn("failed to mark process DPI aware", "error", err)
	}
}

func (t *tiered) DesktopDPI() float32 {
	return t.DPIFor(NoSurface)
}

func (t *tiered) DPIFor(s Surface) float32 {
	if s != NoSurface {
		if dpiFor, ok := t.dpiForMonitor.Get(); ok {
			dpi := uint32(ReferenceDPI)
			if x, err := dpiFor(t.monitorFromSurface(s)); err != nil {
				slog.Debug("monitor DPI query failed", "surface", s, "error", err)
			} else if x > 0 {
				dpi = x
			}
			return scaleOf(dpi)
		}
	}

	// Without per-monitor support there is only one DPI for every surface.
	dpi, err := t.globalDPI()
	if err != nil {
		slog.Debug("global DPI query failed", "error", err)
		return 1.0
	}
	return scaleOf(dpi)
}

func (t *tiered) String() string {
	if t.dpiForMonitor.Present() {
		return "per-monitor"
	}
	return "global"
}
