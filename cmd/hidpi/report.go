package main

import (
	"fmt"
	"io"
	"math/bits"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tinyrange/hidpi"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type SurfaceReport struct {
	Handle string  `yaml:"handle"`
	Scale  float32 `yaml:"scale"`
	DPI    float32 `yaml:"dpi"`
}

type Report struct {
	OS           string          `yaml:"os"`
	Arch         string          `yaml:"arch"`
	Strategy     string          `yaml:"strategy"`
	Enabled      bool            `yaml:"enabled"`
	DesktopScale float32         `yaml:"desktop_scale"`
	DesktopDPI   float32         `yaml:"desktop_dpi"`
	Surfaces     []SurfaceReport `yaml:"surfaces,omitempty"`
}

// parseSurface accepts decimal, 0x-hex and 0o-octal handles no wider than a
// pointer on this platform.
func parseSurface(s string) (hidpi.Surface, error) {
	v, err := strconv.ParseUint(s, 0, bits.UintSize)
	if err != nil {
		return 0, fmt.Errorf("invalid surface handle %q: %w", s, err)
	}
	return hidpi.Surface(v), nil
}

func strategyName(s hidpi.Scaler) string {
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}

func buildReport(s hidpi.Scaler, enabled bool, surfaces []hidpi.Surface) Report {
	desktop := s.DesktopDPI()
	r := Report{
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		Strategy:     strategyName(s),
		Enabled:      enabled,
		DesktopScale: desktop,
		DesktopDPI:   desktop * hidpi.ReferenceDPI,
	}
	for _, surface := range surfaces {
		scale := s.DPIFor(surface)
		r.Surfaces = append(r.Surfaces, SurfaceReport{
			Handle: fmt.Sprintf("%#x", uintptr(surface)),
			Scale:  scale,
			DPI:    scale * hidpi.ReferenceDPI,
		})
	}
	return r
}

func writeReport(w io.Writer, r Report, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	case formatText:
		fmt.Fprintf(w, "platform:  %s/%s\n", r.OS, r.Arch)
		fmt.Fprintf(w, "strategy:  %s\n", r.Strategy)
		fmt.Fprintf(w, "enabled:   %t\n", r.Enabled)
		fmt.Fprintf(w, "desktop:   %.2fx (%.0f dpi)\n", r.DesktopScale, r.DesktopDPI)
		for _, s := range r.Surfaces {
			fmt.Fprintf(w, "%-10s %.2fx (%.0f dpi)\n", s.Handle+":", s.Scale, s.DPI)
		}
		return nil
	default:
		return validateFormat(format)
	}
}
