//go:build !windows && !darwin

package hidpi

import "testing"

func TestHostHasNoNativeScaling(t *testing.T) {
	s, err := Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	s.EnableDPI()
	for _, surface := range []Surface{NoSurface, 0x1, 0x7fff0000} {
		if got := s.DPIFor(surface); got != 1.0 {
			t.Fatalf("DPIFor(%#x) = %v, want 1.0", surface, got)
		}
	}
	if got := DesktopDPI(); got != 1.0 {
		t.Fatalf("DesktopDPI() = %v, want 1.0", got)
	}
}
