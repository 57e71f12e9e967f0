//go:build darwin

package hidpi

import (
	"sync"
	"testing"

	"github.com/ebitengine/purego/objc"
)

func TestDesktopDPIKeepsRetainCount(t *testing.T) {
	s, err := Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	main := objc.ID(objc.GetClass("NSScreen")).Send(selMainScreen)
	if main == 0 {
		t.Skip("no main screen")
	}
	selRetainCount := objc.RegisterName("retainCount")
	before := objc.Send[uint](main, selRetainCount)

	for i := 0; i < 100; i++ {
		s.DesktopDPI()
		if got := objc.Send[uint](main, selRetainCount); got != before {
			t.Fatalf("retainCount after %d queries = %d, want %d", i+1, got, before)
		}
	}
}

func TestScreenSurfaceMatchesDesktop(t *testing.T) {
	s, err := Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	main := objc.ID(objc.GetClass("NSScreen")).Send(selMainScreen)
	if main == 0 {
		t.Skip("no main screen")
	}
	if got, want := s.DPIFor(Surface(main)), s.DesktopDPI(); got != want {
		t.Fatalf("DPIFor(mainScreen) = %v, DesktopDPI = %v", got, want)
	}
}

func TestSurfaceWithoutBackingScale(t *testing.T) {
	s, err := Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	// NSObject does not answer backingScaleFactor.
	obj := objc.ID(objc.GetClass("NSObject")).Send(selAlloc).Send(selInit)
	defer obj.Send(selRelease)

	if got, want := s.DPIFor(Surface(obj)), s.DesktopDPI(); got != want {
		t.Fatalf("DPIFor(NSObject) = %v, want desktop %v", got, want)
	}
}

func TestProbeWhileQuerying(t *testing.T) {
	s, err := Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	want := s.DesktopDPI()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := Probe(); err != nil {
				t.Errorf("Probe: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if got := s.DesktopDPI(); got != want {
				t.Errorf("DesktopDPI = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}
