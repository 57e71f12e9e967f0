//go:build darwin

package hidpi

import (
	"runtime"
	"sync"

	"github.com/ebitengine/purego/objc"

	"github.com/tinyrange/hidpi/internal/capability"
	"github.com/tinyrange/hidpi/internal/dynlib"
)

const appKitPath = "/System/Library/Frameworks/AppKit.framework/AppKit"

var (
	selectorsOnce sync.Once

	selAlloc                      objc.SEL
	selInit                       objc.SEL
	selRelease                    objc.SEL
	selMainScreen                 objc.SEL
	selBackingScaleFactor         objc.SEL
	selRespondsToSelector         objc.SEL
	selInstancesRespondToSelector objc.SEL
)

// loadSelectors registers the selectors once per process. Strategies returned
// by earlier probes keep reading them while later probes run.
func loadSelectors() {
	selectorsOnce.Do(registerSelectors)
}

func registerSelectors() {
	selAlloc = objc.RegisterName("alloc")
	selInit = objc.RegisterName("init")
	selRelease = objc.RegisterName("release")
	selMainScreen = objc.RegisterName("mainScreen")
	selBackingScaleFactor = objc.RegisterName("backingScaleFactor")
	selRespondsToSelector = objc.RegisterName("respondsToSelector:")
	selInstancesRespondToSelector = objc.RegisterName("instancesRespondToSelector:")
}

// withPool runs fn on a locked OS thread inside its own autorelease pool, so
// it is safe to call before the application has set up its own pool.
func withPool[T any](fn func() T) T {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	pool := objc.ID(objc.GetClass("NSAutoreleasePool")).Send(selAlloc)
	pool = pool.Send(selInit)
	if pool != 0 {
		defer pool.Send(selRelease)
	}
	return fn()
}

func probe() (Scaler, error) {
	if _, err := dynlib.Open(appKitPath); err != nil {
		return nil, capability.Missing("AppKit", err)
	}
	loadSelectors()

	screenClass := objc.GetClass("NSScreen")
	if screenClass == 0 {
		return nil, capability.Missing("NSScreen", nil)
	}

	// backingScaleFactor appeared in 10.7; earlier systems have no HiDPI modes.
	var mainScreenScale capability.Optional[func() float64]
	if objc.Send[bool](objc.ID(screenClass), selInstancesRespondToSelector, selBackingScaleFactor) {
		mainScreenScale = capability.Some(func() float64 {
			return withPool(func() float64 {
				// mainScreen is not owned by us; it must not be retained or released.
				main := objc.ID(screenClass).Send(selMainScreen)
				if main == 0 {
					return 0
				}
				return objc.Send[float64](main, selBackingScaleFactor)
			})
		})
	}

	return &screen{
		mainScreenScale: mainScreenScale,
		respondsToScale: func(s Surface) bool {
			return objc.Send[bool](objc.ID(s), selRespondsToSelector, selBackingScaleFactor)
		},
		surfaceScale: func(s Surface) float64 {
			return withPool(func() float64 {
				return objc.Send[float64](objc.ID(s), selBackingScaleFactor)
			})
		},
	}, nil
}
