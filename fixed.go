package hidpi

// fixed is used where the OS has no notion of DPI scaling.
type fixed struct{}

func (fixed) EnableDPI() {}

func (fixed) DesktopDPI() float32 { return 1.0 }

func (fixed) DPIFor(Surface) float32 { return 1.0 }

func (fixed) String() string { return "fixed" }
