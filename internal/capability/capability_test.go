package capability

import (
	"errors"
	"strings"
	"testing"
)

func TestOptionalZeroIsAbsent(t *testing.T) {
	var o Optional[int]
	if o.Present() {
		t.Fatalf("zero Optional should be absent")
	}
	if v, ok := o.Get(); ok || v != 0 {
		t.Fatalf("Get() = %d, %v; want 0, false", v, ok)
	}
	if got := o.OrElse(7); got != 7 {
		t.Fatalf("OrElse(7) = %d", got)
	}
}

func TestSome(t *testing.T) {
	o := Some("shcore")
	v, ok := o.Get()
	if !ok || v != "shcore" {
		t.Fatalf("Get() = %q, %v", v, ok)
	}
	if got := o.OrElse("user32"); got != "shcore" {
		t.Fatalf("OrElse = %q", got)
	}
}

func TestTry(t *testing.T) {
	got := Try("present", func() (int, error) { return 42, nil })
	if v, ok := got.Get(); !ok || v != 42 {
		t.Fatalf("Try present = %d, %v", v, ok)
	}

	got = Try("absent", func() (int, error) { return 0, errors.New("no such library") })
	if got.Present() {
		t.Fatalf("Try with error should be absent")
	}
}

func TestMapAndThen(t *testing.T) {
	double := func(v int) int { return v * 2 }

	if v, ok := Map(Some(4), double).Get(); !ok || v != 8 {
		t.Fatalf("Map(Some(4)) = %d, %v", v, ok)
	}
	if Map(None[int](), double).Present() {
		t.Fatalf("Map(None) should be absent")
	}

	calls := 0
	lookup := func(v int) (string, error) {
		calls++
		if v < 0 {
			return "", errors.New("negative")
		}
		return "ok", nil
	}

	if v, ok := Then(Some(1), "sym", lookup).Get(); !ok || v != "ok" {
		t.Fatalf("Then(Some(1)) = %q, %v", v, ok)
	}
	if Then(Some(-1), "sym", lookup).Present() {
		t.Fatalf("Then with failing lookup should be absent")
	}
	if Then(None[int](), "sym", lookup).Present() {
		t.Fatalf("Then(None) should be absent")
	}
	if calls != 2 {
		t.Fatalf("lookup called %d times, want 2", calls)
	}
}

func TestMissing(t *testing.T) {
	cause := errors.New("The specified module could not be found.")
	err := Missing("user32.dll", cause)
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("Missing error does not wrap ErrMissing: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("Missing error does not wrap cause: %v", err)
	}
	if !strings.Contains(err.Error(), "user32.dll") {
		t.Fatalf("Missing error does not name capability: %v", err)
	}

	if err := Missing("NSScreen", nil); !errors.Is(err, ErrMissing) {
		t.Fatalf("Missing(nil) = %v", err)
	}
}
