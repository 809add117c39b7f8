package maybe_test

import (
	"testing"

	. "github.com/npillmayer/snapdom/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just("red") // infers type
	y := Nothing[string]()

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%s)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != "red" {
		t.Errorf("expected v to be red, is %#v", v)
	}

	var w string
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Errorf("expected Nothing, have Just(%s)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
}

func TestMaybeGetNilSafe(t *testing.T) {
	var unset Maybe[int]
	if _, ok := Get(unset); ok {
		t.Error("expected nil Maybe to be Nothing, isn't")
	}
	if WithDefault(unset, 42) != 42 {
		t.Error("expected nil Maybe to default to 42, doesn't")
	}
	if w, ok := Get(Just(0)); !ok || w != 0 {
		t.Errorf("expected Just(0) to unwrap to (0, true), is (%d, %v)", w, ok)
	}
	if !IsJust(Just(200)) || IsJust(Nothing[int]()) {
		t.Error("IsJust does not discriminate Just from Nothing")
	}
}

func TestMaybeMapAndThen(t *testing.T) {
	px := func(n int) int { return n * 2 }
	if v := Just(100).Map(px).WithDefault(0); v != 200 {
		t.Errorf("expected Just(100).Map(double) to be 200, is %d", v)
	}
	if v := Nothing[int]().Map(px).WithDefault(-1); v != -1 {
		t.Errorf("expected Nothing.Map(double) to stay Nothing, is %d", v)
	}
	positive := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !IsJust(AndThen(positive, Just(7))) {
		t.Error("expected Just(7) |> andThen(positive) to be Just(true), isn't")
	}
	if IsJust(AndThen(positive, nil)) {
		t.Error("expected nil |> andThen(positive) to be Nothing, isn't")
	}
}
