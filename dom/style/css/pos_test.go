package css_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/dom/style/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestPositionBasic(t *testing.T) {
	for input, out := range map[string]string{
		"absolute": "absolute", " Static": "static", "relative": "relative",
		"fixed": "fixed", "sticky": "unset", "": "unset",
	} {
		if p := css.Position(style.Property(input)); p.String() != out {
			t.Errorf("expected position %q to be %s, is %s", input, out, p)
		}
	}
	if o := css.Absolute(nil).Offsets(); len(o) != 4 || o[css.Left].Dir != css.Left {
		t.Errorf("expected 4 normalized offsets, have %v", o)
	}
}

func TestPositionPattern(t *testing.T) {
	o := []css.PositionOffset{
		{css.JustDimen(10 * dimen.PT), css.Bottom},
	}
	f := css.Fixed(o)
	m := css.PositionPattern[int](f)
	out := m.OneOf(css.PositionPatterns[int]{
		Unset:   10,
		Fixed:   99,
		Default: -1,
	})
	if out != 99 {
		t.Errorf("expected out to be 99, isn't: %#v", out)
	}
	s := css.PositionPattern[string](css.Static()).OneOf(css.PositionPatterns[string]{
		Static:  "STATIC",
		Default: "NONE",
	})
	if s != "STATIC" {
		t.Errorf("expected STATIC, have %v", s)
	}
}

func TestComputedPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.style")
	defer teardown()
	//
	pmap := style.NewPropertyMap()
	pmap.Add("position", "relative")
	pmap.Add("top", "15pt")
	pmap.Add("left", "auto")
	pmap.Add("right", "wide")
	pos := css.ComputedPosition(pmap)
	if !pos.IsRelative() || !pos.IsShifted() {
		t.Errorf("expected a shifted relative position, have %s", pos)
	}
	if px, ok := pos.Offsets()[css.Top].Dim.Pixels(); !ok || px != 20 {
		t.Errorf("expected top offset of 20px, have %d", px)
	}
	if d := pos.Offsets()[css.Left].Dim; d.CSSString() != "auto" {
		t.Errorf("expected left offset auto, have %q", d.CSSString())
	}
	if d := pos.Offsets()[css.Right].Dim; d.CSSString() != "" {
		t.Errorf("expected invalid right offset to be unset, have %q", d.CSSString())
	}
	pmap.Add("top", "0")
	if css.ComputedPosition(pmap).IsShifted() {
		t.Error("expected zero and auto offsets not to shift a box")
	}
	pmap.Add("top", "10%")
	if !css.ComputedPosition(pmap).IsShifted() {
		t.Error("expected percentage offsets to shift a box")
	}
	pmap.Add("position", "absolute")
	if css.ComputedPosition(pmap).IsShifted() {
		t.Error("expected out-of-flow boxes not to count as shifted")
	}
}

func TestPositionProperties(t *testing.T) {
	kvs := css.Relative([]css.PositionOffset{{css.Pixels(4), css.Left}}).Properties()
	want := []style.KeyValue{
		{Key: "position", Value: "relative"},
		{Key: "top", Value: ""}, {Key: "right", Value: ""},
		{Key: "bottom", Value: ""}, {Key: "left", Value: "4px"},
	}
	if len(kvs) != len(want) {
		t.Fatalf("expected %d properties, have %v", len(want), kvs)
	}
	for i := range want {
		if kvs[i] != want[i] {
			t.Errorf("expected property %v, have %v", want[i], kvs[i])
		}
	}
	if kvs := css.Position("").Properties(); kvs != nil {
		t.Errorf("expected no properties for unset position, have %v", kvs)
	}
}

func TestPositionOutOfFlow(t *testing.T) {
	for input, out := range map[string]bool{
		"absolute": true, "Fixed": true, "relative": false, "static": false, "": false, "sticky": false,
	} {
		if css.Position(style.Property(input)).IsOutOfFlow() != out {
			t.Errorf("expected position %q to have out-of-flow=%v", input, out)
		}
	}
}
