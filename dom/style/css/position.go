package css

import (
	"github.com/npillmayer/snapdom/dom/style"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

// PositionOffset is an offset of a positioned box in direction Dir.
type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

var posDirNames = [...]string{"top", "right", "bottom", "left"}

// String returns the name of the offset property for d.
func (d PosDir) String() string {
	if d > Left {
		return "?"
	}
	return posDirNames[d]
}

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left) into
// a 4-way slice, ordered by PDir. Invalid PDir-s are silently dropped.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		norm[i].Dir = i
	}
	for _, o := range offsets {
		if o.Dir >= Top && o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

/*
type PositionT
	= Undefined
	| Static
	| Relative top right bottom left
	| Absolute top right bottom left
	| Fixed top right bottom left
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given optional offsets.
// offsets may be provied partially or none at all.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional offsets.
// offsets may be provied partially or none at all.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
// offsets may be provied partially or none at all.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

var positionMap = map[position]string{
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
}

var positionStringMap = map[string]position{
	"static":   positionStatic,
	"relative": positionRelative,
	"absolute": positionAbsolute,
	"fixed":    positionFixed,
}

// Position returns an optional position type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset position.
func Position(p style.Property) PositionT {
	return withOffsets(positionStringMap[p.Keyword()], nil)
}

// ComputedPosition reads the position and the offset properties top, right,
// bottom and left from a set of computed styles. Offsets which are not valid
// lengths are left unset.
func ComputedPosition(computed *style.PropertyMap) PositionT {
	kind := positionStringMap[computed.Get("position").Keyword()]
	var offsets []PositionOffset
	for dir := Top; dir <= Left; dir++ {
		p := computed.Get(dir.String())
		if !p.IsMeaningful() {
			continue
		}
		d, err := ParseDimen(p)
		if err != nil {
			tracer().Debugf("ignoring offset %s: %v", dir, err)
			continue
		}
		offsets = append(offsets, PositionOffset{Dim: d, Dir: dir})
	}
	return withOffsets(kind, offsets)
}

func withOffsets(kind position, offsets []PositionOffset) PositionT {
	switch kind {
	case positionStatic:
		return Static()
	case positionRelative:
		return Relative(offsets)
	case positionAbsolute:
		return Absolute(offsets)
	case positionFixed:
		return Fixed(offsets)
	}
	return PositionT{}
}

// Offsets returns the offsets of p, ordered by PosDir, or nil for unset and
// static positions.
func (p PositionT) Offsets() []PositionOffset {
	return p.offsets
}

func (p PositionT) String() string {
	if s, ok := positionMap[p.kind]; ok {
		return s
	}
	return "unset"
}

// Properties returns p as style properties: the position keyword followed by
// the four offsets. Offsets which are unset have an empty value.
func (p PositionT) Properties() []style.KeyValue {
	if p.kind == positionUnset {
		return nil
	}
	kvs := []style.KeyValue{{Key: "position", Value: style.Property(p.String())}}
	for _, o := range NormalizeOffsets(p.offsets) {
		kvs = append(kvs, style.KeyValue{Key: o.Dir.String(), Value: style.Property(o.Dim.CSSString())})
	}
	return kvs
}

// --- Expression matching ---------------------------------------------------

// PositionPatterns holds the result values of a PositionPattern match, one for each kind.
type PositionPatterns[T any] struct {
	Unset    T
	Static   T
	Absolute T
	Relative T
	Fixed    T
	Default  T
}

// PositionPattern starts a match expression on p, evaluating to a T.
func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended to be instantiated
// using `PositionPattern()` only.
type PMatchExpr[T any] struct {
	pos PositionT
}

func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case positionUnset:
		return patterns.Unset
	case positionStatic:
		return patterns.Static
	case positionAbsolute:
		return patterns.Absolute
	case positionRelative:
		return patterns.Relative
	case positionFixed:
		return patterns.Fixed
	}
	return patterns.Default
}

// ---------------------------------------------------------------------------

// IsRelative returns true if p represents a valid relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsOutOfFlow returns true if p takes a box out of normal flow, i.e. is
// absolute or fixed. Offsets of out-of-flow boxes refer to a containing
// block, which a detached snapshot does not have.
func (p PositionT) IsOutOfFlow() bool {
	return PositionPattern[bool](p).OneOf(PositionPatterns[bool]{
		Absolute: true,
		Fixed:    true,
	})
}

// IsShifted returns true if p is a relative position with a non-zero offset.
func (p PositionT) IsShifted() bool {
	if !p.IsRelative() {
		return false
	}
	for _, o := range p.offsets {
		if o.Dim.IsPercent() {
			return true
		}
		if px, ok := o.Dim.Pixels(); ok && px != 0 {
			return true
		}
	}
	return false
}
