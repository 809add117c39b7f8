package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// Pixel is the size of a CSS pixel: 1px = 0.75pt.
var Pixel = dimen.PT * 3 / 4

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent Percent
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| ViewRel unit
	| FontRel unit
	| ContentRel Min N
	| ContentRel Max N
*/

// Auto creates a CSS dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Pixels creates a CSS dimension with a fixed value of n CSS pixels.
func Pixels(n int) DimenT {
	return JustDimen(dimen.DU(n) * Pixel)
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsPercent is true for %-relative dimensions.
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// Pixels returns a fixed dimension in CSS pixels, rounded to the
// nearest integer. ok is false for other kinds of dimensions.
func (d DimenT) Pixels() (px int, ok bool) {
	if !d.IsAbsolute() {
		return 0, false
	}
	half := Pixel / 2
	if d.d < 0 {
		half = -half
	}
	return int((d.d + half) / Pixel), true
}

// CSSString formats a dimension for use in a style declaration.
// Fixed dimensions are expressed in CSS pixels. Dimensions which cannot be
// expressed (relative units, content-dependent sizes) yield the empty string.
func (d DimenT) CSSString() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		px, _ := d.Pixels()
		if px == 0 {
			return "0"
		}
		return strconv.Itoa(px) + "px"
	}
	return ""
}

// ParseDimen parses a CSS length property. Supported are the keywords
// auto, inherit and initial, plain numbers (taken as pixels), and the units
// px, pt and %.
func ParseDimen(p style.Property) (DimenT, error) {
	s := p.Keyword()
	switch s {
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "":
		return DimenT{}, fmt.Errorf("empty dimension")
	}
	unit := ""
	for _, u := range []string{"px", "pt", "%"} {
		if strings.HasSuffix(s, u) {
			unit, s = u, strings.TrimSuffix(s, u)
			break
		}
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("illegal dimension %q: %w", p, err)
	}
	switch unit {
	case "pt":
		return JustDimen(dimen.DU(n * float64(dimen.PT))), nil
	case "%":
		return Percentage(FromInt(int(n))), nil
	}
	return JustDimen(dimen.DU(n * float64(Pixel))), nil
}
