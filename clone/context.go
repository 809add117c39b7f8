package clone

import (
	"sort"
	"strings"

	"github.com/npillmayer/snapdom/maybe"
	"golang.org/x/net/html"
)

// Mode is the cloning mode of a context, decided once when the context
// is created.
type Mode uint8

const (
	// StructuralMode copies nodes without resolving styles.
	StructuralMode Mode = iota
	// FullMode materializes computed styles onto the clone.
	FullMode
)

func (m Mode) String() string {
	if m == FullMode {
		return "FullMode"
	}
	return "StructuralMode"
}

// Options configure a cloning context.
type Options struct {
	// Filter, if set, is consulted for every child node. Returning false
	// drops the node together with its subtree.
	Filter func(*html.Node) bool
	// BackgroundColor overrides the background color of the root clone.
	BackgroundColor maybe.Maybe[string]
	// Width and Height override the size of the root clone, in CSS pixels.
	Width  maybe.Maybe[int]
	Height maybe.Maybe[int]
	// Style sets arbitrary style properties of the root clone. Property
	// names may be given in CSS form ("font-size") or in camel case
	// ("fontSize"). Empty values remove a property.
	Style map[string]string
	// Fonts is the accumulator for font families. If nil, the context
	// creates a fresh one.
	Fonts *FontSet
}

// Context is the per-call state of the cloner: its collaborators, the
// options and the font usage accumulator.
type Context struct {
	mode           Mode
	factory        Factory
	window         StyleResolver
	tree           TreeView
	forms          FormState
	copyStyle      StyleCopier
	copyClass      ClassCopier
	copyPseudo     PseudoCopier
	copyValue      ValueCopier
	copyAttributes AttributeCopier
	opts           Options
	fonts          *FontSet
}

// NewContext creates a cloning context. Collaborators left nil are replaced
// by their default implementation, except for the factory and the style
// resolver: if either of these is missing, the context operates in
// StructuralMode.
func NewContext(c Collaborators, opts Options) *Context {
	ctx := &Context{
		factory:        c.Factory,
		window:         c.Window,
		tree:           c.Tree,
		forms:          c.Forms,
		copyStyle:      c.CopyStyle,
		copyClass:      c.CopyClass,
		copyPseudo:     c.CopyPseudo,
		copyValue:      c.CopyValue,
		copyAttributes: c.CopyAttributes,
		opts:           opts,
		fonts:          opts.Fonts,
	}
	if ctx.factory != nil && ctx.window != nil {
		ctx.mode = FullMode
	}
	if ctx.tree == nil {
		ctx.tree = flatTree{}
	}
	if ctx.copyStyle == nil {
		ctx.copyStyle = CopyComputedStyle
	}
	if ctx.copyClass == nil {
		ctx.copyClass = CopyClass
	}
	if ctx.copyPseudo == nil {
		ctx.copyPseudo = CopyPseudoContent
	}
	if ctx.copyValue == nil {
		ctx.copyValue = CopyFormValue
	}
	if ctx.copyAttributes == nil {
		ctx.copyAttributes = CopyReplacedAttributes
	}
	if ctx.fonts == nil {
		ctx.fonts = NewFontSet()
	}
	tracer().Debugf("new cloning context in %s", ctx.mode)
	return ctx
}

// Mode returns the cloning mode of the context.
func (ctx *Context) Mode() Mode {
	return ctx.mode
}

// Fonts returns the font families used by the clones created with this
// context.
func (ctx *Context) Fonts() *FontSet {
	return ctx.fonts
}

// Factory returns the node factory of the context, or nil in StructuralMode.
func (ctx *Context) Factory() Factory {
	return ctx.factory
}

// Window returns the style resolver of the context, or nil in StructuralMode.
func (ctx *Context) Window() StyleResolver {
	return ctx.window
}

// Forms returns the source of form control state, which may be nil.
func (ctx *Context) Forms() FormState {
	return ctx.forms
}

// --- Font usage -----------------------------------------------------------

// FontSet is a set of font families. It only grows.
// The zero value is not usable, create with NewFontSet.
type FontSet struct {
	families map[string]struct{}
}

// NewFontSet creates an empty font set.
func NewFontSet() *FontSet {
	return &FontSet{families: make(map[string]struct{})}
}

// Add records a font family, as written in a `font-family` declaration
// (e.g., `"Open Sans", sans-serif`).
func (fs *FontSet) Add(family string) {
	family = strings.TrimSpace(family)
	if family == "" {
		return
	}
	fs.families[family] = struct{}{}
}

// Has checks if a font family has been recorded.
func (fs *FontSet) Has(family string) bool {
	_, ok := fs.families[strings.TrimSpace(family)]
	return ok
}

// Len returns the number of font families recorded.
func (fs *FontSet) Len() int {
	return len(fs.families)
}

// Families returns all recorded font families, sorted.
func (fs *FontSet) Families() []string {
	r := make([]string, 0, len(fs.families))
	for f := range fs.families {
		r = append(r, f)
	}
	sort.Strings(r)
	return r
}
