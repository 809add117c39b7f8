package clone

import (
	"sort"

	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/dom/style/css"
	"github.com/npillmayer/snapdom/maybe"
)

// applyRootOverrides applies the root options of the context to the style
// of the root clone. Later overrides win: background color, then size, then
// the style map.
func applyRootOverrides(target *style.Declarations, ctx *Context) {
	if bg, ok := maybe.Get(ctx.opts.BackgroundColor); ok {
		target.Set("background-color", style.Property(bg))
	}
	setLength(target, "width", ctx.opts.Width)
	setLength(target, "height", ctx.opts.Height)
	keys := make([]string, 0, len(ctx.opts.Style))
	for k := range ctx.opts.Style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		target.Set(k, style.Property(ctx.opts.Style[k]))
	}
}

func setLength(target *style.Declarations, key string, px maybe.Maybe[int]) {
	n, ok := maybe.Get(px)
	if !ok {
		return
	}
	if n < 0 {
		tracer().P("override", key).Errorf("ignoring negative length %d", n)
		return
	}
	target.Set(key, style.Property(css.Pixels(n).CSSString()))
}
