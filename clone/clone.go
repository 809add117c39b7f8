package clone

import (
	"strings"

	"github.com/npillmayer/snapdom/dom"
	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/dom/style/css"
	"golang.org/x/net/html"
)

// Node creates a detached clone of src and its flat-tree descendants.
// src is treated as the root of the snapshot, i.e. root overrides of the
// context's options are applied to it.
//
// Node returns nil only for src == nil. If ctx is nil, a structural
// context without styles is used.
func Node(src *html.Node, ctx *Context) *html.Node {
	if src == nil {
		return nil
	}
	if ctx == nil {
		ctx = NewContext(Collaborators{}, Options{})
	}
	return cloneNode(src, ctx, true)
}

// cloneNode is the dispatcher. It returns exactly one node for src.
func cloneNode(src *html.Node, ctx *Context, isRoot bool) *html.Node {
	if ctx.mode == FullMode {
		switch k := dom.KindOf(src).(type) {
		case dom.TextKind:
			return ctx.factory.CreateTextNode(k.Text.Data)
		case dom.StyleableKind:
			return cloneElement(k.Element, ctx, isRoot)
		}
	}
	c := structuralClone(src)
	cloneChildNodes(src, c, nil, ctx)
	return c
}

// structuralClone is a shallow copy of src, without children.
func structuralClone(src *html.Node) *html.Node {
	c := &html.Node{
		Type:      src.Type,
		DataAtom:  src.DataAtom,
		Data:      src.Data,
		Namespace: src.Namespace,
	}
	if len(src.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(src.Attr))
		copy(c.Attr, src.Attr)
	}
	return c
}

// cloneElement clones a styleable element in FullMode.
func cloneElement(src *html.Node, ctx *Context, isRoot bool) *html.Node {
	computed := ctx.window.ComputedStyle(src)
	if computed == nil {
		computed = style.NewPropertyMap()
	}
	if !css.IsDisplayed(computed) {
		tracer().Debugf("pruning <%s>, not displayed", src.Data)
		return ctx.factory.CreateComment(strings.ToLower(src.Data))
	}
	c := ctx.factory.CreateElement(src)
	var target style.Declarations
	ctx.copyStyle(src, computed, &target, isRoot, ctx)
	if isRoot {
		applyRootOverrides(&target, ctx)
	}
	if ff := target.Get("font-family"); ff.IsMeaningful() {
		ctx.fonts.Add(ff.String())
	} else if ff = computed.Get("font-family"); ff.IsMeaningful() {
		ctx.fonts.Add(ff.String())
	}
	if target.Len() > 0 {
		setAttr(c, "style", target.String())
	}
	ctx.copyClass(src, c)
	last := c.LastChild
	ctx.copyPseudo(src, c, ctx)
	var after *html.Node
	if c.LastChild != last && isAfterBox(c.LastChild) {
		after = c.LastChild
	}
	ctx.copyValue(src, c, ctx)
	ctx.copyAttributes(src, c)
	if dom.IsVideo(src) {
		tracer().Debugf("not descending into <video>")
		return c
	}
	cloneChildNodes(src, c, after, ctx)
	return c
}
