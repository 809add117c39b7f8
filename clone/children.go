package clone

import (
	"github.com/npillmayer/snapdom/dom"
	"golang.org/x/net/html"
)

// cloneChildNodes clones the flat-tree children of src and appends them to c.
// If after is not nil, it is a trailing child of c which stays last.
//
// A shadow root with content replaces the light children of its host. A slot
// is replaced by the nodes assigned to it; a slot without assigned nodes
// contributes nothing. <slot> elements outside of shadow trees are plain
// elements.
func cloneChildNodes(src, c, after *html.Node, ctx *Context) {
	parent := src
	if src.Type == html.ElementNode {
		if sr := ctx.tree.ShadowRoot(src); sr != nil && sr.FirstChild != nil {
			parent = sr
		}
	}
	for ch := parent.FirstChild; ch != nil; ch = ch.NextSibling {
		if slot, ok := ctx.tree.Slot(ch); ok {
			for _, a := range slot.AssignedNodes() {
				appendChildNode(a, c, after, ctx)
			}
			continue
		}
		appendChildNode(ch, c, after, ctx)
	}
}

// appendChildNode clones ch and adds it to c, in front of after if that is
// set, unless ch is dropped.
func appendChildNode(ch, c, after *html.Node, ctx *Context) {
	if dom.IsStyleSheet(ch) || dom.IsScript(ch) {
		tracer().Debugf("dropping <%s>", ch.Data)
		return
	}
	if ctx.opts.Filter != nil && !ctx.opts.Filter(ch) {
		tracer().Debugf("filter drops node %q", ch.Data)
		return
	}
	if after != nil {
		c.InsertBefore(cloneNode(ch, ctx, false), after)
		return
	}
	c.AppendChild(cloneNode(ch, ctx, false))
}
