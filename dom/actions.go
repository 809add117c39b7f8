package dom

import (
	"strings"

	"github.com/npillmayer/snapdom/dom/styledtree"
	"github.com/npillmayer/snapdom/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// IsStyleSheet is a predicate to match <style> elements, regardless of
// namespace (SVG documents may contain them, too).
func IsStyleSheet(n *html.Node) bool {
	return isElementNamed(n, atom.Style, "style")
}

// IsScript is a predicate to match <script> elements, regardless of namespace.
func IsScript(n *html.Node) bool {
	return isElementNamed(n, atom.Script, "script")
}

// IsVideo is a predicate to match <video> elements.
func IsVideo(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && n.Namespace == "" && n.DataAtom == atom.Video
}

// IsSlotElement is a predicate to match <slot> elements. Whether a slot
// has nodes assigned is answered by Document.Slot.
func IsSlotElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && n.Namespace == "" && n.DataAtom == atom.Slot
}

func isElementNamed(n *html.Node, a atom.Atom, name string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	return n.DataAtom == a || strings.EqualFold(n.Data, name)
}

// NodeIsText is a predicate to match text-nodes of a styled tree.
// It is intended to be used with tree.TopDown.
func NodeIsText(n *tree.Node[*styledtree.StyNode]) bool {
	h := styledtree.Node(n).HTMLNode()
	return h != nil && h.Type == html.TextNode
}

// RenderedText collects the text of the flat tree below n, i.e. text as
// it is rendered with shadow roots and slots applied. Text of elements
// with display `none` is excluded.
func (doc *Document) RenderedText(n *html.Node) string {
	sn := doc.StyledNode(n)
	if sn == nil {
		return ""
	}
	var b strings.Builder
	_ = sn.TopDown(func(node, parent *tree.Node[*styledtree.StyNode], _ int) error {
		styled := styledtree.Node(node)
		h := styled.HTMLNode()
		if h.Type == html.ElementNode && styled.Property("display").Keyword() == "none" {
			return tree.ErrSkipChildren
		}
		if parent != nil && !doc.isRendered(h, styledtree.Node(parent).HTMLNode()) {
			return tree.ErrSkipChildren
		}
		if NodeIsText(node) {
			b.WriteString(h.Data)
		}
		return nil
	})
	return b.String()
}

// isRendered checks if a styled child is part of the flat tree, as opposed
// to an unassigned light child of a host or fallback content of a filled slot.
func (doc *Document) isRendered(child, parent *html.Node) bool {
	if doc.shadows[parent] != nil {
		return doc.scopeOf(child) == doc.shadows[parent] || doc.assigned[child] != nil
	}
	if sa, ok := doc.slots[parent]; ok && sa.HasAssignedNodes() {
		return doc.assigned[child] == parent
	}
	return true
}
