package dom

import (
	"golang.org/x/net/html"
)

// NodeKind is the closed set of node kinds relevant for rendering:
//
//     TextKind | StyleableKind | NonStyleableKind
//
// Clients switch over the variants with a type switch. No other
// implementations of NodeKind exist.
type NodeKind interface {
	nodeKind()
	HTMLNode() *html.Node
}

// TextKind is a text node.
type TextKind struct {
	Text *html.Node
}

// StyleableKind is an element participating in visual rendering, i.e. an
// element in the HTML or SVG namespace. Its appearance is governed by its
// computed style.
type StyleableKind struct {
	Element *html.Node
}

// NonStyleableKind is any other node: comments, doctypes, document nodes
// and elements of foreign namespaces (e.g., MathML).
type NonStyleableKind struct {
	Node *html.Node
}

func (TextKind) nodeKind()         {}
func (StyleableKind) nodeKind()    {}
func (NonStyleableKind) nodeKind() {}

// HTMLNode returns the text node.
func (k TextKind) HTMLNode() *html.Node { return k.Text }

// HTMLNode returns the element.
func (k StyleableKind) HTMLNode() *html.Node { return k.Element }

// HTMLNode returns the node.
func (k NonStyleableKind) HTMLNode() *html.Node { return k.Node }

// KindOf classifies an HTML node. A nil node is NonStyleable.
func KindOf(n *html.Node) NodeKind {
	if n == nil {
		return NonStyleableKind{}
	}
	switch n.Type {
	case html.TextNode:
		return TextKind{Text: n}
	case html.ElementNode:
		if n.Namespace == "" || n.Namespace == "svg" {
			return StyleableKind{Element: n}
		}
	}
	return NonStyleableKind{Node: n}
}

// Kind classifies a node of the document.
func (doc *Document) Kind(n *html.Node) NodeKind {
	return KindOf(n)
}
