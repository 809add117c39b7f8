package dom

import (
	"errors"
	"strings"

	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/dom/w3cdom"
	"golang.org/x/net/html"
)

// W3CNode is an adapter from an HTML node of a live document to
// interface w3cdom.Node.
type W3CNode struct {
	doc *Document
	h   *html.Node
}

var _ w3cdom.Node = &W3CNode{}

// W3C returns a W3C node for an HTML node of the document.
// For n == nil, W3C returns nil.
func (doc *Document) W3C(n *html.Node) *W3CNode {
	if n == nil {
		return nil
	}
	return &W3CNode{doc: doc, h: n}
}

// wrap returns an interface value which is nil for absent nodes.
func (doc *Document) wrap(n *html.Node) w3cdom.Node {
	if n == nil {
		return nil
	}
	return doc.W3C(n)
}

// HTMLNode returns the underlying HTML node.
func (w *W3CNode) HTMLNode() *html.Node {
	return w.h
}

// NodeType returns the type of the underlying HTML node.
func (w *W3CNode) NodeType() html.NodeType {
	return w.h.Type
}

// NodeName returns the tag name for elements, and #text, #comment,
// #document or #document-fragment (for shadow roots) otherwise.
func (w *W3CNode) NodeName() string {
	switch w.h.Type {
	case html.ElementNode:
		return w.h.Data
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		if w.doc.Host(w.h) != nil {
			return "#document-fragment"
		}
		return "#document"
	case html.DoctypeNode:
		return w.h.Data
	}
	return "#node"
}

// NodeValue returns the character data of text and comment nodes.
func (w *W3CNode) NodeValue() string {
	if w.h.Type == html.TextNode || w.h.Type == html.CommentNode {
		return w.h.Data
	}
	return ""
}

// HasAttributes checks for existence of attributes.
func (w *W3CNode) HasAttributes() bool {
	return len(w.h.Attr) > 0
}

// ParentNode returns the parent node. The parent of a shadow root is nil,
// as for the W3C DOM.
func (w *W3CNode) ParentNode() w3cdom.Node {
	return w.doc.wrap(w.h.Parent)
}

// HasChildNodes checks for existence of children.
func (w *W3CNode) HasChildNodes() bool {
	return w.h.FirstChild != nil
}

// ChildNodes returns all children of the node.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	var nodes []*W3CNode
	for ch := w.h.FirstChild; ch != nil; ch = ch.NextSibling {
		nodes = append(nodes, w.doc.W3C(ch))
	}
	return &NodeList{nodes: nodes}
}

// Children returns all element children of the node.
func (w *W3CNode) Children() w3cdom.NodeList {
	var nodes []*W3CNode
	for ch := w.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			nodes = append(nodes, w.doc.W3C(ch))
		}
	}
	return &NodeList{nodes: nodes}
}

// FirstChild returns the first child or nil.
func (w *W3CNode) FirstChild() w3cdom.Node {
	return w.doc.wrap(w.h.FirstChild)
}

// NextSibling returns the next sibling or nil.
func (w *W3CNode) NextSibling() w3cdom.Node {
	return w.doc.wrap(w.h.NextSibling)
}

// Attributes returns the attributes of the node.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	return &AttrMap{attrs: w.h.Attr}
}

// ComputedStyles returns the computed styles of the node.
func (w *W3CNode) ComputedStyles() w3cdom.ComputedStyles {
	return &computedStyles{w.doc.ComputedStyle(w.h)}
}

// ErrNoText is returned from TextContent for nodes without text content.
var ErrNoText = errors.New("node has no text content")

// TextContent returns the text of the node and all of its descendents in
// the light tree.
func (w *W3CNode) TextContent() (string, error) {
	switch w.h.Type {
	case html.TextNode, html.CommentNode:
		return w.h.Data, nil
	case html.DocumentNode, html.DoctypeNode:
		return "", ErrNoText
	}
	return textContent(w.h), nil
}

// ShadowRoot returns the shadow root of a host or nil.
func (w *W3CNode) ShadowRoot() w3cdom.Node {
	return w.doc.wrap(w.doc.ShadowRoot(w.h))
}

// AssignedNodes returns the nodes assigned to a slot. For other nodes the
// list is empty.
func (w *W3CNode) AssignedNodes() w3cdom.NodeList {
	var nodes []*W3CNode
	if slot, ok := w.doc.Slot(w.h); ok {
		for _, a := range slot.AssignedNodes() {
			nodes = append(nodes, w.doc.W3C(a))
		}
	}
	return &NodeList{nodes: nodes}
}

// --- Node lists, attributes and styles -------------------------------------

// NodeList is a list of W3C nodes.
type NodeList struct {
	nodes []*W3CNode
}

var _ w3cdom.NodeList = &NodeList{}

// Length returns the number of nodes in the list.
func (nl *NodeList) Length() int {
	return len(nl.nodes)
}

// Item returns the i-th node of the list, or nil.
func (nl *NodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(nl.nodes) {
		return nil
	}
	return nl.nodes[i]
}

func (nl *NodeList) String() string {
	names := make([]string, len(nl.nodes))
	for i, n := range nl.nodes {
		names[i] = n.NodeName()
	}
	return "[" + strings.Join(names, " ") + "]"
}

// AttrMap is the W3C map of attributes of a node.
type AttrMap struct {
	attrs []html.Attribute
}

var _ w3cdom.NamedNodeMap = &AttrMap{}

// Length returns the number of attributes.
func (am *AttrMap) Length() int {
	return len(am.attrs)
}

// Item returns the i-th attribute, or nil.
func (am *AttrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(am.attrs) {
		return nil
	}
	return attribute{am.attrs[i]}
}

// GetNamedItem returns the attribute named key, or nil.
func (am *AttrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range am.attrs {
		if a.Key == key {
			return attribute{a}
		}
	}
	return nil
}

type attribute struct {
	a html.Attribute
}

func (attr attribute) Namespace() string { return attr.a.Namespace }
func (attr attribute) Key() string       { return attr.a.Key }
func (attr attribute) Value() string     { return attr.a.Val }

type computedStyles struct {
	pmap *style.PropertyMap
}

func (cs *computedStyles) GetPropertyValue(key string) style.Property {
	return cs.pmap.Get(key)
}

func (cs *computedStyles) Styles() *style.PropertyMap {
	return cs.pmap
}
