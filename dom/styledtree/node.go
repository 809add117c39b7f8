package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	styles              *style.PropertyMap            // declared
	computedStyles      *style.PropertyMap            // resolved
	pseudoStyles        map[string]*style.PropertyMap // "before", "after"
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *StyNode {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = html
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TreeNode returns the generic tree node of a styled node.
func (sn *StyNode) TreeNode() *tree.Node[*StyNode] {
	if sn == nil {
		return nil
	}
	return &sn.Node
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	if sn == nil {
		return nil
	}
	return sn.htmlNode
}

// Styles returns the properties declared for the node, i.e. the
// result of matching the node against the style sheets in scope.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.styles
}

// SetStyles sets the declared properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.styles = styles
}

// ComputedStyles returns the computed style of a node, or nil if the
// node has not been styled yet.
func (sn *StyNode) ComputedStyles() *style.PropertyMap {
	if sn == nil {
		return nil
	}
	return sn.computedStyles
}

// SetComputedStyles sets the computed style of a styled node.
func (sn *StyNode) SetComputedStyles(styles *style.PropertyMap) {
	sn.computedStyles = styles
}

// PseudoStyles returns the computed style of a pseudo-element of the node
// ("before" or "after"), or nil if no rule generates it.
func (sn *StyNode) PseudoStyles(name string) *style.PropertyMap {
	if sn == nil || sn.pseudoStyles == nil {
		return nil
	}
	return sn.pseudoStyles[name]
}

// SetPseudoStyles sets the computed style of a pseudo-element.
// A nil property map removes the pseudo-element.
func (sn *StyNode) SetPseudoStyles(name string, styles *style.PropertyMap) {
	if styles == nil {
		delete(sn.pseudoStyles, name)
		return
	}
	if sn.pseudoStyles == nil {
		sn.pseudoStyles = make(map[string]*style.PropertyMap, 2)
	}
	tracer().Debugf("styled node %v has ::%s", sn.htmlNode.Data, name)
	sn.pseudoStyles[name] = styles
}

// Property returns the computed value of a property. Non-inherited
// properties absent from the computed style resolve to the user-agent
// default.
func (sn *StyNode) Property(key string) style.Property {
	if p, ok := sn.ComputedStyles().Property(key); ok && !p.IsEmpty() {
		return p
	}
	if style.IsCascading(key) {
		return style.NullStyle
	}
	return style.GetUserAgentDefaultProperty(sn.HTMLNode(), key)
}
