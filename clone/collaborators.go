package clone

import (
	"github.com/npillmayer/snapdom/dom"
	"github.com/npillmayer/snapdom/dom/style"
	"golang.org/x/net/html"
)

// StyleResolver resolves the computed style of elements.
// *dom.Document is a StyleResolver.
type StyleResolver interface {
	// ComputedStyle returns the computed style of an element. It must
	// contain at least `display` and, if set, `font-family`.
	ComputedStyle(*html.Node) *style.PropertyMap
	// PseudoStyle returns the computed style of a pseudo-element
	// ("before" or "after"), or nil.
	PseudoStyle(*html.Node, string) *style.PropertyMap
}

// Factory constructs the nodes of a clone.
type Factory interface {
	CreateTextNode(data string) *html.Node
	CreateComment(data string) *html.Node
	// CreateElement creates an element of the same tag and namespace as
	// src, without attributes, styles or children.
	CreateElement(src *html.Node) *html.Node
}

// TreeView gives access to the flat tree: shadow roots and slots.
// *dom.Document is a TreeView.
type TreeView interface {
	ShadowRoot(host *html.Node) *html.Node
	Slot(n *html.Node) (dom.Slot, bool)
}

// FormState provides the current state of form controls.
// *dom.Document is a FormState.
type FormState interface {
	Value(*html.Node) string
	Checked(*html.Node) bool
	Selected(option *html.Node) bool
}

// StyleCopier writes the declarative equivalent of a computed style to
// the style target of a clone.
type StyleCopier func(src *html.Node, computed *style.PropertyMap, target *style.Declarations,
	isRoot bool, ctx *Context)

// ClassCopier copies the class list of an element to its clone.
type ClassCopier func(src, clone *html.Node)

// PseudoCopier synthesizes the content of pseudo-elements of src into clone.
type PseudoCopier func(src, clone *html.Node, ctx *Context)

// ValueCopier copies the current value of a form control to its clone.
type ValueCopier func(src, clone *html.Node, ctx *Context)

// AttributeCopier copies further attributes from an element to its clone.
type AttributeCopier func(src, clone *html.Node)

// Collaborators is the set of components the cloner delegates to.
// Nil entries are replaced by defaults, see NewContext.
type Collaborators struct {
	Factory        Factory
	Window         StyleResolver
	Tree           TreeView
	Forms          FormState
	CopyStyle      StyleCopier
	CopyClass      ClassCopier
	CopyPseudo     PseudoCopier
	CopyValue      ValueCopier
	CopyAttributes AttributeCopier
}

// DocumentCollaborators returns the collaborators for cloning nodes of a
// live document, with a DetachedFactory and default copiers.
// For doc == nil, the result selects StructuralMode.
func DocumentCollaborators(doc *dom.Document) Collaborators {
	if doc == nil {
		return Collaborators{}
	}
	return Collaborators{
		Factory: DetachedFactory{},
		Window:  doc,
		Tree:    doc,
		Forms:   doc,
	}
}

// DetachedFactory creates nodes not connected to any tree.
type DetachedFactory struct{}

var _ Factory = DetachedFactory{}

// CreateTextNode creates a text node.
func (DetachedFactory) CreateTextNode(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// CreateComment creates a comment node.
func (DetachedFactory) CreateComment(data string) *html.Node {
	return &html.Node{Type: html.CommentNode, Data: data}
}

// CreateElement creates an empty element with the tag and namespace of src.
func (DetachedFactory) CreateElement(src *html.Node) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		DataAtom:  src.DataAtom,
		Data:      src.Data,
		Namespace: src.Namespace,
	}
}

// flatTree is the TreeView of plain HTML trees: no shadow roots, no slots.
type flatTree struct{}

func (flatTree) ShadowRoot(*html.Node) *html.Node { return nil }
func (flatTree) Slot(*html.Node) (dom.Slot, bool)  { return nil, false }
