package dom

import (
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/dom/style/css"
	"github.com/npillmayer/snapdom/dom/style/cssom"
	"github.com/npillmayer/snapdom/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/snapdom/dom/styledtree"
	"golang.org/x/net/html"
)

// ErrNoDocument is returned for an attempt to create a document without
// a root node.
var ErrNoDocument = errors.New("cannot create document without root node")

// Document is a live document. It owns an HTML parse tree, the shadow roots
// attached to elements of the tree, slot assignments, the styled tree and
// the current values of form controls.
//
// A Document is not safe for concurrent mutation. Reading (e.g., querying
// computed styles) from multiple goroutines is fine as long as nobody calls
// Restyle, AttachShadow or the setters for form values.
type Document struct {
	root     *html.Node
	shadows  map[*html.Node]*html.Node       // host -> shadow root
	hosts    map[*html.Node]*html.Node       // shadow root -> host
	slots    map[*html.Node]*slotAssignment  // slot element -> assignment
	assigned map[*html.Node]*html.Node       // slotted node -> slot element
	values   map[*html.Node]string           // current values of form controls
	checked  map[*html.Node]bool             // current checkedness
	cssom    cssom.CSSOM                     // style sheets per scope
	styled   map[*html.Node]*styledtree.StyNode
	styles   *styledtree.StyNode // root of the styled tree
	uaStyles *style.PropertyMap
}

// Parse parses an HTML document and creates a live document from it.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML document: %w", err)
	}
	return NewDocument(root)
}

// NewDocument creates a live document from an HTML parse tree.
// Declarative shadow roots are attached, slots are assigned and styles are
// computed. root usually is an html.DocumentNode, but may be any node.
//
// The document takes ownership of the tree: templates for declarative
// shadow roots are removed from it.
func NewDocument(root *html.Node) (*Document, error) {
	if root == nil {
		return nil, ErrNoDocument
	}
	doc := &Document{
		root:     root,
		shadows:  make(map[*html.Node]*html.Node),
		hosts:    make(map[*html.Node]*html.Node),
		values:   make(map[*html.Node]string),
		checked:  make(map[*html.Node]bool),
		uaStyles: style.InitializeDefaultPropertyValues(nil),
	}
	doc.attachDeclarativeShadowRoots(root)
	doc.Restyle()
	tracer().P("shadow-roots", len(doc.shadows)).Infof("created document with %d styled nodes",
		len(doc.styled))
	return doc, nil
}

// Root returns the root node of the document.
func (doc *Document) Root() *html.Node {
	return doc.root
}

// QuerySelector returns the first element of the light tree matching a
// CSS selector, or nil. An error is returned for invalid selectors.
func (doc *Document) QuerySelector(selector string) (*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	return sel.MatchFirst(doc.root), nil
}

// QueryShadowSelector returns the first element of the shadow tree of host
// matching a CSS selector, or nil.
func (doc *Document) QueryShadowSelector(host *html.Node, selector string) (*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	sr := doc.ShadowRoot(host)
	if sr == nil {
		return nil, nil
	}
	return sel.MatchFirst(sr), nil
}

// --- Styling ---------------------------------------------------------------

// Restyle re-computes slot assignment, the style sheets of all tree scopes
// and the styled tree. Clients call it after mutating the document.
// Computed styles are a snapshot: they do not follow later mutations
// until the next call to Restyle.
func (doc *Document) Restyle() {
	doc.assignSlots()
	doc.cssom = cssom.NewCSSOM(douceuradapter.ParseInlineStyle)
	for _, sheet := range douceuradapter.ExtractStyleElements(doc.root) {
		doc.cssom.AddStylesForScope(doc.root, sheet)
	}
	for _, sr := range doc.shadows {
		for _, sheet := range douceuradapter.ExtractStyleElements(sr) {
			doc.cssom.AddStylesForScope(sr, sheet)
		}
	}
	doc.styled = make(map[*html.Node]*styledtree.StyNode)
	doc.styles = styledtree.NewNodeForHTMLNode(doc.root)
	doc.styled[doc.root] = doc.styles
	if doc.root.Type == html.ElementNode {
		doc.styleElement(doc.styles, doc.uaStyles, doc.root)
	} else {
		doc.styles.SetComputedStyles(doc.uaStyles)
	}
	doc.styleChildren(doc.root, doc.styles, doc.root)
}

// styleNode creates a styled node for n, computes its styles and
// appends it to the styled tree.
func (doc *Document) styleNode(n *html.Node, parent *styledtree.StyNode, scope *html.Node) {
	sn := styledtree.NewNodeForHTMLNode(n)
	parent.AddChild(sn.TreeNode())
	doc.styled[n] = sn
	if n.Type == html.ElementNode {
		doc.styleElement(sn, parent.ComputedStyles(), scope)
	} else {
		sn.SetComputedStyles(parent.ComputedStyles())
	}
	doc.styleChildren(n, sn, scope)
}

func (doc *Document) styleElement(sn *styledtree.StyNode, parentStyles *style.PropertyMap, scope *html.Node) {
	n := sn.HTMLNode()
	declared := doc.cssom.MatchedProperties(n, scope)
	sn.SetStyles(declared)
	computed := css.ComputeStyles(n, declared, parentStyles)
	sn.SetComputedStyles(computed)
	for _, pseudo := range []string{"before", "after"} {
		pp := doc.cssom.PseudoProperties(n, scope, pseudo)
		if pp == nil {
			continue
		}
		if pp.Get("display").IsEmpty() {
			pp.Add("display", "inline")
		}
		sn.SetPseudoStyles(pseudo, css.ComputeStyles(n, pp, computed))
	}
}

// styleChildren styles the children of n in the flat tree: the content of
// a shadow root replaces the children of its host, assigned nodes are
// styled as children of their slot.
//
// Children which do not take part in rendering (light children of a host
// which are not assigned to a slot, fallback content of a slot with assigned
// nodes) are styled as well, to have computed styles available for them.
func (doc *Document) styleChildren(n *html.Node, sn *styledtree.StyNode, scope *html.Node) {
	if sr := doc.shadows[n]; sr != nil {
		for ch := sr.FirstChild; ch != nil; ch = ch.NextSibling {
			doc.styleNode(ch, sn, sr)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if doc.assigned[ch] == nil {
				doc.styleNode(ch, sn, scope)
			}
		}
		return
	}
	if sa, ok := doc.slots[n]; ok {
		for _, a := range sa.nodes {
			doc.styleNode(a, sn, sa.scope)
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		doc.styleNode(ch, sn, scope)
	}
}

// StyledNode returns the styled node for n, or nil if n is not part of the
// document.
func (doc *Document) StyledNode(n *html.Node) *styledtree.StyNode {
	return doc.styled[n]
}

// StyledTree returns the root of the styled tree.
func (doc *Document) StyledTree() *styledtree.StyNode {
	return doc.styles
}

// ComputedStyle returns the computed style of a node. For text nodes and
// other non-elements, it is the computed style of the parent in the flat
// tree. The result is never nil.
//
// Nodes which are not part of the document at the time of the last call to
// Restyle are styled on the fly, using the style sheets of their tree scope.
func (doc *Document) ComputedStyle(n *html.Node) *style.PropertyMap {
	if n == nil {
		return doc.uaStyles
	}
	if sn := doc.styled[n]; sn != nil && sn.ComputedStyles() != nil {
		return sn.ComputedStyles()
	}
	var parent *style.PropertyMap
	if h := doc.hosts[n]; h != nil {
		parent = doc.ComputedStyle(h)
	} else {
		parent = doc.ComputedStyle(n.Parent)
	}
	if n.Type != html.ElementNode {
		return parent
	}
	tracer().Debugf("styling <%s> outside of styled tree", n.Data)
	return css.ComputeStyles(n, doc.cssom.MatchedProperties(n, doc.scopeOf(n)), parent)
}

// PseudoStyle returns the computed style of a pseudo-element ("before" or
// "after") of an element, or nil if the element has no such pseudo-element.
func (doc *Document) PseudoStyle(n *html.Node, pseudo string) *style.PropertyMap {
	return doc.styled[n].PseudoStyles(pseudo)
}
