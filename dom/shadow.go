package dom

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNotAHost is returned when attaching a shadow root to a node which
// cannot host one.
var ErrNotAHost = errors.New("node cannot host a shadow root")

// ErrHasShadowRoot is returned when attaching a second shadow root to a host.
var ErrHasShadowRoot = errors.New("element already hosts a shadow root")

// Slot is the capability of a slot element to have nodes assigned to it.
// Only <slot> elements inside a shadow tree have this capability (see
// Document.Slot).
type Slot interface {
	HasAssignedNodes() bool     // are any nodes assigned to this slot?
	AssignedNodes() []*html.Node // nodes assigned to this slot, in tree order
}

type slotAssignment struct {
	slot  *html.Node
	name  string
	nodes []*html.Node
	scope *html.Node // tree scope of the assigned nodes
}

func (sa *slotAssignment) HasAssignedNodes() bool {
	return len(sa.nodes) > 0
}

func (sa *slotAssignment) AssignedNodes() []*html.Node {
	nodes := make([]*html.Node, len(sa.nodes))
	copy(nodes, sa.nodes)
	return nodes
}

var _ Slot = &slotAssignment{}

// ShadowRoot returns the shadow root attached to host, or nil.
// Shadow roots are nodes of type html.DocumentNode.
func (doc *Document) ShadowRoot(host *html.Node) *html.Node {
	if host == nil {
		return nil
	}
	return doc.shadows[host]
}

// Host returns the host of a shadow root, or nil if shadowRoot is not
// a shadow root of this document.
func (doc *Document) Host(shadowRoot *html.Node) *html.Node {
	if shadowRoot == nil {
		return nil
	}
	return doc.hosts[shadowRoot]
}

// AttachShadow attaches a new, empty shadow root to an element and returns it.
// Clients append children to the shadow root and then call Restyle to
// update slot assignment and styles.
func (doc *Document) AttachShadow(host *html.Node) (*html.Node, error) {
	if host == nil || host.Type != html.ElementNode {
		return nil, ErrNotAHost
	}
	if doc.shadows[host] != nil {
		return nil, ErrHasShadowRoot
	}
	sr := &html.Node{Type: html.DocumentNode}
	doc.shadows[host] = sr
	doc.hosts[sr] = host
	tracer().Debugf("attached shadow root to <%s>", host.Data)
	return sr, nil
}

// Slot returns the slot capability of n. ok is false for nodes which are not
// a <slot> element inside a shadow tree.
func (doc *Document) Slot(n *html.Node) (Slot, bool) {
	if n == nil {
		return nil, false
	}
	sa, ok := doc.slots[n]
	if !ok {
		return nil, false
	}
	return sa, true
}

// AssignedSlot returns the slot a light-tree node is assigned to, or nil.
func (doc *Document) AssignedSlot(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	return doc.assigned[n]
}

// attachDeclarativeShadowRoots looks for <template shadowrootmode> elements
// below n and turns them into shadow roots of their parent element. Shadow
// trees are searched as well, as they may contain nested hosts.
func (doc *Document) attachDeclarativeShadowRoots(n *html.Node) {
	var templates []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if isDeclarativeShadowRoot(ch) {
			templates = append(templates, ch)
			continue
		}
		doc.attachDeclarativeShadowRoots(ch)
	}
	for _, t := range templates {
		sr, err := doc.AttachShadow(n)
		if err != nil {
			// only the first declarative shadow root of a host is attached
			tracer().Infof("ignoring declarative shadow root for <%s>: %v", n.Data, err)
			continue
		}
		for ch := t.FirstChild; ch != nil; ch = t.FirstChild {
			t.RemoveChild(ch)
			sr.AppendChild(ch)
		}
		n.RemoveChild(t)
		doc.attachDeclarativeShadowRoots(sr)
	}
}

func isDeclarativeShadowRoot(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Template || n.Namespace != "" {
		return false
	}
	mode, ok := attr(n, "shadowrootmode")
	if !ok {
		mode, ok = attr(n, "shadowroot") // older syntax
	}
	mode = strings.ToLower(strings.TrimSpace(mode))
	return ok && (mode == "open" || mode == "closed")
}

// assignSlots distributes the light-tree children of every shadow host to
// the slots of its shadow tree.
//
// Elements with a `slot` attribute go to the first slot of that name,
// other elements and non-whitespace text go to the first default slot.
// Slots without matching nodes get an empty assignment.
func (doc *Document) assignSlots() {
	doc.slots = make(map[*html.Node]*slotAssignment)
	doc.assigned = make(map[*html.Node]*html.Node)
	for host, sr := range doc.shadows {
		named := make(map[string][]*html.Node)
		var unnamed []*html.Node
		for ch := host.FirstChild; ch != nil; ch = ch.NextSibling {
			switch ch.Type {
			case html.ElementNode:
				name, _ := attr(ch, "slot")
				if name != "" {
					named[name] = append(named[name], ch)
				} else {
					unnamed = append(unnamed, ch)
				}
			case html.TextNode:
				if strings.TrimSpace(ch.Data) != "" {
					unnamed = append(unnamed, ch)
				}
			}
		}
		scope := doc.scopeOf(host)
		seen := make(map[string]bool)
		walkShadowTree(sr, func(n *html.Node) {
			if n.Type != html.ElementNode || n.DataAtom != atom.Slot || n.Namespace != "" {
				return
			}
			name, _ := attr(n, "name")
			sa := &slotAssignment{slot: n, name: name, scope: scope}
			doc.slots[n] = sa
			if seen[name] {
				return // first slot of a name wins
			}
			seen[name] = true
			if name == "" {
				sa.nodes = unnamed
			} else {
				sa.nodes = named[name]
			}
			for _, a := range sa.nodes {
				doc.assigned[a] = n
			}
		})
	}
	tracer().Debugf("%d shadow roots, %d slots, %d assigned nodes",
		len(doc.shadows), len(doc.slots), len(doc.assigned))
}

// walkShadowTree visits all nodes of a tree in tree order. It does not enter
// <template> content.
func walkShadowTree(n *html.Node, visit func(*html.Node)) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		visit(ch)
		if ch.Type == html.ElementNode && ch.DataAtom == atom.Template {
			continue
		}
		walkShadowTree(ch, visit)
	}
}

// scopeOf returns the root of the tree scope n lives in: a shadow root or
// the document root.
func (doc *Document) scopeOf(n *html.Node) *html.Node {
	for n != nil {
		if n.Parent == nil {
			if doc.hosts[n] != nil {
				return n
			}
			break
		}
		n = n.Parent
	}
	return doc.root
}
