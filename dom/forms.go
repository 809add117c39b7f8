package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Value returns the current value of a form control (<input>, <textarea>,
// <select> or <option>). As long as no value has been set with SetValue,
// the value is derived from the markup. For other nodes, Value returns "".
func (doc *Document) Value(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	if v, ok := doc.values[n]; ok {
		return v
	}
	switch n.DataAtom {
	case atom.Input:
		v, _ := attr(n, "value")
		return v
	case atom.Textarea:
		return textContent(n)
	case atom.Select:
		var first, selected *html.Node
		forEachOption(n, func(o *html.Node) {
			if first == nil {
				first = o
			}
			if _, ok := attr(o, "selected"); ok && selected == nil {
				selected = o
			}
		})
		if selected == nil {
			selected = first
		}
		if selected == nil {
			return ""
		}
		return optionValue(selected)
	case atom.Option:
		return optionValue(n)
	}
	return ""
}

// SetValue sets the current value of a form control. Setting the value of
// a <textarea> replaces its text content.
func (doc *Document) SetValue(n *html.Node, value string) {
	if n == nil || n.Type != html.ElementNode {
		return
	}
	switch n.DataAtom {
	case atom.Input, atom.Select:
		doc.values[n] = value
	case atom.Textarea:
		for ch := n.FirstChild; ch != nil; ch = n.FirstChild {
			n.RemoveChild(ch)
		}
		n.AppendChild(&html.Node{Type: html.TextNode, Data: value})
		doc.values[n] = value
	default:
		tracer().Debugf("cannot set value of <%s>", n.Data)
	}
}

// Checked returns the current checkedness of a checkbox or radio button.
func (doc *Document) Checked(n *html.Node) bool {
	if !isCheckable(n) {
		return false
	}
	if c, ok := doc.checked[n]; ok {
		return c
	}
	_, c := attr(n, "checked")
	return c
}

// SetChecked sets the current checkedness of a checkbox or radio button.
// Checking a radio button unchecks the other radio buttons of its group.
func (doc *Document) SetChecked(n *html.Node, checked bool) {
	if !isCheckable(n) {
		return
	}
	doc.checked[n] = checked
	if !checked || !strings.EqualFold(attrOr(n, "type", ""), "radio") {
		return
	}
	name := attrOr(n, "name", "")
	if name == "" {
		return
	}
	group := doc.scopeOf(n)
	if form := enclosing(n, atom.Form); form != nil {
		group = form
	}
	walkShadowTree(group, func(other *html.Node) {
		if other != n && isCheckable(other) && strings.EqualFold(attrOr(other, "type", ""), "radio") &&
			attrOr(other, "name", "") == name {
			doc.checked[other] = false
		}
	})
}

// Selected returns true if an <option> is selected in its <select>.
func (doc *Document) Selected(option *html.Node) bool {
	if option == nil || option.DataAtom != atom.Option {
		return false
	}
	sel := enclosing(option, atom.Select)
	if sel == nil {
		_, ok := attr(option, "selected")
		return ok
	}
	if _, multiple := attr(sel, "multiple"); multiple {
		if _, set := doc.values[sel]; !set {
			_, ok := attr(option, "selected")
			return ok
		}
	}
	return optionValue(option) == doc.Value(sel)
}

func isCheckable(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || n.DataAtom != atom.Input {
		return false
	}
	t := strings.ToLower(attrOr(n, "type", ""))
	return t == "checkbox" || t == "radio"
}

func optionValue(o *html.Node) string {
	if v, ok := attr(o, "value"); ok {
		return v
	}
	return strings.Join(strings.Fields(textContent(o)), " ")
}

func forEachOption(sel *html.Node, f func(*html.Node)) {
	for ch := sel.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		switch ch.DataAtom {
		case atom.Option:
			f(ch)
		case atom.Optgroup:
			forEachOption(ch, f)
		}
	}
}

func enclosing(n *html.Node, a atom.Atom) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == a {
			return p
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.TextNode {
				b.WriteString(ch.Data)
			} else {
				collect(ch)
			}
		}
	}
	collect(n)
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attrOr(n *html.Node, key, def string) string {
	if v, ok := attr(n, key); ok {
		return v
	}
	return def
}
