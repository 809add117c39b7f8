package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/snapdom/dom/style"
	"golang.org/x/net/html"
)

// InlineStyleParser parses the content of a `style` attribute into a rule
// without selectors.
type InlineStyleParser func(string) (Rule, error)

// CSSOM is the collection of style sheets of a document, organized by scope.
// Create with NewCSSOM.
type CSSOM struct {
	rules        map[*html.Node][]*compiledRule // scope root -> rules
	inlineParser InlineStyleParser
	order        int
}

type compiledRule struct {
	rule   Rule
	sel    cascadia.Sel
	pseudo string // "", "before" or "after"
	order  int
}

// NewCSSOM creates an empty CSSOM. If inlineParser is nil, `style`
// attributes are ignored.
func NewCSSOM(inlineParser InlineStyleParser) CSSOM {
	return CSSOM{
		rules:        make(map[*html.Node][]*compiledRule),
		inlineParser: inlineParser,
	}
}

// AddStylesForScope adds a style sheet for a scope. scope is the root node
// of a tree: the document node for the light tree, or a shadow root.
//
// Selectors which cannot be compiled are traced and skipped; the remaining
// selectors of the rule stay in effect.
func (cssom *CSSOM) AddStylesForScope(scope *html.Node, sheet StyleSheet) {
	if sheet == nil || sheet.Empty() {
		return
	}
	if cssom.rules == nil {
		cssom.rules = make(map[*html.Node][]*compiledRule)
	}
	for _, rule := range sheet.Rules() {
		cssom.order++
		selectors := rule.SelectorList()
		if len(selectors) == 0 && rule.Selector() != "" {
			selectors = strings.Split(rule.Selector(), ",")
		}
		for _, selector := range selectors {
			sel, pseudo, err := compileSelector(selector)
			if err != nil {
				tracer().P("selector", selector).Errorf("skipping CSS selector: %v", err)
				continue
			}
			cssom.rules[scope] = append(cssom.rules[scope], &compiledRule{
				rule:   rule,
				sel:    sel,
				pseudo: pseudo,
				order:  cssom.order,
			})
		}
	}
}

// RuleCount returns the number of compiled selectors for a scope.
func (cssom CSSOM) RuleCount(scope *html.Node) int {
	return len(cssom.rules[scope])
}

// compileSelector splits off a trailing ::before or ::after and compiles
// the rest of the selector.
func compileSelector(selector string) (cascadia.Sel, string, error) {
	selector = strings.TrimSpace(selector)
	pseudo := ""
	lower := strings.ToLower(selector)
	for _, pe := range []string{"before", "after"} {
		for _, prefix := range []string{"::", ":"} {
			if strings.HasSuffix(lower, prefix+pe) {
				pseudo = pe
				selector = strings.TrimSpace(selector[:len(selector)-len(prefix+pe)])
				break
			}
		}
		if pseudo != "" {
			break
		}
	}
	if pseudo != "" && (selector == "" || strings.HasSuffix(selector, ">") ||
		strings.HasSuffix(selector, "+") || strings.HasSuffix(selector, "~")) {
		selector += "*"
	}
	sel, err := cascadia.Parse(selector)
	return sel, pseudo, err
}

// --- Cascade ---------------------------------------------------------------

type declaration struct {
	key       string
	value     style.Property
	important bool
	inline    bool
	spec      cascadia.Specificity
	order     int
}

func (d declaration) less(other declaration) bool {
	if d.important != other.important {
		return other.important
	}
	if d.inline != other.inline {
		return other.inline
	}
	if d.spec != other.spec {
		return d.spec.Less(other.spec)
	}
	return d.order < other.order
}

// MatchedProperties returns the properties declared for an element: all
// declarations of rules in scope matching n, and declarations of the
// element's `style` attribute, with the CSS cascade applied.
// Shortcut properties are split into their individual components.
//
// The result is never nil, but may be empty.
func (cssom CSSOM) MatchedProperties(n *html.Node, scope *html.Node) *style.PropertyMap {
	if n == nil || n.Type != html.ElementNode {
		return style.NewPropertyMap()
	}
	decls := cssom.collect(n, scope, "")
	if cssom.inlineParser != nil {
		if text, ok := attr(n, "style"); ok && strings.TrimSpace(text) != "" {
			rule, err := cssom.inlineParser(text)
			if err != nil {
				tracer().P("style", text).Errorf("skipping style attribute: %v", err)
			} else {
				decls = appendDeclarations(decls, rule, cascadia.Specificity{}, cssom.order+1, true)
			}
		}
	}
	return cascade(decls)
}

// PseudoProperties returns the properties declared for a pseudo-element
// ("before" or "after") of element n, or nil if no rule in scope targets it.
func (cssom CSSOM) PseudoProperties(n *html.Node, scope *html.Node, pseudo string) *style.PropertyMap {
	if n == nil || n.Type != html.ElementNode || pseudo == "" {
		return nil
	}
	decls := cssom.collect(n, scope, pseudo)
	if len(decls) == 0 {
		return nil
	}
	return cascade(decls)
}

func (cssom CSSOM) collect(n *html.Node, scope *html.Node, pseudo string) []declaration {
	var decls []declaration
	for _, r := range cssom.rules[scope] {
		if r.pseudo != pseudo || !r.sel.Match(n) {
			continue
		}
		decls = appendDeclarations(decls, r.rule, r.sel.Specificity(), r.order, false)
	}
	return decls
}

func appendDeclarations(decls []declaration, rule Rule, spec cascadia.Specificity,
	order int, inline bool) []declaration {
	//
	for _, key := range rule.Properties() {
		decls = append(decls, declaration{
			key:       strings.ToLower(strings.TrimSpace(key)),
			value:     rule.Value(key),
			important: rule.IsImportant(key),
			inline:    inline,
			spec:      spec,
			order:     order,
		})
	}
	return decls
}

func cascade(decls []declaration) *style.PropertyMap {
	sort.SliceStable(decls, func(i, j int) bool {
		return decls[i].less(decls[j])
	})
	pmap := style.NewPropertyMap()
	for _, d := range decls {
		if style.IsCompoundProperty(d.key) {
			kvs, err := style.SplitCompoundProperty(d.key, d.value)
			if err != nil {
				tracer().P("key", d.key).Errorf("%v", err)
				continue
			}
			for _, kv := range kvs {
				pmap.Add(kv.Key, kv.Value)
			}
			continue
		}
		pmap.Add(d.key, d.value)
	}
	return pmap
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
