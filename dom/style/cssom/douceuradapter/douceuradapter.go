/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'snapdom.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("snapdom.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a style sheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style sheet: %w", err)
	}
	return Wrap(c), nil
}

// ParseInlineStyle parses the content of a `style` attribute, e.g.
//
//     color: red; margin: 0 !important
//
// into a rule without selectors. It is a cssom.InlineStyleParser.
func ParseInlineStyle(text string) (cssom.Rule, error) {
	// douceur drops the value of a final declaration without terminator
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style attribute: %w", err)
	}
	r := css.NewRule(css.QualifiedRule)
	r.Declarations = decls
	return Rule(*r), nil
}

var _ cssom.InlineStyleParser = ParseInlineStyle

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Style sheets of other
// implementations are not supported and are traced as an error.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules of style sheet type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns the qualified rules of a stylesheet. At-rules (@media,
// @font-face, …) are not part of the result.
//
// Interface style.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("ignoring at-rule %s", r.Name)
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// SelectorList returns the individual selectors of the rule's prelude.
func (r Rule) SelectorList() []string {
	return r.Selectors
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a property is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	var value style.Property
	for _, d := range r.Declarations {
		if d.Property == key {
			value = style.Property(d.Value)
		}
	}
	return value
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	important := false
	for _, d := range r.Declarations {
		if d.Property == key {
			important = d.Important
		}
	}
	return important
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements searches a tree for embedded <style>s and returns
// their content as style sheets, in document order. The content of
// <template> elements is inert and therefore skipped. Style elements with
// invalid CSS are traced and skipped.
func ExtractStyleElements(scope *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type != html.ElementNode {
				walk(ch)
				continue
			}
			switch ch.DataAtom {
			case atom.Template:
				continue
			case atom.Style:
				if sheet := extractStyles(ch); sheet != nil {
					sheets = append(sheets, sheet)
				}
				continue
			}
			walk(ch)
		}
	}
	if scope != nil {
		walk(scope)
	}
	return sheets
}

func extractStyles(styleElem *html.Node) *CSSStyles {
	var text strings.Builder
	for ch := styleElem.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			text.WriteString(ch.Data)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return nil
	}
	sheet, err := Parse(text.String())
	if err != nil {
		tracer().Errorf("skipping <style>: %v", err)
		return nil
	}
	return sheet
}
