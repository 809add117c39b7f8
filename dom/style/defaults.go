package style

import (
	"golang.org/x/net/html"
)

// Values "default" have the following semantics:
// Treat this as an inherent UA default, which should not be instantiated in memory,
// but rather will be treated implicitely by rendering code.
// See issure https://github.com/npillmayer/tyse/issues/8
//
var nonInherited = map[string]string{
	"position":            "static",
	"float":               "none",
	"z-index":             "auto",
	"overflow":            "visible",
	"opacity":             "1",
	"box-sizing":          "content-box",
	"background-color":    "default",
	"background-image":    "none",
	"border-top-color":    "default",
	"border-left-color":   "default",
	"border-right-color":  "default",
	"border-bottom-color": "default",
	"border-top-style":    "none",
	"border-left-style":   "none",
	"border-right-style":  "none",
	"border-bottom-style": "none",
	"text-decoration":     "none",
	"content":             "normal",
	"flow-from":           "none",
	"flow-into":           "none",
}

var isDimension = map[string]string{
	"width":                      "auto",
	"height":                     "auto",
	"min-width":                  "auto",
	"min-height":                 "auto",
	"max-width":                  "none",
	"max-height":                 "none",
	"top":                        "auto",
	"right":                      "auto",
	"bottom":                     "auto",
	"left":                       "auto",
	"margin-top":                 "0",
	"margin-left":                "0",
	"margin-right":               "0",
	"margin-bottom":              "0",
	"padding-top":                "0",
	"padding-left":               "0",
	"padding-right":              "0",
	"padding-bottom":             "0",
	"border-top-width":           "medium",
	"border-left-width":          "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-top-left-radius":     "0",
	"border-top-right-radius":    "0",
	"border-bottom-left-radius":  "0",
	"border-bottom-right-radius": "0",
}

// GetUserAgentDefaultProperty returns the user-agent default property for a given key.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	switch key {
	case "display":
		return DisplayPropertyForHTMLNode(node)
	case "margin-top", "margin-bottom":
		if m, ok := blockMargins[elementName(node)]; ok {
			return Property(m)
		}
	}
	if dim, ok := isDimension[key]; ok {
		return Property(dim)
	}
	if p, ok := nonInherited[key]; ok {
		return Property(p)
	}
	return NullStyle
}

// Vertical UA margins of some block elements.
var blockMargins = map[string]string{
	"p":          "1em",
	"ul":         "1em",
	"ol":         "1em",
	"blockquote": "1em",
	"h1":         "0.67em",
	"h2":         "0.83em",
	"h3":         "1em",
}

func elementName(node *html.Node) string {
	if node == nil || node.Type != html.ElementNode {
		return ""
	}
	return node.Data
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	for _, a := range node.Attr {
		if a.Namespace == "" && a.Key == "hidden" {
			return "none"
		}
	}
	if node.Namespace == "svg" {
		return "inline"
	}
	switch node.Data {
	case "head", "script", "style", "template", "title", "meta", "link", "base",
		"noscript", "datalist", "param", "source", "track":
		return "none"
	case "slot":
		return "contents"
	case "html", "address", "article", "aside", "blockquote", "body", "dd", "details",
		"dialog", "div", "dl", "dt", "fieldset", "figcaption", "figure", "footer", "form",
		"h1", "h2", "h3", "h4", "h5", "h6", "header", "hr", "main", "nav", "ol", "p",
		"pre", "section", "summary", "ul":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "tr":
		return "table-row"
	case "td", "th":
		return "table-cell"
	case "thead":
		return "table-header-group"
	case "tbody":
		return "table-row-group"
	case "tfoot":
		return "table-footer-group"
	case "caption":
		return "table-caption"
	case "button", "input", "select", "textarea", "meter", "progress":
		return "inline-block"
	}
	return "inline"
}

// InitializeDefaultPropertyValues creates an internal data structure to
// hold all the default values for CSS properties.
// In real-world browsers these are the user-agent CSS values.
//
// The resulting property map is the computed style of the document node,
// i.e., the source of inherited properties for the root element.
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	m := make(map[string]*PropertyGroup, 15)

	x := NewPropertyGroup(PGX) // special group for extension properties
	for _, kv := range additionalProps {
		x.Set(kv.Key, kv.Value)
	}
	m[PGX] = x

	display := NewPropertyGroup(PGDisplay)
	display.Set("display", "block")
	display.Set("visibility", "visible")
	m[PGDisplay] = display

	color := NewPropertyGroup(PGColor)
	color.Set("color", UADefault)
	m[PGColor] = color

	text := NewPropertyGroup(PGText)
	text.Set("direction", "ltr")
	text.Set("white-space", "normal")
	text.Set("word-spacing", "normal")
	text.Set("letter-spacing", "normal")
	text.Set("word-break", "normal")
	text.Set("text-align", "start")
	text.Set("line-height", "normal")
	m[PGText] = text

	font := NewPropertyGroup(PGFont)
	font.Set("font-style", "normal")
	font.Set("font-weight", "400")
	font.Set("font-size", "16px")
	m[PGFont] = font

	return &PropertyMap{m}
}
