package clone

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/dom/style/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CopyComputedStyle is the default style copier. It copies every computed
// property carrying style information, except non-inherited properties
// which hold their user-agent default anyway.
//
// The root of a snapshot is taken out of its surrounding layout: its margins
// are dropped, and an absolutely or fixed positioned root, or a relatively
// positioned root with offsets, is reset to a relative position without
// offsets.
func CopyComputedStyle(src *html.Node, computed *style.PropertyMap, target *style.Declarations,
	isRoot bool, ctx *Context) {
	//
	for _, kv := range computed.Properties() {
		if !kv.Value.IsMeaningful() {
			continue
		}
		if !style.IsCascading(kv.Key) {
			if ua := style.GetUserAgentDefaultProperty(src, kv.Key); kv.Value.Keyword() == ua.Keyword() {
				continue
			}
		}
		target.Set(kv.Key, kv.Value)
	}
	if !isRoot {
		return
	}
	for _, side := range []string{"top", "right", "bottom", "left"} {
		target.Remove("margin-" + side)
	}
	if pos := css.ComputedPosition(computed); pos.IsOutOfFlow() || pos.IsShifted() {
		tracer().P("position", pos).Debugf("resetting position of snapshot root <%s>", src.Data)
		for _, kv := range css.Relative(nil).Properties() {
			target.Set(kv.Key, kv.Value)
		}
	}
}

// CopyClass is the default class-list copier.
func CopyClass(src, clone *html.Node) {
	for _, a := range src.Attr {
		if a.Namespace == "" && a.Key == "class" {
			setAttr(clone, "class", a.Val)
			return
		}
	}
}

// --- Pseudo-elements -------------------------------------------------------

// pseudoAttr marks the boxes synthesized for pseudo-elements.
const pseudoAttr = "data-snapdom-pseudo"

// noGeneratedContent are HTML elements which do not get ::before and ::after
// boxes: void elements and replaced content.
var noGeneratedContent = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Keygen: true, atom.Link: true, atom.Meta: true, atom.Param: true,
	atom.Source: true, atom.Track: true, atom.Wbr: true,
	atom.Audio: true, atom.Canvas: true, atom.Iframe: true, atom.Object: true,
	atom.Select: true, atom.Textarea: true, atom.Video: true,
}

// CopyPseudoContent is the default pseudo-element copier. For each of the
// pseudo-elements ::before and ::after with generated content, a <span>
// box is inserted into the clone, styled with the pseudo-element's computed
// style. The ::before box is the first child of the clone, the ::after box
// is kept as its last child.
//
// Only string content and attr() references are materialized; counters,
// quotes and images are left out. Void elements, replaced elements and
// foreign (SVG, MathML) elements never get pseudo boxes.
func CopyPseudoContent(src, clone *html.Node, ctx *Context) {
	if ctx.window == nil || ctx.factory == nil {
		return
	}
	if src.Namespace != "" || noGeneratedContent[src.DataAtom] {
		return
	}
	for _, pseudo := range []string{"before", "after"} {
		pstyle := ctx.window.PseudoStyle(src, pseudo)
		if pstyle == nil || !css.IsDisplayed(pstyle) {
			continue
		}
		text, ok := generatedContent(src, pstyle.Get("content"))
		if !ok {
			continue
		}
		box := ctx.factory.CreateElement(&html.Node{Type: html.ElementNode, DataAtom: atom.Span, Data: "span"})
		setAttr(box, pseudoAttr, pseudo)
		var decl style.Declarations
		for _, kv := range pstyle.Properties() {
			if kv.Key == "content" || !kv.Value.IsMeaningful() {
				continue
			}
			decl.Set(kv.Key, kv.Value)
		}
		ctx.fonts.Add(decl.Get("font-family").String())
		if decl.Len() > 0 {
			setAttr(box, "style", decl.String())
		}
		if text != "" {
			box.AppendChild(ctx.factory.CreateTextNode(text))
		}
		if pseudo == "before" {
			clone.InsertBefore(box, clone.FirstChild)
		} else {
			clone.AppendChild(box)
		}
		tracer().P("pseudo", pseudo).Debugf("synthesized content box for <%s>", src.Data)
	}
}

// isAfterBox is true if n is a synthesized ::after box.
func isAfterBox(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	v, ok := getAttr(n, pseudoAttr)
	return ok && v == "after"
}

// contentTokens reads the tokens of a `content` value, keeping track of the
// position in the input.
type contentTokens struct {
	s     *scanner.Scanner
	input string
	pos   int
}

func (ct *contentTokens) next() *scanner.Token {
	t := ct.s.Next()
	if t.Type != scanner.TokenEOF && t.Type != scanner.TokenError {
		ct.pos += len(t.Value)
	}
	return t
}

// generatedContent interprets a `content` value. ok is false if the value
// does not generate a box.
func generatedContent(src *html.Node, content style.Property) (string, bool) {
	switch content.Keyword() {
	case "", "none", "normal", "default":
		return "", false
	}
	input := strings.ReplaceAll(strings.TrimSpace(content.String()), "\r\n", "\n")
	ct := &contentTokens{s: scanner.New(input), input: input}
	var b strings.Builder
	for {
		t := ct.next()
		switch t.Type {
		case scanner.TokenEOF:
			return b.String(), true
		case scanner.TokenError:
			// an unclosed string runs to the end of the value
			if rest := ct.input[ct.pos:]; rest != "" && (rest[0] == '"' || rest[0] == '\'') {
				b.WriteString(unescape(rest[1:]))
			}
			return b.String(), true
		case scanner.TokenString:
			b.WriteString(unescape(t.Value[1 : len(t.Value)-1]))
		case scanner.TokenFunction:
			name := functionArg(ct)
			if strings.EqualFold(t.Value, "attr(") && name != "" {
				if v, ok := getAttr(src, name); ok {
					b.WriteString(v)
				}
			}
		}
	}
}

// functionArg consumes the arguments of a function up to the closing
// parenthesis and returns its first identifier argument.
func functionArg(ct *contentTokens) string {
	ident, depth := "", 1
	for depth > 0 {
		t := ct.next()
		switch {
		case t.Type == scanner.TokenEOF || t.Type == scanner.TokenError:
			return ident
		case t.Type == scanner.TokenFunction || (t.Type == scanner.TokenChar && t.Value == "("):
			depth++
		case t.Type == scanner.TokenChar && t.Value == ")":
			depth--
		case t.Type == scanner.TokenIdent && depth == 1 && ident == "":
			ident = unescape(t.Value)
		}
	}
	return ident
}

// unescape decodes the escapes of a CSS string or identifier: a backslash
// followed by 1 to 6 hex digits and an optional white space character, an
// escaped newline (removed), or any other escaped character.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		i++
		if i == len(s) {
			break
		}
		j := i
		for j < len(s) && j-i < 6 && isHexDigit(s[j]) {
			j++
		}
		if j == i {
			if s[i] == '\n' || s[i] == '\f' {
				continue
			}
			r, w := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += w - 1
			continue
		}
		n, _ := strconv.ParseUint(s[i:j], 16, 32)
		r := rune(n)
		if r == 0 || r > unicode.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
			r = unicode.ReplacementChar
		}
		b.WriteRune(r)
		i = j - 1
		if j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\f') {
			i = j
		}
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// --- Form controls ---------------------------------------------------------

// CopyFormValue is the default form-control copier. It writes the current
// value of <input> elements and the selection state of <option> elements
// to the attributes of the clone. The current content of a <textarea> is
// its text, which is copied with the children.
func CopyFormValue(src, clone *html.Node, ctx *Context) {
	if ctx.forms == nil || src.Namespace != "" {
		return
	}
	switch src.DataAtom {
	case atom.Input:
		t, _ := getAttr(src, "type")
		switch strings.ToLower(t) {
		case "checkbox", "radio":
			if ctx.forms.Checked(src) {
				setAttr(clone, "checked", "")
			} else {
				removeAttr(clone, "checked")
			}
		case "file":
		default:
			setAttr(clone, "value", ctx.forms.Value(src))
		}
	case atom.Option:
		if ctx.forms.Selected(src) {
			setAttr(clone, "selected", "")
		} else {
			removeAttr(clone, "selected")
		}
	}
}

// --- Replaced elements -----------------------------------------------------

// replacedAttrs are the HTML attributes carried over to clones. They locate
// resources, define intrinsic geometry or affect rendering of form controls.
var replacedAttrs = map[string]bool{
	"alt": true, "colspan": true, "cols": true, "controls": true, "dir": true,
	"disabled": true, "height": true, "href": true, "lang": true, "multiple": true,
	"open": true, "placeholder": true, "poster": true, "reversed": true,
	"rows": true, "rowspan": true, "size": true, "sizes": true, "span": true,
	"src": true, "srcset": true, "start": true, "type": true, "width": true,
}

// CopyReplacedAttributes is the default attribute copier. SVG elements keep
// all of their attributes, as most of them are presentational. For HTML
// elements, only attributes of replaced content and geometry are copied.
// Attributes `style`, `class` and event handlers are never copied.
func CopyReplacedAttributes(src, clone *html.Node) {
	for _, a := range src.Attr {
		key := strings.ToLower(a.Key)
		if key == "style" || key == "class" || strings.HasPrefix(key, "on") {
			continue
		}
		if src.Namespace == "svg" || (a.Namespace == "" && replacedAttrs[key]) {
			if _, exists := getAttr(clone, a.Key); !exists {
				clone.Attr = append(clone.Attr, a)
			}
		}
	}
}

// --- Attribute helpers -----------------------------------------------------

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, value string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func removeAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
