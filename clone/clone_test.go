package clone_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/snapdom/clone"
	"github.com/npillmayer/snapdom/dom"
	"github.com/npillmayer/snapdom/dom/domdbg"
	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/maybe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, s string) *dom.Document {
	doc, err := dom.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func query(t *testing.T, doc *dom.Document, sel string) *html.Node {
	n, err := doc.QuerySelector(sel)
	require.NoError(t, err)
	require.NotNil(t, n, "no element matches %s", sel)
	return n
}

func snapshot(t *testing.T, doc *dom.Document, n *html.Node, opts clone.Options) (*html.Node, []string) {
	c, fonts, err := clone.Snapshot(doc, n, opts)
	require.NoError(t, err)
	require.NotNil(t, c)
	t.Logf("clone:\n%s", domdbg.PrintTree(c))
	return c, fonts
}

// shape returns a compact outline of a tree: tags, #text and #comment.
func shape(n *html.Node) string {
	var b strings.Builder
	switch n.Type {
	case html.TextNode:
		b.WriteString("#text")
	case html.CommentNode:
		b.WriteString("#comment")
	case html.DocumentNode:
		b.WriteString("#document")
	default:
		b.WriteString(n.Data)
	}
	if n.FirstChild != nil {
		b.WriteString("(")
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch != n.FirstChild {
				b.WriteString(" ")
			}
			b.WriteString(shape(ch))
		}
		b.WriteString(")")
	}
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// styleOf splits the style attribute of n into properties.
func styleOf(n *html.Node) map[string]string {
	m := make(map[string]string)
	s, _ := attr(n, "style")
	for _, decl := range strings.Split(s, ";") {
		kv := strings.SplitN(decl, ":", 2)
		if len(kv) == 2 {
			m[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	return m
}

func elementChildren(n *html.Node) []*html.Node {
	var r []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			r = append(r, ch)
		}
	}
	return r
}

// ---------------------------------------------------------------------------

func TestStructuralFidelity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="r"><p>One</p><p>Two <b>x</b></p><!-- c --></div></body></html>`)
	r := query(t, doc, "#r")
	c, _ := snapshot(t, doc, r, clone.Options{})
	assert.Equal(t, "div(p(#text) p(#text b(#text)) #comment)", shape(c))
	assert.Nil(t, c.Parent)
	assert.Nil(t, c.NextSibling)
	assert.NotSame(t, r, c)
	id, _ := attr(c, "id")
	assert.Equal(t, "", id, "ids are not copied")
	assert.Equal(t, " c ", c.LastChild.Data)
	assert.NotSame(t, r.LastChild, c.LastChild)
}

func TestDisplayNoneIsPruned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="r">`+
		`<p style="display: none; font-family: Hidden">hidden <b>x</b></p><span>y</span>`+
		`</div></body></html>`)
	c, fonts := snapshot(t, doc, query(t, doc, "#r"), clone.Options{})
	require.Equal(t, "div(#comment span(#text))", shape(c))
	placeholder := c.FirstChild
	assert.Equal(t, html.CommentNode, placeholder.Type)
	assert.Equal(t, "p", placeholder.Data)
	assert.Nil(t, placeholder.FirstChild)
	assert.NotContains(t, fonts, "Hidden")
}

func TestPrunedRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><head><title>T</title></head><body><p>x</p></body></html>`)
	c, _ := snapshot(t, doc, query(t, doc, "html"), clone.Options{})
	require.Equal(t, "html(#comment body(p(#text)))", shape(c))
	assert.Equal(t, "head", c.FirstChild.Data)
	//
	h, _ := snapshot(t, doc, query(t, doc, "head"), clone.Options{
		BackgroundColor: maybe.Just("red"),
	})
	assert.Equal(t, html.CommentNode, h.Type, "visibility applies to the root as well")
}

func TestDropSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="r">`+
		`<style>p { color: green; }</style><script>alert(1)</script>`+
		`<svg><style>.a { fill: red; }</style><rect class="a" width="10"></rect></svg>`+
		`<p>t</p>`+
		`</div></body></html>`)
	c, _ := snapshot(t, doc, query(t, doc, "#r"), clone.Options{})
	assert.Equal(t, "div(svg(rect) p(#text))", shape(c))
	assert.Equal(t, "green", styleOf(c.LastChild)["color"], "dropped sheets still apply to the source")
	rect := c.FirstChild.FirstChild
	w, ok := attr(rect, "width")
	assert.True(t, ok, "SVG attributes are kept")
	assert.Equal(t, "10", w)
}

func TestFilterVeto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="r" class="skip">`+
		`<p>keep</p><div class="skip"><span id="deep">deep</span></div><i>also</i>`+
		`</div></body></html>`)
	deep := query(t, doc, "#deep")
	var seen []*html.Node
	filter := func(n *html.Node) bool {
		seen = append(seen, n)
		v, _ := attr(n, "class")
		return v != "skip"
	}
	c, _ := snapshot(t, doc, query(t, doc, "#r"), clone.Options{Filter: filter})
	assert.Equal(t, "div(p(#text) i(#text))", shape(c), "filter does not apply to the root")
	assert.NotContains(t, seen, deep, "descendants of vetoed nodes are never visited")
	assert.NotContains(t, seen, deep.FirstChild)
}

func TestShadowTakeover(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body>`+
		`<x-card id="full"><template shadowrootmode="open"><p>shadow</p></template><i>light</i></x-card>`+
		`<x-card id="empty"><template shadowrootmode="open"></template><i>light</i></x-card>`+
		`</body></html>`)
	c, _ := snapshot(t, doc, query(t, doc, "#full"), clone.Options{})
	assert.Equal(t, "x-card(p(#text))", shape(c), "shadow content replaces light children")
	assert.Equal(t, "shadow", c.FirstChild.FirstChild.Data)
	//
	c, _ = snapshot(t, doc, query(t, doc, "#empty"), clone.Options{})
	assert.Equal(t, "x-card(i(#text))", shape(c), "an empty shadow root does not take over")
}

func TestSlotProjection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><x-card id="host">`+
		`<template shadowrootmode="open">`+
		`<p>T</p><slot name="head"><i>fallback</i></slot><slot></slot><slot name="none"><i>fb</i></slot>`+
		`</template>`+
		`<span slot="head">H</span><b>B</b>`+
		`</x-card></body></html>`)
	c, _ := snapshot(t, doc, query(t, doc, "#host"), clone.Options{})
	assert.Equal(t, "x-card(p(#text) span(#text) b(#text))", shape(c))
	span := c.FirstChild.NextSibling
	assert.Equal(t, "H", span.FirstChild.Data)
	assert.NotSame(t, query(t, doc, "span"), span)
}

func TestSlotElementInLightTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="r"><slot><i>x</i></slot></div></body></html>`)
	c, _ := snapshot(t, doc, query(t, doc, "#r"), clone.Options{})
	assert.Equal(t, "div(slot(i(#text)))", shape(c))
}

var fontHTML = `<html><head><style>` +
	`body { font-family: Georgia; } .mono { font-family: Courier; } .sans { font-family: Arial; }` +
	`</style></head><body><div id="r"><p id="p">a <code class="mono">x</code></p>` +
	`<span class="sans" style="display: none">hidden</span></div></body></html>`

func TestFontAccumulation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, fontHTML)
	_, fonts := snapshot(t, doc, query(t, doc, "#r"), clone.Options{})
	assert.Equal(t, []string{"Courier", "Georgia"}, fonts)
	_, subset := snapshot(t, doc, query(t, doc, ".mono"), clone.Options{})
	assert.Equal(t, []string{"Courier"}, subset)
	//
	fs := clone.NewFontSet()
	ctx := clone.NewContext(clone.DocumentCollaborators(doc), clone.Options{Fonts: fs})
	clone.Node(query(t, doc, ".mono"), ctx)
	assert.Equal(t, 1, fs.Len())
	clone.Node(query(t, doc, "#r"), ctx)
	assert.Equal(t, 2, fs.Len(), "font set only grows")
	assert.True(t, fs.Has("Georgia"))
	assert.Same(t, fs, ctx.Fonts())
}

func TestFontsWrittenAreRecorded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, fontHTML)
	c, fonts := snapshot(t, doc, query(t, doc, "#r"), clone.Options{
		Style: map[string]string{"fontFamily": "Impact"},
	})
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if ff := styleOf(n)["font-family"]; ff != "" {
			assert.Contains(t, fonts, ff)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(c)
	assert.Contains(t, fonts, "Impact")
}

func TestRootOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="r" style="color: green; width: 50px; background-color: yellow">`+
		`<span style="width: 10px">x</span></div></body></html>`)
	r := query(t, doc, "#r")
	c, _ := snapshot(t, doc, r, clone.Options{
		BackgroundColor: maybe.Just("red"),
		Width:           maybe.Just(200),
		Style:           map[string]string{"color": "blue"},
	})
	styles := styleOf(c)
	assert.Equal(t, "red", styles["background-color"])
	assert.Equal(t, "200px", styles["width"])
	assert.Equal(t, "blue", styles["color"])
	_, hasHeight := styles["height"]
	assert.False(t, hasHeight)
	span := styleOf(elementChildren(c)[0])
	assert.Equal(t, "10px", span["width"], "overrides apply to the root only")
	assert.Equal(t, "green", span["color"])
	_, hasBg := span["background-color"]
	assert.False(t, hasBg)
	//
	c, _ = snapshot(t, doc, r, clone.Options{
		BackgroundColor: maybe.Just("red"),
		Width:           maybe.Just(200),
		Height:          maybe.Just(-1),
		Style:           map[string]string{"width": "10em", "backgroundColor": "blue"},
	})
	styles = styleOf(c)
	assert.Equal(t, "10em", styles["width"], "style map overrides width")
	assert.Equal(t, "blue", styles["background-color"], "style map overrides background color")
	_, hasHeight = styles["height"]
	assert.False(t, hasHeight, "negative lengths are ignored")
}

func TestRootPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="r" style="position: absolute; top: 10px; margin-top: 5px">`+
		`<span style="position: absolute; left: 3px">x</span></div></body></html>`)
	c, _ := snapshot(t, doc, query(t, doc, "#r"), clone.Options{})
	styles := styleOf(c)
	assert.Equal(t, "relative", styles["position"])
	assert.NotContains(t, styles, "top")
	assert.NotContains(t, styles, "margin-top")
	span := styleOf(elementChildren(c)[0])
	assert.Equal(t, "absolute", span["position"])
	assert.Equal(t, "3px", span["left"])
	//
	doc = parse(t, `<html><body><div id="s" style="position: relative; left: 20px; top: 0"></div>`+
		`<div id="z" style="position: relative; top: 0"></div></body></html>`)
	c, _ = snapshot(t, doc, query(t, doc, "#s"), clone.Options{})
	styles = styleOf(c)
	assert.Equal(t, "relative", styles["position"])
	assert.NotContains(t, styles, "left", "shifted roots lose their offsets")
	c, _ = snapshot(t, doc, query(t, doc, "#z"), clone.Options{})
	assert.Equal(t, "0", styleOf(c)["top"], "zero offsets do not shift the root")
}

func TestMediaOpacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="r">`+
		`<video src="movie.mp4" poster="p.png" onclick="play()"><p>Your browser cannot play this</p></video>`+
		`</div></body></html>`)
	c, _ := snapshot(t, doc, query(t, doc, "#r"), clone.Options{})
	require.Equal(t, "div(video)", shape(c))
	v := c.FirstChild
	src, _ := attr(v, "src")
	assert.Equal(t, "movie.mp4", src)
	poster, _ := attr(v, "poster")
	assert.Equal(t, "p.png", poster)
	_, ok := attr(v, "onclick")
	assert.False(t, ok, "event handlers are not copied")
}

func TestTextCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><p id="t">hello</p></body></html>`)
	text := query(t, doc, "#t").FirstChild
	c, _ := snapshot(t, doc, text, clone.Options{})
	assert.Equal(t, html.TextNode, c.Type)
	assert.Equal(t, "hello", c.Data)
	assert.NotSame(t, text, c)
}

func TestStructuralMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="r" style="color: red" class="c">`+
		`<p hidden>h</p><script>x()</script><x-card><template shadowrootmode="open"><b>s</b></template><i>l</i></x-card>`+
		`</div></body></html>`)
	r := query(t, doc, "#r")
	ctx := clone.NewContext(clone.Collaborators{Window: doc, Tree: doc}, clone.Options{
		BackgroundColor: maybe.Just("red"),
	})
	assert.Equal(t, clone.StructuralMode, ctx.Mode())
	c := clone.Node(r, ctx)
	t.Logf("clone:\n%s", domdbg.PrintTree(c))
	assert.Equal(t, "div(p(#text) x-card(b(#text)))", shape(c),
		"no pruning without styles, flattening still applies")
	st, _ := attr(c, "style")
	assert.Equal(t, "color: red", st, "attributes are copied verbatim")
	c.Attr[0].Val = "changed"
	assert.Equal(t, "r", r.Attr[0].Val, "attributes must not be shared")
	assert.Equal(t, 0, ctx.Fonts().Len())
	//
	c = clone.Node(r, nil)
	assert.Equal(t, "div(p(#text) x-card(i(#text)))", shape(c), "default context has no shadow trees")
	assert.Nil(t, clone.Node(nil, ctx))
	//
	full := clone.NewContext(clone.DocumentCollaborators(doc), clone.Options{})
	assert.Equal(t, clone.FullMode, full.Mode())
	assert.Equal(t, clone.StructuralMode, clone.NewContext(clone.DocumentCollaborators(nil), clone.Options{}).Mode())
}

func TestSnapshotNilNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	_, _, err := clone.Snapshot(nil, nil, clone.Options{})
	assert.ErrorIs(t, err, clone.ErrNilNode)
}

func TestPseudoContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><head><style>`+
		`.q::before { content: "["; color: red; } .q::after { content: attr(data-x) "]"; }`+
		`.n::before { content: none; }`+
		`</style></head><body>`+
		`<p id="q" class="q" data-x="end">mid <b>b</b></p><p id="n" class="n">n</p>`+
		`</body></html>`)
	c, _ := snapshot(t, doc, query(t, doc, "#q"), clone.Options{})
	require.Equal(t, "p(span(#text) #text b(#text) span(#text))", shape(c))
	before, after := c.FirstChild, c.LastChild
	kind, _ := attr(before, "data-snapdom-pseudo")
	assert.Equal(t, "before", kind)
	assert.Equal(t, "[", before.FirstChild.Data)
	assert.Equal(t, "red", styleOf(before)["color"])
	assert.NotContains(t, styleOf(before), "content")
	kind, _ = attr(after, "data-snapdom-pseudo")
	assert.Equal(t, "after", kind)
	assert.Equal(t, "end]", after.FirstChild.Data)
	//
	c, _ = snapshot(t, doc, query(t, doc, "#n"), clone.Options{})
	assert.Equal(t, "p(#text)", shape(c), "content: none generates no box")
}

func TestNoPseudoBoxesForVoidElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><head><style>`+
		`img::after { content: "x"; } input::before { content: "x"; } br::after { content: "x"; }`+
		`video::before { content: "x"; } .p::after { content: "x"; }`+
		`</style></head><body><div id="r">`+
		`<img src="a.png"><input value="v"><br><video src="m.mp4"></video><p class="p">t</p>`+
		`</div></body></html>`)
	c, _ := snapshot(t, doc, query(t, doc, "#r"), clone.Options{})
	assert.Equal(t, "div(img input br video p(#text span(#text)))", shape(c))
	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, c), "clone must be serializable")
	assert.Contains(t, buf.String(), `src="a.png"/>`)
}

func TestPseudoContentEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><head><style>`+
		`q::before { content: "\201C"; } q::after { content: "\2014 end"; }`+
		`</style></head><body><p id="r"><q>quote</q></p></body></html>`)
	c, _ := snapshot(t, doc, query(t, doc, "#r"), clone.Options{})
	require.Equal(t, "p(q(span(#text) #text span(#text)))", shape(c))
	q := c.FirstChild
	assert.Equal(t, "\u201c", q.FirstChild.FirstChild.Data)
	assert.Equal(t, "\u2014end", q.LastChild.FirstChild.Data)
}

func TestAfterBoxKeepsDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><head><style>.a::after { content: "!"; }</style></head><body>`+
		`<div id="r"><span data-snapdom-pseudo="after">a</span><b>b</b><i>c</i></div>`+
		`<div id="s" class="a"><span data-snapdom-pseudo="after">a</span><b>b</b></div>`+
		`</body></html>`)
	r := query(t, doc, "#r")
	c := clone.Node(r, clone.NewContext(clone.Collaborators{Tree: doc}, clone.Options{}))
	assert.Equal(t, "div(span(#text) b(#text) i(#text))", shape(c),
		"structural clones keep document order")
	//
	col := clone.DocumentCollaborators(doc)
	col.CopyAttributes = func(src, c *html.Node) {
		c.Attr = append(c.Attr, src.Attr...)
	}
	c = clone.Node(r, clone.NewContext(col, clone.Options{}))
	assert.Equal(t, "div(span(#text) b(#text) i(#text))", shape(c),
		"copied marker attributes do not reorder children")
	//
	c = clone.Node(query(t, doc, "#s"), clone.NewContext(col, clone.Options{}))
	require.Equal(t, "div(span(#text) b(#text) span(#text))", shape(c))
	assert.Equal(t, "a", c.FirstChild.FirstChild.Data)
	assert.Equal(t, "!", c.LastChild.FirstChild.Data, "synthesized ::after box stays last")
}

func TestFormValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><form id="f">`+
		`<input id="name" value="Ann"><input id="cb" type="checkbox" checked>`+
		`<textarea id="ta">Hello</textarea>`+
		`<select id="sel"><option id="o1" selected>One</option><option id="o2">Two</option></select>`+
		`</form></body></html>`)
	doc.SetValue(query(t, doc, "#name"), "Bob")
	doc.SetChecked(query(t, doc, "#cb"), false)
	doc.SetValue(query(t, doc, "#ta"), "Bye")
	doc.SetValue(query(t, doc, "#sel"), "Two")
	c, _ := snapshot(t, doc, query(t, doc, "#f"), clone.Options{})
	ch := elementChildren(c)
	require.Len(t, ch, 4)
	v, _ := attr(ch[0], "value")
	assert.Equal(t, "Bob", v)
	_, checked := attr(ch[1], "checked")
	assert.False(t, checked)
	typ, _ := attr(ch[1], "type")
	assert.Equal(t, "checkbox", typ)
	assert.Equal(t, "Bye", ch[2].FirstChild.Data)
	opts := elementChildren(ch[3])
	require.Len(t, opts, 2)
	_, sel1 := attr(opts[0], "selected")
	_, sel2 := attr(opts[1], "selected")
	assert.False(t, sel1)
	assert.True(t, sel2)
}

func TestShadowStylesDoNotLeak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><head><style>p { color: green; }</style></head><body>`+
		`<x-card id="host"><template shadowrootmode="open"><style>p { color: red; }</style><p>in</p></template></x-card>`+
		`<p id="out">out</p></body></html>`)
	c, _ := snapshot(t, doc, query(t, doc, "#host"), clone.Options{})
	require.Equal(t, "x-card(p(#text))", shape(c))
	assert.Equal(t, "red", styleOf(c.FirstChild)["color"])
	c, _ = snapshot(t, doc, query(t, doc, "#out"), clone.Options{})
	assert.Equal(t, "green", styleOf(c)["color"])
}

type recordingFactory struct {
	clone.DetachedFactory
	elements int
}

func (f *recordingFactory) CreateElement(src *html.Node) *html.Node {
	f.elements++
	return f.DetachedFactory.CreateElement(src)
}

func TestCustomCollaborators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.clone")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="r" class="a b"><p class="c">x</p></div></body></html>`)
	f := &recordingFactory{}
	col := clone.DocumentCollaborators(doc)
	col.Factory = f
	col.CopyClass = func(src, c *html.Node) {}
	col.CopyStyle = func(src *html.Node, _ *style.PropertyMap, target *style.Declarations, isRoot bool, _ *clone.Context) {
		if isRoot {
			target.Set("outline", "1px solid")
		}
	}
	ctx := clone.NewContext(col, clone.Options{})
	c := clone.Node(query(t, doc, "#r"), ctx)
	assert.Equal(t, 2, f.elements)
	_, ok := attr(c, "class")
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"outline": "1px solid"}, styleOf(c))
	_, ok = attr(c.FirstChild, "style")
	assert.False(t, ok, "empty style targets produce no style attribute")
}
