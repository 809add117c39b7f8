package cssom_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/snapdom/dom/style/cssom"
	"github.com/npillmayer/snapdom/dom/style/cssom/douceuradapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var myhtml = `<html><head></head><body>` +
	`<p id="p1" class="lead">Hello</p>` +
	`<p id="p2" style="color: green; margin: 1px 2px">World</p>` +
	`</body></html>`

var mycss = `
p { color: black; padding: 3px; }
.lead { color: red; }
#p1 { color: blue; }
p { color: gray !important; }
body > p::before { content: "*"; color: orange; }
`

func setup(t *testing.T) (*html.Node, cssom.CSSOM) {
	doc, err := html.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	sheet, err := douceuradapter.Parse(mycss)
	require.NoError(t, err)
	c := cssom.NewCSSOM(douceuradapter.ParseInlineStyle)
	c.AddStylesForScope(doc, sheet)
	return doc, c
}

func find(t *testing.T, doc *html.Node, sel string) *html.Node {
	n := cascadia.MustCompile(sel).MatchFirst(doc)
	require.NotNil(t, n, "no element matches %s", sel)
	return n
}

func TestCascadeImportance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.cssom")
	defer teardown()
	//
	doc, c := setup(t)
	p1 := c.MatchedProperties(find(t, doc, "#p1"), doc)
	assert.Equal(t, "gray", p1.Get("color").String(), "!important wins over specificity")
	assert.Equal(t, "3px", p1.Get("padding-left").String(), "padding should be split")
}

func TestCascadeInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.cssom")
	defer teardown()
	//
	doc, c := setup(t)
	p2 := c.MatchedProperties(find(t, doc, "#p2"), doc)
	assert.Equal(t, "gray", p2.Get("color").String(), "!important wins over inline")
	assert.Equal(t, "1px", p2.Get("margin-top").String())
	assert.Equal(t, "2px", p2.Get("margin-left").String())
	assert.Equal(t, "3px", p2.Get("padding-top").String())
}

func TestCascadeSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	sheet, err := douceuradapter.Parse(`#p1 { color: blue; } .lead { color: red; } p { color: black; }`)
	require.NoError(t, err)
	c := cssom.NewCSSOM(nil)
	c.AddStylesForScope(doc, sheet)
	p1 := c.MatchedProperties(find(t, doc, "#p1"), doc)
	assert.Equal(t, "blue", p1.Get("color").String(), "id selector should win")
	p2 := c.MatchedProperties(find(t, doc, "#p2"), doc)
	assert.Equal(t, "black", p2.Get("color").String(), "style attribute should be ignored without parser")
}

func TestPseudoElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.cssom")
	defer teardown()
	//
	doc, c := setup(t)
	p1 := find(t, doc, "#p1")
	before := c.PseudoProperties(p1, doc, "before")
	require.NotNil(t, before)
	assert.Equal(t, `"*"`, before.Get("content").String())
	assert.Equal(t, "orange", before.Get("color").String())
	assert.Nil(t, c.PseudoProperties(p1, doc, "after"))
	assert.NotEqual(t, "orange", c.MatchedProperties(p1, doc).Get("color").String(),
		"pseudo-element rules must not apply to the element")
}

func TestScopesAreSeparate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.cssom")
	defer teardown()
	//
	doc, c := setup(t)
	other := &html.Node{Type: html.DocumentNode}
	assert.Equal(t, 0, c.RuleCount(other))
	p1 := find(t, doc, "#p1")
	assert.Equal(t, 0, c.MatchedProperties(p1, other).Size(), "no rules for a foreign scope")
}
