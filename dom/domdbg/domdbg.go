/*
Package domdbg implements helpers to debug live documents and their clones.

ToGraphViz draws the flat tree of a document, including shadow roots and the
computed styles of elements. PrintTree dumps any HTML tree as indented text,
which is handy to inspect detached clones.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/snapdom/dom"
	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/dom/style/css"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	ShadowTmpl     *template.Template
	SlotTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGDisplay,
	style.PGFont,
	style.PGColor,
}

// ToGraphViz outputs a diagram for the tree of a document below root, in
// GraphViz (DOT) format. Shadow roots are drawn as children of their host,
// connected by a dashed edge. Slotted nodes are connected to their slot by a
// dotted edge, and elements are annotated with their display mode. The diagram includes the computed styles of
// elements belonging to one of the given property groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Display
//     - Font
//     - Color
//
func ToGraphViz(doc *dom.Document, root *html.Node, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"isslot":      isSlot,
			"display":     displaySymbol,
			"modes":       displayModes,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.ShadowTmpl = template.Must(template.New("shadowedge").Parse(shadowEdgeTmpl))
	gparams.SlotTmpl = template.Must(template.New("slotedge").Parse(slotEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, dict: make(map[*html.Node]string, 1024), params: &gparams}
	g.nodes(doc.W3C(root), doc)
	if g.err != nil {
		return g.err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a document node and a testing.T, it
// will create a Graphiviz image of the tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(doc *dom.Document, root *html.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(doc, root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type graph struct {
	w      io.Writer
	dict   map[*html.Node]string
	params *graphParamsType
	err    error
}

type node struct {
	N    *dom.W3CNode
	Name string
}

func (g *graph) exec(tmpl *template.Template, data interface{}) {
	if g.err == nil {
		g.err = tmpl.Execute(g.w, data)
	}
}

func (g *graph) name(n *dom.W3CNode) string {
	name := g.dict[n.HTMLNode()]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.dict)+1)
		g.dict[n.HTMLNode()] = name
	}
	return name
}

func (g *graph) nodes(n *dom.W3CNode, doc *dom.Document) {
	g.exec(g.params.NodeTmpl, &node{n, g.name(n)})
	if n.NodeType() == html.ElementNode {
		g.styles(n)
	}
	if slot := doc.AssignedSlot(n.HTMLNode()); slot != nil {
		s := doc.W3C(slot)
		g.exec(g.params.SlotTmpl, edge{node{s, g.name(s)}, node{n, g.name(n)}})
	}
	if sr := doc.ShadowRoot(n.HTMLNode()); sr != nil {
		s := doc.W3C(sr)
		g.nodes(s, doc)
		g.exec(g.params.ShadowTmpl, edge{node{n, g.name(n)}, node{s, g.name(s)}})
	}
	for ch := n.HTMLNode().FirstChild; ch != nil; ch = ch.NextSibling {
		c := doc.W3C(ch)
		g.nodes(c, doc)
		g.exec(g.params.EdgeTmpl, edge{node{n, g.name(n)}, node{c, g.name(c)}})
	}
}

func (g *graph) styles(n *dom.W3CNode) {
	pmap := n.ComputedStyles().Styles()
	var prev *style.PropertyGroup
	for _, s := range g.params.StyleGroups {
		pg := pmap.Group(s)
		if pg == nil {
			continue
		}
		g.exec(g.params.StylegroupTmpl, pg)
		if prev == nil {
			g.exec(g.params.PgedgeTmpl, pgedge{g.name(n), pg})
		} else {
			g.exec(g.params.PgpgTmpl, []*style.PropertyGroup{prev, pg})
		}
		prev = pg
	}
}

type edge struct {
	N1, N2 node
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func isSlot(n *dom.W3CNode) bool {
	return dom.IsSlotElement(n.HTMLNode())
}

func displayMode(n *dom.W3CNode) css.DisplayMode {
	if n.NodeType() != html.ElementNode {
		return css.NoMode
	}
	mode, _ := css.ParseDisplay(n.ComputedStyles().GetPropertyValue("display").String())
	return mode
}

func displaySymbol(n *dom.W3CNode) string {
	return displayMode(n).Symbol()
}

func displayModes(n *dom.W3CNode) string {
	return displayMode(n).FullString()
}

func shortText(n *dom.W3CNode) string {
	h := n.HTMLNode()
	s := "\"\\\""
	if len(h.Data) > 10 {
		s += h.Data[:10] + "...\\\"\""
	} else {
		s += h.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Tree dumps ------------------------------------------------------------

// PrintTree returns an indented outline of the HTML tree below n. Elements
// are shown with their attributes, text and comments with their data.
func PrintTree(n *html.Node) string {
	if n == nil {
		return "<nil>\n"
	}
	p := tp.New()
	p.SetValue(label(n))
	ppt(p, n)
	return p.String()
}

func ppt(p tp.Tree, n *html.Node) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.FirstChild == nil {
			p.AddNode(label(ch))
			continue
		}
		ppt(p.AddBranch(label(ch)), ch)
	}
}

func label(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return fmt.Sprintf("%q", n.Data)
	case html.CommentNode:
		return "<!--" + n.Data + "-->"
	case html.DocumentNode:
		return "#document"
	case html.ElementNode:
		var b strings.Builder
		b.WriteString("<" + n.Data)
		for _, a := range n.Attr {
			fmt.Fprintf(&b, " %s=%q", a.Key, a.Val)
		}
		b.WriteString(">")
		return b.String()
	}
	return n.Data
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if eq .N.NodeName "#document-fragment" }}
{{ .Name }}	[ label="#shadow-root" shape=octagon style=filled fillcolor=lightgoldenrod2 ] ;
{{ else if isslot .N }}
{{ .Name }}	[ label={{ printf "%q" .N.NodeName }} shape=ellipse style="filled,dashed" fillcolor=lightgoldenrod1 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.NodeName }} xlabel={{ display .N | printf "%q" }} tooltip={{ modes .N | printf "%q" }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const shadowEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=2 style="dashed" color="goldenrod4"] ;
`

const slotEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=0 style="dotted" color="goldenrod3" constraint=false] ;
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
