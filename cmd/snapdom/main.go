/*
Command snapdom creates a standalone snapshot of an element of an HTML file.

The element is cloned with all of its computed styles inlined, shadow roots
and slots flattened, and written as an HTML fragment. The font families used
by the snapshot are printed to stderr.

Usage:

    snapdom [flags] input.html

Widths and heights are CSS lengths (px, pt or plain numbers, taken as
pixels). With -in, the selector is matched in the shadow tree of the host
element matched by -in.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/snapdom/clone"
	"github.com/npillmayer/snapdom/dom"
	"github.com/npillmayer/snapdom/dom/domdbg"
	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/dom/style/css"
	"github.com/npillmayer/snapdom/maybe"
	"golang.org/x/net/html"
)

// styleFlags collects repeated -style key=value flags.
type styleFlags map[string]string

func (sf styleFlags) String() string {
	var pairs []string
	for k, v := range sf {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (sf styleFlags) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("style override must be of form key=value, is %q", s)
	}
	sf[strings.TrimSpace(k)] = strings.TrimSpace(v)
	return nil
}

func main() {
	selector := flag.String("select", "body", "CSS selector of the element to snapshot")
	host := flag.String("in", "", "CSS selector of a shadow host to search with -select")
	bg := flag.String("bg", "", "background color of the snapshot")
	width := flag.String("w", "", "width of the snapshot, as a CSS length")
	height := flag.String("h", "", "height of the snapshot, as a CSS length")
	printText := flag.Bool("text", false, "print the rendered text of the element to stderr")
	output := flag.String("o", "", "output file path (default stdout)")
	printTree := flag.Bool("tree", false, "print the tree of the snapshot to stderr")
	dotfile := flag.String("dot", "", "write a GraphViz diagram of the document to this file")
	tracelevel := flag.String("trace", "Error", "trace level (Debug, Info, Error)")
	styles := styleFlags{}
	flag.Var(styles, "style", "style override for the snapshot root, as key=value (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: snapdom [flags] <input.html>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	initTracing(*tracelevel)

	doc, err := load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading document: %v\n", err)
		os.Exit(1)
	}
	n, err := find(doc, *host, *selector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *printText {
		fmt.Fprintf(os.Stderr, "text: %q\n", doc.RenderedText(n))
	}

	if *dotfile != "" {
		if err := writeDot(doc, *dotfile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing diagram: %v\n", err)
			os.Exit(1)
		}
	}

	opts := clone.Options{Style: styles}
	if *bg != "" {
		opts.BackgroundColor = maybe.Just(*bg)
	}
	if opts.Width, err = length(*width); err != nil {
		fmt.Fprintf(os.Stderr, "Error: -w: %v\n", err)
		os.Exit(1)
	}
	if opts.Height, err = length(*height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: -h: %v\n", err)
		os.Exit(1)
	}
	c, fonts, err := clone.Snapshot(doc, n, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating snapshot: %v\n", err)
		os.Exit(1)
	}
	if *printTree {
		fmt.Fprint(os.Stderr, domdbg.PrintTree(c))
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := html.Render(w, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(w)
	for _, family := range fonts {
		fmt.Fprintf(os.Stderr, "font: %s\n", family)
	}
}

func initTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracing.Select("snapdom")
	t.SetOutput(os.Stderr)
	t.SetTraceLevel(tracing.TraceLevelFromString(level))
}

func load(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.Parse(f)
}

// find selects the element to snapshot, in the light tree or in the shadow
// tree of a host.
func find(doc *dom.Document, host, selector string) (*html.Node, error) {
	if host == "" {
		n, err := doc.QuerySelector(selector)
		if err == nil && n == nil {
			err = fmt.Errorf("no element matches %q", selector)
		}
		return n, err
	}
	h, err := doc.QuerySelector(host)
	if err != nil {
		return nil, err
	}
	if h == nil || doc.ShadowRoot(h) == nil {
		return nil, fmt.Errorf("no shadow host matches %q", host)
	}
	n, err := doc.QueryShadowSelector(h, selector)
	if err == nil && n == nil {
		err = fmt.Errorf("no element in shadow tree of %q matches %q", host, selector)
	}
	return n, err
}

// length converts a CSS length to pixels. The empty string yields Nothing.
func length(s string) (maybe.Maybe[int], error) {
	if strings.TrimSpace(s) == "" {
		return maybe.Nothing[int](), nil
	}
	d, err := css.ParseDimen(style.Property(s))
	if err != nil {
		return nil, err
	}
	px, ok := d.Pixels()
	if !ok {
		return nil, fmt.Errorf("%q is not a fixed length", s)
	}
	if px < 0 {
		return nil, fmt.Errorf("negative length %q", s)
	}
	return maybe.Just(px), nil
}

func writeDot(doc *dom.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return domdbg.ToGraphViz(doc, doc.Root(), f, nil)
}
