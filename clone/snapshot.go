package clone

import (
	"errors"

	"github.com/npillmayer/snapdom/dom"
	"golang.org/x/net/html"
)

// ErrNilNode is returned when snapshotting a nil node.
var ErrNilNode = errors.New("cannot snapshot nil node")

// Snapshot clones node n of a document with the default collaborators. It
// returns the clone and the font families used by it, sorted.
func Snapshot(doc *dom.Document, n *html.Node, opts Options) (*html.Node, []string, error) {
	if n == nil {
		return nil, nil, ErrNilNode
	}
	ctx := NewContext(DocumentCollaborators(doc), opts)
	c := Node(n, ctx)
	tracer().P("fonts", ctx.fonts.Len()).Infof("snapshot of <%s> done", n.Data)
	return c, ctx.fonts.Families(), nil
}
