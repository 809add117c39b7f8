/*
Package clone creates detached, style-materialized copies of nodes of a live
document.

Overview

A clone of a node is a new HTML tree, disconnected from the document, whose
inline styles alone reproduce the computed appearance of the source. It can
be serialized (html.Render) and rendered elsewhere, without access to the
style sheets of the document.

Cloning walks the flat tree: a shadow root replaces the children of its host,
and slots are replaced by the nodes assigned to them. <style> and <script>
elements are dropped, as are elements for which a client-provided filter
returns false. Elements which are not displayed (`display: none`) are
replaced by a comment carrying their tag name.

Every font family written to an element of the clone is recorded in a
FontSet, for clients to resolve and embed fonts later.

The collaborators of the cloner (resolving computed styles, creating nodes,
copying styles and attributes) are interchangeable, see Collaborators. With
either the node factory or the style resolver missing, cloning degrades to a
structural copy without styles.

    ctx := clone.NewContext(clone.DocumentCollaborators(doc), clone.Options{
        BackgroundColor: maybe.Just("white"),
    })
    c := clone.Node(n, ctx)
    fonts := ctx.Fonts().Families()

A context is meant for a single top-level call and must not be shared
between goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package clone

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'snapdom.clone'.
func tracer() tracing.Trace {
	return tracing.Select("snapdom.clone")
}
