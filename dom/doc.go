/*
Package dom provides a live document: an HTML parse tree together with
everything needed to render it, i.e. shadow roots, slot assignment, computed
styles and the current state of form controls.

Overview

A Document is created from an HTML parse tree (see Parse and NewDocument).
Declarative shadow roots

    <my-host>
      <template shadowrootmode="open"> … </template>
      …
    </my-host>

are attached to their host during construction: the content of the template
is moved to a shadow root (a document-fragment style node of type
html.DocumentNode) and the template is removed. Slot elements inside a shadow
tree get light-tree children of the shadow host assigned, by name or as
default slot content.

Styling and layout of HTML/CSS involves a lot of operations on different trees.
The styled tree of a document (see package styledtree) is built on top of a
general purpose tree type (package tree). Its shape follows the flat tree:
shadow roots take the place of their host's children and slotted nodes hang
below their slot. Each tree scope gets its own style sheets; styles of a
shadow tree do not leak into the light tree and vice versa.

Node kinds

Nodes of a document fall into exactly one of three kinds (see NodeKind):
text nodes, styleable elements (HTML and SVG) and everything else.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'snapdom.dom'
func tracer() tracing.Trace {
	return tracing.Select("snapdom.dom")
}
