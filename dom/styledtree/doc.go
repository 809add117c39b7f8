/*
Package styledtree is a straightforward implementation of a styled document tree.

Overview

A styled tree mirrors the flat tree of a live document: shadow roots replace
the light children of their hosts, and slotted nodes hang below the slot they
are assigned to. Every styled node links to its HTML node and carries the
properties declared for it, the properties of its ::before and ::after
pseudo-elements, and its computed style.

Package dom builds the styled tree for a document; clients usually query it
through dom.Document.ComputedStyle.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'snapdom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("snapdom.dom")
}
