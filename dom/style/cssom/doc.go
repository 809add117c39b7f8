/*
Package cssom provides functionality for CSS styling.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Here it is the collection of style sheets in effect for a document, organized
by scope: the light tree of a document is one scope, every shadow root forms
a scope of its own. Style sheets of one scope never apply to nodes of
another scope.

For a node, the CSSOM computes the declared properties, i.e. the winning
declarations of all matching rules plus the node's `style` attribute,
ordered by the CSS cascade:

    normal < inline normal < !important < inline !important

and within each of these levels by selector specificity and source order.
Selector matching and specificity are handled by
https://godoc.org/github.com/andybalholm/cascadia.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation may be found in sub-package
douceuradapter.

Rules for the pseudo-elements ::before and ::after are kept apart and
queried with PseudoProperties.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'snapdom.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("snapdom.cssom")
}
