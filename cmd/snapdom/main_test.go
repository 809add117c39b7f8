package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/snapdom/dom"
	"github.com/npillmayer/snapdom/maybe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	for input, px := range map[string]int{"200": 200, "200px": 200, "15pt": 20, "0": 0} {
		l, err := length(input)
		require.NoError(t, err, "length %q", input)
		n, ok := maybe.Get(l)
		assert.True(t, ok)
		assert.Equal(t, px, n, "length %q", input)
	}
	l, err := length(" ")
	require.NoError(t, err)
	assert.False(t, maybe.IsJust(l))
	for _, input := range []string{"50%", "auto", "wide", "-3px"} {
		_, err := length(input)
		assert.Error(t, err, "length %q", input)
	}
}

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snapdom.dom")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<html><body><p id="p">light</p>` +
		`<x-card id="host"><template shadowrootmode="open"><p id="p">shadow</p></template></x-card>` +
		`</body></html>`))
	require.NoError(t, err)
	n, err := find(doc, "", "#p")
	require.NoError(t, err)
	assert.Equal(t, "light", doc.RenderedText(n))
	n, err = find(doc, "#host", "#p")
	require.NoError(t, err)
	assert.Equal(t, "shadow", doc.RenderedText(n))
	_, err = find(doc, "#p", "#p")
	assert.Error(t, err, "#p is not a shadow host")
	_, err = find(doc, "", "#none")
	assert.Error(t, err)
	_, err = find(doc, "#host", "#none")
	assert.Error(t, err)
}
