package css

import (
	"errors"

	"github.com/npillmayer/snapdom/dom/style"
	"github.com/npillmayer/snapdom/dom/styledtree"
	"golang.org/x/net/html"
)

// ErrNoComputedStyles is returned for styled nodes which have not yet been
// run through ComputeStyles.
var ErrNoComputedStyles = errors.New("styled node has no computed styles")

// ComputeStyles resolves the declared (cascaded) properties of a node into
// its computed style, given the computed style of its parent in the flat tree.
//
// The computed style contains
//
//   - every property declared for the node, with "inherit", "initial" and
//     "unset" resolved,
//   - every inheritable property of the parent, if not overridden,
//   - the "display" property, falling back to the user-agent default for
//     the element.
//
// Non-inherited properties not declared for the node are left out; clients
// fall back to the user-agent default for them (see GetProperty).
// parent may be nil for root elements.
func ComputeStyles(node *html.Node, declared, parent *style.PropertyMap) *style.PropertyMap {
	computed := style.NewPropertyMap()
	for _, kv := range parent.Properties() {
		if style.IsCascading(kv.Key) && !kv.Value.IsEmpty() {
			computed.Add(kv.Key, kv.Value)
		}
	}
	for _, kv := range declared.Properties() {
		switch {
		case kv.Value.IsInherit():
			if p := parent.Get(kv.Key); !p.IsEmpty() {
				computed.Add(kv.Key, p)
			} else {
				computed.Add(kv.Key, style.GetUserAgentDefaultProperty(node, kv.Key))
			}
		case kv.Value.IsInitial():
			computed.Add(kv.Key, style.GetUserAgentDefaultProperty(node, kv.Key))
		case kv.Value.IsUnset():
			if !style.IsCascading(kv.Key) {
				computed.Add(kv.Key, style.GetUserAgentDefaultProperty(node, kv.Key))
			} // else keep the inherited value
		case kv.Value.IsEmpty():
		default:
			computed.Add(kv.Key, kv.Value)
		}
	}
	if computed.Get("display").IsEmpty() {
		computed.Add("display", style.DisplayPropertyForHTMLNode(node))
	}
	return computed
}

// GetCascadedProperty gets the value of a property. The search cascades to
// the parent in the styled tree, if the property is not computed for
// the node itself.
//
// Clients will usually call GetProperty(…) instead as this will respect
// CSS semantics for inherited properties.
func GetCascadedProperty(node *styledtree.StyNode, key string) (style.Property, error) {
	for node != nil {
		if node.ComputedStyles() == nil {
			return style.NullStyle, ErrNoComputedStyles
		}
		if p, ok := node.ComputedStyles().Property(key); ok {
			return p, nil
		}
		node = styledtree.Node(node.Parent())
	}
	return style.NullStyle, nil
}

// GetProperty gets the value of a property. If the property is not set
// for the styled node and the property is inheritable, the search
// cascades to parent nodes. Otherwise the user-agent default is returned.
//
// The call to GetProperty will flag an error if the node has not been styled.
func GetProperty(node *styledtree.StyNode, key string) (style.Property, error) {
	if node == nil || node.ComputedStyles() == nil {
		return style.NullStyle, ErrNoComputedStyles
	}
	if style.IsCascading(key) {
		return GetCascadedProperty(node, key)
	}
	p := GetLocalProperty(node.ComputedStyles(), key)
	if p == style.NullStyle {
		p = style.GetUserAgentDefaultProperty(node.HTMLNode(), key)
	}
	return p, nil
}

// GetLocalProperty returns a style property value, if it is set locally
// for a styled node's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key string) style.Property {
	groupname := style.GroupNameFromPropertyKey(key)
	var group *style.PropertyGroup
	group = pmap.Group(groupname)
	if group == nil {
		return style.NullStyle
	}
	p, _ := group.Get(key)
	return p
}

// IsDisplayed is the visibility test for an element's computed style:
// it is false if the computed display mode is `none`.
func IsDisplayed(computed *style.PropertyMap) bool {
	mode, _ := ParseDisplay(computed.Get("display").Keyword())
	return !mode.Contains(DisplayNone)
}
