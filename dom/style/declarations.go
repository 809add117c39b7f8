package style

import (
	"strings"
)

// Declarations is an ordered set of style declarations, i.e. the content of
// an element's `style` attribute. It is the target clones materialize their
// styles into.
//
// Setting an existing property replaces its value but keeps its position.
// The zero value is an empty, usable set of declarations.
type Declarations struct {
	keys   []string
	values map[string]Property
}

// Set sets a declaration. Empty values remove the declaration.
func (d *Declarations) Set(key string, value Property) {
	key = PropertyName(key)
	value = Property(strings.TrimSpace(string(value)))
	if value.IsEmpty() {
		d.Remove(key)
		return
	}
	if d.values == nil {
		d.values = make(map[string]Property)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value of a declaration or NullStyle.
func (d *Declarations) Get(key string) Property {
	if d == nil || d.values == nil {
		return NullStyle
	}
	return d.values[PropertyName(key)]
}

// Has is true if a declaration for key is present.
func (d *Declarations) Has(key string) bool {
	return !d.Get(key).IsEmpty()
}

// Remove deletes a declaration, if present.
func (d *Declarations) Remove(key string) {
	key = PropertyName(key)
	if d.values == nil {
		return
	}
	if _, exists := d.values[key]; !exists {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of declarations.
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Declarations returns all declarations in order of first insertion.
func (d *Declarations) Declarations() []KeyValue {
	if d == nil {
		return nil
	}
	r := make([]KeyValue, len(d.keys))
	for i, k := range d.keys {
		r[i] = KeyValue{k, d.values[k]}
	}
	return r
}

// String serializes the declarations in the syntax of a `style` attribute.
func (d *Declarations) String() string {
	if d.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range d.Declarations() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
		b.WriteString(";")
	}
	return b.String()
}
