/*
Package maybe provides an option type.

Snapshot options are mostly optional: a background color, an explicit width,
an explicit height. Go's zero values cannot tell "not set" from "set to zero",
so options are wrapped into a Maybe.

A nil Maybe is legal and treated as Nothing by the package level functions
Get and WithDefault.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is either Just a value or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Match starts a pattern match:
//
//     switch m := x.Match(); m {
//     case m.Just(&v): …
//     case m.Nothing(): …
//     }
//
func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault unwraps m, returning def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a Just value.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Get unwraps a Maybe into a value and an ok-flag. x may be nil.
func Get[T any](x Maybe[T]) (T, bool) {
	var v T
	if x == nil {
		return v, false
	}
	if x.Match().Just(&v) != nil {
		return v, true
	}
	return v, false
}

// WithDefault is the nil-safe variant of x.WithDefault(def).
func WithDefault[T any](x Maybe[T], def T) T {
	if x == nil {
		return def
	}
	return x.WithDefault(def)
}

// IsJust is true if x is not nil and holds a value.
func IsJust[T any](x Maybe[T]) bool {
	_, ok := Get(x)
	return ok
}

// AndThen chains a computation producing a Maybe onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := Get(x); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used for pattern matching on Maybe values.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
