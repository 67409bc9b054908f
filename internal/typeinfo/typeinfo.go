// Package typeinfo normalises declared type references into descriptors the
// handler registry and navigator can key on: the erased raw identity, the
// ordered type arguments, and the element type for sequence-like kinds.
package typeinfo

import (
	"reflect"
	"strings"
)

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// Info describes a declared type at the point of serialization. The zero
// value is not meaningful; build descriptors with Of.
type Info struct {
	rt reflect.Type
}

// Of returns the descriptor for t. A nil type degrades to the empty-interface
// descriptor; unknown shapes never fail.
func Of(t reflect.Type) Info {
	if t == nil {
		t = anyType
	}
	return Info{rt: t}
}

// OfValue returns the descriptor for the runtime type of v.
func OfValue(v any) Info {
	return Of(reflect.TypeOf(v))
}

// Type returns the underlying reflect.Type.
func (i Info) Type() reflect.Type { return i.rt }

// Kind returns the reflect.Kind of the described type.
func (i Info) Kind() reflect.Kind { return i.rt.Kind() }

// IsAny reports whether the descriptor is the degraded empty-interface form.
func (i Info) IsAny() bool { return i.rt == anyType }

// IsParameterized reports whether the descriptor carries type arguments:
// container kinds, and named generic instantiations.
func (i Info) IsParameterized() bool {
	switch i.rt.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return i.rt.Name() != "" && strings.Contains(i.rt.Name(), "[")
}

// RawKey returns the type-argument-erased identity of the descriptor.
// Named types keep their qualified name with any instantiation suffix
// stripped; unnamed containers collapse to a kind token so that, say, every
// slice type shares one raw identity.
func (i Info) RawKey() string {
	if i.rt.Name() != "" {
		s := i.rt.String()
		if idx := strings.Index(s, "["); idx > 0 {
			return s[:idx]
		}
		return s
	}
	switch i.rt.Kind() {
	case reflect.Slice:
		return "slice"
	case reflect.Array:
		return "array"
	case reflect.Map:
		return "map"
	case reflect.Pointer:
		return "*" + Of(i.rt.Elem()).RawKey()
	default:
		return i.rt.String()
	}
}

// Args returns the ordered type-argument descriptors: [elem] for slices and
// arrays, [key, value] for maps. Named generic instantiations cannot be
// decomposed through reflection, so their arguments stay folded into the
// exact identity and Args is empty.
func (i Info) Args() []Info {
	switch i.rt.Kind() {
	case reflect.Slice, reflect.Array:
		return []Info{Of(i.rt.Elem())}
	case reflect.Map:
		return []Info{Of(i.rt.Key()), Of(i.rt.Elem())}
	}
	return nil
}

// Elem returns the element descriptor for array-, slice-, map- and
// pointer-like descriptors. For maps the element is the value type; the map
// key descriptor is available through Args. The second return is false for
// shapes without an element.
func (i Info) Elem() (Info, bool) {
	switch i.rt.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Pointer:
		return Of(i.rt.Elem()), true
	}
	return Info{}, false
}

// Equal reports descriptor equality: raw equality for plain types,
// per-position argument equality for parameterised ones. reflect.Type
// identity already encodes both, so this is identity comparison.
func (i Info) Equal(o Info) bool { return i.rt == o.rt }

// String returns the exact type spelling, unique per instantiation.
func (i Info) String() string { return i.rt.String() }
