// Package navigator drives traversal of a value guided by its declared type,
// classifying each node's shape and emitting exactly one visitor callback
// for it. Exclusion decisions and cycle detection live here; what a callback
// means is the visitor's business.
package navigator

import (
	"encoding"
	"errors"
	"fmt"
	"net/url"
	"reflect"

	"github.com/hengadev/jsonx/internal/exclusion"
	"github.com/hengadev/jsonx/internal/typeinfo"
)

var (
	// ErrCycleDetected reports an object graph that references one of its
	// own ancestors. Reference identity is what counts: equal-but-distinct
	// values are allowed.
	ErrCycleDetected = errors.New("cycle detected in object graph")

	// ErrUnsupportedType reports a value shape that has no JSON rendition.
	ErrUnsupportedType = errors.New("unsupported type")
)

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	urlType           = reflect.TypeOf(url.URL{})
)

// Visitor is the callback surface a navigator drives. Collection callbacks
// receive the whole value and recurse by spawning child navigators that
// share the walk's visited-set.
type Visitor interface {
	// VisitNull marks the current node absent.
	VisitNull(t typeinfo.Info) error

	// VisitText renders a type that names its own external form, the enum
	// analog: the declared type implements encoding.TextMarshaler.
	VisitText(v reflect.Value, t typeinfo.Info) error

	// VisitCustom offers the node to a registered handler. A false return
	// means no handler accepted and classification continues.
	VisitCustom(v reflect.Value, t typeinfo.Info) (handled bool, err error)

	// VisitArray receives a slice or array value; elem is the declared
	// element descriptor.
	VisitArray(v reflect.Value, elem typeinfo.Info) error

	// VisitMap receives a map value, rendered object-style with keys
	// coerced to strings.
	VisitMap(v reflect.Value, t typeinfo.Info) error

	// VisitPrimitive receives booleans, numbers, strings and URL values.
	VisitPrimitive(v reflect.Value, t typeinfo.Info) error

	// StartObject opens an object node before its fields are emitted.
	StartObject(t typeinfo.Info) error

	// VisitObjectField emits one retained field with its output name and
	// declared type.
	VisitObjectField(f exclusion.Field, name string, v reflect.Value, t typeinfo.Info) error

	// VisitExcludedClass marks a node whose whole class is excluded.
	VisitExcludedClass(t typeinfo.Info) error
}

// Factory builds navigators that share one exclusion strategy.
type Factory struct {
	strategy exclusion.Strategy
}

// NewFactory creates a Factory around the given strategy.
func NewFactory(s exclusion.Strategy) *Factory {
	return &Factory{strategy: s}
}

// Navigator prepares a traversal of (value, declared type). The visited set
// carries ancestor identities across the recursion; pass the same set to
// every navigator of one root call.
func (f *Factory) Navigator(v reflect.Value, t typeinfo.Info, visited *Visited) *Navigator {
	return &Navigator{factory: f, value: v, info: t, visited: visited}
}

// Navigator classifies one value's declared shape and emits the matching
// visitor callback exactly once.
type Navigator struct {
	factory *Factory
	value   reflect.Value
	info    typeinfo.Info
	visited *Visited
}

// Accept runs the shape ladder. The classification order is fixed: null,
// self-naming text types, custom handlers, sequences, maps, primitives,
// then field-by-field object traversal.
func (n *Navigator) Accept(vis Visitor) error {
	v := n.value
	t := n.info

	if !v.IsValid() {
		return vis.VisitNull(t)
	}
	v = boxed(v)

	// Unwrap pointers and interfaces. Every pointer crossed contributes its
	// identity to the path so a reference back into an ancestor is caught
	// no matter how deep the indirection.
	for {
		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return vis.VisitNull(t)
			}
			v = boxed(v.Elem())
			t = typeinfo.Of(v.Type())
			continue
		case reflect.Pointer:
			if v.IsNil() {
				return vis.VisitNull(t)
			}
			release, ok := n.visited.Push(v.Pointer())
			if !ok {
				return fmt.Errorf("%w: %s revisits an ancestor", ErrCycleDetected, t)
			}
			defer release()
			v = exported(v.Elem())
			t = typeinfo.Of(v.Type())
			continue
		}
		break
	}

	if marshaler, ok := asTextMarshaler(v); ok {
		return vis.VisitText(marshaler, t)
	}

	if handled, err := vis.VisitCustom(v, t); handled || err != nil {
		return err
	}

	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return vis.VisitNull(t)
		}
		release, ok := n.visited.Push(v.Pointer())
		if !ok {
			return fmt.Errorf("%w: %s revisits an ancestor", ErrCycleDetected, t)
		}
		defer release()
		return vis.VisitArray(v, typeinfo.Of(v.Type().Elem()))

	case reflect.Array:
		return vis.VisitArray(v, typeinfo.Of(v.Type().Elem()))

	case reflect.Map:
		if v.IsNil() {
			return vis.VisitNull(t)
		}
		release, ok := n.visited.Push(v.Pointer())
		if !ok {
			return fmt.Errorf("%w: %s revisits an ancestor", ErrCycleDetected, t)
		}
		defer release()
		return vis.VisitMap(v, t)

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return vis.VisitPrimitive(v, t)

	case reflect.Struct:
		if v.Type() == urlType {
			return vis.VisitPrimitive(v, t)
		}
		if n.factory.strategy.SkipClass(v.Type()) {
			return vis.VisitExcludedClass(t)
		}
		if err := vis.StartObject(t); err != nil {
			return err
		}
		return n.walkFields(v, vis)

	default:
		return fmt.Errorf("%w: cannot serialize %s", ErrUnsupportedType, v.Type())
	}
}

// walkFields emits the retained fields of a struct in declaration order.
// Embedded structs are flattened in place, so promoted fields of an
// embedded type come out where the embedding is declared, ancestors before
// the fields that follow them.
func (n *Navigator) walkFields(v reflect.Value, vis Visitor) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := exported(v.Field(i))

		if sf.Anonymous && sf.Tag.Get(exclusion.TagName) == "" {
			ev, et := fv, sf.Type
			for et.Kind() == reflect.Pointer {
				if ev.IsNil() {
					et = nil
					break
				}
				ev, et = exported(ev.Elem()), et.Elem()
			}
			if et != nil && et.Kind() == reflect.Struct {
				if err := n.walkFields(ev, vis); err != nil {
					return err
				}
				continue
			}
			if et == nil {
				continue
			}
		}

		f := exclusion.Field{StructField: sf, Owner: t}
		if n.factory.strategy.SkipField(f) {
			continue
		}
		if err := vis.VisitObjectField(f, f.JSONName(), fv, typeinfo.Of(sf.Type)); err != nil {
			return err
		}
	}
	return nil
}

// asTextMarshaler reports whether the value names its own textual form,
// checking the value's type and, for addressable values, its pointer type.
func asTextMarshaler(v reflect.Value) (reflect.Value, bool) {
	if v.Type().Implements(textMarshalerType) {
		return v, true
	}
	if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(textMarshalerType) {
		return v.Addr(), true
	}
	return reflect.Value{}, false
}
