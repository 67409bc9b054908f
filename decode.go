package jsonx

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/hengadev/jsonx/internal/exclusion"
	"github.com/hengadev/jsonx/internal/registry"
	"github.com/hengadev/jsonx/internal/typeinfo"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// decoder materialises Element trees as values of a declared type: custom
// deserializers first, then shape-directed construction mirroring the
// serialization ladder.
type decoder struct {
	eng           *Engine
	deserializers *registry.Map[Deserializer]
}

func (e *Engine) newDecoder() *decoder {
	return &decoder{
		eng:           e,
		deserializers: e.deserializers.Snapshot(),
	}
}

func (d *decoder) value(e Element, t typeinfo.Info) (reflect.Value, error) {
	if h, ok := d.deserializers.Lookup(t); ok {
		return d.fromHandler(h, e, t)
	}

	if isNull(e) {
		return reflect.New(t.Type()).Elem(), nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem, _ := t.Elem()
		inner, err := d.value(e, elem)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(elem.Type())
		ptr.Elem().Set(inner)
		return ptr, nil

	case reflect.Interface:
		return d.generic(e, t)
	}

	if p, ok := e.(*Primitive); ok && p.Kind() == StringKind && t.Type() != urlType {
		if reflect.PointerTo(t.Type()).Implements(textUnmarshalerType) {
			inst := reflect.New(t.Type())
			um := inst.Interface().(encoding.TextUnmarshaler)
			if err := um.UnmarshalText([]byte(p.String())); err != nil {
				return reflect.Value{}, NewUserHandlerError(t.Type(), ActionDeserialize, err)
			}
			return inst.Elem(), nil
		}
	}

	switch n := e.(type) {
	case *Primitive:
		target := reflect.New(t.Type()).Elem()
		if err := narrowPrimitive(n, target); err != nil {
			return reflect.Value{}, err
		}
		return target, nil

	case *Array:
		return d.sequence(n, t)

	case *Object:
		switch t.Kind() {
		case reflect.Map:
			return d.mapValue(n, t)
		case reflect.Struct:
			return d.structValue(n, t)
		}
		return reflect.Value{}, NewTypeMismatchError(t.Type(), "object")

	default:
		return reflect.Value{}, NewTypeMismatchError(t.Type(), fmt.Sprintf("%T", e))
	}
}

func (d *decoder) fromHandler(h Deserializer, e Element, t typeinfo.Info) (reflect.Value, error) {
	ctx := &decodeContext{decoder: d, valid: true}
	defer func() { ctx.valid = false }()

	out, err := h.Deserialize(e, t.Type(), ctx)
	if err != nil {
		return reflect.Value{}, NewUserHandlerError(t.Type(), ActionDeserialize, err)
	}
	if out == nil {
		return reflect.New(t.Type()).Elem(), nil
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() == reflect.Pointer && rv.Type().Elem() == t.Type() {
		rv = rv.Elem()
	}
	if !rv.Type().AssignableTo(t.Type()) {
		return reflect.Value{}, NewUserHandlerError(t.Type(),
			ActionDeserialize, fmt.Errorf("handler produced %s", rv.Type()))
	}
	box := reflect.New(t.Type()).Elem()
	box.Set(rv)
	return box, nil
}

func (d *decoder) sequence(arr *Array, t typeinfo.Info) (reflect.Value, error) {
	elem, ok := t.Elem()
	if !ok {
		return reflect.Value{}, NewTypeMismatchError(t.Type(), "array")
	}
	switch t.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(t.Type(), 0, arr.Len())
		for _, item := range arr.Items() {
			member, err := d.value(item, elem)
			if err != nil {
				return reflect.Value{}, err
			}
			out = reflect.Append(out, member)
		}
		box := reflect.New(t.Type()).Elem()
		box.Set(out)
		return box, nil

	case reflect.Array:
		if arr.Len() > t.Type().Len() {
			return reflect.Value{}, NewTypeMismatchError(t.Type(),
				fmt.Sprintf("array of %d members", arr.Len()))
		}
		out := reflect.New(t.Type()).Elem()
		for i, item := range arr.Items() {
			member, err := d.value(item, elem)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(member)
		}
		return out, nil

	default:
		return reflect.Value{}, NewTypeMismatchError(t.Type(), "array")
	}
}

func (d *decoder) mapValue(obj *Object, t typeinfo.Info) (reflect.Value, error) {
	inst, err := d.eng.constructor.Instance(t)
	if err != nil {
		return reflect.Value{}, err
	}
	keyType := t.Type().Key()
	elem, _ := t.Elem()
	for _, name := range obj.Keys() {
		key, err := mapKeyFromString(name, keyType)
		if err != nil {
			return reflect.Value{}, err
		}
		entry, _ := obj.Get(name)
		member, err := d.value(entry, elem)
		if err != nil {
			return reflect.Value{}, err
		}
		inst.SetMapIndex(key, member)
	}
	return inst, nil
}

func (d *decoder) structValue(obj *Object, t typeinfo.Info) (reflect.Value, error) {
	inst, err := d.eng.constructor.Instance(t)
	if err != nil {
		return reflect.Value{}, err
	}
	var specs []fieldSpec
	collectFields(t.Type(), d.eng.strategy, nil, &specs)
	for _, spec := range specs {
		entry, ok := obj.Get(spec.name)
		if !ok {
			continue
		}
		member, err := d.value(entry, typeinfo.Of(spec.field.StructField.Type))
		if err != nil {
			return reflect.Value{}, err
		}
		target, err := fieldByIndexAlloc(inst, spec.index)
		if err != nil {
			return reflect.Value{}, err
		}
		if !target.CanSet() {
			continue
		}
		target.Set(member)
	}
	return inst, nil
}

// generic materialises a tree with no declared shape: objects become
// map[string]any, arrays []any, numbers float64.
func (d *decoder) generic(e Element, t typeinfo.Info) (reflect.Value, error) {
	v, err := genericValue(e)
	if err != nil {
		return reflect.Value{}, err
	}
	box := reflect.New(t.Type()).Elem()
	if v == nil {
		return box, nil
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t.Type()) {
		return reflect.Value{}, NewTypeMismatchError(t.Type(), rv.Type().String())
	}
	box.Set(rv)
	return box, nil
}

func genericValue(e Element) (any, error) {
	switch n := e.(type) {
	case nil, Null:
		return nil, nil
	case *Primitive:
		switch n.Kind() {
		case BoolKind:
			return n.Bool(), nil
		case StringKind:
			return n.String(), nil
		default:
			return n.Float64()
		}
	case *Array:
		out := make([]any, 0, n.Len())
		for _, item := range n.Items() {
			v, err := genericValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case *Object:
		out := make(map[string]any, n.Len())
		for _, key := range n.Keys() {
			entry, _ := n.Get(key)
			v, err := genericValue(entry)
			if err != nil {
				return nil, err
			}
			out[key] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown element %T", ErrInvariantViolated, e)
	}
}

type fieldSpec struct {
	field exclusion.Field
	name  string
	index []int
}

// collectFields flattens the settable fields of a struct type the same way
// the navigator walks them: embedded structs in place, exclusion applied per
// field.
func collectFields(t reflect.Type, strategy exclusion.Strategy, prefix []int, out *[]fieldSpec) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)

		if sf.Anonymous && sf.Tag.Get(exclusion.TagName) == "" {
			et := sf.Type
			for et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct {
				collectFields(et, strategy, index, out)
				continue
			}
		}

		f := exclusion.Field{StructField: sf, Owner: t}
		if strategy.SkipField(f) {
			continue
		}
		*out = append(*out, fieldSpec{field: f, name: f.JSONName(), index: index})
	}
}

// fieldByIndexAlloc resolves an index path, allocating intermediate nil
// pointers so embedded pointer types can be populated.
func fieldByIndexAlloc(v reflect.Value, index []int) (reflect.Value, error) {
	for step, i := range index {
		if step > 0 {
			for v.Kind() == reflect.Pointer {
				if v.IsNil() {
					if !v.CanSet() {
						return reflect.Value{}, NewReflectiveAccessError(
							v.Type().String(), ActionDeserialize,
							fmt.Errorf("%w: embedded pointer not settable", ErrNilPointer))
					}
					v.Set(reflect.New(v.Type().Elem()))
				}
				v = v.Elem()
			}
		}
		v = v.Field(i)
	}
	return v, nil
}

// mapKeyFromString coerces a JSON object key back to the declared map key
// type.
func mapKeyFromString(s string, keyType reflect.Type) (reflect.Value, error) {
	key := reflect.New(keyType).Elem()
	if reflect.PointerTo(keyType).Implements(textUnmarshalerType) && keyType.Kind() != reflect.String {
		inst := reflect.New(keyType)
		if err := inst.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return reflect.Value{}, NewTypeMismatchError(keyType, fmt.Sprintf("key %q", s))
		}
		return inst.Elem(), nil
	}
	if err := narrowPrimitive(keyElement(s, keyType), key); err != nil {
		return reflect.Value{}, err
	}
	return key, nil
}

func keyElement(s string, keyType reflect.Type) *Primitive {
	switch keyType.Kind() {
	case reflect.String:
		return NewString(s)
	case reflect.Bool:
		if s == "true" {
			return NewBool(true)
		}
		return NewBool(false)
	default:
		return NewNumberRaw(s)
	}
}

// decodeContext re-enters the pipeline on behalf of a custom deserializer.
type decodeContext struct {
	decoder *decoder
	valid   bool
}

func (c *decodeContext) Deserialize(e Element, declared reflect.Type) (any, error) {
	if !c.valid {
		return nil, fmt.Errorf("%w: context used outside its handler invocation", ErrInvariantViolated)
	}
	v, err := c.decoder.value(e, typeinfo.Of(declared))
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func isNull(e Element) bool {
	if e == nil {
		return true
	}
	_, ok := e.(Null)
	return ok
}
