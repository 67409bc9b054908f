package jsonx

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/hengadev/jsonx/internal/exclusion"
	"github.com/hengadev/jsonx/internal/navigator"
	"github.com/hengadev/jsonx/internal/registry"
	"github.com/hengadev/jsonx/internal/typeinfo"
)

// serializationVisitor accumulates a JSON tree from the navigator's
// callbacks. Every node of the output gets its own visitor with a fresh root
// slot; the visited-set and registry snapshot are shared across the walk.
type serializationVisitor struct {
	eng         *Engine
	serializers *registry.Map[Serializer]
	visited     *navigator.Visited

	root    Element
	present bool
	state   nodeState
}

type nodeState int

const (
	stateEmpty nodeState = iota
	statePopulating
	stateFinalised
)

func (e *Engine) newSerializationVisitor(visited *navigator.Visited) *serializationVisitor {
	return &serializationVisitor{
		eng:         e,
		serializers: e.serializers.Snapshot(),
		visited:     visited,
	}
}

func (sv *serializationVisitor) child() *serializationVisitor {
	return &serializationVisitor{
		eng:         sv.eng,
		serializers: sv.serializers,
		visited:     sv.visited,
	}
}

// populate guards the node state machine: a finalised node must never be
// written again.
func (sv *serializationVisitor) populate(root Element, present bool) error {
	if sv.state == stateFinalised {
		return fmt.Errorf("%w: node re-entered after finalisation", ErrInvariantViolated)
	}
	sv.state = statePopulating
	sv.root = root
	sv.present = present
	return nil
}

// finalise seals the node once the navigator hands control back.
func (sv *serializationVisitor) finalise() {
	sv.state = stateFinalised
}

// serializeChild runs a full child pipeline for one member value and returns
// its sealed root.
func (sv *serializationVisitor) serializeChild(v reflect.Value, t typeinfo.Info) (Element, bool, error) {
	child := sv.child()
	nav := sv.eng.factory.Navigator(v, t, sv.visited)
	if err := nav.Accept(child); err != nil {
		return nil, false, err
	}
	child.finalise()
	return child.root, child.present, nil
}

func (sv *serializationVisitor) VisitNull(t typeinfo.Info) error {
	return sv.populate(nil, false)
}

func (sv *serializationVisitor) VisitText(v reflect.Value, t typeinfo.Info) error {
	m := v.Interface().(encoding.TextMarshaler)
	text, err := m.MarshalText()
	if err != nil {
		return NewUserHandlerError(t.Type(), ActionSerialize, err)
	}
	return sv.populate(NewString(string(text)), true)
}

func (sv *serializationVisitor) VisitCustom(v reflect.Value, t typeinfo.Info) (handled bool, err error) {
	s, ok := sv.serializers.Lookup(t)
	if !ok {
		return false, nil
	}
	ctx := &serializationContext{visitor: sv, valid: true}
	defer func() { ctx.valid = false }()
	defer func() {
		if r := recover(); r != nil {
			handled = true
			err = NewUserHandlerError(t.Type(), ActionSerialize, fmt.Errorf("handler panicked: %v", r))
		}
	}()

	elem, err := s.Serialize(v.Interface(), t.Type(), ctx)
	if err != nil {
		return true, NewUserHandlerError(t.Type(), ActionSerialize, err)
	}
	return true, sv.populate(elem, elem != nil)
}

func (sv *serializationVisitor) VisitArray(v reflect.Value, elem typeinfo.Info) error {
	arr := NewArray()
	if err := sv.populate(arr, true); err != nil {
		return err
	}
	for i := 0; i < v.Len(); i++ {
		member, present, err := sv.serializeChild(v.Index(i), elem)
		if err != nil {
			return err
		}
		if !present {
			member = Null{}
		}
		arr.Append(member)
	}
	return nil
}

func (sv *serializationVisitor) VisitMap(v reflect.Value, t typeinfo.Info) error {
	obj := NewObject()
	if err := sv.populate(obj, true); err != nil {
		return err
	}
	elem, _ := t.Elem()

	type entry struct {
		name string
		key  reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	for _, k := range v.MapKeys() {
		name, err := mapKeyString(k)
		if err != nil {
			return err
		}
		entries = append(entries, entry{name: name, key: k})
	}
	// Go maps have no iteration order to preserve, so entries are emitted
	// in sorted-key order to keep output deterministic.
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	for _, en := range entries {
		member, present, err := sv.serializeChild(v.MapIndex(en.key), elem)
		if err != nil {
			return err
		}
		if !present {
			if !sv.eng.includeNulls {
				continue
			}
			member = Null{}
		}
		obj.Put(en.name, member)
	}
	return nil
}

func (sv *serializationVisitor) VisitPrimitive(v reflect.Value, t typeinfo.Info) error {
	p, err := adaptPrimitive(v)
	if err != nil {
		return err
	}
	return sv.populate(p, true)
}

func (sv *serializationVisitor) StartObject(t typeinfo.Info) error {
	return sv.populate(NewObject(), true)
}

func (sv *serializationVisitor) VisitObjectField(f exclusion.Field, name string, v reflect.Value, t typeinfo.Info) error {
	obj, ok := sv.root.(*Object)
	if !ok {
		return fmt.Errorf("%w: field callback outside an object frame", ErrInvariantViolated)
	}
	member, present, err := sv.serializeChild(v, t)
	if err != nil {
		return err
	}
	if !present {
		if !sv.eng.includeNulls {
			return nil
		}
		member = Null{}
	}
	obj.Put(name, member)
	return nil
}

func (sv *serializationVisitor) VisitExcludedClass(t typeinfo.Info) error {
	return sv.populate(nil, false)
}

// mapKeyString coerces a map key to its JSON object key form.
func mapKeyString(k reflect.Value) (string, error) {
	if m, ok := k.Interface().(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return "", NewUserHandlerError(k.Type(), ActionSerialize, err)
		}
		return string(text), nil
	}
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	case reflect.Bool:
		return strconv.FormatBool(k.Bool()), nil
	default:
		return fmt.Sprintf("%v", k.Interface()), nil
	}
}

// serializationContext re-enters the pipeline on behalf of a custom
// serializer. It is valid only during the handler invocation that received
// it.
type serializationContext struct {
	visitor *serializationVisitor
	valid   bool
}

func (c *serializationContext) Serialize(value any) (Element, error) {
	return c.SerializeTyped(value, reflect.TypeOf(value))
}

func (c *serializationContext) SerializeTyped(value any, declared reflect.Type) (Element, error) {
	if !c.valid {
		return nil, fmt.Errorf("%w: context used outside its handler invocation", ErrInvariantViolated)
	}
	var rv reflect.Value
	if value != nil {
		rv = reflect.ValueOf(value)
	}
	member, present, err := c.visitor.serializeChild(rv, typeinfo.Of(declared))
	if err != nil {
		return nil, err
	}
	if !present {
		return Null{}, nil
	}
	return member, nil
}
