package jsonx

import "reflect"

// Serializer is a user-supplied conversion from a value to a JSON tree,
// registered for a declared type. Returning a nil Element marks the value
// absent, the same treatment a null field gets.
type Serializer interface {
	Serialize(value any, declared reflect.Type, ctx Context) (Element, error)
}

// SerializerFunc adapts a function to the Serializer interface.
type SerializerFunc func(value any, declared reflect.Type, ctx Context) (Element, error)

func (f SerializerFunc) Serialize(value any, declared reflect.Type, ctx Context) (Element, error) {
	return f(value, declared, ctx)
}

// Deserializer is the inbound counterpart: it builds a value of the declared
// type from a JSON tree.
type Deserializer interface {
	Deserialize(e Element, declared reflect.Type, ctx DecodeContext) (any, error)
}

// DeserializerFunc adapts a function to the Deserializer interface.
type DeserializerFunc func(e Element, declared reflect.Type, ctx DecodeContext) (any, error)

func (f DeserializerFunc) Deserialize(e Element, declared reflect.Type, ctx DecodeContext) (any, error) {
	return f(e, declared, ctx)
}

// InstanceCreator overrides default construction for a declared type during
// deserialization. The result may be the value or a pointer to it.
type InstanceCreator interface {
	CreateInstance(declared reflect.Type) any
}

// InstanceCreatorFunc adapts a function to the InstanceCreator interface.
type InstanceCreatorFunc func(declared reflect.Type) any

func (f InstanceCreatorFunc) CreateInstance(declared reflect.Type) any {
	return f(declared)
}

// Context lets a registered serializer recurse through the full pipeline:
// exclusion policy, cycle detection and registry lookup all re-apply to the
// nested value. A Context is valid only for the duration of the handler
// invocation that received it.
type Context interface {
	// Serialize converts a nested value using its runtime type.
	Serialize(value any) (Element, error)

	// SerializeTyped converts a nested value under an explicit declared
	// type, the form generic containers need.
	SerializeTyped(value any, declared reflect.Type) (Element, error)
}

// DecodeContext is the inbound counterpart of Context.
type DecodeContext interface {
	// Deserialize materialises a nested tree as a value of the declared
	// type through the full pipeline.
	Deserialize(e Element, declared reflect.Type) (any, error)
}

// TypeOf returns the reflect.Type for T, including parametric information
// the runtime value alone would erase. Use it to register handlers and to
// serialize generic containers under their declared type.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
