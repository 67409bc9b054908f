// Package construct produces fresh instances of a declared type during
// deserialization: registered instance creators first, zero-value
// construction as the default path.
package construct

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hengadev/jsonx/internal/registry"
	"github.com/hengadev/jsonx/internal/typeinfo"
)

// ErrUnconstructible reports a declared type with no creator and no viable
// default construction path.
var ErrUnconstructible = errors.New("no construction path for type")

// CreateFunc builds one instance of the declared type. The result may be the
// value itself or a pointer to it.
type CreateFunc func(t reflect.Type) any

// Constructor resolves instance creation for declared types.
type Constructor struct {
	creators *registry.Map[CreateFunc]
}

// New wraps a creator registry; pass an empty registry for default-only
// construction.
func New(creators *registry.Map[CreateFunc]) *Constructor {
	return &Constructor{creators: creators}
}

// Instance returns an addressable value of the declared type, produced by a
// registered creator when one matches (exact descriptor first, raw identity
// fallback otherwise) and by zero-value construction when none does.
func (c *Constructor) Instance(t typeinfo.Info) (reflect.Value, error) {
	if create, ok := c.creators.Lookup(t); ok {
		return fromCreator(create, t.Type())
	}
	return defaultInstance(t.Type())
}

func fromCreator(create CreateFunc, t reflect.Type) (reflect.Value, error) {
	made := create(t)
	if made == nil {
		return reflect.Value{}, fmt.Errorf("%w: instance creator for %s returned nil", ErrUnconstructible, t)
	}
	rv := reflect.ValueOf(made)
	if rv.Kind() == reflect.Pointer && rv.Type().Elem() == t {
		return rv.Elem(), nil
	}
	if rv.Type() != t {
		return reflect.Value{}, fmt.Errorf("%w: instance creator for %s produced %s", ErrUnconstructible, t, rv.Type())
	}
	box := reflect.New(t).Elem()
	box.Set(rv)
	return box, nil
}

func defaultInstance(t reflect.Type) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.Map:
		box := reflect.New(t).Elem()
		box.Set(reflect.MakeMap(t))
		return box, nil
	case reflect.Slice:
		box := reflect.New(t).Elem()
		box.Set(reflect.MakeSlice(t, 0, 0))
		return box, nil
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnconstructible, t)
	default:
		return reflect.New(t).Elem(), nil
	}
}
