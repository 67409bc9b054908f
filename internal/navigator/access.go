package navigator

import (
	"reflect"
	"unsafe"
)

// The engine reads fields regardless of access control, the way the original
// reflective contract demands. Values handed to visitors are always
// interface-able: unexported reads are re-derived through their address,
// which requires every value on the walk to be addressable. Navigators
// maintain that invariant by boxing non-addressable values on entry.

// exported returns a value equivalent to v that can be read through
// Interface even when v was obtained from an unexported field. v must be
// addressable when it is read-only.
func exported(v reflect.Value) reflect.Value {
	if !v.CanInterface() && v.CanAddr() {
		return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
	}
	return v
}

// boxed returns an addressable value holding v, copying into a fresh
// allocation when v itself is not addressable.
func boxed(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	box := reflect.New(v.Type()).Elem()
	box.Set(v)
	return box
}
