package jsonx

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// The type adapter narrows and widens primitive values between their Go form
// and the canonical JSON form. String escaping is the formatter's concern,
// not handled here.

var urlType = reflect.TypeOf(url.URL{})

// adaptPrimitive renders a primitive-shaped value as a JSON node. Integral
// floats render without a fractional part (20, not 20.0); other floats keep
// enough digits to round-trip.
func adaptPrimitive(v reflect.Value) (Element, error) {
	switch v.Kind() {
	case reflect.Bool:
		return NewBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewNumberInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NewNumberUint(v.Uint()), nil
	case reflect.Float32:
		return NewNumberRaw(strconv.FormatFloat(v.Float(), 'g', -1, 32)), nil
	case reflect.Float64:
		return NewNumberRaw(strconv.FormatFloat(v.Float(), 'g', -1, 64)), nil
	case reflect.String:
		return NewString(v.String()), nil
	case reflect.Struct:
		if v.Type() == urlType {
			u := v.Interface().(url.URL)
			return NewString(u.String()), nil
		}
	}
	return nil, fmt.Errorf("%w: %s is not a primitive shape", ErrUnsupportedType, v.Type())
}

// narrowPrimitive assigns a JSON primitive into a settable target of a
// primitive-shaped declared type, narrowing numbers to the declared kind.
func narrowPrimitive(p *Primitive, target reflect.Value) error {
	t := target.Type()
	switch target.Kind() {
	case reflect.Bool:
		if p.Kind() != BoolKind {
			return NewTypeMismatchError(t, describePrimitive(p))
		}
		target.SetBool(p.Bool())
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if p.Kind() != NumberKind {
			return NewTypeMismatchError(t, describePrimitive(p))
		}
		n, err := p.Int64()
		if err != nil || target.OverflowInt(n) {
			return NewTypeMismatchError(t, "number "+p.Number())
		}
		target.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if p.Kind() != NumberKind {
			return NewTypeMismatchError(t, describePrimitive(p))
		}
		n, err := p.Uint64()
		if err != nil || target.OverflowUint(n) {
			return NewTypeMismatchError(t, "number "+p.Number())
		}
		target.SetUint(n)
		return nil

	case reflect.Float32, reflect.Float64:
		if p.Kind() != NumberKind {
			return NewTypeMismatchError(t, describePrimitive(p))
		}
		f, err := p.Float64()
		if err != nil || target.OverflowFloat(f) {
			return NewTypeMismatchError(t, "number "+p.Number())
		}
		target.SetFloat(f)
		return nil

	case reflect.String:
		if p.Kind() != StringKind {
			return NewTypeMismatchError(t, describePrimitive(p))
		}
		target.SetString(p.String())
		return nil

	case reflect.Struct:
		if t == urlType {
			if p.Kind() != StringKind {
				return NewTypeMismatchError(t, describePrimitive(p))
			}
			u, err := url.Parse(p.String())
			if err != nil {
				return NewTypeMismatchError(t, fmt.Sprintf("string %q", p.String()))
			}
			target.Set(reflect.ValueOf(*u))
			return nil
		}
	}
	return NewTypeMismatchError(t, describePrimitive(p))
}

func describePrimitive(p *Primitive) string {
	switch p.Kind() {
	case BoolKind:
		return "boolean " + strconv.FormatBool(p.Bool())
	case NumberKind:
		return "number " + p.Number()
	default:
		return fmt.Sprintf("string %q", p.String())
	}
}
