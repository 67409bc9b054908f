// Package exclusion decides, per field or per class, whether the navigator
// skips a member during traversal. Leaf strategies compose through a
// disjunction; adding a strategy can only shrink the output.
package exclusion

import (
	"reflect"
	"strconv"
	"strings"
)

const (
	// TagName is the struct tag consulted for field naming and the
	// transient marker.
	TagName = "jsonx"

	// SinceTagName carries a field's declared minimum version.
	SinceTagName = "since"
)

// Modifier is a bitmask over the field properties a ModifierStrategy can
// exclude on.
type Modifier uint8

const (
	// ModifierTransient marks fields tagged `jsonx:"-"`.
	ModifierTransient Modifier = 1 << iota
	// ModifierUnexported marks fields the declaring package keeps private.
	ModifierUnexported
)

// DefaultModifiers is the mask installed when the host configures nothing.
var DefaultModifiers = ModifierTransient | ModifierUnexported

// Versioned is implemented by types that declare a minimum version for all
// of their fields. A field-level since tag overrides the class-level value.
type Versioned interface {
	SinceVersion() float64
}

var versionedType = reflect.TypeOf((*Versioned)(nil)).Elem()

// Field describes a struct field under exclusion review.
type Field struct {
	StructField reflect.StructField
	Owner       reflect.Type
}

// Modifiers computes the field's modifier bitmask.
func (f Field) Modifiers() Modifier {
	var m Modifier
	if !f.StructField.IsExported() {
		m |= ModifierUnexported
	}
	if tag := f.StructField.Tag.Get(TagName); tag != "" {
		if name, _, _ := strings.Cut(tag, ","); name == "-" {
			m |= ModifierTransient
		}
	}
	return m
}

// JSONName returns the field's output key: the first token of the jsonx tag
// when present, the declared field name verbatim otherwise.
func (f Field) JSONName() string {
	if tag := f.StructField.Tag.Get(TagName); tag != "" {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return f.StructField.Name
}

// Since returns the field's declared minimum version. The field's own since
// tag wins; absent that, the declaring type's class-level version applies;
// absent both, the field carries no ceiling.
func (f Field) Since() (float64, bool) {
	if tag := f.StructField.Tag.Get(SinceTagName); tag != "" {
		if v, err := strconv.ParseFloat(tag, 64); err == nil {
			return v, true
		}
	}
	return classVersion(f.Owner)
}

func classVersion(t reflect.Type) (float64, bool) {
	if t == nil {
		return 0, false
	}
	if t.Implements(versionedType) {
		v := reflect.New(t).Elem().Interface().(Versioned)
		return v.SinceVersion(), true
	}
	if reflect.PointerTo(t).Implements(versionedType) {
		v := reflect.New(t).Interface().(Versioned)
		return v.SinceVersion(), true
	}
	return 0, false
}

// Strategy is the predicate pair the navigator consults before visiting a
// field or descending into a class.
type Strategy interface {
	SkipField(f Field) bool
	SkipClass(t reflect.Type) bool
}

type modifierStrategy struct {
	mask Modifier
}

// Modifiers returns a strategy excluding fields whose modifier bitmask
// intersects mask.
func Modifiers(mask Modifier) Strategy {
	return modifierStrategy{mask: mask}
}

func (s modifierStrategy) SkipField(f Field) bool {
	return f.Modifiers()&s.mask != 0
}

func (s modifierStrategy) SkipClass(reflect.Type) bool { return false }

type syntheticStrategy struct{}

// Synthetic returns the strategy excluding compiler-domain members a JSON
// document cannot carry: func, chan and unsafe.Pointer fields.
func Synthetic() Strategy { return syntheticStrategy{} }

func (syntheticStrategy) SkipField(f Field) bool {
	return unserializableKind(f.StructField.Type)
}

func (syntheticStrategy) SkipClass(t reflect.Type) bool {
	return unserializableKind(t)
}

func unserializableKind(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

type versionStrategy struct {
	ceiling float64
}

// VersionCeiling returns a strategy excluding members whose declared minimum
// version exceeds v.
func VersionCeiling(v float64) Strategy {
	return versionStrategy{ceiling: v}
}

func (s versionStrategy) SkipField(f Field) bool {
	since, ok := f.Since()
	return ok && since > s.ceiling
}

func (s versionStrategy) SkipClass(t reflect.Type) bool {
	since, ok := classVersion(t)
	return ok && since > s.ceiling
}

type disjunction struct {
	children []Strategy
}

// Disjunction composes strategies: a member is skipped if any child skips
// it. Children are evaluated in insertion order; short-circuiting is a
// performance choice, not a semantic one.
func Disjunction(children ...Strategy) Strategy {
	return disjunction{children: children}
}

func (d disjunction) SkipField(f Field) bool {
	for _, c := range d.children {
		if c.SkipField(f) {
			return true
		}
	}
	return false
}

func (d disjunction) SkipClass(t reflect.Type) bool {
	for _, c := range d.children {
		if c.SkipClass(t) {
			return true
		}
	}
	return false
}
