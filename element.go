package jsonx

import "strconv"

// Element is a node in the JSON tree a serialization call produces: an
// object, an array, a primitive, or the explicit null. Absence of a value is
// not an Element — an omitted object key simply never appears, while an
// explicit Null renders as the JSON null literal.
type Element interface {
	element()
}

// Null is the explicit JSON null node.
type Null struct{}

func (Null) element() {}

// PrimitiveKind discriminates the three primitive shapes.
type PrimitiveKind int

const (
	BoolKind PrimitiveKind = iota
	NumberKind
	StringKind
)

// Primitive is a JSON boolean, number or string. Numbers keep their
// canonical decimal spelling so values round-trip without precision drift.
type Primitive struct {
	kind   PrimitiveKind
	bool   bool
	number string
	str    string
}

func (*Primitive) element() {}

// NewBool builds a boolean primitive.
func NewBool(b bool) *Primitive {
	return &Primitive{kind: BoolKind, bool: b}
}

// NewString builds a string primitive. Escaping is the formatter's job, not
// the node's: the stored text is the raw value.
func NewString(s string) *Primitive {
	return &Primitive{kind: StringKind, str: s}
}

// NewNumberInt builds a number primitive from a signed integer.
func NewNumberInt(v int64) *Primitive {
	return &Primitive{kind: NumberKind, number: strconv.FormatInt(v, 10)}
}

// NewNumberUint builds a number primitive from an unsigned integer.
func NewNumberUint(v uint64) *Primitive {
	return &Primitive{kind: NumberKind, number: strconv.FormatUint(v, 10)}
}

// NewNumberFloat builds a number primitive from a float. Integral-valued
// floats render without a fractional part (20, not 20.0); others keep
// enough digits to round-trip.
func NewNumberFloat(v float64) *Primitive {
	return &Primitive{kind: NumberKind, number: strconv.FormatFloat(v, 'g', -1, 64)}
}

// NewNumberRaw builds a number primitive from an already-canonical decimal
// spelling, as produced by the parser.
func NewNumberRaw(text string) *Primitive {
	return &Primitive{kind: NumberKind, number: text}
}

// Kind returns the primitive's shape.
func (p *Primitive) Kind() PrimitiveKind { return p.kind }

// Bool returns the boolean payload; valid for BoolKind only.
func (p *Primitive) Bool() bool { return p.bool }

// String returns the string payload; valid for StringKind only.
func (p *Primitive) String() string { return p.str }

// Number returns the canonical decimal spelling; valid for NumberKind only.
func (p *Primitive) Number() string { return p.number }

// Float64 parses the number payload as a float.
func (p *Primitive) Float64() (float64, error) {
	return strconv.ParseFloat(p.number, 64)
}

// Int64 parses the number payload as a signed integer.
func (p *Primitive) Int64() (int64, error) {
	return strconv.ParseInt(p.number, 10, 64)
}

// Uint64 parses the number payload as an unsigned integer.
func (p *Primitive) Uint64() (uint64, error) {
	return strconv.ParseUint(p.number, 10, 64)
}

// Array is an ordered sequence of elements.
type Array struct {
	items []Element
}

func (*Array) element() {}

// NewArray builds an array node holding the given members in order.
func NewArray(items ...Element) *Array {
	return &Array{items: items}
}

// Append adds a member at the end.
func (a *Array) Append(e Element) { a.items = append(a.items, e) }

// Len returns the member count.
func (a *Array) Len() int { return len(a.items) }

// Items returns the members in order. The slice is the array's own backing;
// callers must not mutate it.
func (a *Array) Items() []Element { return a.items }

// Object is an ordered string-to-element mapping. Keys are unique; putting
// an existing key replaces the value but keeps the original position.
type Object struct {
	keys   []string
	values map[string]Element
}

func (*Object) element() {}

// NewObject builds an empty object node.
func NewObject() *Object {
	return &Object{values: make(map[string]Element)}
}

// Put inserts or replaces the entry for key.
func (o *Object) Put(key string, e Element) {
	if _, dup := o.values[key]; !dup {
		o.keys = append(o.keys, key)
	}
	o.values[key] = e
}

// Get returns the entry for key.
func (o *Object) Get(key string) (Element, bool) {
	e, ok := o.values[key]
	return e, ok
}

// Keys returns the keys in insertion order. The slice is the object's own
// backing; callers must not mutate it.
func (o *Object) Keys() []string { return o.keys }

// Len returns the entry count.
func (o *Object) Len() int { return len(o.keys) }
