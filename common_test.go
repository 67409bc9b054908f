package jsonx

// Shared test types mirroring the shapes the engine must handle: primitive
// bags, nesting, self-referential containers, versioned members and types
// with custom handlers.

type bagOfPrimitives struct {
	IntVal  int64  `jsonx:"intVal"`
	LongVal int64  `jsonx:"longVal"`
	BoolVal bool   `jsonx:"boolVal"`
	StrVal  string `jsonx:"strVal"`
}

func newBag(i, l int64, b bool, s string) bagOfPrimitives {
	return bagOfPrimitives{IntVal: i, LongVal: l, BoolVal: b, StrVal: s}
}

type bagOfWrappers struct {
	LongVal  *int64   `jsonx:"longVal"`
	IntVal   *int64   `jsonx:"intVal"`
	BoolVal  *bool    `jsonx:"boolVal"`
	FloatVal *float64 `jsonx:"floatVal"`
}

type nested struct {
	Primitive1 *bagOfPrimitives `jsonx:"primitive1"`
	Primitive2 *bagOfPrimitives `jsonx:"primitive2"`
}

type subTypeOfNested struct {
	nested
	Value int64 `jsonx:"value"`
}

type selfReferential struct {
	Children []*selfReferential `jsonx:"children"`
}

type refHolder struct {
	Ref *refHolder `jsonx:"ref"`
	Tag string     `jsonx:"tag"`
}

type classWithNoFields struct{}

type classWithTransient struct {
	LongVal int64  `jsonx:"longValue"`
	Scratch string `jsonx:"-"`
}

type primitiveArray struct {
	LongArray []int64 `jsonx:"longArray"`
}

// suit is the enum analog: a named type rendering through its external name.
type suit int

const (
	hearts suit = iota
	spades
)

func (s suit) MarshalText() ([]byte, error) {
	if s == hearts {
		return []byte("HEARTS"), nil
	}
	return []byte("SPADES"), nil
}

func (s *suit) UnmarshalText(text []byte) error {
	if string(text) == "HEARTS" {
		*s = hearts
	} else {
		*s = spades
	}
	return nil
}

type classWithEnumFields struct {
	Suit suit `jsonx:"suit"`
}

// box is the parameterised container custom handlers register against.
type box[T any] struct {
	Value T `jsonx:"value"`
}

type version1 struct {
	A int64 `jsonx:"a"`
	B int64 `jsonx:"b" since:"1.0"`
}

type version1_1 struct {
	version1
	C int64 `jsonx:"c" since:"1.1"`
}

type version1_2 struct {
	D int64 `jsonx:"d"`
}

func (version1_2) SinceVersion() float64 { return 1.2 }
