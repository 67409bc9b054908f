package exclusion

import (
	"reflect"
	"testing"
)

type sample struct {
	Kept      string
	Skipped   string `jsonx:"-"`
	Renamed   string `jsonx:"renamed"`
	hidden    string
	Callback  func()
	Versioned int `since:"1.1"`
}

func fieldOf(t *testing.T, name string) Field {
	t.Helper()
	typ := reflect.TypeOf(sample{})
	sf, ok := typ.FieldByName(name)
	if !ok {
		t.Fatalf("no field %q", name)
	}
	return Field{StructField: sf, Owner: typ}
}

func TestModifiers(t *testing.T) {
	tests := []struct {
		field string
		want  Modifier
	}{
		{"Kept", 0},
		{"Skipped", ModifierTransient},
		{"Renamed", 0},
		{"hidden", ModifierUnexported},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := fieldOf(t, tt.field).Modifiers(); got != tt.want {
				t.Errorf("Modifiers() = %b, want %b", got, tt.want)
			}
		})
	}
}

func TestModifierStrategy(t *testing.T) {
	s := Modifiers(DefaultModifiers)
	if !s.SkipField(fieldOf(t, "Skipped")) {
		t.Error("transient field should be skipped")
	}
	if !s.SkipField(fieldOf(t, "hidden")) {
		t.Error("unexported field should be skipped by the default mask")
	}
	if s.SkipField(fieldOf(t, "Kept")) {
		t.Error("plain field should be kept")
	}

	// Clearing the unexported bit re-admits private fields.
	loose := Modifiers(ModifierTransient)
	if loose.SkipField(fieldOf(t, "hidden")) {
		t.Error("unexported field should pass a transient-only mask")
	}
}

func TestJSONName(t *testing.T) {
	if got := fieldOf(t, "Renamed").JSONName(); got != "renamed" {
		t.Errorf("JSONName() = %q", got)
	}
	if got := fieldOf(t, "Kept").JSONName(); got != "Kept" {
		t.Errorf("JSONName() = %q, want verbatim declared name", got)
	}
}

func TestSyntheticStrategy(t *testing.T) {
	s := Synthetic()
	if !s.SkipField(fieldOf(t, "Callback")) {
		t.Error("func field should be skipped")
	}
	if s.SkipField(fieldOf(t, "Kept")) {
		t.Error("string field should be kept")
	}
}

type versionedClass struct {
	D int
}

func (versionedClass) SinceVersion() float64 { return 1.2 }

func TestVersionCeiling(t *testing.T) {
	s := VersionCeiling(1.0)

	if !s.SkipField(fieldOf(t, "Versioned")) {
		t.Error("since=1.1 field should be skipped under ceiling 1.0")
	}
	if s.SkipField(fieldOf(t, "Kept")) {
		t.Error("untagged field has no ceiling")
	}
	if !s.SkipClass(reflect.TypeOf(versionedClass{})) {
		t.Error("class declaring SinceVersion 1.2 should be skipped under 1.0")
	}
	if s.SkipClass(reflect.TypeOf(sample{})) {
		t.Error("unversioned class should be kept")
	}

	// Class-level version inherited by fields lacking their own tag.
	typ := reflect.TypeOf(versionedClass{})
	sf, _ := typ.FieldByName("D")
	f := Field{StructField: sf, Owner: typ}
	if !s.SkipField(f) {
		t.Error("field should inherit the declaring class's version")
	}

	high := VersionCeiling(1.5)
	if high.SkipField(f) || high.SkipClass(typ) {
		t.Error("ceiling above the declared version should include the member")
	}
}

func TestDisjunctionOrderIndependence(t *testing.T) {
	a := Disjunction(Synthetic(), Modifiers(DefaultModifiers))
	b := Disjunction(Modifiers(DefaultModifiers), Synthetic())

	for _, name := range []string{"Kept", "Skipped", "hidden", "Callback"} {
		f := fieldOf(t, name)
		if a.SkipField(f) != b.SkipField(f) {
			t.Errorf("disjunction order changed the decision for %s", name)
		}
	}
}
