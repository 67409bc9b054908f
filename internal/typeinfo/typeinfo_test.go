package typeinfo

import (
	"reflect"
	"testing"
)

type box[T any] struct {
	Value T
}

type plain struct {
	A int
}

func TestRawKeyStripsInstantiation(t *testing.T) {
	intBox := Of(reflect.TypeOf(box[int]{}))
	strBox := Of(reflect.TypeOf(box[string]{}))

	if intBox.Equal(strBox) {
		t.Fatal("distinct instantiations must not be equal")
	}
	if intBox.RawKey() != strBox.RawKey() {
		t.Errorf("raw keys differ: %q vs %q", intBox.RawKey(), strBox.RawKey())
	}
	if !intBox.IsParameterized() {
		t.Error("generic instantiation should report parameterized")
	}
}

func TestRawKeyPlainType(t *testing.T) {
	p := Of(reflect.TypeOf(plain{}))
	if p.IsParameterized() {
		t.Error("plain struct should not report parameterized")
	}
	if got := p.RawKey(); got != "typeinfo.plain" {
		t.Errorf("RawKey() = %q", got)
	}
}

func TestContainerArgs(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		raw  string
		args int
	}{
		{"slice", reflect.TypeOf([]int{}), "slice", 1},
		{"array", reflect.TypeOf([3]string{}), "array", 1},
		{"map", reflect.TypeOf(map[string]int{}), "map", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Of(tt.typ)
			if got := info.RawKey(); got != tt.raw {
				t.Errorf("RawKey() = %q, want %q", got, tt.raw)
			}
			if got := len(info.Args()); got != tt.args {
				t.Errorf("len(Args()) = %d, want %d", got, tt.args)
			}
			if !info.IsParameterized() {
				t.Error("container should report parameterized")
			}
		})
	}
}

func TestNilDegradesToAny(t *testing.T) {
	info := Of(nil)
	if !info.IsAny() {
		t.Error("nil type should degrade to the empty interface descriptor")
	}
	if len(info.Args()) != 0 {
		t.Error("degraded descriptor should have no args")
	}
}

func TestElem(t *testing.T) {
	elem, ok := Of(reflect.TypeOf(map[string]float64{})).Elem()
	if !ok || elem.Kind() != reflect.Float64 {
		t.Errorf("map element = %v, ok=%v", elem, ok)
	}
	if _, ok := Of(reflect.TypeOf(0)).Elem(); ok {
		t.Error("int should have no element descriptor")
	}
}
