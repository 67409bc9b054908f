package jsonx

import "testing"

func TestObjectPreservesInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Put("z", NewNumberInt(1))
	obj.Put("a", NewNumberInt(2))
	obj.Put("m", NewNumberInt(3))

	want := []string{"z", "a", "m"}
	for i, key := range obj.Keys() {
		if key != want[i] {
			t.Fatalf("Keys() = %v, want %v", obj.Keys(), want)
		}
	}
}

func TestObjectPutReplacesKeepingPosition(t *testing.T) {
	obj := NewObject()
	obj.Put("a", NewNumberInt(1))
	obj.Put("b", NewNumberInt(2))
	obj.Put("a", NewNumberInt(9))

	if obj.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", obj.Len())
	}
	if obj.Keys()[0] != "a" {
		t.Errorf("replaced key should keep its position, keys = %v", obj.Keys())
	}
	e, _ := obj.Get("a")
	if n, _ := e.(*Primitive).Int64(); n != 9 {
		t.Errorf("Get(a) = %d, want 9", n)
	}
}

func TestPrimitiveAccessors(t *testing.T) {
	if n, err := NewNumberFloat(20.0).Int64(); err != nil || n != 20 {
		t.Errorf("integral float should parse as int: %v, %v", n, err)
	}
	if NewNumberFloat(20.0).Number() != "20" {
		t.Errorf("integral float spelling = %q, want 20", NewNumberFloat(20.0).Number())
	}
	if NewNumberFloat(1.25).Number() != "1.25" {
		t.Errorf("fractional float spelling = %q", NewNumberFloat(1.25).Number())
	}
	if f, err := NewNumberRaw("1e3").Float64(); err != nil || f != 1000 {
		t.Errorf("exponent form should parse: %v, %v", f, err)
	}
	if NewString("x").Kind() != StringKind || NewBool(true).Kind() != BoolKind {
		t.Error("kind discrimination broken")
	}
}

func TestArrayAppendOrder(t *testing.T) {
	arr := NewArray()
	arr.Append(NewNumberInt(1))
	arr.Append(NewNumberInt(2))
	if arr.Len() != 2 {
		t.Fatalf("Len() = %d", arr.Len())
	}
	first, _ := arr.Items()[0].(*Primitive).Int64()
	if first != 1 {
		t.Error("append order not preserved")
	}
}
