package jsonx

import (
	"errors"
	"testing"
)

func TestParseShapes(t *testing.T) {
	engine := Default()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"object", `{"a":1,"b":[true,null]}`, `{"a":1,"b":[true,null]}`},
		{"array", `[1,2,3]`, `[1,2,3]`},
		{"string", `"x"`, `"x"`},
		{"number keeps spelling", `20`, `20`},
		{"float", `1.25`, `1.25`},
		{"whitespace tolerated", " {\n\t\"a\" : 1 } ", `{"a":1}`},
		{"nested", `{"o":{"i":{}}}`, `{"o":{"i":{}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := engine.Parse(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			out, err := engine.Format(tree)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	tree, err := Default().Parse("   ")
	if err != nil {
		t.Fatal(err)
	}
	if tree != nil {
		t.Errorf("empty input should parse to a nil tree, got %T", tree)
	}
}

func TestParseNullLiteral(t *testing.T) {
	tree, err := Default().Parse("null")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tree.(Null); !ok {
		t.Errorf("null literal should parse to an explicit Null, got %T", tree)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{`{`, `{"a"}`, `[1,`, `{'a':1}`, `tru`} {
		t.Run(in, func(t *testing.T) {
			_, err := Default().Parse(in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Parse(%q) err = %v, want ErrInvalidInput", in, err)
			}
		})
	}
}

func TestParsePreservesObjectOrder(t *testing.T) {
	tree, err := Default().Parse(`{"z":1,"a":2}`)
	if err != nil {
		t.Fatal(err)
	}
	obj := tree.(*Object)
	if obj.Keys()[0] != "z" || obj.Keys()[1] != "a" {
		t.Errorf("document order lost: %v", obj.Keys())
	}
}
