package jsonx

import (
	"io"
	"strings"
	"testing"
)

func format(t *testing.T, e Element) string {
	t.Helper()
	var b strings.Builder
	if err := NewCompactFormatter().Format(e, &b); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestCompactGrammar(t *testing.T) {
	obj := NewObject()
	obj.Put("k", NewNumberInt(1))
	obj.Put("l", NewArray(NewString("a"), Null{}, NewBool(false)))

	if out := format(t, obj); out != `{"k":1,"l":["a",null,false]}` {
		t.Errorf("got %q", out)
	}
}

func TestExplicitNullRenders(t *testing.T) {
	if out := format(t, Null{}); out != "null" {
		t.Errorf("explicit null = %q", out)
	}
}

func TestEscapeTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\b", `"\b"`},
		{"\f", `"\f"`},
		{"\n", `"\n"`},
		{"\r", `"\r"`},
		{"\t", `"\t"`},
		{`"`, `"\""`},
		{`\`, `"\\"`},
		{"\x1f", `"\u001f"`},
		{"plain", `"plain"`},
	}
	for _, tt := range tests {
		if out := format(t, NewString(tt.in)); out != tt.want {
			t.Errorf("escape(%q) = %s, want %s", tt.in, out, tt.want)
		}
	}
}

func TestCustomFormatterOption(t *testing.T) {
	// A formatter replacement changes rendering without touching the tree.
	upper := formatterFunc(func(e Element, w *strings.Builder) error {
		var inner strings.Builder
		if err := NewCompactFormatter().Format(e, &inner); err != nil {
			return err
		}
		w.WriteString(strings.ToUpper(inner.String()))
		return nil
	})
	engine := NewTestEngine(t, WithFormatter(upper))

	out := MustToJSON(t, engine, map[string]bool{"on": true})
	if out != `{"ON":TRUE}` {
		t.Errorf("got %q", out)
	}
}

type formatterFunc func(e Element, b *strings.Builder) error

func (f formatterFunc) Format(e Element, w io.Writer) error {
	var b strings.Builder
	if err := f(e, &b); err != nil {
		return err
	}
	_, err := w.Write([]byte(b.String()))
	return err
}
