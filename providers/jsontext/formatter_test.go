package jsontext

import (
	"strings"
	"testing"

	"github.com/hengadev/jsonx"
)

func sampleTree() jsonx.Element {
	obj := jsonx.NewObject()
	obj.Put("name", jsonx.NewString("demo"))
	obj.Put("count", jsonx.NewNumberInt(3))
	obj.Put("ok", jsonx.NewBool(true))
	obj.Put("tags", jsonx.NewArray(jsonx.NewString("a"), jsonx.NewString("b")))
	obj.Put("gone", jsonx.Null{})
	return obj
}

func TestCompactMatchesDefaultFormatter(t *testing.T) {
	tree := sampleTree()

	var jt strings.Builder
	if err := NewFormatter().Format(tree, &jt); err != nil {
		t.Fatal(err)
	}
	var def strings.Builder
	if err := jsonx.NewCompactFormatter().Format(tree, &def); err != nil {
		t.Fatal(err)
	}
	if jt.String() != def.String() {
		t.Errorf("jsontext compact output %q differs from default %q", jt.String(), def.String())
	}
}

func TestIndentedRoundTrips(t *testing.T) {
	tree := sampleTree()

	var b strings.Builder
	if err := NewIndentFormatter("  ").Format(tree, &b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "\n") {
		t.Fatal("indented output should span lines")
	}

	// Reparsing the indented form must yield the same compact rendition.
	engine := jsonx.Default()
	reparsed, err := engine.Parse(out)
	if err != nil {
		t.Fatal(err)
	}
	got, err := engine.Format(reparsed)
	if err != nil {
		t.Fatal(err)
	}
	want, err := engine.Format(tree)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip changed the document: %q vs %q", got, want)
	}
}

func TestNumberSpellingPreserved(t *testing.T) {
	var b strings.Builder
	if err := NewFormatter().Format(jsonx.NewNumberRaw("20"), &b); err != nil {
		t.Fatal(err)
	}
	if b.String() != "20" {
		t.Errorf("number rendered as %q, want 20", b.String())
	}
}
