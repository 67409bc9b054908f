// Package jsontext adapts the go-json-experiment token encoder to the
// engine's Formatter seam, for hosts that want indented output or a shared
// encoder stack instead of the engine's bit-exact compact grammar.
package jsontext

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	jt "github.com/go-json-experiment/json/jsontext"

	"github.com/hengadev/jsonx"
)

// Formatter renders JSON trees through a jsontext.Encoder.
type Formatter struct {
	indent string
}

// NewFormatter returns a compact jsontext-backed formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// NewIndentFormatter returns a formatter indenting nested values with the
// given unit.
func NewIndentFormatter(indent string) *Formatter {
	return &Formatter{indent: indent}
}

// Format implements jsonx.Formatter.
func (f *Formatter) Format(e jsonx.Element, w io.Writer) error {
	var buf bytes.Buffer
	var enc *jt.Encoder
	if f.indent != "" {
		enc = jt.NewEncoder(&buf, jt.WithIndent(f.indent))
	} else {
		enc = jt.NewEncoder(&buf)
	}
	if err := writeElement(enc, e); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	return err
}

func writeElement(enc *jt.Encoder, e jsonx.Element) error {
	switch n := e.(type) {
	case jsonx.Null:
		return enc.WriteToken(jt.Null)

	case *jsonx.Primitive:
		return writePrimitive(enc, n)

	case *jsonx.Array:
		if err := enc.WriteToken(jt.ArrayStart); err != nil {
			return err
		}
		for _, item := range n.Items() {
			if err := writeElement(enc, item); err != nil {
				return err
			}
		}
		return enc.WriteToken(jt.ArrayEnd)

	case *jsonx.Object:
		if err := enc.WriteToken(jt.ObjectStart); err != nil {
			return err
		}
		for _, key := range n.Keys() {
			if err := enc.WriteToken(jt.String(key)); err != nil {
				return err
			}
			value, _ := n.Get(key)
			if err := writeElement(enc, value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jt.ObjectEnd)

	default:
		return fmt.Errorf("unknown element %T", e)
	}
}

func writePrimitive(enc *jt.Encoder, p *jsonx.Primitive) error {
	switch p.Kind() {
	case jsonx.BoolKind:
		return enc.WriteToken(jt.Bool(p.Bool()))
	case jsonx.StringKind:
		return enc.WriteToken(jt.String(p.String()))
	default:
		// Keep the canonical decimal spelling instead of forcing an early
		// float conversion.
		return enc.WriteValue(jt.Value(canonicalNumber(p.Number())))
	}
}

func canonicalNumber(text string) string {
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return "0"
	}
	return text
}
