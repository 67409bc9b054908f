package jsonx

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// parseDocument lexes a JSON document into an Element tree. Empty input
// parses to a nil tree, the inbound mirror of the empty string a top-level
// null serializes to.
func parseDocument(data string) (Element, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}
	dec := jsontext.NewDecoder(strings.NewReader(data))
	e, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return e, nil
}

func parseValue(dec *jsontext.Decoder) (Element, error) {
	switch dec.PeekKind() {
	case 'n':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return Null{}, nil

	case 't', 'f':
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		return NewBool(tok.Bool()), nil

	case '"':
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		return NewString(tok.String()), nil

	case '0':
		// Read numbers as raw text to keep their canonical spelling; token
		// accessors would force an early float conversion.
		raw, err := dec.ReadValue()
		if err != nil {
			return nil, err
		}
		return NewNumberRaw(string(raw)), nil

	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		obj := NewObject()
		for dec.PeekKind() != '}' {
			name, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			key := name.String()
			value, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Put(key, value)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return obj, nil

	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		arr := NewArray()
		for dec.PeekKind() != ']' {
			value, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			arr.Append(value)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return arr, nil

	default:
		// Surface the decoder's own diagnostic for malformed input.
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected token at offset %d", dec.InputOffset())
	}
}
