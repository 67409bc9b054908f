// Package registry implements the handler map keyed by declared type.
// Resolution tries the exact parameterised descriptor first and falls back to
// the erased raw identity; supertypes are never consulted.
package registry

import (
	"reflect"

	"github.com/hengadev/jsonx/internal/typeinfo"
)

// Map stores handlers of type H keyed by declared type descriptors.
//
// Registering a parameterised descriptor also installs it as the raw-identity
// fallback for sibling instantiations; a later registration for the same key
// overwrites and fires the replace hook so the host can surface a warning.
type Map[H any] struct {
	exact     map[reflect.Type]H
	raw       map[string]H
	onReplace func(key string)
}

// New creates an empty Map. onReplace may be nil.
func New[H any](onReplace func(key string)) *Map[H] {
	return &Map[H]{
		exact:     make(map[reflect.Type]H),
		raw:       make(map[string]H),
		onReplace: onReplace,
	}
}

// Register inserts or overwrites the handler for the given descriptor.
func (m *Map[H]) Register(t typeinfo.Info, h H) {
	if _, dup := m.exact[t.Type()]; dup {
		m.replace(t.String())
	}
	m.exact[t.Type()] = h
	if t.IsParameterized() {
		m.raw[t.RawKey()] = h
	}
}

// RegisterRaw installs a handler under an erased raw identity only, acting as
// the common fallback for every instantiation sharing that identity.
func (m *Map[H]) RegisterRaw(rawKey string, h H) {
	if _, dup := m.raw[rawKey]; dup {
		m.replace(rawKey)
	}
	m.raw[rawKey] = h
}

// Lookup resolves the handler for the descriptor: exact match first, then,
// for parameterised descriptors only, the raw-identity fallback.
func (m *Map[H]) Lookup(t typeinfo.Info) (H, bool) {
	if h, ok := m.exact[t.Type()]; ok {
		return h, true
	}
	if t.IsParameterized() {
		if h, ok := m.raw[t.RawKey()]; ok {
			return h, true
		}
	}
	var zero H
	return zero, false
}

// HasExact reports whether a non-fallback entry exists for the descriptor.
func (m *Map[H]) HasExact(t typeinfo.Info) bool {
	_, ok := m.exact[t.Type()]
	return ok
}

// Len returns the number of exact entries.
func (m *Map[H]) Len() int { return len(m.exact) }

// Snapshot returns an independent copy. The facade hands snapshots to each
// serialization call so later reconfiguration cannot race a running walk.
func (m *Map[H]) Snapshot() *Map[H] {
	c := New[H](m.onReplace)
	for k, v := range m.exact {
		c.exact[k] = v
	}
	for k, v := range m.raw {
		c.raw[k] = v
	}
	return c
}

func (m *Map[H]) replace(key string) {
	if m.onReplace != nil {
		m.onReplace(key)
	}
}
