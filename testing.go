package jsonx

// Test utilities shared by the package tests and importable by applications
// exercising jsonx in their own suites.

import (
	"testing"
)

// NewTestEngine builds an Engine for tests, failing the test on
// configuration errors.
func NewTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("failed to build test engine: %v", err)
	}
	return e
}

// MustToJSON serializes a value or fails the test.
func MustToJSON(t *testing.T, e *Engine, value any) string {
	t.Helper()
	out, err := e.ToJSON(value)
	if err != nil {
		t.Fatalf("ToJSON(%v) failed: %v", value, err)
	}
	return out
}
