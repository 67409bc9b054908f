// Package jsonx is a reflective object-to-JSON serialization engine for Go.
//
// jsonx walks an object graph guided by declared static type information,
// selects among built-in conversions, user-registered custom handlers and
// generic field-by-field traversal, enforces composable exclusion policies,
// and produces a tree of JSON nodes that a formatter linearises. The inverse
// direction, JSON text back to values, runs through the same registries and
// policies.
//
// # Quick Start
//
//	type User struct {
//	    Name  string `jsonx:"name"`
//	    Email string `jsonx:"email"`
//	    cache map[string]int
//	}
//
//	engine := jsonx.Default()
//	out, err := engine.ToJSON(User{Name: "Ada", Email: "ada@example.com"})
//	// {"name":"Ada","email":"ada@example.com"}
//
//	var back User
//	err = engine.FromJSON(out, &back)
//
// # Struct Tags
//
// The jsonx tag renames a field's JSON key; its declared name is used
// verbatim otherwise. `jsonx:"-"` marks a field transient. The since tag
// declares a field's minimum version:
//
//	type Account struct {
//	    ID      string `jsonx:"id"`
//	    Region  string `jsonx:"region" since:"1.1"`
//	    scratch []byte `jsonx:"-"`
//	}
//
// With jsonx.WithVersion(1.0) configured, Region is excluded. A type may
// declare a class-level version for all of its fields by implementing
// SinceVersion() float64.
//
// # Custom Handlers
//
// Serializers, deserializers and instance creators are registered per
// declared type. Resolution tries the exact parameterised type first and
// falls back to its erased raw identity, never to supertypes:
//
//	engine, err := jsonx.New(
//	    jsonx.WithSerializer(jsonx.TypeOf[Money](), jsonx.SerializerFunc(
//	        func(v any, t reflect.Type, ctx jsonx.Context) (jsonx.Element, error) {
//	            return jsonx.NewString(v.(Money).String()), nil
//	        })),
//	)
//
// Handlers receive a Context that re-enters the pipeline for nested values,
// with exclusion, cycle detection and registry lookup applying as usual.
//
// # Cycles
//
// A graph that references one of its own ancestors fails with
// ErrCycleDetected and produces no output. Sharing is fine: a DAG
// serializes with the shared node emitted in full at each occurrence.
//
// # Output Contract
//
// The default formatter emits compact JSON: no whitespace, standard string
// escapes, \u00XX for other control characters. A top-level null value
// yields the empty string rather than the JSON null literal; this is the
// documented compatibility contract. Null-valued fields are omitted unless
// WithIncludeNulls is configured.
//
// # Error Handling
//
// Failures carry sentinel errors for classification with errors.Is:
// ErrCycleDetected, ErrReflectiveAccess, ErrUserHandler, ErrTypeMismatch
// and ErrUnconstructible. All are terminal for the call; partially built
// trees are discarded. Handler-overwrite warnings go to the configured
// logger and never surface as errors.
package jsonx
