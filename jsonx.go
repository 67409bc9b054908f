package jsonx

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/MichaelAJay/go-logger"
	"github.com/hengadev/errsx"

	"github.com/hengadev/jsonx/internal/construct"
	"github.com/hengadev/jsonx/internal/exclusion"
	"github.com/hengadev/jsonx/internal/navigator"
	"github.com/hengadev/jsonx/internal/registry"
	"github.com/hengadev/jsonx/internal/typeinfo"
)

// Engine converts values to JSON text and back, driven by declared type
// information, registered handlers and the configured exclusion policy.
//
// An Engine is read-only after New returns and safe to share across
// goroutines; every call allocates its own visitor, visited-set and node
// tree.
type Engine struct {
	logger       logger.Logger
	formatter    Formatter
	includeNulls bool
	modifierMask Modifier
	version      float64
	hasVersion   bool

	hook    ObservabilityHook
	metrics MetricsCollector

	serializers   *registry.Map[Serializer]
	deserializers *registry.Map[Deserializer]
	creators      *registry.Map[construct.CreateFunc]

	strategy    exclusion.Strategy
	factory     *navigator.Factory
	constructor *construct.Constructor
}

// New creates an Engine configured with the given options. Option errors
// are aggregated so a misconfiguration surfaces every problem at once.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		formatter:    NewCompactFormatter(),
		modifierMask: exclusion.DefaultModifiers,
		hook:         &NoOpObservabilityHook{},
		metrics:      &NoOpMetricsCollector{},
		logger: logger.New(logger.Config{
			Level:  logger.InfoLevel,
			Output: os.Stderr,
		}),
	}
	e.serializers = registry.New[Serializer](e.replaceWarning("serializer"))
	e.deserializers = registry.New[Deserializer](e.replaceWarning("deserializer"))
	e.creators = registry.New[construct.CreateFunc](e.replaceWarning("instance creator"))

	var errs errsx.Map
	for i, opt := range opts {
		if err := opt(e); err != nil {
			errs.Set(fmt.Sprintf("apply engine option[%d]", i), err)
		}
	}
	if !errs.IsEmpty() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, errs.AsError())
	}

	strategies := []exclusion.Strategy{
		exclusion.Synthetic(),
		exclusion.Modifiers(e.modifierMask),
	}
	if e.hasVersion {
		strategies = append(strategies, exclusion.VersionCeiling(e.version))
	}
	e.strategy = exclusion.Disjunction(strategies...)
	e.factory = navigator.NewFactory(e.strategy)
	e.constructor = construct.New(e.creators)
	return e, nil
}

// Default returns an Engine with the default configuration.
func Default() *Engine {
	e, err := New()
	if err != nil {
		// New cannot fail without options.
		panic(err)
	}
	return e
}

func (e *Engine) replaceWarning(kind string) func(key string) {
	return func(key string) {
		e.logger.Warn("handler registration overwritten",
			logger.Field{Key: "kind", Value: kind},
			logger.Field{Key: "type", Value: key})
	}
}

// ToJSON serializes a value using its runtime type as the declared type.
// A nil value yields the empty string.
func (e *Engine) ToJSON(value any) (string, error) {
	return e.toJSON(value, reflect.TypeOf(value))
}

// ToJSONTyped serializes a value under an explicit declared type. Use this
// form for generic containers whose parametric information matters to
// handler resolution.
func (e *Engine) ToJSONTyped(value any, declared reflect.Type) (string, error) {
	return e.toJSON(value, declared)
}

func (e *Engine) toJSON(value any, declared reflect.Type) (string, error) {
	start := time.Now()
	metadata := map[string]any{
		"operation_type": "serialize",
		"declared_type":  typeName(declared),
	}
	e.hook.OnProcessStart("ToJSON", metadata)

	out, err := e.serialize(value, declared)

	if err != nil {
		e.hook.OnError("ToJSON", err, metadata)
	}
	e.hook.OnProcessComplete("ToJSON", time.Since(start), err, metadata)
	e.metrics.IncrementCounter("jsonx_serialize_total", map[string]string{"status": statusTag(err)})
	e.metrics.RecordTiming("jsonx_serialize_duration", time.Since(start), nil)
	return out, err
}

func (e *Engine) serialize(value any, declared reflect.Type) (string, error) {
	visited := navigator.NewVisited()
	visitor := e.newSerializationVisitor(visited)

	var rv reflect.Value
	if value != nil {
		rv = reflect.ValueOf(value)
	}
	nav := e.factory.Navigator(rv, typeinfo.Of(declared), visited)
	if err := nav.Accept(visitor); err != nil {
		return "", err
	}
	visitor.finalise()

	if !visitor.present {
		return "", nil
	}
	var b strings.Builder
	if err := e.formatter.Format(visitor.root, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ToTree serializes a value into its JSON node tree without formatting. The
// second return is false when the value renders absent (a top-level null or
// a wholly excluded class).
func (e *Engine) ToTree(value any, declared reflect.Type) (Element, bool, error) {
	visited := navigator.NewVisited()
	visitor := e.newSerializationVisitor(visited)

	var rv reflect.Value
	if value != nil {
		rv = reflect.ValueOf(value)
	}
	nav := e.factory.Navigator(rv, typeinfo.Of(declared), visited)
	if err := nav.Accept(visitor); err != nil {
		return nil, false, err
	}
	visitor.finalise()
	return visitor.root, visitor.present, nil
}

// FromJSON deserializes a JSON document into target, which must be a
// non-nil pointer. The declared type is the pointer's element type; in Go
// that carries complete parametric information, so no separate type handle
// is needed. Empty input leaves the target untouched.
func (e *Engine) FromJSON(data string, target any) error {
	start := time.Now()
	metadata := map[string]any{
		"operation_type": "deserialize",
		"declared_type":  typeName(reflect.TypeOf(target)),
	}
	e.hook.OnProcessStart("FromJSON", metadata)

	err := e.deserialize(data, target)

	if err != nil {
		e.hook.OnError("FromJSON", err, metadata)
	}
	e.hook.OnProcessComplete("FromJSON", time.Since(start), err, metadata)
	e.metrics.IncrementCounter("jsonx_deserialize_total", map[string]string{"status": statusTag(err)})
	e.metrics.RecordTiming("jsonx_deserialize_duration", time.Since(start), nil)
	return err
}

func (e *Engine) deserialize(data string, target any) error {
	if target == nil {
		return fmt.Errorf("%w: deserialization target", ErrNilPointer)
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer, got %T", ErrNilPointer, target)
	}

	tree, err := parseDocument(data)
	if err != nil {
		return err
	}
	if tree == nil {
		return nil
	}

	d := e.newDecoder()
	out, err := d.value(tree, typeinfo.Of(rv.Type().Elem()))
	if err != nil {
		return err
	}
	rv.Elem().Set(out)
	return nil
}

// FromTree deserializes an already-parsed JSON tree into target.
func (e *Engine) FromTree(tree Element, target any) error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer, got %T", ErrNilPointer, target)
	}
	d := e.newDecoder()
	out, err := d.value(tree, typeinfo.Of(rv.Type().Elem()))
	if err != nil {
		return err
	}
	rv.Elem().Set(out)
	return nil
}

// Parse lexes a JSON document into its node tree. Empty input yields a nil
// tree and no error.
func (e *Engine) Parse(data string) (Element, error) {
	return parseDocument(data)
}

// Format renders a node tree through the engine's configured formatter.
func (e *Engine) Format(tree Element) (string, error) {
	var b strings.Builder
	if err := e.formatter.Format(tree, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func statusTag(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
