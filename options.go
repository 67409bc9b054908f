package jsonx

import (
	"fmt"
	"reflect"

	"github.com/MichaelAJay/go-logger"

	"github.com/hengadev/jsonx/internal/construct"
	"github.com/hengadev/jsonx/internal/typeinfo"
)

// Option configures an Engine during construction.
type Option func(e *Engine) error

// WithVersion enables versioning support: members declaring a minimum
// version greater than v are excluded from both directions.
func WithVersion(v float64) Option {
	return func(e *Engine) error {
		if v < 0 {
			return fmt.Errorf("version ceiling must be non-negative, got %g", v)
		}
		e.version = v
		e.hasVersion = true
		return nil
	}
}

// WithExcludedModifiers replaces the default modifier mask. The default
// excludes transient (`jsonx:"-"`) and unexported fields.
func WithExcludedModifiers(mask Modifier) Option {
	return func(e *Engine) error {
		e.modifierMask = mask
		return nil
	}
}

// WithFormatter replaces the default compact-output formatter.
func WithFormatter(f Formatter) Option {
	return func(e *Engine) error {
		if f == nil {
			return fmt.Errorf("formatter must not be nil")
		}
		e.formatter = f
		return nil
	}
}

// WithIncludeNulls makes null-valued fields appear as explicit JSON nulls
// instead of being omitted.
func WithIncludeNulls() Option {
	return func(e *Engine) error {
		e.includeNulls = true
		return nil
	}
}

// WithSerializer registers a custom serializer for the declared type.
// Registering the same type twice overwrites and logs a warning.
func WithSerializer(t reflect.Type, s Serializer) Option {
	return func(e *Engine) error {
		if t == nil || s == nil {
			return fmt.Errorf("serializer registration requires a type and a handler")
		}
		e.serializers.Register(typeinfo.Of(t), s)
		return nil
	}
}

// WithDeserializer registers a custom deserializer for the declared type.
func WithDeserializer(t reflect.Type, d Deserializer) Option {
	return func(e *Engine) error {
		if t == nil || d == nil {
			return fmt.Errorf("deserializer registration requires a type and a handler")
		}
		e.deserializers.Register(typeinfo.Of(t), d)
		return nil
	}
}

// WithInstanceCreator overrides default construction for the declared type
// during deserialization.
func WithInstanceCreator(t reflect.Type, c InstanceCreator) Option {
	return func(e *Engine) error {
		if t == nil || c == nil {
			return fmt.Errorf("instance creator registration requires a type and a creator")
		}
		e.creators.Register(typeinfo.Of(t), construct.CreateFunc(c.CreateInstance))
		return nil
	}
}

// WithLogger replaces the default stderr logger.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		e.logger = l
		return nil
	}
}

// WithObservabilityHook installs hooks around engine operations.
func WithObservabilityHook(h ObservabilityHook) Option {
	return func(e *Engine) error {
		if h == nil {
			return fmt.Errorf("observability hook must not be nil")
		}
		e.hook = h
		return nil
	}
}

// WithMetricsCollector installs a metrics sink for engine operations.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(e *Engine) error {
		if m == nil {
			return fmt.Errorf("metrics collector must not be nil")
		}
		e.metrics = m
		return nil
	}
}
