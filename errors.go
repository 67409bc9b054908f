package jsonx

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hengadev/jsonx/internal/construct"
	"github.com/hengadev/jsonx/internal/navigator"
)

var (
	// Traversal errors
	ErrCycleDetected   = navigator.ErrCycleDetected
	ErrUnsupportedType = navigator.ErrUnsupportedType

	// Reflection errors
	ErrReflectiveAccess = errors.New("reflective access failed")
	ErrUnconstructible  = construct.ErrUnconstructible

	// Handler errors
	ErrUserHandler = errors.New("registered handler failed")

	// Deserialization errors
	ErrTypeMismatch = errors.New("JSON shape incompatible with declared type")
	ErrInvalidInput = errors.New("malformed JSON input")
	ErrNilPointer   = errors.New("nil pointer encountered")

	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// Internal invariant violations
	ErrInvariantViolated = errors.New("visitor invariant violated")
)

func NewReflectiveAccessError(fieldName string, action Action, cause error) error {
	return fmt.Errorf("%w: field '%s' during %s: %v", ErrReflectiveAccess, fieldName, action, cause)
}

func NewUserHandlerError(t reflect.Type, action Action, cause error) error {
	return fmt.Errorf("%w: handler for %s raised during %s: %w", ErrUserHandler, t, action, cause)
}

func NewTypeMismatchError(declared reflect.Type, got string) error {
	return fmt.Errorf("%w: cannot populate %s from %s", ErrTypeMismatch, declared, got)
}

// IsCycleError reports whether err came from a cyclic object graph.
func IsCycleError(err error) bool {
	return errors.Is(err, ErrCycleDetected)
}

// IsUserHandlerError reports whether err originated in a registered
// serializer or deserializer. Instance creator failures report
// ErrUnconstructible instead.
func IsUserHandlerError(err error) bool {
	return errors.Is(err, ErrUserHandler)
}

// IsTypeMismatchError reports whether err came from incompatible JSON shape
// and declared type during deserialization, lexical errors included.
func IsTypeMismatchError(err error) bool {
	return errors.Is(err, ErrTypeMismatch) || errors.Is(err, ErrInvalidInput)
}

// IsConfigurationError reports whether err came from engine construction
// rather than a serialization call.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}
