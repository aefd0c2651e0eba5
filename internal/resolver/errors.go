package resolver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/junioryono/artemis/internal/reflection"
)

var (
	// ErrNotFound is the cause when no source can supply a field.
	ErrNotFound = errors.New("no matching value")

	// ErrTypeMismatch is the cause when a named value is not assignable to the field.
	ErrTypeMismatch = errors.New("registered value has the wrong type")

	// ErrAccessorUnavailable is the cause when no accessor can be produced for a field.
	ErrAccessorUnavailable = errors.New("component accessor unavailable")
)

// ResolutionError reports a field that could not be resolved.
type ResolutionError struct {
	// Target is the type being wired
	Target reflect.Type

	// Owner is the struct type that declares the field
	Owner reflect.Type

	Field     string
	FieldType reflect.Type
	Kind      reflection.Kind

	// Key is the registry name when ByName is set, otherwise the field type
	Key    any
	ByName bool

	// Found is the type of the value that was found but could not be assigned
	Found reflect.Type

	Cause error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("failed to wire %s.%s (%v)", typeName(e.Owner), e.Field, e.FieldType))

	if e.Target != nil && deref(e.Target) != deref(e.Owner) {
		msg.WriteString(fmt.Sprintf(" in %s", typeName(e.Target)))
	}

	if e.ByName {
		msg.WriteString(fmt.Sprintf(": by name %q", e.Key))
	} else {
		msg.WriteString(fmt.Sprintf(": by type %v", e.Key))
	}

	if e.Cause != nil {
		msg.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if e.Found != nil {
		msg.WriteString(fmt.Sprintf(" (found %v)", e.Found))
	}

	return msg.String()
}

// Unwrap returns the underlying cause.
func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	t = deref(t)

	if t.Name() == "" {
		return t.String()
	}

	return t.Name()
}
