package artemis

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/junioryono/artemis/internal/resolver"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================

var (
	// Configuration errors.
	ErrConfigurationNil  = errors.New("world configuration cannot be nil")
	ErrSystemNil         = errors.New("system cannot be nil")
	ErrInvalidSystemType = errors.New("type is not a pointer to a system struct")
	ErrNameEmpty         = errors.New("registration name cannot be empty")

	// Wiring errors.
	ErrTargetNotPointer    = errors.New("wiring target must be a non-nil pointer to a struct")
	ErrNotFound            = resolver.ErrNotFound
	ErrTypeMismatch        = resolver.ErrTypeMismatch
	ErrAccessorUnavailable = resolver.ErrAccessorUnavailable

	// Lookup and lifecycle errors.
	ErrNotRegistered = errors.New("no registered value")
	ErrWorldClosed   = errors.New("world has been closed")
)

var (
	_ error = (*ResolutionError)(nil)
	_ error = WireError{}
	_ error = ConfigurationError{}
	_ error = InvalidTargetError{}
	_ error = NotRegisteredError{}
	_ error = TypeMismatchError{}
	_ error = InvalidSystemTypeError{}
)

// ResolutionError reports a required field that no source could supply.
// It names the field, its declared type and whether the lookup was by name or by type.
type ResolutionError = resolver.ResolutionError

// WireError wraps a resolution failure raised while wiring a configured system during world construction.
type WireError struct {
	Unit  reflect.Type
	Index int // position of the unit in the configuration
	Cause error
}

func (e WireError) Error() string {
	return fmt.Sprintf("failed to wire system %s (#%d): %v", formatType(e.Unit), e.Index, e.Cause)
}

func (e WireError) Unwrap() error {
	return e.Cause
}

// ConfigurationError wraps failures of a configuration source such as a YAML document,
// an env file or a constructor provider.
type ConfigurationError struct {
	Source string // "yaml", "env", "provide", "register", "system"
	Cause  error
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid world configuration (%s): %v", e.Source, e.Cause)
}

func (e ConfigurationError) Unwrap() error {
	return e.Cause
}

// InvalidTargetError indicates a wiring target that has injectable fields but cannot be written to.
type InvalidTargetError struct {
	Type reflect.Type
}

func (e InvalidTargetError) Error() string {
	return fmt.Sprintf("cannot wire %s: %v", formatType(e.Type), ErrTargetNotPointer)
}

func (e InvalidTargetError) Unwrap() error {
	return ErrTargetNotPointer
}

// InvalidSystemTypeError indicates a system type that cannot be instantiated by the configuration.
type InvalidSystemTypeError struct {
	Type reflect.Type
}

func (e InvalidSystemTypeError) Error() string {
	return fmt.Sprintf("cannot configure %s: %v", formatType(e.Type), ErrInvalidSystemType)
}

func (e InvalidSystemTypeError) Unwrap() error {
	return ErrInvalidSystemType
}

// NotRegisteredError indicates a registry lookup that found nothing.
type NotRegisteredError struct {
	Key    any
	ByName bool
}

func (e NotRegisteredError) Error() string {
	if e.ByName {
		return fmt.Sprintf("nothing registered under name %q", e.Key)
	}
	return fmt.Sprintf("nothing registered for type %v", e.Key)
}

func (e NotRegisteredError) Unwrap() error {
	return ErrNotRegistered
}

// TypeMismatchError indicates a registered value that is not of the requested type.
type TypeMismatchError struct {
	Key      any
	Expected reflect.Type
	Actual   reflect.Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("registered value %v is %s, not %s", e.Key, formatType(e.Actual), formatType(e.Expected))
}

func (e TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// IsUnresolved reports whether err carries a field resolution failure.
func IsUnresolved(err error) bool {
	var rerr *ResolutionError
	return errors.As(err, &rerr)
}

// IsNotRegistered reports whether err is a failed registry lookup.
func IsNotRegistered(err error) bool {
	return errors.Is(err, ErrNotRegistered)
}

// IsTypeMismatch reports whether err comes from a value of the wrong type.
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

func formatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
