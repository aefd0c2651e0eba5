package testutil

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/artemis/internal/resolver"
)

// fieldValue returns the named field of the struct target points to
func fieldValue(t *testing.T, target any, name string) reflect.Value {
	t.Helper()

	v := reflect.ValueOf(target)
	require.Equal(t, reflect.Pointer, v.Kind(), "target must be a pointer, got %T", target)
	v = v.Elem()

	f := v.FieldByName(name)
	require.True(t, f.IsValid(), "%T has no field %s", target, name)
	return f
}

// AssertFieldsSet checks that every named field of target is non-zero
func AssertFieldsSet(t *testing.T, target any, names ...string) {
	t.Helper()
	for _, name := range names {
		assert.False(t, fieldValue(t, target, name).IsZero(), "%T.%s should be wired", target, name)
	}
}

// AssertFieldsZero checks that every named field of target is still zero
func AssertFieldsZero(t *testing.T, target any, names ...string) {
	t.Helper()
	for _, name := range names {
		assert.True(t, fieldValue(t, target, name).IsZero(), "%T.%s should not be wired", target, name)
	}
}

// AssertFieldSame checks that a pointer field of target holds exactly want
func AssertFieldSame(t *testing.T, target any, name string, want any) {
	t.Helper()

	f := fieldValue(t, target, name)
	if f.Kind() == reflect.Interface {
		f = f.Elem()
	}

	require.Equal(t, reflect.Pointer, f.Kind(), "%T.%s is not a pointer", target, name)
	assert.Equal(t, reflect.ValueOf(want).Pointer(), f.Pointer(), "%T.%s holds a different instance", target, name)
}

// RequireUnresolved checks that err is a resolution failure for field
func RequireUnresolved(t *testing.T, err error, field string) *resolver.ResolutionError {
	t.Helper()

	var rerr *resolver.ResolutionError
	require.Error(t, err)
	require.True(t, errors.As(err, &rerr), "expected a resolution failure, got: %v", err)
	assert.Equal(t, field, rerr.Field)
	return rerr
}

// AssertErrorType checks if an error is of a specific type
func AssertErrorType[T error](t *testing.T, err error, msgAndArgs ...interface{}) T {
	t.Helper()
	var target T
	assert.ErrorAs(t, err, &target, msgAndArgs...)
	return target
}
