package artemis

import "reflect"

// GetRegistered returns the value registered under name.
func (w *World) GetRegistered(name string) (any, bool) {
	return w.registry.Named(name)
}

// GetRegisteredType returns the value registered for exactly t.
func (w *World) GetRegisteredType(t reflect.Type) (any, bool) {
	return w.registry.Typed(t)
}

// Registered returns the value registered for type T.
// It fails with NotRegisteredError when there is none.
func Registered[T any](w *World) (T, error) {
	var zero T

	t := reflect.TypeFor[T]()
	v, ok := w.registry.Typed(t)
	if !ok {
		return zero, NotRegisteredError{Key: t}
	}

	return downcast[T](t, v)
}

// RegisteredNamed returns the value registered under name as a T.
// It fails with NotRegisteredError when the name is unknown and with
// TypeMismatchError when the value is not a T.
func RegisteredNamed[T any](w *World, name string) (T, error) {
	var zero T

	v, ok := w.registry.Named(name)
	if !ok {
		return zero, NotRegisteredError{Key: name, ByName: true}
	}

	return downcast[T](name, v)
}

func downcast[T any](key any, v any) (T, error) {
	typed, ok := v.(T)
	if !ok {
		var zero T
		return zero, TypeMismatchError{
			Key:      key,
			Expected: reflect.TypeFor[T](),
			Actual:   reflect.TypeOf(v),
		}
	}

	return typed, nil
}
