package resolver

import (
	"reflect"

	"github.com/junioryono/artemis/internal/reflection"
)

// Source supplies the values a Binder chooses from.
type Source interface {
	// Named returns the registry entry stored under name.
	Named(name string) (any, bool)

	// Typed returns the registry entry stored for exactly t.
	Typed(t reflect.Type) (any, bool)

	// Accessor returns the component accessor for an accessor field type,
	// creating it on first use.
	Accessor(t reflect.Type) (any, bool)

	// Unit returns the configured system or manager for t: an exact type
	// match first, then the first assignable unit in configuration order.
	Unit(t reflect.Type) (any, bool)
}

// Binder resolves single fields against a Source.
type Binder struct {
	source Source
}

// New creates a Binder reading from source.
func New(source Source) *Binder {
	return &Binder{source: source}
}

// Bind resolves f, a field of target, to a value assignable to f.Type.
// Failures are returned as *ResolutionError whether or not the field is required;
// deciding what to do with them is up to the caller.
func (b *Binder) Bind(target reflect.Type, f reflection.Field) (reflect.Value, error) {
	if f.Tag.HasName() {
		v, ok := b.source.Named(f.Tag.Name)
		if !ok {
			return reflect.Value{}, b.fail(target, f, ErrNotFound, nil)
		}
		return b.assign(target, f, v)
	}

	switch f.Kind {
	case reflection.KindAccessor:
		v, ok := b.source.Accessor(f.Type)
		if !ok {
			return reflect.Value{}, b.fail(target, f, ErrAccessorUnavailable, nil)
		}
		return b.assign(target, f, v)

	case reflection.KindSystem, reflection.KindManager:
		v, ok := b.source.Unit(f.Type)
		if !ok {
			return reflect.Value{}, b.fail(target, f, ErrNotFound, nil)
		}
		return b.assign(target, f, v)

	default:
		v, ok := b.source.Typed(f.Type)
		if !ok {
			return reflect.Value{}, b.fail(target, f, ErrNotFound, nil)
		}
		return b.assign(target, f, v)
	}
}

// assign checks that v fits the field and converts it to a reflect.Value of the field type.
func (b *Binder) assign(target reflect.Type, f reflection.Field, v any) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, b.fail(target, f, ErrNotFound, nil)
	}

	val := reflect.ValueOf(v)
	if !val.Type().AssignableTo(f.Type) {
		return reflect.Value{}, b.fail(target, f, ErrTypeMismatch, val.Type())
	}

	if val.Type() != f.Type {
		converted := reflect.New(f.Type).Elem()
		converted.Set(val)
		val = converted
	}

	return val, nil
}

func (b *Binder) fail(target reflect.Type, f reflection.Field, cause error, found reflect.Type) error {
	err := &ResolutionError{
		Target:    target,
		Owner:     f.Owner,
		Field:     f.Name,
		FieldType: f.Type,
		Kind:      f.Kind,
		Cause:     cause,
		Found:     found,
	}

	if f.Tag.HasName() {
		err.Key = f.Tag.Name
		err.ByName = true
	} else {
		err.Key = f.Type
	}

	return err
}
