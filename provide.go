package artemis

import (
	"fmt"
	"reflect"

	"go.uber.org/dig"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// provide runs the configured constructors through a dig container and
// registers every result by its declared type. Typed registry entries and
// configured units are available to the constructors as parameters.
func (w *World) provide(constructors []any) error {
	if len(constructors) == 0 {
		return nil
	}

	c := dig.New()
	supplied := make(map[reflect.Type]struct{})

	for _, t := range w.registry.Types() {
		v, _ := w.registry.Typed(t)
		if err := c.Provide(supplier(t, v)); err != nil {
			return ConfigurationError{Source: "provide", Cause: err}
		}
		supplied[t] = struct{}{}
	}

	for _, u := range w.catalog.Units() {
		t := reflect.TypeOf(u)
		if _, ok := supplied[t]; ok {
			continue
		}
		if err := c.Provide(supplier(t, u)); err != nil {
			return ConfigurationError{Source: "provide", Cause: err}
		}
		supplied[t] = struct{}{}
	}

	var results []reflect.Type
	for _, ctor := range constructors {
		ct := reflect.TypeOf(ctor)
		if ct.Kind() != reflect.Func {
			return ConfigurationError{Source: "provide", Cause: fmt.Errorf("constructor must be a function, got %v", ct)}
		}

		if err := c.Provide(ctor); err != nil {
			return ConfigurationError{Source: "provide", Cause: err}
		}

		for i := 0; i < ct.NumOut(); i++ {
			if out := ct.Out(i); out != errorType {
				results = append(results, out)
			}
		}
	}

	collect := reflect.MakeFunc(reflect.FuncOf(results, nil, false), func(args []reflect.Value) []reflect.Value {
		for i, arg := range args {
			w.registry.RegisterAs(results[i], arg.Interface())

			w.logger.Debug("constructor result registered", "world", w.id, "type", results[i].String())
		}
		return nil
	})

	if err := c.Invoke(collect.Interface()); err != nil {
		return ConfigurationError{Source: "provide", Cause: err}
	}

	return nil
}

// supplier builds a dig constructor returning v as type t.
func supplier(t reflect.Type, v any) any {
	out := reflect.New(t).Elem()
	if v != nil {
		out.Set(reflect.ValueOf(v))
	}

	fn := reflect.MakeFunc(reflect.FuncOf(nil, []reflect.Type{t}, false), func([]reflect.Value) []reflect.Value {
		return []reflect.Value{out}
	})

	return fn.Interface()
}
