package registry

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter interface{ Greet() string }

type english struct{ name string }

func (e *english) Greet() string { return "hello " + e.name }

type french struct{}

func (*french) Greet() string { return "bonjour" }

func TestRegistry(t *testing.T) {
	t.Run("named and typed namespaces are independent", func(t *testing.T) {
		r := New()
		byName := &english{name: "named"}
		byType := &english{name: "typed"}

		r.Register("hi", byName)
		r.RegisterType(byType)

		got, ok := r.Named("hi")
		require.True(t, ok)
		assert.Same(t, byName, got)

		got, ok = r.Typed(reflect.TypeOf(byType))
		require.True(t, ok)
		assert.Same(t, byType, got)

		assert.Equal(t, 2, r.Len())
	})

	t.Run("missing keys", func(t *testing.T) {
		r := New()

		_, ok := r.Named("missing")
		assert.False(t, ok)

		_, ok = r.Typed(reflect.TypeOf(&english{}))
		assert.False(t, ok)

		_, ok = r.Typed(nil)
		assert.False(t, ok)
	})

	t.Run("typed lookup is exact", func(t *testing.T) {
		r := New()
		r.RegisterType(&english{})

		_, ok := r.Typed(reflect.TypeOf((*greeter)(nil)).Elem())
		assert.False(t, ok)
	})

	t.Run("register as interface type", func(t *testing.T) {
		r := New()
		g := &french{}
		r.RegisterAs(reflect.TypeOf((*greeter)(nil)).Elem(), g)

		got, ok := r.Typed(reflect.TypeOf((*greeter)(nil)).Elem())
		require.True(t, ok)
		assert.Same(t, g, got)
	})

	t.Run("nil value is ignored", func(t *testing.T) {
		r := New()
		r.RegisterType(nil)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("types keep registration order", func(t *testing.T) {
		r := New()
		r.RegisterType(&french{})
		r.RegisterType("plain")
		r.RegisterType(&french{})

		assert.Equal(t, []reflect.Type{reflect.TypeOf(&french{}), reflect.TypeOf("")}, r.Types())
	})
}

func TestCatalog(t *testing.T) {
	t.Run("exact match wins over assignable", func(t *testing.T) {
		c := NewCatalog()
		fr := &french{}
		en := &english{}
		c.Add(fr)
		c.Add(en)

		got, ok := c.Find(reflect.TypeOf(en))
		require.True(t, ok)
		assert.Same(t, en, got)
	})

	t.Run("assignable match honors configuration order", func(t *testing.T) {
		c := NewCatalog()
		en := &english{}
		fr := &french{}
		c.Add(en)
		c.Add(fr)

		got, ok := c.Find(reflect.TypeOf((*greeter)(nil)).Elem())
		require.True(t, ok)
		assert.Same(t, en, got)

		c = NewCatalog()
		c.Add(fr)
		c.Add(en)

		got, ok = c.Find(reflect.TypeOf((*greeter)(nil)).Elem())
		require.True(t, ok)
		assert.Same(t, fr, got)
	})

	t.Run("first unit keeps exact slot", func(t *testing.T) {
		c := NewCatalog()
		first := &english{name: "first"}
		c.Add(first)
		c.Add(&english{name: "second"})

		got, ok := c.Exact(reflect.TypeOf(first))
		require.True(t, ok)
		assert.Same(t, first, got)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("not configured", func(t *testing.T) {
		c := NewCatalog()
		c.Add(&french{})

		_, ok := c.Find(reflect.TypeOf(&english{}))
		assert.False(t, ok)
		_, ok = c.Exact(reflect.TypeOf(&english{}))
		assert.False(t, ok)
	})

	t.Run("units returns a copy", func(t *testing.T) {
		c := NewCatalog()
		c.Add(&french{})

		units := c.Units()
		units[0] = nil

		assert.NotNil(t, c.Units()[0])
	})
}
