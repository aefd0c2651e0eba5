package resolver

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/artemis/internal/reflection"
)

type mover interface{ Move() }

type walker struct{ id int }

func (*walker) Move() {}

type runner struct{ id int }

func (*runner) Move() {}

type position struct{ x, y float32 }

type positionAccessor struct{ component reflect.Type }

type database struct{ dsn string }

type owner struct{}

// fakeSource is an in-memory Source with counters for the accessor path.
type fakeSource struct {
	named     map[string]any
	typed     map[reflect.Type]any
	units     []any
	accessors map[reflect.Type]any
	created   int
	closed    bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		named:     map[string]any{},
		typed:     map[reflect.Type]any{},
		accessors: map[reflect.Type]any{},
	}
}

func (s *fakeSource) Named(name string) (any, bool) {
	v, ok := s.named[name]
	return v, ok
}

func (s *fakeSource) Typed(t reflect.Type) (any, bool) {
	v, ok := s.typed[t]
	return v, ok
}

func (s *fakeSource) Accessor(t reflect.Type) (any, bool) {
	if s.closed {
		return nil, false
	}
	if a, ok := s.accessors[t]; ok {
		return a, true
	}
	s.created++
	a := &positionAccessor{component: reflect.TypeOf(position{})}
	s.accessors[t] = a
	return a, true
}

func (s *fakeSource) Unit(t reflect.Type) (any, bool) {
	for _, u := range s.units {
		if reflect.TypeOf(u) == t {
			return u, true
		}
	}
	for _, u := range s.units {
		if reflect.TypeOf(u).AssignableTo(t) {
			return u, true
		}
	}
	return nil, false
}

func field(name string, t reflect.Type, kind reflection.Kind, tag reflection.Tag) reflection.Field {
	return reflection.Field{
		Name:  name,
		Type:  t,
		Owner: reflect.TypeOf(owner{}),
		Index: []int{0},
		Tag:   tag,
		Kind:  kind,
	}
}

var (
	required = reflection.Tag{FailOnNull: true}
	target   = reflect.TypeOf(&owner{})
)

func TestBinderNamed(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		src := newFakeSource()
		db := &database{dsn: "mem"}
		src.named["primary"] = db

		f := field("db", reflect.TypeOf(db), reflection.KindNone, reflection.Tag{Explicit: true, Name: "primary", FailOnNull: true})
		v, err := New(src).Bind(target, f)
		require.NoError(t, err)
		assert.Same(t, db, v.Interface())
	})

	t.Run("name wins over kind", func(t *testing.T) {
		src := newFakeSource()
		named := &walker{id: 1}
		src.named["w"] = named
		src.units = []any{&walker{id: 2}}

		f := field("w", reflect.TypeOf(named), reflection.KindSystem, reflection.Tag{Explicit: true, Name: "w", FailOnNull: true})
		v, err := New(src).Bind(target, f)
		require.NoError(t, err)
		assert.Same(t, named, v.Interface())
	})

	t.Run("missing name does not fall back to type", func(t *testing.T) {
		src := newFakeSource()
		src.typed[reflect.TypeOf(&database{})] = &database{}

		f := field("db", reflect.TypeOf(&database{}), reflection.KindNone, reflection.Tag{Explicit: true, Name: "nope", FailOnNull: true})
		_, err := New(src).Bind(target, f)

		var rerr *ResolutionError
		require.True(t, errors.As(err, &rerr))
		assert.True(t, rerr.ByName)
		assert.Equal(t, "nope", rerr.Key)
		assert.Equal(t, "db", rerr.Field)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), `by name "nope"`)
	})

	t.Run("wrong type", func(t *testing.T) {
		src := newFakeSource()
		src.named["greeting"] = 42

		f := field("greeting", reflect.TypeOf(""), reflection.KindNone, reflection.Tag{Explicit: true, Name: "greeting", FailOnNull: true})
		_, err := New(src).Bind(target, f)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Contains(t, err.Error(), "found int")
	})

	t.Run("interface field from named value", func(t *testing.T) {
		src := newFakeSource()
		w := &walker{}
		src.named["mover"] = w

		f := field("m", reflect.TypeOf((*mover)(nil)).Elem(), reflection.KindNone, reflection.Tag{Explicit: true, Name: "mover", FailOnNull: true})
		v, err := New(src).Bind(target, f)
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeOf((*mover)(nil)).Elem(), v.Type())
		assert.Same(t, w, v.Interface())
	})
}

func TestBinderAccessor(t *testing.T) {
	src := newFakeSource()
	b := New(src)
	accessorType := reflect.TypeOf(&positionAccessor{})
	f := field("positions", accessorType, reflection.KindAccessor, required)

	first, err := b.Bind(target, f)
	require.NoError(t, err)
	second, err := b.Bind(target, f)
	require.NoError(t, err)

	assert.Same(t, first.Interface(), second.Interface())
	assert.Equal(t, 1, src.created)

	src.closed = true
	src.accessors = map[reflect.Type]any{}
	_, err = b.Bind(target, f)
	assert.ErrorIs(t, err, ErrAccessorUnavailable)
}

func TestBinderUnits(t *testing.T) {
	t.Run("exact match preferred", func(t *testing.T) {
		src := newFakeSource()
		r := &runner{}
		w := &walker{}
		src.units = []any{r, w}

		v, err := New(src).Bind(target, field("w", reflect.TypeOf(w), reflection.KindSystem, required))
		require.NoError(t, err)
		assert.Same(t, w, v.Interface())
	})

	t.Run("first assignable in configuration order", func(t *testing.T) {
		src := newFakeSource()
		r := &runner{}
		w := &walker{}
		src.units = []any{r, w}

		moverType := reflect.TypeOf((*mover)(nil)).Elem()
		v, err := New(src).Bind(target, field("m", moverType, reflection.KindSystem, required))
		require.NoError(t, err)
		assert.Same(t, r, v.Interface())
	})

	t.Run("not configured", func(t *testing.T) {
		src := newFakeSource()

		_, err := New(src).Bind(target, field("w", reflect.TypeOf(&walker{}), reflection.KindManager, required))

		var rerr *ResolutionError
		require.True(t, errors.As(err, &rerr))
		assert.False(t, rerr.ByName)
		assert.Equal(t, reflect.TypeOf(&walker{}), rerr.Key)
		assert.Equal(t, reflection.KindManager, rerr.Kind)
		assert.Contains(t, err.Error(), "by type *resolver.walker")
	})
}

func TestBinderTyped(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		src := newFakeSource()
		db := &database{}
		src.typed[reflect.TypeOf(db)] = db

		v, err := New(src).Bind(target, field("db", reflect.TypeOf(db), reflection.KindNone, reflection.Tag{Explicit: true, FailOnNull: true}))
		require.NoError(t, err)
		assert.Same(t, db, v.Interface())
	})

	t.Run("string entry", func(t *testing.T) {
		src := newFakeSource()
		src.typed[reflect.TypeOf("")] = "world"

		v, err := New(src).Bind(target, field("hello", reflect.TypeOf(""), reflection.KindNone, reflection.Tag{Explicit: true, FailOnNull: true}))
		require.NoError(t, err)
		assert.Equal(t, "world", v.String())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := New(newFakeSource()).Bind(target, field("db", reflect.TypeOf(&database{}), reflection.KindNone, reflection.Tag{Explicit: true}))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nil entry counts as missing", func(t *testing.T) {
		src := newFakeSource()
		src.named["nothing"] = nil

		_, err := New(src).Bind(target, field("db", reflect.TypeOf(&database{}), reflection.KindNone, reflection.Tag{Explicit: true, Name: "nothing"}))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResolutionErrorMessage(t *testing.T) {
	err := &ResolutionError{
		Target:    reflect.TypeOf(&walker{}),
		Owner:     reflect.TypeOf(owner{}),
		Field:     "db",
		FieldType: reflect.TypeOf(&database{}),
		Key:       reflect.TypeOf(&database{}),
		Cause:     ErrNotFound,
	}

	assert.Equal(t, "failed to wire owner.db (*resolver.database) in walker: by type *resolver.database: no matching value", err.Error())
	assert.Equal(t, ErrNotFound, errors.Unwrap(err))
}
