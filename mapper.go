package artemis

import (
	"reflect"
	"strings"
)

// Entity identifies an entity within one world.
type Entity int

// ComponentMapper maps entities to their component of type T.
// A mapper is created once per world and component type; fields of type
// *ComponentMapper[T] are wired with it without a tag.
type ComponentMapper[T any] struct {
	world      *World
	components map[Entity]*T
}

// componentAccessor is implemented by every *ComponentMapper[T]. componentType
// and newAccessor do not touch the receiver, so a typed nil pointer obtained
// from a field type is enough to build the real accessor.
type componentAccessor interface {
	componentType() reflect.Type
	newAccessor(w *World) componentAccessor
	removeEntity(e Entity)
}

var (
	accessorType = reflect.TypeOf((*componentAccessor)(nil)).Elem()
	mapperPkg    = reflect.TypeOf(ComponentMapper[struct{}]{}).PkgPath()
)

// isAccessorType reports whether t is *ComponentMapper[X] for some X. Types
// embedding a mapper also implement componentAccessor, so the method set
// alone is not enough.
func isAccessorType(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Pointer || !t.Implements(accessorType) {
		return false
	}

	e := t.Elem()
	return e.PkgPath() == mapperPkg && strings.HasPrefix(e.Name(), "ComponentMapper[")
}

func (*ComponentMapper[T]) componentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (*ComponentMapper[T]) newAccessor(w *World) componentAccessor {
	return &ComponentMapper[T]{
		world:      w,
		components: make(map[Entity]*T),
	}
}

func (m *ComponentMapper[T]) removeEntity(e Entity) {
	delete(m.components, e)
}

// Get returns the component of e, or nil when e has none.
func (m *ComponentMapper[T]) Get(e Entity) *T {
	return m.components[e]
}

// Has reports whether e has a component of type T.
func (m *ComponentMapper[T]) Has(e Entity) bool {
	_, ok := m.components[e]
	return ok
}

// Create returns the component of e, adding a zero value first if e has none.
func (m *ComponentMapper[T]) Create(e Entity) *T {
	if c, ok := m.components[e]; ok {
		return c
	}

	c := new(T)
	m.components[e] = c
	return c
}

// Set replaces the component of e with c.
func (m *ComponentMapper[T]) Set(e Entity, c T) *T {
	stored := new(T)
	*stored = c
	m.components[e] = stored
	return stored
}

// Remove detaches the component from e.
func (m *ComponentMapper[T]) Remove(e Entity) {
	m.removeEntity(e)
}

// Len returns the number of entities with a component of type T.
func (m *ComponentMapper[T]) Len() int {
	return len(m.components)
}

// Type returns the component type.
func (m *ComponentMapper[T]) Type() reflect.Type {
	return m.componentType()
}

// World returns the world owning the mapper.
func (m *ComponentMapper[T]) World() *World {
	return m.world
}

// GetMapper returns the mapper for T in w, creating it on first use.
// It returns nil once w is closed.
func GetMapper[T any](w *World) *ComponentMapper[T] {
	a, ok := w.accessor(reflect.TypeFor[*ComponentMapper[T]]())
	if !ok {
		return nil
	}
	return a.(*ComponentMapper[T])
}

// accessor returns the cached accessor for an accessor field type.
func (w *World) accessor(fieldType reflect.Type) (any, bool) {
	if w.closed || !isAccessorType(fieldType) {
		return nil, false
	}

	proto, ok := reflect.Zero(fieldType).Interface().(componentAccessor)
	if !ok {
		return nil, false
	}

	ct := proto.componentType()
	if a, ok := w.mappers[ct]; ok {
		return a, true
	}

	a := proto.newAccessor(w)
	w.mappers[ct] = a
	w.mapperOrder = append(w.mapperOrder, ct)

	w.logger.Debug("component mapper created", "world", w.id, "component", ct.String())

	return a, true
}
