package registry

import "reflect"

// Registry holds caller-supplied objects in two namespaces: by name and by type.
// A value may be reachable through both. Registering the same key twice
// replaces the earlier value; callers are expected not to do that.
type Registry struct {
	byName map[string]any
	byType map[reflect.Type]any

	// Insertion order of type keys; constructor providers are fed in this order
	typeOrder []reflect.Type
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]any),
		byType: make(map[reflect.Type]any),
	}
}

// Register stores value under name.
func (r *Registry) Register(name string, value any) {
	r.byName[name] = value
}

// RegisterType stores value keyed by its runtime type.
// A nil value is ignored since it carries no type.
func (r *Registry) RegisterType(value any) {
	if value == nil {
		return
	}

	r.RegisterAs(reflect.TypeOf(value), value)
}

// RegisterAs stores value keyed by t. The caller guarantees value is assignable to t.
func (r *Registry) RegisterAs(t reflect.Type, value any) {
	if t == nil {
		return
	}

	if _, exists := r.byType[t]; !exists {
		r.typeOrder = append(r.typeOrder, t)
	}

	r.byType[t] = value
}

// Named returns the value registered under name.
func (r *Registry) Named(name string) (any, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// Typed returns the value registered for exactly t.
func (r *Registry) Typed(t reflect.Type) (any, bool) {
	if t == nil {
		return nil, false
	}

	v, ok := r.byType[t]
	return v, ok
}

// Types returns the registered type keys in registration order.
func (r *Registry) Types() []reflect.Type {
	types := make([]reflect.Type, len(r.typeOrder))
	copy(types, r.typeOrder)
	return types
}

// Len returns the total number of entries across both namespaces.
func (r *Registry) Len() int {
	return len(r.byName) + len(r.byType)
}
