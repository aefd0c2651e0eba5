package registry

import "reflect"

// Catalog is the ordered set of systems and managers configured in a world.
// It is independent of Registry: a unit is added here as the configuration
// declares it, and lookups honor that order.
type Catalog struct {
	units  []any
	byType map[reflect.Type]any
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byType: make(map[reflect.Type]any),
	}
}

// Add appends unit to the catalog. When two units share a concrete type the
// first one keeps the exact-type slot.
func (c *Catalog) Add(unit any) {
	if unit == nil {
		return
	}

	c.units = append(c.units, unit)

	t := reflect.TypeOf(unit)
	if _, exists := c.byType[t]; !exists {
		c.byType[t] = unit
	}
}

// Exact returns the unit whose concrete type is t.
func (c *Catalog) Exact(t reflect.Type) (any, bool) {
	if t == nil {
		return nil, false
	}

	u, ok := c.byType[t]
	return u, ok
}

// Assignable returns the first unit, in configuration order, whose concrete
// type is assignable to t.
func (c *Catalog) Assignable(t reflect.Type) (any, bool) {
	if t == nil {
		return nil, false
	}

	for _, u := range c.units {
		if reflect.TypeOf(u).AssignableTo(t) {
			return u, true
		}
	}

	return nil, false
}

// Find prefers an exact type match and falls back to Assignable.
func (c *Catalog) Find(t reflect.Type) (any, bool) {
	if u, ok := c.Exact(t); ok {
		return u, true
	}

	return c.Assignable(t)
}

// Units returns the configured units in configuration order.
func (c *Catalog) Units() []any {
	units := make([]any, len(c.units))
	copy(units, c.units)
	return units
}

// Len returns the number of configured units.
func (c *Catalog) Len() int {
	return len(c.units)
}
