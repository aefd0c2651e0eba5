package artemis

import (
	"errors"
	"log/slog"
	"reflect"
)

// WorldConfiguration collects the systems, managers and registry entries a
// world is built from. Methods return the configuration for chaining; any
// problem is recorded and reported by NewWorld.
//
//	cfg := artemis.NewWorldConfiguration().
//	    SetSystem(&artemis.TagManager{}).
//	    SetSystem(&MovementSystem{}).
//	    Register(&Database{}).
//	    RegisterNamed("greeting", "hello")
//
//	world, err := artemis.NewWorld(cfg)
type WorldConfiguration struct {
	systems      []System
	entries      []registration
	constructors []any
	logger       *slog.Logger
	errs         []error
}

// registration is one pending registry entry, applied in configuration order.
type registration struct {
	name  string
	value any
}

// NewWorldConfiguration creates an empty configuration.
func NewWorldConfiguration() *WorldConfiguration {
	return &WorldConfiguration{}
}

// SetSystem adds a system or manager instance. Units are wired, initialized and
// processed in the order they are added.
func (c *WorldConfiguration) SetSystem(s System) *WorldConfiguration {
	if s == nil || isNilPointer(s) {
		c.errs = append(c.errs, ConfigurationError{Source: "system", Cause: ErrSystemNil})
		return c
	}

	c.systems = append(c.systems, s)
	return c
}

// SetSystemType adds a zero-valued instance of t, which must be a pointer to a
// struct implementing System.
func (c *WorldConfiguration) SetSystemType(t reflect.Type) *WorldConfiguration {
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct || !t.Implements(systemType) {
		c.errs = append(c.errs, ConfigurationError{Source: "system", Cause: InvalidSystemTypeError{Type: t}})
		return c
	}

	return c.SetSystem(reflect.New(t.Elem()).Interface().(System))
}

// AddSystem adds a zero-valued T as a system.
//
//	artemis.AddSystem[artemis.TagManager](cfg)
func AddSystem[T any, P interface {
	*T
	System
}](c *WorldConfiguration) *WorldConfiguration {
	return c.SetSystem(P(new(T)))
}

// Register stores value in the registry keyed by its runtime type.
func (c *WorldConfiguration) Register(value any) *WorldConfiguration {
	if value == nil {
		c.errs = append(c.errs, ConfigurationError{Source: "register", Cause: errors.New("cannot register nil by type")})
		return c
	}

	c.entries = append(c.entries, registration{value: value})
	return c
}

// RegisterNamed stores value in the registry under name.
func (c *WorldConfiguration) RegisterNamed(name string, value any) *WorldConfiguration {
	if name == "" {
		c.errs = append(c.errs, ConfigurationError{Source: "register", Cause: ErrNameEmpty})
		return c
	}

	c.entries = append(c.entries, registration{name: name, value: value})
	return c
}

// Provide adds a constructor whose results are registered by their declared
// type when the world is built. Parameters are satisfied from typed registry
// entries, configured units and other constructors.
//
//	cfg.Provide(func(db *Database) *UserRepository { ... })
func (c *WorldConfiguration) Provide(constructor any) *WorldConfiguration {
	if constructor == nil {
		c.errs = append(c.errs, ConfigurationError{Source: "provide", Cause: errors.New("constructor cannot be nil")})
		return c
	}

	c.constructors = append(c.constructors, constructor)
	return c
}

// SetLogger sets the logger used by the world. The default discards everything.
func (c *WorldConfiguration) SetLogger(logger *slog.Logger) *WorldConfiguration {
	c.logger = logger
	return c
}

// Systems returns the configured units in configuration order.
func (c *WorldConfiguration) Systems() []System {
	systems := make([]System, len(c.systems))
	copy(systems, c.systems)
	return systems
}

// Err returns every problem recorded so far, joined.
func (c *WorldConfiguration) Err() error {
	return errors.Join(c.errs...)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
