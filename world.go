package artemis

import (
	"errors"
	"log/slog"
	"reflect"

	"github.com/google/uuid"

	"github.com/junioryono/artemis/internal/registry"
)

// World owns the registry, the configured units and the entities they process.
// A World is not safe for concurrent use.
type World struct {
	id string

	registry *registry.Registry
	catalog  *registry.Catalog
	systems  []System

	// Component mappers keyed by component type
	mappers     map[reflect.Type]componentAccessor
	mapperOrder []reflect.Type

	injector *injector
	logger   *slog.Logger

	nextEntity Entity
	alive      map[Entity]struct{}
	delta      float32

	closed bool
}

// NewWorld builds a world from cfg. Registry entries and constructor providers
// are applied first, then every configured unit is wired in configuration
// order and finally initialized in the same order.
//
// Wiring is strict: a unit with a required field that cannot be resolved makes
// NewWorld fail and no world is returned.
func NewWorld(cfg *WorldConfiguration) (*World, error) {
	if cfg == nil {
		return nil, ErrConfigurationNil
	}

	if err := cfg.Err(); err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w := &World{
		id:       uuid.NewString(),
		registry: registry.New(),
		catalog:  registry.NewCatalog(),
		mappers:  make(map[reflect.Type]componentAccessor),
		alive:    make(map[Entity]struct{}),
		logger:   logger,
	}
	w.injector = newInjector(w)

	for _, e := range cfg.entries {
		if e.name != "" {
			w.registry.Register(e.name, e.value)
		} else {
			w.registry.RegisterType(e.value)
		}
	}

	for _, s := range cfg.systems {
		s.base().world = w
		w.systems = append(w.systems, s)
		w.catalog.Add(s)
	}

	if err := w.provide(cfg.constructors); err != nil {
		return nil, err
	}

	p := w.injector.newPass()
	for i, s := range w.systems {
		if err := p.inject(s, true); err != nil {
			logger.Error("world construction failed", "world", w.id, "system", reflect.TypeOf(s).String(), "error", err)
			return nil, WireError{Unit: reflect.TypeOf(s), Index: i, Cause: err}
		}
	}

	for _, s := range w.systems {
		s.Initialize()
	}

	logger.Info("world created",
		"world", w.id,
		"systems", w.catalog.Len(),
		"registered", w.registry.Len(),
	)

	return w, nil
}

// ID returns the unique identifier of the world.
func (w *World) ID() string {
	return w.id
}

// Inject wires target against this world. Every eligible field of target and
// of the structs it embeds is resolved; a required field that cannot be
// resolved fails the call and leaves target untouched.
//
// target must be a non-nil pointer to a struct when it has anything to wire.
// Values without eligible fields are accepted and left as they are.
func (w *World) Inject(target any) error {
	if w.closed {
		return ErrWorldClosed
	}

	return w.injector.newPass().inject(target, true)
}

// TryInject wires target on a best-effort basis: fields that cannot be
// resolved are skipped, whatever their tags say.
func (w *World) TryInject(target any) {
	if w.closed {
		return
	}

	_ = w.injector.newPass().inject(target, false)
}

// Systems returns the configured units in configuration order.
func (w *World) Systems() []System {
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	return systems
}

// GetSystem returns the configured unit of type T, preferring an exact type
// match over the first assignable unit.
func GetSystem[T any](w *World) (T, bool) {
	var zero T

	u, ok := w.catalog.Find(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}

	s, ok := u.(T)
	return s, ok
}

// CreateEntity returns a new entity id.
func (w *World) CreateEntity() Entity {
	w.nextEntity++
	e := w.nextEntity
	w.alive[e] = struct{}{}
	return e
}

// IsAlive reports whether e was created and not yet deleted.
func (w *World) IsAlive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// DeleteEntity removes e and its components, and notifies units implementing EntityObserver.
func (w *World) DeleteEntity(e Entity) {
	if _, ok := w.alive[e]; !ok {
		return
	}

	delete(w.alive, e)

	for _, ct := range w.mapperOrder {
		w.mappers[ct].removeEntity(e)
	}

	for _, s := range w.systems {
		if o, ok := s.(EntityObserver); ok {
			o.Deleted(e)
		}
	}
}

// SetDelta sets the time elapsed since the previous Process call.
func (w *World) SetDelta(delta float32) {
	w.delta = delta
}

// Delta returns the value set by SetDelta.
func (w *World) Delta() float32 {
	return w.delta
}

// Process runs every enabled, non-passive system once, in configuration order.
// Managers are never processed.
func (w *World) Process() {
	if w.closed {
		return
	}

	for _, s := range w.systems {
		if isActive(s) {
			s.ProcessSystem()
		}
	}
}

// Close disposes units implementing Disposable in reverse configuration order.
// The world cannot be used afterwards. Calling Close more than once is a no-op.
func (w *World) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	var errs []error
	for i := len(w.systems) - 1; i >= 0; i-- {
		d, ok := w.systems[i].(Disposable)
		if !ok {
			continue
		}

		if err := d.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	w.mappers = make(map[reflect.Type]componentAccessor)
	w.mapperOrder = nil

	w.logger.Info("world closed", "world", w.id)

	return errors.Join(errs...)
}
