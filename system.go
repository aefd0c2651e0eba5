package artemis

import "reflect"

// System is a unit configured into a world. Implementations embed BaseSystem
// (processing units) or Manager (singleton services) to satisfy it.
//
//	type MovementSystem struct {
//	    artemis.BaseSystem
//
//	    positions  *artemis.ComponentMapper[Position]
//	    velocities *artemis.ComponentMapper[Velocity]
//	    tags       *artemis.TagManager
//	}
//
//	func (s *MovementSystem) ProcessSystem() { ... }
//
// Every field whose type is a component mapper, a configured system or a
// configured manager is wired when the world is built.
type System interface {
	// Initialize runs once, after every configured unit has been wired.
	Initialize()

	// ProcessSystem runs once per World.Process for enabled, active systems.
	ProcessSystem()

	base() *BaseSystem
}

// managerUnit is implemented by types embedding Manager.
type managerUnit interface {
	System
	manager() *Manager
}

// Disposable is implemented by units that release resources when the world closes.
type Disposable interface {
	Close() error
}

// EntityObserver is implemented by units that track entity deletion.
type EntityObserver interface {
	Deleted(e Entity)
}

var (
	systemType  = reflect.TypeOf((*System)(nil)).Elem()
	managerType = reflect.TypeOf((*managerUnit)(nil)).Elem()
)

// BaseSystem carries the state shared by every system.
// It is the end of the embedding chain walked when wiring.
type BaseSystem struct {
	world    *World
	disabled bool
	passive  bool
}

func (s *BaseSystem) base() *BaseSystem { return s }

// World returns the world the system is configured in, or nil before construction.
func (s *BaseSystem) World() *World {
	return s.world
}

// Initialize is a no-op default.
func (s *BaseSystem) Initialize() {}

// ProcessSystem is a no-op default.
func (s *BaseSystem) ProcessSystem() {}

// IsEnabled reports whether the system takes part in World.Process.
func (s *BaseSystem) IsEnabled() bool {
	return !s.disabled
}

// SetEnabled toggles participation in World.Process.
func (s *BaseSystem) SetEnabled(enabled bool) {
	s.disabled = !enabled
}

// IsPassive reports whether the system is skipped by World.Process while staying wired.
func (s *BaseSystem) IsPassive() bool {
	return s.passive
}

// SetPassive marks the system as passive.
func (s *BaseSystem) SetPassive(passive bool) {
	s.passive = passive
}

// Manager is embedded by singleton services. Managers are wired like systems
// but never processed.
type Manager struct {
	BaseSystem
}

func (m *Manager) manager() *Manager { return m }

// IsPassive always reports true for managers.
func (m *Manager) IsPassive() bool {
	return true
}

func isActive(s System) bool {
	if _, ok := s.(managerUnit); ok {
		return false
	}

	b := s.base()
	return b.IsEnabled() && !b.IsPassive()
}
