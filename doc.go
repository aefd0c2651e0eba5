// Package artemis is an entity-component-system runtime whose worlds wire
// their systems together at construction time.
//
// # Overview
//
// A world is built from one WorldConfiguration listing its systems, its
// managers and any business objects the application wants to share. While the
// world is constructed every configured unit has its collaborator fields
// populated, so systems never look each other up by hand:
//
//	type MovementSystem struct {
//	    artemis.BaseSystem
//
//	    positions  *artemis.ComponentMapper[Position]
//	    velocities *artemis.ComponentMapper[Velocity]
//	    tags       *artemis.TagManager
//	    clock      *Clock `wire:"true"`
//	}
//
//	cfg := artemis.NewWorldConfiguration().
//	    SetSystem(&artemis.TagManager{}).
//	    SetSystem(&MovementSystem{}).
//	    Register(NewClock())
//
//	world, err := artemis.NewWorld(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # What Gets Wired
//
// Fields of three kinds are wired without any tag:
//   - *ComponentMapper[T]: the world's mapper for component T
//   - a pointer to a configured system, or an interface embedding System
//   - a pointer to a configured manager
//
// Any other field is wired only when tagged:
//   - `wire:"true"` resolves the field from the registry by its declared type
//   - `name:"key"` resolves the field from the registry entry named key
//   - `optional:"true"` leaves the field at its zero value when nothing matches
//   - `wire:"-"` or `wire:"false"` excludes the field
//
// Fields of structs embedded by value are wired too, so a base struct shared by
// several systems declares its collaborators once. An embedded pointer such as
// *TagManager is wired like any other field. Exported and unexported fields are
// treated alike.
//
// # Resolution Order
//
// A named field is looked up by name only. A mapper field always resolves. A
// system or manager field prefers the unit whose concrete type equals the field
// type, then the first configured unit assignable to it. Any other field is
// looked up by exact type in the registry.
//
// # Shared State
//
// Types implementing SharedWirer expose package-level collaborators that are
// wired once per pass and seen by every type embedding the implementation.
//
// # Errors
//
// World construction is all or nothing: a required field that cannot be
// resolved aborts NewWorld with a WireError wrapping a *ResolutionError.
// World.Inject applies the same rule to ad hoc objects, while World.TryInject
// skips whatever cannot be resolved.
//
// # Thread Safety
//
// Worlds are single-threaded. Wiring writes package-level state through
// SharedWirer, so only one world should be wiring at a time.
package artemis
