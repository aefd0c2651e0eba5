package artemis

import (
	"log/slog"
	"reflect"
	"unsafe"

	"github.com/junioryono/artemis/internal/reflection"
	"github.com/junioryono/artemis/internal/resolver"
)

// SharedWirer is implemented by types whose collaborators live in
// package-level state instead of in each instance. SharedFields returns a
// pointer to that state, a struct whose eligible fields are wired like
// instance fields.
//
// Types embedding an implementation inherit the method, so all of them report
// the same pointer and observe the same wired values. Within one wiring pass
// the state is resolved once, however many units share it.
//
//	var movementShared struct {
//	    positions *artemis.ComponentMapper[Position]
//	}
//
//	func (*MovementSystem) SharedFields() any { return &movementShared }
type SharedWirer interface {
	SharedFields() any
}

// analyzer is shared by every world; field layouts depend only on types.
var analyzer = reflection.New(classify, reflect.TypeOf(BaseSystem{}), reflect.TypeOf(Manager{}))

// classify maps a field type to the collaborator kind wired without a tag.
func classify(t reflect.Type) reflection.Kind {
	switch {
	case isAccessorType(t):
		return reflection.KindAccessor
	case t.Implements(managerType):
		return reflection.KindManager
	case t.Implements(systemType):
		return reflection.KindSystem
	default:
		return reflection.KindNone
	}
}

// injector wires targets against one world.
type injector struct {
	world  *World
	binder *resolver.Binder
	logger *slog.Logger
}

func newInjector(w *World) *injector {
	return &injector{
		world:  w,
		binder: resolver.New(worldSource{w: w}),
		logger: w.logger,
	}
}

// pass is one wiring run. World construction wires every unit in a single
// pass; each Inject call gets its own.
type pass struct {
	*injector

	// Shared states already wired in this pass, keyed by address
	shared map[uintptr]struct{}
}

func (i *injector) newPass() *pass {
	return &pass{
		injector: i,
		shared:   make(map[uintptr]struct{}),
	}
}

// assignment is a resolved value waiting to be written.
type assignment struct {
	slot  reflect.Value
	field reflection.Field
	value reflect.Value
}

// inject resolves every eligible field of target, then writes them. In strict
// mode a required field that fails aborts before anything is written. In
// lenient mode failures are only logged.
func (p *pass) inject(target any, strict bool) error {
	if target == nil {
		return nil
	}

	val := reflect.ValueOf(target)
	typ := val.Type()

	fields := analyzer.Fields(typ)
	writable := typ.Kind() == reflect.Pointer && !val.IsNil() && typ.Elem().Kind() == reflect.Struct

	if !writable {
		if len(fields) > 0 || (typ.Kind() == reflect.Pointer && val.IsNil()) {
			if strict {
				return InvalidTargetError{Type: typ}
			}
		}
		return nil
	}

	plan, err := p.resolve(typ, val.Elem(), fields, strict)
	if err != nil {
		return err
	}

	var sharedKey uintptr
	if sw, ok := target.(SharedWirer); ok {
		sharedPlan, key, err := p.resolveShared(typ, sw, strict)
		if err != nil {
			return err
		}
		plan = append(plan, sharedPlan...)
		sharedKey = key
	}

	for _, a := range plan {
		a.slot.Set(a.value)

		p.logger.Debug("field wired",
			"world", p.world.id,
			"target", typ.String(),
			"field", a.field.Name,
			"type", a.field.Type.String(),
		)
	}

	if sharedKey != 0 {
		p.shared[sharedKey] = struct{}{}
	}

	return nil
}

// resolveShared plans the shared state of target unless this pass already wired it.
func (p *pass) resolveShared(target reflect.Type, sw SharedWirer, strict bool) ([]assignment, uintptr, error) {
	state := reflect.ValueOf(sw.SharedFields())
	if !state.IsValid() || state.Kind() != reflect.Pointer || state.IsNil() || state.Elem().Kind() != reflect.Struct {
		return nil, 0, nil
	}

	key := state.Pointer()
	if _, done := p.shared[key]; done {
		return nil, 0, nil
	}

	plan, err := p.resolve(target, state.Elem(), analyzer.Fields(state.Type()), strict)
	if err != nil {
		return nil, 0, err
	}

	return plan, key, nil
}

// resolve binds fields of the addressable struct root.
func (p *pass) resolve(target reflect.Type, root reflect.Value, fields []reflection.Field, strict bool) ([]assignment, error) {
	plan := make([]assignment, 0, len(fields))

	for _, f := range fields {
		v, err := p.binder.Bind(target, f)
		if err != nil {
			if strict && f.Required() {
				return nil, err
			}

			p.logger.Debug("field left unset",
				"world", p.world.id,
				"target", target.String(),
				"field", f.Name,
				"error", err,
			)
			continue
		}

		plan = append(plan, assignment{
			slot:  settable(root.FieldByIndex(f.Index)),
			field: f,
			value: v,
		})
	}

	return plan, nil
}

// settable returns a writable view of an addressable field, including unexported ones.
func settable(field reflect.Value) reflect.Value {
	if field.CanSet() {
		return field
	}

	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
}

// worldSource exposes a world to the binder.
type worldSource struct {
	w *World
}

func (s worldSource) Named(name string) (any, bool) {
	return s.w.registry.Named(name)
}

func (s worldSource) Typed(t reflect.Type) (any, bool) {
	return s.w.registry.Typed(t)
}

func (s worldSource) Accessor(t reflect.Type) (any, bool) {
	return s.w.accessor(t)
}

func (s worldSource) Unit(t reflect.Type) (any, bool) {
	return s.w.catalog.Find(t)
}
