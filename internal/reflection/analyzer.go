package reflection

import (
	"fmt"
	"reflect"
	"sync"
)

// Kind classifies a field type as one of the collaborators the world knows
// how to supply without a tag.
type Kind int

const (
	// KindNone is a plain type. It is only wired when explicitly tagged.
	KindNone Kind = iota

	// KindAccessor is a component accessor bound to one component type.
	KindAccessor

	// KindSystem is a processing unit configured in the world.
	KindSystem

	// KindManager is a singleton service configured in the world.
	KindManager
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindAccessor:
		return "Accessor"
	case KindSystem:
		return "System"
	case KindManager:
		return "Manager"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsCollaborator reports whether k is wired implicitly.
func (k Kind) IsCollaborator() bool {
	return k != KindNone
}

// Classifier maps a declared field type to its collaborator kind.
type Classifier func(t reflect.Type) Kind

// Field describes one injectable field of a struct type.
type Field struct {
	// Name of the field as declared
	Name string

	// Type is the declared field type
	Type reflect.Type

	// Owner is the struct type that declares the field.
	// For fields reached through embedding this differs from the analyzed type.
	Owner reflect.Type

	// Index is the path from the analyzed struct to this field, suitable for FieldByIndex
	Index []int

	// Exported is false for lower-case fields, which need an unsafe write
	Exported bool

	Tag  Tag
	Kind Kind
}

// Required reports whether a failed resolution of f is an error.
func (f Field) Required() bool {
	return f.Tag.FailOnNull
}

// Analyzer enumerates the injectable fields of struct types.
// Results are cached per type and shared between callers; treat them as read-only.
type Analyzer struct {
	classify Classifier

	// Embedded types that end the ancestor walk
	stop map[reflect.Type]struct{}

	cache sync.Map // map[reflect.Type][]Field
}

// New creates an Analyzer. Embedded struct types listed in stopAt are not descended into.
func New(classify Classifier, stopAt ...reflect.Type) *Analyzer {
	if classify == nil {
		classify = func(reflect.Type) Kind { return KindNone }
	}

	stop := make(map[reflect.Type]struct{}, len(stopAt))
	for _, t := range stopAt {
		if t == nil {
			continue
		}
		stop[t] = struct{}{}
	}

	return &Analyzer{
		classify: classify,
		stop:     stop,
	}
}

// Fields returns the injectable fields of t, which may be a struct or a pointer to one.
// The walk covers t's own fields and, recursively, those of struct types it embeds by value.
// Embedded pointers are not followed; they are candidates like named fields.
// Any other kind of type has no injectable fields.
func (a *Analyzer) Fields(t reflect.Type) []Field {
	if t == nil {
		return nil
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	if cached, ok := a.cache.Load(t); ok {
		return cached.([]Field)
	}

	fields := make([]Field, 0)
	fields = a.walk(t, nil, fields)

	actual, _ := a.cache.LoadOrStore(t, fields)
	return actual.([]Field)
}

// Classify returns the collaborator kind of t.
func (a *Analyzer) Classify(t reflect.Type) Kind {
	if t == nil {
		return KindNone
	}

	return a.classify(t)
}

// walk appends the injectable fields of the struct type t, whose position
// relative to the analyzed root is prefix.
func (a *Analyzer) walk(t reflect.Type, prefix []int, out []Field) []Field {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := ParseTag(sf.Tag)

		if tag.Ignore {
			continue
		}

		index := make([]int, len(prefix)+1)
		copy(index, prefix)
		index[len(prefix)] = i

		// Structs embedded by value are the ancestor chain. Any other embedded
		// field is a plain field, except a pointer to a stop type.
		if sf.Anonymous {
			if sf.Type.Kind() == reflect.Struct {
				if _, stop := a.stop[sf.Type]; !stop {
					out = a.walk(sf.Type, index, out)
				}
				continue
			}

			if sf.Type.Kind() == reflect.Pointer {
				if _, stop := a.stop[sf.Type.Elem()]; stop {
					continue
				}
			}
		}

		kind := a.classify(sf.Type)
		if !tag.Explicit && !kind.IsCollaborator() {
			continue
		}

		out = append(out, Field{
			Name:     sf.Name,
			Type:     sf.Type,
			Owner:    t,
			Index:    index,
			Exported: sf.IsExported(),
			Tag:      tag,
			Kind:     kind,
		})
	}

	return out
}

// CacheSize returns the number of analyzed types.
func (a *Analyzer) CacheSize() int {
	n := 0
	a.cache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Clear drops every cached analysis.
func (a *Analyzer) Clear() {
	a.cache.Range(func(key, _ any) bool {
		a.cache.Delete(key)
		return true
	})
}
