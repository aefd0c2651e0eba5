package reflection

import "reflect"

// Tag is the wiring metadata of one field.
//
// Supported struct tags:
//   - `wire:"true"` (or `wire:""`) marks the field for wiring
//   - `wire:"-"` (or `wire:"false"`) excludes the field, collaborators included
//   - `name:"key"` resolves the field from the named registry entry
//   - `optional:"true"` leaves the field at its zero value when unresolved
//
// Both name and optional imply an explicit tag.
type Tag struct {
	Explicit   bool
	Name       string
	FailOnNull bool
	Ignore     bool
}

// HasName reports whether the tag selects a registry entry by name.
func (t Tag) HasName() bool {
	return t.Name != ""
}

// ParseTag derives the wiring metadata from a struct tag.
func ParseTag(tag reflect.StructTag) Tag {
	info := Tag{FailOnNull: true}

	if val, ok := tag.Lookup("wire"); ok {
		if val == "-" || val == "false" {
			info.Ignore = true
			return info
		}
		info.Explicit = true
	}

	if val, ok := tag.Lookup("name"); ok && val != "" {
		info.Name = val
		info.Explicit = true
	}

	if val, ok := tag.Lookup("optional"); ok {
		info.Explicit = true
		info.FailOnNull = val != "true"
	}

	return info
}
