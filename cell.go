package cellgrid

import (
	"fmt"
	"maps"
	"reflect"
)

// Built-in cell field names. Any other name addresses Cell.Extra.
const (
	FieldIcon    = "icon"
	FieldVisible = "visible"
)

// Fields holds named cell values. It is used both for caller-defined extra
// attributes and for partial updates passed to Set, Show and Hide.
type Fields map[string]any

// Clone returns a shallow copy of f. A nil map clones to an empty one.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	maps.Copy(out, f)
	return out
}

// Cell is the state of one grid position.
type Cell struct {
	// Icon names a registered image. Empty means no icon.
	Icon    string
	Visible bool
	// Extra carries the caller-defined attributes. Every cell of a grid
	// has the same set of keys.
	Extra Fields
}

// Field returns the value of the named field and whether it exists.
func (c Cell) Field(name string) (any, bool) {
	switch name {
	case FieldIcon:
		return c.Icon, true
	case FieldVisible:
		return c.Visible, true
	}
	v, ok := c.Extra[name]
	return v, ok
}

// clone returns a copy that shares no map with c.
func (c Cell) clone() Cell {
	c.Extra = c.Extra.Clone()
	return c
}

// matches reports whether the named field equals any of values.
// A cell without the field never matches.
func (c Cell) matches(name string, values []any) bool {
	v, ok := c.Field(name)
	if !ok {
		return false
	}
	for _, want := range values {
		if reflect.DeepEqual(v, want) {
			return true
		}
	}
	return false
}

// setField writes one field. Extra keys are written as given; the caller
// is responsible for keeping the key set uniform across cells.
func (c *Cell) setField(name string, v any) error {
	switch name {
	case FieldIcon:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %s wants string, got %T", ErrFieldType, name, v)
		}
		c.Icon = s
	case FieldVisible:
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("%w: %s wants bool, got %T", ErrFieldType, name, v)
		}
		c.Visible = b
	default:
		if c.Extra == nil {
			c.Extra = Fields{}
		}
		c.Extra[name] = v
	}
	return nil
}

// checkField validates v for the named field without writing it.
func checkField(name string, v any) error {
	var c Cell
	if name != FieldIcon && name != FieldVisible {
		return nil
	}
	return c.setField(name, v)
}
