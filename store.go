package cellgrid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Match is a cell returned by Store.Find together with its position.
type Match struct {
	Row, Col int
	Cell     Cell
}

// Store is the 2D array of cell records backing a grid. It holds pure data
// and never draws. Cells are stored row-major and mutated in place.
type Store struct {
	rows, cols int
	cells      []Cell
	schema     mapset.Set[string] // extra field names present on every cell
	log        *debugLogger
}

// NewStore creates a rows×cols store of hidden, icon-less cells. Each cell
// receives its own copy of extra.
func NewStore(rows, cols int, extra Fields) *Store {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	s := &Store{
		rows:   rows,
		cols:   cols,
		cells:  make([]Cell, rows*cols),
		schema: mapset.New[string](),
	}
	for k := range extra {
		if k == FieldIcon || k == FieldVisible {
			continue
		}
		s.schema.Put(k)
	}
	for i := range s.cells {
		c := Cell{Extra: Fields{}}
		for k, v := range extra {
			// Built-in names in extra act as initial values.
			_ = c.setField(k, v)
		}
		s.cells[i] = c
	}
	return s
}

// Rows returns the number of rows.
func (s *Store) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Store) Cols() int { return s.cols }

// InBounds reports whether (row, col) addresses a cell.
func (s *Store) InBounds(row, col int) bool {
	return row >= 0 && row < s.rows && col >= 0 && col < s.cols
}

func (s *Store) index(row, col int) int { return row*s.cols + col }

// Get returns a copy of the cell at (row, col), or ErrOutOfRange.
func (s *Store) Get(row, col int) (Cell, error) {
	if !s.InBounds(row, col) {
		return Cell{}, fmt.Errorf("get (%d, %d) in %dx%d: %w", row, col, s.rows, s.cols, ErrOutOfRange)
	}
	return s.cells[s.index(row, col)].clone(), nil
}

// Set merges patch into the cell at (row, col) and returns the updated cell.
// Keys not in patch are left untouched. The patch is validated as a whole
// before anything is written.
func (s *Store) Set(row, col int, patch Fields) (Cell, error) {
	if !s.InBounds(row, col) {
		return Cell{}, fmt.Errorf("set (%d, %d) in %dx%d: %w", row, col, s.rows, s.cols, ErrOutOfRange)
	}
	for k, v := range patch {
		if err := checkField(k, v); err != nil {
			return Cell{}, err
		}
		if k != FieldIcon && k != FieldVisible && !s.schema.Has(k) {
			return Cell{}, fmt.Errorf("%w: %q", ErrUnknownField, k)
		}
	}
	c := &s.cells[s.index(row, col)]
	for k, v := range patch {
		_ = c.setField(k, v)
	}
	return c.clone(), nil
}

// setVisible flips the visible flag without going through patch validation.
func (s *Store) setVisible(row, col int, visible bool) {
	if s.InBounds(row, col) {
		s.cells[s.index(row, col)].Visible = visible
	}
}

// Count returns the number of cells whose field equals any of values.
func (s *Store) Count(field string, values ...any) int {
	n := 0
	for i := range s.cells {
		if s.cells[i].matches(field, values) {
			n++
		}
	}
	return n
}

// Find returns every cell whose field equals any of values, in row-major
// order. The returned cells are copies.
func (s *Store) Find(field string, values ...any) []Match {
	var out []Match
	for i := range s.cells {
		if s.cells[i].matches(field, values) {
			out = append(out, Match{
				Row:  i / s.cols,
				Col:  i % s.cols,
				Cell: s.cells[i].clone(),
			})
		}
	}
	return out
}

// Apply sets field to value on every cell. A new extra field is added to
// every cell. A value of the wrong type for a built-in field is ignored.
func (s *Store) Apply(field string, value any) *Store {
	if err := checkField(field, value); err != nil {
		s.log.warnf("apply %s: %v", field, err)
		return s
	}
	if field != FieldIcon && field != FieldVisible {
		s.schema.Put(field)
	}
	for i := range s.cells {
		_ = s.cells[i].setField(field, value)
	}
	return s
}

// ApplyWhere sets field to value on the cells whose filterField equals any
// of filterValues. Setting a field outside the schema is refused, because
// it would leave the unmatched cells without it.
func (s *Store) ApplyWhere(field string, value any, filterField string, filterValues ...any) *Store {
	if err := checkField(field, value); err != nil {
		s.log.warnf("apply %s: %v", field, err)
		return s
	}
	if field != FieldIcon && field != FieldVisible && !s.schema.Has(field) {
		s.log.warnf("apply %s: %v", field, ErrUnknownField)
		return s
	}
	for i := range s.cells {
		if s.cells[i].matches(filterField, filterValues) {
			_ = s.cells[i].setField(field, value)
		}
	}
	return s
}

// FieldNames returns the extra field names every cell carries.
func (s *Store) FieldNames() []string {
	names := make([]string, 0, s.schema.Size())
	s.schema.Each(func(k string) { names = append(names, k) })
	return names
}
