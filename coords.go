package cellgrid

import "math"

// Metrics maps between pixel positions and grid indices. Cells are separated
// by one-pixel grid lines, and one more line runs around the outer edge.
type Metrics struct {
	Rows, Cols            int
	CellWidth, CellHeight int
}

// Size returns the pixel size of the whole grid including the border lines.
func (m Metrics) Size() (w, h int) {
	return m.CellWidth*m.Cols + m.Cols + 1, m.CellHeight*m.Rows + m.Rows + 1
}

// CellOrigin returns the top-left pixel of the cell at (row, col).
func (m Metrics) CellOrigin(row, col int) Vec2 {
	return Vec2{
		X: float64(col*(m.CellWidth+1) + 1),
		Y: float64(row*(m.CellHeight+1) + 1),
	}
}

// CellRect returns the pixel rectangle covered by the cell at (row, col).
func (m Metrics) CellRect(row, col int) Rect {
	o := m.CellOrigin(row, col)
	return Rect{X: o.X, Y: o.Y, Width: float64(m.CellWidth), Height: float64(m.CellHeight)}
}

// PixelToCell returns the cell under the surface-relative pixel (x, y).
// An index equal to Rows or Cols, reachable on the outer border line, is
// pulled back onto the last cell. Nothing else is clamped: negative
// coordinates yield negative indices and larger ones run past the grid.
func (m Metrics) PixelToCell(x, y float64) (row, col int) {
	row = int(math.Floor(y / float64(m.CellHeight+1)))
	col = int(math.Floor(x / float64(m.CellWidth+1)))
	if row == m.Rows {
		row = m.Rows - 1
	}
	if col == m.Cols {
		col = m.Cols - 1
	}
	return row, col
}
