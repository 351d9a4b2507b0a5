package cellgrid

import "github.com/hajimehoshi/ebiten/v2"

var cursorShapes = map[string]ebiten.CursorShapeType{
	"auto":        ebiten.CursorShapeDefault,
	"default":     ebiten.CursorShapeDefault,
	"pointer":     ebiten.CursorShapePointer,
	"text":        ebiten.CursorShapeText,
	"crosshair":   ebiten.CursorShapeCrosshair,
	"move":        ebiten.CursorShapeMove,
	"grab":        ebiten.CursorShapeMove,
	"not-allowed": ebiten.CursorShapeNotAllowed,
	"ew-resize":   ebiten.CursorShapeEWResize,
	"ns-resize":   ebiten.CursorShapeNSResize,
}

// Cursor sets the pointer cursor shown over the surface. Names follow CSS:
// auto, default, pointer, text, crosshair, move, grab, not-allowed,
// ew-resize and ns-resize. Unknown names show the default cursor.
func (g *Grid) Cursor(name string) *Grid {
	shape, ok := cursorShapes[name]
	if !ok {
		g.log.warnf("unknown cursor %q, using default", name)
		shape = ebiten.CursorShapeDefault
	}
	g.cursor = name
	g.surface.SetCursor(shape)
	return g
}

// CursorName returns the name last passed to Cursor.
func (g *Grid) CursorName() string { return g.cursor }
