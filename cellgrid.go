package cellgrid

import (
	"errors"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default cell background.
var ColorWhite = Color{1, 1, 1, 1}

// ColorGridLine is the color painted under the cells. It shows through the
// one-pixel gaps between them.
var ColorGridLine = Color{0x88 / 255.0, 0x88 / 255.0, 0x88 / 255.0, 1}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	a := clamp(c.A)
	return color.RGBA{
		R: uint8(clamp(c.R)*a*255 + 0.5),
		G: uint8(clamp(c.G)*a*255 + 0.5),
		B: uint8(clamp(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D pixel position.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Action identifies the kind of pointer interaction carried by an Event.
type Action uint8

const (
	ActionMove       Action = iota // pointer moved over the surface
	ActionClick                    // primary button clicked
	ActionRightClick               // secondary button clicked
)

// String returns the action name used in events and test scripts.
func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionClick:
		return "click"
	case ActionRightClick:
		return "rightClick"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidSurface is returned by New when the drawing surface is
	// missing or cannot be drawn on.
	ErrInvalidSurface = errors.New("cellgrid: invalid surface")
	// ErrInvalidConfig is returned by New for negative dimensions or limits.
	ErrInvalidConfig = errors.New("cellgrid: invalid config")
	// ErrUnknownImage is returned when an image name was never registered.
	ErrUnknownImage = errors.New("cellgrid: unknown image")
	// ErrOutOfRange is returned for cell access outside the grid.
	ErrOutOfRange = errors.New("cellgrid: cell out of range")
	// ErrUnknownField is returned by Set for extra fields the grid was not
	// constructed with.
	ErrUnknownField = errors.New("cellgrid: unknown cell field")
	// ErrFieldType is returned when a built-in field receives a value of
	// the wrong type.
	ErrFieldType = errors.New("cellgrid: wrong type for cell field")
)
