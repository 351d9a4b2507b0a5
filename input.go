package cellgrid

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Event is delivered to Config.OnEvent for every pointer event over the
// grid. The cell data is nested so that caller field names never collide
// with the event header.
type Event struct {
	Action Action
	Row    int
	Col    int
	// X and Y are the pointer position relative to the surface origin.
	X, Y float64
	// InBounds is false when the position maps outside the grid (pointer
	// left or above the surface); Cell is then the zero value.
	InBounds bool
	Cell     Cell
}

type pointerState struct {
	seen         bool
	lastX, lastY float64
}

// Dispatch maps a screen position to a cell and delivers one Event to the
// callback and the event sink. It runs synchronously; there is no queuing
// or debouncing.
func (g *Grid) Dispatch(action Action, screenX, screenY float64) Event {
	b := g.surface.Bounds()
	x := screenX - b.X
	y := screenY - b.Y
	row, col := g.metrics.PixelToCell(x, y)

	ev := Event{Action: action, Row: row, Col: col, X: x, Y: y}
	if c, err := g.store.Get(row, col); err == nil {
		ev.InBounds = true
		ev.Cell = c
	}

	g.stats.events++
	g.cfg.OnEvent(ev)
	if g.sink != nil {
		g.sink.EmitEvent(ev)
	}
	return ev
}

// processInput is called from Grid.Update. Injected events take precedence
// over real input for the frame they are consumed in.
func (g *Grid) processInput() {
	if g.processInjectedInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if !g.surface.Bounds().Contains(x, y) {
		g.pointer.seen = false
		return
	}

	if !g.pointer.seen || x != g.pointer.lastX || y != g.pointer.lastY {
		g.pointer.seen = true
		g.pointer.lastX, g.pointer.lastY = x, y
		g.Dispatch(ActionMove, x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.Dispatch(ActionClick, x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.Dispatch(ActionRightClick, x, y)
	}
}
