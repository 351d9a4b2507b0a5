package cellgrid

// syntheticPointerEvent represents a single injected pointer event in
// screen coordinates, converted to surface coordinates exactly like real
// input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	action           Action
}

// InjectMove queues a pointer move to the given screen coordinates. The
// event is consumed on the next frame's input processing.
func (g *Grid) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, action: ActionMove})
}

// InjectClick queues a primary click at the given screen coordinates.
func (g *Grid) InjectClick(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, action: ActionClick})
}

// InjectRightClick queues a secondary click at the given screen coordinates.
func (g *Grid) InjectRightClick(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, action: ActionRightClick})
}

// InjectCellClick queues a click on the center of the cell at (row, col).
func (g *Grid) InjectCellClick(row, col int, action Action) {
	r := g.metrics.CellRect(row, col)
	b := g.surface.Bounds()
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{
		screenX: b.X + r.X + r.Width/2,
		screenY: b.Y + r.Y + r.Height/2,
		action:  action,
	})
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed (real input is then skipped).
func (g *Grid) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	g.Dispatch(evt.action, evt.screenX, evt.screenY)
	return true
}
