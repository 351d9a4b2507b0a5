package cellgrid

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the interface for optional event forwarding, for example into
// an ECS world. When set on a Grid, every dispatched Event is also emitted
// to the sink after the OnEvent callback.
type EventSink interface {
	EmitEvent(event Event)
}

type gridStats struct {
	fadesStarted int
	fadesDone    int
	events       int
	lastUpdate   time.Duration
}

// Grid is an interactive grid of cells painted onto a Surface. It owns the
// cell store, the image registry and the timer queue; grids share no state.
// All methods must be called from the goroutine running the update loop.
type Grid struct {
	cfg     Config
	metrics Metrics
	surface Surface
	store   *Store
	images  *Registry
	sched   *scheduler
	sink    EventSink
	log     debugLogger
	stats   gridStats
	cursor  string

	// Input state
	pointer     pointerState
	injectQueue []syntheticPointerEvent

	// Automated testing
	testRunner      *TestRunner
	screenshotQueue []string
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
}

// New creates a grid on surface, registers the configured images, sizes the
// surface and paints the empty grid.
func New(surface Surface, cfg Config) (*Grid, error) {
	if surface == nil {
		return nil, fmt.Errorf("new grid: %w", ErrInvalidSurface)
	}
	if v, ok := surface.(validator); ok && !v.Valid() {
		return nil, fmt.Errorf("new grid: %w", ErrInvalidSurface)
	}
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("new grid: %w", err)
	}

	g := &Grid{
		cfg:     cfg,
		surface: surface,
		metrics: Metrics{
			Rows: cfg.Rows, Cols: cfg.Cols,
			CellWidth: cfg.CellWidth, CellHeight: cfg.CellHeight,
		},
		images:        NewRegistry(cfg.Loader),
		sched:         newScheduler(),
		ScreenshotDir: "screenshots",
	}
	g.store = NewStore(cfg.Rows, cfg.Cols, cfg.Extra)
	g.store.log = &g.log
	g.images.log = &g.log

	for name, locator := range cfg.Images {
		g.images.Register(name, locator)
	}

	w, h := g.metrics.Size()
	surface.Resize(w, h)
	g.render()
	return g, nil
}

// render paints the grid-line color over the whole surface, then every cell
// with the background.
func (g *Grid) render() {
	w, h := g.metrics.Size()
	g.surface.SetAlpha(1)
	g.surface.FillRect(Rect{Width: float64(w), Height: float64(h)}, g.cfg.GridLine)
	for row := 0; row < g.metrics.Rows; row++ {
		for col := 0; col < g.metrics.Cols; col++ {
			g.surface.FillRect(g.metrics.CellRect(row, col), g.cfg.Background)
		}
	}
}

// Redraw repaints the whole grid at full opacity, including the icons of
// visible cells whose images are ready. Fades in flight keep running.
func (g *Grid) Redraw() {
	g.render()
	for row := 0; row < g.metrics.Rows; row++ {
		for col := 0; col < g.metrics.Cols; col++ {
			c := &g.store.cells[g.store.index(row, col)]
			if !c.Visible || c.Icon == "" {
				continue
			}
			if img, err := g.images.Image(c.Icon); err == nil && img != nil {
				g.surface.DrawImage(img, g.metrics.CellRect(row, col))
			}
		}
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.metrics.Rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.metrics.Cols }

// Metrics returns the grid geometry.
func (g *Grid) Metrics() Metrics { return g.metrics }

// Size returns the pixel size of the grid.
func (g *Grid) Size() (w, h int) { return g.metrics.Size() }

// Surface returns the surface the grid paints onto.
func (g *Grid) Surface() Surface { return g.surface }

// Store returns the cell store.
func (g *Grid) Store() *Store { return g.store }

// Images returns the image registry.
func (g *Grid) Images() *Registry { return g.images }

// SetEventSink sets the optional event sink.
func (g *Grid) SetEventSink(sink EventSink) { g.sink = sink }

// Position returns the top-left pixel of the cell at (row, col).
func (g *Grid) Position(row, col int) Vec2 { return g.metrics.CellOrigin(row, col) }

// Get returns a copy of the cell at (row, col), or ErrOutOfRange.
func (g *Grid) Get(row, col int) (Cell, error) { return g.store.Get(row, col) }

// Set merges patch into the cell at (row, col) without drawing.
func (g *Grid) Set(row, col int, patch Fields) (Cell, error) { return g.store.Set(row, col, patch) }

// Count returns the number of cells whose field equals any of values.
func (g *Grid) Count(field string, values ...any) int { return g.store.Count(field, values...) }

// Find returns copies of the cells whose field equals any of values.
func (g *Grid) Find(field string, values ...any) []Match { return g.store.Find(field, values...) }

// Apply sets field to value on every cell without drawing.
func (g *Grid) Apply(field string, value any) *Grid {
	g.store.Apply(field, value)
	return g
}

// ApplyWhere sets field to value on the cells whose filterField equals any
// of filterValues, without drawing.
func (g *Grid) ApplyWhere(field string, value any, filterField string, filterValues ...any) *Grid {
	g.store.ApplyWhere(field, value, filterField, filterValues...)
	return g
}

// RegisterImage starts loading locator under name.
func (g *Grid) RegisterImage(name, locator string) { g.images.Register(name, locator) }

// IsLoaded reports whether the named image is ready to draw.
func (g *Grid) IsLoaded(name string) (bool, error) { return g.images.IsLoaded(name) }

// Show merges patch into the cell with visible set to true, then reveals the
// cell's icon. A cell without an icon is marked visible and nothing is
// drawn. The store is updated even when the icon is not registered; the
// returned error then wraps ErrUnknownImage.
func (g *Grid) Show(row, col int, patch Fields) (*Grid, error) {
	p := patch.Clone()
	p[FieldVisible] = true
	c, err := g.store.Set(row, col, p)
	if err != nil {
		return g, fmt.Errorf("show: %w", err)
	}
	if c.Icon == "" {
		return g, nil
	}
	if err := g.DrawCell(row, col, c.Icon); err != nil {
		return g, fmt.Errorf("show: %w", err)
	}
	return g, nil
}

// Hide merges patch into the cell with visible set to false, then fades the
// cell back to the background color.
func (g *Grid) Hide(row, col int, patch Fields) (*Grid, error) {
	p := patch.Clone()
	p[FieldVisible] = false
	if _, err := g.store.Set(row, col, p); err != nil {
		return g, fmt.Errorf("hide: %w", err)
	}
	if err := g.EraseCell(row, col); err != nil {
		return g, fmt.Errorf("hide: %w", err)
	}
	return g, nil
}

// DrawCell reveals the named image in the cell at (row, col). If the image
// is still loading, the draw is retried every DrawRetryInterval until it is
// ready (or MaxDrawRetries is reached). The icon field is not changed.
func (g *Grid) DrawCell(row, col int, name string) error {
	if !g.store.InBounds(row, col) {
		return fmt.Errorf("draw (%d, %d): %w", row, col, ErrOutOfRange)
	}
	ready, err := g.images.IsLoaded(name)
	if err != nil {
		return fmt.Errorf("draw (%d, %d): %w", row, col, err)
	}
	if !ready {
		g.sched.after(g.cfg.DrawRetryInterval, &drawRetry{row: row, col: col, icon: name})
		return nil
	}
	g.startReveal(row, col, name)
	return nil
}

// EraseCell marks the cell hidden and fades it to the background color.
func (g *Grid) EraseCell(row, col int) error {
	if !g.store.InBounds(row, col) {
		return fmt.Errorf("erase (%d, %d): %w", row, col, ErrOutOfRange)
	}
	g.store.setVisible(row, col, false)
	g.startFade(newFadeRun(FadeErase, row, col, g.metrics.CellRect(row, col), "", g.cfg.Fade))
	return nil
}

func (g *Grid) startReveal(row, col int, name string) {
	g.store.setVisible(row, col, true)
	g.startFade(newFadeRun(FadeReveal, row, col, g.metrics.CellRect(row, col), name, g.cfg.Fade))
}

// startFade draws the first step now and queues the rest.
func (g *Grid) startFade(f *FadeRun) {
	g.stats.fadesStarted++
	f.step(g)
	if f.State != FadeDone {
		g.sched.after(f.cfg.Interval, f)
	}
}

// CancelFades stops the fade runs and pending draw retries on one cell.
// Whatever the cancelled runs already painted stays on the surface.
func (g *Grid) CancelFades(row, col int) int {
	return g.sched.cancelCell(row, col)
}

// ActiveFades returns the number of fade runs still in progress.
func (g *Grid) ActiveFades() int {
	return g.sched.count(func(j job) bool {
		_, ok := j.(*FadeRun)
		return ok
	})
}

// Advance moves the grid clock forward by d: completed image loads are
// applied, then every fade step and draw retry due within d runs.
func (g *Grid) Advance(d time.Duration) {
	g.images.Poll()
	g.sched.advance(g, d)
}

// Update processes input and advances the clock by one tick. Call it from
// ebiten.Game.Update.
func (g *Grid) Update() error {
	start := time.Now()
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	g.processInput()
	g.Advance(time.Second / time.Duration(ebiten.TPS()))
	g.stats.lastUpdate = time.Since(start)
	return nil
}

// Draw copies the surface onto screen at the surface origin. Surfaces that
// do not expose an image are drawn elsewhere by their owner.
func (g *Grid) Draw(screen *ebiten.Image) {
	if c, ok := g.surface.(interface{ Image() *ebiten.Image }); ok && c.Image() != nil {
		b := g.surface.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(b.X, b.Y)
		screen.DrawImage(c.Image(), op)
	}
	if g.log.enabled {
		g.drawOverlay(screen)
	}
	g.flushScreenshots(screen)
}
