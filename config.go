package cellgrid

import (
	"fmt"
	"time"
)

const (
	defaultRows              = 10
	defaultCols              = 10
	defaultCellSize          = 50
	defaultDrawRetryInterval = 100 * time.Millisecond
)

// Config holds the construction-time options of a Grid. Zero values take
// the defaults listed on each field.
type Config struct {
	Rows int // default 10
	Cols int // default 10

	CellWidth  int // pixels, default 50
	CellHeight int // pixels, default 50

	// Extra is copied into every cell as caller-defined fields.
	Extra Fields

	// Background fills hidden cells. The zero value means white.
	Background Color
	// GridLine shows through the one-pixel gaps between cells. The zero
	// value means #888.
	GridLine Color

	// OnEvent receives every pointer event over the grid. Default no-op.
	OnEvent func(Event)

	// Nudge is a reserved border offset. It is carried but not applied.
	Nudge int

	// Images maps logical icon names to file paths, registered at
	// construction.
	Images map[string]string
	// Loader decodes Images entries. Default FileLoader.
	Loader Loader

	Fade FadeConfig

	// DrawRetryInterval is the delay before DrawCell checks again for an
	// image that is still loading. Default 100ms.
	DrawRetryInterval time.Duration
	// MaxDrawRetries bounds those checks. Zero retries forever.
	MaxDrawRetries int
}

func (c Config) withDefaults() (Config, error) {
	if c.Rows < 0 || c.Cols < 0 || c.CellWidth < 0 || c.CellHeight < 0 {
		return c, fmt.Errorf("%w: %dx%d cells of %dx%d px", ErrInvalidConfig, c.Rows, c.Cols, c.CellWidth, c.CellHeight)
	}
	if c.MaxDrawRetries < 0 {
		return c, fmt.Errorf("%w: MaxDrawRetries %d", ErrInvalidConfig, c.MaxDrawRetries)
	}
	if c.Rows == 0 {
		c.Rows = defaultRows
	}
	if c.Cols == 0 {
		c.Cols = defaultCols
	}
	if c.CellWidth == 0 {
		c.CellWidth = defaultCellSize
	}
	if c.CellHeight == 0 {
		c.CellHeight = defaultCellSize
	}
	if c.Background == (Color{}) {
		c.Background = ColorWhite
	}
	if c.GridLine == (Color{}) {
		c.GridLine = ColorGridLine
	}
	if c.OnEvent == nil {
		c.OnEvent = func(Event) {}
	}
	if c.DrawRetryInterval <= 0 {
		c.DrawRetryInterval = defaultDrawRetryInterval
	}
	c.Fade = c.Fade.withDefaults()
	return c, nil
}
