package cellgrid

import (
	"time"

	"github.com/tanema/gween/ease"
)

// FadeKind selects what a fade run paints on each step.
type FadeKind uint8

const (
	FadeReveal FadeKind = iota // draws the cell icon
	FadeErase                  // fills the cell with the background color
)

// FadeState is the state of a fade run.
type FadeState uint8

const (
	FadePending FadeState = iota // more steps to draw
	FadeDone                     // reached full opacity
)

const (
	defaultFadeStart    = 0.1
	defaultFadeStep     = 0.1
	defaultFadeInterval = 50 * time.Millisecond

	// fadeEpsilon absorbs float error in step*index so that 0.1 steps from
	// 0.1 end on the tenth draw.
	fadeEpsilon = 1e-9
)

// FadeConfig controls the opacity ramp used by Show, Hide, DrawCell and
// EraseCell. Zero fields take the defaults.
type FadeConfig struct {
	Start    float64        // opacity of the first step (default 0.1)
	Step     float64        // opacity added per step (default 0.1)
	Interval time.Duration  // delay between steps (default 50ms)
	Ease     ease.TweenFunc // shapes the ramp (default ease.Linear)
}

func (c FadeConfig) withDefaults() FadeConfig {
	if c.Start <= 0 || c.Start > 1 {
		c.Start = defaultFadeStart
	}
	if c.Step <= 0 {
		c.Step = defaultFadeStep
	}
	if c.Interval <= 0 {
		c.Interval = defaultFadeInterval
	}
	if c.Ease == nil {
		c.Ease = ease.Linear
	}
	return c
}

// FadeRun is one in-flight opacity ramp over a cell. The run holds all of
// its state; the scheduler calls it once per step until it is done.
type FadeRun struct {
	Kind     FadeKind
	Row, Col int
	Region   Rect
	Icon     string // image drawn by a reveal run
	Index    int    // number of steps drawn so far
	Opacity  float64
	State    FadeState
	cfg      FadeConfig
}

func newFadeRun(kind FadeKind, row, col int, region Rect, icon string, cfg FadeConfig) *FadeRun {
	return &FadeRun{Kind: kind, Row: row, Col: col, Region: region, Icon: icon, cfg: cfg}
}

// OpacityAt returns the opacity drawn by step k and whether that step is the
// last one. Step k sits at Start + k*Step along a linear ramp, reshaped by
// the easing function; the first step at or beyond full opacity draws at
// exactly 1 and ends the run.
func (f *FadeRun) OpacityAt(k int) (opacity float64, last bool) {
	start := f.cfg.Start
	span := 1 - start
	t := float64(k) * f.cfg.Step
	if span <= fadeEpsilon || t >= span-fadeEpsilon {
		return 1, true
	}
	o := float64(f.cfg.Ease(float32(t), float32(start), float32(span), float32(span)))
	if o < 0 {
		o = 0
	}
	if o >= 1 {
		return 1, true
	}
	return o, false
}

// Steps returns the total number of draws the run makes.
func (f *FadeRun) Steps() int {
	k := 0
	for {
		if _, last := f.OpacityAt(k); last {
			return k + 1
		}
		k++
	}
}

// step draws one frame of the run and advances its state.
func (f *FadeRun) step(g *Grid) {
	if f.State == FadeDone {
		return
	}
	op, last := f.OpacityAt(f.Index)
	f.Opacity = op
	g.surface.SetAlpha(op)
	switch f.Kind {
	case FadeReveal:
		if img, err := g.images.Image(f.Icon); err == nil && img != nil {
			g.surface.DrawImage(img, f.Region)
		}
	case FadeErase:
		g.surface.FillRect(f.Region, g.cfg.Background)
	}
	f.Index++
	if last {
		f.State = FadeDone
		g.stats.fadesDone++
	}
}

func (f *FadeRun) run(g *Grid) (time.Duration, bool) {
	f.step(g)
	return f.cfg.Interval, f.State != FadeDone
}

func (f *FadeRun) cell() (int, int) { return f.Row, f.Col }

// drawRetry polls the image registry until the icon is ready, then starts a
// reveal run. Attempts are unbounded unless the grid sets MaxDrawRetries.
type drawRetry struct {
	row, col int
	icon     string
	attempts int
}

func (d *drawRetry) run(g *Grid) (time.Duration, bool) {
	ready, err := g.images.IsLoaded(d.icon)
	if err != nil {
		return 0, false
	}
	if ready {
		g.startReveal(d.row, d.col, d.icon)
		return 0, false
	}
	d.attempts++
	if g.cfg.MaxDrawRetries > 0 && d.attempts >= g.cfg.MaxDrawRetries {
		g.log.warnf("draw (%d, %d) %q: image not ready after %d attempts, giving up",
			d.row, d.col, d.icon, d.attempts)
		return 0, false
	}
	g.log.infof("draw (%d, %d) %q: image not ready, retrying", d.row, d.col, d.icon)
	return g.cfg.DrawRetryInterval, true
}

func (d *drawRetry) cell() (int, int) { return d.row, d.col }
