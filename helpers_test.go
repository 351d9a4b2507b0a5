package cellgrid

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawCall records one paint operation on a recordingSurface.
type drawCall struct {
	image bool // DrawImage, otherwise FillRect
	rect  Rect
	alpha float64
	color Color
	img   *ebiten.Image
}

// recordingSurface is a Surface that records draws instead of painting.
type recordingSurface struct {
	bounds  Rect
	alpha   float64
	calls   []drawCall
	cursor  ebiten.CursorShapeType
	resizes int
	invalid bool
}

func newRecordingSurface(x, y float64) *recordingSurface {
	return &recordingSurface{bounds: Rect{X: x, Y: y}, alpha: 1}
}

func (s *recordingSurface) Valid() bool { return !s.invalid }

func (s *recordingSurface) Bounds() Rect { return s.bounds }

func (s *recordingSurface) Resize(w, h int) {
	s.bounds.Width = float64(w)
	s.bounds.Height = float64(h)
	s.resizes++
}

func (s *recordingSurface) SetAlpha(a float64) { s.alpha = a }

func (s *recordingSurface) Alpha() float64 { return s.alpha }

func (s *recordingSurface) FillRect(r Rect, c Color) {
	s.calls = append(s.calls, drawCall{rect: r, alpha: s.alpha, color: c})
}

func (s *recordingSurface) DrawImage(img *ebiten.Image, r Rect) {
	s.calls = append(s.calls, drawCall{image: true, rect: r, alpha: s.alpha, img: img})
}

func (s *recordingSurface) SetCursor(shape ebiten.CursorShapeType) { s.cursor = shape }

// reset drops the recorded calls, typically the initial render.
func (s *recordingSurface) reset() { s.calls = s.calls[:0] }

// imageDraws returns the recorded DrawImage calls.
func (s *recordingSurface) imageDraws() []drawCall {
	var out []drawCall
	for _, c := range s.calls {
		if c.image {
			out = append(out, c)
		}
	}
	return out
}

// fills returns the recorded FillRect calls.
func (s *recordingSurface) fills() []drawCall {
	var out []drawCall
	for _, c := range s.calls {
		if !c.image {
			out = append(out, c)
		}
	}
	return out
}

// newTestGrid builds a grid on a recording surface at (0, 0) and clears the
// initial render from the record.
func newTestGrid(t *testing.T, cfg Config) (*Grid, *recordingSurface) {
	t.Helper()
	surf := newRecordingSurface(0, 0)
	g, err := New(surf, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	surf.reset()
	return g, surf
}

// addReadyImage registers a small image under name and applies the load.
func addReadyImage(t *testing.T, g *Grid, name string) *ebiten.Image {
	t.Helper()
	img := ebiten.NewImage(4, 4)
	g.images.RegisterImage(name, img)
	g.Advance(0)
	if ok, err := g.IsLoaded(name); err != nil || !ok {
		t.Fatalf("IsLoaded(%q) = %v, %v; want true, nil", name, ok, err)
	}
	return img
}

// waitPolled polls r until no load is pending or the deadline passes.
func waitPolled(t *testing.T, r *Registry) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		r.Poll()
		if r.Pending() == 0 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("loads still pending after deadline: %d", r.Pending())
		}
		time.Sleep(time.Millisecond)
	}
}
