package cellgrid

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestFadeDefaultRampHasTenSteps(t *testing.T) {
	f := newFadeRun(FadeReveal, 0, 0, Rect{}, "x", FadeConfig{}.withDefaults())

	if got := f.Steps(); got != 10 {
		t.Fatalf("Steps() = %d, want 10", got)
	}
	for k := 0; k < 10; k++ {
		op, last := f.OpacityAt(k)
		want := 0.1 * float64(k+1)
		if math.Abs(op-want) > 1e-6 {
			t.Errorf("step %d opacity = %v, want %v", k, op, want)
		}
		if last != (k == 9) {
			t.Errorf("step %d last = %v", k, last)
		}
	}
	if op, _ := f.OpacityAt(9); op != 1 {
		t.Errorf("final opacity = %v, want exactly 1", op)
	}
}

func TestFadeCustomRamps(t *testing.T) {
	tests := []struct {
		name  string
		cfg   FadeConfig
		steps int
		last  float64 // opacity of the step before the final one
	}{
		{"half start", FadeConfig{Start: 0.5, Step: 0.25}, 3, 0.75},
		{"overshoot clamps", FadeConfig{Start: 0.1, Step: 0.3}, 4, 0.7},
		{"uneven step", FadeConfig{Start: 0.1, Step: 0.25}, 5, 0.85},
		{"start opaque", FadeConfig{Start: 1, Step: 0.1}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFadeRun(FadeErase, 0, 0, Rect{}, "", tt.cfg.withDefaults())
			if got := f.Steps(); got != tt.steps {
				t.Fatalf("Steps() = %d, want %d", got, tt.steps)
			}
			if tt.steps > 1 {
				op, _ := f.OpacityAt(tt.steps - 2)
				if math.Abs(op-tt.last) > 1e-6 {
					t.Errorf("opacity before final = %v, want %v", op, tt.last)
				}
			}
			if op, last := f.OpacityAt(tt.steps - 1); op != 1 || !last {
				t.Errorf("final step = %v, %v; want 1, true", op, last)
			}
		})
	}
}

func TestFadeEasingShapesRamp(t *testing.T) {
	linear := newFadeRun(FadeReveal, 0, 0, Rect{}, "", FadeConfig{}.withDefaults())
	cubic := newFadeRun(FadeReveal, 0, 0, Rect{}, "", FadeConfig{Ease: ease.OutCubic}.withDefaults())

	lo, _ := linear.OpacityAt(4)
	co, _ := cubic.OpacityAt(4)
	if co <= lo {
		t.Errorf("OutCubic at mid-ramp = %v, want ahead of linear %v", co, lo)
	}
	if linear.Steps() != cubic.Steps() {
		t.Errorf("easing changed step count: %d vs %d", linear.Steps(), cubic.Steps())
	}
}

func TestFadeConfigDefaults(t *testing.T) {
	c := FadeConfig{}.withDefaults()
	if c.Start != 0.1 || c.Step != 0.1 || c.Interval != 50*time.Millisecond || c.Ease == nil {
		t.Errorf("defaults = %+v", c)
	}
	c = FadeConfig{Start: 1.5, Step: -1, Interval: -time.Second}.withDefaults()
	if c.Start != 0.1 || c.Step != 0.1 || c.Interval != 50*time.Millisecond {
		t.Errorf("invalid values not replaced: %+v", c)
	}
}

func TestFadeRunStateMachine(t *testing.T) {
	g, surf := newTestGrid(t, Config{Rows: 2, Cols: 2})
	f := newFadeRun(FadeErase, 1, 0, g.metrics.CellRect(1, 0), "", g.cfg.Fade)

	for i := 0; i < 9; i++ {
		next, again := f.run(g)
		if !again || next != 50*time.Millisecond {
			t.Fatalf("step %d: run = %v, %v; want 50ms, true", i, next, again)
		}
		if f.State != FadePending {
			t.Fatalf("step %d: state = %v, want pending", i, f.State)
		}
	}
	if _, again := f.run(g); again {
		t.Error("tenth step should finish the run")
	}
	if f.State != FadeDone || f.Opacity != 1 || f.Index != 10 {
		t.Errorf("final run = %+v", f)
	}

	// Done runs never draw again.
	f.step(g)
	if n := len(surf.fills()); n != 10 {
		t.Errorf("fills = %d, want 10", n)
	}
}
