package cellgrid

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDebugLoggerNilSafe(t *testing.T) {
	var l *debugLogger
	l.infof("ignored %d", 1)
	l.warnf("ignored %d", 2)

	var zero debugLogger
	zero.infof("ignored")
}

func TestDebugLoggerLines(t *testing.T) {
	var buf bytes.Buffer
	l := &debugLogger{enabled: true, out: &buf}
	l.infof("loaded image %q", "bomb")
	l.warnf("dropped %d", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q, want 2", lines)
	}
	if !strings.Contains(lines[0], "[cellgrid]") || !strings.Contains(lines[0], `loaded image "bomb"`) {
		t.Errorf("info line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "warning:") || !strings.Contains(lines[1], "dropped 3") {
		t.Errorf("warn line = %q", lines[1])
	}
}

func TestDebugModeLogsImageLoads(t *testing.T) {
	var buf bytes.Buffer
	g, _ := newTestGrid(t, Config{Rows: 2, Cols: 2})
	g.SetDebugMode(true)
	g.SetDebugOutput(&buf)

	g.images.RegisterImage("flag", ebiten.NewImage(2, 2))
	g.Advance(0)
	if !strings.Contains(buf.String(), "flag") {
		t.Errorf("log = %q, want the loaded image named", buf.String())
	}
}

func TestDebugModeLogsIgnoredApply(t *testing.T) {
	var buf bytes.Buffer
	g, _ := newTestGrid(t, Config{Rows: 2, Cols: 2})
	g.SetDebugMode(true)
	g.SetDebugOutput(&buf)

	g.Apply(FieldVisible, "yes")
	if buf.Len() == 0 {
		t.Error("ignored built-in value was not logged")
	}
	if g.Count(FieldVisible, true) != 0 {
		t.Error("wrong-typed value was applied")
	}
}

func TestDebugStatsCounters(t *testing.T) {
	g, _ := newTestGrid(t, Config{Rows: 2, Cols: 2})
	addReadyImage(t, g, "bomb")
	g.Show(0, 0, Fields{FieldIcon: "bomb"})
	g.Hide(1, 1, nil)
	g.Advance(time.Second)
	g.Dispatch(ActionMove, 1, 1)

	if g.stats.fadesStarted != 2 {
		t.Errorf("fadesStarted = %d, want 2", g.stats.fadesStarted)
	}
	if g.stats.fadesDone != 2 {
		t.Errorf("fadesDone = %d, want 2", g.stats.fadesDone)
	}
	if g.stats.events != 1 {
		t.Errorf("events = %d, want 1", g.stats.events)
	}
}
