package cellgrid

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
)

var (
	debugTagStyle  = color.Style{color.FgCyan}
	debugWarnStyle = color.Style{color.FgYellow, color.OpBold}
)

// debugLogger writes diagnostic lines when debug mode is on. The zero value
// and a nil pointer are both silent.
type debugLogger struct {
	enabled bool
	out     io.Writer
}

func (l *debugLogger) writer() io.Writer {
	if l.out != nil {
		return l.out
	}
	return os.Stderr
}

// infof logs an informational line.
func (l *debugLogger) infof(format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	_, _ = fmt.Fprintf(l.writer(), "%s %s\n", debugTagStyle.Sprint("[cellgrid]"), fmt.Sprintf(format, args...))
}

// warnf logs a warning line.
func (l *debugLogger) warnf(format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	_, _ = fmt.Fprintf(l.writer(), "%s %s %s\n",
		debugTagStyle.Sprint("[cellgrid]"), debugWarnStyle.Sprint("warning:"), fmt.Sprintf(format, args...))
}

// SetDebugMode enables or disables debug mode. When enabled, image loads,
// draw retries, dropped requests and ignored values are logged, and Draw
// prints an overlay with timing and fade statistics.
func (g *Grid) SetDebugMode(enabled bool) {
	g.log.enabled = enabled
}

// SetDebugOutput redirects debug lines. A nil writer restores stderr.
func (g *Grid) SetDebugOutput(w io.Writer) {
	g.log.out = w
}
