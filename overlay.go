package cellgrid

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawOverlay prints frame rate, update time and fade counters in the
// top-left corner of screen. Only called in debug mode.
func (g *Grid) drawOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\nupdate: %v\nfades: %d active, %d/%d done\nevents: %d\nloads pending: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.stats.lastUpdate,
		g.ActiveFades(), g.stats.fadesDone, g.stats.fadesStarted,
		g.stats.events, g.images.Pending(),
	))
}
