package cellgrid

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height are the window size. Zero uses the grid size plus
	// the surface offset.
	Width, Height int
	// Clear fills the screen behind the grid each frame. The zero value
	// leaves it black.
	Clear Color
	Debug bool
}

type game struct {
	grid *Grid
	cfg  RunConfig
}

func (g *game) Update() error { return g.grid.Update() }

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Clear != (Color{}) {
		screen.Fill(g.cfg.Clear.RGBA())
	}
	g.grid.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) { return g.cfg.Width, g.cfg.Height }

// Run opens a window showing grid and blocks until it is closed. For full
// control, implement ebiten.Game yourself and call Grid.Update and
// Grid.Draw.
func Run(grid *Grid, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		w, h := grid.Size()
		b := grid.Surface().Bounds()
		cfg.Width = w + int(b.X)
		cfg.Height = h + int(b.Y)
	}
	if cfg.Title == "" {
		cfg.Title = "cellgrid"
	}
	grid.SetDebugMode(cfg.Debug)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{grid: grid, cfg: cfg})
}
