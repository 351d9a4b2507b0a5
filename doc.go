// Package cellgrid is an interactive grid-of-cells widget for [Ebitengine].
//
// A [Grid] paints rows and columns of equally sized cells, separated by
// one-pixel grid lines, onto a retained [Surface]. Each cell carries an
// icon name, a visible flag and any extra fields the caller asks for.
// Pointer input is mapped to cells and handed to a single callback; what a
// click means is entirely up to the caller.
//
// # Quick start
//
//	var grid *cellgrid.Grid
//	grid, err := cellgrid.New(cellgrid.NewCanvas(0, 0), cellgrid.Config{
//		Rows: 9, Cols: 9,
//		Extra:  cellgrid.Fields{"mine": false},
//		Images: map[string]string{"bomb": "assets/bomb.png"},
//		OnEvent: func(ev cellgrid.Event) {
//			if ev.Action == cellgrid.ActionClick && ev.InBounds {
//				grid.Show(ev.Row, ev.Col, cellgrid.Fields{"icon": "bomb"})
//			}
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Fatal(cellgrid.Run(grid, cellgrid.RunConfig{Title: "Mines"}))
//
// For full control, implement [ebiten.Game] yourself and call
// [Grid.Update] and [Grid.Draw] from it.
//
// # Cells
//
// [Grid.Get], [Grid.Set], [Grid.Count], [Grid.Find], [Grid.Apply] and
// [Grid.ApplyWhere] read and write cell state without drawing. Fields are
// addressed by name: "icon" and "visible" are built in, everything else
// lives in [Cell.Extra].
//
// # Fades
//
// [Grid.Show] and [Grid.Hide] update a cell and then ramp its opacity in
// fixed steps: a reveal draws the icon over the cell, a hide paints the
// background color over it. Steps are driven by the grid clock, which
// [Grid.Update] advances by one tick per frame and [Grid.Advance] by any
// duration. Fades on the same cell are not merged; use [Grid.CancelFades]
// before restarting one if flicker matters.
//
// Images load in the background. A reveal whose image is not ready yet is
// retried until it is (see [Config.MaxDrawRetries]).
//
// [Ebitengine]: https://ebitengine.org
package cellgrid
