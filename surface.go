package cellgrid

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the retained 2D target a grid paints onto. Pixels persist
// between calls, so successive fade steps composite over what is beneath.
type Surface interface {
	// Bounds reports where the surface sits on screen and its size. The
	// origin is used to make pointer coordinates surface-relative.
	Bounds() Rect
	// Resize sets the pixel dimensions of the surface.
	Resize(w, h int)
	// SetAlpha sets the global opacity applied to subsequent draws.
	SetAlpha(alpha float64)
	Alpha() float64
	FillRect(r Rect, c Color)
	// DrawImage draws img scaled into r.
	DrawImage(img *ebiten.Image, r Rect)
	SetCursor(shape ebiten.CursorShapeType)
}

// validator is implemented by surfaces that can report themselves unusable.
type validator interface {
	Valid() bool
}

// Canvas is a Surface backed by an offscreen ebiten image. Draw it to the
// screen with Grid.Draw or by drawing Image at Bounds' origin.
type Canvas struct {
	X, Y  float64
	img   *ebiten.Image
	pixel *ebiten.Image // 1x1 white, for solid fills
	alpha float64
}

// NewCanvas creates a canvas positioned at (x, y) on screen. The backing
// image is allocated by Resize.
func NewCanvas(x, y float64) *Canvas {
	return &Canvas{X: x, Y: y, alpha: 1}
}

// Valid reports whether the canvas can be drawn on.
func (c *Canvas) Valid() bool { return c != nil }

// Image returns the backing image, or nil before the first Resize.
func (c *Canvas) Image() *ebiten.Image { return c.img }

// Bounds returns the on-screen rectangle of the canvas.
func (c *Canvas) Bounds() Rect {
	r := Rect{X: c.X, Y: c.Y}
	if c.img != nil {
		b := c.img.Bounds()
		r.Width = float64(b.Dx())
		r.Height = float64(b.Dy())
	}
	return r
}

// Resize replaces the backing image with a cleared one of the given size.
func (c *Canvas) Resize(w, h int) {
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			c.img.Clear()
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(w, h)
}

// SetAlpha sets the opacity used by FillRect and DrawImage.
func (c *Canvas) SetAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.alpha = alpha
}

// Alpha returns the current global opacity.
func (c *Canvas) Alpha() float64 { return c.alpha }

// FillRect fills r with col, composited at the current opacity.
func (c *Canvas) FillRect(r Rect, col Color) {
	if c.img == nil {
		return
	}
	col.A *= c.alpha
	sub := c.img.SubImage(image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))).(*ebiten.Image)
	if col.A >= 1 {
		sub.Fill(col.RGBA())
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(col.RGBA())
	c.img.DrawImage(c.whitePixel(), op)
}

// DrawImage draws img stretched over r at the current opacity.
func (c *Canvas) DrawImage(img *ebiten.Image, r Rect) {
	if c.img == nil || img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleAlpha(float32(c.alpha))
	op.Filter = ebiten.FilterLinear
	c.img.DrawImage(img, op)
}

// SetCursor sets the system cursor shape.
func (c *Canvas) SetCursor(shape ebiten.CursorShapeType) {
	ebiten.SetCursorShape(shape)
}

func (c *Canvas) whitePixel() *ebiten.Image {
	if c.pixel == nil {
		c.pixel = ebiten.NewImage(1, 1)
		c.pixel.Fill(ColorWhite.RGBA())
	}
	return c.pixel
}
