package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is the transparent, full-viewport particle layer. It keeps its
// pixels between frames, so skipped particle frames show the last drawing.
type canvas struct {
	img *ebiten.Image
}

// resize reallocates the backing image; the previous drawing is dropped.
func (c *canvas) resize(w, h int) {
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

func (c *canvas) Size() (int, int) {
	if c.img == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *canvas) FillCircle(x, y, r float64, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), clr, true)
}

func (c *canvas) draw(screen *ebiten.Image) {
	if c.img == nil {
		return
	}
	screen.DrawImage(c.img, nil)
}
