package glow

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"

	"github.com/pranavpatil1/homepage/internal/mathutil"
)

// Brush builds the gradient brush for the layer inside box, in colour c.
// Gradients are centred on the middle of the box's top edge.
func (l Layer) Brush(c color.NRGBA, box Rect) gg.Brush {
	cx, cy := box.X+box.W/2, box.Y
	rx, ry := l.Radii(box)

	base := gg.RGBA{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	radial := gg.NewRadialGradientBrush(cx, cy, 0, math.Max(rx, 1e-6))
	for _, s := range l.Stops {
		stop := base
		stop.A = mathutil.Clamp01(s.Alpha)
		radial.AddColorStop(s.Offset, stop)
	}
	if l.Shape == Circle || ry <= 0 || rx == ry {
		return radial
	}

	// squash the circle into an ellipse by rescaling the vertical distance
	k := rx / ry
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		return radial.ColorAt(x, cy+(y-cy)*k)
	}).WithName(l.Name)
}

// Render rasterizes the backdrop for a w×h viewport at the given scale
// (1 = full resolution). Blur radii scale with the image.
func Render(o Options, w, h int, scale float64) (*image.RGBA, error) {
	c, err := ParseRGB(o.Color)
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = 1
	}
	sw := max(int(math.Ceil(float64(w)*scale)), 1)
	sh := max(int(math.Ceil(float64(h)*scale)), 1)

	out := image.NewRGBA(image.Rect(0, 0, sw, sh))
	for _, l := range Layers(o) {
		layer, err := renderLayer(l, c, sw, sh)
		if err != nil {
			return nil, fmt.Errorf("glow: render %s layer: %w", l.Name, err)
		}
		BoxBlur(layer, l.Blur*scale)
		draw.Draw(out, out.Bounds(), layer, image.Point{}, draw.Over)
	}
	return out, nil
}

func renderLayer(l Layer, c color.NRGBA, w, h int) (*image.RGBA, error) {
	box := l.Box(float64(w), float64(h))
	if box.W <= 0 || box.H <= 0 {
		return image.NewRGBA(image.Rect(0, 0, w, h)), nil
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.SetFillBrush(l.Brush(c, box))
	dc.DrawRectangle(box.X, box.Y, box.W, box.H)
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	// dc.Image is a premultiplied copy, so it can be blurred and composited directly
	raw := dc.Image()
	if img, ok := raw.(*image.RGBA); ok {
		return img, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), raw, raw.Bounds().Min, draw.Src)
	return dst, nil
}
