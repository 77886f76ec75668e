// Package glow computes the layered radial-gradient backdrop: a primary
// elliptical glow, a softer secondary glow and a bright highlight at the
// light source, all anchored to the top edge of the viewport.
package glow

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrColor is returned for colour strings that are not an "r, g, b" triple.
var ErrColor = errors.New("glow: invalid rgb colour")

// Options drive every layer. Width and Height are percentages of the
// viewport; Intensity is the peak alpha of the primary layer.
type Options struct {
	Intensity float64
	Color     string
	Width     float64
	Height    float64
}

func DefaultOptions() Options {
	return Options{
		Intensity: 0.15,
		Color:     "100,150,255",
		Width:     80,
		Height:    90,
	}
}

// Shape is the ending shape of a radial gradient.
type Shape int

const (
	Ellipse Shape = iota
	Circle
)

func (s Shape) String() string {
	switch s {
	case Ellipse:
		return "ellipse"
	case Circle:
		return "circle"
	default:
		return "Shape(" + strconv.Itoa(int(s)) + ")"
	}
}

// Stop is a gradient colour stop; Offset in [0, 1], Alpha the opacity there.
type Stop struct {
	Offset float64
	Alpha  float64
}

// Layer is one glow surface. Dimensions are viewport percentages, Blur is a
// gaussian standard deviation in pixels.
type Layer struct {
	Name       string
	Shape      Shape
	Stops      []Stop
	Height     float64
	MaxWidth   float64
	MarginLeft float64
	Blur       float64
}

// Layers derives the three glow layers from o. The result depends only on o.
func Layers(o Options) []Layer {
	i, w, h := o.Intensity, o.Width, o.Height
	return []Layer{
		{
			Name:  "primary",
			Shape: Ellipse,
			Stops: []Stop{
				{0, i},
				{0.25, i * 0.7},
				{0.50, i * 0.4},
				{0.75, i * 0.1},
				{1, 0},
			},
			Height:     h,
			MaxWidth:   w,
			MarginLeft: (100 - w) / 2,
			Blur:       40,
		},
		{
			Name:  "secondary",
			Shape: Circle,
			Stops: []Stop{
				{0, i * 0.8},
				{0.30, i * 0.4},
				{0.60, i * 0.2},
				{1, 0},
			},
			Height:     h * 0.8,
			MaxWidth:   w * 1.2,
			MarginLeft: (100 - w*1.2) / 2,
			Blur:       60,
		},
		{
			Name:  "highlight",
			Shape: Circle,
			Stops: []Stop{
				{0, i * 1.5},
				{0.40, i * 0.5},
				{0.70, 0},
			},
			Height:     h * 0.4,
			MaxWidth:   w * 0.7,
			MarginLeft: (100 - w*0.7) / 2,
			Blur:       30,
		},
	}
}

// Rect is an axis-aligned box in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Box places the layer in a w×h viewport. The layer spans the full width
// unless capped by MaxWidth and is shifted right by MarginLeft.
func (l Layer) Box(w, h float64) Rect {
	bw := w * math.Min(100, l.MaxWidth) / 100
	return Rect{
		X: w * l.MarginLeft / 100,
		Y: 0,
		W: math.Max(bw, 0),
		H: math.Max(h*l.Height/100, 0),
	}
}

// Radii returns the gradient ending-shape radii for a box, centred on the
// box's top edge and reaching its farthest corner.
func (l Layer) Radii(b Rect) (rx, ry float64) {
	half := b.W / 2
	if l.Shape == Circle {
		r := math.Hypot(half, b.H)
		return r, r
	}
	return half * math.Sqrt2, b.H * math.Sqrt2
}

// ParseRGB parses an "r, g, b" triple with channels in 0..255.
func ParseRGB(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
		}
		ch[i] = uint8(v)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}
