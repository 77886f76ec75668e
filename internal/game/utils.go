package game

import (
	"fmt"
	"image/color"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pranavpatil1/homepage/internal/mathutil"
)

// mustHex parses a #rrggbb constant.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("game: bad colour constant %q: %v", s, err))
	}
	return c
}

// blend mixes from toward to by t (0..1) in Lab space, as CSS colour
// transitions look on screen, and applies alpha.
func blend(from, to colorful.Color, t, alpha float64) color.NRGBA {
	r, g, b := from.BlendLab(to, mathutil.Clamp01(t)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(mathutil.Clamp01(alpha)*255 + 0.5)}
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
