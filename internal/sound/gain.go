package sound

import (
	"github.com/faiface/beep"

	"github.com/pranavpatil1/homepage/internal/mathutil"
)

// gain wraps a beep.Streamer and scales every sample it produces.
type gain struct {
	Source beep.Streamer
	Level  float64
}

func newGain(src beep.Streamer, level float64) *gain {
	return &gain{Source: src, Level: mathutil.Clamp01(level)}
}

func (g *gain) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.Source.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= g.Level
		samples[i][1] *= g.Level
	}
	return n, ok
}

func (g *gain) Err() error { return g.Source.Err() }
