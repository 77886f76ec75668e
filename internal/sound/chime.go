// Package sound plays the short chime that accompanies menu hovers.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Chime returns a decaying sine tone of the given frequency and duration.
// Samples stay within [-1, 1].
func Chime(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			env := math.Exp(-5 * float64(pos) / float64(total))
			v := math.Sin(step*float64(pos)) * env
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}
