// Package particle animates a fixed set of soft, drifting dots on a
// drawing surface at a capped frame rate.
package particle

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/pranavpatil1/homepage/internal/anim"
	"github.com/pranavpatil1/homepage/internal/mathutil"
)

// FPS is the redraw cap, independent of the host refresh rate.
const FPS = 30

// FrameDelay is the minimum interval between accepted frames.
const FrameDelay = time.Second / FPS

// Particle is one drifting dot.
type Particle struct {
	X, Y           float64 // position in surface pixels
	Size           float64 // radius
	SpeedX, SpeedY float64 // pixels per accepted frame
	Opacity        float64
}

// Options bound the randomized particle attributes. Callers keep
// Max >= Min; no further validation happens here.
type Options struct {
	Count      int
	MinSize    float64
	MaxSize    float64
	MinOpacity float64
	MaxOpacity float64
	Color      color.NRGBA // alpha is replaced by each particle's opacity
}

func DefaultOptions() Options {
	return Options{
		Count:      50,
		MinSize:    1,
		MaxSize:    4,
		MinOpacity: 0.2,
		MaxOpacity: 0.5,
		Color:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Equal reports whether two option sets would produce the same session.
func (o Options) Equal(other Options) bool {
	return o == other
}

// Surface is the drawing target. Implementations clip to their own bounds.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillCircle(x, y, r float64, c color.Color)
}

// Session owns one particle set and its frame loop.
type Session struct {
	opts       Options
	surface    Surface
	particles  []Particle
	lastUpdate time.Duration
	frames     uint64

	sched   *anim.Scheduler
	handle  anim.Handle
	running bool
}

// NewSession allocates opts.Count particles spread over the surface. A nil
// surface yields an inert session.
func NewSession(opts Options, surface Surface, rng *rand.Rand) *Session {
	s := &Session{opts: opts, surface: surface}
	if surface == nil {
		return s
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	w, h := surface.Size()
	count := max(opts.Count, 0)
	s.particles = make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		s.particles = append(s.particles, Particle{
			X:       rng.Float64() * float64(w),
			Y:       rng.Float64() * float64(h),
			Size:    rng.Float64()*(opts.MaxSize-opts.MinSize) + opts.MinSize,
			SpeedX:  rng.Float64()*0.5 - 0.25,
			SpeedY:  rng.Float64()*0.5 - 0.1, // snow falls: biased downward
			Opacity: rng.Float64()*(opts.MaxOpacity-opts.MinOpacity) + opts.MinOpacity,
		})
	}
	return s
}

// Start requests the first frame on sched. Starting twice, or starting an
// inert session, does nothing.
func (s *Session) Start(sched *anim.Scheduler) {
	if s.surface == nil || sched == nil || s.running {
		return
	}
	s.sched = sched
	s.running = true
	s.handle = sched.RequestFrame(s.frame)
}

// Cancel stops the loop. No further frames run after it returns.
func (s *Session) Cancel() {
	if !s.running {
		return
	}
	s.sched.CancelFrame(s.handle)
	s.running = false
}

func (s *Session) Running() bool {
	return s.running
}

func (s *Session) Options() Options {
	return s.opts
}

// Frames counts accepted frames.
func (s *Session) Frames() uint64 {
	return s.frames
}

// Particles returns a copy of the current particle set.
func (s *Session) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

func (s *Session) frame(now time.Duration) {
	if !s.running {
		return
	}
	s.Step(now)
	s.handle = s.sched.RequestFrame(s.frame)
}

// Step runs one frame at host time now. It returns false when the frame is
// skipped because less than FrameDelay passed since the last accepted one.
func (s *Session) Step(now time.Duration) bool {
	if s.surface == nil {
		return false
	}
	if now-s.lastUpdate < FrameDelay {
		return false
	}
	s.lastUpdate = now
	s.frames++

	s.surface.Clear()
	w, h := s.surface.Size()
	c := s.opts.Color
	for i := range s.particles {
		p := &s.particles[i]

		c.A = uint8(math.Round(mathutil.Clamp01(p.Opacity) * 255))
		s.surface.FillCircle(p.X, p.Y, p.Size, c)

		p.X = Wrap(p.X+p.SpeedX, float64(w))
		p.Y = Wrap(p.Y+p.SpeedY, float64(h))
	}
	return true
}

// Wrap moves a coordinate that left [0, dim) in through the opposite edge.
// A small overshoot is carried across; a coordinate more than a full
// dimension out, as after the surface shrinks, lands on the opposite edge.
func Wrap(v, dim float64) float64 {
	if dim <= 0 {
		return 0
	}
	switch {
	case v >= dim:
		if v -= dim; v < dim {
			return v
		}
		return 0
	case v < 0:
		if v += dim; v >= 0 && v < dim {
			return v
		}
		// far out, or -tiny + dim rounding up to dim
		return math.Nextafter(dim, 0)
	}
	return v
}
