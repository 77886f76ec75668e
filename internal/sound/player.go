package sound

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate    = beep.SampleRate(44100)
	ChimeFreq     = 880.0
	ChimeDuration = 120 * time.Millisecond
	ChimeVolume   = 0.25
)

// Player opens the audio device in the background and plays chimes once it
// is ready. If the device cannot be opened the player logs once and stays
// silent.
type Player struct {
	enabled bool
	log     *slog.Logger

	once    sync.Once
	ready   atomic.Bool
	initErr error

	// overridable in tests
	initDevice func(beep.SampleRate, int) error
	play       func(...beep.Streamer)
	start      func(func())
}

func NewPlayer(enabled bool, log *slog.Logger) *Player {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Player{
		enabled:    enabled,
		log:        log,
		initDevice: speaker.Init,
		play:       speaker.Play,
		start:      func(f func()) { go f() },
	}
}

func (p *Player) Enabled() bool {
	return p.enabled
}

// SetEnabled toggles the chime. The audio device, once opened, stays open.
func (p *Player) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// Open starts opening the audio device without blocking. Later calls do
// nothing.
func (p *Player) Open() {
	p.once.Do(func() {
		p.start(func() {
			bufferSize := SampleRate.N(time.Second / 20)
			if err := p.initDevice(SampleRate, bufferSize); err != nil {
				p.initErr = fmt.Errorf("sound: init speaker: %w", err)
				p.log.Warn("hover sound disabled", "err", p.initErr)
				return
			}
			p.ready.Store(true)
		})
	})
}

// Play starts a hover chime without blocking. Chimes requested before the
// device is open are dropped.
func (p *Player) Play() {
	if !p.enabled {
		return
	}
	p.Open()
	if !p.ready.Load() {
		return
	}
	p.play(newGain(Chime(SampleRate, ChimeFreq, ChimeDuration), ChimeVolume))
}
