// Package config holds the title screen's tunables and loads overrides from
// a JSON file, the environment and an optional .env file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/pranavpatil1/homepage/internal/glow"
	"github.com/pranavpatil1/homepage/internal/particle"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "pranav patil"

	// Page layering
	BackgroundHex = "#111827" // gray-900
	HighlightHex  = "#fde68a" // amber-200

	// Typography
	TitleText    = "pranav://"
	TitleSize    = 112
	TitleStretch = 1.3
	MenuSize     = 20
	MenuTracking = 0.1 // em, added after each label rune
	HeaderGap    = 64

	// Backdrop is rasterized at this fraction of the viewport and scaled up.
	GlowScale = 0.25
)

// ErrInvalid marks a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid")

type Particles struct {
	Count      int     `json:"count"`
	MinSize    float64 `json:"min_size"`
	MaxSize    float64 `json:"max_size"`
	MinOpacity float64 `json:"min_opacity"`
	MaxOpacity float64 `json:"max_opacity"`
}

type Glow struct {
	Intensity float64 `json:"intensity"`
	Color     string  `json:"color"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

type Window struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

type Config struct {
	Particles       Particles `json:"particles"`
	Glow            Glow      `json:"glow"`
	Window          Window    `json:"window"`
	Sound           bool      `json:"sound"`
	ConfirmExternal bool      `json:"confirm_external"`
	Debug           bool      `json:"debug"`
	LogLevel        string    `json:"log_level"`
	FontPath        string    `json:"font_path"`
}

// Default is the configuration used when nothing overrides it.
func Default() *Config {
	p := particle.DefaultOptions()
	g := glow.DefaultOptions()
	return &Config{
		Particles: Particles{
			Count:      p.Count,
			MinSize:    p.MinSize,
			MaxSize:    p.MaxSize,
			MinOpacity: p.MinOpacity,
			MaxOpacity: p.MaxOpacity,
		},
		Glow: Glow{
			Intensity: g.Intensity,
			Color:     g.Color,
			Width:     g.Width,
			Height:    g.Height,
		},
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Sound:           true,
		ConfirmExternal: true,
		LogLevel:        "info",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as indented JSON.
func Save(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges. Every problem is reported, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	errs = append(errs, c.Particles.validate()...)
	errs = append(errs, c.Glow.validate()...)
	errs = append(errs, c.Window.validate()...)
	return errors.Join(errs...)
}

// Sanitize resets every invalid section to its default and returns the
// validation error that prompted it, if any.
func (c *Config) Sanitize() error {
	err := c.Validate()
	def := Default()
	if len(c.Particles.validate()) > 0 {
		c.Particles = def.Particles
	}
	if len(c.Glow.validate()) > 0 {
		c.Glow = def.Glow
	}
	if len(c.Window.validate()) > 0 {
		c.Window = def.Window
	}
	return err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

func (p Particles) validate() []error {
	var errs []error
	if p.Count < 0 {
		errs = append(errs, invalid("particles.count %d is negative", p.Count))
	}
	if p.MinSize < 0 || p.MaxSize < p.MinSize {
		errs = append(errs, invalid("particles size range [%g, %g]", p.MinSize, p.MaxSize))
	}
	if p.MinOpacity < 0 || p.MaxOpacity > 1 || p.MaxOpacity < p.MinOpacity {
		errs = append(errs, invalid("particles opacity range [%g, %g]", p.MinOpacity, p.MaxOpacity))
	}
	return errs
}

func (g Glow) validate() []error {
	var errs []error
	if g.Intensity < 0 {
		errs = append(errs, invalid("glow.intensity %g is negative", g.Intensity))
	}
	if _, err := glow.ParseRGB(g.Color); err != nil {
		errs = append(errs, invalid("glow.color: %v", err))
	}
	if g.Width < 0 || g.Height < 0 {
		errs = append(errs, invalid("glow extents %gx%g", g.Width, g.Height))
	}
	return errs
}

func (w Window) validate() []error {
	if w.Width <= 0 || w.Height <= 0 {
		return []error{invalid("window size %dx%d", w.Width, w.Height)}
	}
	return nil
}

// ParticleOptions converts the particle section.
func (c *Config) ParticleOptions() particle.Options {
	return particle.Options{
		Count:      c.Particles.Count,
		MinSize:    c.Particles.MinSize,
		MaxSize:    c.Particles.MaxSize,
		MinOpacity: c.Particles.MinOpacity,
		MaxOpacity: c.Particles.MaxOpacity,
		Color:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// GlowOptions converts the glow section.
func (c *Config) GlowOptions() glow.Options {
	return glow.Options{
		Intensity: c.Glow.Intensity,
		Color:     c.Glow.Color,
		Width:     c.Glow.Width,
		Height:    c.Glow.Height,
	}
}
