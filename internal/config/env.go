package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "PORTFOLIO_"

// LookupFunc resolves one environment key.
type LookupFunc func(key string) (string, bool)

// EnvLookup resolves keys from the process environment first, then from the
// dotenv file at path. A missing dotenv file is ignored.
func EnvLookup(path string) (LookupFunc, error) {
	file := map[string]string{}
	if path != "" {
		m, err := godotenv.Read(path)
		switch {
		case err == nil:
			file = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides fields from PORTFOLIO_* keys.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *float64) {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = f
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = n
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = b
		}
	}

	integer("PARTICLE_COUNT", &c.Particles.Count)
	num("PARTICLE_MIN_SIZE", &c.Particles.MinSize)
	num("PARTICLE_MAX_SIZE", &c.Particles.MaxSize)
	num("PARTICLE_MIN_OPACITY", &c.Particles.MinOpacity)
	num("PARTICLE_MAX_OPACITY", &c.Particles.MaxOpacity)
	num("GLOW_INTENSITY", &c.Glow.Intensity)
	str("GLOW_COLOR", &c.Glow.Color)
	num("GLOW_WIDTH", &c.Glow.Width)
	num("GLOW_HEIGHT", &c.Glow.Height)
	integer("WINDOW_WIDTH", &c.Window.Width)
	integer("WINDOW_HEIGHT", &c.Window.Height)
	str("WINDOW_TITLE", &c.Window.Title)
	boolean("SOUND", &c.Sound)
	boolean("CONFIRM_EXTERNAL", &c.ConfirmExternal)
	boolean("DEBUG", &c.Debug)
	str("LOG_LEVEL", &c.LogLevel)
	str("FONT_PATH", &c.FontPath)

	return errors.Join(errs...)
}
