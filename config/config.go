// Package config holds the settings of the bezmesh tool.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexozer/bezier"
	"github.com/pelletier/go-toml/v2"
)

const (
	FormatRaw = "raw"
	FormatOBJ = "obj"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	// Accuracy is the number of cells along each parametric direction
	Accuracy int `toml:"accuracy"`

	// Workers bounds the goroutines used to tessellate; 1 tessellates serially
	// and 0 uses GOMAXPROCS
	Workers int `toml:"workers"`

	// Heights is the control grid in row-major order
	Heights []float64 `toml:"heights"`

	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type OutputConfig struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a flat surface at height 0 tessellated into 10x10 cells
func Default() Config {
	return Config{
		Accuracy: 10,
		Workers:  1,
		Heights:  make([]float64, bezier.ControlCount),
		Output: OutputConfig{
			Path:   "surface.bin",
			Format: FormatRaw,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file over the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes TOML into cfg, keeping the values of cfg for keys absent
// from data, and validates the result
func Parse(data []byte, cfg *Config) error {
	// heights from data replace the previous grid, never merge with it
	heights := cfg.Heights
	cfg.Heights = nil

	if err := toml.Unmarshal(data, cfg); err != nil {
		cfg.Heights = heights
		return err
	}

	if cfg.Heights == nil {
		cfg.Heights = heights
	}

	return cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Accuracy < 1 {
		return fmt.Errorf("%w: accuracy must be at least 1, got %d", ErrInvalid, c.Accuracy)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	}

	if len(c.Heights) != bezier.ControlCount {
		return fmt.Errorf("%w: need %d heights, got %d", ErrInvalid, bezier.ControlCount, len(c.Heights))
	}

	switch c.Output.Format {
	case FormatRaw, FormatOBJ:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalid, c.Output.Format)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// SlogLevel parses the level name (debug, info, warn, error)
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(l.Level))

	return level, err
}
