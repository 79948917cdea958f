// Package config loads host settings for meshdrift from TOML or YAML files.
// Simulation constants are not configurable; only the hosts read these values.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/meshdrift/parameter"
)

// Color modes accepted by the terminal host
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// ErrUnsupportedFormat is returned for config paths with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds meshdrift host configuration.
type Config struct {
	Display DisplayConfig `toml:"display" yaml:"display"`
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// DisplayConfig controls the terminal host.
type DisplayConfig struct {
	Color string  `toml:"color" yaml:"color"` // "auto", "truecolor", "256"
	Units float64 `toml:"units" yaml:"units"` // surface units per braille dot
	Stats bool    `toml:"stats" yaml:"stats"`
}

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

// AudioConfig controls the pointer chime.
type AudioConfig struct {
	Sound bool `toml:"sound" yaml:"sound"`
}

// LogConfig controls debug logging.
type LogConfig struct {
	Debug bool   `toml:"debug" yaml:"debug"`
	Dir   string `toml:"dir" yaml:"dir"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Color: ColorAuto, Units: parameter.DefaultUnitsPerDot},
		Window: WindowConfig{
			Width:  parameter.DefaultWindowWidth,
			Height: parameter.DefaultWindowHeight,
			Title:  parameter.DefaultWindowTitle,
		},
		Log: LogConfig{Dir: parameter.DefaultLogDir},
	}
}

// ConfigDir returns the meshdrift config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "meshdrift")
}

// DefaultPath returns the config file read when no path is given
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path over the defaults.
// An empty path reads DefaultPath if it exists and falls back to defaults otherwise.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the hosts cannot use
func (c *Config) Validate() error {
	switch c.Display.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("display.color: unknown mode %q", c.Display.Color)
	}
	if math.IsNaN(c.Display.Units) || math.IsInf(c.Display.Units, 0) || c.Display.Units <= 0 {
		return fmt.Errorf("display.units: must be positive, got %v", c.Display.Units)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Log.Dir == "" {
		return errors.New("log.dir: must not be empty")
	}
	return nil
}

// WriteTOML encodes the configuration as TOML.
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
