package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"triangles/internal/scene"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/triangles.yaml"

// Environment variables read by ApplyEnv.
const (
	EnvLayout    = "TRIANGLES_LAYOUT"
	EnvAmplitude = "TRIANGLES_AMPLITUDE"
	EnvShowFPS   = "TRIANGLES_SHOW_FPS"
)

// Window holds the window size and title.
type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
}

// Config is the program configuration. Runtime state (active object, elapsed time) is never saved.
type Config struct {
	Layout string `yaml:"layout"`
	// Amplitude of the oscillating object; 0 picks the layout default.
	Amplitude  float32   `yaml:"amplitude"`
	AdvanceKey string    `yaml:"advance_key"`
	ShowFPS    bool      `yaml:"show_fps"`
	TargetFPS  int32     `yaml:"target_fps"`
	Window     Window    `yaml:"window"`
	Background scene.RGB `yaml:"background,flow"`
}

// Default returns the single-object layout in an 800x800 window on a pink background.
func Default() Config {
	return Config{
		Layout:     "single",
		AdvanceKey: "space",
		TargetFPS:  60,
		Window:     Window{Width: 800, Height: 800, Title: "Triangle modes"},
		Background: scene.RGB{239.0 / 255, 136.0 / 255, 190.0 / 255},
	}
}

// Load reads the YAML file at path on top of Default. A missing file is not an error;
// unreadable or malformed files and invalid values are.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks values that would otherwise fail later at window creation.
func (c Config) Validate() error {
	if _, err := scene.ParseLayout(c.Layout); err != nil {
		return err
	}
	if !finite(c.Amplitude) || c.Amplitude < 0 {
		return fmt.Errorf("amplitude must be a finite non-negative number, got %v", c.Amplitude)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	for _, ch := range c.Background {
		if !finite(ch) || ch < 0 || ch > 1 {
			return fmt.Errorf("background channels must be in [0,1], got %v", c.Background)
		}
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// SceneLayout returns the parsed layout. Call Validate first; unknown names fall back to single.
func (c Config) SceneLayout() scene.Layout {
	l, _ := scene.ParseLayout(c.Layout)
	return l
}

// ApplyEnv overrides cfg from TRIANGLES_* environment variables. Unset variables leave cfg untouched.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvLayout); ok {
		if _, err := scene.ParseLayout(v); err != nil {
			return fmt.Errorf("%s: %w", EnvLayout, err)
		}
		cfg.Layout = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvAmplitude); ok {
		a, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAmplitude, err)
		}
		cfg.Amplitude = float32(a)
	}
	if v, ok := os.LookupEnv(EnvShowFPS); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvShowFPS, err)
		}
		cfg.ShowFPS = b
	}
	return cfg.Validate()
}
