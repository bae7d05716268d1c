// Package config loads the visualizer settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Pitch-Sense/internal/field"
	"github.com/Garsondee/Pitch-Sense/internal/scene"
)

// Window describes the screen layout in pixels.
type Window struct {
	FieldPanelWidth int `yaml:"field_panel_width"`
	InfoPanelWidth  int `yaml:"info_panel_width"`
	Height          int `yaml:"height"`
	Margin          int `yaml:"margin"` // gap between field panel edge and field corner
}

// Width is the full window width.
func (w Window) Width() int { return w.FieldPanelWidth + w.InfoPanelWidth }

// Config is the full set of tunables.
type Config struct {
	Window          Window  `yaml:"window"`
	TPS             int     `yaml:"tps"`
	Modality        string  `yaml:"modality"`
	OrientationStep float64 `yaml:"orientation_step"`
	PathWaypoints   int     `yaml:"path_waypoints"`
	Seed            int64   `yaml:"seed"` // 0 picks a time-based seed
	LogLevel        string  `yaml:"log_level"`
}

// Default returns the stock settings: a 750×750 field panel with a 50px
// margin beside a 300px info panel, ticking at 60 TPS.
func Default() Config {
	return Config{
		Window: Window{
			FieldPanelWidth: 750,
			InfoPanelWidth:  300,
			Height:          750,
			Margin:          50,
		},
		TPS:             60,
		Modality:        "ssl",
		OrientationStep: scene.DefaultOrientationStep,
		PathWaypoints:   scene.DefaultPathWaypoints,
		LogLevel:        "info",
	}
}

// Load reads path on top of the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce a usable window.
func (c Config) Validate() error {
	w := c.Window
	switch {
	case w.FieldPanelWidth <= 0 || w.Height <= 0:
		return fmt.Errorf("window: field panel must be positive, got %dx%d", w.FieldPanelWidth, w.Height)
	case w.InfoPanelWidth < 0:
		return fmt.Errorf("window: info panel width must not be negative, got %d", w.InfoPanelWidth)
	case w.Margin < 0:
		return fmt.Errorf("window: margin must not be negative, got %d", w.Margin)
	case 2*w.Margin >= w.FieldPanelWidth || 2*w.Margin >= w.Height:
		return fmt.Errorf("window: margin %d leaves no room in a %dx%d panel", w.Margin, w.FieldPanelWidth, w.Height)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.PathWaypoints < 0:
		return fmt.Errorf("path_waypoints must not be negative, got %d", c.PathWaypoints)
	}
	if _, err := field.ParseModality(c.Modality); err != nil {
		return err
	}
	return nil
}

// InitialModality returns the parsed Modality setting. Validate guarantees
// it parses; an invalid value falls back to SSL.
func (c Config) InitialModality() field.Modality {
	m, err := field.ParseModality(c.Modality)
	if err != nil {
		return field.ModalitySSL
	}
	return m
}

// SceneOptions converts the motion settings for scene.New.
func (c Config) SceneOptions() scene.Options {
	return scene.Options{
		OrientationStep: c.OrientationStep,
		PathWaypoints:   c.PathWaypoints,
	}
}
