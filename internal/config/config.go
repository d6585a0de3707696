// Package config loads the optional YAML file shared by the plotting tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/HamletTheHamster/piece-swap-plotting/internal/pieceswap"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/render"
)

type Config struct {
	Output  OutputConfig `yaml:"output"`
	Figure  FigureConfig `yaml:"figure"`
	Samples int          `yaml:"samples"`
}

type OutputConfig struct {
	// Root directory; each run writes into Root/<date>/<time>.
	Root    string   `yaml:"root"`
	Formats []string `yaml:"formats"`
}

type FigureConfig struct {
	Title  string  `yaml:"title"`
	XLabel string  `yaml:"xlabel"`
	YLabel string  `yaml:"ylabel"`
	Width  float64 `yaml:"width"`  // inches
	Height float64 `yaml:"height"` // inches
	Slide  bool    `yaml:"slide"`
}

func DefaultConfig() *Config {
	style := render.DefaultStyle()
	return &Config{
		Output: OutputConfig{
			Root:    "plots",
			Formats: style.Formats,
		},
		Figure: FigureConfig{
			Width:  style.Width,
			Height: style.Height,
		},
		Samples: pieceswap.DefaultSamples,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings every tool uses.
func (c *Config) Validate() error {
	if c.Figure.Width <= 0 || c.Figure.Height <= 0 {
		return fmt.Errorf("config: figure size must be positive, got %vx%v", c.Figure.Width, c.Figure.Height)
	}
	return nil
}

// CheckSamples checks the curve sample count. Only pieceswap samples, so it
// is not part of Validate.
func (c *Config) CheckSamples() error {
	if c.Samples < 1 {
		return fmt.Errorf("config: samples must be positive, got %d", c.Samples)
	}
	return nil
}

// Style converts the figure section into a render.Style. Empty titles and
// labels fall back to the given defaults.
func (c *Config) Style(title, xlabel, ylabel string) render.Style {
	style := render.Style{
		Title:   c.Figure.Title,
		XLabel:  c.Figure.XLabel,
		YLabel:  c.Figure.YLabel,
		Width:   c.Figure.Width,
		Height:  c.Figure.Height,
		Slide:   c.Figure.Slide,
		Formats: c.Output.Formats,
	}
	if style.Title == "" {
		style.Title = title
	}
	if style.XLabel == "" {
		style.XLabel = xlabel
	}
	if style.YLabel == "" {
		style.YLabel = ylabel
	}
	return style
}
