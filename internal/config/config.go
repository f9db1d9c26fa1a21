// Package config holds render settings, their YAML persistence and the
// built-in presets.
package config

import (
	"image"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivantronics/mandelbrot"
)

const (
	DefaultMaxIterations = 512
	DefaultEscapeRadius  = 1000.0
	DefaultCenterRe      = -0.75
	DefaultCenterIm      = 0.0
	DefaultWidth         = 3.5
	DefaultImageWidth    = 1024
	DefaultImageHeight   = 768
	DefaultPaletteSize   = 256
	DefaultOutput        = "mandelbrot.png"
)

type Config struct {
	MaxIterations int     `yaml:"max_iterations"`
	EscapeRadius  float64 `yaml:"escape_radius"`
	CenterRe      float64 `yaml:"center_re"`
	CenterIm      float64 `yaml:"center_im"`
	Width         float64 `yaml:"width"`
	ImageWidth    int     `yaml:"image_width"`
	ImageHeight   int     `yaml:"image_height"`
	Smooth        bool    `yaml:"smooth"`
	Palette       string  `yaml:"palette"`
	PaletteSize   int     `yaml:"palette_size"`
	Supersample   int     `yaml:"supersample"`
	Workers       int     `yaml:"workers"`
	TileSize      int     `yaml:"tile_size"`
	Output        string  `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxIterations: DefaultMaxIterations,
		EscapeRadius:  DefaultEscapeRadius,
		CenterRe:      DefaultCenterRe,
		CenterIm:      DefaultCenterIm,
		Width:         DefaultWidth,
		ImageWidth:    DefaultImageWidth,
		ImageHeight:   DefaultImageHeight,
		Smooth:        true,
		Palette:       "plasma",
		PaletteSize:   DefaultPaletteSize,
		Supersample:   1,
		Workers:       0,
		TileSize:      mandelbrot.DefaultTileSize,
		Output:        DefaultOutput,
	}
}

// Load reads a YAML config from path, overlaying it on the defaults so
// missing keys keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Center returns the viewport center on the complex plane.
func (c *Config) Center() complex128 {
	return complex(c.CenterRe, c.CenterIm)
}

// SetRegion points the config at a region of the plane.
func (c *Config) SetRegion(r mandelbrot.Region) {
	center := r.Center()
	c.CenterRe = real(center)
	c.CenterIm = imag(center)
	c.Width = r.Width()
}

// Bounds returns the pixel bounds of the configured image.
func (c *Config) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.ImageWidth, c.ImageHeight)
}

// Components builds the set, viewport and palette described by the
// config, validating it in the process.
func (c *Config) Components() (*mandelbrot.Set, mandelbrot.Viewport, mandelbrot.Palette, error) {
	set, err := mandelbrot.New(c.MaxIterations, c.EscapeRadius)
	if err != nil {
		return nil, mandelbrot.Viewport{}, nil, err
	}
	vp, err := mandelbrot.NewViewport(c.Bounds(), c.Center(), c.Width)
	if err != nil {
		return nil, mandelbrot.Viewport{}, nil, err
	}
	pal, err := mandelbrot.PaletteByName(c.Palette, c.PaletteSize)
	if err != nil {
		return nil, mandelbrot.Viewport{}, nil, err
	}
	return set, vp, pal, nil
}
