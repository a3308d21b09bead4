// Package config loads viewer settings from TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/frame"
	"github.com/marben/mandelview/render"
	"github.com/marben/mandelview/session"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Viewport   Viewport   `toml:"viewport"`
	Render     Render     `toml:"render"`
	Navigation Navigation `toml:"navigation"`
	Server     Server     `toml:"server"`
	Output     Output     `toml:"output"`
}

// Viewport is the starting view. Region, when set, overrides the numbers.
type Viewport struct {
	CenterX float64 `toml:"center_x"`
	CenterY float64 `toml:"center_y"`
	Zoom    float64 `toml:"zoom"`
	Region  string  `toml:"region,omitempty"`
}

type Render struct {
	// Width and Height are the logical display size.
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Oversample int     `toml:"oversample"`
	MaxIter    uint32  `toml:"max_iter"`
	Radius     float64 `toml:"radius"`
	Palette    string  `toml:"palette"`
	Workers    int     `toml:"workers"`
	TileSize   int     `toml:"tile_size"`
}

type Navigation struct {
	MinZoom float64 `toml:"min_zoom"`
	MaxZoom float64 `toml:"max_zoom"`
}

type Server struct {
	TCPAddr   string `toml:"tcp_addr"`
	HTTPAddr  string `toml:"http_addr"`
	StaticDir string `toml:"static_dir"`
}

type Output struct {
	File  string `toml:"file"`
	Scale string `toml:"scale"`
}

// Default returns the classic viewer: a 512x512 window rendered at 2x.
func Default() Config {
	v := mandel.DefaultViewport
	return Config{
		Viewport: Viewport{CenterX: v.CenterX, CenterY: v.CenterY, Zoom: v.Zoom},
		Render: Render{
			Width:      512,
			Height:     512,
			Oversample: 2,
			MaxIter:    render.DefaultMaxIter,
			Radius:     render.DefaultRadius,
			Palette:    render.PaletteLegacy.String(),
			TileSize:   render.DefaultTileSize,
		},
		Server: Server{
			TCPAddr:   ":8081",
			HTTPAddr:  ":8080",
			StaticDir: "./static",
		},
		Output: Output{
			File:  "mandel.png",
			Scale: "catmull-rom",
		},
	}
}

// Load reads the TOML file at path over the defaults and validates the result.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(b)
}

// Parse decodes TOML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate reports every problem in c at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Viewport.Region != "" {
		if _, err := mandel.LookupRegion(c.Viewport.Region); err != nil {
			bad("viewport.region: %w", err)
		}
	} else if !c.StartViewport().Valid() {
		bad("viewport: zoom must be positive and finite, got %g", c.Viewport.Zoom)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		bad("render: size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Oversample < 1 {
		bad("render.oversample must be at least 1, got %d", c.Render.Oversample)
	}
	if c.Render.Radius <= 0 {
		bad("render.radius must be positive, got %g", c.Render.Radius)
	}
	if _, err := render.ParsePaletteMode(c.Render.Palette); err != nil {
		bad("render.palette: %v", err)
	}
	if c.Render.Workers < 0 {
		bad("render.workers must not be negative, got %d", c.Render.Workers)
	}
	if c.Render.TileSize < 0 {
		bad("render.tile_size must not be negative, got %d", c.Render.TileSize)
	}
	if c.Navigation.MinZoom < 0 || c.Navigation.MaxZoom < 0 {
		bad("navigation: zoom limits must not be negative")
	}
	if c.Navigation.MaxZoom > 0 && c.Navigation.MinZoom > c.Navigation.MaxZoom {
		bad("navigation: min_zoom %g above max_zoom %g", c.Navigation.MinZoom, c.Navigation.MaxZoom)
	}
	if _, err := frame.ParseKernel(c.Output.Scale); err != nil {
		bad("output.scale: %v", err)
	}
	if c.Output.File != "" {
		if _, err := frame.FormatFromFilename(c.Output.File); err != nil {
			bad("output.file: %v", err)
		}
	}
	return errors.Join(errs...)
}

// StartViewport returns the configured starting viewport.
func (c Config) StartViewport() mandel.Viewport {
	if r, err := mandel.LookupRegion(c.Viewport.Region); err == nil {
		return r.Viewport()
	}
	return mandel.Viewport{CenterX: c.Viewport.CenterX, CenterY: c.Viewport.CenterY, Zoom: c.Viewport.Zoom}
}

// RenderOptions returns the synthesizer options. The palette must have
// passed Validate.
func (c Config) RenderOptions() render.Options {
	p, _ := render.ParsePaletteMode(c.Render.Palette)
	return render.Options{
		MaxIter:  c.Render.MaxIter,
		Radius:   c.Render.Radius,
		Palette:  p,
		Workers:  c.Render.Workers,
		TileSize: c.Render.TileSize,
	}
}

// SessionOptions returns the display and navigation settings.
func (c Config) SessionOptions() session.Options {
	return session.Options{
		Width:      c.Render.Width,
		Height:     c.Render.Height,
		Oversample: c.Render.Oversample,
		MinZoom:    c.Navigation.MinZoom,
		MaxZoom:    c.Navigation.MaxZoom,
	}
}

// NewSession builds a renderer and a session from c.
func (c Config) NewSession() *session.Session {
	return session.New(render.New(c.RenderOptions()), c.StartViewport(), c.SessionOptions())
}
