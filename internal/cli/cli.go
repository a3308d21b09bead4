// Package cli holds the flag and logging plumbing shared by the binaries.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/config"
)

// Flags are the settings every binary accepts on its command line.
type Flags struct {
	ConfigPath string
	LogLevel   string

	Width, Height int
	Oversample    int
	MaxIter       uint32
	Palette       string
	Workers       int
	Region        string
}

// Register adds the common flags to cmd.
func (f *Flags) Register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "TOML config file")
	fs.StringVar(&f.LogLevel, "log-level", "info", "debug, info, warn or error")
	fs.IntVar(&f.Width, "width", 0, "display width in pixels")
	fs.IntVar(&f.Height, "height", 0, "display height in pixels")
	fs.IntVar(&f.Oversample, "oversample", 0, "render size multiplier")
	fs.Uint32Var(&f.MaxIter, "max-iter", 0, "iteration cap")
	fs.StringVar(&f.Palette, "palette", "", "legacy (26 colours) or full (40 colours)")
	fs.IntVar(&f.Workers, "workers", -1, "render workers, 0 for one per CPU")
	fs.StringVar(&f.Region, "region", "", "start at a landmark: "+strings.Join(mandel.LandmarkNames(), ", "))
}

// Config loads the config file, if any, and applies the flags set on cmd.
func (f *Flags) Config(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(f.ConfigPath); err != nil {
			return config.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Render.Width = f.Width
	}
	if changed("height") {
		cfg.Render.Height = f.Height
	}
	if changed("oversample") {
		cfg.Render.Oversample = f.Oversample
	}
	if changed("max-iter") {
		cfg.Render.MaxIter = f.MaxIter
	}
	if changed("palette") {
		cfg.Render.Palette = f.Palette
	}
	if changed("workers") {
		cfg.Render.Workers = f.Workers
	}
	if changed("region") {
		cfg.Viewport.Region = f.Region
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// SetupLogging installs a text logger on stderr at the given level.
func SetupLogging(level string) error {
	return SetupLoggingTo(os.Stderr, level)
}

// SetupLoggingTo installs a text logger writing to w at the given level.
func SetupLoggingTo(w io.Writer, level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
	mandel.SetLogger(logger)
	slog.SetDefault(logger)
	return nil
}
