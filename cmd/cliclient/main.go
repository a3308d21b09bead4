// cliclient is a CLI client for the Mandelbrot viewer server.
// It connects to the server, replays navigation commands, and saves the last frame to a file.

package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"github.com/marben/irpc"
	"github.com/spf13/cobra"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/config"
	"github.com/marben/mandelview/frame"
	"github.com/marben/mandelview/internal/cli"
	"github.com/marben/mandelview/viewer"
)

// main is the entry point for the CLI client.
func main() {
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

type options struct {
	configPath string
	logLevel   string
	addr       string
	keys       string
	region     string
	output     string
	display    bool
	preview    int
}

func run() error {
	var o options
	cmd := &cobra.Command{
		Use:   "cliclient [flags]",
		Short: "Drive a remote viewer session and save the resulting frame",
		Example: `  cliclient --keys "j j left up" -o zoomed.png
  cliclient --addr ws://localhost:8080/ws --goto seahorse-valley -o seahorse.tiff`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cli.SetupLogging(o.logLevel); err != nil {
				return err
			}
			cfg := config.Default()
			if o.configPath != "" {
				var err error
				if cfg, err = config.Load(o.configPath); err != nil {
					return err
				}
			}
			if o.output == "" {
				o.output = cfg.Output.File
			}
			return fetch(cmd.Context(), o, cfg)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	fs.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&o.addr, "addr", "tcp://localhost:8081", "server address, tcp://host:port or ws://host:port/ws")
	fs.StringVar(&o.keys, "keys", "", "navigation commands separated by spaces or commas: left right up down j k")
	fs.StringVar(&o.region, "goto", "", "jump to a landmark first: "+strings.Join(mandel.LandmarkNames(), ", "))
	fs.StringVarP(&o.output, "output", "o", "", "output file; .png, .bmp or .tiff (default from config)")
	fs.BoolVar(&o.display, "display", false, "scale the frame down to the display size before saving")
	fs.IntVar(&o.preview, "preview", 0, "also print a terminal preview this many columns wide")
	return cmd.ExecuteContext(context.Background())
}

// commands turns the flags into the command lines sent to the server.
func commands(o options) []string {
	var cmds []string
	if o.region != "" {
		cmds = append(cmds, "goto "+o.region)
	}
	cmds = append(cmds, strings.FieldsFunc(o.keys, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})...)
	if len(cmds) == 0 {
		cmds = append(cmds, "frame")
	}
	return cmds
}

func fetch(ctx context.Context, o options, cfg config.Config) error {
	format, err := frame.FormatFromFilename(o.output)
	if err != nil {
		return err
	}

	// Step 1: Connect to the server
	log.Printf("Connecting to %s...", o.addr)
	conn, err := dial(ctx, o.addr)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()

	// Step 2: Create a client for the Viewer interface
	remote, err := mandel.NewViewerIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("failed to create Viewer client: %w", err)
	}
	client := viewer.NewClient(remote)

	// Step 3: Replay the navigation, every command answers with a frame
	var last mandel.Frame
	for _, c := range commands(o) {
		if last, err = client.Do(ctx, c); err != nil {
			return err
		}
		log.Printf("%-24s %s (%dx%d, %s)", c, last.Viewport, last.Width, last.Height, last.Elapsed)
	}

	var img image.Image
	if img, err = last.Image(); err != nil {
		return err
	}
	if o.display {
		k, err := frame.ParseKernel(cfg.Output.Scale)
		if err != nil {
			return err
		}
		img = frame.Downscale(img, cfg.Render.Width, cfg.Render.Height, k)
	}

	// Step 4: Save the frame
	log.Printf("Saving frame to %q...", o.output)
	f, err := os.Create(o.output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	if err := frame.Encode(f, img, format); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if o.preview > 0 {
		return frame.WriteANSI(os.Stdout, img, o.preview)
	}
	return nil
}
