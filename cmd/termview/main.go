// termview is an interactive Mandelbrot viewer for the terminal.
// Arrow keys pan, j zooms in, k zooms out, r resets, q quits.

package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/marben/mandelview/config"
	"github.com/marben/mandelview/frame"
	"github.com/marben/mandelview/internal/cli"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		flags   cli.Flags
		logFile string
	)
	cmd := &cobra.Command{
		Use:           "termview",
		Short:         "Explore the Mandelbrot set in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// the screen owns the terminal, so logs go to a file or nowhere
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := cli.SetupLoggingTo(w, flags.LogLevel); err != nil {
				return err
			}
			cfg, err := flags.Config(cmd)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()
			return view(screen, cfg)
		},
	}
	flags.Register(cmd)
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd.ExecuteContext(context.Background())
}

// view runs the event loop until the user quits.
func view(screen tcell.Screen, cfg config.Config) error {
	kernel, err := frame.ParseKernel(cfg.Output.Scale)
	if err != nil {
		return err
	}

	cols, rows := screen.Size()
	cfg.Render.Width, cfg.Render.Height = displaySize(cols, rows)
	sess := cfg.NewSession()
	v := newViewer(screen, kernel)
	v.draw(sess.Frame())

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			v.draw(sess.Resize(displaySize(ev.Size())))
		case *tcell.EventKey:
			act, cmd := keyAction(ev)
			switch act {
			case actQuit:
				return nil
			case actReset:
				v.draw(sess.Reset())
			case actNavigate:
				if f, changed := sess.Handle(cmd); changed {
					v.draw(f)
				}
			}
		}
	}
}
