package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/marben/irpc"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/config"
	"github.com/marben/mandelview/internal/cli"
	"github.com/marben/mandelview/render"
	"github.com/marben/mandelview/viewer"
)

// main is the entry point for the viewer server.
// Clients keep their own viewport; the server renders the frame each command leads to.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var flags cli.Flags
	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Serve interactive Mandelbrot sessions over TCP and WebSocket",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cli.SetupLogging(flags.LogLevel); err != nil {
				return err
			}
			cfg, err := flags.Config(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, flags.ConfigPath)
		},
	}
	flags.Register(cmd)
	return cmd.ExecuteContext(context.Background())
}

// server renders frames with the current config.
type server struct {
	cfg   atomic.Pointer[config.Config]
	conns atomic.Int64
}

func newServer(cfg config.Config) *server {
	s := &server{}
	s.cfg.Store(&cfg)
	return s
}

func (s *server) config() config.Config {
	return *s.cfg.Load()
}

// setup is read by the viewer service on every command.
func (s *server) setup() viewer.Setup {
	cfg := s.config()
	return viewer.Setup{
		Renderer: render.New(cfg.RenderOptions()),
		Start:    cfg.StartViewport(),
		Options:  cfg.SessionOptions(),
	}
}

// irpcServer serves the viewer service; each connection is a separate endpoint.
func (s *server) irpcServer() *irpc.Server {
	srv := irpc.NewServer(irpc.WithOnConnect(s.onConnect))
	srv.AddService(mandel.NewViewerIrpcService(viewer.NewService(s.setup)))
	return srv
}

// onConnect runs for the lifetime of one client connection.
func (s *server) onConnect(ep *irpc.Endpoint) {
	remote := "?"
	if a := ep.RemoteAddr(); a != nil {
		remote = a.String()
	}
	mandel.Logger().Info("got connection", "remote", remote, "clients", s.conns.Add(1))

	<-ep.Context().Done()
	mandel.Logger().Info("connection closed", "remote", remote, "clients", s.conns.Add(-1),
		"cause", context.Cause(ep.Context()))
}

func serve(ctx context.Context, cfg config.Config, configPath string) error {
	srv := newServer(cfg)
	g, ctx := errgroup.WithContext(ctx)

	// TCP
	tcpListener, err := net.Listen("tcp", cfg.Server.TCPAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}
	mandel.Logger().Info("tcp listening", "addr", tcpListener.Addr().String())

	// WEBSOCKET
	// httpServer provides the static client files along with the websocket endpoint
	websocketListener, httpServer := webServer(ctx, cfg.Server, srv)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer: %w", err)
		}
		return nil
	})

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	irpcServer := srv.irpcServer()
	g.Go(func() error { return serveListener(irpcServer, tcpListener) })
	g.Go(func() error { return serveListener(irpcServer, websocketListener) })

	if configPath != "" {
		g.Go(func() error {
			return config.Watch(ctx, configPath, func(c config.Config) {
				srv.cfg.Store(&c)
			})
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// Close shuts both listeners and every client endpoint.
		if err := irpcServer.Close(); err != nil {
			mandel.Logger().Warn("closing irpc server", "err", err)
		}
		_ = tcpListener.Close()
		return httpServer.Shutdown(shutdownCtx)
	})

	mandel.Logger().Info("waiting for tcp and websocket connections")
	return g.Wait()
}

// serveListener runs irpcServer on l until the server is closed.
func serveListener(irpcServer *irpc.Server, l net.Listener) error {
	err := irpcServer.Serve(l)
	if err != nil && !errors.Is(err, irpc.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("serve %s %s: %w", l.Addr().Network(), l.Addr(), err)
	}
	return nil
}
