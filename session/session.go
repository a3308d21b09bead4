// Package session holds the state of one interactive viewer: the current
// viewport and the last frame rendered for it.
//
// Every navigation command produces a new viewport value and exactly one
// full re-render. Nothing is shared between sessions except the renderer.
package session

import (
	"sync"
	"time"

	mandel "github.com/marben/mandelview"
)

// Options describes the display a session renders for.
type Options struct {
	// Width and Height are the logical display size.
	Width, Height int
	// Oversample multiplies the display size to get the render size.
	Oversample int
	// MinZoom and MaxZoom bound navigation. Zero leaves that side unguarded.
	MinZoom, MaxZoom float64
}

// RenderSize returns the pixel size frames are rendered at.
func (o Options) RenderSize() (width, height int) {
	k := max(o.Oversample, 1)
	return o.Width * k, o.Height * k
}

func (o Options) allows(v mandel.Viewport) bool {
	if o.MinZoom > 0 && v.Zoom < o.MinZoom {
		return false
	}
	if o.MaxZoom > 0 && v.Zoom > o.MaxZoom {
		return false
	}
	return true
}

// Next returns the viewport cmd leads to from v. It reports false, and
// returns v, for NoOp and for steps that would leave the zoom range.
func (o Options) Next(v mandel.Viewport, cmd mandel.Command) (mandel.Viewport, bool) {
	if cmd == mandel.NoOp {
		return v, false
	}
	next := v.Apply(cmd)
	if !o.allows(next) {
		mandel.Logger().Debug("navigation refused", "cmd", cmd.String(), "zoom", next.Zoom)
		return v, false
	}
	return next, true
}

// Frame is a complete rendered image together with the viewport it shows.
type Frame struct {
	Viewport mandel.Viewport
	Buffer   *mandel.PixelBuffer
	Elapsed  time.Duration
}

type Session struct {
	renderer mandel.FrameRenderer
	home     mandel.Viewport

	mu      sync.Mutex
	opts    Options
	current Frame
}

// New creates a session showing start and renders its first frame.
func New(r mandel.FrameRenderer, start mandel.Viewport, opts Options) *Session {
	s := &Session{renderer: r, home: start, opts: opts}
	s.current = s.render(start)
	return s
}

// Render renders v at the render size of opts.
func Render(r mandel.FrameRenderer, v mandel.Viewport, opts Options) Frame {
	w, h := opts.RenderSize()
	t := time.Now()
	buf := r.Render(v, w, h)
	return Frame{Viewport: v, Buffer: buf, Elapsed: time.Since(t)}
}

func (s *Session) render(v mandel.Viewport) Frame {
	return Render(s.renderer, v, s.opts)
}

// Frame returns the most recent frame without rendering.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Viewport returns the viewport of the most recent frame.
func (s *Session) Viewport() mandel.Viewport {
	return s.Frame().Viewport
}

// Handle applies a navigation command. NoOp, and commands that would leave
// the configured zoom range, return the current frame and false.
func (s *Session) Handle(cmd mandel.Command) (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.opts.Next(s.current.Viewport, cmd)
	if !ok {
		return s.current, false
	}
	s.current = s.render(next)
	return s.current, true
}

// Goto jumps to v and renders it.
func (s *Session) Goto(v mandel.Viewport) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.render(v)
	return s.current
}

// Reset returns to the starting viewport.
func (s *Session) Reset() Frame {
	return s.Goto(s.home)
}

// Resize changes the display size and re-renders the current viewport.
func (s *Session) Resize(width, height int) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Width, s.opts.Height = width, height
	s.current = s.render(s.current.Viewport)
	return s.current
}
