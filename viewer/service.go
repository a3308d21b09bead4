// Package viewer implements the mandel.Viewer service and the client side of
// a remote viewing session.
//
// The service is stateless: a client sends the viewport it is looking at
// together with one command line, and gets back the frame the command leads
// to. Commands are the navigation keys (left right up down j k, plus the
// aliases mandel.ParseCommand knows), "frame", "reset" and "goto <landmark>".
// Anything else is a no-op, answered without an image.
package viewer

import (
	"bytes"
	"context"
	"strings"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/frame"
	"github.com/marben/mandelview/session"
)

const (
	// MaxCommandLen bounds the command text the service interprets.
	// Longer input is treated as an unknown command.
	MaxCommandLen = 256

	// MaxMessageSize bounds one websocket message. An image payload can
	// arrive as a single message.
	MaxMessageSize = 64 << 20
)

// Setup is what the service renders with.
type Setup struct {
	Renderer mandel.FrameRenderer
	Start    mandel.Viewport
	Options  session.Options
}

// Service implements mandel.Viewer.
type Service struct {
	setup func() Setup
}

var _ mandel.Viewer = (*Service)(nil)

// NewService returns a service that calls setup once per command, so a
// reloaded configuration applies from the next command on.
func NewService(setup func() Setup) *Service {
	return &Service{setup: setup}
}

// Do implements mandel.Viewer. A from viewport that is not Valid stands for a
// client without a view yet; it starts at the configured start viewport and
// always gets an image.
func (s *Service) Do(ctx context.Context, from mandel.Viewport, cmd string) (mandel.Frame, error) {
	if err := ctx.Err(); err != nil {
		return mandel.Frame{}, err
	}
	st := s.setup()
	v, changed := step(st, from, cmd)
	if !changed {
		return mandel.Frame{Viewport: v}, nil
	}
	return EncodeFrame(session.Render(st.Renderer, v, st.Options))
}

// step resolves one command line against from. It reports whether the
// result needs a fresh image.
func step(st Setup, from mandel.Viewport, line string) (mandel.Viewport, bool) {
	fresh := !from.Valid()
	if fresh {
		from = st.Start
	}
	if len(line) > MaxCommandLen {
		mandel.Logger().Debug("command too long", "len", len(line))
		return from, fresh
	}

	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch strings.ToLower(verb) {
	case "frame", "":
		return from, true
	case "reset":
		return st.Start, true
	case "goto":
		r, err := mandel.LookupRegion(strings.TrimSpace(arg))
		if err != nil {
			mandel.Logger().Debug("goto ignored", "err", err)
			return from, fresh
		}
		return r.Viewport(), true
	}
	next, ok := st.Options.Next(from, mandel.ParseCommand(verb))
	return next, ok || fresh
}

// EncodeFrame turns a rendered session frame into its PNG carrying form.
func EncodeFrame(f session.Frame) (mandel.Frame, error) {
	var buf bytes.Buffer
	if err := frame.Encode(&buf, f.Buffer, frame.PNG); err != nil {
		return mandel.Frame{}, err
	}
	return mandel.Frame{
		Viewport: f.Viewport,
		Width:    f.Buffer.Width,
		Height:   f.Buffer.Height,
		Elapsed:  f.Elapsed,
		PNG:      buf.Bytes(),
	}, nil
}
