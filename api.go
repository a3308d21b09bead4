package mandel

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"time"
)

//go:generate irpc api.go

// Viewer renders navigation steps for remote clients.
// It keeps no per-client state: every call names the viewport it starts from.
type Viewer interface {
	Do(ctx context.Context, from Viewport, cmd string) (Frame, error)
}

// Frame is one rendered view as sent to a remote client.
type Frame struct {
	Viewport      Viewport
	Width, Height int
	Elapsed       time.Duration
	PNG           []byte
}

// Unchanged reports a reply without an image: the command did not move the view.
func (f Frame) Unchanged() bool {
	return len(f.PNG) == 0
}

// Image decodes the PNG payload.
func (f Frame) Image() (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(f.PNG))
	if err != nil {
		return nil, fmt.Errorf("decode frame image: %w", err)
	}
	return img, nil
}
