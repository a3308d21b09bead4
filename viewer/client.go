package viewer

import (
	"context"
	"fmt"
	"strings"

	mandel "github.com/marben/mandelview"
)

// Client is the caller's half of a remote session. It remembers the last
// frame and sends its viewport along with every command.
// It is not safe for concurrent use.
type Client struct {
	remote  mandel.Viewer
	current mandel.Frame
}

// NewClient wraps a Viewer, usually a mandel.ViewerIrpcClient.
func NewClient(remote mandel.Viewer) *Client {
	return &Client{remote: remote}
}

// Frame returns the last frame received. It is the zero Frame before the first Do.
func (c *Client) Frame() mandel.Frame {
	return c.current
}

// Do sends one command and returns the frame now on display.
// "frame" is answered locally once a frame has been received.
func (c *Client) Do(ctx context.Context, cmd string) (mandel.Frame, error) {
	if c.hasImage() && isFrameRequest(cmd) {
		return c.current, nil
	}
	f, err := c.remote.Do(ctx, c.current.Viewport, cmd)
	if err != nil {
		return mandel.Frame{}, fmt.Errorf("viewer %q: %w", cmd, err)
	}
	if f.Unchanged() && c.hasImage() {
		return c.current, nil
	}
	c.current = f
	return f, nil
}

func (c *Client) hasImage() bool {
	return !c.current.Unchanged()
}

func isFrameRequest(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	return cmd == "" || strings.EqualFold(cmd, "frame")
}
