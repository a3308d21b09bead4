package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mandel "github.com/marben/mandelview"
)

// countingRenderer records every render call.
type countingRenderer struct {
	calls []mandel.Viewport
	sizes [][2]int
}

func (r *countingRenderer) Render(v mandel.Viewport, w, h int) *mandel.PixelBuffer {
	r.calls = append(r.calls, v)
	r.sizes = append(r.sizes, [2]int{w, h})
	return mandel.NewPixelBuffer(w, h)
}

func TestNewRendersOnce(t *testing.T) {
	r := &countingRenderer{}
	s := New(r, mandel.DefaultViewport, Options{Width: 512, Height: 512, Oversample: 2})
	require.Len(t, r.calls, 1)
	assert.Equal(t, [2]int{1024, 1024}, r.sizes[0])
	assert.Equal(t, mandel.DefaultViewport, s.Viewport())
	assert.Equal(t, 1024, s.Frame().Buffer.Width)
}

func TestHandleRendersExactlyOncePerCommand(t *testing.T) {
	r := &countingRenderer{}
	s := New(r, mandel.DefaultViewport, Options{Width: 8, Height: 8})

	cmds := []mandel.Command{mandel.PanLeft, mandel.ZoomIn, mandel.PanDown, mandel.ZoomOut, mandel.PanRight}
	v := mandel.DefaultViewport
	for i, cmd := range cmds {
		f, changed := s.Handle(cmd)
		require.True(t, changed)
		v = v.Apply(cmd)
		assert.Equal(t, v, f.Viewport)
		assert.Len(t, r.calls, i+2)
	}
}

func TestHandleNoOpDoesNotRender(t *testing.T) {
	r := &countingRenderer{}
	s := New(r, mandel.DefaultViewport, Options{Width: 8, Height: 8})
	before := s.Frame()

	f, changed := s.Handle(mandel.NoOp)
	assert.False(t, changed)
	assert.Same(t, before.Buffer, f.Buffer)
	assert.Len(t, r.calls, 1)
}

func TestHandleRespectsZoomRange(t *testing.T) {
	r := &countingRenderer{}
	s := New(r, mandel.DefaultViewport, Options{Width: 4, Height: 4, MinZoom: 1, MaxZoom: 8})

	_, changed := s.Handle(mandel.ZoomOut) // 8
	assert.True(t, changed)
	_, changed = s.Handle(mandel.ZoomOut) // 16
	assert.False(t, changed)
	assert.Equal(t, 8.0, s.Viewport().Zoom)

	for range 3 {
		s.Handle(mandel.ZoomIn)
	}
	assert.Equal(t, 1.0, s.Viewport().Zoom)
	_, changed = s.Handle(mandel.ZoomIn)
	assert.False(t, changed)
	assert.Len(t, r.calls, 5)
}

func TestGotoAndReset(t *testing.T) {
	r := &countingRenderer{}
	s := New(r, mandel.DefaultViewport, Options{Width: 4, Height: 4})

	target := mandel.ElephantValley.Viewport()
	assert.Equal(t, target, s.Goto(target).Viewport)
	assert.Equal(t, mandel.DefaultViewport, s.Reset().Viewport)
	assert.Len(t, r.calls, 3)
}

func TestResize(t *testing.T) {
	r := &countingRenderer{}
	s := New(r, mandel.DefaultViewport, Options{Width: 4, Height: 4, Oversample: 3})
	f := s.Resize(10, 5)
	assert.Equal(t, 30, f.Buffer.Width)
	assert.Equal(t, 15, f.Buffer.Height)
	assert.Equal(t, mandel.DefaultViewport, f.Viewport)
}

func TestRenderSize(t *testing.T) {
	w, h := Options{Width: 512, Height: 256}.RenderSize()
	assert.Equal(t, 512, w)
	assert.Equal(t, 256, h)
}

func TestOptionsNext(t *testing.T) {
	opts := Options{MinZoom: 1, MaxZoom: 8}
	v := mandel.DefaultViewport

	next, ok := opts.Next(v, mandel.ZoomOut)
	assert.True(t, ok)
	assert.Equal(t, 8.0, next.Zoom)

	next, ok = opts.Next(next, mandel.ZoomOut)
	assert.False(t, ok)
	assert.Equal(t, 8.0, next.Zoom)

	next, ok = opts.Next(v, mandel.NoOp)
	assert.False(t, ok)
	assert.Equal(t, v, next)

	next, ok = Options{}.Next(v, mandel.PanUp)
	assert.True(t, ok)
	assert.Equal(t, v.Apply(mandel.PanUp), next)
}

func TestRenderUsesRenderSize(t *testing.T) {
	r := &countingRenderer{}
	f := Render(r, mandel.DefaultViewport, Options{Width: 5, Height: 3, Oversample: 3})
	assert.Equal(t, [][2]int{{15, 9}}, r.sizes)
	assert.Equal(t, mandel.DefaultViewport, f.Viewport)
	assert.Equal(t, 15, f.Buffer.Width)
}
