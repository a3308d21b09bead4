// Package render implements the escape-time evaluator and the image
// synthesizer that turns a viewport into a complete pixel buffer.
package render

import (
	"image"
	"runtime"
	"sync"
	"time"

	mandel "github.com/marben/mandelview"
)

// DefaultTileSize is the edge of the square tiles handed to workers.
const DefaultTileSize = 64

// Options configures a Synthesizer. Zero fields take their defaults.
type Options struct {
	MaxIter  uint32
	Radius   float64
	Palette  PaletteMode
	Workers  int // 0 means runtime.GOMAXPROCS(0); 1 renders sequentially
	TileSize int
}

// DefaultOptions returns the reference settings.
func DefaultOptions() Options {
	return Options{
		MaxIter:  DefaultMaxIter,
		Radius:   DefaultRadius,
		Palette:  PaletteLegacy,
		TileSize: DefaultTileSize,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxIter == 0 {
		o.MaxIter = DefaultMaxIter
	}
	if o.Radius <= 0 {
		o.Radius = DefaultRadius
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.TileSize <= 0 {
		o.TileSize = DefaultTileSize
	}
	return o
}

// Synthesizer renders viewports into pixel buffers.
// It holds no per-render state and is safe for concurrent use.
type Synthesizer struct {
	opts Options
}

var (
	_ mandel.Renderer      = (*Synthesizer)(nil)
	_ mandel.FrameRenderer = (*Synthesizer)(nil)
)

func New(opts Options) *Synthesizer {
	return &Synthesizer{opts: opts.withDefaults()}
}

// Options returns the effective options.
func (s *Synthesizer) Options() Options {
	return s.opts
}

// PlanePoint maps pixel (px, py) of a width x height image to the complex plane.
// Rows grow downwards while the imaginary axis grows upwards.
func PlanePoint(v mandel.Viewport, px, py, width, height int) complex128 {
	x := (float64(px)/float64(width))*v.Zoom - (v.CenterX + v.Zoom/2)
	y := -((float64(py)/float64(height))*v.Zoom - (v.CenterY + v.Zoom/2))
	return complex(x, y)
}

// Pixel evaluates and colours a single plane point.
func (s *Synthesizer) Pixel(c complex128) mandel.RGB {
	return s.opts.Palette.Colorize(Evaluate(c, s.opts.MaxIter, s.opts.Radius))
}

// RenderTile implements mandel.Renderer. The tile is clipped to dst.
func (s *Synthesizer) RenderTile(v mandel.Viewport, tile image.Rectangle, dst *mandel.PixelBuffer) {
	tile = tile.Intersect(dst.Bounds())
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		row := dst.Pix[py*dst.Width : (py+1)*dst.Width]
		for px := tile.Min.X; px < tile.Max.X; px++ {
			row[px] = s.Pixel(PlanePoint(v, px, py, dst.Width, dst.Height))
		}
	}
}

// Render implements mandel.FrameRenderer. The returned buffer is exactly
// width x height and is complete when Render returns.
func (s *Synthesizer) Render(v mandel.Viewport, width, height int) *mandel.PixelBuffer {
	start := time.Now()
	buf := mandel.NewPixelBuffer(width, height)
	if len(buf.Pix) == 0 {
		return buf
	}

	if s.opts.Workers == 1 {
		s.RenderTile(v, buf.Bounds(), buf)
	} else {
		sched := newTileScheduler(buf.Bounds(), s.opts.TileSize)
		workers := min(s.opts.Workers, len(sched.tiles))

		// Tiles are disjoint, so workers share buf without locking.
		var wg sync.WaitGroup
		for range workers {
			wg.Go(func() { sched.work(s, v, buf) })
		}
		wg.Wait()
		mandel.Logger().Debug("tiles done", "tiles", len(sched.tiles), "finished", sched.finished())
	}

	mandel.Logger().Debug("rendered",
		"viewport", v.String(),
		"size", buf.Bounds().Size(),
		"workers", s.opts.Workers,
		"elapsed", time.Since(start))
	return buf
}
