package render

import (
	"context"
	"image"
	"log/slog"
	"sync"

	mandel "github.com/marben/mandelview"
)

// tileScheduler hands out the tiles of one render to workers.
// can be used from multiple goroutines in parallel
type tileScheduler struct {
	tiles []image.Rectangle
	next  int

	totalPixels    int
	finishedPixels int

	m sync.Mutex
}

func newTileScheduler(bounds image.Rectangle, tileSize int) *tileScheduler {
	return &tileScheduler{
		tiles:       splitRectNoClip(bounds, tileSize, tileSize),
		totalPixels: bounds.Dx() * bounds.Dy(),
	}
}

func (ts *tileScheduler) popTile() (tile image.Rectangle, found bool) {
	ts.m.Lock()
	defer ts.m.Unlock()

	if ts.next >= len(ts.tiles) {
		return image.Rectangle{}, false
	}
	tile = ts.tiles[ts.next]
	ts.next++
	return tile, true
}

func (ts *tileScheduler) tileFinished(tile image.Rectangle) {
	ts.m.Lock()
	ts.finishedPixels += tile.Dx() * tile.Dy()
	done := ts.finishedPixels
	ts.m.Unlock()

	if l := mandel.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("tile finished", "tile", tile, "done", float32(done)/float32(ts.totalPixels))
	}
}

// finished returns the fraction of pixels rendered so far.
func (ts *tileScheduler) finished() float32 {
	ts.m.Lock()
	defer ts.m.Unlock()
	if ts.totalPixels == 0 {
		return 1
	}
	return float32(ts.finishedPixels) / float32(ts.totalPixels)
}

// work renders tiles with r until none are left.
func (ts *tileScheduler) work(r mandel.Renderer, v mandel.Viewport, dst *mandel.PixelBuffer) {
	for {
		tile, found := ts.popTile()
		if !found {
			return
		}
		r.RenderTile(v, tile, dst)
		ts.tileFinished(tile)
	}
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)

		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}
