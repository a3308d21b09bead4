package render

import (
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRectNoClip(t *testing.T) {
	tiles := splitRectNoClip(image.Rect(0, 0, 100, 70), 64, 64)
	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 64, 64),
		image.Rect(64, 0, 100, 64),
		image.Rect(0, 64, 64, 70),
		image.Rect(64, 64, 100, 70),
	}, tiles)
}

func TestSplitRectCoversEveryPixelOnce(t *testing.T) {
	r := image.Rect(3, 4, 130, 77)
	seen := map[image.Point]int{}
	for _, tile := range splitRectNoClip(r, 13, 9) {
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			for x := tile.Min.X; x < tile.Max.X; x++ {
				seen[image.Pt(x, y)]++
			}
		}
	}
	assert.Len(t, seen, r.Dx()*r.Dy())
	for p, n := range seen {
		assert.Equal(t, 1, n, "pixel %v", p)
	}
}

func TestSplitRectPanicsOnBadTile(t *testing.T) {
	assert.Panics(t, func() { splitRectNoClip(image.Rect(0, 0, 1, 1), 0, 4) })
}

func TestTileSchedulerHandsOutEachTileOnce(t *testing.T) {
	ts := newTileScheduler(image.Rect(0, 0, 256, 256), 32)
	var (
		mu  sync.Mutex
		got = map[image.Rectangle]int{}
		wg  sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				tile, ok := ts.popTile()
				if !ok {
					return
				}
				mu.Lock()
				got[tile]++
				mu.Unlock()
				ts.tileFinished(tile)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, got, 64)
	for tile, n := range got {
		assert.Equal(t, 1, n, "tile %v", tile)
	}
	assert.Equal(t, float32(1), ts.finished())
}
