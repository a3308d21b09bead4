package mandel

import (
	"image"
)

// Renderer renders one tile of a full image into dst.
// The tile is given in dst's pixel coordinates.
type Renderer interface {
	RenderTile(v Viewport, tile image.Rectangle, dst *PixelBuffer)
}

// FrameRenderer produces complete images for a viewport.
type FrameRenderer interface {
	Render(v Viewport, width, height int) *PixelBuffer
}
