package mandel

import (
	"image"
	"image/color"
)

// RGB is a single opaque pixel.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// PixelBuffer is a dense Width x Height grid of pixels in row-major order.
// It implements image.Image so it can be encoded or scaled directly.
type PixelBuffer struct {
	Width, Height int
	Pix           []RGB
}

// NewPixelBuffer allocates a black buffer. Negative sizes are treated as 0.
func NewPixelBuffer(width, height int) *PixelBuffer {
	width, height = max(width, 0), max(height, 0)
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// Pixel returns the pixel at (x, y). Coordinates must be in range.
func (b *PixelBuffer) Pixel(x, y int) RGB {
	return b.Pix[y*b.Width+x]
}

// SetPixel stores c at (x, y). Coordinates must be in range.
func (b *PixelBuffer) SetPixel(x, y int, c RGB) {
	b.Pix[y*b.Width+x] = c
}

func (b *PixelBuffer) ColorModel() color.Model { return color.RGBAModel }

func (b *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

func (b *PixelBuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return color.RGBA{}
	}
	c := b.Pixel(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ToRGBA copies the buffer into a freshly allocated *image.RGBA.
func (b *PixelBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for i, c := range b.Pix {
		o := i * 4
		img.Pix[o+0] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = 0xff
	}
	return img
}
