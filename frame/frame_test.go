package frame

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	mandel "github.com/marben/mandelview"
)

func checker(w, h int) *mandel.PixelBuffer {
	b := mandel.NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				b.SetPixel(x, y, mandel.RGB{R: 250, G: 250, B: 110})
			} else {
				b.SetPixel(x, y, mandel.RGB{R: 42, G: 72, B: 88})
			}
		}
	}
	return b
}

func TestEncodeRoundTrip(t *testing.T) {
	src := checker(7, 5)
	for _, f := range []Format{PNG, BMP, TIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, f))

			img, name, err := image.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, f.String(), name)
			require.Equal(t, src.Bounds(), img.Bounds())
			for y := 0; y < 5; y++ {
				for x := 0; x < 7; x++ {
					want := src.At(x, y)
					got := color.RGBAModel.Convert(img.At(x, y))
					assert.Equal(t, want, got, "(%d,%d)", x, y)
				}
			}
		})
	}
}

func TestEncodeUnknown(t *testing.T) {
	err := Encode(&bytes.Buffer{}, checker(1, 1), Format(9))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromFilename(t *testing.T) {
	tests := map[string]Format{
		"mandel.png":     PNG,
		"out/MANDEL.BMP": BMP,
		"a.tif":          TIFF,
		"a.b.tiff":       TIFF,
	}
	for name, want := range tests {
		got, err := FormatFromFilename(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := FormatFromFilename("mandel.jpg")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = FormatFromFilename("mandel")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDownscale(t *testing.T) {
	src := mandel.NewPixelBuffer(64, 32)
	for i := range src.Pix {
		src.Pix[i] = mandel.RGB{R: 0, G: 132, B: 136}
	}
	for name, k := range Kernels {
		dst := Downscale(src, 32, 16, k)
		require.Equal(t, image.Rect(0, 0, 32, 16), dst.Bounds(), name)
		assert.Equal(t, color.RGBA{0, 132, 136, 255}, dst.RGBAAt(10, 10), name)
	}
}

func TestDownscaleEmpty(t *testing.T) {
	dst := Downscale(mandel.NewPixelBuffer(0, 0), 4, 4, nil)
	assert.Equal(t, image.Rect(0, 0, 4, 4), dst.Bounds())
}

func TestParseKernel(t *testing.T) {
	k, err := ParseKernel("")
	require.NoError(t, err)
	assert.NotNil(t, k)

	_, err = ParseKernel("Bilinear")
	require.NoError(t, err)

	_, err = ParseKernel("lanczos")
	assert.Error(t, err)
}

func TestWriteANSI(t *testing.T) {
	src := mandel.NewPixelBuffer(40, 40)
	for i := range src.Pix {
		src.Pix[i] = mandel.RGB{R: 250, G: 250, B: 110}
	}
	var buf bytes.Buffer
	require.NoError(t, WriteANSI(&buf, src, 10))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, 10, strings.Count(lines[0], upperHalfBlock))
	assert.Contains(t, lines[0], "38;2;250;250;110")
	assert.Contains(t, lines[0], "48;2;250;250;110")
}

func TestWriteANSIEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteANSI(&buf, mandel.NewPixelBuffer(0, 0), 10))
	require.NoError(t, WriteANSI(&buf, checker(4, 4), 0))
	assert.Zero(t, buf.Len())
}
