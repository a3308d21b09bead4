package frame

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Kernels lists the scaling kernels by name.
var Kernels = map[string]draw.Interpolator{
	"nearest":     draw.NearestNeighbor,
	"approx":      draw.ApproxBiLinear,
	"bilinear":    draw.BiLinear,
	"catmull-rom": draw.CatmullRom,
}

// ParseKernel looks a kernel up by name. The empty name is catmull-rom.
func ParseKernel(name string) (draw.Interpolator, error) {
	if name == "" {
		return draw.CatmullRom, nil
	}
	k, ok := Kernels[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown scale kernel %q", name)
	}
	return k, nil
}

// Downscale resamples src to width x height with kernel k.
// A nil kernel means catmull-rom.
func Downscale(src image.Image, width, height int, k draw.Interpolator) *image.RGBA {
	if k == nil {
		k = draw.CatmullRom
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 || src.Bounds().Empty() {
		return dst
	}
	k.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
