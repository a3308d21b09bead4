package frame

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/muesli/termenv"
	"golang.org/x/image/draw"
)

const upperHalfBlock = "▀"

// WriteANSI draws img into w as cols columns of true-colour half blocks.
// Each character cell shows two vertically stacked pixels.
func WriteANSI(w io.Writer, img image.Image, cols int) error {
	b := img.Bounds()
	if cols <= 0 || b.Empty() {
		return nil
	}
	rows := (cols*b.Dy()/b.Dx() + 1) / 2
	rows = max(rows, 1)
	small := Downscale(img, cols, rows*2, draw.ApproxBiLinear)

	bw := bufio.NewWriter(w)
	out := termenv.NewOutput(bw, termenv.WithProfile(termenv.TrueColor))
	for y := 0; y < rows*2; y += 2 {
		for x := 0; x < cols; x++ {
			top := hex(small.RGBAAt(x, y))
			bottom := hex(small.RGBAAt(x, y+1))
			s := out.String(upperHalfBlock).Foreground(out.Color(top)).Background(out.Color(bottom))
			if _, err := bw.WriteString(s.String()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
