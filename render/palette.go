package render

import (
	"fmt"
	"strings"

	mandel "github.com/marben/mandelview"
)

// Palette is the fixed colour table for escaped points.
var Palette = [40]mandel.RGB{
	{R: 42, G: 72, B: 88}, {R: 41, G: 77, B: 93}, {R: 39, G: 81, B: 99}, {R: 37, G: 86, B: 103},
	{R: 34, G: 91, B: 108}, {R: 30, G: 96, B: 113}, {R: 26, G: 101, B: 117}, {R: 21, G: 106, B: 121},
	{R: 14, G: 111, B: 125}, {R: 5, G: 116, B: 128}, {R: 0, G: 121, B: 131}, {R: 0, G: 126, B: 134},
	{R: 0, G: 132, B: 136}, {R: 0, G: 137, B: 138}, {R: 0, G: 142, B: 140}, {R: 0, G: 147, B: 141},
	{R: 0, G: 152, B: 142}, {R: 3, G: 157, B: 143}, {R: 18, G: 162, B: 143}, {R: 30, G: 167, B: 143},
	{R: 40, G: 172, B: 143}, {R: 50, G: 177, B: 142}, {R: 60, G: 182, B: 141}, {R: 70, G: 187, B: 140},
	{R: 80, G: 191, B: 139}, {R: 90, G: 196, B: 137}, {R: 100, G: 201, B: 135}, {R: 110, G: 205, B: 133},
	{R: 121, G: 210, B: 131}, {R: 131, G: 214, B: 129}, {R: 142, G: 218, B: 127}, {R: 153, G: 222, B: 124},
	{R: 165, G: 226, B: 122}, {R: 176, G: 230, B: 120}, {R: 188, G: 234, B: 117}, {R: 200, G: 237, B: 115},
	{R: 212, G: 241, B: 113}, {R: 224, G: 244, B: 112}, {R: 237, G: 247, B: 111}, {R: 250, G: 250, B: 110},
}

// Black is the colour of bound points.
var Black = mandel.RGB{}

// PaletteMode selects how escape iterations index the palette.
type PaletteMode int

const (
	// PaletteLegacy cycles through the first 26 entries only,
	// matching the classic viewer pixel for pixel.
	PaletteLegacy PaletteMode = iota
	// PaletteFull cycles through all 40 entries.
	PaletteFull
)

const legacyModulus = 26

// Modulus returns the number of palette entries reachable in mode m.
func (m PaletteMode) Modulus() uint32 {
	if m == PaletteFull {
		return uint32(len(Palette))
	}
	return legacyModulus
}

func (m PaletteMode) String() string {
	if m == PaletteFull {
		return "full"
	}
	return "legacy"
}

// ParsePaletteMode accepts "legacy" (or "") and "full".
func ParsePaletteMode(s string) (PaletteMode, error) {
	switch strings.ToLower(s) {
	case "", "legacy":
		return PaletteLegacy, nil
	case "full":
		return PaletteFull, nil
	}
	return PaletteLegacy, fmt.Errorf("unknown palette mode %q", s)
}

// Colorize maps an evaluation result to a pixel.
func (m PaletteMode) Colorize(r Result) mandel.RGB {
	n, ok := r.Iterations()
	if !ok {
		return Black
	}
	return Palette[n%m.Modulus()]
}
