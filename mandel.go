package mandel

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Viewport maps output pixels onto the complex plane.
// Zoom is the span of both axes visible across the output image.
// The visible plane is centered on (-CenterX, CenterY).
type Viewport struct {
	CenterX, CenterY float64
	Zoom             float64
}

// DefaultViewport shows the whole set.
var DefaultViewport = Viewport{CenterX: 1, CenterY: 0, Zoom: 4}

// Valid reports whether v has a finite, positive zoom and a finite center.
func (v Viewport) Valid() bool {
	finite := func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
	return v.Zoom > 0 && finite(v.Zoom) && finite(v.CenterX) && finite(v.CenterY)
}

// Apply returns the viewport after navigation command cmd.
// v itself is never modified.
func (v Viewport) Apply(cmd Command) Viewport {
	step := v.Zoom / 4
	switch cmd {
	case PanLeft:
		v.CenterX += step
	case PanRight:
		v.CenterX -= step
	case PanUp:
		v.CenterY += step
	case PanDown:
		v.CenterY -= step
	case ZoomIn:
		v.Zoom /= 2
	case ZoomOut:
		v.Zoom *= 2
	}
	return v
}

// Plane returns the plane rectangle shown by v.
func (v Viewport) Plane() Region {
	left := -(v.CenterX + v.Zoom/2)
	top := v.CenterY + v.Zoom/2
	return Region{Xmin: left, Xmax: left + v.Zoom, Ymin: top - v.Zoom, Ymax: top}
}

func (v Viewport) String() string {
	return fmt.Sprintf("center=(%g, %g) zoom=%g", v.CenterX, v.CenterY, v.Zoom)
}

// Command is a single navigation step.
type Command int

const (
	NoOp Command = iota
	PanLeft
	PanRight
	PanUp
	PanDown
	ZoomIn  // J
	ZoomOut // K
)

var commandNames = map[Command]string{
	NoOp:     "noop",
	PanLeft:  "left",
	PanRight: "right",
	PanUp:    "up",
	PanDown:  "down",
	ZoomIn:   "j",
	ZoomOut:  "k",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand maps a textual command to a Command.
// Anything unrecognised is NoOp.
func ParseCommand(s string) Command {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "h":
		return PanLeft
	case "right", "l":
		return PanRight
	case "up":
		return PanUp
	case "down":
		return PanDown
	case "j", "zoom-in", "in":
		return ZoomIn
	case "k", "zoom-out", "out":
		return ZoomOut
	}
	return NoOp
}

// Region within the Mandelbrot set
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Viewport returns the smallest square viewport that covers r,
// centered on the middle of r.
func (r Region) Viewport() Viewport {
	zoom := math.Max(r.Xmax-r.Xmin, r.Ymax-r.Ymin)
	return Viewport{
		CenterX: -(r.Xmin + r.Xmax) / 2,
		CenterY: (r.Ymin + r.Ymax) / 2,
		Zoom:    zoom,
	}
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}
)

// Landmarks indexes the classic regions by the name goto commands use.
var Landmarks = map[string]Region{
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}

var ErrUnknownRegion = errors.New("unknown region")

// LookupRegion finds a landmark by name.
func LookupRegion(name string) (Region, error) {
	r, ok := Landmarks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
	}
	return r, nil
}

// LandmarkNames returns the landmark names in sorted order.
func LandmarkNames() []string {
	names := make([]string, 0, len(Landmarks))
	for n := range Landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
