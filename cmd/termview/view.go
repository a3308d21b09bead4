package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/frame"
	"github.com/marben/mandelview/session"
)

const upperHalfBlock = '▀'

type action int

const (
	actNone action = iota
	actNavigate
	actReset
	actQuit
)

// keyAction maps a key press to what the viewer should do.
func keyAction(ev *tcell.EventKey) (action, mandel.Command) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actNavigate, mandel.PanLeft
	case tcell.KeyRight:
		return actNavigate, mandel.PanRight
	case tcell.KeyUp:
		return actNavigate, mandel.PanUp
	case tcell.KeyDown:
		return actNavigate, mandel.PanDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, mandel.NoOp
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j', 'J':
			return actNavigate, mandel.ZoomIn
		case 'k', 'K':
			return actNavigate, mandel.ZoomOut
		case 'r', 'R':
			return actReset, mandel.NoOp
		case 'q', 'Q':
			return actQuit, mandel.NoOp
		}
	}
	return actNone, mandel.NoOp
}

// displaySize is the pixel size of a cols x rows terminal: one row is kept
// for the status line and every cell shows two pixels stacked.
func displaySize(cols, rows int) (width, height int) {
	return max(cols, 0), max(rows-1, 0) * 2
}

type viewer struct {
	screen tcell.Screen
	kernel draw.Interpolator
}

func newViewer(screen tcell.Screen, kernel draw.Interpolator) *viewer {
	return &viewer{screen: screen, kernel: kernel}
}

// draw puts f on the screen, scaled to the terminal, plus a status line.
func (v *viewer) draw(f session.Frame) {
	cols, rows := v.screen.Size()
	w, h := displaySize(cols, rows)
	img := frame.Downscale(f.Buffer, w, h, v.kernel)

	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top, bottom := img.RGBAAt(x, y), img.RGBAAt(x, y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			v.screen.SetContent(x, y/2, upperHalfBlock, nil, style)
		}
	}

	v.putLine(rows-1, cols, statusLine(f))
	v.screen.Show()
}

func statusLine(f session.Frame) string {
	return fmt.Sprintf(" %s  %dx%d  %s  [arrows j k r q]", f.Viewport, f.Buffer.Width, f.Buffer.Height, f.Elapsed.Round(time.Microsecond))
}

// putLine writes text in reverse video across row y, padded to cols cells.
func (v *viewer) putLine(y, cols int, text string) {
	runes := []rune(text)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Reverse(true))
	}
}
