// Package buttons holds the fixed layout of the four coloured hit targets.
// A button's index is its identity everywhere in the game; colour is only
// used for drawing.
package buttons

import "simon/internal/palette"

// Screen and button geometry (in window pixels).
const (
	ScreenWidth  = 640
	ScreenHeight = 500
	Size         = 200
)

// Tone frequencies (Hz), highest first.
const (
	BeepHigh    = 880
	BeepMedium  = 659
	BeepLow     = 554
	BeepVeryLow = 440
)

// Count is the number of buttons in the registry.
const Count = 4

// Point is a cursor position in window pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned rectangle. Contains treats all four edges as inside.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && x <= r.X+r.W && r.Y <= y && y <= r.Y+r.H
}

// Center returns the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Button is one hit target. Immutable after construction.
type Button struct {
	Index     int
	Rect      Rect
	Color     palette.RGB
	Flash     palette.RGB
	Frequency float64
}

// Registry is the set of buttons, indexed by Button.Index.
type Registry struct {
	buttons [Count]Button
}

// Default returns the standard layout:
//
//	0: top left,     yellow, 880 Hz
//	1: top right,    blue,   659 Hz
//	2: bottom left,  red,    554 Hz
//	3: bottom right, green,  440 Hz
func Default() *Registry {
	p := palette.Palette
	return &Registry{buttons: [Count]Button{
		{Index: 0, Rect: Rect{X: 110, Y: 50, W: Size, H: Size}, Color: p.DarkYellow, Flash: p.Yellow, Frequency: BeepHigh},
		{Index: 1, Rect: Rect{X: 330, Y: 50, W: Size, H: Size}, Color: p.DarkBlue, Flash: p.Blue, Frequency: BeepMedium},
		{Index: 2, Rect: Rect{X: 110, Y: 270, W: Size, H: Size}, Color: p.DarkRed, Flash: p.Red, Frequency: BeepLow},
		{Index: 3, Rect: Rect{X: 330, Y: 270, W: Size, H: Size}, Color: p.DarkGreen, Flash: p.Green, Frequency: BeepVeryLow},
	}}
}

// Len returns the number of buttons.
func (r *Registry) Len() int {
	return len(r.buttons)
}

// Button returns the button with the given index. It panics if the index is
// out of range.
func (r *Registry) Button(index int) Button {
	return r.buttons[index]
}

// Buttons returns a copy of all buttons in index order.
func (r *Registry) Buttons() []Button {
	out := make([]Button, len(r.buttons))
	copy(out, r.buttons[:])
	return out
}

// Frequencies returns the tone frequency of each button in index order.
func (r *Registry) Frequencies() []float64 {
	out := make([]float64, len(r.buttons))
	for i, b := range r.buttons {
		out[i] = b.Frequency
	}
	return out
}

// HitTest returns the index of the button containing the point.
func (r *Registry) HitTest(x, y float64) (int, bool) {
	for _, b := range r.buttons {
		if b.Rect.Contains(x, y) {
			return b.Index, true
		}
	}
	return -1, false
}

// FirstHit resolves all the clicks gathered during a single tick. The earliest
// click that lands on a button wins; clicks that miss every button are
// skipped.
func (r *Registry) FirstHit(points []Point) (int, bool) {
	for _, p := range points {
		if i, ok := r.HitTest(p.X, p.Y); ok {
			return i, true
		}
	}
	return -1, false
}
