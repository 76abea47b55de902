package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"simon/internal/buttons"
)

// Input gathers keyboard edges and left clicks between frames. Clicks are
// queued by the mouse callback in the order glfw delivers them so that
// several clicks landing in one tick can be resolved first-come.
type Input struct {
	prevKeys map[glfw.Key]bool
	clicks   []buttons.Point
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
	window.SetMouseButtonCallback(func(w *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if btn != glfw.MouseButtonLeft || action != glfw.Press {
			return
		}
		in.clicks = append(in.clicks, CursorLogicalPos(w))
	})
	return in
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Clicks returns the clicks queued since the previous call.
func (in *Input) Clicks() []buttons.Point {
	if len(in.clicks) == 0 {
		return nil
	}
	out := in.clicks
	in.clicks = nil
	return out
}

// CursorLogicalPos converts the cursor position to logical window pixels.
func CursorLogicalPos(window *glfw.Window) buttons.Point {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return buttons.Point{X: cx, Y: cy}
	}
	return buttons.Point{
		X: cx * WindowWidth / float64(winW),
		Y: cy * WindowHeight / float64(winH),
	}
}
