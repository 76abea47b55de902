package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// initWindow opens a fixed size window with a 4.1 core context, centred on
// the primary monitor. The window stays hidden until it has been placed.
func initWindow(width, height int, title string) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	hints := []struct {
		hint  glfw.Hint
		value int
	}{
		{glfw.ContextVersionMajor, 4},
		{glfw.ContextVersionMinor, 1},
		{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
		{glfw.OpenGLForwardCompatible, glfw.True},
		{glfw.Resizable, glfw.False},
		{glfw.Visible, glfw.False},
	}
	for _, h := range hints {
		glfw.WindowHint(h.hint, h.value)
	}

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window %q: %w", title, err)
	}

	if mon := glfw.GetPrimaryMonitor(); mon != nil {
		if mode := mon.GetVideoMode(); mode != nil {
			mx, my := mon.GetPos()
			window.SetPos(mx+(mode.Width-width)/2, my+(mode.Height-height)/2)
		}
	}
	window.Show()

	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	return window, nil
}
