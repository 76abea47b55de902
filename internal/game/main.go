// Package game is the desktop front end: a glfw window, a gl renderer for
// the buttons and HUD, mouse and keyboard input, and the fixed-rate loop
// driving the state machine.
package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"simon/internal/buttons"
	"simon/internal/config"
	"simon/internal/logger"
	"simon/internal/palette"
	"simon/internal/scores"
	"simon/internal/simon"
	"simon/internal/sound"
	"simon/internal/tone"
)

const tag = "game"

// maxFrameTime caps the time fed to the tick accumulator after a stall.
const maxFrameTime = 100 * time.Millisecond

// RunDesktop opens the window and plays until the window is closed or
// Escape is pressed. Quitting persists nothing; scores are only written at
// game over.
func RunDesktop(cfg config.Config) error {
	runtime.LockOSThread()

	window, err := initWindow(WindowWidth, WindowHeight, WindowTitle)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	reg := buttons.Default()
	bank, err := tone.NewBank(reg.Frequencies(), tone.NewSpec(0))
	if err != nil {
		return err
	}

	// audio is optional. without a device the game runs silently
	var snd *sound.Context
	if cfg.Mute {
		logger.Log(tag, "muted")
	} else if snd, err = sound.NewContext(tone.DefaultSampleRate, tone.ChannelCount); err != nil {
		logger.Logf(tag, "audio init failed (continuing without sound): %v", err)
		snd = nil
	} else {
		snd.SetVolume(cfg.Volume)
		defer snd.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Logf(tag, "seed %d", seed)

	store := scores.New(cfg.ScoreFile)
	flashes := buttons.NewFlashes(cfg.FlashDuration)
	var view hud

	bus := simon.NewEventBus()
	bus.Subscribe(simon.EventFlash, func(e simon.Event) {
		flashes.Start(e.Button)
		if buf, ok := bank.Tone(e.Button); ok {
			snd.Play(buf)
		}
	})
	bus.Subscribe(simon.EventShowScore, func(e simon.Event) {
		view.score = e.Score
		view.top = e.Top
	})
	bus.Subscribe(simon.EventRoundAdvance, func(e simon.Event) {
		logger.Logf(tag, "round cleared, score %d", e.Score)
	})
	bus.Subscribe(simon.EventGameOver, func(e simon.Event) {
		view.gameOver = true
		logger.Logf(tag, "game over, score %d", e.Score)
	})

	session := simon.NewSession(reg.Len(), cfg.Timing(), simon.NewRand(seed), store, bus)
	session.NewRound()

	input := NewInput(window)
	step := cfg.TickDuration()
	var acc time.Duration
	pending := simon.NoClick

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := time.Duration((now - last) * float64(time.Second))
		last = now
		if dt > maxFrameTime {
			dt = maxFrameTime
		}

		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
			continue
		}
		space := input.JustPressed(window, glfw.KeySpace)
		enter := input.JustPressed(window, glfw.KeyEnter)
		clicks := input.Clicks()

		if session.Game().Phase() == simon.PhaseGameOver {
			restart := space || enter
			for _, p := range clicks {
				if restartRect().Contains(p.X, p.Y) {
					restart = true
				}
			}
			if restart && session.Restart() {
				view.gameOver = false
				flashes.Clear()
				acc = 0
				pending = simon.NoClick
			}
		} else if pending == simon.NoClick {
			if i, ok := reg.FirstHit(clicks); ok {
				pending = simon.Click(i)
			}
		}

		acc += dt
		for acc >= step {
			session.Tick(step, pending)
			pending = simon.NoClick
			acc -= step
		}
		flashes.Advance(dt)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.BeginFrame(fbW, fbH, palette.Palette.Background)
		RenderHUD(rend, reg, flashes, view)
		window.SwapBuffers()
	}

	logger.Log(tag, "quit")
	return nil
}
