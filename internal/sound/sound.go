//go:build !audio_stub

// Package sound plays tone buffers on the default audio device.
package sound

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"simon/internal/logger"
	"simon/internal/tone"
)

const tag = "sound"

// Context owns the audio device. Each call to Play starts an independent
// voice so overlapping tones mix rather than cut each other off. The zero
// value and a nil *Context are silent.
type Context struct {
	ctx   *oto.Context
	ready chan struct{}

	sampleRate int
	channels   int

	mu     sync.Mutex
	volume float64
	closed bool

	voices sync.WaitGroup
	done   chan struct{}
}

// NewContext opens the audio device for signed 16-bit little-endian PCM.
// The device becomes usable asynchronously; tones played before then are
// dropped.
func NewContext(sampleRate, channels int) (*Context, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channels, oto.FormatSignedInt16LE)
	if err != nil {
		return nil, fmt.Errorf("sound: %w", err)
	}
	logger.Logf(tag, "device opened: %dHz, %d channels", sampleRate, channels)
	return &Context{
		ctx:        ctx,
		ready:      ready,
		sampleRate: sampleRate,
		channels:   channels,
		volume:     1.0,
		done:       make(chan struct{}),
	}, nil
}

// SetVolume sets the volume for tones started after the call.
func (c *Context) SetVolume(v float64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.volume = clamp(v, 0, 1)
}

// Volume is the volume given to new voices.
func (c *Context) Volume() float64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// Play starts b on a new voice and returns immediately.
func (c *Context) Play(b tone.Buffer) {
	if c == nil || c.ctx == nil || len(b.Samples) == 0 {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	vol := c.volume
	c.voices.Add(1)
	c.mu.Unlock()

	select {
	case <-c.ready:
	default:
		c.voices.Done()
		logger.Log(tag, "device not ready, tone dropped")
		return
	}

	if b.Spec.SampleRate != c.sampleRate {
		logger.Logf(tag, "tone sample rate %d does not match device rate %d", b.Spec.SampleRate, c.sampleRate)
	}

	go func() {
		defer c.voices.Done()
		player := c.ctx.NewPlayer(bytes.NewReader(b.Bytes()))
		defer player.Close()
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			select {
			case <-c.done:
				return
			case <-time.After(10 * time.Millisecond):
			}
		}
		if err := player.Err(); err != nil {
			logger.Logf(tag, "playback: %v", err)
		}
	}()
}

// Close stops every voice and suspends the device. Play is a no-op
// afterwards.
func (c *Context) Close() error {
	if c == nil || c.ctx == nil {
		return nil
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.done)
	c.mu.Unlock()

	c.voices.Wait()
	if err := c.ctx.Suspend(); err != nil {
		return fmt.Errorf("sound: %w", err)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
