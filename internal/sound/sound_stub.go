//go:build audio_stub

package sound

import (
	"simon/internal/logger"
	"simon/internal/tone"
)

// Context is a silent stand-in used when building without an audio device.
// It keeps the volume so callers see the same settings as with a device.
type Context struct {
	volume float64
}

func NewContext(sampleRate, channels int) (*Context, error) {
	logger.Logf("sound", "audio disabled at build time (%dHz, %d channels)", sampleRate, channels)
	return &Context{volume: 1.0}, nil
}

func (c *Context) SetVolume(v float64) {
	if c == nil {
		return
	}
	c.volume = min(max(v, 0), 1)
}

func (c *Context) Volume() float64 {
	if c == nil {
		return 0
	}
	return c.volume
}

func (c *Context) Play(b tone.Buffer) {}

func (c *Context) Close() error { return nil }
