// Package tone synthesises the button beeps. Each tone is a plain stereo sine
// wave with both channels identical. Generation is deterministic: the same
// Spec always produces the same samples.
package tone

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultDuration   = 0.5 // seconds
	DefaultSampleRate = 44100
	DefaultBitDepth   = 16
	ChannelCount      = 2
)

// ErrInvalidSpec is wrapped by every error returned from Spec.Validate.
var ErrInvalidSpec = errors.New("invalid tone spec")

// Spec describes a single tone.
type Spec struct {
	Frequency  float64 // Hz
	Duration   float64 // seconds
	SampleRate int
	BitDepth   int
}

// NewSpec returns a spec for freq with the default duration, sample rate and
// bit depth.
func NewSpec(freq float64) Spec {
	return Spec{
		Frequency:  freq,
		Duration:   DefaultDuration,
		SampleRate: DefaultSampleRate,
		BitDepth:   DefaultBitDepth,
	}
}

// Validate checks the preconditions of Generate. Samples are stored as int16
// so bit depths above 16 are rejected.
func (s Spec) Validate() error {
	switch {
	case !(s.Frequency > 0) || math.IsInf(s.Frequency, 0):
		return fmt.Errorf("%w: frequency %v", ErrInvalidSpec, s.Frequency)
	case !(s.Duration > 0) || math.IsInf(s.Duration, 0):
		return fmt.Errorf("%w: duration %v", ErrInvalidSpec, s.Duration)
	case s.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidSpec, s.SampleRate)
	case s.BitDepth < 2 || s.BitDepth > 16:
		return fmt.Errorf("%w: bit depth %d", ErrInvalidSpec, s.BitDepth)
	}
	return nil
}

// Frames is the number of sample frames the spec produces.
func (s Spec) Frames() int {
	return int(math.Round(s.Duration * float64(s.SampleRate)))
}

// MaxAmplitude is the peak sample value for the spec's bit depth.
func (s Spec) MaxAmplitude() int {
	return 1<<(s.BitDepth-1) - 1
}

// Buffer is a generated tone. Samples are interleaved left/right.
type Buffer struct {
	Spec    Spec
	Samples []int16
}

// Frames returns the number of stereo frames in the buffer.
func (b Buffer) Frames() int {
	return len(b.Samples) / ChannelCount
}

// Frame returns the left and right sample of frame i.
func (b Buffer) Frame(i int) (left, right int16) {
	return b.Samples[i*ChannelCount], b.Samples[i*ChannelCount+1]
}

// Bytes encodes the buffer as signed 16-bit little-endian PCM, the format the
// audio context is opened with.
func (b Buffer) Bytes() []byte {
	out := make([]byte, len(b.Samples)*2)
	for i, v := range b.Samples {
		out[i*2] = byte(v)
		out[i*2+1] = byte(v >> 8)
	}
	return out
}

// Generate synthesises the tone described by s.
func Generate(s Spec) (Buffer, error) {
	if err := s.Validate(); err != nil {
		return Buffer{}, err
	}

	n := s.Frames()
	maxSample := float64(s.MaxAmplitude())
	rate := float64(s.SampleRate)

	buf := Buffer{
		Spec:    s,
		Samples: make([]int16, n*ChannelCount),
	}
	for i := 0; i < n; i++ {
		t := float64(i) / rate
		v := int16(math.Round(maxSample * math.Sin(2*math.Pi*s.Frequency*t)))
		for ch := 0; ch < ChannelCount; ch++ {
			buf.Samples[i*ChannelCount+ch] = v
		}
	}
	return buf, nil
}

// MustGenerate is like Generate but panics if the spec is invalid. Intended
// for the fixed frequencies compiled into the game.
func MustGenerate(s Spec) Buffer {
	buf, err := Generate(s)
	if err != nil {
		panic(fmt.Sprintf("tone: %v", err))
	}
	return buf
}
