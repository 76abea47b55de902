package tone

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// container bit depth and format tag of exported files
const (
	wavBitDepth  = 16
	wavFormatPCM = 1
)

// WriteWAV encodes the buffer as a 16-bit stereo PCM WAV stream.
func WriteWAV(w io.WriteSeeker, b Buffer) error {
	if len(b.Samples) == 0 {
		return fmt.Errorf("wav: empty buffer")
	}

	enc := wav.NewEncoder(w, b.Spec.SampleRate, wavBitDepth, ChannelCount, wavFormatPCM)

	data := make([]int, len(b.Samples))
	for i, v := range b.Samples {
		data[i] = int(v)
	}
	ib := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: ChannelCount,
			SampleRate:  b.Spec.SampleRate,
		},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}

	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}

// SaveWAV writes the buffer to a new file at path.
func SaveWAV(path string, b Buffer) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wav: %w", err)
		}
	}()
	return WriteWAV(f, b)
}
