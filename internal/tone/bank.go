package tone

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Bank holds one generated tone per button. Tones are synthesised once, when
// the bank is created; buttons sharing a frequency share a buffer.
type Bank struct {
	tones []Buffer
}

// NewBank generates a tone for every frequency in freqs, using base for all
// parameters other than the frequency.
func NewBank(freqs []float64, base Spec) (*Bank, error) {
	cache := make(map[float64]Buffer, len(freqs))
	b := &Bank{tones: make([]Buffer, len(freqs))}
	for i, f := range freqs {
		buf, ok := cache[f]
		if !ok {
			s := base
			s.Frequency = f
			var err error
			buf, err = Generate(s)
			if err != nil {
				return nil, fmt.Errorf("tone bank: button %d: %w", i, err)
			}
			cache[f] = buf
		}
		b.tones[i] = buf
	}
	return b, nil
}

// Len is the number of tones in the bank.
func (b *Bank) Len() int {
	return len(b.tones)
}

// Tone returns the cached buffer for a button index.
func (b *Bank) Tone(index int) (Buffer, bool) {
	if index < 0 || index >= len(b.tones) {
		return Buffer{}, false
	}
	return b.tones[index], true
}

// All returns every tone in index order.
func (b *Bank) All() []Buffer {
	out := make([]Buffer, len(b.tones))
	copy(out, b.tones)
	return out
}

// FileName is the name Export gives the tone of a button.
func FileName(index int, b Buffer) string {
	return fmt.Sprintf("tone_%d_%dhz.wav", index, int(math.Round(b.Spec.Frequency)))
}

// Export writes every tone in the bank to dir as a WAV file and returns the
// paths written. The directory is created if needed.
func (b *Bank) Export(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("tone export: %w", err)
	}
	paths := make([]string, 0, len(b.tones))
	for i, buf := range b.tones {
		path := filepath.Join(dir, FileName(i, buf))
		if err := SaveWAV(path, buf); err != nil {
			return paths, fmt.Errorf("tone export: button %d: %w", i, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
