package tone_test

import (
	"errors"
	"math"
	"testing"

	"simon/internal/test"
	"simon/internal/tone"
)

func TestGenerateLength(t *testing.T) {
	buf, err := tone.Generate(tone.Spec{Frequency: 440, Duration: 0.5, SampleRate: 44100, BitDepth: 16})
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, buf.Frames(), 22050)
	test.ExpectEquality(t, len(buf.Samples), 44100)
	test.ExpectEquality(t, len(buf.Bytes()), 88200)

	// duration*rate is rounded rather than truncated
	buf, err = tone.Generate(tone.Spec{Frequency: 440, Duration: 2.6 / 44100, SampleRate: 44100, BitDepth: 16})
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, buf.Frames(), 3)

	buf, err = tone.Generate(tone.Spec{Frequency: 440, Duration: 3.0 / 44100, SampleRate: 44100, BitDepth: 16})
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, buf.Frames(), 3)
}

func TestGenerateSamples(t *testing.T) {
	buf := tone.MustGenerate(tone.NewSpec(440))

	l, r := buf.Frame(0)
	test.ExpectEquality(t, l, int16(0))
	test.ExpectEquality(t, r, int16(0))

	// a quarter period of 441Hz at 44100Hz is exactly 25 samples
	buf = tone.MustGenerate(tone.Spec{Frequency: 441, Duration: 0.5, SampleRate: 44100, BitDepth: 16})
	l, _ = buf.Frame(25)
	test.ExpectEquality(t, l, int16(32767))
	l, _ = buf.Frame(75)
	test.ExpectEquality(t, l, int16(-32767))

	// lower bit depths scale the peak
	buf = tone.MustGenerate(tone.Spec{Frequency: 441, Duration: 0.5, SampleRate: 44100, BitDepth: 8})
	l, _ = buf.Frame(25)
	test.ExpectEquality(t, l, int16(127))
}

func TestGenerateMatchesFormula(t *testing.T) {
	f := 659.0
	buf := tone.MustGenerate(tone.NewSpec(f))
	for _, n := range []int{0, 1, 2, 100, 1234, 22049} {
		tm := float64(n) / 44100
		want := int16(math.Round(32767 * math.Sin(2*math.Pi*f*tm)))
		l, r := buf.Frame(n)
		test.ExpectEquality(t, l, want)
		test.ExpectEquality(t, r, want)
	}
}

func TestChannelsIdentical(t *testing.T) {
	buf := tone.MustGenerate(tone.NewSpec(554))
	for i := 0; i < buf.Frames(); i++ {
		l, r := buf.Frame(i)
		if l != r {
			t.Fatalf("frame %d: left %d right %d", i, l, r)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := tone.MustGenerate(tone.NewSpec(880))
	b := tone.MustGenerate(tone.NewSpec(880))
	test.ExpectEquality(t, string(a.Bytes()), string(b.Bytes()))
}

func TestBytesLittleEndian(t *testing.T) {
	buf := tone.Buffer{Samples: []int16{1, -2, 0x1234, -32767}}
	test.ExpectSliceEquality(t, buf.Bytes(), []byte{0x01, 0x00, 0xfe, 0xff, 0x34, 0x12, 0x01, 0x80})
}

func TestInvalidSpec(t *testing.T) {
	specs := []tone.Spec{
		{Frequency: 0, Duration: 0.5, SampleRate: 44100, BitDepth: 16},
		{Frequency: -440, Duration: 0.5, SampleRate: 44100, BitDepth: 16},
		{Frequency: math.NaN(), Duration: 0.5, SampleRate: 44100, BitDepth: 16},
		{Frequency: 440, Duration: 0, SampleRate: 44100, BitDepth: 16},
		{Frequency: 440, Duration: -1, SampleRate: 44100, BitDepth: 16},
		{Frequency: 440, Duration: 0.5, SampleRate: 0, BitDepth: 16},
		{Frequency: 440, Duration: 0.5, SampleRate: -1, BitDepth: 16},
		{Frequency: 440, Duration: 0.5, SampleRate: 44100, BitDepth: 24},
		{Frequency: 440, Duration: 0.5, SampleRate: 44100, BitDepth: 1},
	}
	for _, s := range specs {
		_, err := tone.Generate(s)
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, errors.Is(err, tone.ErrInvalidSpec))
	}
}

func TestMustGeneratePanics(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	tone.MustGenerate(tone.NewSpec(0))
}

func TestBank(t *testing.T) {
	freqs := []float64{880, 659, 554, 440}
	bank, err := tone.NewBank(freqs, tone.NewSpec(1))
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, bank.Len(), 4)

	for i, f := range freqs {
		buf, ok := bank.Tone(i)
		test.ExpectedSuccess(t, ok)
		test.ExpectEquality(t, buf.Spec.Frequency, f)
		test.ExpectEquality(t, buf.Frames(), 22050)
	}

	_, ok := bank.Tone(4)
	test.ExpectedFailure(t, ok)
	_, ok = bank.Tone(-1)
	test.ExpectedFailure(t, ok)

	test.ExpectEquality(t, len(bank.All()), 4)
}

func TestBankSharesBuffers(t *testing.T) {
	bank, err := tone.NewBank([]float64{440, 440}, tone.NewSpec(1))
	test.ExpectedSuccess(t, err)
	a, _ := bank.Tone(0)
	b, _ := bank.Tone(1)
	test.ExpectEquality(t, &a.Samples[0], &b.Samples[0])
}

func TestBankInvalidFrequency(t *testing.T) {
	_, err := tone.NewBank([]float64{440, 0}, tone.NewSpec(1))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, errors.Is(err, tone.ErrInvalidSpec))
}
