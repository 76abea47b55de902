package buttons_test

import (
	"testing"
	"time"

	"simon/internal/buttons"
	"simon/internal/test"
)

func TestFlashRamp(t *testing.T) {
	f := buttons.NewFlashes(400 * time.Millisecond)
	test.ExpectEquality(t, f.Active(2), false)
	test.ExpectEquality(t, f.Alpha(2), uint8(0))

	f.Start(2)
	test.ExpectEquality(t, f.Active(2), true)
	test.ExpectEquality(t, f.Alpha(2), uint8(0))

	f.Advance(100 * time.Millisecond)
	test.ExpectEquality(t, f.Alpha(2), uint8(127))

	f.Advance(100 * time.Millisecond)
	test.ExpectEquality(t, f.Alpha(2), uint8(255))

	f.Advance(100 * time.Millisecond)
	test.ExpectEquality(t, f.Alpha(2), uint8(127))

	f.Advance(100 * time.Millisecond)
	test.ExpectEquality(t, f.Active(2), false)
	test.ExpectEquality(t, f.Alpha(2), uint8(0))

	// other buttons never lit
	for i := 0; i < buttons.Count; i++ {
		if i != 2 {
			test.ExpectEquality(t, f.Active(i), false)
		}
	}
}

func TestFlashRestart(t *testing.T) {
	f := buttons.NewFlashes(400 * time.Millisecond)
	f.Start(0)
	f.Advance(300 * time.Millisecond)
	f.Start(0)
	test.ExpectEquality(t, f.Alpha(0), uint8(0))
	f.Advance(200 * time.Millisecond)
	test.ExpectEquality(t, f.Alpha(0), uint8(255))
}

func TestFlashAllAndClear(t *testing.T) {
	f := buttons.NewFlashes(time.Second)
	for i := 0; i < buttons.Count; i++ {
		f.Start(i)
	}
	f.Advance(500 * time.Millisecond)
	for i := 0; i < buttons.Count; i++ {
		test.ExpectEquality(t, f.Alpha(i), uint8(255))
	}
	f.Clear()
	for i := 0; i < buttons.Count; i++ {
		test.ExpectEquality(t, f.Active(i), false)
	}
}

func TestFlashOutOfRange(t *testing.T) {
	f := buttons.NewFlashes(time.Second)
	f.Start(-1)
	f.Start(buttons.Count)
	test.ExpectEquality(t, f.Active(-1), false)
	test.ExpectEquality(t, f.Alpha(buttons.Count), uint8(0))

	// zero duration flashes never light
	z := buttons.NewFlashes(0)
	z.Start(1)
	test.ExpectEquality(t, z.Active(1), false)
}
