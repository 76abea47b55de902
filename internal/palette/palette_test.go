package palette

import (
	"testing"

	"simon/internal/test"
)

func TestLerp(t *testing.T) {
	a := Palette.DarkYellow
	b := Palette.Yellow
	test.ExpectEquality(t, Lerp(a, b, -1), a)
	test.ExpectEquality(t, Lerp(a, b, 0), a)
	test.ExpectEquality(t, Lerp(a, b, 1), b)
	test.ExpectEquality(t, Lerp(a, b, 2), b)
	test.ExpectEquality(t, Lerp(a, b, 0.5), RGB{R: 205, G: 205, B: 0})
}

func TestMul(t *testing.T) {
	test.ExpectEquality(t, Palette.White.Mul(255), Palette.White)
	test.ExpectEquality(t, Palette.White.Mul(0), Palette.Black)
	test.ExpectEquality(t, Palette.Red.Mul(155), Palette.DarkRed)
}

func TestFloat(t *testing.T) {
	r, g, b := Palette.Blue.Float()
	test.ExpectEquality(t, r, float32(0))
	test.ExpectEquality(t, g, float32(0))
	test.ExpectEquality(t, b, float32(1))
}
