package palette

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Float returns the colour as normalised components, as expected by the
// renderer's vertex attributes.
func (c RGB) Float() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// Lerp blends from a to b; t is clamped to [0,1].
func Lerp(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

var Palette = struct {
	White      RGB
	Black      RGB
	Green      RGB
	DarkGreen  RGB
	Blue       RGB
	DarkBlue   RGB
	Red        RGB
	DarkRed    RGB
	Yellow     RGB
	DarkYellow RGB
	Background RGB
}{
	White:      RGB{R: 255, G: 255, B: 255},
	Black:      RGB{R: 0, G: 0, B: 0},
	Green:      RGB{R: 0, G: 255, B: 0},
	DarkGreen:  RGB{R: 0, G: 155, B: 0},
	Blue:       RGB{R: 0, G: 0, B: 255},
	DarkBlue:   RGB{R: 0, G: 0, B: 155},
	Red:        RGB{R: 255, G: 0, B: 0},
	DarkRed:    RGB{R: 155, G: 0, B: 0},
	Yellow:     RGB{R: 255, G: 255, B: 0},
	DarkYellow: RGB{R: 155, G: 155, B: 0},
	Background: RGB{R: 0, G: 0, B: 0},
}
