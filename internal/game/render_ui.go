package game

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"simon/internal/buttons"
	"simon/internal/palette"
)

// buildFontAtlas rasterises basicfont into a grid of FontCellW x FontCellH
// cells, one per character from FontFirst. The FontSolid cell is filled.
func buildFontAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	for ch := FontFirst; ch < FontSolid; ch++ {
		x, y := cellOrigin(rune(ch))
		d.Dot = fixed.P(x, y+FontAscent)
		d.DrawString(string(rune(ch)))
	}
	x, y := cellOrigin(FontSolid)
	draw.Draw(img, image.Rect(x, y, x+FontCellW, y+FontCellH), image.White, image.Point{}, draw.Src)
	return img
}

func cellOrigin(ch rune) (int, int) {
	cell := int(ch) - FontFirst
	return (cell % FontCols) * FontCellW, (cell / FontCols) * FontCellH
}

// InitFont uploads the font atlas.
func (r *Renderer) InitFont() error {
	img := buildFontAtlas()
	b := img.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	r.fontTex = tex
	return nil
}

// DrawRect queues a filled rectangle.
func (r *Renderer) DrawRect(rect buttons.Rect, col palette.RGB, alpha uint8) {
	x, y := cellOrigin(FontSolid)
	// sample the middle of the solid cell so nearest filtering never
	// reaches a neighbour
	u := (float32(x) + FontCellW/2) / FontAtlasW
	v := (float32(y) + FontCellH/2) / FontAtlasH
	r.quad(float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), u, v, u, v, col, alpha)
}

// DrawChar queues a single character at logical position (sx, sy).
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col palette.RGB) {
	if ch < FontFirst || ch >= FontSolid {
		return
	}
	x, y := cellOrigin(ch)
	u0 := float32(x) / FontAtlasW
	v0 := float32(y) / FontAtlasH
	u1 := float32(x+FontCellW) / FontAtlasW
	v1 := float32(y+FontCellH) / FontAtlasH
	r.quad(sx, sy, FontCellW*scale, FontCellH*scale, u0, v0, u1, v1, col, 255)
}

// DrawString queues a string at logical position (sx, sy) with given scale.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col palette.RGB) {
	advance := float32(FontCellW) * scale
	lineAdvance := float32(FontCellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col)
		x += advance
	}
}

// DrawStringCentered queues a single line of text centred on p.
func (r *Renderer) DrawStringCentered(text string, p buttons.Point, scale float32, col palette.RGB) {
	w := TextWidth(text, scale)
	h := int(float32(FontCellH) * scale)
	r.DrawString(text, int(p.X)-w/2, int(p.Y)-h/2, scale, col)
}

// TextWidth returns the width in logical pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*FontCellW) * scale)
}
