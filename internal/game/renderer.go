package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"simon/internal/palette"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// floats per vertex: pos(2) + uv(2) + color(4)
const vertexFloats = 8

// Renderer batches coloured and textured quads in logical pixel space and
// draws them with a single program. Everything on screen is a quad: button
// faces, flash overlays and glyphs.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uResolution int32
	uFontTex    int32

	fontTex uint32

	buf []float32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	r := &Renderer{prog: prog}

	gl.UseProgram(prog)
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.uFontTex, 0)

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(vertexFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.vao = vao
	r.vbo = vbo
	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the framebuffer to bg. The viewport covers the whole
// framebuffer; quads stay in logical coordinates.
func (r *Renderer) BeginFrame(fbW, fbH int, bg palette.RGB) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := bg.Float()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.buf = r.buf[:0]
}

// quad appends two triangles: TL, TR, BL then TR, BR, BL.
func (r *Renderer) quad(x, y, w, h, u0, v0, u1, v1 float32, col palette.RGB, alpha uint8) {
	cr, cg, cb := col.Float()
	ca := float32(alpha) / 255.0
	r.buf = append(r.buf,
		x, y, u0, v0, cr, cg, cb, ca,
		x+w, y, u1, v0, cr, cg, cb, ca,
		x, y+h, u0, v1, cr, cg, cb, ca,
		x+w, y, u1, v0, cr, cg, cb, ca,
		x+w, y+h, u1, v1, cr, cg, cb, ca,
		x, y+h, u0, v1, cr, cg, cb, ca,
	)
}

// Flush draws all queued quads in submission order and clears the queue.
func (r *Renderer) Flush() {
	if len(r.buf) == 0 {
		return
	}

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.Uniform2f(r.uResolution, WindowWidth, WindowHeight)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.buf) / vertexFloats
	gl.BufferData(gl.ARRAY_BUFFER, len(r.buf)*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
	r.buf = r.buf[:0]
}
