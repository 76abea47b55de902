package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quad vertex shader: logical pixel space quads, origin top left.
const quadVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Quad fragment shader: atlas coverage times colour. Rectangles sample the
// solid cell so they share the program with text.
const quadFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

// infoLog fetches a shader or program log through the matching gl getters.
func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no log"
	}
	buf := make([]uint8, n)
	getLog(id, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func compileShader(source string, stage uint32) (uint32, error) {
	shader := gl.CreateShader(stage)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", msg)
	}
	return shader, nil
}

// linkProgram compiles both stages and links them. The shader objects are
// released whatever the outcome.
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	var shaders []uint32
	defer func() {
		for _, sh := range shaders {
			gl.DeleteShader(sh)
		}
	}()
	for _, st := range []struct {
		src   string
		stage uint32
	}{{vertSrc, gl.VERTEX_SHADER}, {fragSrc, gl.FRAGMENT_SHADER}} {
		sh, err := compileShader(st.src, st.stage)
		if err != nil {
			return 0, err
		}
		shaders = append(shaders, sh)
	}

	program := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(program, sh)
	}
	gl.LinkProgram(program)
	for _, sh := range shaders {
		gl.DetachShader(program, sh)
	}

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return program, nil
}
