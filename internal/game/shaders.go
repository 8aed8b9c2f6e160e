package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Cell vertex shader: point sprites positioned in grid space. aPos is the
// cell coordinate; uOrigin/uCell place the board in framebuffer pixels.
const cellVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;  // cell coordinate
layout(location = 1) in float aSize; // size in cells
layout(location = 2) in vec4 aColor;

uniform vec2 uOrigin;
uniform float uCell;
uniform vec2 uResolution;

out vec4 vColor;

void main() {
    vec2 px = uOrigin + (aPos + 0.5) * uCell;
    vec2 ndc = (px / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize * uCell + 0.5));
    vColor = aColor;
}
` + "\x00"

// Cell fragment shader: filled square with a thin dark border and a soft
// top-left highlight, so cells read as tiles rather than flat pixels.
const cellFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    vec2 uv = gl_PointCoord - vec2(0.5);
    float ax = abs(uv.x);
    float ay = abs(uv.y);
    if (ax > 0.48 || ay > 0.48) discard;

    vec3 col = vColor.rgb;
    if (ax > 0.42 || ay > 0.42) {
        col *= 0.45;
    } else {
        float hi = clamp((max(0.0, -uv.x) + max(0.0, -uv.y)) * 0.6, 0.0, 0.25);
        col = mix(col, vec3(1.0), hi);
    }
    FragColor = vec4(col, vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
