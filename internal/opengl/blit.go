package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-engine/render"
)

// blitVertexShader / blitFragmentShader draw a single full-screen triangle
// textured with the ray tracer's completed framebuffer. No vertex buffer is
// needed: gl_VertexID generates the clip-space positions and UVs directly.
const blitVertexShader = `
#version 410 core
out vec2 vUV;
void main() {
	vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
	vUV = pos;
	gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
` + "\x00"

const blitFragmentShader = `
#version 410 core
in vec2 vUV;
out vec4 fragColor;
uniform sampler2D frame;
void main() {
	fragColor = texture(frame, vec2(vUV.x, 1.0 - vUV.y));
}
` + "\x00"

// Blitter uploads a render.Framebuffer as a GL texture each frame and draws
// it full-screen, for cmd/preview's live-render window.
type Blitter struct {
	program uint32
	vao     uint32
	texID   uint32
	width   int
	height  int
}

func NewBlitter() (*Blitter, error) {
	prog, err := newProgram(blitVertexShader, blitFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("blitter: %w", err)
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Blitter{program: prog, vao: vao, texID: tex}, nil
}

// Upload converts fb to RGBA8 and re-specifies the GPU texture if its
// dimensions changed since the last call.
func (b *Blitter) Upload(fb *render.Framebuffer) {
	pix := make([]uint8, fb.Width*fb.Height*4)
	for row := 0; row < fb.Height; row++ {
		for col := 0; col < fb.Width; col++ {
			c := fb.At(col, row)
			i := (row*fb.Width + col) * 4
			pix[i+0] = toByte(c.R)
			pix[i+1] = toByte(c.G)
			pix[i+2] = toByte(c.B)
			pix[i+3] = toByte(c.A)
		}
	}

	gl.BindTexture(gl.TEXTURE_2D, b.texID)
	if fb.Width != b.width || fb.Height != b.height {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(fb.Width), int32(fb.Height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pix[0]))
		b.width, b.height = fb.Width, fb.Height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(fb.Width), int32(fb.Height),
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pix[0]))
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Draw renders the last-uploaded framebuffer full-screen into the current
// GL context's default framebuffer.
func (b *Blitter) Draw() {
	gl.UseProgram(b.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texID)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

func (b *Blitter) Destroy() {
	gl.DeleteTextures(1, &b.texID)
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteProgram(b.program)
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
