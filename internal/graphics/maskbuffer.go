package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaskBuffer is the offscreen target mask silhouettes composite into. One
// instance serves every masked drawable in a frame; Activate/Deactivate
// pairs must therefore run strictly sequentially.
type MaskBuffer struct {
	fbo     uint32
	texture uint32
	width   int32
	height  int32

	// Saved on Activate, restored on Deactivate.
	prevFbo      int32
	prevViewport [4]int32
}

// NewMaskBuffer allocates the framebuffer and its color texture.
func NewMaskBuffer(width, height int32) (*MaskBuffer, error) {
	b := &MaskBuffer{width: width, height: height}

	gl.GenTextures(1, &b.texture)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &b.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, b.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, b.texture, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		b.Dispose()
		return nil, fmt.Errorf("mask framebuffer incomplete: 0x%x", status)
	}

	return b, nil
}

// Activate binds the mask target and clears it. The previously bound
// framebuffer and viewport are restored by Deactivate.
func (b *MaskBuffer) Activate() {
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &b.prevFbo)
	gl.GetIntegerv(gl.VIEWPORT, &b.prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, b.fbo)
	gl.Viewport(0, 0, b.width, b.height)
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Deactivate restores the previous target and returns the color texture the
// masks were composited into.
func (b *MaskBuffer) Deactivate() uint32 {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(b.prevFbo))
	gl.Viewport(b.prevViewport[0], b.prevViewport[1], b.prevViewport[2], b.prevViewport[3])

	return b.texture
}

// Resize reallocates the color texture, e.g. after a window resize.
func (b *MaskBuffer) Resize(width, height int32) {
	b.width = width
	b.height = height

	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Dispose releases the framebuffer and its texture.
func (b *MaskBuffer) Dispose() {
	gl.DeleteFramebuffers(1, &b.fbo)
	gl.DeleteTextures(1, &b.texture)
}
