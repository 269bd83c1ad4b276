package render

import (
	"cubism-gl/internal/model"

	"github.com/go-gl/mathgl/mgl32"
)

// Program identifies one of the rendering programs a Device provides.
// ProgramNonMasked is the zero value; initialize relies on that.
type Program int32

const (
	// ProgramNonMasked draws a drawable without clipping.
	ProgramNonMasked Program = iota

	// ProgramMask composites mask silhouettes into the mask buffer.
	ProgramMask

	// ProgramMasked draws a drawable clipped by the mask texture.
	ProgramMasked
)

// Device is the GPU call surface the draw loop drives. Every call maps to
// one state change or draw submission on the underlying API; the draw loop
// owns all elision, so implementations must apply calls unconditionally.
//
// Uniform uploads (SetMvp, SetOpacity, SetMaskTexture) target the program
// most recently passed to ActivateProgram. DeactivateMaskBuffer returns the
// mask buffer's color texture, sampleable until the next ActivateMaskBuffer.
type Device interface {
	ActivateProgram(p Program)
	SetMvp(mvp mgl32.Mat4)
	SetOpacity(opacity float32)
	SetDiffuseTexture(texture uint32)
	SetMaskTexture(texture uint32)
	SetBlend(mode model.BlendMode)

	BindGeometry(vertexArray uint32)

	// DrawIndexed draws indexCount indices starting at indexOffset elements
	// into the currently bound geometry's index buffer.
	DrawIndexed(indexOffset, indexCount int32)

	ActivateMaskBuffer()
	DeactivateMaskBuffer() uint32
}
