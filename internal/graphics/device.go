package graphics

import (
	_ "embed"
	"fmt"

	"cubism-gl/internal/model"
	"cubism-gl/internal/render"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/nonmasked.vert
var nonMaskedVertSrc string

//go:embed shaders/nonmasked.frag
var nonMaskedFragSrc string

//go:embed shaders/masked.vert
var maskedVertSrc string

//go:embed shaders/masked.frag
var maskedFragSrc string

//go:embed shaders/mask.frag
var maskFragSrc string

// blendScale maps a blend mode to its
// {src color, dst color, src alpha, dst alpha} factors.
var blendScale = [3][4]uint32{
	// Normal blending.
	{gl.ONE, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA},

	// Additive blending.
	{gl.SRC_ALPHA, gl.ONE, gl.ZERO, gl.ONE},

	// Multiplicative blending.
	{gl.DST_COLOR, gl.ONE_MINUS_SRC_ALPHA, gl.ZERO, gl.ONE},
}

// Texture units are fixed per program: diffuse on 0, mask on 1.
const (
	diffuseTextureUnit = gl.TEXTURE0
	maskTextureUnit    = gl.TEXTURE1
)

// Device implements render.Device on an OpenGL 4.1 core context. It owns the
// three programs and the singleton mask buffer. Not safe for concurrent use;
// a GL context is single-streamed anyway.
type Device struct {
	programs   [3]*Shader
	active     *Shader
	maskBuffer *MaskBuffer
}

var _ render.Device = (*Device)(nil)

// NewDevice compiles the programs and allocates a mask buffer of the given
// size. The mask buffer covers the viewport; pass the framebuffer size.
func NewDevice(maskWidth, maskHeight int32) (*Device, error) {
	nonMasked, err := NewShader(nonMaskedVertSrc, nonMaskedFragSrc, "uMvp", "uDiffuse", "uOpacity")
	if err != nil {
		return nil, fmt.Errorf("non-masked program: %v", err)
	}

	mask, err := NewShader(nonMaskedVertSrc, maskFragSrc, "uMvp", "uDiffuse", "uOpacity")
	if err != nil {
		return nil, fmt.Errorf("mask program: %v", err)
	}

	masked, err := NewShader(maskedVertSrc, maskedFragSrc, "uMvp", "uDiffuse", "uOpacity", "uMask")
	if err != nil {
		return nil, fmt.Errorf("masked program: %v", err)
	}

	maskBuffer, err := NewMaskBuffer(maskWidth, maskHeight)
	if err != nil {
		return nil, err
	}

	d := &Device{maskBuffer: maskBuffer}
	d.programs[render.ProgramNonMasked] = nonMasked
	d.programs[render.ProgramMask] = mask
	d.programs[render.ProgramMasked] = masked

	// Bind the sampler units once; they never change.
	for _, program := range d.programs {
		program.Use()
		program.SetInt("uDiffuse", 0)
	}
	masked.Use()
	masked.SetInt("uMask", 1)

	return d, nil
}

// ActivateProgram makes p the target of subsequent uniform uploads.
func (d *Device) ActivateProgram(p render.Program) {
	d.active = d.programs[p]
	d.active.Use()
}

// SetMvp uploads the view-projection matrix to the active program.
func (d *Device) SetMvp(mvp mgl32.Mat4) {
	d.active.SetMatrix4("uMvp", &mvp[0])
}

// SetOpacity uploads the opacity to the active program.
func (d *Device) SetOpacity(opacity float32) {
	d.active.SetFloat("uOpacity", opacity)
}

// SetDiffuseTexture binds the diffuse texture.
func (d *Device) SetDiffuseTexture(texture uint32) {
	gl.ActiveTexture(diffuseTextureUnit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

// SetMaskTexture binds the mask texture, leaving the diffuse unit active.
func (d *Device) SetMaskTexture(texture uint32) {
	gl.ActiveTexture(maskTextureUnit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.ActiveTexture(diffuseTextureUnit)
}

// SetBlend enables blending and applies the mode's factors.
func (d *Device) SetBlend(mode model.BlendMode) {
	gl.Enable(gl.BLEND)

	scale := blendScale[mode]
	gl.BlendFuncSeparate(scale[0], scale[1], scale[2], scale[3])
}

// BindGeometry binds the shared vertex array.
func (d *Device) BindGeometry(vertexArray uint32) {
	gl.BindVertexArray(vertexArray)
}

// DrawIndexed draws triangles from the bound index buffer. Offsets arrive in
// elements; the buffer holds uint16 indices.
func (d *Device) DrawIndexed(indexOffset, indexCount int32) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, indexCount, gl.UNSIGNED_SHORT, uintptr(indexOffset)*2)
}

// ActivateMaskBuffer redirects rendering into the mask buffer.
func (d *Device) ActivateMaskBuffer() {
	d.maskBuffer.Activate()
}

// DeactivateMaskBuffer restores the previous target and returns the mask
// texture.
func (d *Device) DeactivateMaskBuffer() uint32 {
	return d.maskBuffer.Deactivate()
}

// ResizeMaskBuffer matches the mask buffer to a new framebuffer size.
func (d *Device) ResizeMaskBuffer(width, height int32) {
	d.maskBuffer.Resize(width, height)
}

// Dispose releases the programs and the mask buffer.
func (d *Device) Dispose() {
	for _, program := range d.programs {
		program.Dispose()
	}
	d.maskBuffer.Dispose()
}
