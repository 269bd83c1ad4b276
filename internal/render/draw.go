package render

import (
	"cubism-gl/internal/model"

	"github.com/go-gl/mathgl/mgl32"
)

// blendModeNone is the tracked-blend sentinel, distinct from every valid
// BlendMode so the first comparison after a reset always re-applies.
const blendModeNone model.BlendMode = 3

// drawContext tracks the GPU state already applied during one Draw call so
// redundant transitions can be skipped. A tracked field is updated only
// alongside the device call that makes it true; it lives on the stack for
// exactly one Draw invocation.
type drawContext struct {
	device   Device
	renderer *Renderer
	mvp      mgl32.Mat4
	textures []uint32

	activeProgram   Program
	activeBlendMode model.BlendMode
	activeTexture   uint32
	activeOpacity   float32
}

func (c *drawContext) initialize(device Device, renderer *Renderer, mvp mgl32.Mat4, textures []uint32) {
	c.device = device
	c.renderer = renderer
	c.mvp = mvp
	c.textures = textures

	c.activeProgram = ProgramNonMasked
	c.activeBlendMode = blendModeNone
	c.activeTexture = 0
	c.activeOpacity = -1.0

	device.ActivateProgram(ProgramNonMasked)
	device.SetMvp(mvp)
}

// applyState brings the GPU to the state drawable d needs, touching only
// what differs from the tracked state. For a clipped drawable it first
// composites the drawable's masks into the mask buffer.
func (c *drawContext) applyState(d int32, drawable *RenderDrawable) {
	program := ProgramNonMasked

	maskCount := c.renderer.Model.MaskCounts()[d]

	var maskTexture uint32
	if maskCount > 0 {
		c.device.ActivateMaskBuffer()

		// Masks render with whatever opacity/texture the context tracked
		// going in; only their silhouette matters.
		c.device.ActivateProgram(ProgramMask)
		c.device.SetMvp(c.mvp)
		c.device.SetOpacity(c.activeOpacity)
		c.device.SetDiffuseTexture(c.activeTexture)

		// Masks always composite with normal alpha blending, whatever the
		// clipped drawable's own mode is.
		c.device.SetBlend(model.BlendNormal)

		for _, m := range c.renderer.Model.Masks()[d] {
			mask := &c.renderer.Drawables[m]
			c.device.DrawIndexed(mask.IndexOffset, mask.IndexCount)
		}

		maskTexture = c.device.DeactivateMaskBuffer()
		program = ProgramMasked
	}

	if program != c.activeProgram {
		c.activeProgram = program

		c.device.ActivateProgram(program)
		c.device.SetMvp(c.mvp)

		if program == ProgramMasked {
			c.device.SetMaskTexture(maskTexture)
		}

		// The old program's uniform state is gone with it; force the
		// remaining comparisons to re-apply.
		c.activeBlendMode = blendModeNone
		c.activeTexture = 0
		c.activeOpacity = -1.0
	}

	if texture := c.textures[drawable.TextureIndex]; texture != c.activeTexture {
		c.activeTexture = texture

		c.device.SetDiffuseTexture(texture)
	}

	if drawable.BlendMode != c.activeBlendMode {
		c.activeBlendMode = drawable.BlendMode

		c.device.SetBlend(drawable.BlendMode)
	}

	if drawable.Opacity != c.activeOpacity {
		c.activeOpacity = drawable.Opacity

		c.device.SetOpacity(drawable.Opacity)
	}
}

// Draw renders the model: it walks the renderer's sorted draw order, skips
// invisible drawables, applies the minimal state transitions for each one,
// and submits its indexed draw. Inputs are trusted; invalid indices or
// handles are caller contract violations.
//
// Draw must not run concurrently with another Draw on any renderer sharing
// the device: the mask buffer is a singleton rebind point.
func Draw(device Device, renderer *Renderer, mvp mgl32.Mat4, textures []uint32) {
	// Barebone renderers never draw.
	if renderer.Barebone {
		return
	}

	var context drawContext
	context.initialize(device, renderer, mvp, textures)

	device.BindGeometry(renderer.Geometry)

	for _, d := range renderer.DrawOrder {
		drawable := &renderer.Drawables[d]

		if !drawable.Visible {
			continue
		}

		context.applyState(d, drawable)

		device.DrawIndexed(drawable.IndexOffset, drawable.IndexCount)
	}
}
