package model

// BlendMode selects how a drawable composites over what is already in the
// framebuffer.
type BlendMode int32

const (
	BlendNormal BlendMode = iota
	BlendAdditive
	BlendMultiplicative
)

// Model is the read-only query surface the renderer consumes. Accessors
// return one value per drawable, indexed by drawable index; the slices stay
// valid (and may be refreshed in place) for the model's lifetime.
//
// Static attributes (texture index, index-buffer layout, mask relation) are
// fixed at load time. Dynamic attributes (opacity, visibility, blend mode)
// may change between frames; callers pick them up via Renderer.Update.
type Model interface {
	DrawableCount() int

	// TextureIndices maps each drawable to a slot in the caller's
	// texture-handle table.
	TextureIndices() []int32

	BlendModes() []BlendMode
	Opacities() []float32
	Visibilities() []bool

	// IndexOffsets and IndexCounts locate each drawable's triangles inside
	// the renderer's shared index buffer. Offsets are in elements, not bytes.
	IndexOffsets() []int32
	IndexCounts() []int32

	// MaskCounts gives, per drawable, how many other drawables clip it;
	// Masks lists those drawables' indices in composition order. A drawable
	// with mask count zero has a nil or empty mask list.
	MaskCounts() []int32
	Masks() [][]int32
}
