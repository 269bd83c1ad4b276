package render

import (
	"cubism-gl/internal/model"
)

// RenderDrawable holds the per-drawable attributes the draw loop reads.
// Index-buffer layout is fixed at construction; the dynamic attributes are
// refreshed from the model by Update and stay constant within one Draw.
type RenderDrawable struct {
	TextureIndex int32
	BlendMode    model.BlendMode
	Opacity      float32
	Visible      bool
	IndexOffset  int32
	IndexCount   int32
}

// Renderer ties a model to its GPU-side geometry. The caller owns the
// geometry (one vertex array with all drawables' vertices and indices) and
// the draw order; Draw consumes both as-is.
type Renderer struct {
	Model     model.Model
	Drawables []RenderDrawable

	// DrawOrder is the externally sorted list of drawable indices, drawn
	// first to last. New seeds it with the identity order.
	DrawOrder []int32

	// Geometry is the vertex-array handle bound once per Draw.
	Geometry uint32

	// Barebone marks an instance that never draws (e.g. a template the
	// caller clones from). Draw returns immediately for it.
	Barebone bool
}

// New builds a renderer for m, copies the static index-buffer layout out of
// the model, and runs the first attribute refresh.
func New(m model.Model, geometry uint32) *Renderer {
	n := m.DrawableCount()
	r := &Renderer{
		Model:     m,
		Drawables: make([]RenderDrawable, n),
		DrawOrder: make([]int32, n),
		Geometry:  geometry,
	}

	offsets := m.IndexOffsets()
	counts := m.IndexCounts()
	for i := range r.Drawables {
		r.Drawables[i].IndexOffset = offsets[i]
		r.Drawables[i].IndexCount = counts[i]
		r.DrawOrder[i] = int32(i)
	}

	r.Update()

	return r
}

// Update refreshes the dynamic drawable attributes from the model. Call once
// per frame before Draw; the draw loop itself never reads the model's
// dynamic state.
func (r *Renderer) Update() {
	textures := r.Model.TextureIndices()
	blends := r.Model.BlendModes()
	opacities := r.Model.Opacities()
	visible := r.Model.Visibilities()

	for i := range r.Drawables {
		d := &r.Drawables[i]
		d.TextureIndex = textures[i]
		d.BlendMode = blends[i]
		d.Opacity = opacities[i]
		d.Visible = visible[i]
	}
}

// SetDrawOrder replaces the draw order. The slice is used directly, not
// copied; it must contain each drawable index to draw, already sorted.
func (r *Renderer) SetDrawOrder(order []int32) {
	r.DrawOrder = order
}
