package model

// Drawable describes one mesh segment when assembling a Static model.
type Drawable struct {
	TextureIndex int32
	BlendMode    BlendMode
	Opacity      float32
	Visible      bool
	IndexOffset  int32
	IndexCount   int32

	// Masks lists the indices of the drawables that clip this one, in
	// composition order. Indices may refer to drawables added later.
	Masks []int32
}

// Static is an in-memory Model. Attribute storage is column-oriented so the
// accessors can hand out their backing slices directly.
type Static struct {
	textureIndices []int32
	blendModes     []BlendMode
	opacities      []float32
	visibilities   []bool
	indexOffsets   []int32
	indexCounts    []int32
	maskCounts     []int32
	masks          [][]int32
}

// Builder assembles a Static model. Mask indices are not validated; feeding
// an out-of-range index is a contract violation, same as with a loaded model.
type Builder struct {
	drawables []Drawable
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a drawable and returns its index.
func (b *Builder) Add(d Drawable) int32 {
	b.drawables = append(b.drawables, d)
	return int32(len(b.drawables) - 1)
}

// Build materializes the model. The builder can keep being used afterwards;
// the built model does not share storage with it.
func (b *Builder) Build() *Static {
	n := len(b.drawables)
	m := &Static{
		textureIndices: make([]int32, n),
		blendModes:     make([]BlendMode, n),
		opacities:      make([]float32, n),
		visibilities:   make([]bool, n),
		indexOffsets:   make([]int32, n),
		indexCounts:    make([]int32, n),
		maskCounts:     make([]int32, n),
		masks:          make([][]int32, n),
	}

	for i, d := range b.drawables {
		m.textureIndices[i] = d.TextureIndex
		m.blendModes[i] = d.BlendMode
		m.opacities[i] = d.Opacity
		m.visibilities[i] = d.Visible
		m.indexOffsets[i] = d.IndexOffset
		m.indexCounts[i] = d.IndexCount
		m.maskCounts[i] = int32(len(d.Masks))
		if len(d.Masks) > 0 {
			m.masks[i] = append([]int32(nil), d.Masks...)
		}
	}

	return m
}

func (m *Static) DrawableCount() int      { return len(m.opacities) }
func (m *Static) TextureIndices() []int32 { return m.textureIndices }
func (m *Static) BlendModes() []BlendMode { return m.blendModes }
func (m *Static) Opacities() []float32    { return m.opacities }
func (m *Static) Visibilities() []bool    { return m.visibilities }
func (m *Static) IndexOffsets() []int32   { return m.indexOffsets }
func (m *Static) IndexCounts() []int32    { return m.indexCounts }
func (m *Static) MaskCounts() []int32     { return m.maskCounts }
func (m *Static) Masks() [][]int32        { return m.masks }

// SetOpacity updates a drawable's opacity for the next Renderer.Update.
func (m *Static) SetOpacity(drawable int32, opacity float32) {
	m.opacities[drawable] = opacity
}

// SetVisible updates a drawable's visibility for the next Renderer.Update.
func (m *Static) SetVisible(drawable int32, visible bool) {
	m.visibilities[drawable] = visible
}

// SetBlendMode updates a drawable's blend mode for the next Renderer.Update.
func (m *Static) SetBlendMode(drawable int32, mode BlendMode) {
	m.blendModes[drawable] = mode
}
