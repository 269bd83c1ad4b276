package render

import (
	"testing"

	"cubism-gl/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesGeometryAndSeedsIdentityOrder(t *testing.T) {
	b := model.NewBuilder()
	b.Add(model.Drawable{IndexOffset: 0, IndexCount: 6, Opacity: 1, Visible: true})
	b.Add(model.Drawable{IndexOffset: 6, IndexCount: 12, Opacity: 0.5})

	r := New(b.Build(), 7)

	require.Len(t, r.Drawables, 2)
	assert.Equal(t, uint32(7), r.Geometry)
	assert.Equal(t, []int32{0, 1}, r.DrawOrder)

	assert.Equal(t, int32(6), r.Drawables[1].IndexOffset)
	assert.Equal(t, int32(12), r.Drawables[1].IndexCount)

	// New runs the first refresh.
	assert.Equal(t, float32(1), r.Drawables[0].Opacity)
	assert.True(t, r.Drawables[0].Visible)
	assert.False(t, r.Drawables[1].Visible)
}

func TestUpdateRefreshesDynamicAttributes(t *testing.T) {
	b := model.NewBuilder()
	b.Add(model.Drawable{
		TextureIndex: 0,
		BlendMode:    model.BlendNormal,
		Opacity:      1.0,
		Visible:      true,
		IndexCount:   6,
	})
	m := b.Build()

	r := New(m, 1)

	m.SetOpacity(0, 0.25)
	m.SetVisible(0, false)
	m.SetBlendMode(0, model.BlendMultiplicative)

	// Stale until the next refresh.
	assert.Equal(t, float32(1.0), r.Drawables[0].Opacity)

	r.Update()

	assert.Equal(t, float32(0.25), r.Drawables[0].Opacity)
	assert.False(t, r.Drawables[0].Visible)
	assert.Equal(t, model.BlendMultiplicative, r.Drawables[0].BlendMode)

	// Geometry layout is static and survives refreshes.
	assert.Equal(t, int32(6), r.Drawables[0].IndexCount)
}
