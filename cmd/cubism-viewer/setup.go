package main

import (
	"image"
	"image/color"
	"math"

	"cubism-gl/internal/graphics"
	"cubism-gl/internal/model"
	"cubism-gl/internal/render"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(width, height int) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(width, height, "cubism-viewer", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	glfw.SwapInterval(1)

	return window, nil
}

// demoScene is a hand-built model exercising every state transition the draw
// loop implements: both program switches, all three blend modes, a texture
// switch, opacity changes, an invisible drawable, and a two-mask clip.
type demoScene struct {
	model    *model.Static
	renderer *render.Renderer
	textures []uint32

	// figure is the animated, clipped drawable.
	figure int32

	vao, vbo, ebo uint32
}

func buildDemoScene(texturePath string) (*demoScene, error) {
	var vertices []float32
	var indices []uint16

	// quad appends a textured rectangle and returns its index-buffer slot.
	quad := func(x0, y0, x1, y1 float32) (offset, count int32) {
		base := uint16(len(vertices) / 4)
		offset = int32(len(indices))

		vertices = append(vertices,
			x0, y0, 0, 0,
			x1, y0, 1, 0,
			x1, y1, 1, 1,
			x0, y1, 0, 1,
		)
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+3, base,
		)
		return offset, 6
	}

	b := model.NewBuilder()

	backOff, backCount := quad(-0.95, -0.95, 0.95, 0.95)
	b.Add(model.Drawable{
		TextureIndex: 0,
		BlendMode:    model.BlendNormal,
		Opacity:      1.0,
		Visible:      true,
		IndexOffset:  backOff,
		IndexCount:   backCount,
	})

	glowOff, glowCount := quad(-0.8, 0.1, -0.1, 0.8)
	b.Add(model.Drawable{
		TextureIndex: 0,
		BlendMode:    model.BlendAdditive,
		Opacity:      0.6,
		Visible:      true,
		IndexOffset:  glowOff,
		IndexCount:   glowCount,
	})

	// The two masks precede the figure in index order but stay invisible;
	// they only contribute silhouettes.
	maskLeftOff, maskLeftCount := quad(-0.5, -0.6, 0.1, 0.6)
	maskLeft := b.Add(model.Drawable{
		TextureIndex: 1,
		BlendMode:    model.BlendNormal,
		Opacity:      1.0,
		Visible:      false,
		IndexOffset:  maskLeftOff,
		IndexCount:   maskLeftCount,
	})

	maskRightOff, maskRightCount := quad(-0.1, -0.4, 0.5, 0.4)
	maskRight := b.Add(model.Drawable{
		TextureIndex: 1,
		BlendMode:    model.BlendNormal,
		Opacity:      1.0,
		Visible:      false,
		IndexOffset:  maskRightOff,
		IndexCount:   maskRightCount,
	})

	figureOff, figureCount := quad(-0.6, -0.7, 0.6, 0.7)
	figure := b.Add(model.Drawable{
		TextureIndex: 1,
		BlendMode:    model.BlendNormal,
		Opacity:      1.0,
		Visible:      true,
		IndexOffset:  figureOff,
		IndexCount:   figureCount,
		Masks:        []int32{maskLeft, maskRight},
	})

	tintOff, tintCount := quad(0.0, -0.9, 0.9, 0.0)
	b.Add(model.Drawable{
		TextureIndex: 0,
		BlendMode:    model.BlendMultiplicative,
		Opacity:      0.8,
		Visible:      true,
		IndexOffset:  tintOff,
		IndexCount:   tintCount,
	})

	m := b.Build()

	scene := &demoScene{model: m, figure: figure}
	scene.uploadGeometry(vertices, indices)

	if err := scene.loadTextures(texturePath); err != nil {
		scene.Dispose()
		return nil, err
	}

	scene.renderer = render.New(m, scene.vao)

	return scene, nil
}

func (s *demoScene) uploadGeometry(vertices []float32, indices []uint16) {
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &s.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	// Position (x,y) + UV (u,v)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)

	gl.BindVertexArray(0)
}

// loadTextures fills the two atlas slots: slot 0 is a checkerboard, slot 1
// either comes from texturePath or falls back to a radial gradient.
func (s *demoScene) loadTextures(texturePath string) error {
	s.textures = []uint32{
		graphics.UploadTexture(checkerImage(256, 32)),
	}

	if texturePath != "" {
		texture, _, _, err := graphics.LoadTexture(texturePath)
		if err != nil {
			return err
		}
		s.textures = append(s.textures, texture)
		return nil
	}

	s.textures = append(s.textures, graphics.UploadTexture(gradientImage(256)))
	return nil
}

func (s *demoScene) Dispose() {
	graphics.ReleaseTextureTable(s.textures)
	gl.DeleteBuffers(1, &s.ebo)
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
}

func checkerImage(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{70, 70, 80, 255}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{180, 180, 190, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func gradientImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) - center) / center
			dy := (float64(y) - center) / center
			d := math.Sqrt(dx*dx + dy*dy)
			if d > 1 {
				d = 1
			}
			v := uint8(255 * (1 - d))
			img.SetRGBA(x, y, color.RGBA{v, uint8(float64(v) * 0.6), 255 - v, v})
		}
	}
	return img
}
