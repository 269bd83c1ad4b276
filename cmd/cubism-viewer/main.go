package main

import (
	"flag"
	"log"
	"math"
	"runtime"
	"time"

	"cubism-gl/internal/graphics"
	"cubism-gl/internal/profiling"
	"cubism-gl/internal/render"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	width := flag.Int("width", 900, "window width")
	height := flag.Int("height", 600, "window height")
	texturePath := flag.String("texture", "", "optional texture for the clipped drawable (png)")
	animate := flag.Bool("animate", true, "pulse the clipped drawable's opacity")
	flag.Parse()

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	closer.Bind(glfw.Terminate)
	defer closer.Close()

	window, err := setupWindow(*width, *height)
	if err != nil {
		panic(err)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	device, err := graphics.NewDevice(int32(fbWidth), int32(fbHeight))
	if err != nil {
		panic(err)
	}
	closer.Bind(device.Dispose)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
		device.ResizeMaskBuffer(int32(w), int32(h))
	})

	scene, err := buildDemoScene(*texturePath)
	if err != nil {
		panic(err)
	}
	closer.Bind(scene.Dispose)

	log.Printf("cubism-viewer: %d drawables, %d textures",
		len(scene.renderer.Drawables), len(scene.textures))

	mvp := mgl32.Ortho2D(-1, 1, -1, 1)

	lastSummary := time.Now()

	for !window.ShouldClose() {
		glfw.PollEvents()

		gl.ClearColor(0.1, 0.1, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if *animate {
			opacity := float32(0.5 + 0.5*math.Sin(glfw.GetTime()*2))
			scene.model.SetOpacity(scene.figure, opacity)

			stop := profiling.Track("renderer.Update")
			scene.renderer.Update()
			stop()
		}

		stop := profiling.Track("render.Draw")
		render.Draw(device, scene.renderer, mvp, scene.textures)
		stop()

		window.SwapBuffers()
		profiling.EndFrame()

		if time.Since(lastSummary) >= 5*time.Second {
			log.Printf("frame timings: %s", profiling.Summary())
			profiling.Reset()
			lastSummary = time.Now()
		}
	}
}
