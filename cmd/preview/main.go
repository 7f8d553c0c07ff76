// Command preview opens a window and renders each frame of a scene sequence
// with the offline ray tracer, blitting the finished framebuffer to screen
// as soon as it completes. It is a thin, non-interactive viewer: no camera
// controls, no scene editing — cmd/render remains the batch entry point.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"render-engine/core"
	"render-engine/internal/opengl"
	"render-engine/render"
	"render-engine/scene"
	"render-engine/texture"
)

func main() {
	configPath := flag.String("config", "", "path to a RenderConfig (.json or .yaml)")
	holdSeconds := flag.Float64("hold", 1.5, "seconds to display each finished frame before advancing")
	flag.Parse()

	scenePaths := flag.Args()
	if len(scenePaths) == 0 {
		log.Fatal("preview: at least one scene JSON file is required")
	}

	cfg := scene.RenderConfig{NumSamples: 1, Width: 480, Height: 360}
	if *configPath != "" {
		loaded, err := loadPreviewConfig(*configPath)
		if err != nil {
			log.Fatalf("preview: %v", err)
		}
		cfg = loaded
	}

	win, err := core.NewWindow(core.WindowConfig{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Title:     "render-engine preview",
		Resizable: false,
		VSync:     true,
	})
	if err != nil {
		log.Fatalf("preview: open window: %v", err)
	}
	defer win.Destroy()

	blitter, err := opengl.NewBlitter()
	if err != nil {
		log.Fatalf("preview: init blitter: %v", err)
	}
	defer blitter.Destroy()

	cache := texture.NewCache()
	renderCfg := cfg.ToRenderConfig()
	aspect := float32(cfg.Width) / float32(cfg.Height)

	for i, scenePath := range scenePaths {
		if win.ShouldClose() {
			break
		}

		data, err := loadPreviewData(scenePath)
		if err != nil {
			log.Fatalf("preview: %v", err)
		}
		assembled, err := scene.Assemble(data, cache, aspect)
		if err != nil {
			log.Fatalf("preview: frame %d (%s): %v", i, scenePath, err)
		}

		rscene := &render.Scene{
			Primitives: assembled.Primitives,
			Lights:     assembled.Lights,
			Globals:    assembled.Globals,
			Textures:   cache,
		}
		frame := render.Frame{
			Scene:  rscene,
			Camera: assembled.Camera,
			Width:  cfg.Width,
			Height: cfg.Height,
			Seed:   uint64(i) + 1,
		}

		fmt.Printf("preview: rendering frame %d (%s)...\n", i, scenePath)
		fb := render.Render(frame, renderCfg)
		win.SetTitle(fmt.Sprintf("render-engine preview — frame %d/%d", i+1, len(scenePaths)))
		blitter.Upload(fb)

		deadline := time.Now().Add(time.Duration(*holdSeconds * float64(time.Second)))
		for time.Now().Before(deadline) && !win.ShouldClose() {
			win.PollEvents()
			if win.IsKeyPressed(core.KeyEscape) {
				win.Handle.SetShouldClose(true)
				break
			}
			blitter.Draw()
			win.SwapBuffers()
		}
	}
}
