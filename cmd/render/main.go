// Command render drives the offline ray tracer over one or more per-frame
// scene files, writing one PNG per frame. Configuration loading and image
// encoding live here, never inside the render package itself.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"render-engine/render"
	"render-engine/scene"
	"render-engine/texture"
)

func main() {
	configPath := flag.String("config", "", "path to a RenderConfig (.json or .yaml)")
	outDir := flag.String("out", ".", "directory to write output PNGs into")
	width := flag.Int("width", 0, "canvas width (overrides config)")
	height := flag.Int("height", 0, "canvas height (overrides config)")
	blurRadius := flag.Int("blur-radius", 0, "post-process blur radius (0 = use config/default)")
	gltfPath := flag.String("gltf", "", "optional .glb/.gltf asset merged into every frame as bounding-cube primitives")
	flag.Parse()

	scenePaths := flag.Args()
	if len(scenePaths) == 0 {
		log.Fatal("render: at least one scene JSON file is required")
	}

	cfg := scene.RenderConfig{NumSamples: 1, Width: 64, Height: 64}
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("render: %v", err)
		}
		cfg = loaded
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *blurRadius > 0 {
		cfg.BlurRadius = *blurRadius
	}

	cache := texture.NewCache()
	renderCfg := cfg.ToRenderConfig()
	aspect := float32(cfg.Width) / float32(cfg.Height)

	for i, scenePath := range scenePaths {
		data, err := loadRenderData(scenePath)
		if err != nil {
			log.Fatalf("render: %v", err)
		}
		if *gltfPath != "" {
			data, err = scene.MergeGLTFShapes(*gltfPath, data)
			if err != nil {
				log.Fatalf("render: frame %d: %v", i, err)
			}
		}

		assembled, err := scene.Assemble(data, cache, aspect)
		if err != nil {
			log.Fatalf("render: frame %d (%s): %v", i, scenePath, err)
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

		fb := render.Render(frame, renderCfg)

		outPath := filepath.Join(*outDir, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(outPath, fb); err != nil {
			log.Fatalf("render: frame %d: %v", i, err)
		}
		log.Printf("render: wrote %s", outPath)
	}
}

func writePNG(path string, fb *render.Framebuffer) error {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for row := 0; row < fb.Height; row++ {
		for col := 0; col < fb.Width; col++ {
			img.SetNRGBA(col, row, fb.At(col, row).ToNRGBA())
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return nil
}
