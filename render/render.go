package render

import "log"

// Config is the renderer's feature-flag surface. Refraction, texture
// filtering, acceleration structures and depth of field are accepted on
// the wire format but unused by this core and intentionally not modeled
// here.
type Config struct {
	EnableShadow      bool
	EnableReflection  bool
	EnableTextureMap  bool
	EnableSuperSample bool
	NumSamples        int
	EnablePostProcess bool
	EnableParallelism bool
	BlurRadius        int // 0 means "use the default of 1".
}

// Frame is everything one call to Render needs to produce a framebuffer:
// the assembled scene, the camera, the canvas size and the feature flags.
type Frame struct {
	Scene  *Scene
	Camera Camera
	Width  int
	Height int
	Seed   uint64
}

// Render produces one complete framebuffer for frame under cfg: it wires
// cfg's flags into the Scene, dispatches the pixel-parallel sampling pass,
// and applies the post-process blur if enabled.
func Render(frame Frame, cfg Config) *Framebuffer {
	frame.Scene.EnableShadow = cfg.EnableShadow
	frame.Scene.EnableReflection = cfg.EnableReflection
	frame.Scene.EnableTexture = cfg.EnableTextureMap

	numSamples := 1
	if cfg.EnableSuperSample && cfg.NumSamples > 1 {
		numSamples = cfg.NumSamples
	}

	fb := NewFramebuffer(frame.Width, frame.Height)
	Dispatch(frame.Camera, frame.Scene, fb, numSamples, cfg.EnableParallelism, frame.Seed)

	if cfg.EnablePostProcess {
		radius := cfg.BlurRadius
		if radius <= 0 {
			radius = 1
		}
		Blur(fb, radius)
	}

	log.Printf("render: frame complete (%dx%d, %d samples/pixel)", frame.Width, frame.Height, numSamples)
	return fb
}
