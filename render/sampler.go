package render

import (
	"golang.org/x/exp/rand"
)

// Sampler draws the (sx, sy) sub-pixel jitter offsets for stochastic
// supersampling. Each worker holds its own Sampler (seeded independently)
// so no worker contends on a shared generator.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler seeds a worker-local generator. Callers typically derive seed
// from (frame index, worker index) to keep renders reproducible per seed
// while still giving every worker an independent stream.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Jitter returns a uniform (sx, sy) in [0,1)^2.
func (s *Sampler) Jitter() (float32, float32) {
	return float32(s.rng.Float64()), float32(s.rng.Float64())
}

// samplePixel accumulates numSamples traced colors for pixel (col, row),
// forcing the final sample to land exactly at the pixel center (0.5, 0.5),
// then averages. numSamples == 1 disables supersampling and that single
// sample is the centered one.
func samplePixel(cam Camera, scene *Scene, col, row, w, h, numSamples int, sampler *Sampler) RGBA {
	var sum RGBA
	for i := 0; i < numSamples; i++ {
		var sx, sy float32
		if i == numSamples-1 {
			sx, sy = 0.5, 0.5
		} else {
			sx, sy = sampler.Jitter()
		}
		ray := cam.EyeRay(col, row, w, h, sx, sy)
		sum = sum.Add(traceRay(ray, scene, 0))
	}
	return sum.Mul(1 / float32(numSamples))
}
