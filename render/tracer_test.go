package render

import (
	"math"
	"testing"

	rmath "render-engine/math"
	"render-engine/texture"
)

func TestTraceRayMissReturnsBlack(t *testing.T) {
	scene := &Scene{Textures: texture.NewCache()}
	ray := NewRay(rmath.Vec3{X: 0, Y: 0, Z: -5}, rmath.Vec3{X: 0, Y: 0, Z: 1})
	// no primitives at all: every ray misses.
	got := traceRay(ray, scene, 0)
	if got != Black {
		t.Errorf("expected Black on a miss, got %v", got)
	}
}

func TestTraceRayAppliesAmbientOnHit(t *testing.T) {
	mat := texture.DefaultMaterial()
	mat.Ambient = texture.Color{R: 0.2, G: 0.4, B: 0.6, A: 1}
	mat.Specular = texture.Color{}

	prim := NewPrimitive(ShapeSphere, rmath.Mat4Identity(), mat)
	scene := &Scene{
		Primitives: []Primitive{prim},
		Globals:    Globals{Ka: 0.5, Kd: 1, Ks: 1},
		Textures:   texture.NewCache(),
	}

	ray := NewRay(rmath.Vec3{X: 0, Y: 0, Z: -5}, rmath.Vec3{X: 0, Y: 0, Z: 1})
	got := traceRay(ray, scene, 0)

	want := RGBA{R: 0.1, G: 0.2, B: 0.3, A: 1}
	if math.Abs(float64(got.R-want.R)) > 1e-5 || math.Abs(float64(got.G-want.G)) > 1e-5 || math.Abs(float64(got.B-want.B)) > 1e-5 {
		t.Errorf("expected pure ambient %v (no lights, reflection disabled), got %v", want, got)
	}
}

func TestTraceRayStopsAtMaxReflectDepth(t *testing.T) {
	mat := texture.DefaultMaterial()
	mat.Reflective = texture.Color{R: 1, G: 1, B: 1, A: 1}

	prim := NewPrimitive(ShapeSphere, rmath.Mat4Identity(), mat)
	scene := &Scene{
		Primitives:       []Primitive{prim},
		Globals:          Globals{Ka: 1, Kd: 1, Ks: 1},
		Textures:         texture.NewCache(),
		EnableReflection: true,
	}

	ray := NewRay(rmath.Vec3{X: 0, Y: 0, Z: -5}, rmath.Vec3{X: 0, Y: 0, Z: 1})
	// Calling at the cap directly must short-circuit the recursive branch
	// rather than descend past MaxReflectDepth.
	got := traceRay(ray, scene, MaxReflectDepth)

	mat2 := texture.DefaultMaterial()
	mat2.Reflective = texture.Color{R: 1, G: 1, B: 1, A: 1}
	wantAmbient := toRGBA(mat2.Ambient).Mul(scene.Globals.Ka)
	if math.Abs(float64(got.R-wantAmbient.R)) > 1e-5 {
		t.Errorf("expected the local shade only at max depth, got %v", got)
	}
}
