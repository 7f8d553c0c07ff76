package render

import (
	"math"
	"testing"

	rmath "render-engine/math"
	"render-engine/texture"
)

func TestPrimitiveIntersectScaledSphere(t *testing.T) {
	// A sphere scaled to radius 2 along every axis (object space radius 0.5).
	ctm := rmath.Mat4Scale(rmath.Vec3{X: 4, Y: 4, Z: 4})
	mat := texture.DefaultMaterial()
	prim := NewPrimitive(ShapeSphere, ctm, mat)

	r := NewRay(rmath.Vec3{X: 0, Y: 0, Z: -10}, rmath.Vec3{X: 0, Y: 0, Z: 1})
	hit, ok := prim.Intersect(r)
	if !ok {
		t.Fatal("expected the scaled sphere to be hit")
	}
	want := float32(8) // surface at world z = -2
	if math.Abs(float64(hit.T-want)) > 1e-3 {
		t.Errorf("T: expected %v, got %v", want, hit.T)
	}
	if n := hit.Normal.Length(); math.Abs(float64(n-1)) > 1e-4 {
		t.Errorf("expected a unit-length world normal, got length %v", n)
	}
}

func TestDominantAxisPicksLargestComponent(t *testing.T) {
	cases := []struct {
		d    rmath.Vec3
		want int
	}{
		{rmath.Vec3{X: 1, Y: 0, Z: 0}, 0},
		{rmath.Vec3{X: 0, Y: -5, Z: 1}, 1},
		{rmath.Vec3{X: 0.1, Y: 0.1, Z: 9}, 2},
	}
	for _, c := range cases {
		if got := dominantAxis(c.d); got != c.want {
			t.Errorf("dominantAxis(%v): expected %d, got %d", c.d, c.want, got)
		}
	}
}

func TestAnyIntersectionBeforeRespectsLimit(t *testing.T) {
	mat := texture.DefaultMaterial()
	// Unit sphere at the origin.
	prim := NewPrimitive(ShapeSphere, rmath.Mat4Identity(), mat)
	primitives := []Primitive{prim}

	// Shadow ray from z=-5 toward the origin; the sphere surface is at
	// z=-0.5, well before a light sitting at z=10 beyond the sphere.
	ray := NewRay(rmath.Vec3{X: 0, Y: 0, Z: -5}, rmath.Vec3{X: 0, Y: 0, Z: 1})
	farLight := rmath.Vec3{X: 0, Y: 0, Z: 10}
	if !anyIntersectionBefore(ray, primitives, farLight) {
		t.Error("expected occlusion: the sphere sits between the ray origin and the light")
	}

	nearLight := rmath.Vec3{X: 0, Y: 0, Z: -6}
	if anyIntersectionBefore(ray, primitives, nearLight) {
		t.Error("expected no occlusion: the light is behind the ray origin, before the sphere")
	}
}

func TestClosestHitPicksNearest(t *testing.T) {
	mat := texture.DefaultMaterial()
	near := NewPrimitive(ShapeSphere, rmath.Mat4Translation(rmath.Vec3{X: 0, Y: 0, Z: -2}), mat)
	far := NewPrimitive(ShapeSphere, rmath.Mat4Translation(rmath.Vec3{X: 0, Y: 0, Z: -8}), mat)

	r := NewRay(rmath.Vec3{X: 0, Y: 0, Z: 0}, rmath.Vec3{X: 0, Y: 0, Z: -1})
	hit, ok := closestHit(r, []Primitive{far, near})
	if !ok {
		t.Fatal("expected a hit")
	}
	want := float32(1.5) // near sphere surface at z = -1.5
	if math.Abs(float64(hit.T-want)) > 1e-3 {
		t.Errorf("expected the nearer sphere's hit (T=%v), got T=%v", want, hit.T)
	}
}
