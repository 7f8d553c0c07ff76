package render

import (
	"math"
	"testing"

	rmath "render-engine/math"
)

func TestSphereSolverHitsAlongAxis(t *testing.T) {
	r := NewRay(rmath.Vec3{X: 0, Y: 0, Z: -5}, rmath.Vec3{X: 0, Y: 0, Z: 1})
	hit, ok := closestObjectHit(ShapeSphere, r)
	if !ok {
		t.Fatal("expected a hit on the unit sphere")
	}
	want := float32(4.5) // sphere surface at z = -0.5
	if math.Abs(float64(hit.T-want)) > 1e-4 {
		t.Errorf("T: expected %v, got %v", want, hit.T)
	}
	if hit.Normal.Z >= 0 {
		t.Errorf("Normal: expected to face the ray origin (-Z), got %v", hit.Normal)
	}
}

func TestSphereSolverMiss(t *testing.T) {
	r := NewRay(rmath.Vec3{X: 5, Y: 5, Z: -5}, rmath.Vec3{X: 0, Y: 0, Z: 1})
	if _, ok := closestObjectHit(ShapeSphere, r); ok {
		t.Error("expected no hit, ray passes well outside the unit sphere")
	}
}

func TestCubeSolverSixFaces(t *testing.T) {
	cases := []struct {
		name   string
		origin rmath.Vec3
		dir    rmath.Vec3
		normal rmath.Vec3
	}{
		{"+X", rmath.Vec3{X: 5, Y: 0, Z: 0}, rmath.Vec3{X: -1, Y: 0, Z: 0}, rmath.Vec3{X: 1, Y: 0, Z: 0}},
		{"-X", rmath.Vec3{X: -5, Y: 0, Z: 0}, rmath.Vec3{X: 1, Y: 0, Z: 0}, rmath.Vec3{X: -1, Y: 0, Z: 0}},
		{"+Y", rmath.Vec3{X: 0, Y: 5, Z: 0}, rmath.Vec3{X: 0, Y: -1, Z: 0}, rmath.Vec3{X: 0, Y: 1, Z: 0}},
		{"-Y", rmath.Vec3{X: 0, Y: -5, Z: 0}, rmath.Vec3{X: 0, Y: 1, Z: 0}, rmath.Vec3{X: 0, Y: -1, Z: 0}},
		{"+Z", rmath.Vec3{X: 0, Y: 0, Z: 5}, rmath.Vec3{X: 0, Y: 0, Z: -1}, rmath.Vec3{X: 0, Y: 0, Z: 1}},
		{"-Z", rmath.Vec3{X: 0, Y: 0, Z: -5}, rmath.Vec3{X: 0, Y: 0, Z: 1}, rmath.Vec3{X: 0, Y: 0, Z: -1}},
	}
	for _, c := range cases {
		r := NewRay(c.origin, c.dir)
		hit, ok := closestObjectHit(ShapeCube, r)
		if !ok {
			t.Fatalf("%s: expected a hit on the unit cube", c.name)
		}
		if hit.Normal != c.normal {
			t.Errorf("%s: expected normal %v, got %v", c.name, c.normal, hit.Normal)
		}
	}
}

func TestCylinderBodyRejectsBeyondCaps(t *testing.T) {
	// Ray travels horizontally at y=2, well above the cylinder's y in
	// [-0.5, 0.5] body range, but still crosses the infinite-cylinder
	// radius of 0.5 — the body solver must reject both roots.
	r := NewRay(rmath.Vec3{X: -5, Y: 2, Z: 0}, rmath.Vec3{X: 1, Y: 0, Z: 0})
	if hits := cylinderBodySolver(r, nil); len(hits) != 0 {
		t.Errorf("expected no hits above the cap range, got %d", len(hits))
	}
}

func TestQuadricRootsOrdering(t *testing.T) {
	// t^2 - 5t + 6 = (t-2)(t-3)
	t0, t1, n := quadricRoots(1, -5, 6)
	if n != 2 {
		t.Fatalf("expected 2 roots, got %d", n)
	}
	if t0 != 2 || t1 != 3 {
		t.Errorf("expected roots (2,3) in ascending order, got (%v,%v)", t0, t1)
	}
}

func TestQuadricRootsDegenerateA(t *testing.T) {
	_, _, n := quadricRoots(1e-9, 1, 1)
	if n != 0 {
		t.Errorf("expected a near-zero leading coefficient to report no roots, got %d", n)
	}
}
