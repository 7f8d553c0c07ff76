package render

import (
	"math"
	"testing"

	rmath "render-engine/math"
)

func TestNewCameraBuildsOrthonormalBasis(t *testing.T) {
	cam := NewCamera(
		rmath.Vec3{X: 0, Y: 0, Z: 5},
		rmath.Vec3{X: 0, Y: 0, Z: -1},
		rmath.Vec3{X: 0, Y: 1, Z: 0},
		float32(math.Pi)/2, 1,
	)

	// A point straight in front of the eye in camera space should land in
	// front of the eye in world space too.
	p := rmath.Vec3{X: 0, Y: 0, Z: -1}
	world := cam.InverseView.TransformPoint(p)
	if math.Abs(float64(world.Z-4)) > 1e-4 {
		t.Errorf("expected a point 1 unit in front of the eye to land at world z=4, got %v", world.Z)
	}
}

func TestEyeRayCenterPixelPointsDownLookVector(t *testing.T) {
	cam := NewCamera(
		rmath.Vec3{X: 0, Y: 0, Z: 0},
		rmath.Vec3{X: 0, Y: 0, Z: -1},
		rmath.Vec3{X: 0, Y: 1, Z: 0},
		float32(math.Pi)/2, 1,
	)

	r := cam.EyeRay(50, 50, 101, 101, 0.5, 0.5)
	dir := r.Direction.Normalize()
	if math.Abs(float64(dir.X)) > 1e-4 || math.Abs(float64(dir.Y)) > 1e-4 {
		t.Errorf("expected the center eye ray to point straight down -Z, got %v", dir)
	}
	if dir.Z >= 0 {
		t.Errorf("expected the center eye ray to point away from the eye (-Z), got %v", dir)
	}
}

func TestEyeRayOriginatesAtCameraPosition(t *testing.T) {
	pos := rmath.Vec3{X: 1, Y: 2, Z: 3}
	cam := NewCamera(pos, rmath.Vec3{X: 0, Y: 0, Z: -1}, rmath.Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi)/2, 1)

	r := cam.EyeRay(0, 0, 10, 10, 0, 0)
	if math.Abs(float64(r.Origin.X-pos.X)) > 1e-3 || math.Abs(float64(r.Origin.Y-pos.Y)) > 1e-3 || math.Abs(float64(r.Origin.Z-pos.Z)) > 1e-3 {
		t.Errorf("expected the eye ray to originate at the camera position %v, got %v", pos, r.Origin)
	}
}
