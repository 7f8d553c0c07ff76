// Package render implements the offline ray-traced rendering engine: the
// geometric intersection layer, the recursive Whitted-style shading
// pipeline, the stochastic pixel-sampling loop, the pixel-parallel
// dispatch and the separable-kernel post-process blur. It treats scene
// construction, configuration loading and image encoding as collaborators.
package render

import (
	"render-engine/math"
)

// Ray is an origin/direction pair. Direction is never the zero vector;
// callers are not required to keep it unit length.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

func NewRay(origin, direction math.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// PointAt evaluates the ray at parameter t: origin + t*direction.
func (r Ray) PointAt(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform applies an affine 4x4 matrix to the ray: the origin is
// transformed as a point, the direction as a vector. When renormalize is
// false the direction is left exactly as transformed, which is required
// when moving a ray from world space into object space so that t values
// reported by object-space solvers remain valid distances along the
// original world-space ray.
func (r Ray) Transform(m math.Mat4, renormalize bool) Ray {
	origin := m.TransformPoint(r.Origin)
	dir := m.TransformDirection(r.Direction)
	if renormalize {
		dir = dir.Normalize()
	}
	return Ray{Origin: origin, Direction: dir}
}
