package render

import (
	"math"

	rmath "render-engine/math"
)

// epsQuadric is the minimum |A| a quadric coefficient must have before its
// solver is trusted; below this the ray is treated as parallel to the
// degenerate axis and the solver contributes no hit.
const epsQuadric = 1e-6

// ObjectHit is an intersection reported in object space by a solver: the
// ray parameter, the (not yet normalized, not yet world-space) surface
// normal, and the object-space uv.
type ObjectHit struct {
	T      float32
	Normal rmath.Vec3
	U, V   float32
}

// solverFunc intersects an object-space ray against one implicit surface
// piece and appends any valid (t >= 0) hits to dst.
type solverFunc func(r Ray, dst []ObjectHit) []ObjectHit

// squareSolver builds a solver for an axis-aligned unit square centered at
// the origin, offset along axis by pos (+-0.5). axis selects which of
// x/y/z is the plane normal.
func squareSolver(axis int, pos float32) solverFunc {
	return func(r Ray, dst []ObjectHit) []ObjectHit {
		d := axisComponent(r.Direction, axis)
		if d == 0 {
			return dst
		}
		p := axisComponent(r.Origin, axis)
		t := (pos - p) / d
		if t < 0 {
			return dst
		}
		hit := r.PointAt(t)
		var a, b float32
		switch axis {
		case 0:
			a, b = hit.Y, hit.Z
		case 1:
			a, b = hit.X, hit.Z
		default:
			a, b = hit.X, hit.Y
		}
		if a < -0.5 || a > 0.5 || b < -0.5 || b > 0.5 {
			return dst
		}
		n := rmath.Vec3{}
		sign := float32(1)
		if axisComponent(hit, axis) < 0 {
			sign = -1
		}
		setAxisComponent(&n, axis, sign)
		u, v := squareUV(axis, pos, hit)
		return append(dst, ObjectHit{T: t, Normal: n, U: u, V: v})
	}
}

func axisComponent(v rmath.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setAxisComponent(v *rmath.Vec3, axis int, val float32) {
	switch axis {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
}

// squareUV maps a hit point on a unit square to UV space; the table is
// not symmetric across axes or signs, so each case is spelled out.
func squareUV(axis int, pos float32, hit rmath.Vec3) (u, v float32) {
	positive := pos > 0
	switch axis {
	case 0: // X-plane
		if positive {
			return -hit.Z + 0.5, hit.Y + 0.5
		}
		return hit.Z + 0.5, hit.Y + 0.5
	case 1: // Y-plane
		if positive {
			return hit.X + 0.5, -hit.Z + 0.5
		}
		return hit.X + 0.5, hit.Z + 0.5
	default: // Z-plane
		if positive {
			return hit.X + 0.5, hit.Y + 0.5
		}
		return -hit.X + 0.5, hit.Y + 0.5
	}
}

// circleSolver builds a solver for a unit disk of radius 1/2 lying in the
// y = height plane, used to cap cones and cylinders.
func circleSolver(height float32) solverFunc {
	return func(r Ray, dst []ObjectHit) []ObjectHit {
		if r.Direction.Y == 0 {
			return dst
		}
		t := (height - r.Origin.Y) / r.Direction.Y
		if t < 0 {
			return dst
		}
		hit := r.PointAt(t)
		if hit.X*hit.X+hit.Z*hit.Z > 0.25 {
			return dst
		}
		sign := float32(1)
		if height < 0 {
			sign = -1
		}
		u, v := cylindricalUV(hit)
		return append(dst, ObjectHit{T: t, Normal: rmath.Vec3{X: 0, Y: sign, Z: 0}, U: u, V: v})
	}
}

// cylindricalUV is the atan2-based UV mapping shared by cone and cylinder
// bodies and their end caps.
func cylindricalUV(hit rmath.Vec3) (u, v float32) {
	theta := math.Atan2(float64(hit.Z), float64(hit.X))
	if theta < 0 {
		u = float32(-theta / (2 * math.Pi))
	} else {
		u = float32(1 - theta/(2*math.Pi))
	}
	v = hit.Y + 0.5
	return u, v
}

// quadricRoots solves A*t^2 + B*t + C = 0, returning the real roots (0, 1,
// or 2 of them) in ascending order. Below epsQuadric in |A| it reports no
// roots: the ray is effectively parallel to the degenerate direction.
func quadricRoots(a, b, c float32) (t0, t1 float32, n int) {
	if a > -epsQuadric && a < epsQuadric {
		return 0, 0, 0
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, 0
	}
	if disc == 0 {
		return -b / (2 * a), 0, 1
	}
	sq := float32(math.Sqrt(float64(disc)))
	r0 := (-b - sq) / (2 * a)
	r1 := (-b + sq) / (2 * a)
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return r0, r1, 2
}

// sphereSolver is the unit-radius-1/2 sphere body centered at the origin.
func sphereSolver(r Ray, dst []ObjectHit) []ObjectHit {
	p, d := r.Origin, r.Direction
	a := d.Dot(d)
	b := 2 * p.Dot(d)
	c := p.Dot(p) - 0.25
	t0, t1, n := quadricRoots(a, b, c)
	for i, t := range []float32{t0, t1}[:n] {
		_ = i
		if t < 0 {
			continue
		}
		hit := r.PointAt(t)
		normal := rmath.Vec3{X: 2 * hit.X, Y: 2 * hit.Y, Z: 2 * hit.Z}
		u, v := sphereUV(hit)
		dst = append(dst, ObjectHit{T: t, Normal: normal, U: u, V: v})
	}
	return dst
}

func sphereUV(hit rmath.Vec3) (u, v float32) {
	v = float32(math.Asin(float64(hit.Y/0.5))/math.Pi) + 0.5
	if v == 0 || v == 1 {
		return 0.5, v
	}
	u, _ = cylindricalUV(hit)
	return u, v
}

// cylinderBodySolver is the unit-radius-1/2, y in [-0.5, 0.5] cylinder
// lateral surface (without caps; caps are separate circleSolvers).
func cylinderBodySolver(r Ray, dst []ObjectHit) []ObjectHit {
	p, d := r.Origin, r.Direction
	a := d.X*d.X + d.Z*d.Z
	b := 2 * (p.X*d.X + p.Z*d.Z)
	c := p.X*p.X + p.Z*p.Z - 0.25
	t0, t1, n := quadricRoots(a, b, c)
	for _, t := range []float32{t0, t1}[:n] {
		if t < 0 {
			continue
		}
		hit := r.PointAt(t)
		if hit.Y <= -0.5 || hit.Y >= 0.5 {
			continue
		}
		normal := rmath.Vec3{X: 2 * hit.X, Y: 0, Z: 2 * hit.Z}
		u, v := cylindricalUV(hit)
		dst = append(dst, ObjectHit{T: t, Normal: normal, U: u, V: v})
	}
	return dst
}

// coneBodySolver is the cone with apex at y=+0.5 and base radius 1/2 at
// y=-0.5 (without the base cap, which is a separate circleSolver).
func coneBodySolver(r Ray, dst []ObjectHit) []ObjectHit {
	p, d := r.Origin, r.Direction
	a := d.X*d.X + d.Z*d.Z - d.Y*d.Y/4
	b := 2*p.X*d.X + 2*p.Z*d.Z + d.Y/4 - (p.Y*d.Y)/2
	c := p.X*p.X + p.Z*p.Z + p.Y/4 - p.Y*p.Y/4 - 1.0/16
	t0, t1, n := quadricRoots(a, b, c)
	for _, t := range []float32{t0, t1}[:n] {
		if t < 0 {
			continue
		}
		hit := r.PointAt(t)
		if hit.Y <= -0.5 || hit.Y > 0.5 {
			continue
		}
		normal := rmath.Vec3{X: 2 * hit.X, Y: -(2*hit.Y - 1) / 4, Z: 2 * hit.Z}
		u, v := cylindricalUV(hit)
		dst = append(dst, ObjectHit{T: t, Normal: normal, U: u, V: v})
	}
	return dst
}

// ShapeKind tags which dispatch table of solvers a Primitive uses.
type ShapeKind int

const (
	ShapeCube ShapeKind = iota
	ShapeCone
	ShapeCylinder
	ShapeSphere
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCube:
		return "Cube"
	case ShapeCone:
		return "Cone"
	case ShapeCylinder:
		return "Cylinder"
	case ShapeSphere:
		return "Sphere"
	default:
		return "Unknown"
	}
}

// solversFor returns the ordered list of solvers composing a shape.
func solversFor(k ShapeKind) []solverFunc {
	switch k {
	case ShapeCube:
		return []solverFunc{
			squareSolver(0, 0.5), squareSolver(0, -0.5),
			squareSolver(1, 0.5), squareSolver(1, -0.5),
			squareSolver(2, 0.5), squareSolver(2, -0.5),
		}
	case ShapeCone:
		return []solverFunc{coneBodySolver, circleSolver(-0.5)}
	case ShapeCylinder:
		return []solverFunc{cylinderBodySolver, circleSolver(-0.5), circleSolver(0.5)}
	case ShapeSphere:
		return []solverFunc{sphereSolver}
	default:
		return nil
	}
}

// closestObjectHit evaluates every solver for shape against r and returns
// the hit with the smallest non-negative t, or ok=false on a miss.
func closestObjectHit(k ShapeKind, r Ray) (hit ObjectHit, ok bool) {
	var buf [2]ObjectHit
	best := ObjectHit{}
	found := false
	for _, solve := range solversFor(k) {
		hits := solve(r, buf[:0])
		for _, h := range hits {
			if !found || h.T < best.T {
				best = h
				found = true
			}
		}
	}
	return best, found
}
