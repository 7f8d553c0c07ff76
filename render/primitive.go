package render

import (
	rmath "render-engine/math"
	"render-engine/texture"
)

// Primitive is a world-space shape: an object-space solver composition
// transformed into the scene by a cumulative transformation matrix.
type Primitive struct {
	Shape     ShapeKind
	CTM       rmath.Mat4
	InvCTM    rmath.Mat4
	NormalMat rmath.Mat3
	Material  *texture.Material
}

// NewPrimitive derives InvCTM and NormalMat from ctm:
// normalMat = inverse(transpose(mat3(ctm))).
func NewPrimitive(shape ShapeKind, ctm rmath.Mat4, material *texture.Material) Primitive {
	return Primitive{
		Shape:     shape,
		CTM:       ctm,
		InvCTM:    ctm.Inverse(),
		NormalMat: rmath.NormalMatrix(ctm),
		Material:  material,
	}
}

// Hit is a world-space intersection against a single Primitive: the
// object-space t (valid in world space too, since rays are never
// renormalized crossing into object space), the world-space unit normal,
// object-space uv, and the struck material.
type Hit struct {
	T        float32
	Normal   rmath.Vec3
	U, V     float32
	Material *texture.Material
}

// Intersect transforms worldRay into object space, evaluates the shape's
// solvers, and maps the closest hit's normal back into world space.
func (p Primitive) Intersect(worldRay Ray) (Hit, bool) {
	objRay := worldRay.Transform(p.InvCTM, false)
	objHit, ok := closestObjectHit(p.Shape, objRay)
	if !ok {
		return Hit{}, false
	}
	worldNormal := p.NormalMat.MulVec3(objHit.Normal).Normalize()
	return Hit{
		T:        objHit.T,
		Normal:   worldNormal,
		U:        objHit.U,
		V:        objHit.V,
		Material: p.Material,
	}, true
}

// getIntersections returns every primitive's hit against ray, unordered.
func getIntersections(ray Ray, primitives []Primitive) []Hit {
	hits := make([]Hit, 0, len(primitives))
	for _, p := range primitives {
		if h, ok := p.Intersect(ray); ok {
			hits = append(hits, h)
		}
	}
	return hits
}

// closestHit returns the intersection with minimum t among primitives, or
// ok=false if ray hits nothing.
func closestHit(ray Ray, primitives []Primitive) (Hit, bool) {
	best := Hit{}
	found := false
	for _, p := range primitives {
		if h, ok := p.Intersect(ray); ok {
			if !found || h.T < best.T {
				best = h
				found = true
			}
		}
	}
	return best, found
}

// anyIntersection reports whether ray strikes any primitive at all, used
// for directional-light shadow rays which have no finite occlusion limit.
func anyIntersection(ray Ray, primitives []Primitive) bool {
	for _, p := range primitives {
		if _, ok := p.Intersect(ray); ok {
			return true
		}
	}
	return false
}

// anyIntersectionBefore reports whether ray strikes any primitive closer
// than worldPos, used for point/spot shadow rays whose occlusion limit is
// the light's own distance. t_limit is derived from whichever component of
// ray.Direction has the greatest magnitude, avoiding the division-by-
// near-zero latent in the original "always use component 0" computation.
func anyIntersectionBefore(ray Ray, primitives []Primitive, worldPos rmath.Vec3) bool {
	axis := dominantAxis(ray.Direction)
	diff := worldPos.Sub(ray.Origin)
	var num, den float32
	switch axis {
	case 0:
		num, den = diff.X, ray.Direction.X
	case 1:
		num, den = diff.Y, ray.Direction.Y
	default:
		num, den = diff.Z, ray.Direction.Z
	}
	if den == 0 {
		return anyIntersection(ray, primitives)
	}
	limit := num / den
	for _, p := range primitives {
		if h, ok := p.Intersect(ray); ok && h.T < limit {
			return true
		}
	}
	return false
}

func dominantAxis(d rmath.Vec3) int {
	ax, ay, az := absf(d.X), absf(d.Y), absf(d.Z)
	if ax >= ay && ax >= az {
		return 0
	}
	if ay >= az {
		return 1
	}
	return 2
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
