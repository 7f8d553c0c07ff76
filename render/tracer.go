package render

import (
	"render-engine/texture"
)

// epsReflect offsets recursive reflection ray origins off the surface to
// avoid self-intersection.
const epsReflect = 1e-3

// MaxReflectDepth is the hard recursion cap on mirror reflection; it
// bounds cost independent of any material's reflectivity.
const MaxReflectDepth = 4

// Scene bundles everything traceRay needs to resolve one ray: the
// read-only primitive/light lists built by scene assembly, the shading
// globals, the texture cache, and the active feature flags.
type Scene struct {
	Primitives []Primitive
	Lights     []Light
	Globals    Globals
	Textures   *texture.Cache

	EnableShadow     bool
	EnableReflection bool
	EnableTexture    bool
}

// traceRay resolves ray against scene, recursing into mirror reflection up
// to MaxReflectDepth. Misses return fully transparent black.
func traceRay(ray Ray, scene *Scene, depth int) RGBA {
	hit, ok := closestHit(ray, scene.Primitives)
	if !ok {
		return Black
	}

	directionToCamera := ray.Direction.Negate().Normalize()
	local := shade(
		ray.PointAt(hit.T), hit.Normal, directionToCamera,
		hit.Material, hit.U, hit.V,
		scene.Lights, scene.Primitives, scene.Globals, scene.Textures,
		scene.EnableShadow, scene.EnableTexture,
	)

	reflective := toRGBA(hit.Material.Reflective)
	if !scene.EnableReflection || isZeroColor(reflective) || depth == MaxReflectDepth {
		return local
	}

	hitPoint := ray.PointAt(hit.T)
	r := reflectAround(ray.Direction, hit.Normal).Normalize()
	originOffset := hitPoint.Add(r.Mul(epsReflect))
	recursiveRay := NewRay(originOffset, r)

	reflectColor := traceRay(recursiveRay, scene, depth+1)
	reflectContribution := reflective.Mul(scene.Globals.Ks).MulColor(reflectColor)
	return local.Add(reflectContribution)
}

// isZeroColor ignores alpha: alpha carries no meaning in shading
// coefficients.
func isZeroColor(c RGBA) bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}
