package render

import (
	"math"

	rmath "render-engine/math"
	"render-engine/texture"
)

// Globals carries the scene-wide Phong coefficients, named after the
// original's SceneGlobalData: ka/kd/ks scale every material's
// ambient/diffuse/specular contribution uniformly.
type Globals struct {
	Ka, Kd, Ks float32
}

// reflectAround mirrors d about unit normal n: reflect = d - 2(d.n)n. Used
// both for the specular highlight direction and for mirror-reflection
// recursion.
func reflectAround(d, n rmath.Vec3) rmath.Vec3 {
	return d.Sub(n.Mul(2 * d.Dot(n)))
}

// shade evaluates the full Phong lighting equation at one hit point:
// ambient term plus, per visible light, a diffuse term (optionally
// blended with a sampled texture color) and a specular term.
func shade(
	hitPoint, normal, directionToCamera rmath.Vec3,
	mat *texture.Material,
	u, v float32,
	lights []Light,
	primitives []Primitive,
	globals Globals,
	cache *texture.Cache,
	shadowsEnabled, textureEnabled bool,
) RGBA {
	normal = normal.Normalize()
	directionToCamera = directionToCamera.Normalize()

	ambient := toRGBA(mat.Ambient).Mul(globals.Ka)
	result := ambient

	for _, light := range lights {
		l, lcolor, visible := light.Sample(hitPoint, primitives, shadowsEnabled)
		if !visible {
			continue
		}

		intersectToLight := l.Negate()
		diffuseAngle := normal.Dot(intersectToLight)
		if diffuseAngle < 0 {
			diffuseAngle = 0
		}

		var diffuseCoef RGBA
		if textureEnabled && mat.TextureMap.Used {
			texColor := sampleMaterialTexture(u, v, mat, cache)
			diffuseCoef = toRGBA(mat.Diffuse).Mul(globals.Kd).Mul(1 - mat.Blend).Add(texColor.Mul(mat.Blend))
		} else {
			diffuseCoef = toRGBA(mat.Diffuse).Mul(globals.Kd)
		}
		diffuse := diffuseCoef.Mul(diffuseAngle)

		r := reflectAround(l, normal)
		specAngle := r.Dot(directionToCamera)
		if specAngle < 0 {
			specAngle = 0
		}
		specAngle = powf(specAngle, mat.Shininess)
		specular := toRGBA(mat.Specular).Mul(globals.Ks).Mul(specAngle)

		result = result.Add(lcolor.MulColor(diffuse.Add(specular)))
	}

	result.A = 1
	return result
}

// sampleMaterialTexture looks up the already-loaded texture referenced by
// mat.TextureMap; if the image was never inserted into cache (for example
// an empty filename, which scene assembly skips), it contributes nothing
// rather than crashing the hot path.
func sampleMaterialTexture(u, v float32, mat *texture.Material, cache *texture.Cache) RGBA {
	m := cache.Get(mat.TextureMap.Filename)
	if m == nil {
		return Black
	}
	return toRGBA(texture.Sample(u, v, m, mat.TextureMap))
}

func toRGBA(c texture.Color) RGBA {
	return RGBA(c)
}

func powf(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
