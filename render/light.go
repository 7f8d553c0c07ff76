package render

import (
	"math"

	rmath "render-engine/math"
)

// epsShadow offsets shadow-ray origins off the surface to avoid
// self-intersection.
const epsShadow = 1e-3

// AttenFunc is the (c0, c1, c2) coefficients of the point/spot attenuation
// curve: min(1, 1/(c2*d^2 + c1*d + c0)).
type AttenFunc struct {
	C0, C1, C2 float32
}

func (a AttenFunc) Eval(d float32) float32 {
	denom := a.C2*d*d + a.C1*d + a.C0
	if denom <= 0 {
		return 1
	}
	v := 1 / denom
	if v > 1 {
		return 1
	}
	return v
}

// LightKind tags which variant a Light holds.
type LightKind int

const (
	LightDirectional LightKind = iota
	LightPoint
	LightSpot
)

// Light is a tagged union over the three light variants. Only the fields
// relevant to Kind are meaningful.
type Light struct {
	Kind  LightKind
	Dir   rmath.Vec3 // Directional, Spot: unit direction the light travels
	Pos   rmath.Vec3 // Point, Spot
	Color RGBA
	Atten AttenFunc // Point, Spot

	InnerAngle float32 // Spot, radians
	OuterAngle float32 // Spot, radians
}

// Sample evaluates a light at hitPoint against the scene's primitives,
// returning the unit direction the light travels to reach the surface
// (pointing from the light toward hitPoint), the light's color after
// attenuation/falloff, and whether it is visible (unoccluded, or shadows
// disabled).
func (l Light) Sample(hitPoint rmath.Vec3, primitives []Primitive, shadowsEnabled bool) (lightToHit rmath.Vec3, color RGBA, visible bool) {
	switch l.Kind {
	case LightDirectional:
		lightToHit = l.Dir.Normalize()
		visible = true
		if shadowsEnabled {
			origin := hitPoint.Add(lightToHit.Negate().Mul(epsShadow))
			shadowRay := NewRay(origin, lightToHit.Negate())
			visible = !anyIntersection(shadowRay, primitives)
		}
		return lightToHit, l.Color, visible

	case LightPoint:
		lightToHit = hitPoint.Sub(l.Pos).Normalize()
		dist := hitPoint.Distance(l.Pos)
		color = l.Color.Mul(l.Atten.Eval(dist))
		visible = true
		if shadowsEnabled {
			toLight := lightToHit.Negate()
			origin := hitPoint.Add(toLight.Mul(epsShadow))
			shadowRay := NewRay(origin, toLight)
			visible = !anyIntersectionBefore(shadowRay, primitives, l.Pos)
		}
		return lightToHit, color, visible

	default: // LightSpot
		lightToHit = hitPoint.Sub(l.Pos).Normalize()
		dist := hitPoint.Distance(l.Pos)
		toHitFromSpotOrigin := lightToHit
		cosTheta := l.Dir.Normalize().Dot(toHitFromSpotOrigin)
		if cosTheta > 1 {
			cosTheta = 1
		} else if cosTheta < -1 {
			cosTheta = -1
		}
		theta := float32(math.Acos(float64(cosTheta)))
		factor := spotFalloff(theta, l.InnerAngle, l.OuterAngle)
		color = l.Color.Mul(factor * l.Atten.Eval(dist))
		visible = true
		if shadowsEnabled {
			toLight := lightToHit.Negate()
			origin := hitPoint.Add(toLight.Mul(epsShadow))
			shadowRay := NewRay(origin, toLight)
			visible = !anyIntersectionBefore(shadowRay, primitives, l.Pos)
		}
		return lightToHit, color, visible
	}
}

// spotFalloff implements the smoothstep penumbra: full intensity inside
// the inner cone, zero outside the outer cone, and a cubic smoothstep
// transition between.
func spotFalloff(theta, inner, outer float32) float32 {
	if theta <= inner {
		return 1
	}
	if theta > outer {
		return 0
	}
	penumbra := outer - inner
	if penumbra <= 0 {
		return 0
	}
	x := (theta - inner) / penumbra
	smooth := -2*x*x*x + 3*x*x
	return 1 - smooth
}
