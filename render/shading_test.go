package render

import (
	"math"
	"testing"

	rmath "render-engine/math"
	"render-engine/texture"
)

func TestReflectAroundMirrorsAboutNormal(t *testing.T) {
	d := rmath.Vec3{X: 1, Y: -1, Z: 0}
	n := rmath.Vec3{X: 0, Y: 1, Z: 0}
	got := reflectAround(d, n)
	want := rmath.Vec3{X: 1, Y: 1, Z: 0}
	if got != want {
		t.Errorf("reflectAround: expected %v, got %v", want, got)
	}
}

func TestShadeAmbientOnlyWithNoLights(t *testing.T) {
	mat := texture.DefaultMaterial()
	mat.Ambient = texture.Color{R: 0.2, G: 0.4, B: 0.6, A: 1}

	globals := Globals{Ka: 0.5, Kd: 1, Ks: 1}
	result := shade(
		rmath.Vec3{}, rmath.Vec3{X: 0, Y: 1, Z: 0}, rmath.Vec3{X: 0, Y: 0, Z: 1},
		mat, 0, 0, nil, nil, globals, texture.NewCache(), false, false,
	)

	want := RGBA{R: 0.1, G: 0.2, B: 0.3, A: 1}
	if math.Abs(float64(result.R-want.R)) > 1e-5 || math.Abs(float64(result.G-want.G)) > 1e-5 || math.Abs(float64(result.B-want.B)) > 1e-5 {
		t.Errorf("expected pure ambient %v, got %v", want, result)
	}
}

func TestShadeDirectionalLightAddsDiffuse(t *testing.T) {
	mat := texture.DefaultMaterial()
	mat.Ambient = texture.Color{}
	mat.Diffuse = texture.Color{R: 1, G: 1, B: 1, A: 1}
	mat.Specular = texture.Color{}

	globals := Globals{Ka: 1, Kd: 1, Ks: 1}
	light := Light{Kind: LightDirectional, Dir: rmath.Vec3{X: 0, Y: -1, Z: 0}, Color: White}

	// Normal faces straight up into the light: full diffuse contribution.
	result := shade(
		rmath.Vec3{}, rmath.Vec3{X: 0, Y: 1, Z: 0}, rmath.Vec3{X: 0, Y: 1, Z: 0},
		mat, 0, 0, []Light{light}, nil, globals, texture.NewCache(), false, false,
	)
	if result.R < 0.99 {
		t.Errorf("expected near-full diffuse contribution, got %v", result)
	}
}

func TestPowfMatchesMathPow(t *testing.T) {
	got := powf(2, 0.5)
	want := float32(math.Sqrt(2))
	if math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("powf(2, 0.5): expected %v, got %v", want, got)
	}
}
