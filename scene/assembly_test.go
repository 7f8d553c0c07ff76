package scene

import (
	"testing"

	rmath "render-engine/math"
	"render-engine/render"
	"render-engine/texture"
)

func TestAssembleDropsUnsupportedShapeTypes(t *testing.T) {
	data := RenderData{
		Globals: Globals{Ka: 1, Kd: 1, Ks: 1},
		Camera:  CameraData{Pos: rmath.Vec3{Z: 5}, Look: rmath.Vec3{Z: -1}, Up: rmath.Vec3{Y: 1}, HeightAngle: 1},
		Shapes: []ShapeData{
			{Type: ShapeTypeSphere, CTM: rmath.Mat4Identity()},
			{Type: ShapeTypeMesh, CTM: rmath.Mat4Identity()},
			{Type: ShapeTypeTorus, CTM: rmath.Mat4Identity()},
			{Type: ShapeTypeCube, CTM: rmath.Mat4Identity()},
		},
	}

	assembled, err := Assemble(data, texture.NewCache(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assembled.Primitives) != 2 {
		t.Errorf("expected mesh/torus to be dropped, leaving 2 primitives, got %d", len(assembled.Primitives))
	}
}

func TestAssembleBuildsCameraAndGlobals(t *testing.T) {
	data := RenderData{
		Globals: Globals{Ka: 0.2, Kd: 0.6, Ks: 0.8},
		Camera:  CameraData{Pos: rmath.Vec3{Z: 5}, Look: rmath.Vec3{Z: -1}, Up: rmath.Vec3{Y: 1}, HeightAngle: 1.2},
	}

	assembled, err := Assemble(data, texture.NewCache(), 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assembled.Globals != (render.Globals{Ka: 0.2, Kd: 0.6, Ks: 0.8}) {
		t.Errorf("expected globals to carry straight through, got %v", assembled.Globals)
	}
	if assembled.Camera.AspectRatio != 1.5 {
		t.Errorf("expected the supplied aspect ratio, got %v", assembled.Camera.AspectRatio)
	}
}

func TestAssembleFailsOnMissingTexture(t *testing.T) {
	data := RenderData{
		Camera: CameraData{Pos: rmath.Vec3{Z: 5}, Look: rmath.Vec3{Z: -1}, Up: rmath.Vec3{Y: 1}, HeightAngle: 1},
		Shapes: []ShapeData{
			{
				Type: ShapeTypeSphere,
				CTM:  rmath.Mat4Identity(),
				Material: texture.Material{
					TextureMap: texture.TextureMap{Used: true, Filename: "does-not-exist.png"},
				},
			},
		},
	}

	if _, err := Assemble(data, texture.NewCache(), 1); err == nil {
		t.Error("expected a missing texture file to fail assembly rather than substitute a color")
	}
}

func TestBuildLightConvertsSpotAnglesToRadians(t *testing.T) {
	l := buildLight(LightData{
		Type:        LightTypeSpot,
		OuterDeg:    30,
		PenumbraDeg: 10,
	})
	if l.Kind != render.LightSpot {
		t.Fatalf("expected a spot light, got kind %v", l.Kind)
	}
	wantOuter := float32(30 * 3.14159265 / 180)
	if diff := l.OuterAngle - wantOuter; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("OuterAngle: expected %v radians, got %v", wantOuter, l.OuterAngle)
	}
	if l.InnerAngle >= l.OuterAngle {
		t.Errorf("expected the inner cone to be narrower than the outer cone, inner=%v outer=%v", l.InnerAngle, l.OuterAngle)
	}
}

func TestShapeKindMapsKnownTypes(t *testing.T) {
	cases := map[ShapeType]render.ShapeKind{
		ShapeTypeCube:     render.ShapeCube,
		ShapeTypeCone:     render.ShapeCone,
		ShapeTypeCylinder: render.ShapeCylinder,
		ShapeTypeSphere:   render.ShapeSphere,
	}
	for in, want := range cases {
		got, ok := shapeKind(in)
		if !ok {
			t.Errorf("%v: expected it to be supported", in)
		}
		if got != want {
			t.Errorf("%v: expected %v, got %v", in, want, got)
		}
	}
	if _, ok := shapeKind(ShapeTypeMesh); ok {
		t.Error("expected mesh to be unsupported")
	}
}
