package scene

import (
	rmath "render-engine/math"
	"render-engine/render"
	"render-engine/texture"
)

// Globals is the scene-wide Phong coefficient set, carried verbatim from
// the original SceneGlobalData struct.
type Globals struct {
	Ka float32 `json:"ka"`
	Kd float32 `json:"kd"`
	Ks float32 `json:"ks"`
}

// CameraData is the declarative camera description an external collaborator
// (the scene-graph parser, or a hand-written JSON file) supplies per frame.
type CameraData struct {
	Pos         rmath.Vec3 `json:"pos"`
	Look        rmath.Vec3 `json:"look"`
	Up          rmath.Vec3 `json:"up"`
	HeightAngle float32    `json:"heightAngle"`
}

// ShapeType enumerates the primitive kinds a RenderData frame may
// reference. Mesh and Torus are accepted in the wire format but dropped
// during assembly with a logged warning.
type ShapeType string

const (
	ShapeTypeCube     ShapeType = "cube"
	ShapeTypeCone     ShapeType = "cone"
	ShapeTypeCylinder ShapeType = "cylinder"
	ShapeTypeSphere   ShapeType = "sphere"
	ShapeTypeMesh     ShapeType = "mesh"
	ShapeTypeTorus    ShapeType = "torus"
)

// ShapeData is one flattened scene-graph node: a primitive type, its
// material, and its cumulative world transform.
type ShapeData struct {
	Type     ShapeType         `json:"type"`
	Material texture.Material  `json:"material"`
	CTM      rmath.Mat4        `json:"ctm"`
}

// LightType enumerates the three light variants.
type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
)

// LightData is the wire representation of one light; angle fields are in
// degrees, converted to radians during assembly.
type LightData struct {
	Type     LightType     `json:"type"`
	Dir      rmath.Vec3    `json:"dir"`
	Pos      rmath.Vec3    `json:"pos"`
	Color    texture.Color `json:"color"`
	AttenC0  float32       `json:"attenC0"`
	AttenC1  float32       `json:"attenC1"`
	AttenC2  float32       `json:"attenC2"`
	OuterDeg float32       `json:"outerAngle"`
	PenumbraDeg float32    `json:"penumbra"`
}

// RenderData is one frame's complete scene: the external collaborator's
// sole contract with this renderer. Everything the core consumes for one
// frame arrives through this struct; how it was produced (XML scene-graph
// interpolation, a hand-authored JSON/YAML file) is out of scope.
type RenderData struct {
	Globals Globals     `json:"globals"`
	Camera  CameraData  `json:"camera"`
	Shapes  []ShapeData `json:"shapes"`
	Lights  []LightData `json:"lights"`
}

// RenderConfig is the feature-flag surface supplied by configuration
// loading, another out-of-scope collaborator. It mirrors render.Config
// plus a few fields the core never reads (kept here only so a config file
// can carry them without error).
type RenderConfig struct {
	EnableShadow         bool `json:"enableShadow" yaml:"enableShadow"`
	EnableReflection     bool `json:"enableReflection" yaml:"enableReflection"`
	EnableTextureMap     bool `json:"enableTextureMap" yaml:"enableTextureMap"`
	EnableSuperSample    bool `json:"enableSuperSample" yaml:"enableSuperSample"`
	NumSamples           int  `json:"numSamples" yaml:"numSamples"`
	EnablePostProcess    bool `json:"enablePostProcess" yaml:"enablePostProcess"`
	EnableParallelism    bool `json:"enableParallelism" yaml:"enableParallelism"`
	BlurRadius           int  `json:"blurRadius" yaml:"blurRadius"`
	EnableRefraction     bool `json:"enableRefraction" yaml:"enableRefraction"`
	EnableTextureFilter  bool `json:"enableTextureFilter" yaml:"enableTextureFilter"`
	EnableAcceleration   bool `json:"enableAcceleration" yaml:"enableAcceleration"`
	EnableDepthOfField   bool `json:"enableDepthOfField" yaml:"enableDepthOfField"`
	Width                int  `json:"width" yaml:"width"`
	Height               int  `json:"height" yaml:"height"`
}

// ToRenderConfig projects the enumerated flags this core actually consumes
// into render.Config; the four named-but-unused flags are intentionally
// dropped here.
func (c RenderConfig) ToRenderConfig() render.Config {
	return render.Config{
		EnableShadow:      c.EnableShadow,
		EnableReflection:  c.EnableReflection,
		EnableTextureMap:  c.EnableTextureMap,
		EnableSuperSample: c.EnableSuperSample,
		NumSamples:        c.NumSamples,
		EnablePostProcess: c.EnablePostProcess,
		EnableParallelism: c.EnableParallelism,
		BlurRadius:        c.BlurRadius,
	}
}
