package scene

import "render-engine/core"

// Material describes a mesh's Phong surface appearance as parsed from
// glTF, ahead of conversion to the ray tracer's texture.Material (see
// gltf_loader.go's toRayMaterial).
type Material struct {
	Name      string
	Albedo    core.Color // base diffuse color
	Specular  core.Color // Phong specular highlight color
	Shininess float32    // Phong shininess exponent (1-256+)
	Opacity   float32    // 1 = fully opaque; set only by the constructors, not read by toRayMaterial
}

// DefaultMaterial returns a plain white matte Phong material.
func DefaultMaterial() *Material {
	return &Material{
		Name:      "Default",
		Albedo:    core.ColorWhite,
		Specular:  core.Color{R: 0.3, G: 0.3, B: 0.3, A: 1},
		Shininess: 32,
		Opacity:   1,
	}
}

// NewMaterial creates a Phong material with the given albedo color.
func NewMaterial(name string, albedo core.Color) *Material {
	return &Material{
		Name:      name,
		Albedo:    albedo,
		Specular:  core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		Shininess: 32,
		Opacity:   1,
	}
}
