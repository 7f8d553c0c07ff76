package texture

// Material holds the Phong coefficients and optional texture reference for
// one surface. Ambient/Diffuse/Specular/Reflective are RGBA
// multipliers combined with the scene-wide ka/kd/ks globals during shading;
// Shininess is the specular exponent; Blend mixes the diffuse color with
// the sampled texture color when TextureMap.Used is true. JSON tags let
// scene.RenderData decode materials directly without an intermediate type.
type Material struct {
	Name       string     `json:"name"`
	Ambient    Color      `json:"ambient"`
	Diffuse    Color      `json:"diffuse"`
	Specular   Color      `json:"specular"`
	Reflective Color      `json:"reflective"`
	Shininess  float32    `json:"shininess"`
	TextureMap TextureMap `json:"textureMap"`
	Blend      float32    `json:"blend"`
}

// DefaultMaterial is a plain white matte surface with no texture and no
// reflectivity.
func DefaultMaterial() *Material {
	white := Color{1, 1, 1, 1}
	return &Material{
		Name:      "Default",
		Ambient:   white,
		Diffuse:   white,
		Specular:  Color{0.5, 0.5, 0.5, 1},
		Shininess: 32,
	}
}
