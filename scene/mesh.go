package scene

import (
	"render-engine/core"
)

// Mesh is CPU-side renderable geometry produced by the glTF loader. It has
// no ray-traceable solver of its own; BakeShapes reduces it to a
// bounding-box Cube primitive for the ray tracer.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32

	MaterialName string    // reference to material by name
	Material     *Material // resolved material, set by LoadGLTF once materials are parsed
}

func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}
