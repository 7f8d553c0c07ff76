package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"render-engine/core"
	"render-engine/math"
	"render-engine/texture"
)

// GLTFResult holds the node hierarchy loaded from a .glb / .gltf file.
type GLTFResult struct {
	Roots []*Node // top-level nodes
}

// LoadGLTF opens a .glb or .gltf file and returns a ready-to-use scene graph.
// Mesh geometry, a Phong approximation of each PBR material, and the node
// hierarchy are all populated; textures are not sampled (see BakeShapes).
func LoadGLTF(path string) (*GLTFResult, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	result := &GLTFResult{}

	// ── 1. Materials ─────────────────────────────────────────────────────────
	matCache := make([]*Material, len(doc.Materials))
	for i, gm := range doc.Materials {
		mat := DefaultMaterial()
		mat.Name = gm.Name

		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			mat.Albedo = core.Color{
				R: float32(cf[0]), G: float32(cf[1]),
				B: float32(cf[2]), A: float32(cf[3]),
			}
			// PBR → Phong approximation:
			//   roughness → shininess (smooth surface = high shininess)
			//   metallic  → specular intensity
			roughness := float32(pbr.RoughnessFactorOrDefault())
			metallic  := float32(pbr.MetallicFactorOrDefault())
			mat.Shininess = (1.0-roughness)*(1.0-roughness)*128.0 + 1.0
			s := metallic * 0.7
			mat.Specular = core.Color{R: s, G: s, B: s, A: 1}
		}

		matCache[i] = mat
	}

	// ── 2. Mesh primitives ────────────────────────────────────────────────────
	// meshPrims[meshIdx] = []*Mesh (one entry per primitive)
	meshPrims := make([][]*Mesh, len(doc.Meshes))
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := loadGLTFPrimitive(doc, gm.Name, pi, *prim)
			if err != nil {
				fmt.Printf("gltf: mesh %d prim %d: %v\n", mi, pi, err)
				continue
			}
			if prim.Material != nil && *prim.Material < len(matCache) {
				m.Material = matCache[*prim.Material]
			}
			meshPrims[mi] = append(meshPrims[mi], m)
		}
	}

	// ── 3. Nodes ──────────────────────────────────────────────────────────────
	nodes := make([]*Node, len(doc.Nodes))
	for i, gn := range doc.Nodes {
		name := gn.Name
		if name == "" {
			name = fmt.Sprintf("node_%d", i)
		}
		n := NewNode(name)

		t := gn.TranslationOrDefault()
		n.SetPosition(math.Vec3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])})

		sc := gn.ScaleOrDefault()
		n.SetScale(math.Vec3{X: float32(sc[0]), Y: float32(sc[1]), Z: float32(sc[2])})

		r := gn.RotationOrDefault() // [x, y, z, w]
		n.SetRotation(math.Quaternion{
			X: float32(r[0]), Y: float32(r[1]),
			Z: float32(r[2]), W: float32(r[3]),
		})

		if gn.Mesh != nil && *gn.Mesh < len(meshPrims) {
			prims := meshPrims[*gn.Mesh]
			switch len(prims) {
			case 0:
				// no geometry
			case 1:
				n.Mesh = prims[0]
			default:
				// Multiple primitives → one child node per primitive
				for pi, p := range prims {
					child := NewNode(fmt.Sprintf("%s_prim%d", name, pi))
					child.Mesh = p
					n.AddChild(child)
				}
			}
		}
		nodes[i] = n
	}

	// Wire up parent-child relationships
	for i, gn := range doc.Nodes {
		if nodes[i] == nil {
			continue
		}
		for _, childIdx := range gn.Children {
			if childIdx < len(nodes) && nodes[childIdx] != nil {
				nodes[i].AddChild(nodes[childIdx])
			}
		}
	}

	// ── 4. Root nodes ─────────────────────────────────────────────────────────
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		for _, rootIdx := range doc.Scenes[*doc.Scene].Nodes {
			if rootIdx < len(nodes) && nodes[rootIdx] != nil {
				result.Roots = append(result.Roots, nodes[rootIdx])
			}
		}
	} else {
		// No default scene: collect all parentless nodes
		hasParent := make([]bool, len(nodes))
		for _, gn := range doc.Nodes {
			for _, c := range gn.Children {
				if c < len(hasParent) {
					hasParent[c] = true
				}
			}
		}
		for i, n := range nodes {
			if n != nil && !hasParent[i] {
				result.Roots = append(result.Roots, n)
			}
		}
	}

	return result, nil
}

// loadGLTFPrimitive converts one glTF mesh primitive into a scene.Mesh.
func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	// Positions are required
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs     [][2]float32

	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Normal:   math.Vec3{X: 0, Y: 1, Z: 0},
			Color:    core.ColorWhite,
		}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}

	return CreateMeshFromData(name, verts, indices), nil
}

// BakeShapes flattens a loaded glTF scene graph into ray-traceable ShapeData.
// The ray tracer (render/solvers.go) has no triangle-mesh solver, so every
// mesh node is reduced to its axis-aligned bounding box and approximated as
// a unit Cube primitive scaled and translated to match, with a warning
// logged once per mesh. Non-mesh nodes (empties, cameras, lights not
// modeled by this loader) contribute nothing.
func BakeShapes(root *Node) []ShapeData {
	var shapes []ShapeData
	root.Traverse(func(n *Node) {
		if n.Mesh == nil || len(n.Mesh.Vertices) == 0 {
			return
		}
		fmt.Printf("gltf: mesh node %q has no ray-traceable solver, approximating with a bounding cube\n", n.Name)

		min := n.Mesh.Vertices[0].Position
		max := n.Mesh.Vertices[0].Position
		for _, v := range n.Mesh.Vertices[1:] {
			min = componentMin(min, v.Position)
			max = componentMax(max, v.Position)
		}
		center := min.Add(max).Mul(0.5)
		extents := max.Sub(min)
		if extents.X <= 0 {
			extents.X = 1e-3
		}
		if extents.Y <= 0 {
			extents.Y = 1e-3
		}
		if extents.Z <= 0 {
			extents.Z = 1e-3
		}

		localCTM := math.Mat4Scale(extents).Mul(math.Mat4Translation(center))
		worldCTM := localCTM.Mul(n.GetWorldMatrix())

		mat := DefaultMaterial()
		if n.Mesh.Material != nil {
			mat = n.Mesh.Material
		}

		shapes = append(shapes, ShapeData{
			Type:     ShapeTypeCube,
			Material: toRayMaterial(mat),
			CTM:      worldCTM,
		})
	})
	return shapes
}

func componentMin(a, b math.Vec3) math.Vec3 {
	return math.Vec3{X: minf(a.X, b.X), Y: minf(a.Y, b.Y), Z: minf(a.Z, b.Z)}
}

func componentMax(a, b math.Vec3) math.Vec3 {
	return math.Vec3{X: maxf(a.X, b.X), Y: maxf(a.Y, b.Y), Z: maxf(a.Z, b.Z)}
}

// toRayMaterial converts a parsed glTF Material into the ray
// tracer's texture.Material.
func toRayMaterial(m *Material) texture.Material {
	return texture.Material{
		Name:      m.Name,
		Ambient:   texture.Color{R: m.Albedo.R * 0.1, G: m.Albedo.G * 0.1, B: m.Albedo.B * 0.1, A: 1},
		Diffuse:   texture.Color(m.Albedo),
		Specular:  texture.Color(m.Specular),
		Shininess: m.Shininess,
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// MergeGLTFShapes loads a .glb/.gltf file and appends its baked bounding-cube
// approximations to data.Shapes, so a frame's RenderData can reference both
// hand-authored primitives and an imported mesh asset in one call.
func MergeGLTFShapes(path string, data RenderData) (RenderData, error) {
	result, err := LoadGLTF(path)
	if err != nil {
		return data, fmt.Errorf("merge gltf shapes: %w", err)
	}
	for _, root := range result.Roots {
		data.Shapes = append(data.Shapes, BakeShapes(root)...)
	}
	return data, nil
}
