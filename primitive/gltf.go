package primitive

import (
	"fmt"
	"io"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ExportGLTF adds p to doc as a mesh named name with one node in the first
// scene. Faces become a triangle primitive and the outline a line
// primitive; both share the vertex attributes. Normals are written only when
// every vertex has a non-zero normal, normalised to unit length.
func (p Primitive) ExportGLTF(doc *gltf.Document, name string) error {
	if len(p.Vertices) == 0 {
		return fmt.Errorf("primitive: export %q: no vertices", name)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("primitive: export %q: %w", name, err)
	}

	positions := make([][3]float32, len(p.Vertices))
	uvs := make([][2]float32, len(p.Vertices))
	colours := make([][4]float32, len(p.Vertices))
	normals := make([][3]float32, len(p.Vertices))
	hasNormals := true
	for i, v := range p.Vertices {
		positions[i] = v.Position
		uvs[i] = v.UV
		colours[i] = v.Colour
		n, ok := unitNormal(v.Normal)
		normals[i] = n
		hasNormals = hasNormals && ok
	}

	attributes := map[string]uint32{
		"POSITION":   modeler.WritePosition(doc, positions),
		"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
		"COLOR_0":    modeler.WriteColor(doc, colours),
	}
	if hasNormals {
		attributes["NORMAL"] = modeler.WriteNormal(doc, normals)
	}

	mesh := &gltf.Mesh{Name: name}
	if p.Faces != nil && p.Faces.Size() > 0 {
		indices := modeler.WriteIndices(doc, p.Faces.Values())
		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Indices:    &indices,
			Attributes: attributes,
			Mode:       gltf.PrimitiveTriangles,
		})
	}
	if p.Outline != nil && p.Outline.Size() > 0 {
		indices := modeler.WriteIndices(doc, p.Outline.Values())
		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Indices:    &indices,
			Attributes: attributes,
			Mode:       gltf.PrimitiveLines,
		})
	}
	if len(mesh.Primitives) == 0 {
		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Attributes: attributes,
			Mode:       gltf.PrimitivePoints,
		})
	}

	doc.Meshes = append(doc.Meshes, mesh)
	meshIndex := uint32(len(doc.Meshes) - 1)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: &meshIndex})
	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{})
	}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	return nil
}

// WriteGLTF writes p as a standalone glTF document, in the binary .glb
// container when binary is true.
func (p Primitive) WriteGLTF(w io.Writer, name string, binary bool) error {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "colourvis"
	if err := p.ExportGLTF(doc, name); err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("primitive: encode glTF: %w", err)
	}
	return nil
}

func unitNormal(n [3]float32) ([3]float32, bool) {
	l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if l == 0 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return n, false
	}
	return [3]float32{n[0] / l, n[1] / l, n[2] / l}, true
}
