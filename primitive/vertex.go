package primitive

import "golang.org/x/image/math/f32"

// Vertex record layout.
const (
	// VertexComponents is the number of float32 values per vertex.
	VertexComponents = 12
	// VertexStride is the size of one packed vertex in bytes.
	VertexStride = VertexComponents * 4

	offsetPosition = 0
	offsetUV       = 12
	offsetNormal   = 20
	offsetColour   = 32
)

// Vertex is one entry of a vertex buffer.
type Vertex struct {
	Position f32.Vec3
	UV       f32.Vec2
	Normal   f32.Vec3
	Colour   f32.Vec4
}

// vertexFromRow reads a vertex from 12 consecutive components.
func vertexFromRow(row []float32) Vertex {
	_ = row[VertexComponents-1]
	return Vertex{
		Position: f32.Vec3{row[0], row[1], row[2]},
		UV:       f32.Vec2{row[3], row[4]},
		Normal:   f32.Vec3{row[5], row[6], row[7]},
		Colour:   f32.Vec4{row[8], row[9], row[10], row[11]},
	}
}

// appendRow appends the 12 components of v to dst.
func (v Vertex) appendRow(dst []float32) []float32 {
	dst = append(dst, v.Position[:]...)
	dst = append(dst, v.UV[:]...)
	dst = append(dst, v.Normal[:]...)
	return append(dst, v.Colour[:]...)
}
