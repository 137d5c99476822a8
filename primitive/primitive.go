package primitive

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/colourvis/ndarray"
)

var (
	// ErrVertexLayout is returned when the vertex array's last axis does not
	// hold the 12 components of a Vertex.
	ErrVertexLayout = errors.New("primitive: vertices must have 12 components per row")

	// ErrMissingArray is returned when the vertex array is nil.
	ErrMissingArray = errors.New("primitive: missing vertex array")
)

// Raw is an unconformed primitive: vertex rows of 12 components plus face
// and outline index arrays. Faces and Outline may be nil.
type Raw[V, I ndarray.Number] struct {
	Vertices *ndarray.Array[V]
	Faces    *ndarray.Array[I]
	Outline  *ndarray.Array[I]
}

// Primitive is a conformed primitive: typed vertices and uint32 indices.
type Primitive struct {
	Vertices []Vertex
	Faces    *ndarray.Array[uint32]
	Outline  *ndarray.Array[uint32]

	// vertexShape is the shape of the source vertex array, kept so Raw
	// reproduces it.
	vertexShape []int
}

// Conform casts raw to the fixed vertex layout and uint32 indices. The
// shapes of the index arrays are preserved. The input arrays are not
// modified and the result does not alias them.
func Conform[V, I ndarray.Number](raw Raw[V, I]) (Primitive, error) {
	if raw.Vertices == nil {
		return Primitive{}, ErrMissingArray
	}
	if raw.Vertices.NDim() == 0 || raw.Vertices.Len() != VertexComponents {
		return Primitive{}, fmt.Errorf("%w: got shape %v", ErrVertexLayout, raw.Vertices.Shape())
	}

	flat := ndarray.AsType[float32](raw.Vertices).Values()
	vertices := make([]Vertex, len(flat)/VertexComponents)
	for i := range vertices {
		vertices[i] = vertexFromRow(flat[i*VertexComponents : (i+1)*VertexComponents])
	}

	p := Primitive{
		Vertices:    vertices,
		vertexShape: raw.Vertices.Shape(),
	}
	if raw.Faces != nil {
		p.Faces = ndarray.AsContiguous[uint32](raw.Faces)
	}
	if raw.Outline != nil {
		p.Outline = ndarray.AsContiguous[uint32](raw.Outline)
	}
	return p, nil
}

// Raw returns p as arrays. Conform(p.Raw()) reproduces p.
func (p Primitive) Raw() Raw[float32, uint32] {
	shape := p.vertexShape
	if shape == nil {
		shape = []int{len(p.Vertices), VertexComponents}
	}
	data := make([]float32, 0, len(p.Vertices)*VertexComponents)
	for _, v := range p.Vertices {
		data = v.appendRow(data)
	}
	raw := Raw[float32, uint32]{
		Vertices: ndarray.MustFromSlice(data, slices.Clone(shape)...),
	}
	if p.Faces != nil {
		raw.Faces = p.Faces.Copy()
	}
	if p.Outline != nil {
		raw.Outline = p.Outline.Copy()
	}
	return raw
}

// Validate reports an error if any face or outline index is out of range.
func (p Primitive) Validate() error {
	n := uint32(len(p.Vertices))
	check := func(name string, idx *ndarray.Array[uint32]) error {
		if idx == nil {
			return nil
		}
		for _, i := range idx.Values() {
			if i >= n {
				return fmt.Errorf("primitive: %s index %d out of range for %d vertices", name, i, n)
			}
		}
		return nil
	}
	if err := check("faces", p.Faces); err != nil {
		return err
	}
	return check("outline", p.Outline)
}
