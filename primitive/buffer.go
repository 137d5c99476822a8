package primitive

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/colourvis/ndarray"
)

// Shader locations of the vertex attributes.
const (
	LocationPosition = 0
	LocationUV       = 1
	LocationNormal   = 2
	LocationColour   = 3
)

// VertexBufferLayout returns the WebGPU layout of a packed Vertex buffer.
func VertexBufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: offsetPosition, ShaderLocation: LocationPosition},
			{Format: gputypes.VertexFormatFloat32x2, Offset: offsetUV, ShaderLocation: LocationUV},
			{Format: gputypes.VertexFormatFloat32x3, Offset: offsetNormal, ShaderLocation: LocationNormal},
			{Format: gputypes.VertexFormatFloat32x4, Offset: offsetColour, ShaderLocation: LocationColour},
		},
	}
}

// IndexFormat is the format of the packed face and outline buffers.
const IndexFormat = gputypes.IndexFormatUint32

// FaceTopology and OutlineTopology are the topologies the index buffers are
// drawn with.
const (
	FaceTopology    = gputypes.PrimitiveTopologyTriangleList
	OutlineTopology = gputypes.PrimitiveTopologyLineList
)

// VertexBytes packs the vertices little-endian, VertexStride bytes each.
func (p Primitive) VertexBytes() []byte {
	buf := make([]byte, len(p.Vertices)*VertexStride)
	for i, v := range p.Vertices {
		rec := buf[i*VertexStride : (i+1)*VertexStride]
		putFloats(rec[offsetPosition:], v.Position[:])
		putFloats(rec[offsetUV:], v.UV[:])
		putFloats(rec[offsetNormal:], v.Normal[:])
		putFloats(rec[offsetColour:], v.Colour[:])
	}
	return buf
}

// FaceBytes packs the face indices little-endian. It returns nil when the
// primitive has no faces.
func (p Primitive) FaceBytes() []byte { return indexBytes(p.Faces) }

// OutlineBytes packs the outline indices little-endian. It returns nil when
// the primitive has no outline.
func (p Primitive) OutlineBytes() []byte { return indexBytes(p.Outline) }

func putFloats(dst []byte, values []float32) {
	for i, f := range values {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
}

func indexBytes(idx *ndarray.Array[uint32]) []byte {
	if idx == nil {
		return nil
	}
	values := idx.Values()
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return buf
}
