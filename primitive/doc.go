// Package primitive holds geometry ready for a WebGPU vertex buffer.
//
// A [Primitive] is a triple of vertices, triangle faces and line outline
// indices. Vertices use the fixed 48-byte [Vertex] record:
//
//	offset  0  position  float32x3
//	offset 12  uv        float32x2
//	offset 20  normal    float32x3
//	offset 32  colour    float32x4
//
// [Conform] builds a Primitive from arbitrary numeric arrays, [Primitive.Raw]
// turns it back into arrays, and the buffer helpers pack it little-endian
// for upload. [Primitive.WriteGLTF] exports it as a glTF 2.0 mesh.
package primitive
