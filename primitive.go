package colourvis

import (
	"log/slog"

	"github.com/gogpu/colourvis/ndarray"
	"github.com/gogpu/colourvis/primitive"
)

// ConformPrimitiveDType casts a vertex/face/outline triple to the vertex
// record layout and uint32 indices a WebGPU vertex buffer expects. The
// vertex array's last axis must hold 12 components (position 3, uv 2,
// normal 3, colour 4). Conforming an already conformed primitive's Raw
// arrays yields the same primitive.
func ConformPrimitiveDType[V, I ndarray.Number](raw primitive.Raw[V, I]) (primitive.Primitive, error) {
	p, err := primitive.Conform(raw)
	if err != nil {
		return primitive.Primitive{}, err
	}
	Logger().Debug("colourvis: conformed primitive",
		slog.Int("vertices", len(p.Vertices)),
		slog.String("vertex_dtype", ndarray.DTypeOf[V]().String()),
		slog.String("index_dtype", ndarray.DTypeOf[I]().String()))
	return p, nil
}
