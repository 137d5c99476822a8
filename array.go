package colourvis

import (
	"log/slog"

	"github.com/gogpu/colourvis/ndarray"
)

// Default element types of GPU-bound arrays.
const (
	DefaultFloatDType = ndarray.Float32
	DefaultIntDType   = ndarray.Uint32
)

// AsContiguousArray returns a new row-major contiguous float32 copy of a.
// A zero-dimensional input becomes a one-element vector.
func AsContiguousArray[T ndarray.Number](a *ndarray.Array[T]) *ndarray.Array[float32] {
	return AsContiguousArrayOf[float32](a)
}

// AsContiguousArrayOf is AsContiguousArray with an explicit element type.
func AsContiguousArrayOf[U, T ndarray.Number](a *ndarray.Array[T]) *ndarray.Array[U] {
	out := ndarray.AsContiguous[U](a)
	Logger().Debug("colourvis: contiguous copy",
		slog.String("from", a.DType().String()),
		slog.String("to", out.DType().String()),
		slog.Any("shape", out.Shape()),
		slog.Bool("was_contiguous", a.IsContiguous()))
	return out
}

// AppendChannel returns a copy of a with one more element along the last
// axis, set to value: shape (..., n) becomes (..., n+1). a is not modified.
// A zero-dimensional input fails with ndarray.ErrZeroDim.
func AppendChannel[T ndarray.Number](a *ndarray.Array[T], value T) (*ndarray.Array[T], error) {
	return ndarray.AppendLast(a, value)
}

// AppendChannelOne appends a channel of ones, typically an opaque alpha.
func AppendChannelOne[T ndarray.Number](a *ndarray.Array[T]) (*ndarray.Array[T], error) {
	return AppendChannel(a, 1)
}
