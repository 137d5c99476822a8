// Package ndarray provides a small generic n-dimensional numeric array.
//
// An [Array] stores its elements in a flat backing slice addressed through a
// shape, per-axis strides and an offset. Views created with
// [Array.Transpose] and [Array.SliceAxis] share storage with their parent and
// are generally not contiguous; every operation that produces a new array
// ([AsType], [AsContiguous], [AppendLast], [NanToNum], [Array.Copy]) returns a
// row-major contiguous array that never aliases its input.
//
// # Element types
//
// The element type is fixed at compile time through the [Number] constraint.
// [DTypeOf] and [Array.DType] report the runtime tag of the element type so
// callers can check layouts without reflection:
//
//	a := ndarray.Full[float64](0.5, 4, 3)
//	b := ndarray.AsType[float32](a) // b.DType() == ndarray.Float32
//
// # Thread Safety
//
// Arrays are not synchronized. Concurrent reads are safe; concurrent writes
// through [Array.Set] on arrays sharing storage are not.
package ndarray
