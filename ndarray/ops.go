package ndarray

import (
	"fmt"
	"math"
	"slices"

	"github.com/chewxy/math32"
)

// AsType returns a new contiguous array with every element converted to U.
// Conversions follow Go conversion rules: float to integer truncates toward
// zero and integer narrowing wraps.
func AsType[U, T Number](a *Array[T]) *Array[U] {
	out := make([]U, 0, a.Size())
	a.each(func(off int) {
		out = append(out, U(a.data[off]))
	})
	return &Array[U]{
		data:    out,
		shape:   slices.Clone(a.shape),
		strides: rowMajorStrides(a.shape),
	}
}

// AsContiguous converts a to U and guarantees a row-major contiguous result
// with at least one dimension. A zero-dimensional input becomes shape (1).
// The result never aliases a.
func AsContiguous[U, T Number](a *Array[T]) *Array[U] {
	out := AsType[U](a)
	if out.NDim() == 0 {
		out.shape = []int{1}
		out.strides = []int{1}
	}
	return out
}

// AppendLast returns a copy of a with one extra element along the last axis
// set to value. Shape (..., n) becomes (..., n+1). a is not modified.
func AppendLast[T Number](a *Array[T], value T) (*Array[T], error) {
	if a.NDim() == 0 {
		return nil, ErrZeroDim
	}
	src := a.Values()
	n := a.Len()
	rows := 0
	if n > 0 {
		rows = len(src) / n
	} else {
		rows = sizeOf(a.shape[:a.NDim()-1])
	}

	shape := slices.Clone(a.shape)
	shape[len(shape)-1] = n + 1
	out := make([]T, 0, rows*(n+1))
	for r := 0; r < rows; r++ {
		out = append(out, src[r*n:(r+1)*n]...)
		out = append(out, value)
	}
	return &Array[T]{
		data:    out,
		shape:   shape,
		strides: rowMajorStrides(shape),
	}, nil
}

// NanToNum returns a contiguous copy of a with NaN replaced by zero and
// positive or negative infinity replaced by the largest finite value of the
// dtype with the same sign. Integer arrays are copied unchanged.
func NanToNum[T Number](a *Array[T]) *Array[T] {
	out := a.Copy()
	switch d := any(out.data).(type) {
	case []float32:
		for i, v := range d {
			switch {
			case math32.IsNaN(v):
				d[i] = 0
			case math32.IsInf(v, 1):
				d[i] = math32.MaxFloat32
			case math32.IsInf(v, -1):
				d[i] = -math32.MaxFloat32
			}
		}
	case []float64:
		for i, v := range d {
			switch {
			case math.IsNaN(v):
				d[i] = 0
			case math.IsInf(v, 1):
				d[i] = math.MaxFloat64
			case math.IsInf(v, -1):
				d[i] = -math.MaxFloat64
			}
		}
	}
	return out
}

// ScaleLast returns a contiguous copy of a multiplied element-wise by
// factors broadcast along the last axis. A single factor scales every
// element; otherwise len(factors) must equal the last axis length.
func ScaleLast[T Number](a *Array[T], factors []T) (*Array[T], error) {
	out := a.Copy()
	switch len(factors) {
	case 0:
		return out, nil
	case 1:
		for i := range out.data {
			out.data[i] *= factors[0]
		}
		return out, nil
	}
	n := out.Len()
	if out.NDim() == 0 || n != len(factors) {
		return nil, fmt.Errorf("%w: %d factors for last axis of %v", ErrShape, len(factors), out.shape)
	}
	for i := range out.data {
		out.data[i] *= factors[i%n]
	}
	return out, nil
}

// IsFinite reports whether every element of a is neither NaN nor infinite.
func IsFinite[T Number](a *Array[T]) bool {
	finite := true
	a.each(func(off int) {
		v := float64(a.data[off])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			finite = false
		}
	})
	return finite
}
