package ndarray

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrShape is returned when a shape does not match the data or operation.
	ErrShape = errors.New("ndarray: shape mismatch")

	// ErrZeroDim is returned by operations that need at least one axis.
	ErrZeroDim = errors.New("ndarray: operation requires ndim >= 1")

	// ErrAxis is returned when an axis or range is out of bounds.
	ErrAxis = errors.New("ndarray: axis out of range")
)

// Array is an n-dimensional array of T.
// A zero-dimensional Array (empty shape) holds exactly one element.
type Array[T Number] struct {
	data    []T
	shape   []int
	strides []int // in elements
	offset  int
}

// New returns a zero-filled contiguous array with the given shape.
// New panics if any dimension is negative.
func New[T Number](shape ...int) *Array[T] {
	n := sizeOf(shape)
	return &Array[T]{
		data:    make([]T, n),
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
	}
}

// Full returns a contiguous array with the given shape filled with value.
func Full[T Number](value T, shape ...int) *Array[T] {
	a := New[T](shape...)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// Scalar returns a zero-dimensional array holding v.
func Scalar[T Number](v T) *Array[T] {
	return &Array[T]{data: []T{v}}
}

// FromSlice copies data into a new contiguous array.
// Without a shape the result is one-dimensional.
func FromSlice[T Number](data []T, shape ...int) (*Array[T], error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension in %v", ErrShape, shape)
		}
	}
	if n := sizeOf(shape); n != len(data) {
		return nil, fmt.Errorf("%w: %d elements cannot fill shape %v", ErrShape, len(data), shape)
	}
	return &Array[T]{
		data:    slices.Clone(data),
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
	}, nil
}

// MustFromSlice is like FromSlice but panics on error.
// It is intended for literals in tests and examples.
func MustFromSlice[T Number](data []T, shape ...int) *Array[T] {
	a, err := FromSlice(data, shape...)
	if err != nil {
		panic(err)
	}
	return a
}

// Shape returns a copy of the array shape.
func (a *Array[T]) Shape() []int { return slices.Clone(a.shape) }

// Strides returns a copy of the per-axis strides, counted in elements.
func (a *Array[T]) Strides() []int { return slices.Clone(a.strides) }

// NDim returns the number of axes.
func (a *Array[T]) NDim() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Array[T]) Size() int { return sizeOf(a.shape) }

// DType returns the element dtype tag.
func (a *Array[T]) DType() DType { return DTypeOf[T]() }

// Len returns the length of the last axis, or 1 for a zero-dimensional array.
func (a *Array[T]) Len() int {
	if len(a.shape) == 0 {
		return 1
	}
	return a.shape[len(a.shape)-1]
}

// At returns the element at the given index.
// At panics if the index has the wrong rank or is out of range.
func (a *Array[T]) At(index ...int) T {
	return a.data[a.offsetOf(index)]
}

// Set stores v at the given index.
// Views share storage, so Set on a view is visible through its parent.
func (a *Array[T]) Set(v T, index ...int) {
	a.data[a.offsetOf(index)] = v
}

func (a *Array[T]) offsetOf(index []int) int {
	if len(index) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: index rank %d for array of ndim %d", len(index), len(a.shape)))
	}
	off := a.offset
	for i, ix := range index {
		if ix < 0 || ix >= a.shape[i] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d with size %d", ix, i, a.shape[i]))
		}
		off += ix * a.strides[i]
	}
	return off
}

// IsContiguous reports whether the elements are laid out in row-major order
// without gaps. Axes of length 1 do not affect contiguity.
func (a *Array[T]) IsContiguous() bool {
	if a.Size() == 0 {
		return true
	}
	want := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		if a.shape[i] == 1 {
			continue
		}
		if a.strides[i] != want {
			return false
		}
		want *= a.shape[i]
	}
	return true
}

// Data returns the backing elements in row-major order when the array is
// contiguous. The slice aliases the array. ok is false for non-contiguous
// arrays; use Values to get a copy instead.
func (a *Array[T]) Data() (data []T, ok bool) {
	if !a.IsContiguous() {
		return nil, false
	}
	return a.data[a.offset : a.offset+a.Size() : a.offset+a.Size()], true
}

// Values returns a row-major copy of the elements.
func (a *Array[T]) Values() []T {
	out := make([]T, 0, a.Size())
	a.each(func(off int) {
		out = append(out, a.data[off])
	})
	return out
}

// Copy returns a contiguous copy with the same shape and dtype.
func (a *Array[T]) Copy() *Array[T] {
	return &Array[T]{
		data:    a.Values(),
		shape:   slices.Clone(a.shape),
		strides: rowMajorStrides(a.shape),
	}
}

// Reshape returns an array with the same elements in row-major order and a
// new shape. Contiguous arrays are reshaped as views; others are copied first.
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	if sizeOf(shape) != a.Size() {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrShape, a.shape, shape)
	}
	src := a
	if !a.IsContiguous() {
		src = a.Copy()
	}
	return &Array[T]{
		data:    src.data,
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
		offset:  src.offset,
	}, nil
}

// Transpose returns a view with the axes reversed.
func (a *Array[T]) Transpose() *Array[T] {
	shape := slices.Clone(a.shape)
	strides := slices.Clone(a.strides)
	slices.Reverse(shape)
	slices.Reverse(strides)
	return &Array[T]{data: a.data, shape: shape, strides: strides, offset: a.offset}
}

// SliceAxis returns a view restricted to [start, stop) along axis.
func (a *Array[T]) SliceAxis(axis, start, stop int) (*Array[T], error) {
	if axis < 0 || axis >= len(a.shape) {
		return nil, fmt.Errorf("%w: axis %d for ndim %d", ErrAxis, axis, len(a.shape))
	}
	if start < 0 || stop > a.shape[axis] || start > stop {
		return nil, fmt.Errorf("%w: range [%d:%d] for axis %d with size %d", ErrAxis, start, stop, axis, a.shape[axis])
	}
	shape := slices.Clone(a.shape)
	shape[axis] = stop - start
	return &Array[T]{
		data:    a.data,
		shape:   shape,
		strides: slices.Clone(a.strides),
		offset:  a.offset + start*a.strides[axis],
	}, nil
}

// Equal reports whether a and b have the same shape and elements.
// NaN elements compare unequal, as in IEEE 754.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !slices.Equal(a.shape, b.shape) {
		return false
	}
	return slices.Equal(a.Values(), b.Values())
}

// String formats the shape, dtype and elements.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array%v(%s) %v", a.shape, a.DType(), a.Values())
}

// each calls fn with the storage offset of every element in row-major order.
func (a *Array[T]) each(fn func(off int)) {
	n := a.Size()
	if n == 0 {
		return
	}
	if a.IsContiguous() {
		for i := 0; i < n; i++ {
			fn(a.offset + i)
		}
		return
	}
	index := make([]int, len(a.shape))
	off := a.offset
	for i := 0; i < n; i++ {
		fn(off)
		// Advance the multi-index like an odometer.
		for ax := len(index) - 1; ax >= 0; ax-- {
			index[ax]++
			off += a.strides[ax]
			if index[ax] < a.shape[ax] {
				break
			}
			off -= index[ax] * a.strides[ax]
			index[ax] = 0
		}
	}
}

func sizeOf(shape []int) int {
	n := 1
	for _, d := range shape {
		if d < 0 {
			panic(fmt.Sprintf("ndarray: negative dimension %d", d))
		}
		n *= d
	}
	return n
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = s
		s *= shape[i]
	}
	return strides
}
