package ndarray

import "golang.org/x/exp/constraints"

// Number is the set of element types an Array can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// DType identifies the element type of an Array at runtime.
type DType uint8

const (
	// Invalid is reported for named types outside the predeclared set.
	Invalid DType = iota
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
	Float32
	Float64
)

// String returns the dtype name in numpy spelling.
func (d DType) String() string {
	switch d {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int:
		return "int"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Uint:
		return "uint"
	case Uintptr:
		return "uintptr"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// Size returns the element size in bytes, or 0 for Invalid.
func (d DType) Size() int {
	switch d {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Int, Uint, Uintptr:
		return 8
	default:
		return 0
	}
}

// IsFloat reports whether d is a floating-point dtype.
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

// DTypeOf returns the dtype tag of T.
// Named types such as `type Meters float64` report Invalid.
func DTypeOf[T Number]() DType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case int:
		return Int
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case uint:
		return Uint
	case uintptr:
		return Uintptr
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		return Invalid
	}
}
