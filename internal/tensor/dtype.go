package tensor

import "fmt"

// DataType is the runtime type tag of a tensor's elements.
type DataType int

// Supported element types. Float64 is the working precision of the solvers;
// Float32 and Int32 exist for data staging and index bookkeeping.
const (
	Float32 DataType = iota
	Float64
	Int32
)

// Size returns the size of one element in bytes.
func (d DataType) Size() int {
	switch d {
	case Float32, Int32:
		return 4
	case Float64:
		return 8
	default:
		panic(fmt.Sprintf("unknown dtype %d", int(d)))
	}
}

// String returns a human-readable type name.
func (d DataType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	default:
		return "unknown"
	}
}

// DType is the generic constraint for tensor element types.
type DType interface {
	~float32 | ~float64 | ~int32
}

// inferDataType maps a Go value to its DataType tag.
func inferDataType(v any) DataType {
	switch v.(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	default:
		panic(fmt.Sprintf("unsupported element type %T", v))
	}
}
