package cpu

import (
	"fmt"

	"github.com/galileo-ml/galileo/internal/tensor"
)

// Sum reduces the tensor to its total sum, shape {1}.
func (c *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out := mustRaw(tensor.Shape{1}, x.DType())
	switch x.DType() {
	case tensor.Float64:
		out.AsFloat64()[0] = sumSlice(x.AsFloat64())
	case tensor.Float32:
		out.AsFloat32()[0] = sumSlice(x.AsFloat32())
	case tensor.Int32:
		out.AsInt32()[0] = sumSlice(x.AsInt32())
	default:
		panic(fmt.Sprintf("cpu: unsupported dtype %s", x.DType()))
	}
	return out
}

// Mean reduces the tensor to its arithmetic mean, shape {1}.
func (c *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	n := x.NumElements()
	out := mustRaw(tensor.Shape{1}, x.DType())
	switch x.DType() {
	case tensor.Float64:
		out.AsFloat64()[0] = sumSlice(x.AsFloat64()) / float64(n)
	case tensor.Float32:
		out.AsFloat32()[0] = sumSlice(x.AsFloat32()) / float32(n)
	default:
		panic(fmt.Sprintf("cpu: Mean only supports float tensors, got %s", x.DType()))
	}
	return out
}

func sumSlice[T tensor.DType](data []T) T {
	var sum T
	for _, v := range data {
		sum += v
	}
	return sum
}

// SumDim sums along a dimension. With keepDim the reduced dimension is
// retained with size 1, otherwise it is dropped.
func (c *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return c.reduceDim(x, dim, keepDim, false)
}

// MeanDim averages along a dimension. With keepDim the reduced dimension
// is retained with size 1, otherwise it is dropped.
func (c *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return c.reduceDim(x, dim, keepDim, true)
}

func (c *CPUBackend) reduceDim(x *tensor.RawTensor, dim int, keepDim, mean bool) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("cpu: reduce dimension %d out of range for shape %v", dim, shape))
	}

	keptShape := shape.Clone()
	keptShape[dim] = 1

	out := mustRaw(keptShape, x.DType())
	switch x.DType() {
	case tensor.Float64:
		reduceDimKernel(x.AsFloat64(), out.AsFloat64(), shape, dim, mean)
	case tensor.Float32:
		reduceDimKernel(x.AsFloat32(), out.AsFloat32(), shape, dim, mean)
	default:
		panic(fmt.Sprintf("cpu: reduce only supports float tensors, got %s", x.DType()))
	}

	if keepDim {
		return out
	}
	if len(shape) == 1 {
		return out // Shape {1}; nothing left to drop
	}
	dropped := make(tensor.Shape, 0, len(shape)-1)
	dropped = append(dropped, shape[:dim]...)
	dropped = append(dropped, shape[dim+1:]...)
	return c.Reshape(out, dropped)
}

// reduceDimKernel accumulates along dim into an output whose shape equals
// the input with dim collapsed to 1.
func reduceDimKernel[T ~float32 | ~float64](src, dst []T, shape tensor.Shape, dim int, mean bool) {
	strides := shape.ComputeStrides()
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	size := shape[dim]
	inner := strides[dim]

	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			var sum T
			base := o*size*inner + in
			for k := 0; k < size; k++ {
				sum += src[base+k*inner]
			}
			if mean {
				sum /= T(size)
			}
			dst[o*inner+in] = sum
		}
	}
}
