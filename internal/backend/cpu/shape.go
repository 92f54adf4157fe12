package cpu

import (
	"fmt"

	"github.com/galileo-ml/galileo/internal/tensor"
)

// Reshape returns a copy of t with a new shape.
// The new shape must have the same number of elements.
func (c *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if newShape.NumElements() != t.NumElements() {
		panic(fmt.Sprintf("cpu: Reshape from %v to %v changes element count", t.Shape(), newShape))
	}
	out := mustRaw(newShape, t.DType())
	copy(out.Data(), t.Data())
	return out
}

// Transpose permutes the dimensions of t.
// If axes is empty, all dimensions are reversed.
func (c *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("cpu: Transpose needs %d axes, got %d", ndim, len(axes)))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim || seen[ax] {
			panic(fmt.Sprintf("cpu: Transpose axes %v is not a permutation of 0..%d", axes, ndim-1))
		}
		seen[ax] = true
	}

	outShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		outShape[i] = shape[ax]
	}

	out := mustRaw(outShape, t.DType())
	srcStrides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()

	n := t.NumElements()
	switch t.DType() {
	case tensor.Float64:
		src, dst := t.AsFloat64(), out.AsFloat64()
		permuteCopy(src, dst, srcStrides, outStrides, axes, n)
	case tensor.Float32:
		src, dst := t.AsFloat32(), out.AsFloat32()
		permuteCopy(src, dst, srcStrides, outStrides, axes, n)
	case tensor.Int32:
		src, dst := t.AsInt32(), out.AsInt32()
		permuteCopy(src, dst, srcStrides, outStrides, axes, n)
	default:
		panic(fmt.Sprintf("cpu: unsupported dtype %s", t.DType()))
	}
	return out
}

// permuteCopy copies src into dst where dst dimension i reads src
// dimension axes[i].
func permuteCopy[T tensor.DType](src, dst []T, srcStrides, outStrides []int, axes []int, n int) {
	for i := 0; i < n; i++ {
		srcIdx := 0
		rem := i
		for d := 0; d < len(outStrides); d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			srcIdx += coord * srcStrides[axes[d]]
		}
		dst[i] = src[srcIdx]
	}
}

// Expand broadcasts t to the given shape, materializing the result.
func (c *CPUBackend) Expand(t *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	outShape, _, err := tensor.BroadcastShapes(t.Shape(), shape)
	if err != nil || !outShape.Equal(shape) {
		panic(fmt.Sprintf("cpu: cannot expand %v to %v", t.Shape(), shape))
	}

	out := mustRaw(shape, t.DType())
	srcStrides := broadcastStrides(t.Shape(), shape)
	outStrides := shape.ComputeStrides()
	n := shape.NumElements()

	switch t.DType() {
	case tensor.Float64:
		expandCopy(t.AsFloat64(), out.AsFloat64(), srcStrides, outStrides, n)
	case tensor.Float32:
		expandCopy(t.AsFloat32(), out.AsFloat32(), srcStrides, outStrides, n)
	case tensor.Int32:
		expandCopy(t.AsInt32(), out.AsInt32(), srcStrides, outStrides, n)
	default:
		panic(fmt.Sprintf("cpu: unsupported dtype %s", t.DType()))
	}
	return out
}

func expandCopy[T tensor.DType](src, dst []T, srcStrides, outStrides []int, n int) {
	for i := 0; i < n; i++ {
		srcIdx := 0
		rem := i
		for d := 0; d < len(outStrides); d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			srcIdx += coord * srcStrides[d]
		}
		dst[i] = src[srcIdx]
	}
}
