package tensor

import "fmt"

// Slice copies the sub-range [start, end) along the given dimension.
// The result is a new tensor with the same rank.
//
// Example:
//
//	t := tensor.Arange[float64](0, 12, backend).Reshape(3, 4)
//	rows := t.Slice(0, 1, 3) // Shape: [2, 4], rows 1 and 2
func (t *Tensor[T, B]) Slice(dim, start, end int) *Tensor[T, B] {
	shape := t.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("Slice: dimension %d out of range for shape %v", dim, shape))
	}
	if start < 0 || end > shape[dim] || start >= end {
		panic(fmt.Sprintf("Slice: invalid range [%d, %d) for dimension of size %d", start, end, shape[dim]))
	}

	outShape := shape.Clone()
	outShape[dim] = end - start
	out := Zeros[T, B](outShape, t.backend)

	srcData := t.Data()
	dstData := out.Data()
	srcStrides := shape.ComputeStrides()
	dstStrides := outShape.ComputeStrides()

	for i := range dstData {
		srcIdx := 0
		rem := i
		for d := 0; d < len(outShape); d++ {
			coord := rem / dstStrides[d]
			rem %= dstStrides[d]
			if d == dim {
				coord += start
			}
			srcIdx += coord * srcStrides[d]
		}
		dstData[i] = srcData[srcIdx]
	}
	return out
}

// Select copies the slice at the given index along a dimension, dropping
// that dimension from the result.
//
// Example:
//
//	t := tensor.Zeros[float64](Shape{500, 50, 2}, backend)
//	times := t.Select(2, 1) // Shape: [500, 50], the time column
func (t *Tensor[T, B]) Select(dim, index int) *Tensor[T, B] {
	shape := t.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("Select: dimension %d out of range for shape %v", dim, shape))
	}
	if index < 0 || index >= shape[dim] {
		panic(fmt.Sprintf("Select: index %d out of bounds for dimension of size %d", index, shape[dim]))
	}

	sliced := t.Slice(dim, index, index+1)
	if len(shape) == 1 {
		return sliced // Shape {1}; nothing left to drop
	}
	return sliced.Squeeze(dim)
}

// Narrow is Slice with a (start, length) signature.
func (t *Tensor[T, B]) Narrow(dim, start, length int) *Tensor[T, B] {
	return t.Slice(dim, start, start+length)
}

// Cat concatenates tensors along the given dimension.
// All tensors must agree on every other dimension.
func Cat[T DType, B Backend](tensors []*Tensor[T, B], dim int) *Tensor[T, B] {
	if len(tensors) == 0 {
		panic("Cat: need at least one tensor")
	}

	first := tensors[0].Shape()
	if dim < 0 || dim >= len(first) {
		panic(fmt.Sprintf("Cat: dimension %d out of range for shape %v", dim, first))
	}

	outShape := first.Clone()
	for _, t := range tensors[1:] {
		s := t.Shape()
		if len(s) != len(first) {
			panic(fmt.Sprintf("Cat: rank mismatch: %v vs %v", first, s))
		}
		for d := range s {
			if d != dim && s[d] != first[d] {
				panic(fmt.Sprintf("Cat: shapes %v and %v differ outside dimension %d", first, s, dim))
			}
		}
		outShape[dim] += s[dim]
	}

	out := Zeros[T, B](outShape, tensors[0].backend)
	dstData := out.Data()
	dstStrides := outShape.ComputeStrides()

	offset := 0
	for _, t := range tensors {
		srcData := t.Data()
		srcShape := t.Shape()
		srcStrides := srcShape.ComputeStrides()

		for i := range srcData {
			dstIdx := 0
			rem := i
			for d := 0; d < len(srcShape); d++ {
				coord := rem / srcStrides[d]
				rem %= srcStrides[d]
				if d == dim {
					coord += offset
				}
				dstIdx += coord * dstStrides[d]
			}
			dstData[dstIdx] = srcData[i]
		}
		offset += srcShape[dim]
	}
	return out
}
