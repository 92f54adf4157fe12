package ops

import "github.com/galileo-ml/galileo/internal/tensor"

// reduceBroadcast reduces a gradient to the shape of the input it belongs
// to. Needed whenever the forward pass broadcast that input: the gradient
// arrives with the broadcast shape and has to be summed back down.
//
// Example:
//
//	forward:  a[3,1] + b[3,4] -> c[3,4]
//	backward: grad_c[3,4] -> grad_a[3,1]  (sum along dim 1)
func reduceBroadcast(grad *tensor.RawTensor, target tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(target) {
		// Clone so accumulation never aliases another input's gradient.
		return grad.Clone()
	}

	// Broadcasting aligns shapes from the right: sum away the extra
	// leading dimensions first.
	for len(grad.Shape()) > len(target) {
		grad = backend.SumDim(grad, 0, false)
	}

	// Then sum along dimensions the input held as size 1.
	for i := 0; i < len(target); i++ {
		if target[i] == 1 && grad.Shape()[i] > 1 {
			grad = backend.SumDim(grad, i, true)
		}
	}

	if !grad.Shape().Equal(target) {
		grad = backend.Reshape(grad, target)
	}
	return grad
}

// keptShape returns the input shape with dim collapsed to 1. Used to
// restore a reduced gradient to a broadcastable shape when the forward
// reduction dropped the dimension.
func keptShape(in tensor.Shape, dim int) tensor.Shape {
	kept := in.Clone()
	kept[dim] = 1
	return kept
}
