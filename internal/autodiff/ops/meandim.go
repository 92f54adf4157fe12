package ops

import "github.com/galileo-ml/galileo/internal/tensor"

// MeanDimOp records a mean reduction along one dimension:
// output = mean(x, dim, keepDim).
//
// Backward is the SumDim gradient divided by the reduced dimension size.
type MeanDimOp struct {
	input   *tensor.RawTensor
	output  *tensor.RawTensor
	dim     int
	keepDim bool
}

// NewMeanDimOp creates a new MeanDimOp.
func NewMeanDimOp(input, output *tensor.RawTensor, dim int, keepDim bool) *MeanDimOp {
	return &MeanDimOp{
		input:   input,
		output:  output,
		dim:     dim,
		keepDim: keepDim,
	}
}

// Backward broadcasts the scaled gradient along the reduced dimension.
func (op *MeanDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	size := float64(op.input.Shape()[op.dim])
	grad := backend.DivScalar(outputGrad, size)
	if !op.keepDim {
		grad = backend.Reshape(grad, keptShape(op.input.Shape(), op.dim))
	}
	return []*tensor.RawTensor{backend.Expand(grad, op.input.Shape())}
}

// Inputs returns the input tensors.
func (op *MeanDimOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the reduced tensor.
func (op *MeanDimOp) Output() *tensor.RawTensor {
	return op.output
}
