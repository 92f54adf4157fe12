package ops

import "github.com/galileo-ml/galileo/internal/tensor"

// MeanOp records a full mean reduction: output = mean(x), shape {1}.
//
// Backward:
//
//	grad_x = outputGrad / N broadcast over the input shape
type MeanOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp(input, output *tensor.RawTensor) *MeanOp {
	return &MeanOp{input: input, output: output}
}

// Backward broadcasts the scaled gradient over the input shape.
func (op *MeanOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	n := float64(op.input.NumElements())
	grad := backend.Expand(backend.DivScalar(outputGrad, n), op.input.Shape())
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors.
func (op *MeanOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor mean(x).
func (op *MeanOp) Output() *tensor.RawTensor {
	return op.output
}
