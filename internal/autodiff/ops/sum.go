package ops

import "github.com/galileo-ml/galileo/internal/tensor"

// SumOp records a full reduction: output = sum(x), shape {1}.
//
// Every input element contributes with weight 1, so the backward pass
// broadcasts the scalar gradient over the input shape.
type SumOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSumOp creates a new SumOp.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{input: input, output: output}
}

// Backward broadcasts the gradient over the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Expand(outputGrad, op.input.Shape())}
}

// Inputs returns the input tensors.
func (op *SumOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor sum(x).
func (op *SumOp) Output() *tensor.RawTensor {
	return op.output
}
