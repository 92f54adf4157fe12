package ops

import "github.com/galileo-ml/galileo/internal/tensor"

// SqrtOp records the element-wise square root: output = √x.
//
// Backward reuses the forward output:
//
//	grad_x = outputGrad / (2·√x) = outputGrad / (2·output)
type SqrtOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSqrtOp creates a new SqrtOp.
func NewSqrtOp(input, output *tensor.RawTensor) *SqrtOp {
	return &SqrtOp{input: input, output: output}
}

// Backward computes the input gradient for sqrt.
func (op *SqrtOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grad := backend.Div(outputGrad, backend.MulScalar(op.output, 2))
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors.
func (op *SqrtOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor √x.
func (op *SqrtOp) Output() *tensor.RawTensor {
	return op.output
}
