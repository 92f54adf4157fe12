package ops

import "github.com/galileo-ml/galileo/internal/tensor"

// SinOp records the element-wise sine: output = sin(x).
//
// Backward:
//
//	grad_x = outputGrad * cos(x)
type SinOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSinOp creates a new SinOp.
func NewSinOp(input, output *tensor.RawTensor) *SinOp {
	return &SinOp{input: input, output: output}
}

// Backward computes the input gradient for sin.
func (op *SinOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Mul(outputGrad, backend.Cos(op.input))}
}

// Inputs returns the input tensors.
func (op *SinOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor sin(x).
func (op *SinOp) Output() *tensor.RawTensor {
	return op.output
}
