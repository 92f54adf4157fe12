package ops

import "github.com/galileo-ml/galileo/internal/tensor"

// TanhOp records the hyperbolic tangent: output = tanh(x).
//
// Backward reuses the forward output:
//
//	grad_x = outputGrad * (1 - tanh²(x)) = outputGrad * (1 - output²)
type TanhOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewTanhOp creates a new TanhOp.
func NewTanhOp(input, output *tensor.RawTensor) *TanhOp {
	return &TanhOp{input: input, output: output}
}

// Backward computes the input gradient for tanh.
func (op *TanhOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	squared := backend.Mul(op.output, op.output)
	// 1 - output² expressed as -(output² - 1)
	oneMinus := backend.MulScalar(backend.SubScalar(squared, 1), -1)
	return []*tensor.RawTensor{backend.Mul(outputGrad, oneMinus)}
}

// Inputs returns the input tensors.
func (op *TanhOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor tanh(x).
func (op *TanhOp) Output() *tensor.RawTensor {
	return op.output
}
