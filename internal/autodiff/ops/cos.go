package ops

import "github.com/galileo-ml/galileo/internal/tensor"

// CosOp records the element-wise cosine: output = cos(x).
//
// Backward:
//
//	grad_x = -outputGrad * sin(x)
type CosOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewCosOp creates a new CosOp.
func NewCosOp(input, output *tensor.RawTensor) *CosOp {
	return &CosOp{input: input, output: output}
}

// Backward computes the input gradient for cos.
func (op *CosOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grad := backend.MulScalar(backend.Mul(outputGrad, backend.Sin(op.input)), -1)
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors.
func (op *CosOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor cos(x).
func (op *CosOp) Output() *tensor.RawTensor {
	return op.output
}
