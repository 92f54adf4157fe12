package ops

import "github.com/galileo-ml/galileo/internal/tensor"

// ScalarOp records an element-wise operation against a Go scalar:
// output = x ⊙ scalar. The four variants share one type because their
// backward passes differ only in a constant factor:
//
//	MulScalar: grad_x = outputGrad * scalar
//	DivScalar: grad_x = outputGrad / scalar
//	AddScalar: grad_x = outputGrad
//	SubScalar: grad_x = outputGrad
type ScalarOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	kind   ScalarKind
	scalar float64
}

// ScalarKind identifies which scalar operation was recorded.
type ScalarKind int

// Scalar operation kinds.
const (
	ScalarMul ScalarKind = iota
	ScalarDiv
	ScalarAdd
	ScalarSub
)

// NewScalarOp creates a new ScalarOp.
func NewScalarOp(kind ScalarKind, input, output *tensor.RawTensor, scalar float64) *ScalarOp {
	return &ScalarOp{
		input:  input,
		output: output,
		kind:   kind,
		scalar: scalar,
	}
}

// Backward computes the input gradient for the scalar operation.
func (op *ScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	var grad *tensor.RawTensor
	switch op.kind {
	case ScalarMul:
		grad = backend.MulScalar(outputGrad, op.scalar)
	case ScalarDiv:
		grad = backend.DivScalar(outputGrad, op.scalar)
	default: // add and sub shift by a constant, gradient passes through
		grad = outputGrad.Clone()
	}
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors.
func (op *ScalarOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *ScalarOp) Output() *tensor.RawTensor {
	return op.output
}
