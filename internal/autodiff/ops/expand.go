package ops

import "github.com/galileo-ml/galileo/internal/tensor"

// ExpandOp records a broadcast materialization: output = expand(x, shape).
//
// Backward sums the gradient back down to the input shape, exactly like
// the implicit broadcast in a binary op.
type ExpandOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewExpandOp creates a new ExpandOp.
func NewExpandOp(input, output *tensor.RawTensor) *ExpandOp {
	return &ExpandOp{input: input, output: output}
}

// Backward reduces the gradient to the input shape.
func (op *ExpandOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{reduceBroadcast(outputGrad, op.input.Shape(), backend)}
}

// Inputs returns the input tensors.
func (op *ExpandOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the expanded tensor.
func (op *ExpandOp) Output() *tensor.RawTensor {
	return op.output
}
