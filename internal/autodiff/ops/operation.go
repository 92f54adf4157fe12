// Package ops defines the differentiable operations recorded by the
// gradient tape.
//
// Each operation captures its inputs and output during the forward pass
// and knows how to turn the gradient of its output into gradients of its
// inputs during the backward pass. The forward computation itself always
// happens in the wrapped backend; ops only store references and chain-rule
// logic.
package ops

import "github.com/galileo-ml/galileo/internal/tensor"

// Operation is a single differentiable step in the computation graph.
type Operation interface {
	// Backward computes gradients for the inputs given the gradient of
	// the output. The returned slice is parallel to Inputs().
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors of this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the tensor produced by this operation.
	Output() *tensor.RawTensor
}
