package nn

import (
	"github.com/galileo-ml/galileo/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are tensors updated by an optimizer; they carry a name for
// diagnostics and a gradient slot filled in after the backward pass.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float64, B]
	grad   *tensor.Tensor[float64, B]
}

// NewParameter creates a new trainable parameter around an already
// initialized tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float64, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float64, B] {
	return p.tensor
}

// Grad returns the gradient tensor, or nil before the first backward
// pass.
func (p *Parameter[B]) Grad() *tensor.Tensor[float64, B] {
	return p.grad
}

// SetGrad sets the gradient tensor. Called after the backward pass.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float64, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient. Call before each training iteration so
// gradients from the previous step do not leak into the next.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
