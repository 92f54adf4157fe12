package nn

import (
	"github.com/galileo-ml/galileo/internal/tensor"
)

// Tanh is the hyperbolic tangent activation module.
//
// Smooth and infinitely differentiable, which matters here: the physics
// residuals differentiate the network twice, and a piecewise-linear
// activation like ReLU has a zero second derivative almost everywhere.
type Tanh[B tensor.Backend] struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return &Tanh[B]{}
}

// Forward applies f(x) = tanh(x) element-wise.
func (a *Tanh[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	return input.Tanh()
}

// Parameters returns nil (Tanh has no trainable parameters).
func (a *Tanh[B]) Parameters() []*Parameter[B] {
	return nil
}

// Sigmoid is the logistic activation module: σ(x) = 1 / (1 + exp(-x)).
type Sigmoid[B tensor.Backend] struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return &Sigmoid[B]{}
}

// Forward applies σ(x) element-wise, composed from primitive ops so the
// gradient tape sees every step.
func (a *Sigmoid[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	return sigmoid(input)
}

func sigmoid[B tensor.Backend](x *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	denom := x.MulScalar(-1).Exp().AddScalar(1)
	return tensor.Ones[float64](denom.Shape(), denom.Backend()).Div(denom)
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (a *Sigmoid[B]) Parameters() []*Parameter[B] {
	return nil
}
