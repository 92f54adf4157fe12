package nn

import (
	"fmt"

	"github.com/galileo-ml/galileo/internal/tensor"
)

// Jet carries a value together with its first and second directional
// derivatives through the network: (f, ∂f/∂s, ∂²f/∂s²) for a scalar
// direction s of the input.
//
// Propagating a jet forward gives exact derivatives of the network
// output with respect to its input, which is how the physics residuals
// obtain u' and u'' at the sample points. All three components are
// ordinary tensors computed with backend ops, so when the backend is
// recording, gradients of the derivatives still flow back to the
// parameters.
type Jet[B tensor.Backend] struct {
	Value  *tensor.Tensor[float64, B]
	First  *tensor.Tensor[float64, B]
	Second *tensor.Tensor[float64, B]
}

// NewJet creates a jet from its three components. All shapes must match.
func NewJet[B tensor.Backend](value, first, second *tensor.Tensor[float64, B]) *Jet[B] {
	if !value.Shape().Equal(first.Shape()) || !value.Shape().Equal(second.Shape()) {
		panic(fmt.Sprintf("NewJet: component shapes disagree: %v, %v, %v",
			value.Shape(), first.Shape(), second.Shape()))
	}
	return &Jet[B]{Value: value, First: first, Second: second}
}

// VariableJet seeds a jet for differentiating along the given input
// direction: First is the direction, Second is zero. For a network input
// [batch, features], a direction with ones in one column and zeros
// elsewhere differentiates with respect to that input coordinate.
func VariableJet[B tensor.Backend](value, direction *tensor.Tensor[float64, B]) *Jet[B] {
	zero := tensor.Zeros[float64](value.Shape(), value.Backend())
	return NewJet(value, direction, zero)
}

// JetModule is implemented by modules that can propagate a jet.
type JetModule[B tensor.Backend] interface {
	Module[B]

	// ForwardJet propagates value and derivatives through the module.
	ForwardJet(in *Jet[B]) *Jet[B]
}

// ForwardJet propagates a jet through the affine map. The derivative
// components pass through the weights but skip the bias: a constant
// shift has zero derivative.
func (l *Linear[B]) ForwardJet(in *Jet[B]) *Jet[B] {
	return &Jet[B]{
		Value:  l.affine(in.Value),
		First:  l.linearOnly(in.First),
		Second: l.linearOnly(in.Second),
	}
}

// ForwardJet propagates a jet through tanh using the chain rule for
// y = tanh(z):
//
//	y'  = (1 - y²)·z'
//	y'' = (1 - y²)·z'' - 2y·(1 - y²)·(z')²
func (a *Tanh[B]) ForwardJet(in *Jet[B]) *Jet[B] {
	y := in.Value.Tanh()
	sech2 := y.Mul(y).SubScalar(1).MulScalar(-1) // 1 - y²

	first := sech2.Mul(in.First)
	curvature := y.MulScalar(2).Mul(sech2).Mul(in.First.Mul(in.First))
	second := sech2.Mul(in.Second).Sub(curvature)

	return &Jet[B]{Value: y, First: first, Second: second}
}

// ForwardJet propagates a jet through the logistic function using
// s' = s(1-s) and s'' = s(1-s)(1-2s):
//
//	y'  = s(1-s)·z'
//	y'' = s(1-s)·z'' + (1-2s)·s(1-s)·(z')²
func (a *Sigmoid[B]) ForwardJet(in *Jet[B]) *Jet[B] {
	s := sigmoid(in.Value)
	ds := s.Mul(s.MulScalar(-1).AddScalar(1)) // s(1-s)

	first := ds.Mul(in.First)
	curvature := s.MulScalar(-2).AddScalar(1).Mul(ds).Mul(in.First.Mul(in.First))
	second := ds.Mul(in.Second).Add(curvature)

	return &Jet[B]{Value: s, First: first, Second: second}
}

// ForwardJet propagates a jet through every contained module. Panics if
// any module cannot propagate derivatives.
func (s *Sequential[B]) ForwardJet(in *Jet[B]) *Jet[B] {
	out := in
	for _, module := range s.modules {
		jm, ok := module.(JetModule[B])
		if !ok {
			panic(fmt.Sprintf("Sequential.ForwardJet: module %T cannot propagate derivatives", module))
		}
		out = jm.ForwardJet(out)
	}
	return out
}
