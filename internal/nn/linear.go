package nn

import (
	"fmt"
	"math/rand"

	"github.com/galileo-ml/galileo/internal/tensor"
)

// Linear implements a fully connected layer: y = x @ Wᵀ + b.
//
//   - x: [batch, in_features]
//   - W: [out_features, in_features], Xavier initialized
//   - b: [out_features], zero initialized
//   - y: [batch, out_features]
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B] // [out_features, in_features]
	bias        *Parameter[B] // [out_features]
	backend     B
}

// NewLinear creates a new Linear layer with Xavier weights and zero
// biases, drawing from rng.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, rng *rand.Rand, backend B) *Linear[B] {
	weightShape := tensor.Shape{outFeatures, inFeatures}
	weight := NewParameter("weight", Xavier(inFeatures, outFeatures, weightShape, rng, backend))
	bias := NewParameter("bias", Zeros(tensor.Shape{outFeatures}, backend))

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
		backend:     backend,
	}
}

// Forward computes y = x @ Wᵀ + b.
//
// Input shape [batch, in_features], output shape [batch, out_features].
func (l *Linear[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Linear.Forward: expected 2D input [batch, features], got shape %v", shape))
	}
	if shape[1] != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got %d", l.inFeatures, shape[1]))
	}
	return l.affine(input)
}

// affine applies the layer's linear map plus bias without shape checks.
// Shared by Forward and ForwardJet; jet components reuse the same map.
func (l *Linear[B]) affine(x *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	out := x.MatMul(l.weight.Tensor().T())
	// Bias broadcast as a row vector over the batch.
	return out.Add(l.bias.Tensor().Reshape(1, l.outFeatures))
}

// linearOnly applies the weight matrix without the bias. Derivative
// components of a jet pass through the linear map but not the shift.
func (l *Linear[B]) linearOnly(x *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	return x.MatMul(l.weight.Tensor().T())
}

// Parameters returns [weight, bias].
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the input width.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output width.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}
