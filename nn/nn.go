// Copyright 2026 The Galileo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for neural network modules:
// layers, activations, losses, containers, and jet propagation for
// input derivatives.
package nn

import (
	"math/rand"

	internal "github.com/galileo-ml/galileo/internal/nn"
	"github.com/galileo-ml/galileo/tensor"
)

// Module is the common interface of all neural network components.
type Module[B tensor.Backend] = internal.Module[B]

// Parameter is a trainable parameter.
type Parameter[B tensor.Backend] = internal.Parameter[B]

// NewParameter creates a parameter around an initialized tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float64, B]) *Parameter[B] {
	return internal.NewParameter(name, t)
}

// Layers

// Linear is a fully connected layer: y = x @ Wᵀ + b.
type Linear[B tensor.Backend] = internal.Linear[B]

// NewLinear creates a Linear layer with Xavier weights drawn from rng.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, rng *rand.Rand, backend B) *Linear[B] {
	return internal.NewLinear(inFeatures, outFeatures, rng, backend)
}

// Activations

// Tanh is the hyperbolic tangent activation.
type Tanh[B tensor.Backend] = internal.Tanh[B]

// NewTanh creates a Tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return internal.NewTanh[B]()
}

// Sigmoid is the logistic activation.
type Sigmoid[B tensor.Backend] = internal.Sigmoid[B]

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return internal.NewSigmoid[B]()
}

// Containers and losses

// Sequential chains modules output-to-input.
type Sequential[B tensor.Backend] = internal.Sequential[B]

// NewSequential creates a Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return internal.NewSequential(modules...)
}

// MSELoss is mean squared error.
type MSELoss[B tensor.Backend] = internal.MSELoss[B]

// NewMSELoss creates an MSE loss function.
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return internal.NewMSELoss[B]()
}

// Initializers

// Xavier initializes weights from the Glorot uniform distribution.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand, backend B) *tensor.Tensor[float64, B] {
	return internal.Xavier(fanIn, fanOut, shape, rng, backend)
}

// Jets

// Jet carries a value with its first and second directional input
// derivatives through the network.
type Jet[B tensor.Backend] = internal.Jet[B]

// JetModule is implemented by modules that can propagate a jet.
type JetModule[B tensor.Backend] = internal.JetModule[B]

// NewJet creates a jet from its three components.
func NewJet[B tensor.Backend](value, first, second *tensor.Tensor[float64, B]) *Jet[B] {
	return internal.NewJet(value, first, second)
}

// VariableJet seeds a jet for differentiating along an input direction.
func VariableJet[B tensor.Backend](value, direction *tensor.Tensor[float64, B]) *Jet[B] {
	return internal.VariableJet(value, direction)
}
