// Package nn implements neural network modules.
//
// It provides the building blocks for the small dense networks used in
// physics-informed training:
//   - Module interface: base interface for all components
//   - Parameter: trainable parameters with gradient tracking
//   - Linear: fully connected layer
//   - Activations: Tanh, Sigmoid
//   - MSELoss: mean squared error
//   - Sequential: container for stacking layers
//   - Jet: forward Taylor-mode propagation for exact derivatives
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
// All modules operate on float64 tensors; the physics residuals need the
// extra precision far more than they need the memory.
package nn

import (
	"github.com/galileo-ml/galileo/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules compose into larger architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 32, rng, backend),
//	    nn.NewTanh[B](),
//	    nn.NewLinear(32, 1, rng, backend),
//	)
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	// For Linear the input is [batch, in_features].
	Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B]

	// Parameters returns all trainable parameters of this module,
	// including nested module parameters. Modules without trainable
	// parameters return nil.
	Parameters() []*Parameter[B]
}
