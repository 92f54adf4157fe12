package nn

import (
	"github.com/galileo-ml/galileo/internal/tensor"
)

// MSELoss computes mean squared error: mean((predictions - targets)²).
//
// The reduction runs through backend ops, not host arithmetic, so the
// 1/N factor is part of the recorded graph and gradients come out
// correctly scaled.
type MSELoss[B tensor.Backend] struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return &MSELoss[B]{}
}

// Forward computes the loss as a shape {1} tensor.
func (m *MSELoss[B]) Forward(predictions, targets *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic("MSELoss: predictions and targets must have the same shape")
	}
	diff := predictions.Sub(targets)
	return diff.Mul(diff).Mean()
}

// Parameters returns nil (loss functions have no trainable parameters).
func (m *MSELoss[B]) Parameters() []*Parameter[B] {
	return nil
}
