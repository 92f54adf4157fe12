// Package optim implements optimization algorithms for training.
//
// It provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//
// Design inspired by PyTorch's torch.optim, adapted to gradients
// delivered as a map keyed by the parameter's RawTensor:
//
//	backend.Tape().StartRecording()
//	loss := computeLoss(model, batch)
//	grads := autodiff.Backward(loss, backend)
//	optimizer.Step(grads)
//	optimizer.ZeroGrad()
//	backend.Tape().Clear()
package optim

import (
	"github.com/galileo-ml/galileo/internal/nn"
	"github.com/galileo-ml/galileo/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters, taking the
	// gradient map produced by the backward pass. Parameters absent
	// from the map are skipped.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// ZeroGrad clears all parameter gradients. Call before each
	// backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// getGradient retrieves the gradient for a parameter, or nil if the
// parameter was not part of the recorded computation.
func getGradient[B tensor.Backend](param *nn.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) *tensor.RawTensor {
	if param == nil {
		return nil
	}
	return grads[param.Tensor().Raw()]
}
