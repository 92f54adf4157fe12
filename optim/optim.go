// Copyright 2026 The Galileo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for optimizers.
package optim

import (
	internal "github.com/galileo-ml/galileo/internal/optim"
	"github.com/galileo-ml/galileo/nn"
	"github.com/galileo-ml/galileo/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer = internal.Optimizer

// SGD is stochastic gradient descent with optional momentum.
type SGD[B tensor.Backend] = internal.SGD[B]

// SGDConfig configures SGD.
type SGDConfig = internal.SGDConfig

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig) *SGD[B] {
	return internal.NewSGD(params, config)
}

// Adam is the Adam optimizer.
type Adam[B tensor.Backend] = internal.Adam[B]

// AdamConfig configures Adam.
type AdamConfig = internal.AdamConfig

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam[B tensor.Backend](params []*nn.Parameter[B], config AdamConfig) *Adam[B] {
	return internal.NewAdam(params, config)
}
