// Copyright 2026 The Galileo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package physics provides the public API for closed-form references
// and synthetic dataset construction.
package physics

import (
	"math/rand"

	internal "github.com/galileo-ml/galileo/internal/physics"
	"github.com/galileo-ml/galileo/tensor"
)

// FallingBall is a ball dropped under gravity with quadratic drag.
type FallingBall = internal.FallingBall

// DefaultFallingBall returns the reference configuration (g=9.81, H=50).
func DefaultFallingBall() FallingBall {
	return internal.DefaultFallingBall()
}

// ExpGrowth evaluates u(x; k) = e^{kx}.
func ExpGrowth(x, k float64) float64 {
	return internal.ExpGrowth(x, k)
}

// GridConfig describes a synthetic (parameter, time) dataset.
type GridConfig = internal.GridConfig

// BuildGrid samples a dataset for the target function f(param, t).
func BuildGrid[B tensor.Backend](cfg GridConfig, f func(param, t float64) float64, rng *rand.Rand, backend B) (inputs, targets *tensor.Tensor[float64, B]) {
	return internal.BuildGrid(cfg, f, rng, backend)
}

// Flatten2D collapses a BuildGrid pair to [P·T, 2] / [P·T, 1].
func Flatten2D[B tensor.Backend](inputs, targets *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], *tensor.Tensor[float64, B]) {
	return internal.Flatten2D(inputs, targets)
}

// RelativeError scores predictions as max|pred-target| / max|target|.
func RelativeError[B tensor.Backend](pred, target *tensor.Tensor[float64, B]) float64 {
	return internal.RelativeError(pred, target)
}
