// Copyright 2026 The Galileo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pinn provides the public API for physics-informed training:
// domains, samplers, residual conditions, the trainer, and evaluation
// sweeps.
package pinn

import (
	"math/rand"

	"github.com/galileo-ml/galileo/autodiff"
	internal "github.com/galileo-ml/galileo/internal/pinn"
	"github.com/galileo-ml/galileo/nn"
	"github.com/galileo-ml/galileo/optim"
	"github.com/galileo-ml/galileo/tensor"
)

// Interval is a closed interval on one input axis.
type Interval = internal.Interval

// Samplers

// Sampler produces batches of collocation points.
type Sampler[B tensor.Backend] = internal.Sampler[B]

// UniformSampler draws every column uniformly from its interval.
type UniformSampler[B tensor.Backend] = internal.UniformSampler[B]

// NewUniform creates a sampler with one interval per input column.
func NewUniform[B tensor.Backend](rng *rand.Rand, intervals ...Interval) *UniformSampler[B] {
	return internal.NewUniform[B](rng, intervals...)
}

// GridSampler emits a deterministic equidistant 1-D grid.
type GridSampler[B tensor.Backend] = internal.GridSampler[B]

// NewGrid creates a deterministic grid sampler over one interval.
func NewGrid[B tensor.Backend](interval Interval) *GridSampler[B] {
	return internal.NewGrid[B](interval)
}

// BoundarySampler pins one column of another sampler to a fixed value.
type BoundarySampler[B tensor.Backend] = internal.BoundarySampler[B]

// NewBoundary creates a sampler that pins inner's column to value.
func NewBoundary[B tensor.Backend](inner Sampler[B], column int, value float64) *BoundarySampler[B] {
	return internal.NewBoundary(inner, column, value)
}

// ProductSampler concatenates 1-D samplers column-wise.
type ProductSampler[B tensor.Backend] = internal.ProductSampler[B]

// NewProduct creates a column-wise product of 1-D samplers.
func NewProduct[B tensor.Backend](columns ...Sampler[B]) *ProductSampler[B] {
	return internal.NewProduct(columns...)
}

// Conditions and training

// Condition is one named residual term of the physics loss.
type Condition[B tensor.Backend] = internal.Condition[B]

// ColumnDirection builds the jet seed for differentiating with respect
// to one input column.
func ColumnDirection[B tensor.Backend](points *tensor.Tensor[float64, B], column int) *tensor.Tensor[float64, B] {
	return internal.ColumnDirection(points, column)
}

// Config controls a training run.
type Config = internal.Config

// Record is one logged loss snapshot.
type Record = internal.Record

// History is the logged sequence of records.
type History = internal.History

// Trainer minimizes the summed condition losses.
type Trainer[B autodiff.BackwardCapable] = internal.Trainer[B]

// NewTrainer assembles a trainer over a jet-capable model.
func NewTrainer[B autodiff.BackwardCapable](model nn.JetModule[B], conditions []Condition[B], optimizer optim.Optimizer, backend B, config Config) *Trainer[B] {
	return internal.NewTrainer(model, conditions, optimizer, backend, config)
}

// Evaluation

// ParamError is the evaluation error for one parameter value.
type ParamError = internal.ParamError

// SweepParam scores a trained model against a closed-form reference
// across the parameter family.
func SweepParam[B tensor.Backend](model nn.Module[B], exact func(param, x float64) float64, params Interval, nParams int, coords Interval, nGrid int, backend B) []ParamError {
	return internal.SweepParam(model, exact, params, nParams, coords, nGrid, backend)
}
