// Copyright 2026 The Galileo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation by
// wrapping any compute backend in a recording decorator.
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	y := x.Mul(x)
//	grads := autodiff.Backward(y, backend)
package autodiff

import (
	internal "github.com/galileo-ml/galileo/internal/autodiff"
	"github.com/galileo-ml/galileo/tensor"
)

// Backend wraps a compute backend and records operations on a tape.
type Backend[B tensor.Backend] = internal.AutodiffBackend[B]

// GradientTape records operations and computes gradients in reverse.
type GradientTape = internal.GradientTape

// BackwardCapable is implemented by backends that support a backward
// pass.
type BackwardCapable = internal.BackwardCapable

// New creates an autodiff backend wrapping the given backend.
func New[B tensor.Backend](backend B) *Backend[B] {
	return internal.New(backend)
}

// NewGradientTape creates a standalone gradient tape.
func NewGradientTape() *GradientTape {
	return internal.NewGradientTape()
}

// Backward computes gradients of t with respect to everything it was
// computed from, seeding with ones. Returns a map keyed by RawTensor.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	return internal.Backward(t, backend)
}
