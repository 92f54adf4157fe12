// Copyright 2026 The Galileo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU compute backend.
package cpu

import (
	internalcpu "github.com/galileo-ml/galileo/internal/backend/cpu"
	"github.com/galileo-ml/galileo/tensor"
)

// Backend is the CPU backend implementation. Element-wise kernels run
// chunked across worker goroutines.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend with parallel kernels.
//
//	backend := cpu.New()
//	x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend that runs kernels on the calling
// goroutine only. Useful for benchmarking and debugging.
func NewSequential() *Backend {
	return internalcpu.NewSequential()
}
