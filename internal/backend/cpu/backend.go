// Package cpu implements the tensor.Backend interface with pure Go kernels.
//
// Kernels allocate a fresh output for every operation and never modify
// their inputs, which is the contract the autodiff decorator relies on.
// Elementwise and matmul loops run through internal/parallel for large
// tensors.
package cpu

import (
	"fmt"

	"github.com/galileo-ml/galileo/internal/parallel"
	"github.com/galileo-ml/galileo/internal/tensor"
)

// CPUBackend is the pure Go compute backend.
type CPUBackend struct {
	par parallel.Config
}

// New creates a new CPU backend with CPU-count based parallelism.
func New() *CPUBackend {
	return &CPUBackend{par: parallel.DefaultConfig()}
}

// NewSequential creates a CPU backend that never spawns goroutines.
// Useful in tests that want deterministic single-threaded execution.
func NewSequential() *CPUBackend {
	cfg := parallel.DefaultConfig()
	cfg.Enabled = false
	return &CPUBackend{par: cfg}
}

// Name returns the backend name.
func (c *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (c *CPUBackend) Device() tensor.Device {
	return tensor.CPU
}

// Add performs element-wise addition with broadcasting.
func (c *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (c *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (c *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (c *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary(a, b, func(x, y float64) float64 { return x / y })
}

// binary dispatches an element-wise binary op by dtype.
func (c *CPUBackend) binary(a, b *tensor.RawTensor, f func(x, y float64) float64) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("cpu: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("cpu: %v", err))
	}

	out := mustRaw(outShape, a.DType())
	switch a.DType() {
	case tensor.Float64:
		broadcastBinary(a.AsFloat64(), b.AsFloat64(), out.AsFloat64(),
			a.Shape(), b.Shape(), outShape, c.par, f)
	case tensor.Float32:
		broadcastBinary(a.AsFloat32(), b.AsFloat32(), out.AsFloat32(),
			a.Shape(), b.Shape(), outShape, c.par,
			func(x, y float32) float32 { return float32(f(float64(x), float64(y))) })
	case tensor.Int32:
		broadcastBinary(a.AsInt32(), b.AsInt32(), out.AsInt32(),
			a.Shape(), b.Shape(), outShape, c.par,
			func(x, y int32) int32 { return int32(f(float64(x), float64(y))) })
	default:
		panic(fmt.Sprintf("cpu: unsupported dtype %s", a.DType()))
	}
	return out
}

// mustRaw allocates a RawTensor or panics; shapes reaching the backend have
// already been validated by the caller-facing API.
func mustRaw(shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	if err != nil {
		panic(fmt.Sprintf("cpu: %v", err))
	}
	return raw
}
