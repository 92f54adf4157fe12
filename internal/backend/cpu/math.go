package cpu

import (
	"fmt"
	"math"

	"github.com/galileo-ml/galileo/internal/parallel"
	"github.com/galileo-ml/galileo/internal/tensor"
)

// unary applies a float function element-wise. Float tensors only.
func (c *CPUBackend) unary(x *tensor.RawTensor, name string, f func(v float64) float64) *tensor.RawTensor {
	out := mustRaw(x.Shape(), x.DType())
	switch x.DType() {
	case tensor.Float64:
		src, dst := x.AsFloat64(), out.AsFloat64()
		parallel.ForRange(len(src), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = f(src[i])
			}
		}, c.par)
	case tensor.Float32:
		src, dst := x.AsFloat32(), out.AsFloat32()
		parallel.ForRange(len(src), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = float32(f(float64(src[i])))
			}
		}, c.par)
	default:
		panic(fmt.Sprintf("cpu: %s only supports float tensors, got %s", name, x.DType()))
	}
	return out
}

// Exp computes the element-wise exponential.
func (c *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary(x, "Exp", math.Exp)
}

// Log computes the element-wise natural logarithm.
func (c *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary(x, "Log", math.Log)
}

// Sqrt computes the element-wise square root.
func (c *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary(x, "Sqrt", math.Sqrt)
}

// Tanh computes the element-wise hyperbolic tangent.
func (c *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary(x, "Tanh", math.Tanh)
}

// Sin computes the element-wise sine.
func (c *CPUBackend) Sin(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary(x, "Sin", math.Sin)
}

// Cos computes the element-wise cosine.
func (c *CPUBackend) Cos(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary(x, "Cos", math.Cos)
}

// MulScalar multiplies every element by a scalar.
func (c *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return c.unary(x, "MulScalar", func(v float64) float64 { return v * scalar })
}

// AddScalar adds a scalar to every element.
func (c *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return c.unary(x, "AddScalar", func(v float64) float64 { return v + scalar })
}

// SubScalar subtracts a scalar from every element.
func (c *CPUBackend) SubScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return c.unary(x, "SubScalar", func(v float64) float64 { return v - scalar })
}

// DivScalar divides every element by a scalar.
func (c *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return c.unary(x, "DivScalar", func(v float64) float64 { return v / scalar })
}
