package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, T(1), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Arange creates a 1D tensor with values start, start+1, ..., end-1.
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	numElements := int(float64(end) - float64(start))
	if numElements <= 0 {
		panic("end must be greater than start")
	}

	t := Zeros[T, B](Shape{numElements}, b)
	data := t.Data()
	for i := range data {
		data[i] = start + T(i)
	}
	return t
}

// Linspace creates a 1D tensor of n equidistant values covering [lo, hi]
// inclusive. This is the time-grid primitive of the dataset builders.
func Linspace[T DType, B Backend](lo, hi T, n int, b B) *Tensor[T, B] {
	if n < 2 {
		panic("Linspace requires at least 2 points")
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	step := (float64(hi) - float64(lo)) / float64(n-1)
	for i := range data {
		data[i] = T(float64(lo) + float64(i)*step)
	}
	data[n-1] = hi // Avoid accumulated rounding at the right endpoint
	return t
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
// Only works with float types.
func Rand[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return RandUniform[T, B](shape, 0, 1, rng, b)
}

// RandUniform creates a tensor with values uniformly distributed in [lo, hi).
// Only works with float types. The caller supplies the RNG so that sampling
// is reproducible under a fixed seed.
func RandUniform[T DType, B Backend](shape Shape, lo, hi T, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	span := float64(hi) - float64(lo)
	var dummy T
	switch any(dummy).(type) {
	case float32, float64:
		for i := range data {
			data[i] = T(float64(lo) + rng.Float64()*span)
		}
	default:
		panic("RandUniform only supports float32 and float64 types")
	}
	return t
}

// Randn creates a tensor with values from a standard normal distribution,
// generated with the Box-Muller transform. Only works with float types.
func Randn[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32, float64:
	default:
		panic("Randn only supports float32 and float64 types")
	}

	for i := 0; i < len(data); i += 2 {
		u1 := rng.Float64()
		u2 := rng.Float64()
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = T(r * math.Cos(2.0*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = T(r * math.Sin(2.0*math.Pi*u2))
		}
	}
	return t
}

// Eye creates a 2D identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	for i := 0; i < n; i++ {
		t.Set(T(1), i, i)
	}
	return t
}
