package nn

import (
	"math"
	"math/rand"

	"github.com/galileo-ml/galileo/internal/tensor"
)

// Xavier initializes weights from the Glorot uniform distribution
// U(-b, b) with b = sqrt(6 / (fan_in + fan_out)), which keeps the
// activation variance roughly constant across layers.
//
// The RNG is passed explicitly so experiments stay reproducible.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand, backend B) *tensor.Tensor[float64, B] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return tensor.RandUniform[float64](shape, -bound, bound, rng, backend)
}

// Zeros creates a zero-filled tensor. Commonly used for biases.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Zeros[float64](shape, backend)
}

// Ones creates a tensor filled with ones.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Ones[float64](shape, backend)
}
