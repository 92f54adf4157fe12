package cpu

import (
	"github.com/galileo-ml/galileo/internal/parallel"
	"github.com/galileo-ml/galileo/internal/tensor"
)

// broadcastStrides returns strides for reading a tensor of shape `s` as if
// it had the broadcasted shape `out`: broadcast dimensions get stride 0,
// missing leading dimensions are treated as size 1.
func broadcastStrides(s, out tensor.Shape) []int {
	strides := make([]int, len(out))
	real := s.ComputeStrides()
	offset := len(out) - len(s)
	for i := range out {
		si := i - offset
		if si < 0 || s[si] == 1 {
			strides[i] = 0
		} else {
			strides[i] = real[si]
		}
	}
	return strides
}

// broadcastBinary applies f element-wise with NumPy broadcasting.
// The fast path for identical shapes avoids the coordinate arithmetic.
func broadcastBinary[T tensor.DType](a, b, out []T, aShape, bShape, outShape tensor.Shape, cfg parallel.Config, f func(x, y T) T) {
	if aShape.Equal(bShape) {
		parallel.ForRange(len(out), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				out[i] = f(a[i], b[i])
			}
		}, cfg)
		return
	}

	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)
	outStrides := outShape.ComputeStrides()

	parallel.ForRange(len(out), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			aIdx, bIdx := 0, 0
			rem := i
			for d := 0; d < len(outShape); d++ {
				coord := rem / outStrides[d]
				rem %= outStrides[d]
				aIdx += coord * aStrides[d]
				bIdx += coord * bStrides[d]
			}
			out[i] = f(a[aIdx], b[bIdx])
		}
	}, cfg)
}
