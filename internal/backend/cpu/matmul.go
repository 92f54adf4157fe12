package cpu

import (
	"fmt"

	"github.com/galileo-ml/galileo/internal/parallel"
	"github.com/galileo-ml/galileo/internal/tensor"
)

// MatMul performs 2-D matrix multiplication: (M, K) @ (K, N) → (M, N).
// Rows of the output are computed in parallel.
func (c *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("cpu: MatMul requires 2D tensors, got %v @ %v", aShape, bShape))
	}
	if aShape[1] != bShape[0] {
		panic(fmt.Sprintf("cpu: MatMul inner dimensions disagree: %v @ %v", aShape, bShape))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("cpu: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	m, k, n := aShape[0], aShape[1], bShape[1]
	out := mustRaw(tensor.Shape{m, n}, a.DType())

	switch a.DType() {
	case tensor.Float64:
		matmulRows(a.AsFloat64(), b.AsFloat64(), out.AsFloat64(), m, k, n, c.par)
	case tensor.Float32:
		matmulRows(a.AsFloat32(), b.AsFloat32(), out.AsFloat32(), m, k, n, c.par)
	default:
		panic(fmt.Sprintf("cpu: MatMul only supports float tensors, got %s", a.DType()))
	}
	return out
}

// matmulRows computes out = a @ b row by row with an ikj loop order, which
// keeps the inner loop streaming over contiguous memory of b and out.
func matmulRows[T ~float32 | ~float64](a, b, out []T, m, k, n int, cfg parallel.Config) {
	// Parallelize over output rows; each row touches disjoint output memory.
	rowCfg := cfg
	rowCfg.MinChunkSize = 1
	if m*k*n < 1<<15 {
		rowCfg.Enabled = false
	}

	parallel.For(m, func(i int) {
		outRow := out[i*n : (i+1)*n]
		aRow := a[i*k : (i+1)*k]
		for p := 0; p < k; p++ {
			av := aRow[p]
			if av == 0 {
				continue
			}
			bRow := b[p*n : (p+1)*n]
			for j := range outRow {
				outRow[j] += av * bRow[j]
			}
		}
	}, rowCfg)
}
