package cpu

import (
	"testing"

	"github.com/galileo-ml/galileo/internal/tensor"
)

// rawFrom builds a Float64 RawTensor holding the given values.
func rawFrom(t *testing.T, shape tensor.Shape, values ...float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(raw.AsFloat64(), values)
	return raw
}

func assertFloat64Slice(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		diff := got[i] - want[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-12 {
			t.Fatalf("Mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestCPUBackend_New(t *testing.T) {
	backend := New()
	if backend == nil {
		t.Fatal("New() returned nil")
	}
	if backend.Name() != "CPU" {
		t.Errorf("Expected name 'CPU', got '%s'", backend.Name())
	}
	if backend.Device() != tensor.CPU {
		t.Errorf("Expected device CPU, got %v", backend.Device())
	}
}

func TestCPUBackend_Add(t *testing.T) {
	backend := New()

	t.Run("SameShape", func(t *testing.T) {
		a := rawFrom(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		b := rawFrom(t, tensor.Shape{2, 3}, 10, 11, 12, 13, 14, 15)

		result := backend.Add(a, b)
		assertFloat64Slice(t, result.AsFloat64(), []float64{11, 13, 15, 17, 19, 21})
	})

	t.Run("BroadcastColumn", func(t *testing.T) {
		a := rawFrom(t, tensor.Shape{3, 1}, 0, 10, 20)
		b := rawFrom(t, tensor.Shape{1, 4}, 0, 1, 2, 3)

		result := backend.Add(a, b)
		if !result.Shape().Equal(tensor.Shape{3, 4}) {
			t.Fatalf("Expected shape [3 4], got %v", result.Shape())
		}
		assertFloat64Slice(t, result.AsFloat64(),
			[]float64{0, 1, 2, 3, 10, 11, 12, 13, 20, 21, 22, 23})
	})

	t.Run("BroadcastRow", func(t *testing.T) {
		a := rawFrom(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		b := rawFrom(t, tensor.Shape{3}, 100, 200, 300)

		result := backend.Add(a, b)
		assertFloat64Slice(t, result.AsFloat64(), []float64{101, 202, 303, 104, 205, 306})
	})

	t.Run("FreshOutput", func(t *testing.T) {
		a := rawFrom(t, tensor.Shape{2}, 1, 2)
		b := rawFrom(t, tensor.Shape{2}, 3, 4)

		backend.Add(a, b)
		assertFloat64Slice(t, a.AsFloat64(), []float64{1, 2})
		assertFloat64Slice(t, b.AsFloat64(), []float64{3, 4})
	})
}

func TestCPUBackend_SubMulDiv(t *testing.T) {
	backend := New()
	a := rawFrom(t, tensor.Shape{4}, 8, 6, 4, 2)
	b := rawFrom(t, tensor.Shape{4}, 2, 3, 4, 8)

	assertFloat64Slice(t, backend.Sub(a, b).AsFloat64(), []float64{6, 3, 0, -6})
	assertFloat64Slice(t, backend.Mul(a, b).AsFloat64(), []float64{16, 18, 16, 16})
	assertFloat64Slice(t, backend.Div(a, b).AsFloat64(), []float64{4, 2, 1, 0.25})
}

func TestCPUBackend_IncompatibleShapesPanics(t *testing.T) {
	backend := New()
	a := rawFrom(t, tensor.Shape{3}, 1, 2, 3)
	b := rawFrom(t, tensor.Shape{4}, 1, 2, 3, 4)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for incompatible shapes")
		}
	}()
	backend.Add(a, b)
}

func TestCPUBackend_ParallelMatchesSequential(t *testing.T) {
	par := New()
	seq := NewSequential()

	n := 4096
	a, _ := tensor.NewRaw(tensor.Shape{n}, tensor.Float64, tensor.CPU)
	b, _ := tensor.NewRaw(tensor.Shape{n}, tensor.Float64, tensor.CPU)
	for i := 0; i < n; i++ {
		a.AsFloat64()[i] = float64(i) * 0.5
		b.AsFloat64()[i] = float64(n - i)
	}

	assertFloat64Slice(t, par.Mul(a, b).AsFloat64(), seq.Mul(a, b).AsFloat64())
	assertFloat64Slice(t, par.Tanh(a).AsFloat64(), seq.Tanh(a).AsFloat64())
}
