package cpu

import (
	"testing"

	"github.com/galileo-ml/galileo/internal/tensor"
)

func TestCPUBackend_SumMean(t *testing.T) {
	backend := New()
	x := rawFrom(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)

	sum := backend.Sum(x)
	if !sum.Shape().Equal(tensor.Shape{1}) {
		t.Fatalf("Expected shape [1], got %v", sum.Shape())
	}
	if sum.AsFloat64()[0] != 21 {
		t.Errorf("Expected sum 21, got %v", sum.AsFloat64()[0])
	}

	mean := backend.Mean(x)
	if mean.AsFloat64()[0] != 3.5 {
		t.Errorf("Expected mean 3.5, got %v", mean.AsFloat64()[0])
	}
}

func TestCPUBackend_SumDim(t *testing.T) {
	backend := New()
	// Row 0: [1, 2, 3]
	// Row 1: [4, 5, 6]
	x := rawFrom(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)

	t.Run("Dim0", func(t *testing.T) {
		r := backend.SumDim(x, 0, false)
		if !r.Shape().Equal(tensor.Shape{3}) {
			t.Fatalf("Expected shape [3], got %v", r.Shape())
		}
		assertFloat64Slice(t, r.AsFloat64(), []float64{5, 7, 9})
	})

	t.Run("Dim1", func(t *testing.T) {
		r := backend.SumDim(x, 1, false)
		if !r.Shape().Equal(tensor.Shape{2}) {
			t.Fatalf("Expected shape [2], got %v", r.Shape())
		}
		assertFloat64Slice(t, r.AsFloat64(), []float64{6, 15})
	})

	t.Run("KeepDim", func(t *testing.T) {
		r := backend.SumDim(x, 1, true)
		if !r.Shape().Equal(tensor.Shape{2, 1}) {
			t.Fatalf("Expected shape [2 1], got %v", r.Shape())
		}
		assertFloat64Slice(t, r.AsFloat64(), []float64{6, 15})
	})

	t.Run("MiddleDim3D", func(t *testing.T) {
		y, _ := tensor.NewRaw(tensor.Shape{2, 3, 2}, tensor.Float64, tensor.CPU)
		for i := range y.AsFloat64() {
			y.AsFloat64()[i] = float64(i)
		}
		r := backend.SumDim(y, 1, false)
		if !r.Shape().Equal(tensor.Shape{2, 2}) {
			t.Fatalf("Expected shape [2 2], got %v", r.Shape())
		}
		// [0+2+4, 1+3+5, 6+8+10, 7+9+11]
		assertFloat64Slice(t, r.AsFloat64(), []float64{6, 9, 24, 27})
	})

	t.Run("OutOfRangePanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic for bad dimension")
			}
		}()
		backend.SumDim(x, 2, false)
	})
}

func TestCPUBackend_MeanDim(t *testing.T) {
	backend := New()
	x := rawFrom(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)

	r := backend.MeanDim(x, 1, false)
	assertFloat64Slice(t, r.AsFloat64(), []float64{2, 5})

	r = backend.MeanDim(x, 0, true)
	if !r.Shape().Equal(tensor.Shape{1, 3}) {
		t.Fatalf("Expected shape [1 3], got %v", r.Shape())
	}
	assertFloat64Slice(t, r.AsFloat64(), []float64{2.5, 3.5, 4.5})
}

func TestCPUBackend_SumDim_1D(t *testing.T) {
	backend := New()
	x := rawFrom(t, tensor.Shape{4}, 1, 2, 3, 4)

	// A 1-D reduction keeps shape {1} with or without keepDim.
	for _, keep := range []bool{true, false} {
		r := backend.SumDim(x, 0, keep)
		if !r.Shape().Equal(tensor.Shape{1}) {
			t.Fatalf("Expected shape [1], got %v", r.Shape())
		}
		if r.AsFloat64()[0] != 10 {
			t.Errorf("Expected 10, got %v", r.AsFloat64()[0])
		}
	}
}
