package tensor_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/galileo-ml/galileo/internal/backend/cpu"
	"github.com/galileo-ml/galileo/internal/tensor"
)

func newBackend() *cpu.CPUBackend {
	return cpu.NewSequential()
}

func TestFromSlice(t *testing.T) {
	backend := newBackend()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if !a.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Expected shape [2 3], got %v", a.Shape())
	}
	if a.At(1, 2) != 6 {
		t.Errorf("Expected a[1,2]=6, got %v", a.At(1, 2))
	}

	if _, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 3}, backend); err == nil {
		t.Error("Expected error for length mismatch")
	}
}

func TestAtSetItem(t *testing.T) {
	backend := newBackend()
	a := tensor.Zeros[float64](tensor.Shape{3, 4}, backend)

	a.Set(7.5, 2, 1)
	if a.At(2, 1) != 7.5 {
		t.Errorf("Expected 7.5, got %v", a.At(2, 1))
	}

	one := tensor.Full[float64](tensor.Shape{1}, 3.25, backend)
	if one.Item() != 3.25 {
		t.Errorf("Expected Item 3.25, got %v", one.Item())
	}
}

func TestAt_OutOfBoundsPanics(t *testing.T) {
	backend := newBackend()
	a := tensor.Zeros[float64](tensor.Shape{3, 4}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-bounds index")
		}
	}()
	a.At(3, 0)
}

func TestItem_MultiElementPanics(t *testing.T) {
	backend := newBackend()
	a := tensor.Zeros[float64](tensor.Shape{2}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for multi-element Item()")
		}
	}()
	a.Item()
}

func TestCloneAndDetach(t *testing.T) {
	backend := newBackend()
	a, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)

	clone := a.Clone()
	clone.Set(99, 0)
	if a.At(0) != 1 {
		t.Error("Clone must not share data with the original")
	}

	a.RequireGrad()
	detached := a.Detach()
	if detached.RequiresGrad() {
		t.Error("Detach must clear the gradient flag")
	}
	detached.Set(42, 1)
	if a.At(1) != 42 {
		t.Error("Detach must share data with the original")
	}
}

// Creation

func TestCreation(t *testing.T) {
	backend := newBackend()

	zeros := tensor.Zeros[float64](tensor.Shape{2, 2}, backend)
	for _, v := range zeros.Data() {
		if v != 0 {
			t.Errorf("Zeros produced %v", v)
		}
	}

	ones := tensor.Ones[float64](tensor.Shape{3}, backend)
	for _, v := range ones.Data() {
		if v != 1 {
			t.Errorf("Ones produced %v", v)
		}
	}

	full := tensor.Full[float64](tensor.Shape{2}, -2.5, backend)
	if full.At(0) != -2.5 || full.At(1) != -2.5 {
		t.Errorf("Full produced %v", full.Data())
	}

	eye := tensor.Eye[float64](3, backend)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if eye.At(i, j) != want {
				t.Errorf("Eye[%d,%d] = %v, want %v", i, j, eye.At(i, j), want)
			}
		}
	}
}

func TestArange(t *testing.T) {
	backend := newBackend()

	a := tensor.Arange[float64](2, 7, backend)
	want := []float64{2, 3, 4, 5, 6}
	for i, v := range a.Data() {
		if v != want[i] {
			t.Errorf("Arange[%d] = %v, want %v", i, v, want[i])
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty range")
		}
	}()
	tensor.Arange[float64](5, 5, backend)
}

func TestLinspace(t *testing.T) {
	backend := newBackend()

	grid := tensor.Linspace[float64](0, 5, 50, backend)
	data := grid.Data()
	if data[0] != 0 {
		t.Errorf("Expected exact left endpoint 0, got %v", data[0])
	}
	if data[49] != 5 {
		t.Errorf("Expected exact right endpoint 5, got %v", data[49])
	}

	step := 5.0 / 49.0
	for i := 1; i < 50; i++ {
		if math.Abs((data[i]-data[i-1])-step) > 1e-12 {
			t.Errorf("Non-equidistant step at %d: %v", i, data[i]-data[i-1])
		}
	}
}

func TestRandUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	backend := newBackend()

	draws := tensor.RandUniform[float64](tensor.Shape{1000}, 0.01, 1.0, rng, backend)
	for _, v := range draws.Data() {
		if v < 0.01 || v >= 1.0 {
			t.Errorf("Draw %v outside [0.01, 1.0)", v)
		}
	}

	// Same seed, same draws.
	again := tensor.RandUniform[float64](tensor.Shape{1000}, 0.01, 1.0, rand.New(rand.NewSource(42)), backend)
	for i, v := range draws.Data() {
		if again.At(i) != v {
			t.Fatalf("Seeded sampling not reproducible at %d", i)
		}
	}
}

// Indexing

func TestSlice(t *testing.T) {
	backend := newBackend()
	m := tensor.Arange[float64](0, 12, backend).Reshape(3, 4)

	rows := m.Slice(0, 1, 3)
	if !rows.Shape().Equal(tensor.Shape{2, 4}) {
		t.Fatalf("Expected shape [2 4], got %v", rows.Shape())
	}
	if rows.At(0, 0) != 4 || rows.At(1, 3) != 11 {
		t.Errorf("Slice content wrong: %v", rows.Data())
	}

	cols := m.Slice(1, 1, 3)
	if !cols.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Expected shape [3 2], got %v", cols.Shape())
	}
	want := []float64{1, 2, 5, 6, 9, 10}
	for i, v := range cols.Data() {
		if v != want[i] {
			t.Errorf("Slice[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestSelect(t *testing.T) {
	backend := newBackend()
	m := tensor.Arange[float64](0, 12, backend).Reshape(3, 4)

	col := m.Select(1, 2)
	if !col.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("Expected shape [3], got %v", col.Shape())
	}
	want := []float64{2, 6, 10}
	for i, v := range col.Data() {
		if v != want[i] {
			t.Errorf("Select[%d] = %v, want %v", i, v, want[i])
		}
	}

	// 1-D select keeps shape {1}.
	v := tensor.Arange[float64](0, 4, backend).Select(0, 2)
	if !v.Shape().Equal(tensor.Shape{1}) || v.Item() != 2 {
		t.Errorf("Expected {1} tensor holding 2, got %v %v", v.Shape(), v.Data())
	}
}

func TestNarrow(t *testing.T) {
	backend := newBackend()
	m := tensor.Arange[float64](0, 12, backend).Reshape(3, 4)

	n := m.Narrow(1, 1, 2)
	if !n.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Expected shape [3 2], got %v", n.Shape())
	}
	if n.At(0, 0) != 1 || n.At(2, 1) != 10 {
		t.Errorf("Narrow content wrong: %v", n.Data())
	}
}

func TestCat(t *testing.T) {
	backend := newBackend()
	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	b, _ := tensor.FromSlice([]float64{5, 6}, tensor.Shape{1, 2}, backend)

	rows := tensor.Cat([]*tensor.Tensor[float64, *cpu.CPUBackend]{a, b}, 0)
	if !rows.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Expected shape [3 2], got %v", rows.Shape())
	}
	want := []float64{1, 2, 3, 4, 5, 6}
	for i, v := range rows.Data() {
		if v != want[i] {
			t.Errorf("Cat[%d] = %v, want %v", i, v, want[i])
		}
	}

	c, _ := tensor.FromSlice([]float64{7, 8}, tensor.Shape{2, 1}, backend)
	cols := tensor.Cat([]*tensor.Tensor[float64, *cpu.CPUBackend]{a, c}, 1)
	if !cols.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("Expected shape [2 3], got %v", cols.Shape())
	}
	wantCols := []float64{1, 2, 7, 3, 4, 8}
	for i, v := range cols.Data() {
		if v != wantCols[i] {
			t.Errorf("Cat[%d] = %v, want %v", i, v, wantCols[i])
		}
	}
}

func TestCat_MismatchPanics(t *testing.T) {
	backend := newBackend()
	a := tensor.Zeros[float64](tensor.Shape{2, 2}, backend)
	b := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for mismatched shapes")
		}
	}()
	tensor.Cat([]*tensor.Tensor[float64, *cpu.CPUBackend]{a, b}, 0)
}

// Shape sugar

func TestReshapeSqueezeUnsqueeze(t *testing.T) {
	backend := newBackend()
	a := tensor.Arange[float64](0, 6, backend)

	m := a.Reshape(2, 3)
	if !m.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Expected shape [2 3], got %v", m.Shape())
	}

	u := m.Unsqueeze(1)
	if !u.Shape().Equal(tensor.Shape{2, 1, 3}) {
		t.Errorf("Expected shape [2 1 3], got %v", u.Shape())
	}

	s := u.Squeeze(1)
	if !s.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Expected shape [2 3], got %v", s.Shape())
	}
}

func TestT(t *testing.T) {
	backend := newBackend()
	m, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)

	mt := m.T()
	if !mt.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Expected shape [3 2], got %v", mt.Shape())
	}
	if mt.At(0, 1) != 4 || mt.At(2, 0) != 3 {
		t.Errorf("Transpose content wrong: %v", mt.Data())
	}
}
