package pinn

import (
	"fmt"
	"math/rand"

	"github.com/galileo-ml/galileo/internal/tensor"
)

// Sampler produces batches of collocation points for a condition.
// Sample returns an [n, Dims()] float64 tensor on the given backend.
// Random samplers redraw on every call; the trainer relies on this to
// see fresh collocation points each step.
type Sampler[B tensor.Backend] interface {
	Sample(n int, backend B) *tensor.Tensor[float64, B]
	Dims() int
}

// UniformSampler draws every column independently and uniformly from
// its interval.
type UniformSampler[B tensor.Backend] struct {
	intervals []Interval
	rng       *rand.Rand
}

// NewUniform creates a sampler with one interval per input column.
func NewUniform[B tensor.Backend](rng *rand.Rand, intervals ...Interval) *UniformSampler[B] {
	if len(intervals) == 0 {
		panic("pinn: NewUniform needs at least one interval")
	}
	return &UniformSampler[B]{intervals: intervals, rng: rng}
}

// Sample draws an [n, dims] batch.
func (s *UniformSampler[B]) Sample(n int, backend B) *tensor.Tensor[float64, B] {
	dims := len(s.intervals)
	data := make([]float64, n*dims)
	for i := 0; i < n; i++ {
		for j, iv := range s.intervals {
			data[i*dims+j] = iv.Sample(s.rng)
		}
	}
	t, err := tensor.FromSlice(data, tensor.Shape{n, dims}, backend)
	if err != nil {
		panic(err)
	}
	return t
}

// Dims returns the number of input columns.
func (s *UniformSampler[B]) Dims() int {
	return len(s.intervals)
}

// GridSampler emits a deterministic equidistant 1-D grid, shape [n, 1].
type GridSampler[B tensor.Backend] struct {
	interval Interval
}

// NewGrid creates a deterministic grid sampler over one interval.
func NewGrid[B tensor.Backend](interval Interval) *GridSampler[B] {
	return &GridSampler[B]{interval: interval}
}

// Sample returns the n-point grid as an [n, 1] tensor.
func (s *GridSampler[B]) Sample(n int, backend B) *tensor.Tensor[float64, B] {
	points := s.interval.Grid(n)
	t, err := tensor.FromSlice(points, tensor.Shape{n, 1}, backend)
	if err != nil {
		panic(err)
	}
	return t
}

// Dims returns 1.
func (s *GridSampler[B]) Dims() int {
	return 1
}

// BoundarySampler wraps another sampler and pins one column to a fixed
// value. Used for initial and boundary conditions: sample the domain,
// then clamp the time column to zero.
type BoundarySampler[B tensor.Backend] struct {
	inner  Sampler[B]
	column int
	value  float64
}

// NewBoundary creates a sampler that pins inner's column to value.
func NewBoundary[B tensor.Backend](inner Sampler[B], column int, value float64) *BoundarySampler[B] {
	if column < 0 || column >= inner.Dims() {
		panic(fmt.Sprintf("pinn: boundary column %d out of range for %d-dim sampler", column, inner.Dims()))
	}
	return &BoundarySampler[B]{inner: inner, column: column, value: value}
}

// Sample draws from the inner sampler and overwrites the pinned column.
func (s *BoundarySampler[B]) Sample(n int, backend B) *tensor.Tensor[float64, B] {
	points := s.inner.Sample(n, backend)
	for i := 0; i < n; i++ {
		points.Set(s.value, i, s.column)
	}
	return points
}

// Dims returns the inner sampler's dimensionality.
func (s *BoundarySampler[B]) Dims() int {
	return s.inner.Dims()
}

// ProductSampler concatenates 1-D samplers column-wise, pairing draws
// row by row: column j of the output is sampler j's batch. The
// parameterized workflow uses it to join a uniform parameter draw with
// a uniform (or grid) coordinate draw.
type ProductSampler[B tensor.Backend] struct {
	columns []Sampler[B]
}

// NewProduct creates a column-wise product of 1-D samplers.
func NewProduct[B tensor.Backend](columns ...Sampler[B]) *ProductSampler[B] {
	if len(columns) == 0 {
		panic("pinn: NewProduct needs at least one column sampler")
	}
	for i, c := range columns {
		if c.Dims() != 1 {
			panic(fmt.Sprintf("pinn: product column %d must be 1-dim, got %d", i, c.Dims()))
		}
	}
	return &ProductSampler[B]{columns: columns}
}

// Sample draws each column and concatenates along dim 1.
func (s *ProductSampler[B]) Sample(n int, backend B) *tensor.Tensor[float64, B] {
	parts := make([]*tensor.Tensor[float64, B], len(s.columns))
	for i, c := range s.columns {
		parts[i] = c.Sample(n, backend)
	}
	return tensor.Cat(parts, 1)
}

// Dims returns the number of columns.
func (s *ProductSampler[B]) Dims() int {
	return len(s.columns)
}
