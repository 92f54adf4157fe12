package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galileo-ml/galileo/internal/backend/cpu"
	"github.com/galileo-ml/galileo/internal/nn"
	"github.com/galileo-ml/galileo/internal/tensor"
)

func TestLinear_ForwardShape(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))

	layer := nn.NewLinear(3, 5, rng, backend)
	input := tensor.Ones[float64](tensor.Shape{4, 3}, backend)

	output := layer.Forward(input)
	require.True(t, output.Shape().Equal(tensor.Shape{4, 5}))
}

func TestLinear_ForwardValues(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))

	layer := nn.NewLinear(2, 1, rng, backend)

	// Overwrite the random init with known values: y = 2a + 3b + 0.5.
	w := layer.Weight().Tensor()
	w.Set(2, 0, 0)
	w.Set(3, 0, 1)
	layer.Bias().Tensor().Set(0.5, 0)

	input, err := tensor.FromSlice([]float64{1, 1, 2, -1}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	output := layer.Forward(input)
	require.InDelta(t, 2+3+0.5, output.At(0, 0), 1e-12)
	require.InDelta(t, 4-3+0.5, output.At(1, 0), 1e-12)
}

func TestLinear_WrongInputPanics(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewLinear(3, 5, rng, backend)

	require.Panics(t, func() {
		layer.Forward(tensor.Ones[float64](tensor.Shape{4, 7}, backend))
	})
	require.Panics(t, func() {
		layer.Forward(tensor.Ones[float64](tensor.Shape{4}, backend))
	})
}

func TestXavier_Bound(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(42))

	fanIn, fanOut := 30, 20
	w := nn.Xavier(fanIn, fanOut, tensor.Shape{fanOut, fanIn}, rng, backend)

	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	for _, v := range w.Data() {
		require.LessOrEqual(t, math.Abs(v), bound)
	}
}

func TestTanh_Forward(t *testing.T) {
	backend := cpu.New()
	act := nn.NewTanh[*cpu.CPUBackend]()

	input, err := tensor.FromSlice([]float64{-2, 0, 2}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	out := act.Forward(input)
	require.InDelta(t, math.Tanh(-2), out.At(0), 1e-12)
	require.InDelta(t, 0, out.At(1), 1e-12)
	require.InDelta(t, math.Tanh(2), out.At(2), 1e-12)
	require.Nil(t, act.Parameters())
}

func TestSigmoid_Forward(t *testing.T) {
	backend := cpu.New()
	act := nn.NewSigmoid[*cpu.CPUBackend]()

	input, err := tensor.FromSlice([]float64{-3, 0, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	out := act.Forward(input)
	require.InDelta(t, 1/(1+math.Exp(3)), out.At(0), 1e-12)
	require.InDelta(t, 0.5, out.At(1), 1e-12)
	require.InDelta(t, 1/(1+math.Exp(-3)), out.At(2), 1e-12)
}

func TestSequential_ForwardAndParameters(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(3))

	model := nn.NewSequential[*cpu.CPUBackend](
		nn.NewLinear(2, 8, rng, backend),
		nn.NewTanh[*cpu.CPUBackend](),
		nn.NewLinear(8, 1, rng, backend),
	)

	out := model.Forward(tensor.Ones[float64](tensor.Shape{5, 2}, backend))
	require.True(t, out.Shape().Equal(tensor.Shape{5, 1}))

	// Two Linear layers, weight+bias each.
	require.Len(t, model.Parameters(), 4)
}

func TestMSELoss(t *testing.T) {
	backend := cpu.New()
	mse := nn.NewMSELoss[*cpu.CPUBackend]()

	pred, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)
	target, err := tensor.FromSlice([]float64{2, 2, 5}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	loss := mse.Forward(pred, target)
	// ((1)² + 0 + (2)²) / 3
	require.InDelta(t, 5.0/3.0, loss.Item(), 1e-12)

	require.Panics(t, func() {
		mse.Forward(pred, tensor.Ones[float64](tensor.Shape{2}, backend))
	})
}

func TestParameter_GradLifecycle(t *testing.T) {
	backend := cpu.New()
	p := nn.NewParameter("weight", tensor.Ones[float64](tensor.Shape{2}, backend))

	require.Nil(t, p.Grad())
	p.SetGrad(tensor.Ones[float64](tensor.Shape{2}, backend))
	require.NotNil(t, p.Grad())
	p.ZeroGrad()
	require.Nil(t, p.Grad())
	require.Equal(t, "weight", p.Name())
}
