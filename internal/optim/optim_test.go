package optim_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galileo-ml/galileo/internal/autodiff"
	"github.com/galileo-ml/galileo/internal/backend/cpu"
	"github.com/galileo-ml/galileo/internal/nn"
	"github.com/galileo-ml/galileo/internal/optim"
	"github.com/galileo-ml/galileo/internal/tensor"
)

type adBackend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func TestSGD_SimpleUpdate(t *testing.T) {
	backend := cpu.New()

	p := nn.NewParameter("w", tensor.Ones[float64](tensor.Shape{2}, backend))
	grad, err := tensor.FromSlice([]float64{0.5, -1}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	sgd := optim.NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, optim.SGDConfig{LR: 0.1})
	sgd.Step(map[*tensor.RawTensor]*tensor.RawTensor{p.Tensor().Raw(): grad.Raw()})

	require.InDelta(t, 1-0.1*0.5, p.Tensor().At(0), 1e-12)
	require.InDelta(t, 1+0.1, p.Tensor().At(1), 1e-12)
}

func TestSGD_Momentum(t *testing.T) {
	backend := cpu.New()

	p := nn.NewParameter("w", tensor.Zeros[float64](tensor.Shape{1}, backend))
	grad := tensor.Ones[float64](tensor.Shape{1}, backend)
	grads := map[*tensor.RawTensor]*tensor.RawTensor{p.Tensor().Raw(): grad.Raw()}

	sgd := optim.NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, optim.SGDConfig{LR: 1, Momentum: 0.5})

	sgd.Step(grads) // velocity 1, param -1
	require.InDelta(t, -1, p.Tensor().At(0), 1e-12)

	sgd.Step(grads) // velocity 1.5, param -2.5
	require.InDelta(t, -2.5, p.Tensor().At(0), 1e-12)
}

func TestSGD_MissingGradientSkipped(t *testing.T) {
	backend := cpu.New()
	p := nn.NewParameter("w", tensor.Ones[float64](tensor.Shape{2}, backend))

	sgd := optim.NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, optim.SGDConfig{LR: 0.1})
	sgd.Step(map[*tensor.RawTensor]*tensor.RawTensor{})

	require.InDelta(t, 1, p.Tensor().At(0), 1e-12)
	require.InDelta(t, 1, p.Tensor().At(1), 1e-12)
}

func TestAdam_Defaults(t *testing.T) {
	backend := cpu.New()
	p := nn.NewParameter("w", tensor.Ones[float64](tensor.Shape{1}, backend))

	adam := optim.NewAdam([]*nn.Parameter[*cpu.CPUBackend]{p}, optim.AdamConfig{})
	require.InDelta(t, 0.001, adam.GetLR(), 1e-12)
	require.Equal(t, 0, adam.Timestep())
}

// With bias correction, the very first Adam step is close to lr in the
// gradient's direction regardless of gradient magnitude.
func TestAdam_FirstStepMagnitude(t *testing.T) {
	backend := cpu.New()

	p := nn.NewParameter("w", tensor.Zeros[float64](tensor.Shape{2}, backend))
	grad, err := tensor.FromSlice([]float64{100, -0.01}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	adam := optim.NewAdam([]*nn.Parameter[*cpu.CPUBackend]{p}, optim.AdamConfig{LR: 0.1})
	adam.Step(map[*tensor.RawTensor]*tensor.RawTensor{p.Tensor().Raw(): grad.Raw()})

	require.InDelta(t, -0.1, p.Tensor().At(0), 1e-6)
	require.InDelta(t, 0.1, p.Tensor().At(1), 1e-6)
}

// End-to-end descent: fit y = 2x with a single linear neuron; the MSE
// loss must shrink monotonically-enough to drop by orders of magnitude.
func TestAdam_DescentOnRegression(t *testing.T) {
	backend := autodiff.New(cpu.New())
	rng := rand.New(rand.NewSource(5))

	model := nn.NewLinear(1, 1, rng, backend)
	mse := nn.NewMSELoss[adBackend]()
	adam := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.05})

	x, err := tensor.FromSlice([]float64{-1, 0, 1, 2}, tensor.Shape{4, 1}, backend)
	require.NoError(t, err)
	y, err := tensor.FromSlice([]float64{-2, 0, 2, 4}, tensor.Shape{4, 1}, backend)
	require.NoError(t, err)

	step := func() float64 {
		backend.Tape().Clear()
		backend.Tape().StartRecording()
		loss := mse.Forward(model.Forward(x), y)
		grads := autodiff.Backward(loss, backend)
		backend.Tape().StopRecording()
		adam.Step(grads)
		adam.ZeroGrad()
		return loss.Item()
	}

	first := step()
	var last float64
	for i := 0; i < 300; i++ {
		last = step()
	}

	require.Less(t, last, first/100, "loss should drop by >100x (first %v, last %v)", first, last)
}
