package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galileo-ml/galileo/internal/autodiff"
	"github.com/galileo-ml/galileo/internal/backend/cpu"
	"github.com/galileo-ml/galileo/internal/tensor"
)

func TestAutodiffBackend_Name(t *testing.T) {
	backend := autodiff.New(cpu.New())
	if backend.Name() != "Autodiff(CPU)" {
		t.Errorf("Name() = %s, want Autodiff(CPU)", backend.Name())
	}
}

func TestAutodiffBackend_Device(t *testing.T) {
	backend := autodiff.New(cpu.New())
	if backend.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want %v", backend.Device(), tensor.CPU)
	}
}

func TestTape_Recording(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	if tape.IsRecording() {
		t.Error("tape should not be recording initially")
	}

	tape.StartRecording()
	if !tape.IsRecording() {
		t.Error("tape should be recording after StartRecording()")
	}

	tape.StopRecording()
	if tape.IsRecording() {
		t.Error("tape should not be recording after StopRecording()")
	}
}

func TestTape_Clear(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()
	tape.StartRecording()

	a, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	_ = a.Mul(a)
	require.Equal(t, 1, tape.NumOps())

	tape.Clear()
	require.Equal(t, 0, tape.NumOps())
	require.True(t, tape.IsRecording(), "Clear must preserve recording state")
}

func TestTape_NotRecordingRecordsNothing(t *testing.T) {
	backend := autodiff.New(cpu.New())

	a, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	_ = a.Mul(a)

	require.Equal(t, 0, backend.Tape().NumOps())
}

// The defining property of the engine: d(x²)/dx = 2x, checked element by
// element at several points including zero and negatives.
func TestSquareGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	points := []float64{-2, -0.5, 0, 1, 3}
	x, err := tensor.FromSlice(points, tensor.Shape{len(points)}, backend)
	require.NoError(t, err)

	y := x.Mul(x)
	grads := autodiff.Backward(y, backend)

	grad := grads[x.Raw()].AsFloat64()
	for i, p := range points {
		require.InDelta(t, 2*p, grad[i], 1e-5, "d(x²)/dx at x=%v", p)
	}
}

// x feeding two operations must accumulate: d(x² + x)/dx = 2x + 1.
func TestGradientAccumulation(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.FromSlice([]float64{1.5, -3}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	y := x.Mul(x).Add(x)
	grads := autodiff.Backward(y, backend)

	grad := grads[x.Raw()].AsFloat64()
	require.InDelta(t, 2*1.5+1, grad[0], 1e-12)
	require.InDelta(t, 2*(-3)+1, grad[1], 1e-12)
}

// Scalar operations chain: d(((x*3)+2)/4)/dx = 3/4.
func TestScalarChainGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.FromSlice([]float64{7}, tensor.Shape{1}, backend)
	require.NoError(t, err)

	y := x.MulScalar(3).AddScalar(2).DivScalar(4)
	grads := autodiff.Backward(y, backend)

	require.InDelta(t, 0.75, grads[x.Raw()].AsFloat64()[0], 1e-12)
}

// A broadcast input must receive its gradient summed back down.
func TestBroadcastAddGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	a, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3, 1}, backend)
	require.NoError(t, err)
	b := tensor.Ones[float64](tensor.Shape{3, 4}, backend)

	loss := a.Add(b).Sum()
	grads := autodiff.Backward(loss, backend)

	gradA := grads[a.Raw()]
	require.True(t, gradA.Shape().Equal(tensor.Shape{3, 1}))
	for _, g := range gradA.AsFloat64() {
		require.InDelta(t, 4.0, g, 1e-12, "each a element feeds 4 outputs")
	}

	gradB := grads[b.Raw()]
	require.True(t, gradB.Shape().Equal(tensor.Shape{3, 4}))
	for _, g := range gradB.AsFloat64() {
		require.InDelta(t, 1.0, g, 1e-12)
	}
}

func TestMatMulGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	aData := []float64{1, 2, 3, 4, 5, 6}
	bData := []float64{7, 8, 9, 10, 11, 12}
	a, err := tensor.FromSlice(aData, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice(bData, tensor.Shape{3, 2}, backend)
	require.NoError(t, err)

	loss := a.MatMul(b).Sum()
	grads := autodiff.Backward(loss, backend)

	// d(sum(A@B))/dA[i,k] = sum_j B[k,j]
	gradA := grads[a.Raw()].AsFloat64()
	for i := 0; i < 2; i++ {
		for k := 0; k < 3; k++ {
			want := bData[k*2] + bData[k*2+1]
			require.InDelta(t, want, gradA[i*3+k], 1e-12)
		}
	}

	// d(sum(A@B))/dB[k,j] = sum_i A[i,k]
	gradB := grads[b.Raw()].AsFloat64()
	for k := 0; k < 3; k++ {
		for j := 0; j < 2; j++ {
			want := aData[k] + aData[3+k]
			require.InDelta(t, want, gradB[k*2+j], 1e-12)
		}
	}
}

func TestMeanGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.FromSlice([]float64{2, 4, 6, 8}, tensor.Shape{4}, backend)
	require.NoError(t, err)

	loss := x.Mean()
	grads := autodiff.Backward(loss, backend)

	for _, g := range grads[x.Raw()].AsFloat64() {
		require.InDelta(t, 0.25, g, 1e-12)
	}
}

func TestMeanDimGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x := tensor.Ones[float64](tensor.Shape{2, 3}, backend)
	loss := x.MeanDim(1, false).Sum()
	grads := autodiff.Backward(loss, backend)

	grad := grads[x.Raw()]
	require.True(t, grad.Shape().Equal(tensor.Shape{2, 3}))
	for _, g := range grad.AsFloat64() {
		require.InDelta(t, 1.0/3.0, g, 1e-12)
	}
}

// Gradients must survive a transpose/reshape round trip untouched.
func TestShapeOpsGradientFlow(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	loss := x.T().Reshape(6).Sum()
	grads := autodiff.Backward(loss, backend)

	grad := grads[x.Raw()]
	require.True(t, grad.Shape().Equal(tensor.Shape{2, 3}))
	for _, g := range grad.AsFloat64() {
		require.InDelta(t, 1.0, g, 1e-12)
	}
}

func TestBackward_EmptyTapePanics(t *testing.T) {
	backend := autodiff.New(cpu.New())
	x := tensor.Ones[float64](tensor.Shape{1}, backend)
	require.Panics(t, func() {
		autodiff.Backward(x, backend)
	})
}
