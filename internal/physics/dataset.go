package physics

import (
	"fmt"
	"math/rand"

	"github.com/galileo-ml/galileo/internal/tensor"
)

// GridConfig describes a synthetic dataset over a (parameter, time)
// product: NumParams independent uniform parameter draws, each paired
// with the same equidistant NumTimes-point time grid.
type GridConfig struct {
	ParamMin, ParamMax float64
	TimeMin, TimeMax   float64
	NumParams          int
	NumTimes           int
}

// BuildGrid samples a dataset for the target function f(param, t).
//
// Returned shapes:
//
//	inputs  [NumParams, NumTimes, 2]  inputs[i,k,0]=param_i, inputs[i,k,1]=t_k
//	targets [NumParams, NumTimes, 1]  targets[i,k,0]=f(param_i, t_k)
//
// Parameter values are drawn independently and uniformly from
// [ParamMin, ParamMax] using rng; the time grid is shared across all
// draws. Invalid counts are a caller contract violation.
func BuildGrid[B tensor.Backend](cfg GridConfig, f func(param, t float64) float64, rng *rand.Rand, backend B) (inputs, targets *tensor.Tensor[float64, B]) {
	if cfg.NumParams <= 0 || cfg.NumTimes <= 0 {
		panic(fmt.Sprintf("physics: grid counts must be positive, got %d×%d", cfg.NumParams, cfg.NumTimes))
	}

	times := make([]float64, cfg.NumTimes)
	for k := range times {
		if cfg.NumTimes == 1 {
			times[k] = cfg.TimeMin
		} else {
			times[k] = cfg.TimeMin + (cfg.TimeMax-cfg.TimeMin)*float64(k)/float64(cfg.NumTimes-1)
		}
	}

	inData := make([]float64, cfg.NumParams*cfg.NumTimes*2)
	outData := make([]float64, cfg.NumParams*cfg.NumTimes)

	for i := 0; i < cfg.NumParams; i++ {
		param := cfg.ParamMin + rng.Float64()*(cfg.ParamMax-cfg.ParamMin)
		for k := 0; k < cfg.NumTimes; k++ {
			base := (i*cfg.NumTimes + k) * 2
			inData[base] = param
			inData[base+1] = times[k]
			outData[i*cfg.NumTimes+k] = f(param, times[k])
		}
	}

	inputs, err := tensor.FromSlice(inData, tensor.Shape{cfg.NumParams, cfg.NumTimes, 2}, backend)
	if err != nil {
		panic(err)
	}
	targets, err = tensor.FromSlice(outData, tensor.Shape{cfg.NumParams, cfg.NumTimes, 1}, backend)
	if err != nil {
		panic(err)
	}
	return inputs, targets
}

// Flatten2D collapses the (parameter, time) axes of a BuildGrid pair so
// the tensors feed a dense regressor: [P, T, 2] → [P·T, 2] and
// [P, T, 1] → [P·T, 1].
func Flatten2D[B tensor.Backend](inputs, targets *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], *tensor.Tensor[float64, B]) {
	in := inputs.Shape()
	if len(in) != 3 || in[2] != 2 {
		panic(fmt.Sprintf("physics: Flatten2D expects inputs [P, T, 2], got %v", in))
	}
	out := targets.Shape()
	if len(out) != 3 || out[0] != in[0] || out[1] != in[1] || out[2] != 1 {
		panic(fmt.Sprintf("physics: Flatten2D expects targets [%d, %d, 1], got %v", in[0], in[1], out))
	}
	n := in[0] * in[1]
	return inputs.Reshape(n, 2), targets.Reshape(n, 1)
}

// RelativeError scores predictions against targets as
// max|pred - target| / max|target|. Normalizing by the global maximum
// rather than pointwise keeps near-zero targets from exploding the
// metric.
func RelativeError[B tensor.Backend](pred, target *tensor.Tensor[float64, B]) float64 {
	if !pred.Shape().Equal(target.Shape()) {
		panic(fmt.Sprintf("physics: RelativeError shapes disagree: %v vs %v", pred.Shape(), target.Shape()))
	}

	predData := pred.Data()
	targetData := target.Data()

	var maxErr, maxTarget float64
	for i := range predData {
		if e := abs(predData[i] - targetData[i]); e > maxErr {
			maxErr = e
		}
		if a := abs(targetData[i]); a > maxTarget {
			maxTarget = a
		}
	}
	if maxTarget == 0 {
		return maxErr
	}
	return maxErr / maxTarget
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
