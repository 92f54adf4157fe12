package pinn

import (
	"github.com/galileo-ml/galileo/internal/nn"
	"github.com/galileo-ml/galileo/internal/tensor"
)

// ParamError is the evaluation error for one parameter value.
type ParamError struct {
	Param       float64
	MaxAbsError float64
}

// SweepParam scores a trained model against a closed-form reference
// across the parameter family: for each of nParams equidistant parameter
// values it evaluates the model on an nGrid-point coordinate grid
// (inputs [nGrid, 2] with parameter in column 0, coordinate in column 1)
// and records the maximum absolute error against exact(param, x).
//
// The parameter axis is swept independently of whatever draws were used
// in training, which is the point: it probes generalization across the
// family, not memorization of the training parameters.
func SweepParam[B tensor.Backend](model nn.Module[B], exact func(param, x float64) float64, params Interval, nParams int, coords Interval, nGrid int, backend B) []ParamError {
	grid := coords.Grid(nGrid)
	result := make([]ParamError, 0, nParams)

	for _, p := range params.Grid(nParams) {
		data := make([]float64, nGrid*2)
		for i, x := range grid {
			data[i*2] = p
			data[i*2+1] = x
		}
		inputs, err := tensor.FromSlice(data, tensor.Shape{nGrid, 2}, backend)
		if err != nil {
			panic(err)
		}

		pred := model.Forward(inputs)
		var maxErr float64
		for i, x := range grid {
			diff := pred.At(i, 0) - exact(p, x)
			if diff < 0 {
				diff = -diff
			}
			if diff > maxErr {
				maxErr = diff
			}
		}
		result = append(result, ParamError{Param: p, MaxAbsError: maxErr})
	}
	return result
}
