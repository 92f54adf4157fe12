package pinn

import (
	"github.com/galileo-ml/galileo/internal/nn"
	"github.com/galileo-ml/galileo/internal/tensor"
)

// Condition is one named term of a physics-informed loss. Each training
// step the trainer samples Points collocation points, evaluates the
// residual, and adds Weight · mean(residual²) to the total loss.
//
// Typical conditions for a second-order ODE:
//
//   - "ode": interior sampler, residual compares the network's second
//     derivative (via jet propagation) to the equation's right-hand side
//   - "initial-value": boundary sampler pinning t=0, residual is
//     network(0) minus the known initial value
//   - "initial-slope": boundary sampler pinning t=0, residual is the
//     jet first derivative at 0
type Condition[B tensor.Backend] struct {
	Name    string
	Sampler Sampler[B]
	Points  int
	Weight  float64 // 0 means 1 (unweighted)

	// Residual maps the model and an [n, dims] batch of points to a
	// residual tensor that an exact solution would make zero.
	Residual func(model nn.JetModule[B], points *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B]
}

// Loss evaluates the condition's weighted mean squared residual as a
// shape {1} tensor on the tape.
func (c *Condition[B]) Loss(model nn.JetModule[B], backend B) *tensor.Tensor[float64, B] {
	points := c.Sampler.Sample(c.Points, backend)
	residual := c.Residual(model, points)
	loss := residual.Mul(residual).Mean()
	if c.Weight != 0 && c.Weight != 1 {
		loss = loss.MulScalar(c.Weight)
	}
	return loss
}

// ColumnDirection builds the jet seed direction for differentiating
// with respect to one input column: an [n, dims] tensor with ones in
// that column and zeros elsewhere.
func ColumnDirection[B tensor.Backend](points *tensor.Tensor[float64, B], column int) *tensor.Tensor[float64, B] {
	direction := tensor.Zeros[float64](points.Shape(), points.Backend())
	n := points.Shape()[0]
	for i := 0; i < n; i++ {
		direction.Set(1, i, column)
	}
	return direction
}
