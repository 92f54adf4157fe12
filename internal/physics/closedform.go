// Package physics provides closed-form reference solutions and dataset
// construction for the training workflows.
//
// The references are analytic solutions of the two governing equations
// used throughout the module:
//
//   - a ball falling with quadratic air drag,
//     u'' = -g + D·(u')², u(0)=H, u'(0)=0
//   - exponential growth, u' = k·u, u(0)=1
//
// Having exact solutions is what makes the experiments teachable: every
// trained network can be scored against ground truth.
package physics

import "math"

// FallingBall describes a ball dropped from height H under gravity G
// with quadratic drag. The drag coefficient D is per-evaluation, not
// part of the struct: the parameterized workflow treats it as an input.
type FallingBall struct {
	G float64 // gravitational acceleration
	H float64 // initial height, u(0)
}

// DefaultFallingBall returns the reference configuration: g = 9.81,
// H = 50.
func DefaultFallingBall() FallingBall {
	return FallingBall{G: 9.81, H: 50}
}

// Height evaluates the closed-form solution
//
//	u(t; D) = H - ln(cosh(√(gD)·t)) / D
//
// computed as H - (√(gD)·t + log1p(e^{-2√(gD)·t}) - ln 2)/D, which is
// the same quantity in a form that cannot overflow cosh for large t.
func (f FallingBall) Height(t, d float64) float64 {
	x := math.Sqrt(f.G*d) * t
	return f.H - (x+math.Log1p(math.Exp(-2*x))-math.Ln2)/d
}

// Velocity evaluates u'(t; D) = -√(g/D)·tanh(√(gD)·t). The ball
// approaches the terminal velocity -√(g/D).
func (f FallingBall) Velocity(t, d float64) float64 {
	return -math.Sqrt(f.G/d) * math.Tanh(math.Sqrt(f.G*d)*t)
}

// Residual evaluates the governing equation u'' + g - D·(u')² given
// second derivative ddu and first derivative du. Zero for an exact
// solution.
func (f FallingBall) Residual(ddu, du, d float64) float64 {
	return ddu + f.G - d*du*du
}

// ExpGrowth evaluates u(x; k) = e^{kx}, the solution of u' = k·u with
// u(0) = 1.
func ExpGrowth(x, k float64) float64 {
	return math.Exp(k * x)
}
