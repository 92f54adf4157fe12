// Package pinn implements physics-informed training: domains, point
// samplers, named residual conditions, and a trainer that minimizes the
// summed condition losses.
//
// A physics-informed network is fit not (only) to labeled data but to
// the governing equation itself: each Condition samples points from the
// domain, evaluates a residual that should vanish for an exact solution,
// and contributes its mean squared magnitude to the loss. Derivatives of
// the network with respect to its inputs come from jet propagation
// (nn.Jet); derivatives of the loss with respect to the parameters come
// from the gradient tape.
package pinn

import (
	"fmt"
	"math/rand"
)

// Interval is a closed interval [Lo, Hi] on one input axis.
type Interval struct {
	Lo, Hi float64
}

// Length returns Hi - Lo.
func (iv Interval) Length() float64 {
	return iv.Hi - iv.Lo
}

// Sample draws a uniform point from the interval.
func (iv Interval) Sample(rng *rand.Rand) float64 {
	return iv.Lo + rng.Float64()*iv.Length()
}

// Grid returns n equidistant points spanning the interval, endpoints
// included.
func (iv Interval) Grid(n int) []float64 {
	if n < 2 {
		panic(fmt.Sprintf("pinn: grid needs at least 2 points, got %d", n))
	}
	points := make([]float64, n)
	step := iv.Length() / float64(n-1)
	for i := range points {
		points[i] = iv.Lo + float64(i)*step
	}
	points[n-1] = iv.Hi // exact endpoint, no accumulated rounding
	return points
}
