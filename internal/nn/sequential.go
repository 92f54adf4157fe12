package nn

import (
	"github.com/galileo-ml/galileo/internal/tensor"
)

// Sequential chains modules so each module's output feeds the next.
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 32, rng, backend),
//	    nn.NewTanh[B](),
//	    nn.NewLinear(32, 1, rng, backend),
//	)
type Sequential[B tensor.Backend] struct {
	modules []Module[B]
}

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{modules: modules}
}

// Forward applies all modules in order.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters returns the trainable parameters of all modules, in order.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential[B]) Add(module Module[B]) *Sequential[B] {
	s.modules = append(s.modules, module)
	return s
}

// Modules returns the contained modules.
func (s *Sequential[B]) Modules() []Module[B] {
	return s.modules
}
