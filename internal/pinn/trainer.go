package pinn

import (
	"fmt"

	"github.com/galileo-ml/galileo/internal/autodiff"
	"github.com/galileo-ml/galileo/internal/nn"
	"github.com/galileo-ml/galileo/internal/optim"
	"github.com/galileo-ml/galileo/internal/tensor"
)

// Config controls a training run.
type Config struct {
	Steps    int // fixed iteration count, not a convergence criterion
	LogEvery int // history/log interval in steps (default 100)

	// Logf, when set, receives progress lines (fmt.Printf signature).
	Logf func(format string, args ...any)
}

// Record is one logged snapshot of the training losses.
type Record struct {
	Step       int
	Total      float64
	Conditions map[string]float64
}

// History is the sequence of logged records from a run.
type History []Record

// Trainer minimizes the summed condition losses over a jet-capable
// model. The backend must support a backward pass; conditions resample
// their collocation points every step.
type Trainer[B autodiff.BackwardCapable] struct {
	model      nn.JetModule[B]
	conditions []Condition[B]
	optimizer  optim.Optimizer
	backend    B
	config     Config
}

// NewTrainer assembles a trainer. Panics on an empty condition list or
// a non-positive step count; both are caller bugs, not runtime states.
func NewTrainer[B autodiff.BackwardCapable](model nn.JetModule[B], conditions []Condition[B], optimizer optim.Optimizer, backend B, config Config) *Trainer[B] {
	if len(conditions) == 0 {
		panic("pinn: trainer needs at least one condition")
	}
	if config.Steps <= 0 {
		panic(fmt.Sprintf("pinn: step count must be positive, got %d", config.Steps))
	}
	if config.LogEvery <= 0 {
		config.LogEvery = 100
	}
	return &Trainer[B]{
		model:      model,
		conditions: conditions,
		optimizer:  optimizer,
		backend:    backend,
		config:     config,
	}
}

// Run executes the fixed number of training steps and returns the
// logged history. Each step: clear the tape, record the forward pass of
// every condition on freshly sampled points, assemble the total loss,
// backpropagate, and apply the optimizer.
func (t *Trainer[B]) Run() History {
	var history History
	tape := t.backend.GetTape()

	for step := 1; step <= t.config.Steps; step++ {
		tape.Clear()
		tape.StartRecording()

		condLosses := make(map[string]float64, len(t.conditions))
		var total *tensor.Tensor[float64, B]
		for i := range t.conditions {
			c := &t.conditions[i]
			loss := c.Loss(t.model, t.backend)
			condLosses[c.Name] = loss.Item()
			if total == nil {
				total = loss
			} else {
				total = total.Add(loss)
			}
		}

		grads := autodiff.Backward(total, t.backend)
		tape.StopRecording()

		t.optimizer.Step(grads)
		t.optimizer.ZeroGrad()

		if step == 1 || step%t.config.LogEvery == 0 || step == t.config.Steps {
			record := Record{Step: step, Total: total.Item(), Conditions: condLosses}
			history = append(history, record)
			if t.config.Logf != nil {
				t.config.Logf("step %6d  loss %.6e%s\n", step, record.Total, formatConditions(t.conditions, condLosses))
			}
		}
	}

	tape.Clear()
	return history
}

// Model returns the trained model.
func (t *Trainer[B]) Model() nn.JetModule[B] {
	return t.model
}

func formatConditions[B tensor.Backend](conditions []Condition[B], losses map[string]float64) string {
	out := ""
	for i := range conditions {
		name := conditions[i].Name
		out += fmt.Sprintf("  %s %.6e", name, losses[name])
	}
	return out
}
