package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/galileo-ml/galileo/autodiff"
	"github.com/galileo-ml/galileo/backend/cpu"
	"github.com/galileo-ml/galileo/internal/viz"
	"github.com/galileo-ml/galileo/nn"
	"github.com/galileo-ml/galileo/optim"
	"github.com/galileo-ml/galileo/physics"
	"github.com/galileo-ml/galileo/pinn"
	"github.com/galileo-ml/galileo/tensor"
)

var pinnOpts struct {
	drag   float64
	steps  int
	hidden int
	lr     float64
	points int
	seed   int64
	plot   string
}

var pinnCmd = &cobra.Command{
	Use:   "pinn",
	Short: "Train a physics-informed network for one drag coefficient",
	Long: `Trains a network on the falling-ball equation itself, with no solution
data: the loss is the ODE residual u'' + g - D u'^2 on interior points
plus the two initial-condition residuals at t=0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend := autodiff.New(cpu.New())
		rng := rand.New(rand.NewSource(pinnOpts.seed))
		ball := physics.DefaultFallingBall()
		d := pinnOpts.drag

		model := newMLP(1, pinnOpts.hidden, rng, backend)

		timeDomain := pinn.Interval{Lo: 0, Hi: 5}
		interior := pinn.NewUniform[adBackend](rng, timeDomain)
		origin := pinn.NewBoundary[adBackend](interior, 0, 0)

		conditions := []pinn.Condition[adBackend]{
			{
				Name:    "ode",
				Sampler: interior,
				Points:  pinnOpts.points,
				Residual: func(model nn.JetModule[adBackend], pts *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend] {
					jet := model.ForwardJet(nn.VariableJet(pts, pinn.ColumnDirection(pts, 0)))
					return jet.Second.AddScalar(ball.G).Sub(jet.First.Mul(jet.First).MulScalar(d))
				},
			},
			{
				Name:    "height",
				Sampler: origin,
				Points:  16,
				Residual: func(model nn.JetModule[adBackend], pts *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend] {
					return model.Forward(pts).SubScalar(ball.H)
				},
			},
			{
				Name:    "velocity",
				Sampler: origin,
				Points:  16,
				Residual: func(model nn.JetModule[adBackend], pts *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend] {
					jet := model.ForwardJet(nn.VariableJet(pts, pinn.ColumnDirection(pts, 0)))
					return jet.First
				},
			},
		}

		adam := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: pinnOpts.lr})
		trainer := pinn.NewTrainer[adBackend](model, conditions, adam, backend, pinn.Config{
			Steps:    pinnOpts.steps,
			LogEvery: 200,
			Logf:     cmd.Printf,
		})
		trainer.Run()

		const n = 200
		grid := timeDomain.Grid(n)
		pred, err := evalTimeSeries(model, grid, backend)
		if err != nil {
			return err
		}
		exact := make([]float64, n)
		var maxErr float64
		for i, t := range grid {
			exact[i] = ball.Height(t, d)
			diff := pred[i] - exact[i]
			if diff < 0 {
				diff = -diff
			}
			if diff > maxErr {
				maxErr = diff
			}
		}
		cmd.Printf("max |model - exact|: %.4f m\n", maxErr)

		if pinnOpts.plot == "" {
			return nil
		}
		err = viz.Line(pinnOpts.plot, fmt.Sprintf("Falling ball, D=%.3f", d), "t [s]", "u(t) [m]",
			viz.Series{Name: "exact", X: grid, Y: exact},
			viz.Series{Name: "model", X: grid, Y: pred},
		)
		if err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", pinnOpts.plot)
		return nil
	},
}

// evalTimeSeries forwards a [n, 1] time column through the model.
func evalTimeSeries(model *nn.Sequential[adBackend], ts []float64, backend adBackend) ([]float64, error) {
	data := make([]float64, len(ts))
	copy(data, ts)
	in, err := tensor.FromSlice(data, tensor.Shape{len(ts), 1}, backend)
	if err != nil {
		return nil, err
	}
	out := model.Forward(in)
	pred := make([]float64, len(ts))
	for i := range ts {
		pred[i] = out.At(i, 0)
	}
	return pred, nil
}

func init() {
	f := pinnCmd.Flags()
	f.Float64Var(&pinnOpts.drag, "drag", 0.1, "drag coefficient D")
	f.IntVar(&pinnOpts.steps, "steps", 3000, "training steps")
	f.IntVar(&pinnOpts.hidden, "width", 32, "hidden layer width")
	f.Float64Var(&pinnOpts.lr, "lr", 0.005, "Adam learning rate")
	f.IntVar(&pinnOpts.points, "points", 128, "interior collocation points per step")
	f.Int64Var(&pinnOpts.seed, "seed", 1, "RNG seed")
	f.StringVar(&pinnOpts.plot, "plot", "", "write a trajectory PNG to this path")
}
