package main

import (
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

var parametricOpts struct {
	steps  int
	hidden int
	lr     float64
	points int
	seed   int64
	plot   string
}

var parametricCmd = &cobra.Command{
	Use:   "parametric",
	Short: "Train one network for the whole exponential-growth family",
	Long: `Trains a network taking (k, x) to satisfy u' = k u with u(0) = 1 for
every growth rate k in [0, 2] at once, then sweeps k against the closed
form e^{kx} to check generalization across the family.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend := autodiff.New(cpu.New())
		rng := rand.New(rand.NewSource(parametricOpts.seed))

		kDomain := pinn.Interval{Lo: 0, Hi: 2}
		xDomain := pinn.Interval{Lo: 0, Hi: 1}
		interior := pinn.NewUniform[adBackend](rng, kDomain, xDomain)
		initial := pinn.NewBoundary[adBackend](interior, 1, 0)

		model := newMLP(2, parametricOpts.hidden, rng, backend)

		conditions := []pinn.Condition[adBackend]{
			{
				Name:    "ode",
				Sampler: interior,
				Points:  parametricOpts.points,
				Residual: func(model nn.JetModule[adBackend], pts *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend] {
					jet := model.ForwardJet(nn.VariableJet(pts, pinn.ColumnDirection(pts, 1)))
					k := pts.Slice(1, 0, 1).Detach()
					return jet.First.Sub(k.Mul(jet.Value))
				},
			},
			{
				Name:    "initial",
				Sampler: initial,
				Points:  64,
				Residual: func(model nn.JetModule[adBackend], pts *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend] {
					return model.Forward(pts).SubScalar(1)
				},
			},
		}

		adam := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: parametricOpts.lr})
		trainer := pinn.NewTrainer[adBackend](model, conditions, adam, backend, pinn.Config{
			Steps:    parametricOpts.steps,
			LogEvery: 250,
			Logf:     cmd.Printf,
		})
		trainer.Run()

		exact := func(k, x float64) float64 { return physics.ExpGrowth(x, k) }
		sweep := pinn.SweepParam[adBackend](model, exact, kDomain, 11, xDomain, 101, backend)

		cmd.Println("  k       max |u_net - e^{kx}|")
		ks := make([]float64, len(sweep))
		errs := make([]float64, len(sweep))
		for i, pe := range sweep {
			ks[i] = pe.Param
			errs[i] = pe.MaxAbsError
			cmd.Printf("  %.2f    %.6f\n", pe.Param, pe.MaxAbsError)
		}

		if parametricOpts.plot == "" {
			return nil
		}
		err := viz.Line(parametricOpts.plot, "Generalization across growth rates", "k", "max abs error",
			viz.Series{Name: "error", X: ks, Y: errs},
		)
		if err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", parametricOpts.plot)
		return nil
	},
}

func init() {
	f := parametricCmd.Flags()
	f.IntVar(&parametricOpts.steps, "steps", 4000, "training steps")
	f.IntVar(&parametricOpts.hidden, "width", 32, "hidden layer width")
	f.Float64Var(&parametricOpts.lr, "lr", 0.005, "Adam learning rate")
	f.IntVar(&parametricOpts.points, "points", 256, "interior collocation points per step")
	f.Int64Var(&parametricOpts.seed, "seed", 1, "RNG seed")
	f.StringVar(&parametricOpts.plot, "plot", "", "write an error-vs-k PNG to this path")
}
