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
	"github.com/galileo-ml/galileo/tensor"
)

var dataDrivenOpts struct {
	steps  int
	hidden int
	lr     float64
	seed   int64
	plot   string
}

var dataDrivenCmd = &cobra.Command{
	Use:   "data-driven",
	Short: "Fit the falling-ball trajectory from sampled data",
	Long: `Builds a synthetic (drag, time) -> height dataset from the closed-form
solution u(t; D) = H - ln(cosh(sqrt(gD) t))/D, fits an MLP by MSE
regression, and reports the relative error on a held-out grid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend := autodiff.New(cpu.New())
		rng := rand.New(rand.NewSource(dataDrivenOpts.seed))
		ball := physics.DefaultFallingBall()

		height := func(d, t float64) float64 { return ball.Height(t, d) }
		cfg := physics.GridConfig{
			ParamMin: 0.01, ParamMax: 1.0,
			TimeMin: 0, TimeMax: 5,
			NumParams: 500, NumTimes: 50,
		}
		x, y := physics.Flatten2D(physics.BuildGrid(cfg, height, rng, backend))

		cfg.NumParams, cfg.NumTimes = 100, 20
		xTest, yTest := physics.Flatten2D(physics.BuildGrid(cfg, height, rng, backend))

		model := newMLP(2, dataDrivenOpts.hidden, rng, backend)
		mse := nn.NewMSELoss[adBackend]()
		adam := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: dataDrivenOpts.lr})

		for step := 1; step <= dataDrivenOpts.steps; step++ {
			backend.Tape().Clear()
			backend.Tape().StartRecording()

			loss := mse.Forward(model.Forward(x), y)
			grads := autodiff.Backward(loss, backend)
			backend.Tape().StopRecording()

			adam.Step(grads)
			adam.ZeroGrad()

			if step == 1 || step%200 == 0 || step == dataDrivenOpts.steps {
				cmd.Printf("step %6d  mse %.6e\n", step, loss.Item())
			}
		}
		backend.Tape().Clear()

		pred := model.Forward(xTest)
		cmd.Printf("held-out mse %.6e  relative error %.4f\n",
			mse.Forward(pred, yTest).Item(), physics.RelativeError(pred, yTest))

		if dataDrivenOpts.plot == "" {
			return nil
		}
		return plotTrajectories(cmd, dataDrivenOpts.plot, model, ball, backend)
	},
}

func plotTrajectories(cmd *cobra.Command, path string, model *nn.Sequential[adBackend], ball physics.FallingBall, backend adBackend) error {
	const n = 100
	var series []viz.Series
	for _, d := range []float64{0.05, 0.2, 0.8} {
		ts, exact := make([]float64, n), make([]float64, n)
		for i := 0; i < n; i++ {
			ts[i] = 5 * float64(i) / float64(n-1)
			exact[i] = ball.Height(ts[i], d)
		}
		pred, err := evalTrajectory(model, d, ts, backend)
		if err != nil {
			return err
		}
		series = append(series,
			viz.Series{Name: fmt.Sprintf("exact D=%.2f", d), X: ts, Y: exact},
			viz.Series{Name: fmt.Sprintf("model D=%.2f", d), X: ts, Y: pred},
		)
	}
	if err := viz.Line(path, "Falling ball: model vs exact", "t [s]", "u(t) [m]", series...); err != nil {
		return err
	}
	cmd.Printf("wrote %s\n", path)
	return nil
}

// evalTrajectory forwards (d, t_i) pairs through the model and returns
// the predicted heights.
func evalTrajectory(model *nn.Sequential[adBackend], d float64, ts []float64, backend adBackend) ([]float64, error) {
	data := make([]float64, len(ts)*2)
	for i, t := range ts {
		data[i*2] = d
		data[i*2+1] = t
	}
	in, err := tensor.FromSlice(data, tensor.Shape{len(ts), 2}, backend)
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
	f := dataDrivenCmd.Flags()
	f.IntVar(&dataDrivenOpts.steps, "steps", 2000, "training steps")
	f.IntVar(&dataDrivenOpts.hidden, "width", 32, "hidden layer width")
	f.Float64Var(&dataDrivenOpts.lr, "lr", 0.01, "Adam learning rate")
	f.Int64Var(&dataDrivenOpts.seed, "seed", 1, "RNG seed")
	f.StringVar(&dataDrivenOpts.plot, "plot", "", "write a prediction-vs-exact PNG to this path")
}
