package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/galileo-ml/galileo/autodiff"
	"github.com/galileo-ml/galileo/backend/cpu"
	"github.com/galileo-ml/galileo/nn"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "galileo",
	Short: "Physics-informed neural networks on the galileo tensor core",
	Long: `galileo trains small neural networks against physical laws.

The subcommands walk the same path as the examples/ programs: tensor
basics, plain data-driven regression of a falling-ball trajectory, a
physics-informed network for one drag coefficient, and a parameterized
network covering a whole family of growth rates.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(basicsCmd)
	rootCmd.AddCommand(dataDrivenCmd)
	rootCmd.AddCommand(pinnCmd)
	rootCmd.AddCommand(parametricCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the galileo version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("galileo %s\n", version)
	},
}

// adBackend is the backend every training subcommand runs on.
type adBackend = *autodiff.Backend[*cpu.Backend]

// newMLP builds the in -> hidden -> hidden -> 1 tanh network shared by
// the training subcommands.
func newMLP(inFeatures, hidden int, rng *rand.Rand, backend adBackend) *nn.Sequential[adBackend] {
	return nn.NewSequential[adBackend](
		nn.NewLinear(inFeatures, hidden, rng, backend),
		nn.NewTanh[adBackend](),
		nn.NewLinear(hidden, hidden, rng, backend),
		nn.NewTanh[adBackend](),
		nn.NewLinear(hidden, 1, rng, backend),
	)
}
