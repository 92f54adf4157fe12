package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/galileo-ml/galileo/backend/cpu"
	"github.com/galileo-ml/galileo/tensor"
)

var basicsCmd = &cobra.Command{
	Use:   "basics",
	Short: "Tour tensor creation, slicing, broadcasting, and reductions",
	Run: func(cmd *cobra.Command, args []string) {
		backend := cpu.New()
		rng := rand.New(rand.NewSource(0))

		counting := tensor.Arange[float64](0, 12, backend).Reshape(3, 4)
		cmd.Printf("Arange(0,12).Reshape(3,4): %v\n", counting.Data())
		cmd.Printf("  At(1,2)       = %v\n", counting.At(1, 2))
		cmd.Printf("  Slice(0,1,3)  = %v\n", counting.Slice(0, 1, 3).Data())
		cmd.Printf("  Select(1,2)   = %v\n", counting.Select(1, 2).Data())
		cmd.Printf("  Narrow(1,1,2) = %v\n", counting.Narrow(1, 1, 2).Data())
		cmd.Println()

		grid := tensor.Linspace[float64](0, 5, 6, backend)
		cmd.Printf("Linspace(0,5,6): %v\n", grid.Data())
		draws := tensor.RandUniform[float64](tensor.Shape{4}, 0.01, 1.0, rng, backend)
		cmd.Printf("RandUniform(0.01,1): %v\n", draws.Data())
		cmd.Println()

		colVec := tensor.Arange[float64](0, 3, backend).Reshape(3, 1)
		rowVec := tensor.Arange[float64](0, 4, backend).Reshape(1, 4)
		table := colVec.Add(rowVec)
		cmd.Printf("[3,1] + [1,4] -> %v: %v\n", table.Shape(), table.Data())
		cmd.Printf("  Sum = %v  Mean = %v  SumDim(0) = %v\n",
			table.Sum().Item(), table.Mean().Item(), table.SumDim(0, false).Data())
	},
}
