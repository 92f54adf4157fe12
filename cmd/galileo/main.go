// Command galileo runs the library's physics-informed workflows from
// the command line: a tensor primer, data-driven regression, and the
// single- and parameterized-PINN trainers.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
