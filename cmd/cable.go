package cmd

import (
	"github.com/spf13/cobra"
)

var cableCmd = &cobra.Command{
	Use:   "cable",
	Short: "Suspended cable equilibrium commands",
	Long: `Commands for the static analysis of a single-span suspended cable.

The cable hangs between two supports at equal elevation and carries any
combination of point loads, trapezoidal line loads and self-weight.`,
}

func init() {
	rootCmd.AddCommand(cableCmd)
}
