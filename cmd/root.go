package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocable/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocable",
	Short: "Cable Equilibrium Analysis Tool",
	Long: `gocable - Go Cable Equilibrium Solver

A CLI tool for the static analysis of single-span suspended cables
under point loads, distributed loads and self-weight.

This tool helps structural engineers perform:
  - Cable equilibrium solves (root-finding and fixed-point strategies)
  - Self-weight catenary pre-solves with a target sag
  - Support capacity and elastic displacement checks
  - Anchor group verification (EC2-4 style failure modes)
  - 2D frame analysis for supporting structures`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocable v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Cable Equilibrium Solver                             ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the static analysis of single-span suspended")
		fmt.Println("  cables under point loads, distributed loads and self-weight.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Equilibrium solve with bracketed root-finding or fixed-point iteration")
		fmt.Println("    • Self-weight catenary pre-solve with a target sag")
		fmt.Println("    • Anchor group checks and 2D frame analysis")
		fmt.Println("    • Spreadsheet batch runs, PDF reports and an HTTP API")
		fmt.Println()
		fmt.Println("  Use 'gocable --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
