package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocable",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gocable v%s\n", version.Version)
		fmt.Println("Cable Equilibrium Analysis Tool")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
