package cmd

import (
	"github.com/spf13/cobra"
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "2D frame analysis commands",
	Long: `Commands for analyzing small plane frames, such as the towers or
portals a cable is anchored to, by the direct stiffness method.`,
}

func init() {
	rootCmd.AddCommand(frameCmd)
}
