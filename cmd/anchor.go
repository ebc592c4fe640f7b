package cmd

import (
	"github.com/spf13/cobra"
)

var anchorCmd = &cobra.Command{
	Use:   "anchor",
	Short: "Anchor group verification commands",
	Long: `Commands for verifying cast-in anchor groups at the cable supports,
covering steel and concrete failure modes in tension and shear.`,
}

func init() {
	rootCmd.AddCommand(anchorCmd)
}
