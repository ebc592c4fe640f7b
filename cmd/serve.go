package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocable/internal/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators as an HTTP JSON API",
	Long: `Start an HTTP server exposing the cable, anchor, frame and batch
calculators plus PDF report generation under /api/tools/.

The listen address comes from --addr, or from the ADDR variable of an
optional .env file in the working directory.

Example:
  gocable serve --addr :8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err == nil {
		fmt.Println("loaded .env")
	}

	addr := serveAddr
	if addr == "" {
		addr = os.Getenv("ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}
	return server.Run(addr)
}
