package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocable/internal/batch"
	"github.com/spf13/cobra"
)

var (
	batchInput  string
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch analysis commands",
}

var batchRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run cable analyses from a spreadsheet",
	Long: `Read one analysis per row from an .xlsx workbook and solve them all,
reporting per-row outcomes. A failed row never aborts the batch.

The first sheet carries a header row followed by data rows:
  A span, B a_eff, C e_modulus, D self_weight,
  E point position, F point magnitude,
  G line start, H line end, I line start mag, J line end mag

Example:
  gocable batch run --input cables.xlsx --output results.json`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.AddCommand(batchRunCmd)

	batchRunCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Path to the .xlsx workbook [required]")
	batchRunCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write full outcomes as JSON to this file")

	batchRunCmd.MarkFlagRequired("input")
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := os.Open(batchInput)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	items, err := batch.FromWorkbook(f)
	if err != nil {
		return err
	}
	outcomes, err := batch.Run(items)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  %d analyses from %s\n", len(outcomes), batchInput)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  row\tspan (m)\tH (kN)\tsag (m)\tT_max (kN)\tstatus")
	for i, oc := range outcomes {
		if oc.Error != "" {
			fmt.Fprintf(w, "  %d\t%.2f\t-\t-\t-\tfailed: %s\n", i+1, oc.Params.Span, oc.Error)
			continue
		}
		status := "ok"
		if !oc.Result.Converged {
			status = "not converged"
		}
		fmt.Fprintf(w, "  %d\t%.2f\t%.3f\t%.4f\t%.3f\t%s\n",
			i+1, oc.Params.Span, oc.Result.H, oc.Result.Sag, oc.Result.TensionMax, status)
	}
	w.Flush()
	fmt.Println()

	if batchOutput != "" {
		data, err := json.MarshalIndent(outcomes, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(batchOutput, data, 0o644); err != nil {
			return fmt.Errorf("write outcomes: %w", err)
		}
		fmt.Printf("  Outcomes written to %s\n\n", batchOutput)
	}
	return nil
}
