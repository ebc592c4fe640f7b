package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gocable/internal/cable"
	"github.com/alexiusacademia/gocable/internal/diagram"
	"github.com/alexiusacademia/gocable/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Geometry and material
	solveSpan     float64
	solveArea     float64
	solveModulus  float64
	solveSegments int

	// Loads
	solveSelfWeight float64
	solvePoints     []string
	solveLines      []string

	// Pre-solve and supports
	solveInitialSag float64
	solveHMax       float64
	solveKH         float64

	// Strategy
	solveMethod     string
	solveRelaxation float64
	solveSagGuess   float64

	// Output
	solveJSON    bool
	solveASCII   bool
	solveHistory bool
	solveExport  string
	solveReport  string
)

var cableSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the equilibrium of a loaded cable",
	Long: `Find the horizontal tension H at which the cable's geometric strain
matches its material strain, then report the equilibrium shape, sag,
tensions, reactions and support checks.

Point loads are given as position:magnitude pairs; line loads as
start:end:w_start:w_end. All positions in metres, forces in kN, line
loads in kN/m, downward positive.

Examples:
  # 100 kN at midspan of a 5 m cable
  gocable cable solve --span 5 --area 0.01 --modulus 210e6 --point 2.5:100

  # Self-weight catenary with a 0.4 m target sag plus a lane load
  gocable cable solve --span 30 --area 0.004 --modulus 195e6 \
    --self-weight 0.8 --initial-sag 0.4 --line 5:25:3:3

  # Fixed-point strategy with an iteration trace
  gocable cable solve --span 5 --area 0.01 --modulus 210e6 \
    --point 2.5:100 --method fixed_point --relaxation 0.5 --history`,
	RunE: runCableSolve,
}

func init() {
	cableCmd.AddCommand(cableSolveCmd)

	cableSolveCmd.Flags().Float64VarP(&solveSpan, "span", "l", 0, "Span between supports (m) [required]")
	cableSolveCmd.Flags().Float64VarP(&solveArea, "area", "a", 0, "Effective cross-section area (m²) [required]")
	cableSolveCmd.Flags().Float64VarP(&solveModulus, "modulus", "e", 0, "Elastic modulus (kN/m²) [required]")
	cableSolveCmd.Flags().IntVar(&solveSegments, "segments", 0, "Mesh segments (0 = default)")

	cableSolveCmd.Flags().Float64VarP(&solveSelfWeight, "self-weight", "w", 0, "Self-weight (kN/m)")
	cableSolveCmd.Flags().StringArrayVarP(&solvePoints, "point", "p", nil, "Point load pos:mag (repeatable)")
	cableSolveCmd.Flags().StringArrayVar(&solveLines, "line", nil, "Line load start:end:w1:w2 (repeatable)")

	cableSolveCmd.Flags().Float64Var(&solveInitialSag, "initial-sag", 0, "Target sag of the self-weight catenary (m)")
	cableSolveCmd.Flags().Float64Var(&solveHMax, "h-max", 0, "Support horizontal capacity (kN)")
	cableSolveCmd.Flags().Float64Var(&solveKH, "k-h", 0, "Support horizontal stiffness (kN/m)")

	cableSolveCmd.Flags().StringVarP(&solveMethod, "method", "m", "rootfinding", "Solve strategy: rootfinding or fixed_point")
	cableSolveCmd.Flags().Float64Var(&solveRelaxation, "relaxation", 0, "Fixed-point relaxation factor (0 = default)")
	cableSolveCmd.Flags().Float64Var(&solveSagGuess, "sag-guess", 0, "Fixed-point starting sag (m)")

	cableSolveCmd.Flags().BoolVar(&solveJSON, "json", false, "Print the full result record as JSON")
	cableSolveCmd.Flags().BoolVar(&solveASCII, "ascii", false, "Draw ASCII profile and tension diagrams")
	cableSolveCmd.Flags().BoolVar(&solveHistory, "history", false, "Print the fixed-point iteration history")
	cableSolveCmd.Flags().StringVar(&solveExport, "export", "", "Export the profile diagram to a PNG/SVG/PDF file")
	cableSolveCmd.Flags().StringVar(&solveReport, "report", "", "Write a PDF calculation report to this file")

	cableSolveCmd.MarkFlagRequired("span")
	cableSolveCmd.MarkFlagRequired("area")
	cableSolveCmd.MarkFlagRequired("modulus")
}

func runCableSolve(cmd *cobra.Command, args []string) error {
	params := cable.Params{
		Span:        solveSpan,
		Segments:    solveSegments,
		AreaEff:     solveArea,
		Modulus:     solveModulus,
		SelfWeight:  solveSelfWeight,
		InitialSag:  solveInitialSag,
		SupportHMax: solveHMax,
		SupportKH:   solveKH,
		Method:      cable.Method(solveMethod),
		Relaxation:  solveRelaxation,
		SagGuess:    solveSagGuess,
	}

	for _, spec := range solvePoints {
		pl, err := parsePointLoad(spec)
		if err != nil {
			return err
		}
		params.PointLoads = append(params.PointLoads, pl)
	}
	for _, spec := range solveLines {
		ll, err := parseLineLoad(spec)
		if err != nil {
			return err
		}
		params.LineLoads = append(params.LineLoads, ll)
	}

	result, err := cable.RunAnalysis(params)
	if err != nil {
		return err
	}

	if solveJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printCableResult(result)

	if solveASCII {
		fmt.Println("CABLE PROFILE:")
		fmt.Println(diagram.ProfileASCII(result))
		fmt.Println()
		fmt.Println("TENSION DISTRIBUTION:")
		fmt.Println(diagram.TensionASCII(result))
		fmt.Println()
	}
	if solveHistory && len(result.History) > 0 {
		printHistory(result)
	}
	if solveExport != "" {
		if err := diagram.ExportProfileDiagram(result, solveExport); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("  Profile diagram written to %s\n", solveExport)
		tensionFile := suffixedPath(solveExport, "_tension")
		if err := diagram.ExportTensionDiagram(result, tensionFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("  Tension diagram written to %s\n", tensionFile)
		if len(result.History) > 0 {
			convFile := suffixedPath(solveExport, "_convergence")
			if err := diagram.ExportConvergenceDiagram(result, convFile); err != nil {
				return fmt.Errorf("export diagram: %w", err)
			}
			fmt.Printf("  Convergence diagram written to %s\n", convFile)
		}
		fmt.Println()
	}
	if solveReport != "" {
		f, err := os.Create(solveReport)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		if err := report.Write(f, report.Meta{}, params, result); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("  Report written to %s\n\n", solveReport)
	}
	return nil
}

// suffixedPath inserts a suffix between the file stem and its extension:
// profile.png + "_tension" -> profile_tension.png.
func suffixedPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

func parsePointLoad(spec string) (cable.PointLoad, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return cable.PointLoad{}, fmt.Errorf("point load %q: want pos:mag", spec)
	}
	pos, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return cable.PointLoad{}, fmt.Errorf("point load %q: %w", spec, err)
	}
	mag, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return cable.PointLoad{}, fmt.Errorf("point load %q: %w", spec, err)
	}
	return cable.PointLoad{Position: pos, Magnitude: mag}, nil
}

func parseLineLoad(spec string) (cable.LineLoad, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 4 {
		return cable.LineLoad{}, fmt.Errorf("line load %q: want start:end:w1:w2", spec)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return cable.LineLoad{}, fmt.Errorf("line load %q: %w", spec, err)
		}
		vals[i] = v
	}
	return cable.LineLoad{StartPos: vals[0], EndPos: vals[1], StartMag: vals[2], EndMag: vals[3]}, nil
}

func printCableResult(result *cable.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SUSPENDED CABLE EQUILIBRIUM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SOLVE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Method:\t%s\n", result.Method)
	fmt.Fprintf(w, "  Iterations:\t%d\n", result.Iterations)
	status := "converged ✓"
	if !result.Converged {
		status = "NOT CONVERGED ⚠"
	}
	fmt.Fprintf(w, "  Status:\t%s\n", status)
	w.Flush()
	fmt.Println()

	if result.Initial != nil {
		fmt.Println("SELF-WEIGHT CATENARY:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Initial H:\t%.3f kN\n", result.Initial.H)
		fmt.Fprintf(w, "  Initial sag:\t%.4f m\n", result.Initial.Sag)
		w.Flush()
		fmt.Println()
	}

	fmt.Println("EQUILIBRIUM STATE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Horizontal tension (H):\t%.3f kN\n", result.H)
	fmt.Fprintf(w, "  Max sag (f):\t%.4f m at x = %.3f m\n", result.Sag, result.SagPosition)
	fmt.Fprintf(w, "  Max tension (T):\t%.3f kN at x = %.3f m\n", result.TensionMax, result.TensionPos)
	fmt.Fprintf(w, "  Reactions (V):\t%.3f / %.3f kN\n", result.ReactLeft, result.ReactRight)
	fmt.Fprintf(w, "  Strain:\t%.6e\n", result.Strain)
	fmt.Fprintf(w, "  Axial stress:\t%.1f kN/m²\n", result.Stress)
	fmt.Fprintf(w, "  Deformed length:\t%.4f m (Δ %.5f m)\n", result.Length, result.Elongation)
	w.Flush()
	fmt.Println()

	if result.ConstrainedByHMax || result.HUtilization > 0 || result.DeltaH > 0 {
		fmt.Println("SUPPORT CHECKS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if result.HUtilization > 0 {
			mark := "✓"
			if result.ConstrainedByHMax {
				mark = "⚠ capacity governs"
			}
			fmt.Fprintf(w, "  H utilization:\t%.1f%% %s\n", result.HUtilization*100, mark)
		}
		if result.DeltaH > 0 {
			fmt.Fprintf(w, "  Support displacement:\t%.5f m\n", result.DeltaH)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println(diagram.DrawSummaryBox("EQUILIBRIUM", []string{
		fmt.Sprintf("H     = %.3f kN", result.H),
		fmt.Sprintf("f     = %.4f m", result.Sag),
		fmt.Sprintf("T_max = %.3f kN", result.TensionMax),
	}))

	if result.Warning != "" {
		fmt.Printf("  ⚠ %s\n\n", result.Warning)
	}
}

func printHistory(result *cable.Result) {
	fmt.Println("ITERATION HISTORY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tH (kN)\tsag (m)\tstrain\terror")
	for i, it := range result.History {
		fmt.Fprintf(w, "  %d\t%.3f\t%.4f\t%.3e\t%.3e\n", i+1, it.H, it.Sag, it.Strain, it.Error)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("CONVERGENCE:")
	fmt.Println(diagram.ConvergenceASCII(result))
	fmt.Println()
}
