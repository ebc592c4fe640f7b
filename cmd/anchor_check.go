package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocable/internal/ec2"
	"github.com/spf13/cobra"
)

var (
	checkDiameter  float64
	checkCount     int
	checkSpacing   float64
	checkEdgeDist  float64
	checkEmbedment float64
	checkFuk       float64
	checkFck       float64
	checkCracked   bool
	checkTension   float64
	checkShear     float64
)

var anchorCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an anchor group against its design actions",
	Long: `Verify an anchor row for steel tension, concrete cone breakout,
steel shear and concrete edge failure, then combine tension and shear
in an interaction check.

Examples:
  # Four M16 anchors at 150 mm spacing, 120 mm embedment
  gocable anchor check --diameter 16 --count 4 --spacing 150 \
    --edge 200 --embedment 120 --fuk 800 --fck 30 \
    --tension 60 --shear 25

  # Single anchor in cracked concrete
  gocable anchor check -d 20 -n 1 --edge 150 --embedment 100 \
    --fuk 500 --fck 25 --cracked --tension 30 --shear 10`,
	RunE: runAnchorCheck,
}

func init() {
	anchorCmd.AddCommand(anchorCheckCmd)

	anchorCheckCmd.Flags().Float64VarP(&checkDiameter, "diameter", "d", 0, "Anchor diameter (mm) [required]")
	anchorCheckCmd.Flags().IntVarP(&checkCount, "count", "n", 1, "Number of anchors in the row")
	anchorCheckCmd.Flags().Float64VarP(&checkSpacing, "spacing", "s", 0, "Anchor spacing (mm)")
	anchorCheckCmd.Flags().Float64Var(&checkEdgeDist, "edge", 0, "Distance to nearest free edge (mm) [required]")
	anchorCheckCmd.Flags().Float64Var(&checkEmbedment, "embedment", 0, "Effective embedment depth hef (mm) [required]")
	anchorCheckCmd.Flags().Float64Var(&checkFuk, "fuk", 0, "Steel ultimate strength (MPa) [required]")
	anchorCheckCmd.Flags().Float64Var(&checkFck, "fck", 0, "Concrete cylinder strength (MPa) [required]")
	anchorCheckCmd.Flags().BoolVar(&checkCracked, "cracked", false, "Assume cracked concrete")
	anchorCheckCmd.Flags().Float64Var(&checkTension, "tension", 0, "Applied group tension NEd (kN)")
	anchorCheckCmd.Flags().Float64Var(&checkShear, "shear", 0, "Applied group shear VEd (kN)")

	anchorCheckCmd.MarkFlagRequired("diameter")
	anchorCheckCmd.MarkFlagRequired("edge")
	anchorCheckCmd.MarkFlagRequired("embedment")
	anchorCheckCmd.MarkFlagRequired("fuk")
	anchorCheckCmd.MarkFlagRequired("fck")
}

func runAnchorCheck(cmd *cobra.Command, args []string) error {
	g := &ec2.Group{
		Diameter:  checkDiameter,
		Count:     checkCount,
		Spacing:   checkSpacing,
		EdgeDist:  checkEdgeDist,
		Embedment: checkEmbedment,
		Fuk:       checkFuk,
		Fck:       checkFck,
		Cracked:   checkCracked,
		TensionEd: checkTension,
		ShearEd:   checkShear,
	}
	result, err := g.Check()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ANCHOR GROUP VERIFICATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GROUP:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Anchors:\t%d × M%.0f\n", g.Count, g.Diameter)
	fmt.Fprintf(w, "  Stress area:\t%.1f mm² each\n", g.StressArea())
	fmt.Fprintf(w, "  Embedment (hef):\t%.0f mm\n", g.Embedment)
	fmt.Fprintf(w, "  Edge distance:\t%.0f mm\n", g.EdgeDist)
	state := "uncracked"
	if g.Cracked {
		state = "cracked"
	}
	fmt.Fprintf(w, "  Concrete:\tC%.0f, %s\n", g.Fck, state)
	w.Flush()
	fmt.Println()

	fmt.Println("RESISTANCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Steel tension (NRd,s):\t%.2f kN\n", result.SteelTension)
	fmt.Fprintf(w, "  Concrete cone (NRd,c):\t%.2f kN\n", result.ConcreteCone)
	fmt.Fprintf(w, "  Steel shear (VRd,s):\t%.2f kN\n", result.SteelShear)
	fmt.Fprintf(w, "  Concrete edge (VRd,c):\t%.2f kN\n", result.ConcreteEdge)
	w.Flush()
	fmt.Println()

	fmt.Println("UTILIZATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tension:\t%.1f%% (NEd = %.2f / NRd = %.2f kN)\n",
		result.TensionUtil*100, g.TensionEd, result.TensionRd)
	fmt.Fprintf(w, "  Shear:\t%.1f%% (VEd = %.2f / VRd = %.2f kN)\n",
		result.ShearUtil*100, g.ShearEd, result.ShearRd)
	fmt.Fprintf(w, "  Interaction:\t%.1f%%\n", result.InteractionUtil*100)
	fmt.Fprintf(w, "  Governing mode:\t%s\n", result.GoverningMode)
	w.Flush()
	fmt.Println()

	if result.OK {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  GROUP VERIFIED ✓                       ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  GROUP OVERLOADED ⚠                     ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	}
	fmt.Println()
	return nil
}
