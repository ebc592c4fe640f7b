package diagram

import (
	"strings"
	"testing"

	"github.com/alexiusacademia/gocable/internal/cable"
)

func solvedResult(t *testing.T, method cable.Method) *cable.Result {
	t.Helper()
	res, err := cable.RunAnalysis(cable.Params{
		Span:       5,
		Segments:   50,
		AreaEff:    0.01,
		Modulus:    210e6,
		PointLoads: []cable.PointLoad{{Position: 2.5, Magnitude: 100}},
		Method:     method,
		Relaxation: 0.5,
	})
	if err != nil {
		t.Fatalf("RunAnalysis: %v", err)
	}
	return res
}

func TestProfileASCII(t *testing.T) {
	out := ProfileASCII(solvedResult(t, cable.MethodRootFinding))
	if out == "" {
		t.Fatal("empty plot")
	}
	if !strings.Contains(out, "Cable profile") {
		t.Errorf("missing caption in:\n%s", out)
	}
}

func TestConvergenceASCII(t *testing.T) {
	if out := ConvergenceASCII(solvedResult(t, cable.MethodRootFinding)); out != "" {
		t.Error("rootfinding result has no history, plot must be empty")
	}
	out := ConvergenceASCII(solvedResult(t, cable.MethodFixedPoint))
	if !strings.Contains(out, "iterations") {
		t.Errorf("missing caption in:\n%s", out)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("EQUILIBRIUM", []string{"H = 1381.2 kN", "f = 0.0906 m"})
	for _, want := range []string{"EQUILIBRIUM", "H = 1381.2 kN", "f = 0.0906 m", "╔", "╚"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary box missing %q:\n%s", want, out)
		}
	}
}
