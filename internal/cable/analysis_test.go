package cable

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRunAnalysisDefaults(t *testing.T) {
	res, err := RunAnalysis(Params{
		Span:       5,
		AreaEff:    0.01,
		Modulus:    210e6,
		PointLoads: []PointLoad{{Position: 2.5, Magnitude: 100}},
	})
	if err != nil {
		t.Fatalf("RunAnalysis: %v", err)
	}
	if res.Method != MethodRootFinding {
		t.Errorf("default method = %q, want rootfinding", res.Method)
	}
	if len(res.X) != DefaultSegments+1 {
		t.Errorf("default mesh has %d nodes, want %d", len(res.X), DefaultSegments+1)
	}
	if !res.Converged {
		t.Error("expected convergence")
	}
}

func TestRunAnalysisPropagatesLoadErrors(t *testing.T) {
	_, err := RunAnalysis(Params{
		Span:       5,
		AreaEff:    0.01,
		Modulus:    210e6,
		PointLoads: []PointLoad{{Position: 9, Magnitude: 100}},
	})
	if !errors.Is(err, ErrLoadPosition) {
		t.Errorf("got %v, want ErrLoadPosition", err)
	}

	_, err = RunAnalysis(Params{
		Span:      5,
		AreaEff:   0.01,
		Modulus:   210e6,
		LineLoads: []LineLoad{{StartPos: 3, EndPos: 2, StartMag: 1, EndMag: 1}},
	})
	if !errors.Is(err, ErrLoadRange) {
		t.Errorf("got %v, want ErrLoadRange", err)
	}
}

func TestRunAnalysisJSONRoundTrip(t *testing.T) {
	raw := `{
		"span": 5,
		"n_segments": 100,
		"a_eff": 0.01,
		"e_modulus": 210000000,
		"self_weight": 1.5,
		"initial_sag": 0.06,
		"support_k_h": 20000,
		"point_loads": [{"position": 2.5, "magnitude": 80}],
		"line_loads": [{"start_pos": 0, "end_pos": 5, "start_mag": 2, "end_mag": 2}],
		"method": "rootfinding"
	}`
	var params Params
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		t.Fatalf("unmarshal params: %v", err)
	}
	res, err := RunAnalysis(params)
	if err != nil {
		t.Fatalf("RunAnalysis: %v", err)
	}
	if res.Initial == nil {
		t.Fatal("self-weight input must produce an initial shape")
	}
	if res.DeltaH == 0 {
		t.Error("support stiffness given, delta_h must be reported")
	}

	out, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	var flat map[string]any
	if err := json.Unmarshal(out, &flat); err != nil {
		t.Fatalf("re-unmarshal result: %v", err)
	}
	for _, key := range []string{"converged", "h", "f", "t_max", "r_left", "r_right", "x", "y", "t", "alpha"} {
		if _, ok := flat[key]; !ok {
			t.Errorf("serialized result missing %q", key)
		}
	}
}

func TestFixedPointNonConvergenceReported(t *testing.T) {
	s, err := NewSolver(5, 0.01, 210e6, 100)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddPointLoad(2.5, 100); err != nil {
		t.Fatal(err)
	}
	s.MaxIterations = 3 // starve the iteration on purpose
	res, err := s.Solve(MethodFixedPoint)
	if err != nil {
		t.Fatalf("non-convergence must not be an error: %v", err)
	}
	if res.Converged {
		t.Error("three iterations cannot converge this case")
	}
	if res.Iterations != 3 {
		t.Errorf("iterations = %d, want 3", res.Iterations)
	}
	if res.H <= 0 {
		t.Errorf("best-effort H must still be reported, got %v", res.H)
	}
}

func TestUnknownMethodRejected(t *testing.T) {
	s, err := NewSolver(5, 0.01, 210e6, 100)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddPointLoad(2.5, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Solve(Method("newton")); err == nil {
		t.Error("unknown method must be rejected")
	}
}
