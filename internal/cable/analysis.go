package cable

// Params is the flat, JSON-friendly parameter record accepted by
// RunAnalysis. Units are part of the field contract: metres, kN, kN/m and
// kN/m² throughout.
type Params struct {
	Span     float64 `json:"span"`       // m
	Segments int     `json:"n_segments"` // 0 selects the default mesh
	AreaEff  float64 `json:"a_eff"`      // m²
	Modulus  float64 `json:"e_modulus"`  // kN/m²

	SelfWeight  float64 `json:"self_weight,omitempty"`   // kN/m
	InitialSag  float64 `json:"initial_sag,omitempty"`   // m, catenary target
	SupportHMax float64 `json:"support_h_max,omitempty"` // kN
	SupportKH   float64 `json:"support_k_h,omitempty"`   // kN/m

	PointLoads []PointLoad `json:"point_loads,omitempty"`
	LineLoads  []LineLoad  `json:"line_loads,omitempty"`

	Method Method `json:"method,omitempty"` // default "rootfinding"

	// Optional fixed-point overrides; zero keeps the defaults.
	Relaxation float64 `json:"relaxation,omitempty"`
	SagGuess   float64 `json:"sag_guess,omitempty"`
}

// RunAnalysis is the single-call entry point used by the CLI, the HTTP
// handlers and batch runs: it builds a solver from the parameter record, adds
// the loads (failing fast on malformed geometry) and solves.
func RunAnalysis(p Params) (*Result, error) {
	s, err := NewSolver(p.Span, p.AreaEff, p.Modulus, p.Segments)
	if err != nil {
		return nil, err
	}
	s.SelfWeight = p.SelfWeight
	s.TargetSag = p.InitialSag
	s.SupportHMax = p.SupportHMax
	s.SupportKH = p.SupportKH
	if p.Relaxation > 0 {
		s.Relaxation = p.Relaxation
	}
	if p.SagGuess > 0 {
		s.SagGuess = p.SagGuess
	}

	for _, pl := range p.PointLoads {
		if err := s.AddPointLoad(pl.Position, pl.Magnitude); err != nil {
			return nil, err
		}
	}
	for _, ll := range p.LineLoads {
		if err := s.AddLineLoad(ll.StartPos, ll.EndPos, ll.StartMag, ll.EndMag); err != nil {
			return nil, err
		}
	}
	return s.Solve(p.Method)
}
