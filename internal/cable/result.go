package cable

// Method selects the equilibrium solve strategy.
type Method string

const (
	// MethodRootFinding brackets the horizontal tension and applies Brent's
	// method with a bisection fallback. Preferred.
	MethodRootFinding Method = "rootfinding"

	// MethodFixedPoint iterates H against the constitutive tension with
	// under-relaxation, recording a per-iteration history.
	MethodFixedPoint Method = "fixed_point"
)

// InitialShape is the self-weight catenary established before applied loads
// are considered. Present on a Result only when the solver carries
// self-weight.
type InitialShape struct {
	Y   []float64 `json:"y_initial"` // m, negative downward
	H   float64   `json:"h_initial"` // kN
	Sag float64   `json:"f_initial"` // m
}

// Iteration is one step of the fixed-point history.
type Iteration struct {
	H      float64 `json:"h"`      // trial horizontal tension (kN)
	Sag    float64 `json:"sag"`    // m
	Strain float64 `json:"strain"` // -
	Stress float64 `json:"stress"` // kN/m²
	Error  float64 `json:"error"`  // relative residual |H - H_material| / H
}

// Result is the full outcome of a Solve call. Scalars describe the
// equilibrium state; the slices are per-node diagrams over the mesh. A Result
// is created fresh on every solve and never mutated afterwards.
type Result struct {
	Converged  bool   `json:"converged"`
	Method     Method `json:"method"`
	Iterations int    `json:"iterations"`

	H           float64 `json:"h"`           // horizontal tension (kN)
	Sag         float64 `json:"f"`           // max sag (m)
	SagPosition float64 `json:"f_position"`  // m
	TensionMax  float64 `json:"t_max"`       // kN
	TensionPos  float64 `json:"t_max_position"`
	ReactLeft   float64 `json:"r_left"`  // kN
	ReactRight  float64 `json:"r_right"` // kN

	Strain     float64 `json:"strain"`     // engineering strain
	Stress     float64 `json:"stress"`     // E*strain (kN/m²)
	Length     float64 `json:"length"`     // deformed cable length (m)
	Elongation float64 `json:"elongation"` // m

	ConstrainedByHMax bool    `json:"constrained_by_h_max"`
	HUtilization      float64 `json:"h_utilization,omitempty"` // H / SupportHMax
	DeltaH            float64 `json:"delta_h,omitempty"`       // support displacement H*L/k (m)

	X           []float64 `json:"x"`            // node positions (m)
	Y           []float64 `json:"y"`            // total shape (m, negative downward)
	Tension     []float64 `json:"t"`            // H/cos(alpha) (kN)
	Shear       []float64 `json:"v"`            // H*tan(alpha) (kN)
	Angle       []float64 `json:"alpha"`        // inclination (degrees)
	NodalLoads  []float64 `json:"nodal_loads"`  // kN
	Intensity   []float64 `json:"intensity"`    // line-load intensity (kN/m)
	AxialStress []float64 `json:"axial_stress"` // T/A_eff (kN/m²)

	Initial *InitialShape `json:"initial,omitempty"` // self-weight only
	History []Iteration   `json:"history,omitempty"` // fixed-point only

	// Warning carries non-fatal degradations, e.g. a skipped self-weight
	// pre-solve. Empty on a clean run.
	Warning string `json:"warning,omitempty"`
}
