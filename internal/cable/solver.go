// Package cable computes the static equilibrium of a single-span elastic
// cable under self-weight, point loads and trapezoidal line loads.
//
// The solver couples a geometric model (double integration of the load
// intensity for a trial horizontal tension H) with the elastic constitutive
// law H = E*A_eff*strain, and resolves the coupling either by bracketed
// root-finding on the residual or by damped fixed-point iteration. When
// self-weight is present, an initial catenary shape is solved first and the
// load-induced deflection is superposed onto it; this superposition is a
// linear approximation of a geometrically stiffening system and is kept
// deliberately, matching established behaviour of the method.
//
// All quantities use one consistent unit system (m, kN, kN/m, kN/m²);
// converting user-facing units such as mm² or MPa is the caller's job.
package cable

import (
	"errors"
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Default numerical controls.
const (
	DefaultSegments   = 200
	DefaultRelaxation = 0.7
	DefaultTolerance  = 1e-6
	DefaultMaxIter    = 100
)

// Solver holds a span, its mesh, the cable stiffness and the accumulated
// loads. Loads are added through AddPointLoad / AddLineLoad, then Solve is
// called; Solve never mutates the load lists or the mesh, so one loaded
// instance can be solved repeatedly (e.g. once per method, or per load
// combination batch).
type Solver struct {
	Span    float64 // L (m)
	AreaEff float64 // effective axial area (m²)
	Modulus float64 // E (kN/m²)

	Segments int // mesh resolution, nodes = Segments+1

	// SelfWeight (kN per metre of cable) enables the catenary pre-solve.
	SelfWeight float64

	// TargetSag is the sag the self-weight catenary is solved for.
	// Zero means Span/100.
	TargetSag float64

	// SupportHMax caps the horizontal force the anchorage can supply (kN).
	// Zero means unlimited.
	SupportHMax float64

	// SupportKH is the elastic stiffness of the horizontal support (kN/m).
	// When set, the result reports the support displacement H*L/k. The
	// displacement does not feed back into the equilibrium iteration.
	SupportKH float64

	// Fixed-point controls.
	Relaxation    float64 // under-relaxation factor, default 0.7
	SagGuess      float64 // initial sag guess for the starting H, default Span/50
	Tolerance     float64 // convergence tolerance, default 1e-6
	MaxIterations int     // iteration budget, default 100

	dx     float64
	x      []float64
	points []PointLoad
	lines  []LineLoad
}

// NewSolver builds a solver for a span of given length, effective area and
// modulus over a uniform mesh. segments == 0 selects the default resolution.
func NewSolver(span, areaEff, modulus float64, segments int) (*Solver, error) {
	if span <= 0 {
		return nil, fmt.Errorf("span must be positive, got %g", span)
	}
	if areaEff <= 0 {
		return nil, fmt.Errorf("effective area must be positive, got %g", areaEff)
	}
	if modulus <= 0 {
		return nil, fmt.Errorf("modulus must be positive, got %g", modulus)
	}
	if segments == 0 {
		segments = DefaultSegments
	}
	if segments < 2 {
		return nil, fmt.Errorf("need at least 2 segments, got %d", segments)
	}

	s := &Solver{
		Span:          span,
		AreaEff:       areaEff,
		Modulus:       modulus,
		Segments:      segments,
		Relaxation:    DefaultRelaxation,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIter,
	}
	s.dx = span / float64(segments)
	s.x = make([]float64, segments+1)
	for i := range s.x {
		s.x[i] = float64(i) * s.dx
	}
	return s, nil
}

func (s *Solver) nodes() int { return s.Segments + 1 }

// EA returns the effective axial stiffness E*A_eff.
func (s *Solver) EA() float64 { return s.Modulus * s.AreaEff }

// X returns the node positions of the mesh.
func (s *Solver) X() []float64 { return append([]float64(nil), s.x...) }

// deflection integrates the applied intensity p twice (cumulative trapezoid)
// for a trial horizontal tension H. The first boundary condition y(0)=0 holds
// by construction; y(L)=0 is enforced by subtracting the linear correction.
// The double integral of a downward-positive intensity is convex, so it lies
// below its own chord and the result is negative (downward) inside the span.
func (s *Solver) deflection(p []float64, H float64) []float64 {
	if H <= 0 {
		panic("cable: non-positive horizontal tension")
	}
	g1 := cumTrapz(p, s.dx)
	g2 := cumTrapz(g1, s.dx)
	n := len(g2) - 1
	y := make([]float64, len(g2))
	for i := range y {
		yH := g2[i] - g2[n]*s.x[i]/s.Span
		y[i] = yH / H
	}
	return y
}

// totalShape superposes the catenary pre-shape (if any) and the load-induced
// deflection for H.
func (s *Solver) totalShape(initial *InitialShape, p []float64, H float64) []float64 {
	y := s.deflection(p, H)
	if initial != nil {
		for i := range y {
			y[i] += initial.Y[i]
		}
	}
	return y
}

// strainOf converts a shape into engineering strain via the deformed arc
// length.
func (s *Solver) strainOf(y []float64) float64 {
	return (s.arcLength(y) - s.Span) / s.Span
}

// Solve computes the equilibrium state for the accumulated loads using the
// requested method. An empty method selects root-finding. Numerical
// non-convergence is reported through Result.Converged, not as an error;
// only an empty load set (ErrNoLoad) or an unknown method fail.
func (s *Solver) Solve(method Method) (*Result, error) {
	switch method {
	case "":
		method = MethodRootFinding
	case MethodRootFinding, MethodFixedPoint:
	default:
		return nil, fmt.Errorf("unknown solve method %q", method)
	}

	var warning string
	var initial *InitialShape
	if s.SelfWeight > 0 {
		shape, err := s.solveCatenary()
		if err != nil {
			warning = "self-weight pre-solve skipped, continuing with a flat initial shape: " + err.Error()
			log.Printf("cable: %s", warning)
		} else {
			initial = shape
		}
	}

	P := s.nodalLoads()
	q := s.lineIntensity()

	if len(s.points) == 0 && len(s.lines) == 0 {
		if initial == nil {
			return nil, ErrNoLoad
		}
		// Self-weight alone: the catenary is the equilibrium state.
		res := s.buildResult(method, initial.H, initial.Y, initial, P, q)
		res.Converged = true
		res.Warning = warning
		return res, nil
	}

	w := floats.Sum(P)
	if w <= 0 {
		return nil, ErrNoLoad
	}

	// Applied intensity: line loads enter directly, point loads are smeared
	// over one mesh cell.
	p := make([]float64, s.nodes())
	pointNodal := s.nodalPointLoads()
	for i := range p {
		p[i] = q[i] + pointNodal[i]/s.dx
	}

	var res *Result
	switch method {
	case MethodFixedPoint:
		res = s.solveFixedPoint(initial, p, P, q, w)
	default:
		res = s.solveRootFinding(initial, p, P, q, w)
	}
	res.Warning = warning
	return res, nil
}

// solveRootFinding brackets H between a very saggy and a very taut parabolic
// estimate and drives the residual H - EA*strain(H) to zero with Brent's
// method. A failed bracket falls back to manual bisection on the same
// interval, except when the bracket was clipped by SupportHMax and the
// residual at the cap is still negative: then the anchorage saturates and the
// cable simply sags further at H = SupportHMax.
func (s *Solver) solveRootFinding(initial *InitialShape, p, P, q []float64, w float64) *Result {
	evals := 0
	residual := func(H float64) float64 {
		evals++
		return H - s.EA()*s.strainOf(s.totalShape(initial, p, H))
	}

	lo := w * s.Span / (8 * (s.Span / 10))
	hi := w * s.Span / (8 * (s.Span / 1000))
	capped := false
	if s.SupportHMax > 0 && s.SupportHMax < hi {
		hi = s.SupportHMax
		capped = true
	}
	if lo >= hi {
		lo = hi / 1e6
	}

	var (
		constrained bool
		converged   bool
		iters       int
	)
	H, iters, err := brent(residual, lo, hi, s.Tolerance, s.MaxIterations)
	switch {
	case err == nil:
		converged = true
	case errors.Is(err, ErrBracket) && capped && residual(hi) < 0:
		H = s.SupportHMax
		constrained = true
		converged = true
		iters = evals
	case errors.Is(err, ErrBracket):
		H, iters, converged = bisect(residual, lo, hi, s.Tolerance, s.MaxIterations)
	default:
		converged = false
	}

	y := s.totalShape(initial, p, H)
	res := s.buildResult(MethodRootFinding, H, y, initial, P, q)
	res.Converged = converged
	res.Iterations = iters
	res.ConstrainedByHMax = constrained
	return res
}

// solveFixedPoint iterates H <- (1-w)*H + w*EA*strain(H) with
// under-relaxation until the relative residual drops below the tolerance,
// keeping the full iteration history for diagnostics.
func (s *Solver) solveFixedPoint(initial *InitialShape, p, P, q []float64, w float64) *Result {
	relax := s.Relaxation
	if relax <= 0 {
		relax = DefaultRelaxation
	}
	sagGuess := s.SagGuess
	if sagGuess <= 0 {
		sagGuess = s.Span / 50
	}

	H := w * s.Span / (8 * sagGuess)
	var (
		history     []Iteration
		constrained bool
		converged   bool
		iters       int
	)
	for it := 1; it <= s.MaxIterations; it++ {
		iters = it
		y := s.totalShape(initial, p, H)
		strain := s.strainOf(y)
		hMaterial := s.EA() * strain

		relErr := math.Abs(H-hMaterial) / H
		history = append(history, Iteration{
			H:      H,
			Sag:    maxSag(y),
			Strain: strain,
			Stress: s.Modulus * strain,
			Error:  relErr,
		})
		if relErr < s.Tolerance {
			converged = true
			break
		}

		H = (1-relax)*H + relax*hMaterial
		if s.SupportHMax > 0 && H > s.SupportHMax {
			H = s.SupportHMax
			constrained = true
		} else {
			constrained = false
		}
	}

	y := s.totalShape(initial, p, H)
	res := s.buildResult(MethodFixedPoint, H, y, initial, P, q)
	res.Converged = converged || constrained
	res.Iterations = iters
	res.ConstrainedByHMax = constrained
	res.History = history
	return res
}

func maxSag(y []float64) float64 {
	var sag float64
	for _, yi := range y {
		if -yi > sag {
			sag = -yi
		}
	}
	return sag
}

// buildResult derives every reported scalar and per-node diagram from the
// final shape and horizontal tension.
func (s *Solver) buildResult(method Method, H float64, y []float64, initial *InitialShape, P, q []float64) *Result {
	n := s.nodes()
	slope := gradient(y, s.dx)

	tension := make([]float64, n)
	shear := make([]float64, n)
	angle := make([]float64, n)
	axial := make([]float64, n)
	for i, m := range slope {
		tension[i] = H * math.Sqrt(1+m*m) // H / cos(alpha)
		shear[i] = H * m                  // H * tan(alpha)
		angle[i] = math.Atan(m) * 180 / math.Pi
		axial[i] = tension[i] / s.AreaEff
	}

	var sag, sagPos float64
	for i, yi := range y {
		if -yi > sag {
			sag = -yi
			sagPos = s.x[i]
		}
	}
	var tMax, tPos float64
	for i, t := range tension {
		if t > tMax {
			tMax = t
			tPos = s.x[i]
		}
	}

	length := s.arcLength(y)
	strain := (length - s.Span) / s.Span
	rl, rr := s.reactions(P)

	res := &Result{
		Method:      method,
		H:           H,
		Sag:         sag,
		SagPosition: sagPos,
		TensionMax:  tMax,
		TensionPos:  tPos,
		ReactLeft:   rl,
		ReactRight:  rr,
		Strain:      strain,
		Stress:      s.Modulus * strain,
		Length:      length,
		Elongation:  length - s.Span,
		X:           s.X(),
		Y:           y,
		Tension:     tension,
		Shear:       shear,
		Angle:       angle,
		NodalLoads:  P,
		Intensity:   q,
		AxialStress: axial,
		Initial:     initial,
	}
	if s.SupportHMax > 0 {
		res.HUtilization = H / s.SupportHMax
	}
	if s.SupportKH > 0 {
		res.DeltaH = H * s.Span / s.SupportKH
	}
	return res
}
