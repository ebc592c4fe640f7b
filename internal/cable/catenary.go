package cable

import "math"

// catenarySag returns the sag of a self-weight catenary with horizontal
// tension H, measured from the chord between the supports.
func (s *Solver) catenarySag(H float64) float64 {
	a := H / s.SelfWeight
	return a * (math.Cosh(s.Span/(2*a)) - 1)
}

// solveCatenary finds the horizontal tension whose self-weight catenary hits
// the target sag (Span/100 unless TargetSag is set) and samples the shape
// y(x) = a*(cosh((x-L/2)/a) - cosh(L/(2a))) over the mesh, which is zero at
// both supports and negative (downward) in between.
//
// The bracket comes from the parabolic sag estimate H = w*L^2/(8*f), widened
// two orders of magnitude each way.
func (s *Solver) solveCatenary() (*InitialShape, error) {
	target := s.TargetSag
	if target <= 0 {
		target = s.Span / 100
	}

	residual := func(H float64) float64 {
		return target - s.catenarySag(H)
	}
	est := s.SelfWeight * s.Span * s.Span / (8 * target)
	H, _, err := brent(residual, est/100, est*100, s.Tolerance, s.MaxIterations)
	if err != nil {
		return nil, err
	}

	a := H / s.SelfWeight
	edge := math.Cosh(s.Span / (2 * a))
	y := make([]float64, s.nodes())
	for i, x := range s.x {
		y[i] = a * (math.Cosh((x-s.Span/2)/a) - edge)
	}
	return &InitialShape{Y: y, H: H, Sag: s.catenarySag(H)}, nil
}
