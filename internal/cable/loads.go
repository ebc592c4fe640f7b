package cable

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed load input. Load geometry is validated when a
// load is added, so a Solver that accepted its loads never fails on geometry
// at solve time.
var (
	// ErrLoadPosition reports a point load placed outside the span.
	ErrLoadPosition = errors.New("point load position outside span")

	// ErrLoadRange reports a line load whose extent is empty or leaves the span.
	ErrLoadRange = errors.New("invalid line load range")

	// ErrNoLoad reports that there is nothing to equilibrate: no applied
	// loads and no self-weight, or a non-positive total downward load.
	ErrNoLoad = errors.New("no downward load to equilibrate")
)

// PointLoad is a concentrated vertical load, downward positive (kN).
type PointLoad struct {
	Position  float64 `json:"position"`  // m from the left support
	Magnitude float64 `json:"magnitude"` // kN
}

// LineLoad is a linearly varying distributed load (kN/m), downward positive,
// acting on [StartPos, EndPos].
type LineLoad struct {
	StartPos float64 `json:"start_pos"` // m
	EndPos   float64 `json:"end_pos"`   // m
	StartMag float64 `json:"start_mag"` // kN/m at StartPos
	EndMag   float64 `json:"end_mag"`   // kN/m at EndPos
}

// at returns the load intensity at x, zero outside the loaded range.
func (l LineLoad) at(x float64) float64 {
	if x < l.StartPos || x > l.EndPos {
		return 0
	}
	t := (x - l.StartPos) / (l.EndPos - l.StartPos)
	return l.StartMag + t*(l.EndMag-l.StartMag)
}

// AddPointLoad registers a concentrated load. Position must lie within [0, L].
func (s *Solver) AddPointLoad(position, magnitude float64) error {
	if position < 0 || position > s.Span {
		return fmt.Errorf("%w: position %.3f m, span %.3f m", ErrLoadPosition, position, s.Span)
	}
	s.points = append(s.points, PointLoad{Position: position, Magnitude: magnitude})
	return nil
}

// AddLineLoad registers a linearly varying distributed load on
// [startPos, endPos]. The range must be non-empty and inside the span.
func (s *Solver) AddLineLoad(startPos, endPos, startMag, endMag float64) error {
	if startPos < 0 || endPos > s.Span || startPos >= endPos {
		return fmt.Errorf("%w: [%.3f, %.3f] m on span %.3f m", ErrLoadRange, startPos, endPos, s.Span)
	}
	s.lines = append(s.lines, LineLoad{StartPos: startPos, EndPos: endPos, StartMag: startMag, EndMag: endMag})
	return nil
}

// PointLoads returns the accumulated point loads in insertion order.
func (s *Solver) PointLoads() []PointLoad { return append([]PointLoad(nil), s.points...) }

// LineLoads returns the accumulated line loads in insertion order.
func (s *Solver) LineLoads() []LineLoad { return append([]LineLoad(nil), s.lines...) }

// nodalPointLoads lumps each point load onto its nearest mesh node.
func (s *Solver) nodalPointLoads() []float64 {
	p := make([]float64, s.nodes())
	for _, pl := range s.points {
		i := int(pl.Position/s.dx + 0.5)
		if i >= s.nodes() {
			i = s.nodes() - 1
		}
		p[i] += pl.Magnitude
	}
	return p
}

// lineIntensity evaluates the combined distributed-load intensity (kN/m) at
// every mesh node. Self-weight is handled separately by the catenary pre-solve.
func (s *Solver) lineIntensity() []float64 {
	q := make([]float64, s.nodes())
	for _, ll := range s.lines {
		for i := range q {
			q[i] += ll.at(s.x[i])
		}
	}
	return q
}

// nodalLoads builds the equivalent nodal load vector (kN): point loads lumped
// onto the nearest node, line loads lumped per covered sub-interval by the
// trapezoidal rule.
func (s *Solver) nodalLoads() []float64 {
	p := s.nodalPointLoads()
	for _, ll := range s.lines {
		for i := 0; i < s.Segments; i++ {
			xa := s.x[i]
			if ll.StartPos > xa {
				xa = ll.StartPos
			}
			xb := s.x[i+1]
			if ll.EndPos < xb {
				xb = ll.EndPos
			}
			if xb <= xa {
				continue
			}
			h := xb - xa
			p[i] += ll.at(xa) * h / 2
			p[i+1] += ll.at(xb) * h / 2
		}
	}
	return p
}

// reactions computes the vertical support reactions by moment balance about
// the left support. They depend only on the load vector, not on H. When
// self-weight is present its resultant is shared evenly between the supports.
func (s *Solver) reactions(p []float64) (left, right float64) {
	var total, moment float64
	for i, pi := range p {
		total += pi
		moment += pi * s.x[i]
	}
	right = moment / s.Span
	left = total - right
	if s.SelfWeight > 0 {
		half := s.SelfWeight * s.Span / 2
		left += half
		right += half
	}
	return left, right
}
