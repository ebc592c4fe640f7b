package cable

import (
	"math"

	"gonum.org/v1/gonum/integrate"
)

// cumTrapz computes the cumulative trapezoidal integral of f over the uniform
// mesh spacing dx, anchored at zero: out[0] = 0.
func cumTrapz(f []float64, dx float64) []float64 {
	out := make([]float64, len(f))
	for i := 1; i < len(f); i++ {
		out[i] = out[i-1] + (f[i-1]+f[i])/2*dx
	}
	return out
}

// gradient numerically differentiates y over a uniform mesh: central
// differences inside, one-sided at the ends.
func gradient(y []float64, dx float64) []float64 {
	n := len(y)
	g := make([]float64, n)
	if n < 2 {
		return g
	}
	g[0] = (y[1] - y[0]) / dx
	g[n-1] = (y[n-1] - y[n-2]) / dx
	for i := 1; i < n-1; i++ {
		g[i] = (y[i+1] - y[i-1]) / (2 * dx)
	}
	return g
}

// arcLength integrates sqrt(1 + y'^2) along the mesh, giving the deformed
// cable length for the shape y.
func (s *Solver) arcLength(y []float64) float64 {
	slope := gradient(y, s.dx)
	integrand := make([]float64, len(y))
	for i, m := range slope {
		integrand[i] = math.Sqrt(1 + m*m)
	}
	return integrate.Trapezoidal(s.x, integrand)
}
