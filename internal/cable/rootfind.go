package cable

import (
	"errors"
	"math"
)

// ErrBracket reports that the supplied interval does not bracket a sign
// change, so the bracketed solver cannot start. Callers treat this as a
// value to branch on, not as a fatal condition.
var ErrBracket = errors.New("interval does not bracket a root")

// brent locates a zero of f on [a, b] using Brent's method (inverse quadratic
// interpolation guarded by bisection). Returns the root, the number of
// iterations spent, and ErrBracket if f(a) and f(b) have the same sign.
//
// gonum carries no bracketed scalar root-finder, so this is implemented here;
// the algorithm is the classic Brent-Dekker scheme.
func brent(f func(float64) float64, a, b, tol float64, maxIter int) (float64, int, error) {
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, 0, nil
	}
	if fb == 0 {
		return b, 0, nil
	}
	if fa*fb > 0 {
		return 0, 0, ErrBracket
	}

	c, fc := a, fa
	d := b - a
	e := d
	for it := 1; it <= maxIter; it++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		eps := 2 * math.SmallestNonzeroFloat64
		tol1 := 2*eps*math.Abs(b) + tol/2
		xm := (c - b) / 2
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, it, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt inverse quadratic interpolation (secant if a == c).
			ss := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * ss
				q = 1 - ss
			} else {
				r := fb / fc
				t := fa / fc
				p = ss * (2*xm*t*(t-r) - (b-a)*(r-1))
				q = (t - 1) * (r - 1) * (ss - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}
	return b, maxIter, errors.New("brent: iteration budget exhausted")
}

// bisect is the fallback for intervals Brent rejects. It runs plain bisection
// on [a, b] and reports whether the residual dropped below tol within the
// budget; the best midpoint found so far is returned either way.
func bisect(f func(float64) float64, a, b, tol float64, maxIter int) (root float64, iters int, converged bool) {
	fa := f(a)
	mid := (a + b) / 2
	for it := 1; it <= maxIter; it++ {
		mid = (a + b) / 2
		fm := f(mid)
		if math.Abs(fm) <= tol || (b-a)/2 <= tol {
			return mid, it, true
		}
		if fa*fm < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return mid, maxIter, false
}
