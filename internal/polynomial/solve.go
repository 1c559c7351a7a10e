// Package polynomial extracts the real roots of polynomials of degree one to
// three in closed form.
//
// The polynomial is always written a·x³ + b·x² + c·x + d, whatever the degree:
// a linear polynomial uses c and d, a quadratic uses b, c and d. That way the
// caller can pick a degree from the same four coefficients without shuffling
// them around.
package polynomial

import (
	"math"

	"github.com/osuushi/origami/internal/geom"
)

// Pick the effective degree of a·x³ + b·x² + c·x + d by dropping leading
// coefficients whose magnitude does not exceed threshold. Returns 0 when even
// the linear coefficient vanishes, in which case there is nothing to solve.
func Degree(a, b, c, threshold float64) int {
	switch {
	case math.Abs(a) > threshold:
		return 3
	case math.Abs(b) > threshold:
		return 2
	case math.Abs(c) > threshold:
		return 1
	}
	return 0
}

// Real roots of a·x³ + b·x² + c·x + d, treating it as a polynomial of the given
// degree. Roots are not sorted. Any degree outside 1..3 has no roots.
func Solve(degree int, a, b, c, d float64) []float64 {
	var roots []float64
	switch degree {
	case 1:
		roots = []float64{-d / c}
	case 2:
		roots = quadratic(b, c, d)
	case 3:
		roots = cubic(a, b, c, d)
	}
	return finite(roots)
}

func quadratic(b, c, d float64) []float64 {
	discriminant := c*c - 4*b*d
	if discriminant < -geom.Epsilon {
		return nil
	}
	q1 := -c / (2 * b)
	if discriminant < geom.Epsilon {
		return []float64{q1}
	}
	q2 := math.Sqrt(discriminant) / (2 * b)
	return []float64{q1 + q2, q1 - q2}
}

// Cardano's method on the depressed cubic.
func cubic(a, b, c, d float64) []float64 {
	a2 := b / a
	a1 := c / a
	a0 := d / a
	q := (3*a1 - a2*a2) / 9
	r := (9*a2*a1 - 27*a0 - 2*a2*a2*a2) / 54
	d0 := q*q*q + r*r
	u := -a2 / 3

	if d0 > 0 {
		sqrtD0 := math.Sqrt(d0)
		s := math.Cbrt(r + sqrtD0)
		t := math.Cbrt(r - sqrtD0)
		return []float64{u + s + t}
	}

	if math.Abs(d0) < geom.Epsilon {
		// Repeated root. Only r ≥ 0 is solved here; a negative r yields
		// nothing even though a real double root exists.
		if r < 0 {
			return nil
		}
		s := math.Cbrt(r)
		return []float64{u + 2*s, u - s}
	}

	sqrtD0 := math.Sqrt(-d0)
	phi := math.Atan2(sqrtD0, r) / 3
	rs := math.Pow(r*r-d0, 1.0/6)
	sr := rs * math.Cos(phi)
	si := rs * math.Sin(phi)
	return []float64{
		u + 2*sr,
		u - sr - math.Sqrt(3)*si,
		u - sr + math.Sqrt(3)*si,
	}
}

func finite(roots []float64) []float64 {
	out := roots[:0]
	for _, root := range roots {
		if geom.IsFinite(root) {
			out = append(out, root)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
