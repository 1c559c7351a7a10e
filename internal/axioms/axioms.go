// Package axioms implements the seven single-fold construction rules of flat
// origami (the Huzita–Justin axioms). Every solver is a pure function: it
// takes points, lines and the paper boundary, and returns the fold lines that
// satisfy the rule. No solution is an empty slice, never an error.
package axioms

import (
	"fmt"
	"math"

	"github.com/osuushi/origami/internal/geom"
	"github.com/osuushi/origami/internal/polynomial"
)

type Axiom int

const (
	One Axiom = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
)

// Axiom 6 refuses configurations where p1 sits on l1. The check is much
// looser than geom.Epsilon; near-degenerate inputs produce a flood of
// spurious folds otherwise.
const OnLineTolerance = 0.02

func All() []Axiom {
	return []Axiom{One, Two, Three, Four, Five, Six, Seven}
}

func (a Axiom) Valid() bool {
	return a >= One && a <= Seven
}

func (a Axiom) String() string {
	return fmt.Sprintf("axiom%d", int(a))
}

// Fold line through p1 and p2.
func Axiom1(p1, p2 geom.Vector) []geom.Line {
	l, ok := geom.LineThrough(p1, p2)
	if !ok {
		return nil
	}
	return []geom.Line{l}
}

// Fold p1 onto p2: their perpendicular bisector.
func Axiom2(p1, p2 geom.Vector) []geom.Line {
	l, ok := geom.Bisector(p1, p2)
	if !ok {
		return nil
	}
	return []geom.Line{l}
}

// Fold l1 onto l2. Crossing lines have two solutions, the angle bisectors at
// the crossing. Parallel lines have one, midway between them.
func Axiom3(l1, l2 geom.Line) []geom.Line {
	crossing, ok := l1.Intersect(l2)
	if !ok {
		// l2.U is ±l1.U; the dot product flips l2.D into l1's orientation.
		d := (l1.D + l2.D*l1.U.Dot(l2.U)) / 2
		return []geom.Line{{U: l1.U, D: d}}
	}
	var solutions []geom.Line
	for _, sum := range []geom.Vector{l1.U.Add(l2.U), l1.U.Subtract(l2.U)} {
		u, ok := sum.Normalize()
		if !ok {
			continue
		}
		solutions = append(solutions, geom.Line{U: u, D: crossing.Dot(u)})
	}
	return solutions
}

// Fold through p, perpendicular to l. The fold only counts if p's mirror
// image across l is still on the paper.
func Axiom4(p geom.Vector, l geom.Line, boundary *geom.Boundary) []geom.Line {
	if !boundary.Contains(l.Reflect(p)) {
		return nil
	}
	u := l.Direction()
	return []geom.Line{{U: u, D: p.Dot(u)}}
}

// Fold through p1 that places p2 onto l. The image of p2 has to lie on the
// circle around p1 through p2, so there are up to two solutions where that
// circle meets l; each must land inside the boundary.
func Axiom5(p1, p2 geom.Vector, l geom.Line, boundary *geom.Boundary) []geom.Line {
	a := l.D - p1.Dot(l.U)
	c := p1.DistanceTo(p2)
	if c < geom.Epsilon || math.Abs(a) > c {
		return nil
	}
	b := math.Sqrt(math.Max(0, c*c-a*a))
	base := p1.Add(l.U.Scale(a))
	chord := l.Direction().Scale(b)

	mirrors := []geom.Vector{base.Add(chord), base.Subtract(chord)}
	if b < geom.Epsilon {
		// The circle is tangent to l
		mirrors = mirrors[:1]
	}

	var solutions []geom.Line
	for _, mirror := range mirrors {
		if !boundary.Contains(mirror) {
			continue
		}
		u, ok := p2.Subtract(mirror).Normalize()
		if !ok {
			// p2 already lies on l at this spot
			continue
		}
		solutions = append(solutions, geom.Line{U: u, D: p1.Dot(u)})
	}
	return solutions
}

// Fold that places p1 onto l1 and p2 onto l2 at the same time. The image of p1
// is parametrised by its position t along l1, which turns the condition on p2
// into a cubic in t. threshold decides which leading coefficients count as
// present, see polynomial.Degree.
func Axiom6(p1, p2 geom.Vector, l1, l2 geom.Line, boundary *geom.Boundary, threshold float64) []geom.Line {
	if onLine(p1, l1) {
		return nil
	}
	dir := l1.Direction()
	foot := l1.U.Scale(l1.D)
	v1 := p1.Add(foot).Subtract(p2.Scale(2))
	v2 := foot.Subtract(p1)

	c1 := p2.Dot(l2.U) - l2.D
	c2 := 2 * v2.Dot(dir)
	c3 := v2.Dot(v2)
	c4 := v1.Add(v2).Dot(dir)
	c5 := v1.Dot(v2)
	c6 := dir.Dot(l2.U)
	c7 := v2.Dot(l2.U)

	a := c6
	b := c1 + c4*c6 + c7
	c := c1*c2 + c5*c6 + c4*c7
	d := c1*c3 + c5*c7

	var solutions []geom.Line
	for _, t := range polynomial.Solve(polynomial.Degree(a, b, c, threshold), a, b, c, d) {
		mirror1 := foot.Add(dir.Scale(t))
		fold, ok := geom.Bisector(p1, mirror1)
		if !ok {
			continue
		}
		mirror2 := fold.Reflect(p2)
		if boundary.Contains(mirror1) && boundary.Contains(mirror2) {
			solutions = append(solutions, fold)
		}
	}
	return solutions
}

// The 0.02 test is relative to the line's offset. Lines through the origin
// have no meaningful ratio, so fall back to the absolute distance.
func onLine(p geom.Vector, l geom.Line) bool {
	if math.Abs(l.D) < geom.Epsilon {
		return math.Abs(p.Dot(l.U)) < OnLineTolerance
	}
	return math.Abs(1-p.Dot(l.U)/l.D) < OnLineTolerance
}

// Fold perpendicular to l1 that places p onto l2. There is no solution when l1
// and l2 are parallel, since moving along l1's direction never reaches l2.
func Axiom7(p geom.Vector, l1, l2 geom.Line) []geom.Line {
	u := l1.Direction()
	uu := u.Dot(l2.U)
	if math.Abs(uu) < geom.Epsilon {
		return nil
	}
	a := p.Dot(u)
	b := p.Dot(l2.U)
	d := (l2.D + 2*a*uu - b) / (2 * uu)
	return []geom.Line{{U: u, D: d}}
}
