package geom

import (
	"math"

	"github.com/pkg/errors"
)

// A convex region that every point and segment is kept inside. It is stored as
// a counterclockwise vertex loop plus one line per side whose normal points
// inward, so containment is a handful of dot products.
type Boundary struct {
	vertices []Vector
	sides    []Line
}

// Build a boundary from the corners of a convex polygon. Either winding is
// accepted; clockwise input is reversed. Anything that would leave the region
// without at least three independent sides is rejected, since no round can run
// against such a boundary.
func NewBoundary(vertices ...Vector) (*Boundary, error) {
	if len(vertices) < 3 {
		return nil, errors.Errorf("boundary needs at least 3 vertices, got %d", len(vertices))
	}
	for i, v := range vertices {
		if !v.IsFinite() {
			return nil, errors.Errorf("boundary vertex %d is not finite: %v", i, v)
		}
	}

	loop := make([]Vector, len(vertices))
	copy(loop, vertices)
	area := SignedArea(loop)
	if Equal(area, 0) {
		return nil, errors.New("boundary has zero area")
	}
	if area < 0 {
		for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
			loop[i], loop[j] = loop[j], loop[i]
		}
	}

	n := len(loop)
	sides := make([]Line, n)
	for i := range loop {
		a := loop[i]
		b := loop[(i+1)%n]
		c := loop[(i+2)%n]
		if a.Equivalent(b) {
			return nil, errors.Errorf("boundary vertices %d and %d coincide", i, (i+1)%n)
		}
		// Every turn must be strictly to the left. A straight corner would give
		// two parallel sides, and a right turn means the polygon is not convex.
		if b.Subtract(a).Determinant(c.Subtract(b)) < Epsilon {
			return nil, errors.Errorf("boundary is not strictly convex at vertex %d %v", (i+1)%n, b)
		}
		u, _ := b.Subtract(a).Rotate90().Normalize()
		sides[i] = Line{U: u, D: a.Dot(u)}
	}
	return &Boundary{vertices: loop, sides: sides}, nil
}

// The working example: the unit square with corners (0,0) and (1,1).
func UnitSquare() *Boundary {
	b, err := NewBoundary(Vector{0, 0}, Vector{1, 0}, Vector{1, 1}, Vector{0, 1})
	if err != nil {
		panic(err)
	}
	return b
}

// Shoelace area, positive for counterclockwise loops.
func SignedArea(loop []Vector) float64 {
	var area float64
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		area += p.Determinant(q)
	}
	return area / 2
}

// Counterclockwise corners, starting from the first vertex given.
func (b *Boundary) Vertices() []Vector {
	out := make([]Vector, len(b.vertices))
	copy(out, b.vertices)
	return out
}

// One line per side, normal pointing inward. Side i runs from vertex i to
// vertex i+1.
func (b *Boundary) Sides() []Line {
	out := make([]Line, len(b.sides))
	copy(out, b.sides)
	return out
}

// Inside or on the edge, with Epsilon of slack.
func (b *Boundary) Contains(p Vector) bool {
	if !p.IsFinite() {
		return false
	}
	for _, side := range b.sides {
		if side.SignedDistance(p) < -Epsilon {
			return false
		}
	}
	return true
}

// Clip an infinite line to the part of it inside the boundary. Crossings are
// collected walking the sides in order, so the same line always yields the
// same endpoints in the same order. Lines that miss the region, or only touch
// a corner, report false.
func (b *Boundary) Clip(l Line) (Segment, bool) {
	var crossings []Vector
outer:
	for _, side := range b.sides {
		p, ok := l.Intersect(side)
		if !ok || !b.Contains(p) {
			continue
		}
		for _, seen := range crossings {
			if seen.Equivalent(p) {
				continue outer
			}
		}
		crossings = append(crossings, p)
	}
	if len(crossings) < 2 {
		return Segment{}, false
	}

	// A line that is nearly (but not within Epsilon) parallel to a side can
	// pick up a third crossing through the containment slack. The true chord
	// is the widest pair.
	first, second := 0, 1
	if len(crossings) > 2 {
		best := -1.0
		for i := range crossings {
			for j := i + 1; j < len(crossings); j++ {
				if d := crossings[i].DistanceTo(crossings[j]); d > best {
					best, first, second = d, i, j
				}
			}
		}
	}
	return Segment{A: crossings[first], B: crossings[second]}, true
}

// Axis aligned extent of the region.
func (b *Boundary) Bounds() (lo, hi Vector) {
	lo, hi = b.vertices[0], b.vertices[0]
	for _, v := range b.vertices[1:] {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return lo, hi
}
