package geom

import "math"

// Build a line from any nonzero normal. The offset is scaled along with the
// normal, so NewLine(Vector{0, 2}, 2) is the line y = 1.
func NewLine(u Vector, d float64) (Line, bool) {
	m := u.Magnitude()
	if m < Epsilon || !IsFinite(m) || !IsFinite(d) {
		return Line{}, false
	}
	return Line{U: Vector{u.X / m, u.Y / m}, D: d / m}, true
}

// The line through a and b. Fails if the points coincide.
func LineThrough(a, b Vector) (Line, bool) {
	u, ok := b.Subtract(a).Rotate90().Normalize()
	if !ok {
		return Line{}, false
	}
	return Line{U: u, D: a.Add(b).Dot(u) / 2}, true
}

// The perpendicular bisector of a and b. Folding along it takes a onto b.
func Bisector(a, b Vector) (Line, bool) {
	u, ok := b.Subtract(a).Normalize()
	if !ok {
		return Line{}, false
	}
	return Line{U: u, D: a.Add(b).Dot(u) / 2}, true
}

// Equivalent lines are equal up to Epsilon in either orientation, so that
// (u, d) and (-u, -d) compare equal.
func (l Line) Equivalent(m Line) bool {
	if Equal(l.U.X, m.U.X) && Equal(l.U.Y, m.U.Y) && Equal(l.D, m.D) {
		return true
	}
	return Equal(l.U.X, -m.U.X) && Equal(l.U.Y, -m.U.Y) && Equal(l.D, -m.D)
}

// Intersection point of two lines. Parallel (or coincident) lines have no
// unique intersection and report false rather than dividing by a vanishing
// determinant.
func (l Line) Intersect(m Line) (Vector, bool) {
	det := l.U.Determinant(m.U)
	if math.Abs(det) < Epsilon {
		return Vector{}, false
	}
	p := Vector{
		X: (l.D*m.U.Y - m.D*l.U.Y) / det,
		Y: (l.U.X*m.D - m.U.X*l.D) / det,
	}
	if !p.IsFinite() {
		return Vector{}, false
	}
	return p, true
}

// Unit vector along the line.
func (l Line) Direction() Vector {
	return l.U.Rotate90()
}

// Positive on the side the normal points to.
func (l Line) SignedDistance(p Vector) float64 {
	return p.Dot(l.U) - l.D
}

func (l Line) Contains(p Vector) bool {
	return math.Abs(l.SignedDistance(p)) < Epsilon
}

// Mirror image of p across the line.
func (l Line) Reflect(p Vector) Vector {
	return p.Add(l.U.Scale(2 * (l.D - p.Dot(l.U))))
}

// The orientation of the line whose normal points into the upper half plane
// (or along +x for horizontal normals). Two equivalent lines have nearby
// canonical forms unless their normals are close to horizontal.
func (l Line) Canonical() Line {
	if l.U.Y < 0 || (l.U.Y == 0 && l.U.X < 0) {
		return Line{U: l.U.Flip(), D: -l.D}
	}
	return l
}

func (l Line) IsFinite() bool {
	return l.U.IsFinite() && IsFinite(l.D)
}
