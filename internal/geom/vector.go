package geom

import "math"

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

func (v Vector) Subtract(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// The 2D cross product. Positive when o is counterclockwise from v.
func (v Vector) Determinant(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Scale to unit length. The second return value is false when the vector is
// too short to have a meaningful direction, in which case the returned vector
// must not be used.
func (v Vector) Normalize() (Vector, bool) {
	m := v.Magnitude()
	if m < Epsilon || !IsFinite(m) {
		return Vector{}, false
	}
	return Vector{v.X / m, v.Y / m}, true
}

func (v Vector) Rotate90() Vector {
	return Vector{-v.Y, v.X}
}

func (v Vector) Rotate270() Vector {
	return Vector{v.Y, -v.X}
}

// Point reflection through the origin.
func (v Vector) Flip() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) DistanceTo(o Vector) float64 {
	return v.Subtract(o).Magnitude()
}

func (v Vector) Midpoint(o Vector) Vector {
	return Vector{(v.X + o.X) / 2, (v.Y + o.Y) / 2}
}

func (v Vector) Equivalent(o Vector) bool {
	return Equal(v.X, o.X) && Equal(v.Y, o.Y)
}

func (v Vector) IsDegenerate() bool {
	return v.Magnitude() < Epsilon
}

// Parallel or antiparallel. Degenerate vectors have no direction and are
// never parallel to anything.
func (v Vector) IsParallel(o Vector) bool {
	a, ok := v.Normalize()
	if !ok {
		return false
	}
	b, ok := o.Normalize()
	if !ok {
		return false
	}
	return math.Abs(a.Determinant(b)) < Epsilon
}

func (v Vector) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}
