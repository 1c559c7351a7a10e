package geom

// A point or a direction. Both are the same thing as far as the algebra is
// concerned.
type Vector struct {
	X float64
	Y float64
}

// A line in Hesse normal form: all points p with p·U = D. U is always a unit
// vector, so D is the signed distance of the line from the origin. Note that
// (U, D) and (-U, -D) are the same line; use Equivalent, never ==.
type Line struct {
	U Vector
	D float64
}

// Segments are only ever produced by clipping a Line to a Boundary. They are
// display data and never feed back into the construction.
type Segment struct {
	A, B Vector
}
