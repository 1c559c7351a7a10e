package geom

import "math"

// Epsilon is the one tolerance every comparison in the engine goes through.
// The dedup index sizes its buckets from it, so changing it anywhere else
// would let equivalent objects land in non-adjacent buckets.
const Epsilon = 1e-8

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
