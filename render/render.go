// Package render draws an enumeration result: every fold line as a segment
// across the paper and every crease point as a dot, each faded by how often it
// was constructed.
package render

import (
	"math"

	jgeom "github.com/jbeda/geom"
	"github.com/osuushi/origami/internal/geom"
)

type Options struct {
	// In paper units.
	StrokeWidth float64
	Radius      float64
	Padding     float64
	// Opacity is (count/max)^Exponent. Small exponents keep rare entries
	// visible.
	Exponent float64
}

func DefaultOptions() Options {
	return Options{
		StrokeWidth: 0.0002,
		Radius:      0.001,
		Padding:     0.01,
		Exponent:    0.1,
	}
}

func (o Options) opacity(count, most int) float64 {
	if most <= 0 {
		return 1
	}
	return math.Pow(float64(count)/float64(most), o.Exponent)
}

// The boundary's extent grown by the padding on every side.
func viewBox(boundary *geom.Boundary, padding float64) jgeom.Rect {
	var r jgeom.Rect
	for i, v := range boundary.Vertices() {
		c := jgeom.Coord{X: v.X, Y: v.Y}
		if i == 0 {
			r = jgeom.Rect{Min: c, Max: c}
			continue
		}
		r.ExpandToContainCoord(c)
	}
	r.Min.X -= padding
	r.Min.Y -= padding
	r.Max.X += padding
	r.Max.Y += padding
	return r
}

func maxCount[T any](entries []T, count func(T) int) int {
	most := 0
	for _, e := range entries {
		if c := count(e); c > most {
			most = c
		}
	}
	return most
}
