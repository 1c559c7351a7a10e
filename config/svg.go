package config

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/origami/internal/geom"
	"github.com/pkg/errors"
)

// Read the vertices of the only <polygon> in an SVG document. This is not a
// general SVG reader: transforms and other shapes are ignored, and the
// coordinates are taken as they are written.
func ReadPolygon(r io.Reader) ([]geom.Vector, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := root.FindAll("polygon")
	switch len(polygons) {
	case 0:
		return nil, errors.New("no polygon found")
	case 1:
	default:
		return nil, errors.Errorf("found %d polygons, want exactly one", len(polygons))
	}

	// Coordinates may be separated by commas, whitespace, or both
	fields := strings.FieldsFunc(polygons[0].Attributes["points"], func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("polygon has an odd number of coordinates (%d)", len(fields))
	}

	points := make([]geom.Vector, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geom.Vector{X: x, Y: y})
	}
	return points, nil
}
