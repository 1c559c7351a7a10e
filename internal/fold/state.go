// Package fold drives the enumeration: it applies the axioms to everything
// discovered so far, one generation ("round") at a time, and accumulates the
// distinct points and lines with their multiplicities.
package fold

import (
	"sort"

	"github.com/osuushi/origami/internal/dedup"
	"github.com/osuushi/origami/internal/geom"
	"github.com/pkg/errors"
)

// State is the accumulated result of every round so far. The two history
// indexes are the only mutable collections in a run; everything else works on
// snapshots of them.
type State struct {
	boundary *geom.Boundary
	points   *dedup.PointIndex
	lines    *dedup.LineIndex
	round    int
}

// Round 0. Seeds are deduplicated like any other entry, so repeated seeds
// start with a higher multiplicity.
func NewState(boundary *geom.Boundary, seedPoints []geom.Vector, seedLines []geom.Line) (*State, error) {
	if boundary == nil {
		return nil, errors.New("state needs a boundary")
	}
	s := &State{
		boundary: boundary,
		points:   dedup.NewPointIndex(),
		lines:    dedup.NewLineIndex(),
	}
	for i, p := range seedPoints {
		if !boundary.Contains(p) {
			return nil, errors.Errorf("seed point %d %v is outside the boundary", i, p)
		}
		s.points.Push(p)
	}
	for i, l := range seedLines {
		if !l.IsFinite() || !geom.Equal(l.U.Magnitude(), 1) {
			return nil, errors.Errorf("seed line %d %v does not have a unit normal", i, l)
		}
		s.lines.Push(l)
	}
	return s, nil
}

// The boundary's corners and sides.
func SeedsOf(boundary *geom.Boundary) ([]geom.Vector, []geom.Line) {
	return boundary.Vertices(), boundary.Sides()
}

func (s *State) Boundary() *geom.Boundary {
	return s.boundary
}

// The last round completed.
func (s *State) Rounds() int {
	return s.round
}

func (s *State) Points() []CountedPoint {
	return s.points.Flatten()
}

func (s *State) Lines() []CountedLine {
	return s.lines.Flatten()
}

type CountedPoint = dedup.CountedPoint
type CountedLine = dedup.CountedLine

type CountedSegment struct {
	Segment geom.Segment
	Count   int
}

// What a renderer needs. Both lists are sorted by ascending multiplicity, so
// drawing them in order puts the most constructible entries on top.
type Result struct {
	Segments []CountedSegment
	Points   []CountedPoint
}

// Clip every line to the boundary. Lines that miss it are left out.
func (s *State) Result() Result {
	lines := s.lines.Flatten()
	segments := make([]CountedSegment, 0, len(lines))
	for _, l := range lines {
		seg, ok := s.boundary.Clip(l.Value)
		if !ok {
			continue
		}
		segments = append(segments, CountedSegment{Segment: seg, Count: l.Count})
	}
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Count < segments[j].Count
	})

	points := s.points.Flatten()
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Count < points[j].Count
	})
	return Result{Segments: segments, Points: points}
}
