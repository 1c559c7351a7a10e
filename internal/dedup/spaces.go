package dedup

import (
	"github.com/osuushi/origami/internal/geom"
)

type PointIndex = Index[geom.Vector]
type LineIndex = Index[geom.Line]

type CountedPoint = Counted[geom.Vector]
type CountedLine = Counted[geom.Line]

func NewPointIndex() *PointIndex {
	return New[geom.Vector](PointSpace{Size: CellSize})
}

func NewLineIndex() *LineIndex {
	return New[geom.Line](LineSpace{Size: CellSize})
}

// Points are bucketed on a square grid over (x, y).
type PointSpace struct {
	Size float64
}

func (s PointSpace) Home(p geom.Vector) Cell {
	return Cell{cellOf(p.X, s.Size), cellOf(p.Y, s.Size), 0}
}

func (s PointSpace) Probes(p geom.Vector, cells []Cell) []Cell {
	home := s.Home(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			cells = append(cells, Cell{home[0] + dx, home[1] + dy, 0})
		}
	}
	return cells
}

func (PointSpace) Equivalent(a, b geom.Vector) bool {
	return a.Equivalent(b)
}

func (PointSpace) Valid(p geom.Vector) bool {
	return p.IsFinite()
}

// Lines are bucketed on a cubic grid over their canonical (ux, uy, d). Two
// equivalent lines can still have canonical forms on opposite sides of the
// grid when their normals are almost horizontal, because the canonical
// orientation flips there; in that case the flipped form is probed as well.
type LineSpace struct {
	Size float64
}

func (s LineSpace) Home(l geom.Line) Cell {
	return s.cell(l.Canonical())
}

func (s LineSpace) cell(l geom.Line) Cell {
	return Cell{cellOf(l.U.X, s.Size), cellOf(l.U.Y, s.Size), cellOf(l.D, s.Size)}
}

func (s LineSpace) Probes(l geom.Line, cells []Cell) []Cell {
	c := l.Canonical()
	cells = s.around(s.cell(c), cells)
	if c.U.Y < geom.Epsilon {
		cells = s.around(s.cell(geom.Line{U: c.U.Flip(), D: -c.D}), cells)
	}
	return cells
}

func (s LineSpace) around(home Cell, cells []Cell) []Cell {
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dd := int64(-1); dd <= 1; dd++ {
				cells = append(cells, Cell{home[0] + dx, home[1] + dy, home[2] + dd})
			}
		}
	}
	return cells
}

func (LineSpace) Equivalent(a, b geom.Line) bool {
	return a.Equivalent(b)
}

func (LineSpace) Valid(l geom.Line) bool {
	return l.IsFinite()
}
