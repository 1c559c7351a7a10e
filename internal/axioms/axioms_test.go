package axioms

import (
	"math"
	"testing"

	"github.com/osuushi/origami/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = geom.UnitSquare()

func assertLine(t *testing.T, expected, actual geom.Line) {
	t.Helper()
	assert.InDelta(t, expected.U.X, actual.U.X, geom.Epsilon, "u.x of %v", actual)
	assert.InDelta(t, expected.U.Y, actual.U.Y, geom.Epsilon, "u.y of %v", actual)
	assert.InDelta(t, expected.D, actual.D, geom.Epsilon, "d of %v", actual)
}

func assertUnit(t *testing.T, lines []geom.Line) {
	t.Helper()
	for _, l := range lines {
		assert.InDelta(t, 1.0, l.U.Magnitude(), geom.Epsilon, "normal of %v", l)
	}
}

func TestAxiom1(t *testing.T) {
	lines := Axiom1(geom.Vector{X: 2, Y: 2}, geom.Vector{X: 1.2, Y: -0.8})
	require.Len(t, lines, 1)
	assertLine(t, geom.Line{U: geom.Vector{X: 0.9615239476408233, Y: -0.2747211278973781}, D: 1.3736056394868903}, lines[0])

	assert.Empty(t, Axiom1(geom.Vector{X: 0.5, Y: 0.5}, geom.Vector{X: 0.5, Y: 0.5}))
}

func TestAxiom2(t *testing.T) {
	lines := Axiom2(geom.Vector{X: 2, Y: 2}, geom.Vector{X: 1.2, Y: -0.8})
	require.Len(t, lines, 1)
	assertLine(t, geom.Line{U: geom.Vector{X: -0.2747211278973781, Y: -0.9615239476408233}, D: -1.016468173220299}, lines[0])

	assert.Empty(t, Axiom2(geom.Vector{X: 0.5, Y: 0.5}, geom.Vector{X: 0.5, Y: 0.5}))
}

func TestAxiom3(t *testing.T) {
	half := math.Sqrt2 / 2

	t.Run("crossing lines", func(t *testing.T) {
		l := geom.Line{U: geom.Vector{X: 1, Y: 0}, D: 1}
		m := geom.Line{U: geom.Vector{X: 0, Y: 1}, D: 1}
		lines := Axiom3(l, m)
		require.Len(t, lines, 2)
		assertUnit(t, lines)
		// The folds are the bisectors x+y=2 and x=y, not the inputs themselves
		assertLine(t, geom.Line{U: geom.Vector{X: half, Y: half}, D: math.Sqrt2}, lines[0])
		assertLine(t, geom.Line{U: geom.Vector{X: half, Y: -half}, D: 0}, lines[1])

		// Both bisectors carry l onto m
		for _, fold := range lines {
			for _, p := range []geom.Vector{{X: 1, Y: -3}, {X: 1, Y: 0.25}} {
				assert.True(t, m.Contains(fold.Reflect(p)), "fold %v", fold)
			}
		}
	})

	t.Run("parallel lines", func(t *testing.T) {
		l := geom.Line{U: geom.Vector{X: 1, Y: 0}, D: 0.2}
		m := geom.Line{U: geom.Vector{X: -1, Y: 0}, D: -0.6}
		lines := Axiom3(l, m)
		require.Len(t, lines, 1)
		assertLine(t, geom.Line{U: geom.Vector{X: 1, Y: 0}, D: 0.4}, lines[0])
	})

	t.Run("same line", func(t *testing.T) {
		l := geom.Line{U: geom.Vector{X: 0, Y: 1}, D: 0.5}
		lines := Axiom3(l, l)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].Equivalent(l))
	})
}

func TestAxiom4(t *testing.T) {
	p := geom.Vector{X: 0.25, Y: 0.5}

	t.Run("mirror inside", func(t *testing.T) {
		lines := Axiom4(p, geom.Line{U: geom.Vector{X: 1, Y: 0}, D: 0.5}, square)
		require.Len(t, lines, 1)
		assertUnit(t, lines)
		assert.True(t, lines[0].Equivalent(geom.Line{U: geom.Vector{X: 0, Y: 1}, D: 0.5}))
		assert.True(t, lines[0].Contains(p))
	})

	t.Run("mirror outside", func(t *testing.T) {
		assert.Empty(t, Axiom4(p, geom.Line{U: geom.Vector{X: 0, Y: 1}, D: 0}, square))
	})
}

func TestAxiom5(t *testing.T) {
	p1 := geom.Vector{X: 0.5, Y: 0.5}
	bottom := geom.Line{U: geom.Vector{X: 0, Y: 1}, D: 0}

	t.Run("two solutions", func(t *testing.T) {
		p2 := geom.Vector{X: 1, Y: 1}
		lines := Axiom5(p1, p2, bottom, square)
		require.Len(t, lines, 2)
		assertUnit(t, lines)
		for _, fold := range lines {
			assert.True(t, fold.Contains(p1))
			assert.True(t, bottom.Contains(fold.Reflect(p2)))
		}
	})

	t.Run("tangent", func(t *testing.T) {
		// a == c: the circle around p1 through p2 just touches the line
		lines := Axiom5(p1, geom.Vector{X: 0.5, Y: 1}, bottom, square)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].Equivalent(geom.Line{U: geom.Vector{X: 0, Y: 1}, D: 0.5}))
	})

	t.Run("out of reach", func(t *testing.T) {
		// a > c: the circle never reaches the line
		assert.Empty(t, Axiom5(p1, geom.Vector{X: 0.5, Y: 0.7}, bottom, square))
	})

	t.Run("mirror outside boundary", func(t *testing.T) {
		p1 := geom.Vector{X: 0, Y: 1}
		p2 := geom.Vector{X: 1, Y: 1}
		// The unit circle around (0,1) meets y = 0.5 at x = ±0.866, and only the
		// positive crossing is on the paper.
		lines := Axiom5(p1, p2, geom.Line{U: geom.Vector{X: 0, Y: 1}, D: 0.5}, square)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].Contains(p1))
	})

	t.Run("coincident points", func(t *testing.T) {
		assert.Empty(t, Axiom5(p1, p1, bottom, square))
	})
}

func TestAxiom6(t *testing.T) {
	s := math.Sqrt2 / 2
	p1 := geom.Vector{X: 0.2, Y: 0.3}
	p2 := geom.Vector{X: 0.3, Y: 0.9}
	l1 := geom.Line{U: geom.Vector{X: 1, Y: 0}, D: 0.8}
	l2 := geom.Line{U: geom.Vector{X: s, Y: s}, D: 1.6 * s}

	lines := Axiom6(p1, p2, l1, l2, square, geom.Epsilon)
	require.Len(t, lines, 1)
	assertUnit(t, lines)
	assert.True(t, lines[0].Equivalent(geom.Line{U: geom.Vector{X: 1, Y: 0}, D: 0.5}), "got %v", lines[0])
	for _, fold := range lines {
		assert.True(t, l1.Contains(fold.Reflect(p1)))
		assert.True(t, l2.Contains(fold.Reflect(p2)))
	}

	t.Run("point on line", func(t *testing.T) {
		near := geom.Vector{X: 0.79, Y: 0.3}
		assert.Empty(t, Axiom6(near, p2, l1, l2, square, geom.Epsilon))
	})

	t.Run("line through origin", func(t *testing.T) {
		diagonal := geom.Line{U: geom.Vector{X: s, Y: -s}, D: 0}
		assert.Empty(t, Axiom6(geom.Vector{X: 0.5, Y: 0.5}, p2, diagonal, l2, square, geom.Epsilon))
	})
}

func TestAxiom7(t *testing.T) {
	p := geom.Vector{X: 0.2, Y: 0.3}
	bottom := geom.Line{U: geom.Vector{X: 0, Y: 1}, D: 0}

	lines := Axiom7(p, bottom, geom.Line{U: geom.Vector{X: 1, Y: 0}, D: 0.8})
	require.Len(t, lines, 1)
	assertUnit(t, lines)
	assert.True(t, lines[0].Equivalent(geom.Line{U: geom.Vector{X: 1, Y: 0}, D: 0.5}))

	t.Run("parallel lines", func(t *testing.T) {
		assert.Empty(t, Axiom7(p, bottom, geom.Line{U: geom.Vector{X: 0, Y: 1}, D: 0.5}))
	})
}

func TestAxiomNames(t *testing.T) {
	assert.Len(t, All(), 7)
	assert.Equal(t, "axiom5", Five.String())
	assert.True(t, Seven.Valid())
	assert.False(t, Axiom(0).Valid())
	assert.False(t, Axiom(8).Valid())
}
