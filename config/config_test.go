package config

import (
	"embed"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/origami/internal/axioms"
	"github.com/osuushi/origami/internal/fold"
	"github.com/osuushi/origami/internal/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed fixtures
var fixtures embed.FS

func readFixture(t *testing.T, name string) ([]geom.Vector, error) {
	f, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err)
	defer f.Close()
	return ReadPolygon(f)
}

func TestReadPolygon(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		points, err := readFixture(t, "square")
		require.NoError(t, err)
		assert.Equal(t, []geom.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, points)
	})

	t.Run("hexagon", func(t *testing.T) {
		points, err := readFixture(t, "hexagon")
		require.NoError(t, err)
		require.Len(t, points, 6)
		for _, p := range points {
			assert.InDelta(t, 1, p.Magnitude(), geom.Epsilon)
		}
	})

	t.Run("nested with mixed separators", func(t *testing.T) {
		points, err := readFixture(t, "triangle-cw")
		require.NoError(t, err)
		assert.Equal(t, []geom.Vector{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 3, Y: 0}}, points)
	})

	t.Run("no polygon", func(t *testing.T) {
		_, err := readFixture(t, "empty")
		assert.EqualError(t, err, "no polygon found")
	})
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	b, err := c.BuildBoundary()
	require.NoError(t, err)
	assert.Equal(t, geom.UnitSquare().Vertices(), b.Vertices())

	points, lines, err := c.BuildSeeds(b)
	require.NoError(t, err)
	assert.Len(t, points, 4)
	assert.Len(t, lines, 4)

	opts := c.Options(nil)
	assert.Equal(t, 4, opts.Rounds)
	assert.Equal(t, 3, opts.IntersectionRounds)
	assert.Equal(t, axioms.All(), opts.Axioms)
	assert.NotNil(t, opts.Logger)
	assert.Equal(t, fold.DefaultOptions().Sampler, opts.Sampler)
	assert.Equal(t, fold.Limit{}, opts.Sampler.Limit(1, axioms.Six))
	assert.Equal(t, fold.Limit{Points: 12, Lines: 12}, opts.Sampler.Limit(2, axioms.Six))
	assert.Equal(t, fold.Limit{Points: 24, Lines: 24}, opts.Sampler.Limit(4, axioms.One))
}

func TestLoad(t *testing.T) {
	c, err := Load(filepath.Join("fixtures", "hexagon.yaml"))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, 2, c.Rounds)
	assert.Equal(t, 1, c.IntersectionRounds)
	assert.Equal(t, []axioms.Axiom{axioms.One, axioms.Two, axioms.Three}, c.Axioms)
	assert.Equal(t, 2, c.Workers)
	// Untouched keys keep their defaults
	assert.Equal(t, geom.Epsilon, c.DegreeThreshold)
	assert.Equal(t, filepath.Join("fixtures", "hexagon.svg"), c.Boundary.SVG)

	// The sampling section replaces the default rules
	assert.Equal(t, fold.Sampler{
		Strategy: fold.SampleMinCount,
		Rules: []fold.Rule{{
			From:   2,
			Limit:  fold.Limit{Points: 2, Lines: 2},
			Axioms: map[axioms.Axiom]fold.Limit{axioms.Three: {Lines: 3}},
		}},
	}, c.Sampling)

	b, err := c.BuildBoundary()
	require.NoError(t, err)
	assert.Len(t, b.Vertices(), 6)
	assert.InDelta(t, 3*math.Sqrt(3)/2, geom.SignedArea(b.Vertices()), 1e-9)

	points, lines, err := c.BuildSeeds(b)
	require.NoError(t, err)
	assert.Len(t, points, 7)
	assert.Equal(t, geom.Vector{}, points[6])
	assert.Len(t, lines, 6)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join("fixtures", "nope.yaml"))
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("rounds: [1"))
	assert.Error(t, err)

	_, err = Parse([]byte("rounds: many"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		err  string
	}{
		{"empty", "", ""},
		{"zero rounds", "rounds: 0", "rounds must be at least 1, got 0"},
		{"axiom out of range", "axioms: [0, 1]", "unknown axiom 0"},
		{"duplicate axiom", "axioms: [2, 2]", "axiom2 listed twice"},
		{"strategy", "sampling: {strategy: random}", `sampler: unknown sampling strategy "random"`},
		{"negative limit", "sampling: {strategy: top-k, rules: [{from: 1, points: -3}]}", "sampler: sampling rule 0: negative limit {Points:-3 Lines:0}"},
		{"two boundaries", "boundary: {svg: a.svg, vertices: [[0, 0], [1, 0], [0, 1]]}", "boundary has both vertices and an svg file"},
		{"short vertex", "boundary: {vertices: [[0, 0], [1], [0, 1]]}", "boundary: point 1 has 1 coordinates, want 2"},
		{"long seed", "seeds: {points: [[0.5, 0.5, 0.5]]}", "seeds: point 0 has 3 coordinates, want 2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Parse([]byte(c.yaml))
			require.NoError(t, err)
			err = cfg.Validate()
			if c.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, c.err)
			}
		})
	}
}

func TestBuildBoundary(t *testing.T) {
	t.Run("vertices", func(t *testing.T) {
		c, err := Parse([]byte("boundary: {vertices: [[0, 0], [2, 0], [0, 2]]}"))
		require.NoError(t, err)
		b, err := c.BuildBoundary()
		require.NoError(t, err)
		assert.True(t, b.Contains(geom.Vector{X: 0.5, Y: 0.5}))
		assert.False(t, b.Contains(geom.Vector{X: 1.5, Y: 1.5}))
	})

	t.Run("clockwise svg", func(t *testing.T) {
		c := Default()
		c.Boundary.SVG = filepath.Join("fixtures", "triangle-cw.svg")
		b, err := c.BuildBoundary()
		require.NoError(t, err)
		assert.Greater(t, geom.SignedArea(b.Vertices()), 0.0)
	})

	t.Run("concave svg", func(t *testing.T) {
		c := Default()
		c.Boundary.SVG = filepath.Join("fixtures", "concave.svg")
		_, err := c.BuildBoundary()
		assert.EqualError(t, err, "boundary fixtures/concave.svg: boundary is not strictly convex at vertex 3 {2 1}")
	})

	t.Run("missing svg", func(t *testing.T) {
		c := Default()
		c.Boundary.SVG = filepath.Join(t.TempDir(), "gone.svg")
		_, err := c.BuildBoundary()
		assert.True(t, os.IsNotExist(errors.Cause(err)))
	})

	t.Run("degenerate vertices", func(t *testing.T) {
		c, err := Parse([]byte("boundary: {vertices: [[0, 0], [1, 1], [2, 2]]}"))
		require.NoError(t, err)
		_, err = c.BuildBoundary()
		assert.EqualError(t, err, "boundary: boundary has zero area")
	})
}

func TestSeedOutsideBoundaryIsRejected(t *testing.T) {
	c, err := Load(filepath.Join("fixtures", "bad-seed.yaml"))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	b, err := c.BuildBoundary()
	require.NoError(t, err)
	points, lines, err := c.BuildSeeds(b)
	require.NoError(t, err)
	_, err = fold.NewState(b, points, lines)
	assert.EqualError(t, err, "seed point 3 {2 2} is outside the boundary")
}
