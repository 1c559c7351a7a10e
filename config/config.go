// Package config holds the parameters of an enumeration run. They are read
// once, before the first round, and never change during the run.
package config

import (
	"os"
	"path/filepath"

	"github.com/osuushi/origami/internal/axioms"
	"github.com/osuushi/origami/internal/fold"
	"github.com/osuushi/origami/internal/geom"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Rounds             int            `yaml:"rounds"`
	IntersectionRounds int            `yaml:"intersection_rounds"`
	Axioms             []axioms.Axiom `yaml:"axioms"`
	Workers            int            `yaml:"workers"`
	DegreeThreshold    float64        `yaml:"degree_threshold"`
	Sampling           fold.Sampler   `yaml:"sampling"`
	Boundary           Boundary       `yaml:"boundary"`
	Seeds              Seeds          `yaml:"seeds"`
}

// Where the paper outline comes from. At most one of the two may be set; with
// neither, the paper is the unit square.
type Boundary struct {
	Vertices [][]float64 `yaml:"vertices"`
	// Path to an SVG file whose only <polygon> is the outline. Relative paths
	// are resolved against the config file's directory.
	SVG string `yaml:"svg"`
}

// The boundary's corners and sides are always seeded. These are extra.
type Seeds struct {
	Points [][]float64 `yaml:"points"`
}

// The working example: four rounds on the unit square with every axiom,
// intersections through round three, and top-k sampling once the first
// round has grown the sets.
func Default() *Config {
	return &Config{
		Rounds:             4,
		IntersectionRounds: 3,
		Axioms:             axioms.All(),
		DegreeThreshold:    geom.Epsilon,
		Sampling:           fold.DefaultSampler(),
	}
}

// Read a YAML file over the defaults. Keys that are absent keep their default
// value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	if c.Boundary.SVG != "" && !filepath.IsAbs(c.Boundary.SVG) {
		c.Boundary.SVG = filepath.Join(filepath.Dir(path), c.Boundary.SVG)
	}
	return c, nil
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	// A sampling section replaces the default rules instead of merging into
	// them.
	var probe struct {
		Sampling *yaml.Node `yaml:"sampling"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if probe.Sampling != nil {
		c.Sampling = fold.Sampler{}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return c, nil
}

func (c *Config) Validate() error {
	if err := c.Options(nil).Validate(); err != nil {
		return err
	}
	if len(c.Boundary.Vertices) > 0 && c.Boundary.SVG != "" {
		return errors.New("boundary has both vertices and an svg file")
	}
	if _, err := vectors(c.Boundary.Vertices); err != nil {
		return errors.Wrap(err, "boundary")
	}
	if _, err := vectors(c.Seeds.Points); err != nil {
		return errors.Wrap(err, "seeds")
	}
	return nil
}

// The fold options this config describes. A nil logger is silent.
func (c *Config) Options(logger *zap.Logger) fold.Options {
	if logger == nil {
		logger = zap.NewNop()
	}
	return fold.Options{
		Rounds:             c.Rounds,
		IntersectionRounds: c.IntersectionRounds,
		Axioms:             c.Axioms,
		Workers:            c.Workers,
		DegreeThreshold:    c.DegreeThreshold,
		Sampler:            c.Sampling,
		Logger:             logger,
	}
}

func (c *Config) BuildBoundary() (*geom.Boundary, error) {
	switch {
	case c.Boundary.SVG != "":
		f, err := os.Open(c.Boundary.SVG)
		if err != nil {
			return nil, errors.Wrap(err, "opening boundary")
		}
		defer f.Close()
		vertices, err := ReadPolygon(f)
		if err != nil {
			return nil, errors.Wrapf(err, "boundary %s", c.Boundary.SVG)
		}
		b, err := geom.NewBoundary(vertices...)
		return b, errors.Wrapf(err, "boundary %s", c.Boundary.SVG)

	case len(c.Boundary.Vertices) > 0:
		vertices, err := vectors(c.Boundary.Vertices)
		if err != nil {
			return nil, errors.Wrap(err, "boundary")
		}
		b, err := geom.NewBoundary(vertices...)
		return b, errors.Wrap(err, "boundary")

	default:
		return geom.UnitSquare(), nil
	}
}

// The boundary's corners and sides, followed by the extra seed points.
func (c *Config) BuildSeeds(boundary *geom.Boundary) ([]geom.Vector, []geom.Line, error) {
	extra, err := vectors(c.Seeds.Points)
	if err != nil {
		return nil, nil, errors.Wrap(err, "seeds")
	}
	points, lines := fold.SeedsOf(boundary)
	return append(points, extra...), lines, nil
}

func vectors(pairs [][]float64) ([]geom.Vector, error) {
	out := make([]geom.Vector, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, errors.Errorf("point %d has %d coordinates, want 2", i, len(p))
		}
		out[i] = geom.Vector{X: p[0], Y: p[1]}
	}
	return out, nil
}
