package fold

import (
	"github.com/osuushi/origami/internal/axioms"
	"github.com/osuushi/origami/internal/geom"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Options struct {
	// Number of rounds to run, starting at round 1.
	Rounds int
	// Intersection points are only computed while round <= IntersectionRounds.
	// The number of intersections grows quadratically with the line count, so
	// the last rounds usually only produce lines.
	IntersectionRounds int
	Axioms             []axioms.Axiom
	// Worker goroutines for the map phases. Zero means GOMAXPROCS.
	Workers int
	// Coefficient magnitude below which axiom 6 treats a leading term of its
	// cubic as absent.
	DegreeThreshold float64
	Sampler         Sampler
	Logger          *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		Rounds:             4,
		IntersectionRounds: 3,
		Axioms:             axioms.All(),
		DegreeThreshold:    geom.Epsilon,
		Sampler:            DefaultSampler(),
		Logger:             zap.NewNop(),
	}
}

func (o Options) Validate() error {
	if o.Rounds < 1 {
		return errors.Errorf("rounds must be at least 1, got %d", o.Rounds)
	}
	if o.IntersectionRounds < 0 {
		return errors.Errorf("intersection rounds must not be negative, got %d", o.IntersectionRounds)
	}
	seen := map[axioms.Axiom]bool{}
	for _, a := range o.Axioms {
		if !a.Valid() {
			return errors.Errorf("unknown axiom %d", int(a))
		}
		if seen[a] {
			return errors.Errorf("%v listed twice", a)
		}
		seen[a] = true
	}
	if o.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", o.Workers)
	}
	if !(o.DegreeThreshold > 0) {
		return errors.Errorf("degree threshold must be positive, got %v", o.DegreeThreshold)
	}
	return errors.Wrap(o.Sampler.Validate(), "sampler")
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) enabled(a axioms.Axiom) bool {
	for _, b := range o.Axioms {
		if a == b {
			return true
		}
	}
	return false
}
