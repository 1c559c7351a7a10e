// Enumerate the crease pattern of flat origami.
//
// Starting from a convex sheet of paper, this package repeatedly applies the
// seven single-fold axioms (Huzita–Justin) to every point and line found so
// far, one generation at a time. Each distinct fold line and crease point is
// kept once, along with the number of independent constructions that produced
// it.
package origami

import (
	"github.com/osuushi/origami/config"
	"github.com/osuushi/origami/internal/fold"
	"github.com/osuushi/origami/internal/geom"
	"github.com/osuushi/origami/internal/throw"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Vector = geom.Vector
type Line = geom.Line
type Segment = geom.Segment
type Boundary = geom.Boundary
type CountedPoint = fold.CountedPoint
type CountedSegment = fold.CountedSegment
type RoundStats = fold.RoundStats

type Result struct {
	// Segments and points, each sorted by ascending multiplicity.
	fold.Result
	Boundary *Boundary
	Stats    []RoundStats
}

// Run every round the configuration asks for. A nil config means
// config.Default(), and a nil logger is silent.
func Enumerate(cfg *config.Config, logger *zap.Logger) (result *Result, err error) {
	defer func() {
		recoveredErr := throw.Recover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	boundary, err := cfg.BuildBoundary()
	if err != nil {
		return nil, err
	}
	points, lines, err := cfg.BuildSeeds(boundary)
	if err != nil {
		return nil, err
	}
	state, err := fold.NewState(boundary, points, lines)
	if err != nil {
		return nil, err
	}

	stats, err := fold.Run(state, cfg.Options(logger))
	if err != nil {
		return nil, err
	}
	return &Result{
		Result:   state.Result(),
		Boundary: boundary,
		Stats:    stats,
	}, nil
}
