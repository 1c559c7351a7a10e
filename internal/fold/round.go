package fold

import (
	"time"

	"github.com/osuushi/origami/internal/axioms"
	"github.com/osuushi/origami/internal/dedup"
	"github.com/osuushi/origami/internal/geom"
	"github.com/osuushi/origami/internal/parallel"
	"github.com/osuushi/origami/internal/throw"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Run every remaining round up to opts.Rounds. Rounds are strictly sequential,
// since each one consumes everything the previous one produced.
func Run(s *State, opts Options) (stats []RoundStats, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	defer func() {
		if e := throw.Recover(recover()); e != nil {
			err = errors.Wrapf(e, "round %d", s.round+1)
		}
	}()

	pool := parallel.NewWorkerPool(opts.Workers)
	defer pool.Close()

	log := opts.logger()
	log.Info("starting enumeration",
		zap.Int("rounds", opts.Rounds),
		zap.Int("intersectionRounds", opts.IntersectionRounds),
		zap.Int("workers", pool.Workers()),
		zap.Int("points", s.points.Len()),
		zap.Int("lines", s.lines.Len()),
	)
	for s.round < opts.Rounds {
		stats = append(stats, s.next(opts, pool))
	}
	return stats, nil
}

// Run a single round on its own worker pool. Options are not validated, and
// invariant violations panic with a *throw.Error; use Run for the checked
// version.
func (s *State) Round(opts Options) RoundStats {
	pool := parallel.NewWorkerPool(opts.Workers)
	defer pool.Close()
	return s.next(opts, pool)
}

// One unit of the axiom map phase. It reads the round's snapshot and returns
// its own batch, so the phase needs no locking.
type job func() []geom.Line

func (s *State) next(opts Options, pool *parallel.WorkerPool) RoundStats {
	start := time.Now()
	round := s.round + 1
	log := opts.logger().With(zap.Int("round", round))
	stats := RoundStats{Round: round, Candidates: map[axioms.Axiom]int{}}

	oldLines := values(s.lines.Flatten())
	newLines := dedup.NewLineIndex()
	for _, a := range axioms.All() {
		if !opts.enabled(a) {
			continue
		}
		jobs := s.jobs(a, round, opts)
		batches := make([][]geom.Line, len(jobs))
		work := make([]func(), len(jobs))
		for i, j := range jobs {
			i, j := i, j
			work[i] = func() { batches[i] = j() }
		}
		pool.ExecuteAll(work)

		for _, batch := range batches {
			stats.Candidates[a] += len(batch)
			for _, l := range batch {
				if !valid(l) {
					stats.Dropped++
					continue
				}
				if !s.lines.Bump(l) {
					newLines.Push(l)
				}
			}
		}
		log.Debug("axiom applied",
			zap.Stringer("axiom", a),
			zap.Int("jobs", len(jobs)),
			zap.Int("candidates", stats.Candidates[a]),
			zap.Int("newLines", newLines.Len()),
		)
	}

	newPoints := dedup.NewPointIndex()
	if round <= opts.IntersectionRounds {
		fresh := values(newLines.Flatten())
		for _, batch := range s.intersections(fresh, oldLines, pool) {
			stats.Intersections += len(batch)
			for _, p := range batch {
				if !s.points.Bump(p) {
					newPoints.Push(p)
				}
			}
		}
	}

	stats.NewLines = newLines.Len()
	stats.NewPoints = newPoints.Len()
	s.lines.Merge(newLines)
	s.points.Merge(newPoints)
	s.round = round

	stats.Lines = s.lines.Len()
	stats.Points = s.points.Len()
	stats.Elapsed = time.Since(start)
	log.Info("round complete",
		zap.Int("candidates", stats.TotalCandidates()),
		zap.Int("dropped", stats.Dropped),
		zap.Int("newLines", stats.NewLines),
		zap.Int("newPoints", stats.NewPoints),
		zap.Int("lines", stats.Lines),
		zap.Int("points", stats.Points),
		zap.Duration("elapsed", stats.Elapsed),
	)
	return stats
}

// Split axiom a's input combinations into jobs, one per choice of the first
// argument.
func (s *State) jobs(a axioms.Axiom, round int, opts Options) []job {
	limit := opts.Sampler.Limit(round, a)
	points := Sample(opts.Sampler.Strategy, limit.Points, s.points.Flatten())
	lines := Sample(opts.Sampler.Strategy, limit.Lines, s.lines.Flatten())
	boundary := s.boundary
	threshold := opts.DegreeThreshold

	var jobs []job
	switch a {
	case axioms.One, axioms.Two:
		solve := axioms.Axiom1
		if a == axioms.Two {
			solve = axioms.Axiom2
		}
		for i := range points {
			i := i
			jobs = append(jobs, func() (out []geom.Line) {
				for j := i + 1; j < len(points); j++ {
					out = append(out, solve(points[i], points[j])...)
				}
				return out
			})
		}

	case axioms.Three:
		for i := range lines {
			i := i
			jobs = append(jobs, func() (out []geom.Line) {
				for j := i + 1; j < len(lines); j++ {
					out = append(out, axioms.Axiom3(lines[i], lines[j])...)
				}
				return out
			})
		}

	case axioms.Four:
		for i := range points {
			i := i
			jobs = append(jobs, func() (out []geom.Line) {
				for _, l := range lines {
					out = append(out, axioms.Axiom4(points[i], l, boundary)...)
				}
				return out
			})
		}

	case axioms.Five:
		// The pivot and the moving point play different roles, so both orders
		// of every pair are tried.
		for i := range points {
			i := i
			jobs = append(jobs, func() (out []geom.Line) {
				for j := range points {
					if i == j {
						continue
					}
					for _, l := range lines {
						out = append(out, axioms.Axiom5(points[i], points[j], l, boundary)...)
					}
				}
				return out
			})
		}

	case axioms.Six:
		// Swapping both the points and the lines describes the same fold, so
		// point pairs are unordered and line pairs are ordered.
		for i := range points {
			i := i
			jobs = append(jobs, func() (out []geom.Line) {
				for j := i + 1; j < len(points); j++ {
					for k := range lines {
						for m := range lines {
							if k == m {
								continue
							}
							out = append(out, axioms.Axiom6(points[i], points[j], lines[k], lines[m], boundary, threshold)...)
						}
					}
				}
				return out
			})
		}

	case axioms.Seven:
		for i := range points {
			i := i
			jobs = append(jobs, func() (out []geom.Line) {
				for k := range lines {
					for m := range lines {
						if k == m {
							continue
						}
						out = append(out, axioms.Axiom7(points[i], lines[k], lines[m])...)
					}
				}
				return out
			})
		}

	default:
		throw.Fatalf("no solver for %v", a)
	}
	return jobs
}

// Every point where a new line meets an older line, or a later new line, and
// which lies inside the boundary. One batch per new line.
func (s *State) intersections(fresh, old []geom.Line, pool *parallel.WorkerPool) [][]geom.Vector {
	batches := make([][]geom.Vector, len(fresh))
	work := make([]func(), len(fresh))
	for i := range fresh {
		i := i
		work[i] = func() {
			var out []geom.Vector
			add := func(other geom.Line) {
				p, ok := fresh[i].Intersect(other)
				if ok && s.boundary.Contains(p) {
					out = append(out, p)
				}
			}
			for _, l := range old {
				add(l)
			}
			for _, l := range fresh[i+1:] {
				add(l)
			}
			batches[i] = out
		}
	}
	pool.ExecuteAll(work)
	return batches
}

// Solvers only build unit normals, but a near-degenerate configuration can
// still overflow. Such candidates must never reach an index.
func valid(l geom.Line) bool {
	return l.IsFinite() && geom.Equal(l.U.Magnitude(), 1)
}

func values[T any](entries []dedup.Counted[T]) []T {
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}
