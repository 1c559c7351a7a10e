package fold

import (
	"fmt"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/origami/internal/axioms"
)

type RoundStats struct {
	Round int
	// Lines produced by each axiom, before deduplication.
	Candidates map[axioms.Axiom]int
	// Candidates thrown away for being non-finite.
	Dropped int
	// Boundary-contained intersections computed, before deduplication.
	Intersections int
	NewLines      int
	NewPoints     int
	// Totals after the round was merged.
	Lines   int
	Points  int
	Elapsed time.Duration
}

func (rs RoundStats) TotalCandidates() int {
	total := 0
	for _, n := range rs.Candidates {
		total += n
	}
	return total
}

func (rs RoundStats) String() string {
	var perAxiom []string
	for _, a := range axioms.All() {
		if n, ok := rs.Candidates[a]; ok {
			perAxiom = append(perAxiom, fmt.Sprintf("%d:%d", int(a), n))
		}
	}
	return fmt.Sprintf("round %d: %v new lines, %v new points (%d lines, %d points) from %d candidates [%s] in %v",
		rs.Round,
		aurora.Green(rs.NewLines),
		aurora.Green(rs.NewPoints),
		rs.Lines,
		rs.Points,
		rs.TotalCandidates(),
		strings.Join(perAxiom, " "),
		rs.Elapsed.Round(time.Millisecond),
	)
}
