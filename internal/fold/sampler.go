package fold

import (
	"sort"

	"github.com/osuushi/origami/internal/axioms"
	"github.com/osuushi/origami/internal/dedup"
	"github.com/pkg/errors"
)

// Strategy picks which accumulated entries an axiom gets to see in a round.
// The number of candidates grows with a high power of the input size (axiom 6
// is quadratic in both points and lines), so later rounds usually run on a
// subset.
type Strategy string

const (
	// Every entry, limits are ignored.
	SampleAll Strategy = "all"
	// The K entries with the highest multiplicity. Ties go to the entry
	// discovered first.
	SampleTopK Strategy = "top-k"
	// Every entry whose multiplicity is at least K.
	SampleMinCount Strategy = "min-count"
)

func (s Strategy) Valid() bool {
	switch s {
	case SampleAll, SampleTopK, SampleMinCount:
		return true
	}
	return false
}

// Limit is the K of a strategy for points and for lines. Zero means no limit.
type Limit struct {
	Points int `yaml:"points"`
	Lines  int `yaml:"lines"`
}

// A Rule takes effect at round From and stays in effect until a rule with a
// later From replaces it. Axioms may override the rule's own limit.
type Rule struct {
	From   int `yaml:"from"`
	Limit  `yaml:",inline"`
	Axioms map[axioms.Axiom]Limit `yaml:"axioms,omitempty"`
}

type Sampler struct {
	Strategy Strategy `yaml:"strategy"`
	Rules    []Rule   `yaml:"rules"`
}

// Top-k from round 2 on. Round 1 runs on everything. Axioms 5 to 7 take
// several inputs of each kind and get tighter limits, axiom 6 the tightest.
func DefaultSampler() Sampler {
	return Sampler{
		Strategy: SampleTopK,
		Rules: []Rule{
			{
				From:  2,
				Limit: Limit{Points: 48, Lines: 48},
				Axioms: map[axioms.Axiom]Limit{
					axioms.Five:  {Points: 24, Lines: 24},
					axioms.Six:   {Points: 12, Lines: 12},
					axioms.Seven: {Points: 24, Lines: 24},
				},
			},
			{
				From:  3,
				Limit: Limit{Points: 24, Lines: 24},
				Axioms: map[axioms.Axiom]Limit{
					axioms.Five:  {Points: 12, Lines: 12},
					axioms.Six:   {Points: 8, Lines: 8},
					axioms.Seven: {Points: 12, Lines: 12},
				},
			},
		},
	}
}

func (s Sampler) Validate() error {
	if s.Strategy != "" && !s.Strategy.Valid() {
		return errors.Errorf("unknown sampling strategy %q", s.Strategy)
	}
	for i, rule := range s.Rules {
		if rule.From < 1 {
			return errors.Errorf("sampling rule %d starts at round %d, rounds start at 1", i, rule.From)
		}
		if err := rule.Limit.validate(); err != nil {
			return errors.Wrapf(err, "sampling rule %d", i)
		}
		for a, limit := range rule.Axioms {
			if !a.Valid() {
				return errors.Errorf("sampling rule %d overrides unknown axiom %d", i, int(a))
			}
			if err := limit.validate(); err != nil {
				return errors.Wrapf(err, "sampling rule %d, %v", i, a)
			}
		}
	}
	return nil
}

func (l Limit) validate() error {
	if l.Points < 0 || l.Lines < 0 {
		return errors.Errorf("negative limit %+v", l)
	}
	return nil
}

// The limit axiom a runs under in the given round.
func (s Sampler) Limit(round int, a axioms.Axiom) Limit {
	var (
		active *Rule
		from   int
	)
	for i := range s.Rules {
		rule := &s.Rules[i]
		if rule.From <= round && (active == nil || rule.From >= from) {
			active, from = rule, rule.From
		}
	}
	if active == nil {
		return Limit{}
	}
	if override, ok := active.Axioms[a]; ok {
		return override
	}
	return active.Limit
}

// Sample the values of entries under the strategy, keeping their discovery
// order.
func Sample[T any](strategy Strategy, k int, entries []dedup.Counted[T]) []T {
	var keep []int
	switch {
	case k <= 0 || strategy == SampleAll || strategy == "":
		keep = nil
	case strategy == SampleTopK:
		if k < len(entries) {
			order := make([]int, len(entries))
			for i := range order {
				order[i] = i
			}
			sort.SliceStable(order, func(i, j int) bool {
				return entries[order[i]].Count > entries[order[j]].Count
			})
			keep = order[:k]
			sort.Ints(keep)
		}
	case strategy == SampleMinCount:
		keep = make([]int, 0, len(entries))
		for i, e := range entries {
			if e.Count >= k {
				keep = append(keep, i)
			}
		}
	}

	if keep == nil {
		return values(entries)
	}
	out := make([]T, len(keep))
	for i, j := range keep {
		out[i] = entries[j].Value
	}
	return out
}
