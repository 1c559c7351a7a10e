// Package dedup collapses numerically near-duplicate points and lines while
// counting how many times each one was produced.
//
// The domain is cut into cubic cells at least geom.Epsilon wide, so two
// equivalent values always sit in the same cell or in neighboring ones. A
// lookup only visits those few buckets, which keeps insertion cost flat no
// matter how many entries the index holds.
package dedup

import (
	"math"

	"github.com/osuushi/origami/internal/geom"
	"github.com/osuushi/origami/internal/throw"
)

// Default bucket width. It must never drop below geom.Epsilon.
const CellSize = 4 * geom.Epsilon

type Cell [3]int64

// A value with its multiplicity: the number of independent constructions
// that produced it.
type Counted[T any] struct {
	Value T
	Count int
}

// Space describes how one kind of value maps onto cells.
type Space[T any] interface {
	// The cell v is stored in.
	Home(v T) Cell
	// Append every cell that could hold a value equivalent to v.
	Probes(v T, cells []Cell) []Cell
	Equivalent(a, b T) bool
	Valid(v T) bool
}

// An Index is not safe for concurrent use. The round driver only touches it
// from its merge phase.
type Index[T any] struct {
	space   Space[T]
	entries []Counted[T]
	buckets map[Cell][]int
	scratch []Cell
}

func New[T any](space Space[T]) *Index[T] {
	return &Index[T]{
		space:   space,
		buckets: make(map[Cell][]int),
	}
}

func (ix *Index[T]) Len() int {
	return len(ix.entries)
}

// Insert v with a count of one, or add one to the count of the entry it is
// equivalent to. Returns true when v was new.
func (ix *Index[T]) Push(v T) bool {
	return ix.add(v, 1)
}

// Duplicate check: if an equivalent entry exists, add one to its count and
// return true. Never inserts.
func (ix *Index[T]) Bump(v T) bool {
	ix.check(v)
	i := ix.find(v)
	if i < 0 {
		return false
	}
	ix.entries[i].Count++
	return true
}

func (ix *Index[T]) Contains(v T) bool {
	return ix.find(v) >= 0
}

// The stored entry equivalent to v, if any.
func (ix *Index[T]) Find(v T) (Counted[T], bool) {
	i := ix.find(v)
	if i < 0 {
		return Counted[T]{}, false
	}
	return ix.entries[i], true
}

// A copy of every entry in insertion order.
func (ix *Index[T]) Flatten() []Counted[T] {
	out := make([]Counted[T], len(ix.entries))
	copy(out, ix.entries)
	return out
}

// Fold other into ix. Counts of equivalent entries are summed; the rest are
// inserted with their counts, in other's insertion order.
func (ix *Index[T]) Merge(other *Index[T]) {
	for _, e := range other.entries {
		ix.add(e.Value, e.Count)
	}
}

func (ix *Index[T]) add(v T, n int) bool {
	ix.check(v)
	if i := ix.find(v); i >= 0 {
		ix.entries[i].Count += n
		return false
	}
	cell := ix.space.Home(v)
	ix.buckets[cell] = append(ix.buckets[cell], len(ix.entries))
	ix.entries = append(ix.entries, Counted[T]{Value: v, Count: n})
	return true
}

// Index of the earliest stored entry equivalent to v, or -1.
func (ix *Index[T]) find(v T) int {
	ix.scratch = ix.space.Probes(v, ix.scratch[:0])
	best := -1
	for _, cell := range ix.scratch {
		for _, i := range ix.buckets[cell] {
			if (best < 0 || i < best) && ix.space.Equivalent(ix.entries[i].Value, v) {
				best = i
				break
			}
		}
	}
	return best
}

// NaN or Inf would land in a garbage cell and never match again. Callers
// filter those out, so reaching this is a bug.
func (ix *Index[T]) check(v T) {
	if !ix.space.Valid(v) {
		throw.Fatalf("non-finite value %v offered to dedup index", v)
	}
}

func cellOf(f, size float64) int64 {
	return int64(math.Floor(f / size))
}
