package seq

import (
	"slices"

	"github.com/hupe1980/indexgo/compare"
)

// SortedSequence is a Sequence that keeps itself ordered by its comparator,
// optionally reversed. Insertion uses binary search for the position and
// the computed insertion index is retained even on a miss, for callers
// that need "first at or after" style queries.
type SortedSequence[T any] struct {
	Sequence[T]

	reversed  bool
	insertIdx int
}

// NewSorted creates an empty SortedSequence ordered by cmp.
func NewSorted[T any](cmp compare.Func[T]) *SortedSequence[T] {
	s := &SortedSequence[T]{insertIdx: -1}
	s.cmp = cmp

	return s
}

func (s *SortedSequence[T]) effective() compare.Func[T] {
	if s.reversed {
		return compare.Reverse(s.cmp)
	}

	return s.cmp
}

// Reversed reports whether the sort order is reversed.
func (s *SortedSequence[T]) Reversed() bool {
	return s.reversed
}

// SetReversed toggles reversal and immediately re-sorts.
func (s *SortedSequence[T]) SetReversed(reversed bool) {
	if s.reversed == reversed {
		return
	}

	s.reversed = reversed
	s.resort()
}

// SetComparator replaces the comparator and immediately re-sorts.
func (s *SortedSequence[T]) SetComparator(cmp compare.Func[T]) {
	s.cmp = cmp
	s.resort()
}

// Add inserts each value at its sort position and returns a Found pointing
// at the last inserted value. Adding nothing returns a Found with Index -1.
func (s *SortedSequence[T]) Add(values ...T) Found[T] {
	f := Found[T]{Index: -1}

	for _, v := range values {
		i, _ := slices.BinarySearchFunc(s.items, v, s.effective())
		s.insertIdx = i
		s.items = slices.Insert(s.items, i, v)
		f = Found[T]{Index: i, Value: v}
	}

	return f
}

// ByValue binary-searches for an exact match (comparator result 0). On a
// miss the would-be insertion index is retained; see InsertionIndex.
func (s *SortedSequence[T]) ByValue(v T) (Found[T], bool) {
	i, ok := slices.BinarySearchFunc(s.items, v, s.effective())
	s.insertIdx = i

	if !ok {
		return Found[T]{}, false
	}

	return Found[T]{Index: i, Value: s.items[i]}, true
}

// InsertionIndex returns the insertion index computed by the most recent
// Add or ByValue call, -1 if neither has run yet.
func (s *SortedSequence[T]) InsertionIndex() int {
	return s.insertIdx
}

// Splice removes count elements starting at start and re-adds the given
// values in sorted order. Position-directed insertion is unsupported on a
// sorted sequence because position is entirely determined by sort order.
func (s *SortedSequence[T]) Splice(start, count int, values ...T) {
	s.RemoveRange(start, count)
	s.Add(values...)
}

func (s *SortedSequence[T]) resort() {
	slices.SortStableFunc(s.items, s.effective())
}
