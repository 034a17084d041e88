package seq

import (
	"slices"

	"github.com/hupe1980/indexgo/compare"
)

// UniqueSortedSequence is a SortedSequence that silently discards values
// already present (comparator result 0) on insert.
type UniqueSortedSequence[T any] struct {
	SortedSequence[T]
}

// NewUniqueSorted creates an empty UniqueSortedSequence ordered by cmp.
func NewUniqueSorted[T any](cmp compare.Func[T]) *UniqueSortedSequence[T] {
	s := &UniqueSortedSequence[T]{}
	s.cmp = cmp
	s.insertIdx = -1

	return s
}

// Add inserts each value at its sort position unless an equal value is
// already present. Returns a Found pointing at the last value looked at,
// whether it was inserted or found already present; adding nothing returns
// a Found with Index -1.
func (s *UniqueSortedSequence[T]) Add(values ...T) Found[T] {
	f := Found[T]{Index: -1}

	for _, v := range values {
		i, ok := slices.BinarySearchFunc(s.items, v, s.effective())
		s.insertIdx = i
		if ok {
			f = Found[T]{Index: i, Value: s.items[i]}
			continue
		}

		s.items = slices.Insert(s.items, i, v)
		f = Found[T]{Index: i, Value: v}
	}

	return f
}
