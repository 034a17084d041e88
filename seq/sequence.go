// Package seq provides ordered sequence containers: a plain append-ordered
// sequence, a comparator-sorted sequence and a duplicate-rejecting sorted
// sequence. Searches return a Found snapshot carrying both the value and
// its position so callers can act on it without a second lookup.
package seq

import (
	"iter"
	"slices"

	"github.com/hupe1980/indexgo/compare"
)

// Found pairs a located value with the position it was found at. It is a
// snapshot: mutating the sequence afterwards does not update it.
type Found[T any] struct {
	Index int
	Value T
}

// RemoveHook observes elements about to be removed. It is invoked
// synchronously before physical removal and cannot veto it.
type RemoveHook[T any] func(f Found[T])

// Sequence is an ordered list of values with position-based and
// predicate-based search and notified removal.
//
// Sequence is not safe for concurrent mutation; callers requiring
// concurrent access must serialize externally.
type Sequence[T any] struct {
	items []T
	cmp   compare.Func[T]
	hooks []RemoveHook[T]
}

// Option configures a Sequence.
type Option[T any] func(*Sequence[T])

// WithComparator sets the per-instance comparator.
func WithComparator[T any](cmp compare.Func[T]) Option[T] {
	return func(s *Sequence[T]) {
		s.cmp = cmp
	}
}

// New creates an empty Sequence.
func New[T any](opts ...Option[T]) *Sequence[T] {
	s := &Sequence[T]{}

	for _, fn := range opts {
		if fn != nil {
			fn(s)
		}
	}

	return s
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// Values returns a copy of the elements in order.
func (s *Sequence[T]) Values() []T {
	return slices.Clone(s.items)
}

// All iterates the elements in order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Comparator returns the per-instance comparator, nil if none was set.
func (s *Sequence[T]) Comparator() compare.Func[T] {
	return s.cmp
}

// SetComparator replaces the per-instance comparator.
func (s *Sequence[T]) SetComparator(cmp compare.Func[T]) {
	s.cmp = cmp
}

// OnRemove subscribes a removal hook. Every subscribed hook is invoked,
// in subscription order, for each element about to be removed.
func (s *Sequence[T]) OnRemove(h RemoveHook[T]) {
	s.hooks = append(s.hooks, h)
}

// ByIndex returns the element at position i. ok=false if i is out of bounds.
func (s *Sequence[T]) ByIndex(i int) (Found[T], bool) {
	if i < 0 || i >= len(s.items) {
		return Found[T]{}, false
	}

	return Found[T]{Index: i, Value: s.items[i]}, true
}

// ByFunc scans forward and returns the first element for which pred
// reports true. ok=false if no element matches.
func (s *Sequence[T]) ByFunc(pred func(v T, i int) bool) (Found[T], bool) {
	for i, v := range s.items {
		if pred(v, i) {
			return Found[T]{Index: i, Value: v}, true
		}
	}

	return Found[T]{}, false
}

// Add appends values and returns a Found pointing at the last appended
// value. Adding nothing returns a Found with Index -1.
func (s *Sequence[T]) Add(values ...T) Found[T] {
	if len(values) == 0 {
		return Found[T]{Index: -1}
	}

	s.items = append(s.items, values...)

	last := len(s.items) - 1

	return Found[T]{Index: last, Value: s.items[last]}
}

// RemoveRange removes count elements starting at start and returns the
// number actually removed. Each element about to be removed is announced
// to the subscribed hooks before physical removal.
func (s *Sequence[T]) RemoveRange(start, count int) int {
	if start < 0 {
		count += start
		start = 0
	}
	if start >= len(s.items) || count <= 0 {
		return 0
	}
	if start+count > len(s.items) {
		count = len(s.items) - start
	}

	s.notifyRemoval(start, count)

	s.items = slices.Delete(s.items, start, start+count)

	return count
}

// RemoveFirst removes the first element, with the same hook contract as
// RemoveRange. ok=false if the sequence is empty.
func (s *Sequence[T]) RemoveFirst() (Found[T], bool) {
	f, ok := s.ByIndex(0)
	if !ok {
		return Found[T]{}, false
	}

	s.RemoveRange(0, 1)

	return f, true
}

// RemoveLast removes the last element, with the same hook contract as
// RemoveRange. ok=false if the sequence is empty.
func (s *Sequence[T]) RemoveLast() (Found[T], bool) {
	f, ok := s.ByIndex(len(s.items) - 1)
	if !ok {
		return Found[T]{}, false
	}

	s.RemoveRange(f.Index, 1)

	return f, true
}

// Clear removes all elements, announcing each to the subscribed hooks.
func (s *Sequence[T]) Clear() {
	s.RemoveRange(0, len(s.items))
}

// Swap exchanges the elements at positions i and j. All other elements
// keep their relative order. Out-of-bounds positions are ignored.
func (s *Sequence[T]) Swap(i, j int) {
	if i < 0 || i >= len(s.items) || j < 0 || j >= len(s.items) {
		return
	}

	s.items[i], s.items[j] = s.items[j], s.items[i]
}

// Move repositions the element at oldIndex so it ends up at newIndex.
// All other elements keep their relative order.
func (s *Sequence[T]) Move(oldIndex, newIndex int) {
	if oldIndex < 0 || oldIndex >= len(s.items) || newIndex < 0 || newIndex >= len(s.items) || oldIndex == newIndex {
		return
	}

	v := s.items[oldIndex]
	s.items = slices.Delete(s.items, oldIndex, oldIndex+1)
	s.items = slices.Insert(s.items, newIndex, v)
}

// DedupeSorted removes each element comparing equal to its immediate
// predecessor, keeping the first of each run. The sequence must already
// be ordered by the comparator; this is not enforced and the result on an
// unsorted sequence is unspecified. No-op without a comparator.
func (s *Sequence[T]) DedupeSorted() {
	if s.cmp == nil || len(s.items) < 2 {
		return
	}

	out := s.items[:1]
	for i := 1; i < len(s.items); i++ {
		if s.cmp(s.items[i], out[len(out)-1]) != 0 {
			out = append(out, s.items[i])
		}
	}

	s.items = out
}

func (s *Sequence[T]) notifyRemoval(start, count int) {
	if len(s.hooks) == 0 {
		return
	}

	for i := start; i < start+count; i++ {
		f := Found[T]{Index: i, Value: s.items[i]}
		for _, h := range s.hooks {
			h(f)
		}
	}
}
