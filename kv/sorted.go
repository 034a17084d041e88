package kv

import (
	"iter"
	"strings"

	"github.com/hupe1980/indexgo/compare"
	"github.com/hupe1980/indexgo/seq"
)

// SortedMap composes a Map with a unique-sorted sequence holding the keys,
// so key order is always the comparator order. Because the key sequence
// retains the insertion index computed by its last binary search, prefix
// style lookups resolve in O(log n); see ByPrefix.
type SortedMap[K comparable, V any] struct {
	m    *Map[K, V]
	keys *seq.UniqueSortedSequence[K]
}

// NewSorted creates an empty SortedMap with keys ordered by cmp.
func NewSorted[K comparable, V any](cmp compare.Func[K], opts ...Option[K, V]) *SortedMap[K, V] {
	return &SortedMap[K, V]{
		m:    New(opts...),
		keys: seq.NewUniqueSorted(cmp),
	}
}

// Len returns the number of entries.
func (m *SortedMap[K, V]) Len() int {
	return m.m.Len()
}

// Has reports whether k is present.
func (m *SortedMap[K, V]) Has(k K) bool {
	return m.m.Has(k)
}

// SetFold replaces the key folder; only allowed while empty.
func (m *SortedMap[K, V]) SetFold(fold func(K) K) error {
	return m.m.SetFold(fold)
}

// SetComparator replaces the key comparator and immediately re-sorts the
// key sequence.
func (m *SortedMap[K, V]) SetComparator(cmp compare.Func[K]) {
	m.keys.SetComparator(cmp)
}

// SetReversed toggles key order reversal and immediately re-sorts.
func (m *SortedMap[K, V]) SetReversed(reversed bool) {
	m.keys.SetReversed(reversed)
}

// ByKey returns the entry stored under k. ok=false if absent.
func (m *SortedMap[K, V]) ByKey(k K) (Found[K, V], bool) {
	return m.m.ByKey(k)
}

// ByKeyRequired is ByKey with a *NotFoundError on a miss.
func (m *SortedMap[K, V]) ByKeyRequired(k K, label string) (Found[K, V], error) {
	return m.m.ByKeyRequired(k, label)
}

// ByFunc scans entries in key order and returns the first match.
func (m *SortedMap[K, V]) ByFunc(pred func(v V, k K, i int) bool) (FoundAt[K, V], bool) {
	f, ok := m.keys.ByFunc(func(k K, i int) bool {
		v, _ := m.m.ByKey(k)
		return pred(v.Value, k, i)
	})
	if !ok {
		return FoundAt[K, V]{}, false
	}

	v, _ := m.m.ByKey(f.Value)

	return FoundAt[K, V]{Key: f.Value, Value: v.Value, Index: f.Index}, true
}

// ByIndex returns the entry at position i in sort order.
func (m *SortedMap[K, V]) ByIndex(i int) (FoundAt[K, V], bool) {
	f, ok := m.keys.ByIndex(i)
	if !ok {
		return FoundAt[K, V]{}, false
	}

	v, ok := m.m.ByKey(f.Value)
	if !ok {
		return FoundAt[K, V]{}, false
	}

	return FoundAt[K, V]{Key: f.Value, Value: v.Value, Index: i}, true
}

// Set inserts or replaces the entry under k, keeping the key sequence
// sorted. Reports whether this call inserted a new key.
func (m *SortedMap[K, V]) Set(k K, v V) (inserted bool) {
	if m.m.Set(k, v) {
		m.keys.Add(m.m.FoldKey(k))
		return true
	}

	return false
}

// Delete removes the entry under k from both sides.
func (m *SortedMap[K, V]) Delete(k K) bool {
	if !m.m.Delete(k) {
		return false
	}

	if f, ok := m.keys.ByValue(m.m.FoldKey(k)); ok {
		m.keys.RemoveRange(f.Index, 1)
	}

	return true
}

// Clear removes all entries from both sides.
func (m *SortedMap[K, V]) Clear() {
	m.m.Clear()
	m.keys.Clear()
}

// Keys returns a copy of the keys in sort order.
func (m *SortedMap[K, V]) Keys() []K {
	return m.keys.Values()
}

// All iterates entries in key sort order.
func (m *SortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys.All() {
			v, _ := m.m.ByKey(k)
			if !yield(k, v.Value) {
				return
			}
		}
	}
}

// ByPrefix resolves "first match at or after a prefix" in O(log n): an
// exact match for partial wins; otherwise the key at the retained
// insertion index matches if it textually starts with partial; otherwise
// there is no match.
func ByPrefix[K ~string, V any](m *SortedMap[K, V], partial K) (Found[K, V], bool) {
	partial = m.m.FoldKey(partial)

	if f, ok := m.keys.ByValue(partial); ok {
		return m.ByKey(f.Value)
	}

	f, ok := m.keys.ByIndex(m.keys.InsertionIndex())
	if !ok || !strings.HasPrefix(string(f.Value), string(partial)) {
		return Found[K, V]{}, false
	}

	return m.ByKey(f.Value)
}
