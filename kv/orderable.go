package kv

import (
	"iter"

	"github.com/hupe1980/indexgo/seq"
)

// OrderableMap composes a Map with a sequence holding the key order.
// Every mutation touches both sides so they always contain exactly the
// same key set. Unlike the plain Map it supports explicit reordering and
// O(1) positional lookup via the key sequence.
type OrderableMap[K comparable, V any] struct {
	m     *Map[K, V]
	order *seq.Sequence[K]
}

// NewOrderable creates an empty OrderableMap.
func NewOrderable[K comparable, V any](opts ...Option[K, V]) *OrderableMap[K, V] {
	return &OrderableMap[K, V]{
		m:     New(opts...),
		order: seq.New[K](),
	}
}

// Len returns the number of entries.
func (m *OrderableMap[K, V]) Len() int {
	return m.m.Len()
}

// Has reports whether k is present.
func (m *OrderableMap[K, V]) Has(k K) bool {
	return m.m.Has(k)
}

// SetFold replaces the key folder; only allowed while empty.
func (m *OrderableMap[K, V]) SetFold(fold func(K) K) error {
	return m.m.SetFold(fold)
}

// ByKey returns the entry stored under k. ok=false if absent.
func (m *OrderableMap[K, V]) ByKey(k K) (Found[K, V], bool) {
	return m.m.ByKey(k)
}

// ByKeyRequired is ByKey with a *NotFoundError on a miss.
func (m *OrderableMap[K, V]) ByKeyRequired(k K, label string) (Found[K, V], error) {
	return m.m.ByKeyRequired(k, label)
}

// ByFunc scans entries in key order and returns the first match.
func (m *OrderableMap[K, V]) ByFunc(pred func(v V, k K, i int) bool) (FoundAt[K, V], bool) {
	f, ok := m.order.ByFunc(func(k K, i int) bool {
		v, _ := m.m.ByKey(k)
		return pred(v.Value, k, i)
	})
	if !ok {
		return FoundAt[K, V]{}, false
	}

	v, _ := m.m.ByKey(f.Value)

	return FoundAt[K, V]{Key: f.Value, Value: v.Value, Index: f.Index}, true
}

// ByIndex returns the entry at position i in key order. O(1) via the key
// sequence rather than a linear walk.
func (m *OrderableMap[K, V]) ByIndex(i int) (FoundAt[K, V], bool) {
	f, ok := m.order.ByIndex(i)
	if !ok {
		return FoundAt[K, V]{}, false
	}

	v, ok := m.m.ByKey(f.Value)
	if !ok {
		return FoundAt[K, V]{}, false
	}

	return FoundAt[K, V]{Key: f.Value, Value: v.Value, Index: i}, true
}

// Set inserts or replaces the entry under k, appending brand-new keys to
// the key order. Reports whether this call inserted a new key.
func (m *OrderableMap[K, V]) Set(k K, v V) (inserted bool) {
	if m.m.Set(k, v) {
		m.order.Add(m.m.FoldKey(k))
		return true
	}

	return false
}

// Delete removes the entry under k from both sides.
func (m *OrderableMap[K, V]) Delete(k K) bool {
	if !m.m.Delete(k) {
		return false
	}

	folded := m.m.FoldKey(k)
	if f, ok := m.order.ByFunc(func(key K, _ int) bool { return key == folded }); ok {
		m.order.RemoveRange(f.Index, 1)
	}

	return true
}

// Clear removes all entries from both sides.
func (m *OrderableMap[K, V]) Clear() {
	m.m.Clear()
	m.order.Clear()
}

// IndexOf returns k's position in key order, -1 if absent.
func (m *OrderableMap[K, V]) IndexOf(k K) int {
	folded := m.m.FoldKey(k)

	f, ok := m.order.ByFunc(func(key K, _ int) bool { return key == folded })
	if !ok {
		return -1
	}

	return f.Index
}

// Move repositions the key at oldIndex so it ends up at newIndex.
func (m *OrderableMap[K, V]) Move(oldIndex, newIndex int) {
	m.order.Move(oldIndex, newIndex)
}

// MoveToFirst moves the key at position i to the front.
func (m *OrderableMap[K, V]) MoveToFirst(i int) {
	m.order.Move(i, 0)
}

// MoveToLast moves the key at position i to the back.
func (m *OrderableMap[K, V]) MoveToLast(i int) {
	m.order.Move(i, m.order.Len()-1)
}

// Keys returns a copy of the keys in their current explicit order.
func (m *OrderableMap[K, V]) Keys() []K {
	return m.order.Values()
}

// All iterates entries in their current explicit key order.
func (m *OrderableMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order.All() {
			v, _ := m.m.ByKey(k)
			if !yield(k, v.Value) {
				return
			}
		}
	}
}
