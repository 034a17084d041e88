// Package dualkey provides a two-dimensional associative container: every
// stored triple (key1, key2, value) is reachable through a primary index
// key1 → (key2 → value) and mirrored into a secondary index
// key2 → {key1 set}. Both indexes are kept consistent under every
// mutation, so the triple count always equals the entries reachable from
// either side.
package dualkey

import (
	"iter"

	"github.com/hupe1980/indexgo/kv"
)

// Found pairs a located value with its full locator: both keys plus the
// positions of key1 in the primary index and key2 in its sub-container.
// It is a snapshot: mutating the container afterwards does not update it.
type Found[K1, K2 comparable, V any] struct {
	Key1   K1
	Key2   K2
	Value  V
	Index1 int
	Index2 int
}

// Map is the dual-key associative container.
//
// The two sides are deliberately asymmetric: ByKey1 hands out the already
// materialized sub-container, while ByKey2 joins the secondary membership
// set against the primary index on every call, trading cost for an
// always-current view.
//
// Map is not safe for concurrent mutation; callers requiring concurrent
// access must serialize externally.
type Map[K1, K2 comparable, V any] struct {
	primary   *kv.Map[K1, *kv.Map[K2, V]]
	secondary *kv.Map[K2, *kv.Map[K1, struct{}]]

	fold1 func(K1) K1
	fold2 func(K2) K2

	size int
}

// Option configures a Map.
type Option[K1, K2 comparable, V any] func(*Map[K1, K2, V])

// WithFold1 sets the one-way folder for the key1 dimension.
func WithFold1[K1, K2 comparable, V any](fold func(K1) K1) Option[K1, K2, V] {
	return func(m *Map[K1, K2, V]) {
		m.fold1 = fold
	}
}

// WithFold2 sets the one-way folder for the key2 dimension.
func WithFold2[K1, K2 comparable, V any](fold func(K2) K2) Option[K1, K2, V] {
	return func(m *Map[K1, K2, V]) {
		m.fold2 = fold
	}
}

// New creates an empty dual-key Map.
func New[K1, K2 comparable, V any](opts ...Option[K1, K2, V]) *Map[K1, K2, V] {
	m := &Map[K1, K2, V]{}

	for _, fn := range opts {
		if fn != nil {
			fn(m)
		}
	}

	m.primary = kv.New(kv.WithFold[K1, *kv.Map[K2, V]](m.fold1))
	m.secondary = kv.New(kv.WithFold[K2, *kv.Map[K1, struct{}]](m.fold2))

	return m
}

// SetFold1 replaces the key1 folder; only allowed while empty.
func (m *Map[K1, K2, V]) SetFold1(fold func(K1) K1) error {
	if m.size > 0 {
		return &kv.ConfigurationError{Reason: "cannot change key folding on a non-empty container"}
	}

	m.fold1 = fold

	return m.primary.SetFold(fold)
}

// SetFold2 replaces the key2 folder; only allowed while empty.
func (m *Map[K1, K2, V]) SetFold2(fold func(K2) K2) error {
	if m.size > 0 {
		return &kv.ConfigurationError{Reason: "cannot change key folding on a non-empty container"}
	}

	m.fold2 = fold

	return m.secondary.SetFold(fold)
}

// Len returns the number of stored triples.
func (m *Map[K1, K2, V]) Len() int {
	return m.size
}

// Set inserts or replaces the value stored under (key1, key2).
func (m *Map[K1, K2, V]) Set(key1 K1, key2 K2, value V) {
	m.setTriple(key1, key2, value)
}

// ByKeys returns the value stored under (key1, key2). ok=false if either
// key is absent.
func (m *Map[K1, K2, V]) ByKeys(key1 K1, key2 K2) (Found[K1, K2, V], bool) {
	sub, ok := m.primary.ByKey(key1)
	if !ok {
		return Found[K1, K2, V]{}, false
	}

	f, ok := sub.Value.ByKey(key2)
	if !ok {
		return Found[K1, K2, V]{}, false
	}

	return Found[K1, K2, V]{
		Key1:   sub.Key,
		Key2:   f.Key,
		Value:  f.Value,
		Index1: m.primary.IndexOf(sub.Key),
		Index2: sub.Value.IndexOf(f.Key),
	}, true
}

// ByKey1 returns key1's materialized sub-container (key2 → value).
// The returned map is live; mutating it directly breaks the mirror
// invariant — treat it as read-only.
func (m *Map[K1, K2, V]) ByKey1(key1 K1) (*kv.Map[K2, V], bool) {
	f, ok := m.primary.ByKey(key1)
	if !ok {
		return nil, false
	}

	return f.Value, true
}

// ByKey2 synthesizes a fresh key1 → value container by joining the
// secondary membership set for key2 with a primary lookup per member. It
// is rebuilt on every call and reflects current state at some extra cost.
func (m *Map[K1, K2, V]) ByKey2(key2 K2) (*kv.Map[K1, V], bool) {
	members, ok := m.secondary.ByKey(key2)
	if !ok {
		return nil, false
	}

	out := kv.New(kv.WithFold[K1, V](m.fold1))
	for k1 := range members.Value.All() {
		if f, ok := m.ByKeys(k1, key2); ok {
			out.Set(f.Key1, f.Value)
		}
	}

	return out, true
}

// Delete removes the triple stored under (key1, key2) and reports whether
// it existed. The size decreases by exactly 1 on success.
func (m *Map[K1, K2, V]) Delete(key1 K1, key2 K2) bool {
	return m.deleteTriple(key1, key2)
}

// DeleteKey1 cascade-removes every triple stored under key1 across both
// indexes and returns the removed-triple count.
func (m *Map[K1, K2, V]) DeleteKey1(key1 K1) int {
	sub, ok := m.primary.ByKey(key1)
	if !ok {
		return 0
	}

	removed := 0
	for _, key2 := range sub.Value.Keys() {
		if m.deleteTriple(sub.Key, key2) {
			removed++
		}
	}

	return removed
}

// DeleteKey2 cascade-removes every triple stored under key2 across both
// indexes and returns the removed-triple count.
func (m *Map[K1, K2, V]) DeleteKey2(key2 K2) int {
	members, ok := m.secondary.ByKey(key2)
	if !ok {
		return 0
	}

	removed := 0
	for _, key1 := range members.Value.Keys() {
		if m.deleteTriple(key1, members.Key) {
			removed++
		}
	}

	return removed
}

// Clear removes all triples from both indexes. The configured folders are
// kept.
func (m *Map[K1, K2, V]) Clear() {
	m.primary.Clear()
	m.secondary.Clear()
	m.size = 0
}

// Key1s returns the key1 values in primary insertion order.
func (m *Map[K1, K2, V]) Key1s() []K1 {
	return m.primary.Keys()
}

// Key2s returns the key2 values in secondary insertion order.
func (m *Map[K1, K2, V]) Key2s() []K2 {
	return m.secondary.Keys()
}

// All iterates the stored triples: outer by primary insertion order,
// inner by each sub-container's insertion order.
func (m *Map[K1, K2, V]) All() iter.Seq[Found[K1, K2, V]] {
	return func(yield func(Found[K1, K2, V]) bool) {
		i1 := 0
		for k1, sub := range m.primary.All() {
			i2 := 0
			for k2, v := range sub.All() {
				f := Found[K1, K2, V]{Key1: k1, Key2: k2, Value: v, Index1: i1, Index2: i2}
				if !yield(f) {
					return
				}
				i2++
			}
			i1++
		}
	}
}

// setTriple is the single write path for insertion: both indexes are
// updated within one logical step so no caller observes one side without
// the other.
func (m *Map[K1, K2, V]) setTriple(key1 K1, key2 K2, value V) {
	sub, ok := m.primary.ByKey(key1)
	if !ok {
		fresh := kv.New(kv.WithFold[K2, V](m.fold2))
		m.primary.Set(key1, fresh)
		sub = kv.Found[K1, *kv.Map[K2, V]]{Key: m.primary.FoldKey(key1), Value: fresh}
	}

	// Only a brand-new key2 under this key1 grows the triple count.
	if sub.Value.Set(key2, value) {
		m.size++
	}

	members, ok := m.secondary.ByKey(key2)
	if !ok {
		fresh := kv.New(kv.WithFold[K1, struct{}](m.fold1))
		m.secondary.Set(key2, fresh)
		members = kv.Found[K2, *kv.Map[K1, struct{}]]{Key: m.secondary.FoldKey(key2), Value: fresh}
	}

	members.Value.Set(key1, struct{}{})
}

// deleteTriple is the single write path for removal, with empty-bucket
// pruning on both indexes.
func (m *Map[K1, K2, V]) deleteTriple(key1 K1, key2 K2) bool {
	sub, ok := m.primary.ByKey(key1)
	if !ok {
		return false
	}

	if !sub.Value.Delete(key2) {
		return false
	}

	if sub.Value.Len() == 0 {
		m.primary.Delete(key1)
	}

	if members, ok := m.secondary.ByKey(key2); ok {
		members.Value.Delete(key1)
		if members.Value.Len() == 0 {
			m.secondary.Delete(key2)
		}
	}

	m.size--

	return true
}
