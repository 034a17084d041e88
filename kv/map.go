// Package kv provides associative containers: an insertion-ordered map with
// optional one-way key folding, an explicitly orderable map and a map whose
// keys are always kept in comparator order with prefix lookup.
package kv

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Found pairs a located value with the key it was found under. It is a
// snapshot: mutating the map afterwards does not update it.
type Found[K comparable, V any] struct {
	Key   K
	Value V
}

// FoundAt additionally carries the iteration position the value was found
// at. Only searches that walk the map produce one; exact-key lookup
// deliberately does not, since computing the position would cost a scan.
type FoundAt[K comparable, V any] struct {
	Key   K
	Value V
	Index int
}

// NotFoundError is returned by required lookups that fail to locate their
// target. Label is caller-supplied, for diagnostics only.
type NotFoundError struct {
	Label string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Label)
}

// ConfigurationError indicates a container was configured in an
// unsupported way, e.g. changing key folding while entries exist.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// CaseFold is the key folder for case-insensitive string maps.
func CaseFold(s string) string {
	return strings.ToLower(s)
}

// Map is a key-value store with near-O(1) exact-key lookup and iteration
// in first-insertion order, stable across subsequent updates to the same
// key. An optional folder normalizes keys one-way on every access.
//
// Map is not safe for concurrent mutation; callers requiring concurrent
// access must serialize externally.
type Map[K comparable, V any] struct {
	entries map[K]V
	order   []K
	fold    func(K) K
}

// Option configures a Map.
type Option[K comparable, V any] func(*Map[K, V])

// WithFold sets the one-way key folder, e.g. kv.CaseFold for
// case-insensitive string keys.
func WithFold[K comparable, V any](fold func(K) K) Option[K, V] {
	return func(m *Map[K, V]) {
		m.fold = fold
	}
}

// New creates an empty Map.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		entries: make(map[K]V),
	}

	for _, fn := range opts {
		if fn != nil {
			fn(m)
		}
	}

	return m
}

// FoldKey returns the stored form of k: folded if a folder is configured,
// k itself otherwise.
func (m *Map[K, V]) FoldKey(k K) K {
	if m.fold != nil {
		return m.fold(k)
	}

	return k
}

// SetFold replaces the key folder. Folding may only change while the map
// holds zero entries; otherwise a *ConfigurationError is returned.
func (m *Map[K, V]) SetFold(fold func(K) K) error {
	if len(m.entries) > 0 {
		return &ConfigurationError{Reason: "cannot change key folding on a non-empty container"}
	}

	m.fold = fold

	return nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.entries[m.FoldKey(k)]
	return ok
}

// ByKey returns the entry stored under k. ok=false if absent.
func (m *Map[K, V]) ByKey(k K) (Found[K, V], bool) {
	k = m.FoldKey(k)

	v, ok := m.entries[k]
	if !ok {
		return Found[K, V]{}, false
	}

	return Found[K, V]{Key: k, Value: v}, true
}

// ByKeyRequired is ByKey for entries that must exist: a missing key yields
// a *NotFoundError carrying the caller-supplied label.
func (m *Map[K, V]) ByKeyRequired(k K, label string) (Found[K, V], error) {
	f, ok := m.ByKey(k)
	if !ok {
		return Found[K, V]{}, &NotFoundError{Label: label}
	}

	return f, nil
}

// ByFunc scans entries in insertion order with a running position counter
// and returns the first for which pred reports true. ok=false if none match.
func (m *Map[K, V]) ByFunc(pred func(v V, k K, i int) bool) (FoundAt[K, V], bool) {
	for i, k := range m.order {
		v := m.entries[k]
		if pred(v, k, i) {
			return FoundAt[K, V]{Key: k, Value: v, Index: i}, true
		}
	}

	return FoundAt[K, V]{}, false
}

// Set inserts or replaces the entry under k. It reports whether this call
// inserted a brand-new key, so composed structures can maintain size
// counters without double counting.
func (m *Map[K, V]) Set(k K, v V) (inserted bool) {
	k = m.FoldKey(k)

	_, exists := m.entries[k]
	m.entries[k] = v

	if !exists {
		m.order = append(m.order, k)
	}

	return !exists
}

// Delete removes the entry under k and reports whether it existed.
func (m *Map[K, V]) Delete(k K) bool {
	k = m.FoldKey(k)

	if _, ok := m.entries[k]; !ok {
		return false
	}

	delete(m.entries, k)

	if i := slices.Index(m.order, k); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}

	return true
}

// Clear removes all entries. The configured folder is kept.
func (m *Map[K, V]) Clear() {
	m.entries = make(map[K]V)
	m.order = m.order[:0]
}

// IndexOf returns k's position in insertion order, -1 if absent. This is a
// linear walk; use OrderableMap for O(1) positional access.
func (m *Map[K, V]) IndexOf(k K) int {
	return slices.Index(m.order, m.FoldKey(k))
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.order)
}

// All iterates entries in first-insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// ByValue scans in insertion order for the first entry equal to v.
func ByValue[K comparable, V comparable](m *Map[K, V], v V) (FoundAt[K, V], bool) {
	return m.ByFunc(func(val V, _ K, _ int) bool {
		return val == v
	})
}

// ByValueRequired is ByValue for values that must exist: a missing value
// yields a *NotFoundError carrying the caller-supplied label.
func ByValueRequired[K comparable, V comparable](m *Map[K, V], v V, label string) (FoundAt[K, V], error) {
	f, ok := ByValue(m, v)
	if !ok {
		return FoundAt[K, V]{}, &NotFoundError{Label: label}
	}

	return f, nil
}
