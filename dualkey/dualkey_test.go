package dualkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/indexgo/kv"
)

// pairsViaKey1 counts the (key2 → value) entries reachable from the
// primary side; pairsViaKey2 does the same through the secondary side.
// Both must equal Len at every point.
func pairsViaKey1(m *Map[string, string, int]) int {
	n := 0
	for _, k1 := range m.Key1s() {
		sub, ok := m.ByKey1(k1)
		if ok {
			n += sub.Len()
		}
	}
	return n
}

func pairsViaKey2(m *Map[string, string, int]) int {
	n := 0
	for _, k2 := range m.Key2s() {
		sub, ok := m.ByKey2(k2)
		if ok {
			n += sub.Len()
		}
	}
	return n
}

func requireMirrored(t *testing.T, m *Map[string, string, int]) {
	t.Helper()
	require.Equal(t, m.Len(), pairsViaKey1(m))
	require.Equal(t, m.Len(), pairsViaKey2(m))
}

func TestDualKeyMap(t *testing.T) {
	t.Run("SetAndByKeys", func(t *testing.T) {
		m := New[string, string, int]()

		m.Set("lib/a", "v1", 1)
		m.Set("lib/a", "v2", 2)
		m.Set("lib/b", "v1", 3)
		assert.Equal(t, 3, m.Len())
		requireMirrored(t, m)

		f, ok := m.ByKeys("lib/a", "v2")
		require.True(t, ok)
		assert.Equal(t, 2, f.Value)
		assert.Equal(t, "lib/a", f.Key1)
		assert.Equal(t, "v2", f.Key2)
		assert.Equal(t, 0, f.Index1)
		assert.Equal(t, 1, f.Index2)

		// Replacing a value never grows the triple count.
		m.Set("lib/a", "v2", 99)
		assert.Equal(t, 3, m.Len())

		f, ok = m.ByKeys("lib/a", "v2")
		require.True(t, ok)
		assert.Equal(t, 99, f.Value)

		_, ok = m.ByKeys("lib/a", "v9")
		assert.False(t, ok)
		_, ok = m.ByKeys("lib/z", "v1")
		assert.False(t, ok)
	})

	t.Run("DeleteDropsSizeByOne", func(t *testing.T) {
		m := New[string, string, int]()
		m.Set("a", "x", 1)
		m.Set("a", "y", 2)
		m.Set("b", "x", 3)

		require.True(t, m.Delete("a", "x"))
		assert.Equal(t, 2, m.Len())
		requireMirrored(t, m)

		_, ok := m.ByKeys("a", "x")
		assert.False(t, ok)

		// Deleting the same triple twice has no further effect.
		assert.False(t, m.Delete("a", "x"))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("EmptyBucketsArePruned", func(t *testing.T) {
		m := New[string, string, int]()
		m.Set("a", "x", 1)
		m.Set("b", "x", 2)

		m.Delete("a", "x")
		assert.NotContains(t, m.Key1s(), "a")
		assert.Contains(t, m.Key2s(), "x") // "b" still holds "x"

		m.Delete("b", "x")
		assert.Empty(t, m.Key1s())
		assert.Empty(t, m.Key2s())
		assert.Zero(t, m.Len())
	})

	t.Run("DeleteKey1Cascades", func(t *testing.T) {
		m := New[string, string, int]()
		m.Set("a", "x", 1)
		m.Set("a", "y", 2)
		m.Set("a", "z", 3)
		m.Set("b", "x", 4)

		removed := m.DeleteKey1("a")
		assert.Equal(t, 3, removed)
		assert.Equal(t, 1, m.Len())
		requireMirrored(t, m)

		_, ok := m.ByKey1("a")
		assert.False(t, ok)

		// "x" survives through "b"; "y" and "z" are gone entirely.
		assert.Equal(t, []string{"x"}, m.Key2s())

		assert.Zero(t, m.DeleteKey1("a"))
	})

	t.Run("DeleteKey2Cascades", func(t *testing.T) {
		m := New[string, string, int]()

		// 4 triples, 3 distinct key1 values sharing one key2.
		m.Set("a", "shared", 1)
		m.Set("b", "shared", 2)
		m.Set("c", "shared", 3)
		m.Set("a", "solo", 4)

		sub, ok := m.ByKey2("shared")
		require.True(t, ok)
		assert.Equal(t, 3, sub.Len())

		removed := m.DeleteKey2("shared")
		assert.Equal(t, 3, removed)
		assert.Equal(t, 1, m.Len())
		requireMirrored(t, m)

		_, ok = m.ByKey2("shared")
		assert.False(t, ok)

		f, ok := m.ByKeys("a", "solo")
		require.True(t, ok)
		assert.Equal(t, 4, f.Value)
	})

	t.Run("ByKey2AlwaysCurrent", func(t *testing.T) {
		m := New[string, string, int]()
		m.Set("a", "x", 1)

		sub, ok := m.ByKey2("x")
		require.True(t, ok)
		assert.Equal(t, 1, sub.Len())

		// A previously synthesized view is a snapshot; a fresh call sees
		// the new member.
		m.Set("b", "x", 2)
		assert.Equal(t, 1, sub.Len())

		sub, ok = m.ByKey2("x")
		require.True(t, ok)
		assert.Equal(t, 2, sub.Len())
	})

	t.Run("IterationOrder", func(t *testing.T) {
		m := New[string, string, int]()
		m.Set("b", "y", 1)
		m.Set("a", "x", 2)
		m.Set("b", "x", 3)

		var got []Found[string, string, int]
		for f := range m.All() {
			got = append(got, f)
		}

		// Outer by primary insertion order, inner by sub insertion order.
		require.Len(t, got, 3)
		assert.Equal(t, Found[string, string, int]{Key1: "b", Key2: "y", Value: 1, Index1: 0, Index2: 0}, got[0])
		assert.Equal(t, Found[string, string, int]{Key1: "b", Key2: "x", Value: 3, Index1: 0, Index2: 1}, got[1])
		assert.Equal(t, Found[string, string, int]{Key1: "a", Key2: "x", Value: 2, Index1: 1, Index2: 0}, got[2])
	})

	t.Run("PerDimensionFolding", func(t *testing.T) {
		m := New(
			WithFold1[string, string, int](kv.CaseFold),
		)

		m.Set("Lib/A", "V1", 1)

		// key1 folds, key2 does not.
		f, ok := m.ByKeys("LIB/a", "V1")
		require.True(t, ok)
		assert.Equal(t, 1, f.Value)
		assert.Equal(t, "lib/a", f.Key1)

		_, ok = m.ByKeys("lib/a", "v1")
		assert.False(t, ok)

		// Folded writes never duplicate triples.
		m.Set("LIB/A", "V1", 2)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("SetFoldRules", func(t *testing.T) {
		m := New[string, string, int]()
		require.NoError(t, m.SetFold1(kv.CaseFold))
		require.NoError(t, m.SetFold2(kv.CaseFold))

		m.Set("A", "B", 1)

		var ce *kv.ConfigurationError
		err := m.SetFold1(nil)
		require.Error(t, err)
		assert.ErrorAs(t, err, &ce)

		err = m.SetFold2(nil)
		require.Error(t, err)
		assert.ErrorAs(t, err, &ce)

		// After removing everything, folding may change again.
		m.DeleteKey1("a")
		require.NoError(t, m.SetFold2(nil))
	})

	t.Run("Clear", func(t *testing.T) {
		m := New[string, string, int]()
		m.Set("a", "x", 1)
		m.Set("b", "y", 2)

		m.Clear()
		assert.Zero(t, m.Len())
		assert.Empty(t, m.Key1s())
		assert.Empty(t, m.Key2s())
	})
}
