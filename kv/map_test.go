package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("SetReportsInserted", func(t *testing.T) {
		m := New[string, int]()

		assert.True(t, m.Set("a", 1))
		assert.False(t, m.Set("a", 2))
		assert.True(t, m.Set("b", 3))
		assert.Equal(t, 2, m.Len())

		f, ok := m.ByKey("a")
		require.True(t, ok)
		assert.Equal(t, 2, f.Value)
	})

	t.Run("InsertionOrderStableAcrossUpdates", func(t *testing.T) {
		m := New[string, int]()
		m.Set("x", 1)
		m.Set("y", 2)
		m.Set("z", 3)
		m.Set("x", 99) // update must not move "x"

		assert.Equal(t, []string{"x", "y", "z"}, m.Keys())

		var got []string
		for k := range m.All() {
			got = append(got, k)
		}
		assert.Equal(t, []string{"x", "y", "z"}, got)
	})

	t.Run("ByKeyRequired", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)

		_, err := m.ByKeyRequired("a", "entry a")
		require.NoError(t, err)

		_, err = m.ByKeyRequired("missing", "entry missing")
		require.Error(t, err)

		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "entry missing", nf.Label)
	})

	t.Run("ByFuncPositions", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 10)
		m.Set("b", 20)
		m.Set("c", 30)

		f, ok := m.ByFunc(func(v int, k string, i int) bool { return v > 15 })
		require.True(t, ok)
		assert.Equal(t, FoundAt[string, int]{Key: "b", Value: 20, Index: 1}, f)

		_, ok = m.ByFunc(func(v int, k string, i int) bool { return false })
		assert.False(t, ok)
	})

	t.Run("ByValue", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 10)
		m.Set("b", 20)

		f, ok := ByValue(m, 20)
		require.True(t, ok)
		assert.Equal(t, "b", f.Key)

		_, ok = ByValue(m, 99)
		assert.False(t, ok)

		_, err := ByValueRequired(m, 99, "value 99")
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "value 99", nf.Label)
	})

	t.Run("Delete", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)

		assert.True(t, m.Delete("a"))
		assert.False(t, m.Delete("a"))
		assert.Equal(t, []string{"b"}, m.Keys())
	})

	t.Run("IndexOf", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)

		assert.Equal(t, 1, m.IndexOf("b"))
		assert.Equal(t, -1, m.IndexOf("zzz"))
	})

	t.Run("CaseFolding", func(t *testing.T) {
		m := New(WithFold[string, int](CaseFold))

		m.Set("Alpha", 1)

		f, ok := m.ByKey("ALPHA")
		require.True(t, ok)
		assert.Equal(t, 1, f.Value)
		assert.Equal(t, "alpha", f.Key)

		g, ok := m.ByKey("alpha")
		require.True(t, ok)
		assert.Equal(t, f, g)

		// Folding is one-way: the stored key is the folded form.
		assert.Equal(t, []string{"alpha"}, m.Keys())
	})

	t.Run("SetFoldOnEmpty", func(t *testing.T) {
		m := New[string, int]()
		require.NoError(t, m.SetFold(CaseFold))

		m.Set("A", 1)
		f, ok := m.ByKey("a")
		require.True(t, ok)
		assert.Equal(t, 1, f.Value)
	})

	t.Run("SetFoldOnNonEmpty", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)

		err := m.SetFold(CaseFold)
		require.Error(t, err)

		var ce *ConfigurationError
		assert.ErrorAs(t, err, &ce)
	})

	t.Run("Clear", func(t *testing.T) {
		m := New(WithFold[string, int](CaseFold))
		m.Set("A", 1)

		m.Clear()
		assert.Zero(t, m.Len())

		// The folder survives a clear.
		m.Set("B", 2)
		_, ok := m.ByKey("b")
		assert.True(t, ok)
	})
}
