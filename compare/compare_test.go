package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestNatural(t *testing.T) {
	cmpInt := Natural[int]()
	assert.Negative(t, cmpInt(1, 2))
	assert.Zero(t, cmpInt(2, 2))
	assert.Positive(t, cmpInt(3, 2))

	cmpStr := Natural[string]()
	// Raw code-unit order: uppercase sorts before lowercase.
	assert.Negative(t, cmpStr("B", "a"))
}

func TestReverse(t *testing.T) {
	r := Reverse(Natural[int]())
	assert.Positive(t, r(1, 2))
	assert.Zero(t, r(2, 2))
	assert.Negative(t, r(3, 2))
}

func TestCollated(t *testing.T) {
	c := Collated(language.English)
	// English collation orders by letter first, so "a" sorts before "B"
	// even though 'B' has the smaller code unit.
	assert.Negative(t, c("a", "B"))
	assert.Positive(t, c("b", "A"))
}

func TestDefault(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		f, err := Default[int](nil)
		require.NoError(t, err)
		assert.Negative(t, f(-1, 1))
	})

	t.Run("Uint", func(t *testing.T) {
		f, err := Default[uint16](nil)
		require.NoError(t, err)
		assert.Positive(t, f(9, 3))
	})

	t.Run("Float", func(t *testing.T) {
		f, err := Default[float64](nil)
		require.NoError(t, err)
		assert.Negative(t, f(1.5, 2.5))
	})

	t.Run("StringRaw", func(t *testing.T) {
		f, err := Default[string](nil)
		require.NoError(t, err)
		assert.Negative(t, f("B", "a"))
	})

	t.Run("StringCollated", func(t *testing.T) {
		f, err := Default[string](collate.New(language.English))
		require.NoError(t, err)
		assert.Negative(t, f("a", "B"))
	})

	t.Run("Unsupported", func(t *testing.T) {
		type pair struct{ a, b int }
		_, err := Default[pair](nil)
		require.Error(t, err)

		var ce *ConfigurationError
		assert.ErrorAs(t, err, &ce)
	})

	t.Run("NamedString", func(t *testing.T) {
		type id string
		f, err := Default[id](nil)
		require.NoError(t, err)
		assert.Negative(t, f("a", "b"))
	})
}
