package cjlib_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constarg/cjlib-go"
)

func TestOrderedMapInsertSearch(t *testing.T) {
	t.Parallel()

	m := cjlib.NewOrderedMap()
	require.NoError(t, m.Insert("b", cjlib.NewInteger(2)))
	require.NoError(t, m.Insert("a", cjlib.NewInteger(1)))
	require.NoError(t, m.Insert("c", cjlib.NewInteger(3)))

	v, ok := m.Search("a")
	require.True(t, ok)
	i, _ := v.AsInteger()
	assert.Equal(t, int64(1), i)

	_, ok = m.Search("missing")
	assert.False(t, ok)
}

func TestOrderedMapDuplicateKey(t *testing.T) {
	t.Parallel()

	m := cjlib.NewOrderedMap()
	require.NoError(t, m.Insert("a", cjlib.NewNull()))

	err := m.Insert("a", cjlib.NewNull())
	require.Error(t, err)
	assert.True(t, errors.Is(err, cjlib.ErrDict))
}

func TestOrderedMapRemoveAbsentIsKeyNotFound(t *testing.T) {
	t.Parallel()

	m := cjlib.NewOrderedMap()
	require.NoError(t, m.Insert("a", cjlib.NewNull()))

	_, err := m.Remove("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cjlib.ErrDict))
}

func TestOrderedMapInOrderIsSorted(t *testing.T) {
	t.Parallel()

	m := cjlib.NewOrderedMap()
	keys := []string{"m", "z", "a", "q", "b", "f", "k", "x", "d", "y"}
	for _, k := range keys {
		require.NoError(t, m.Insert(k, cjlib.NewNull()))
	}

	got := m.InOrderKeys()
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func TestOrderedMapStaysBalanced(t *testing.T) {
	t.Parallel()

	m := cjlib.NewOrderedMap()
	// Ascending-order insertion is the classic AVL worst case for an
	// unbalanced BST; confirm rotations keep it logarithmic.
	for i := 0; i < 1000; i++ {
		require.NoError(t, m.Insert(fmt.Sprintf("key-%04d", i), cjlib.NewInteger(int64(i))))
	}

	assert.True(t, m.Len() == 1000)
	assert.LessOrEqual(t, m.Height(), 2*10) // generous bound: 2*log2(1000+1)
}

func TestOrderedMapInsertThenRemoveRestoresSearch(t *testing.T) {
	t.Parallel()

	m := cjlib.NewOrderedMap()
	require.NoError(t, m.Insert("x", cjlib.NewNull()))
	require.NoError(t, m.Insert("y", cjlib.NewNull()))

	removed, err := m.Remove("x")
	require.NoError(t, err)
	assert.Equal(t, cjlib.Null, removed.Type())

	_, ok := m.Search("x")
	assert.False(t, ok)
	_, ok = m.Search("y")
	assert.True(t, ok)
}

func TestOrderedMapPreorderVisitsEveryKeyOnce(t *testing.T) {
	t.Parallel()

	m := cjlib.NewOrderedMap()
	keys := []string{"e", "b", "h", "a", "c", "g", "i", "d", "f"}
	for _, k := range keys {
		require.NoError(t, m.Insert(k, cjlib.NewNull()))
	}

	seen := map[string]bool{}
	for _, k := range m.Keys() {
		assert.False(t, seen[k], "key %q visited twice", k)
		seen[k] = true
	}
	assert.Len(t, seen, len(keys))
}

func TestOrderedMapTwoChildRemovalKeepsBSTOrder(t *testing.T) {
	t.Parallel()

	m := cjlib.NewOrderedMap()
	for _, k := range []string{"d", "b", "f", "a", "c", "e", "g"} {
		require.NoError(t, m.Insert(k, cjlib.NewNull()))
	}

	_, err := m.Remove("d") // two children: predecessor swap path
	require.NoError(t, err)

	got := m.InOrderKeys()
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
	assert.NotContains(t, got, "d")
}
