package structures_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
	"github.com/katalvlaran/golessons/lessons/structures"
)

func TestLessonMetadata(t *testing.T) {
	l := structures.Lesson()
	assert.Equal(t, 37, l.Number)
	assert.Equal(t, "structures", l.Slug)
	assert.Equal(t, curriculum.PartEngineering, l.Part)
	require.NoError(t, l.Validate())
}

func TestListPushesBothEnds(t *testing.T) {
	l := structures.NewList(2, 3)
	l.PushFront(1)
	l.PushBack(4)
	assert.Equal(t, []int{1, 2, 3, 4}, l.Items())
	assert.Equal(t, 4, l.Len())
}

func TestListPopFront(t *testing.T) {
	l := structures.NewList("a", "b")

	v, err := l.PopFront()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = l.PopFront()
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = l.PopFront()
	require.ErrorIs(t, err, structures.ErrEmpty)

	// The list must be usable again after draining.
	l.PushBack("c")
	assert.Equal(t, []string{"c"}, l.Items())
}

func TestStackLIFO(t *testing.T) {
	var s structures.Stack[int]
	s.Push(1)
	s.Push(2)
	s.Push(3)

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, top)

	for want := 3; want >= 1; want-- {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err = s.Pop()
	require.ErrorIs(t, err, structures.ErrEmpty)
}

func TestQueueFIFO(t *testing.T) {
	var q structures.Queue[string]
	q.Enqueue("a")
	q.Enqueue("b")

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	q.Enqueue("c")
	for _, want := range []string{"b", "c"} {
		v, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err = q.Dequeue()
	require.ErrorIs(t, err, structures.ErrEmpty)
}

func TestQueueCompactsUnderChurn(t *testing.T) {
	var q structures.Queue[int]
	for i := 0; i < 1000; i++ {
		q.Enqueue(i)
		v, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, q.Len())
}

func TestBSTInsertHasAndOrder(t *testing.T) {
	tree := structures.NewBST(5, 3, 8, 1, 4, 7, 9)

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.InOrder())
	assert.Equal(t, 7, tree.Len())
	assert.True(t, tree.Has(4))
	assert.False(t, tree.Has(6))

	assert.False(t, tree.Insert(5), "duplicate must be rejected")
	assert.Equal(t, 7, tree.Len())
}

func TestBSTMinMax(t *testing.T) {
	tree := structures.NewBST("pear", "apple", "quince")

	lo, err := tree.Min()
	require.NoError(t, err)
	assert.Equal(t, "apple", lo)

	hi, err := tree.Max()
	require.NoError(t, err)
	assert.Equal(t, "quince", hi)

	empty := structures.NewBST[int]()
	_, err = empty.Min()
	require.ErrorIs(t, err, structures.ErrEmpty)
}

func TestTrieWordsAndPrefixes(t *testing.T) {
	dict := structures.NewTrie("go", "golang", "gopher", "grade")

	assert.True(t, dict.Has("go"))
	assert.False(t, dict.Has("gol"), "prefix of a word is not a word")
	assert.True(t, dict.HasPrefix("gol"))
	assert.False(t, dict.HasPrefix("java"))
	assert.Equal(t, []string{"go", "golang", "gopher"}, dict.WithPrefix("go"))
	assert.Nil(t, dict.WithPrefix("x"))

	assert.False(t, dict.Insert("go"), "reinsert is not new")
	assert.Equal(t, 4, dict.Len())
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	cache := structures.NewLRU[string, int](3)
	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("c", 3)

	_, ok := cache.Get("a") // refresh a; b becomes oldest
	require.True(t, ok)

	cache.Put("d", 4)
	_, ok = cache.Get("b")
	assert.False(t, ok, "b was least recently used")
	assert.Equal(t, []string{"d", "a", "c"}, cache.Keys())
	assert.Equal(t, 3, cache.Len())
}

func TestLRUPutUpdatesInPlace(t *testing.T) {
	cache := structures.NewLRU[string, int](2)
	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("a", 10)
	cache.Put("c", 3) // evicts b, not the refreshed a

	v, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	_, ok = cache.Get("b")
	assert.False(t, ok)
}

func TestUnionFind(t *testing.T) {
	uf := structures.NewUnionFind(6)
	assert.Equal(t, 6, uf.Components())

	assert.True(t, uf.Union(0, 1))
	assert.True(t, uf.Union(2, 3))
	assert.True(t, uf.Union(1, 2))
	assert.False(t, uf.Union(0, 3), "already connected")

	assert.Equal(t, 3, uf.Components())
	assert.True(t, uf.Connected(0, 3))
	assert.False(t, uf.Connected(4, 5))
}

func TestRunWritesDemonstration(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, structures.Run(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "Data structures")
	assert.Contains(t, out, "after PushFront(0)         => [0 1 2 3]")
	assert.Contains(t, out, "Pop()                      => delete line")
	assert.Contains(t, out, "InOrder()                  => [1 3 4 5 7 8 9]")
	assert.Contains(t, out, `WithPrefix("go")           => [go golang gopher]`)
	assert.Contains(t, out, "keys, most recent first    => [d a c]")
	assert.Contains(t, out, "Components()               => 3")
	assert.Contains(t, out, "Connected(4, 5)            => false")
}
