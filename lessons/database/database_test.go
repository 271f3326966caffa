package database_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
	"github.com/katalvlaran/golessons/lessons/database"
)

func TestLessonMetadata(t *testing.T) {
	l := database.Lesson()
	require.NoError(t, l.Validate())
	assert.Equal(t, 27, l.Number)
	assert.Equal(t, "database", l.Slug)
	assert.Equal(t, curriculum.PartStdlib, l.Part)
}

func newStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCRUDCycle(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.Ping(ctx))

	id, err := store.Add(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id2, err := store.Add(ctx, "second")
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, database.Task{ID: 1, Title: "first", Done: false}, got)

	require.NoError(t, store.MarkDone(ctx, id))
	got, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Done)

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", tasks[1].Title)

	require.NoError(t, store.Delete(ctx, id2))
	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMissingRowsBecomeSentinels(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := store.Get(ctx, 42)
	assert.ErrorIs(t, err, database.ErrTaskNotFound)

	assert.ErrorIs(t, store.MarkDone(ctx, 42), database.ErrTaskNotFound)
	assert.ErrorIs(t, store.Delete(ctx, 42), database.ErrTaskNotFound)
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := store.Add(ctx, "   ")
	assert.ErrorIs(t, err, database.ErrEmptyTitle)
}

func TestAddManyIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	require.NoError(t, store.AddMany(ctx, "a", "b", "c"))
	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	err = store.AddMany(ctx, "d", "", "e")
	assert.ErrorIs(t, err, database.ErrEmptyTitle)

	n, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "failed batch must not leave partial rows")
}

func TestRunWritesDemonstration(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, database.Run(context.Background(), &sb))

	out := sb.String()
	assert.Contains(t, out, "SQL databases")
	assert.Contains(t, out, `inserted #1 "write the schema"`)
	assert.Contains(t, out, `Get(2) -> #2 "load the fixtures" done=false`)
	assert.Contains(t, out, "[x] #1 write the schema")
	assert.Contains(t, out, "MarkDone(99)               => database: task not found: id 99")
	assert.Contains(t, out, "count after good batch     => 5")
	assert.Contains(t, out, "count after failed batch   => 5")
	assert.Contains(t, out, "count after delete         => 4")
	assert.Contains(t, out, "Key takeaways:")
}
