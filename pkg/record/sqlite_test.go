package record

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaprecord/internal/testutil"
)

type Widget struct {
	Entity
	ID     int64
	Label  string
	Weight float64
}

func newSQLiteSource(t *testing.T) *Source {
	t.Helper()
	dsn, _ := testutil.OpenSQLite(t)

	src := NewSource(testutil.NewTestLogger(t), Connection{Name: "main", Driver: "sqlite", DSN: dsn})
	t.Cleanup(func() { _ = src.Close() })

	require.NoError(t, Register[User](src, userMeta(), userFields()...))
	require.NoError(t, Register[Event](src, eventMeta()))
	require.NoError(t, Register(src,
		Meta{Name: "Widget", Table: "widgets", PrimaryKey: "id", Parent: &appEntity},
		Column("id", func(w *Widget) *int64 { return &w.ID }),
		Column("label", func(w *Widget) *string { return &w.Label }),
		Column("weight", func(w *Widget) *float64 { return &w.Weight }),
	))
	return src
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newSQLiteSource(t)
	require.NoError(t, src.Ping(ctx, "main"))

	u := newUser(t, src, "u1", "Ann", 30)
	require.NoError(t, u.Set("email", "ann@example.com"))
	require.NoError(t, u.Set("nickname", "annie"))
	require.NoError(t, u.Save(ctx))
	assert.True(t, u.Persisted())

	loaded, err := GetByKey[User](ctx, src, "u1")
	require.NoError(t, err)
	assert.True(t, loaded.Persisted())
	for _, col := range u.Keys() {
		assert.Equal(t, u.Get(col), loaded.Get(col), "column %s", col)
	}
	assert.Equal(t, "Ann", loaded.Name)
	assert.Equal(t, 30, loaded.Age)
}

func TestSQLite_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	src := newSQLiteSource(t)

	w, err := New[Widget](src)
	require.NoError(t, err)
	require.NoError(t, w.Set("id", 7))
	require.NoError(t, w.Set("label", "sprocket"))
	require.NoError(t, w.Set("weight", 1.5))
	require.NoError(t, w.Save(ctx))

	require.NoError(t, w.Set("label", "cog"))
	require.NoError(t, w.Save(ctx))

	all, err := GetAll[Widget](ctx, src)
	require.NoError(t, err)
	require.Len(t, all, 1, "second save must update, not insert")
	assert.Equal(t, "cog", all[0].Label)
	assert.Equal(t, 1.5, all[0].Weight)
	assert.Nil(t, all[0].Get("color"))

	heavy, err := GetBySQLCriteriaUnsafe[Widget](ctx, src, "weight", "> 1")
	require.NoError(t, err)
	assert.Len(t, heavy, 1)

	require.NoError(t, all[0].Delete(ctx))
	assert.False(t, all[0].Persisted())

	// the original instance still believes it is persisted; its row is gone
	err = w.Save(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSingleRow)
	assert.True(t, w.Persisted())

	left, err := GetAll[Widget](ctx, src)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestSQLite_DuplicateInsertFails(t *testing.T) {
	ctx := context.Background()
	src := newSQLiteSource(t)

	require.NoError(t, newUser(t, src, "u1", "Ann", 30).Save(ctx))

	dup := newUser(t, src, "u1", "Imposter", 99)
	err := dup.Save(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save row: unable to process single-row operation")
	assert.False(t, dup.Persisted())

	loaded, err := GetByKey[User](ctx, src, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", loaded.Name)
}

func TestSQLite_DeleteAffectingSeveralRowsRollsBack(t *testing.T) {
	ctx := context.Background()
	src := newSQLiteSource(t)

	for _, note := range []string{"first", "second"} {
		e, err := New[Event](src)
		require.NoError(t, err)
		require.NoError(t, e.Set("kind", "click"))
		require.NoError(t, e.Set("note", note))
		require.NoError(t, e.Save(ctx))
	}

	events, err := GetByProperty[Event](ctx, src, "kind", "click")
	require.NoError(t, err)
	require.Len(t, events, 2)

	err = events[0].Delete(ctx)
	require.Error(t, err)
	var rowErr *SingleRowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, int64(2), rowErr.Affected)
	assert.True(t, events[0].Persisted())

	still, err := GetAll[Event](ctx, src)
	require.NoError(t, err)
	assert.Len(t, still, 2, "rolled back delete must keep both rows")
}

func TestSQLite_UnderscoreColumn(t *testing.T) {
	ctx := context.Background()
	src := newSQLiteSource(t)

	e, err := New[Event](src)
	require.NoError(t, err)
	require.NoError(t, e.Set("kind", "sync"))
	require.NoError(t, e.Set("note", "first"))
	require.NoError(t, e.Set("_rev", 1))
	require.NoError(t, e.Save(ctx))

	require.NoError(t, e.Set("_rev", 2))
	require.NoError(t, e.Save(ctx))

	loaded, err := GetByKey[Event](ctx, src, "sync")
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.Get("_rev"))
	assert.Equal(t, "first", loaded.Get("note"))
}
