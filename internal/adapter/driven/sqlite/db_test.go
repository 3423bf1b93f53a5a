package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_FileBackedWAL(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nichescript.db")

	db, err := NewDB(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var mode string
	require.NoError(t, db.Writer.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	_, err = RunMigrations(db.Writer)
	require.NoError(t, err)

	repo := NewKVRepo(db)
	require.NoError(t, repo.Set(ctx, "savedSessions", []byte("[]")))

	// Reads go through the reader pool.
	val, ok, err := repo.Get(ctx, "savedSessions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(val))
}

func TestNewDB_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nichescript.db")

	db, err := NewDB(ctx, path)
	require.NoError(t, err)
	_, err = RunMigrations(db.Writer)
	require.NoError(t, err)
	require.NoError(t, NewKVRepo(db).Set(ctx, "apiKeys", []byte(`[{"id":"a"}]`)))
	require.NoError(t, db.Close())

	db, err = NewDB(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	_, err = RunMigrations(db.Writer)
	require.NoError(t, err)

	val, ok, err := NewKVRepo(db).Get(ctx, "apiKeys")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"a"}]`, string(val))
}

func TestNewMemoryDB_IsolatedByName(t *testing.T) {
	ctx := context.Background()

	a, err := NewMemoryDB(ctx, t.Name()+"/a")
	require.NoError(t, err)
	defer func() { _ = a.Close() }()
	b, err := NewMemoryDB(ctx, t.Name()+"/b")
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	_, err = RunMigrations(a.Writer)
	require.NoError(t, err)
	_, err = RunMigrations(b.Writer)
	require.NoError(t, err)

	require.NoError(t, NewKVRepo(a).Set(ctx, "k", []byte("v")))

	_, ok, err := NewKVRepo(b).Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
