package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRepo_SetAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db)
	ctx := context.Background()

	err := repo.Set(ctx, "apiKeys", []byte(`[{"id":"a"}]`))
	require.NoError(t, err)

	val, ok, err := repo.Get(ctx, "apiKeys")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"a"}]`, string(val))
}

func TestKVRepo_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db)
	ctx := context.Background()

	val, ok, err := repo.Get(ctx, "nonexistent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestKVRepo_SetOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "savedSessions", []byte("old-value")))
	require.NoError(t, repo.Set(ctx, "savedSessions", []byte("new-value")))

	val, ok, err := repo.Get(ctx, "savedSessions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new-value", string(val))
}

func TestKVRepo_Remove(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "apiKeys", []byte("[]")))
	require.NoError(t, repo.Remove(ctx, "apiKeys"))

	_, ok, err := repo.Get(ctx, "apiKeys")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVRepo_RemoveNonexistent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db)
	ctx := context.Background()

	err := repo.Remove(ctx, "nonexistent")
	assert.NoError(t, err, "removing a nonexistent key should not error")
}

func TestKVRepo_KeysAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "apiKeys", []byte("keys")))
	require.NoError(t, repo.Set(ctx, "savedSessions", []byte("sessions")))
	require.NoError(t, repo.Remove(ctx, "apiKeys"))

	val, ok, err := repo.Get(ctx, "savedSessions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sessions", string(val))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	version, err := RunMigrations(db.Writer)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}
