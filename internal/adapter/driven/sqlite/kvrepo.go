package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.KeyValueStore = (*KVRepo)(nil)

// KVRepo is the SQLite implementation of the KeyValueStore port interface.
// Values are stored as-is; wrap it with the sealed adapter for encryption at rest.
type KVRepo struct {
	db *DB
}

// NewKVRepo creates a new KVRepo backed by the given DB.
func NewKVRepo(db *DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get returns the value stored under key. Returns (nil, false, nil) if the key is absent.
func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM kv_entries WHERE key = ?`

	var value []byte
	err := r.db.Reader.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get kv %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores or replaces the value for key.
func (r *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	const query = `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := r.db.Writer.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set kv %q: %w", key, err)
	}
	return nil
}

// Remove deletes the entry for key. Removing an absent key is a no-op.
func (r *KVRepo) Remove(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_entries WHERE key = ?`

	if _, err := r.db.Writer.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("remove kv %q: %w", key, err)
	}
	return nil
}
