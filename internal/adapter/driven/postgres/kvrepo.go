// Package postgres implements the KeyValueStore port on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.KeyValueStore = (*KVRepo)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
  key        TEXT PRIMARY KEY,
  value      BYTEA NOT NULL,
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);`

// KVRepo stores key-value entries in a single kv_entries table.
type KVRepo struct {
	pool *pgxpool.Pool
}

// Open connects to databaseURL, verifies the connection and creates the
// kv_entries table if needed. A failed Open leaves nothing behind, so the
// caller may simply call Open again.
func Open(ctx context.Context, databaseURL string) (*KVRepo, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create kv schema: %w", err)
	}
	return &KVRepo{pool: pool}, nil
}

// Close releases the connection pool.
func (r *KVRepo) Close() {
	r.pool.Close()
}

// Get returns the value stored under key. Returns (nil, false, nil) if the key is absent.
func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.pool.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get kv %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores or replaces the value for key.
func (r *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO kv_entries (key, value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key)
DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("set kv %q: %w", key, err)
	}
	return nil
}

// Remove deletes the entry for key. Removing an absent key is a no-op.
func (r *KVRepo) Remove(ctx context.Context, key string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("remove kv %q: %w", key, err)
	}
	return nil
}
