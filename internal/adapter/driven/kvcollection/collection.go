// Package kvcollection stores whole JSON collections under fixed keys of a
// KeyValueStore. It plays the role of the browser's local storage: a blob
// that fails to decode is read as an empty collection.
package kvcollection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// Storage keys.
const (
	CredentialsKey = "apiKeys"
	SessionsKey    = "savedSessions"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.CredentialStore = (*Collection[model.Credential])(nil)
	_ driven.SessionStore    = (*Collection[model.Session])(nil)
)

// Collection is a JSON array of T persisted under one key.
type Collection[T any] struct {
	kv     driven.KeyValueStore
	key    string
	logger *slog.Logger
}

// New creates a Collection for key.
func New[T any](kv driven.KeyValueStore, key string, logger *slog.Logger) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, logger: logger}
}

// NewCredentialStore returns the credential collection.
func NewCredentialStore(kv driven.KeyValueStore, logger *slog.Logger) *Collection[model.Credential] {
	return New[model.Credential](kv, CredentialsKey, logger)
}

// NewSessionStore returns the session collection.
func NewSessionStore(kv driven.KeyValueStore, logger *slog.Logger) *Collection[model.Session] {
	return New[model.Session](kv, SessionsKey, logger)
}

// Load decodes the stored collection. A missing, undecryptable or malformed
// blob yields an empty, non-nil slice; only store errors are returned.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if errors.Is(err, driven.ErrUndecryptable) {
		c.logger.Warn("discarding unreadable stored collection", "key", c.key, "error", err)
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("discarding malformed stored collection", "key", c.key, "error", err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Replace encodes items and overwrites the stored collection.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("replace %s: %w", c.key, err)
	}
	return nil
}
