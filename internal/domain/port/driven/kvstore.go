// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"
	"errors"
)

// ErrUndecryptable is returned by a KeyValueStore when a stored value exists
// but cannot be opened, e.g. it was written under another key or in plaintext.
var ErrUndecryptable = errors.New("stored value cannot be decrypted")

// KeyValueStore is the persistence collaborator. Values are opaque bytes
// (JSON in practice); there are no transactions and no expiry.
type KeyValueStore interface {
	// Get returns the stored value and true, or (nil, false, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores or replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
