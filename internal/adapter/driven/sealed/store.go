// Package sealed wraps a KeyValueStore so that values are encrypted at rest
// with AES-256-GCM.
package sealed

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// KeySize is the required AES-256 key length in bytes.
const KeySize = 32

// ErrInvalidKey is returned by New when the key is not KeySize bytes.
var ErrInvalidKey = errors.New("sealed: key must be 32 bytes")

// Compile-time interface satisfaction check.
var _ driven.KeyValueStore = (*Store)(nil)

// Store is a KeyValueStore decorator. Set seals the value before delegating;
// Get opens it after reading. The wire layout is nonce || ciphertext || tag.
type Store struct {
	next driven.KeyValueStore
	aead cipher.AEAD
}

// New wraps next with AES-256-GCM sealing under key.
func New(next driven.KeyValueStore, key []byte) (*Store, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM: %w", err)
	}

	return &Store{next: next, aead: gcm}, nil
}

// Get reads and decrypts the value for key. A value that fails to open is
// reported as driven.ErrUndecryptable.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	sealed, ok, err := s.next.Get(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}

	plaintext, err := s.open(sealed, key)
	if err != nil {
		return nil, false, fmt.Errorf("decrypt %q: %w: %w", key, driven.ErrUndecryptable, err)
	}
	return plaintext, true, nil
}

// Set encrypts value and stores it under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("rand nonce: %w", err)
	}

	// The key name is bound as additional data so a sealed blob cannot be
	// replayed under a different key.
	sealed := s.aead.Seal(nonce, nonce, value, []byte(key))
	return s.next.Set(ctx, key, sealed)
}

// Remove delegates directly; there is nothing to decrypt.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.next.Remove(ctx, key)
}

func (s *Store) open(data []byte, key string) ([]byte, error) {
	nonceSize := s.aead.NonceSize()
	if len(data) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("gcm.Open: %w", err)
	}
	return plaintext, nil
}
