package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

// ErrCredentialNotFound indicates the requested credential does not exist.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialStore defines the driven port for the persisted credential collection.
// Load returns a copy; every mutation is a full Replace of the collection.
type CredentialStore interface {
	Load(ctx context.Context) ([]model.Credential, error)
	Replace(ctx context.Context, creds []model.Credential) error
}
