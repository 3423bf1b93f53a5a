package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

// ErrSessionNotFound indicates the requested session does not exist.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore defines the driven port for the persisted session collection,
// ordered most recently saved first.
type SessionStore interface {
	Load(ctx context.Context) ([]model.Session, error)
	Replace(ctx context.Context, sessions []model.Session) error
}
