package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// SessionService keeps the library of saved workspace snapshots, most recent
// first.
type SessionService struct {
	store  driven.SessionStore
	logger *slog.Logger
	now    func() time.Time

	mu sync.Mutex
}

// NewSessionService creates a SessionService.
func NewSessionService(store driven.SessionStore, logger *slog.Logger) *SessionService {
	return &SessionService{store: store, logger: logger, now: time.Now}
}

// Save stores session under a fresh ID and timestamp and returns the stored copy.
func (s *SessionService) Save(ctx context.Context, session model.Session) (model.Session, error) {
	session.Name = strings.TrimSpace(session.Name)
	if session.Name == "" {
		return model.Session{}, fmt.Errorf("%w: session name is empty", ErrMissingInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.store.Load(ctx)
	if err != nil {
		return model.Session{}, fmt.Errorf("load sessions: %w", err)
	}

	session.ID = uuid.NewString()
	session.CreatedAt = s.now().UTC()
	if err := s.store.Replace(ctx, append([]model.Session{session}, sessions...)); err != nil {
		return model.Session{}, fmt.Errorf("save sessions: %w", err)
	}

	s.logger.Info("session saved", "id", session.ID, "name", session.Name)
	return session, nil
}

// List returns all sessions, most recent first.
func (s *SessionService) List(ctx context.Context) ([]model.Session, error) {
	sessions, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	return sessions, nil
}

// Load returns the session with id.
func (s *SessionService) Load(ctx context.Context, id string) (model.Session, error) {
	sessions, err := s.List(ctx)
	if err != nil {
		return model.Session{}, err
	}
	for _, sess := range sessions {
		if sess.ID == id {
			return sess, nil
		}
	}
	return model.Session{}, driven.ErrSessionNotFound
}

// Delete removes the session with id.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}

	kept := make([]model.Session, 0, len(sessions))
	for _, sess := range sessions {
		if sess.ID != id {
			kept = append(kept, sess)
		}
	}
	if len(kept) == len(sessions) {
		return driven.ErrSessionNotFound
	}
	if err := s.store.Replace(ctx, kept); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}

	s.logger.Info("session deleted", "id", id)
	return nil
}
