package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// CredentialService manages named API keys per provider. Mutations are
// serialized within the process; across processes the last writer wins.
type CredentialService struct {
	store   driven.CredentialStore
	gateway *ProviderGateway
	logger  *slog.Logger
	now     func() time.Time

	mu sync.Mutex
}

// NewCredentialService creates a CredentialService.
func NewCredentialService(store driven.CredentialStore, gateway *ProviderGateway, logger *slog.Logger) *CredentialService {
	return &CredentialService{
		store:   store,
		gateway: gateway,
		logger:  logger,
		now:     time.Now,
	}
}

// Add stores a new unvalidated credential. A blank name becomes
// "Key <Provider> #<n>", where n counts the provider's credentials.
func (s *CredentialService) Add(ctx context.Context, provider model.ProviderID, name, secret string) (model.Credential, error) {
	if !provider.Valid() {
		return model.Credential{}, fmt.Errorf("%w: unknown provider %q", ErrMissingInput, provider)
	}
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return model.Credential{}, fmt.Errorf("%w: api key is empty", ErrMissingInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.store.Load(ctx)
	if err != nil {
		return model.Credential{}, fmt.Errorf("load credentials: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Key %s #%d", provider.DisplayName(), countProvider(creds, provider)+1)
	}

	cred := model.Credential{
		ID:        uuid.NewString(),
		Provider:  provider,
		Secret:    secret,
		Name:      name,
		Status:    model.CredentialStatusUnvalidated,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Replace(ctx, append(creds, cred)); err != nil {
		return model.Credential{}, fmt.Errorf("save credentials: %w", err)
	}

	s.logger.Info("credential added", "id", cred.ID, "provider", string(provider))
	return cred, nil
}

// Delete removes the credential with id.
func (s *CredentialService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}

	idx := indexCredential(creds, id)
	if idx < 0 {
		return driven.ErrCredentialNotFound
	}
	creds = append(creds[:idx], creds[idx+1:]...)
	if err := s.store.Replace(ctx, creds); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	s.logger.Info("credential deleted", "id", id)
	return nil
}

// List returns every credential in insertion order.
func (s *CredentialService) List(ctx context.Context) ([]model.Credential, error) {
	creds, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	return creds, nil
}

// ListByProvider returns the provider's credentials in insertion order.
func (s *CredentialService) ListByProvider(ctx context.Context, provider model.ProviderID) ([]model.Credential, error) {
	creds, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Credential, 0, len(creds))
	for _, c := range creds {
		if c.Provider == provider {
			out = append(out, c)
		}
	}
	return out, nil
}

// Validate checks the stored credential against its provider and persists
// the outcome. The status reads "validating" while the check runs.
func (s *CredentialService) Validate(ctx context.Context, id string) (model.ValidationResult, error) {
	cred, err := s.setStatus(ctx, id, model.CredentialStatusValidating)
	if err != nil {
		return model.ValidationResult{}, err
	}

	result, err := s.gateway.ValidateKey(ctx, cred.Provider, cred.Secret)
	if err != nil {
		// Leave the credential in a settled state.
		if _, restoreErr := s.setStatus(context.WithoutCancel(ctx), id, cred.Status); restoreErr != nil {
			s.logger.Warn("failed to restore credential status", "id", id, "error", restoreErr)
		}
		return model.ValidationResult{}, err
	}

	if _, err := s.setStatus(context.WithoutCancel(ctx), id, result.Status()); err != nil {
		return result, err
	}
	return result, nil
}

// ValidateSecret checks an unsaved secret. Blank secrets fail without
// contacting the provider.
func (s *CredentialService) ValidateSecret(ctx context.Context, provider model.ProviderID, secret string) (model.ValidationResult, error) {
	return s.gateway.ValidateKey(ctx, provider, strings.TrimSpace(secret))
}

// Active returns the provider's first valid credential.
func (s *CredentialService) Active(ctx context.Context, provider model.ProviderID) (model.Credential, error) {
	creds, err := s.ListByProvider(ctx, provider)
	if err != nil {
		return model.Credential{}, err
	}
	for _, c := range creds {
		if c.Status == model.CredentialStatusValid {
			return c, nil
		}
	}
	return model.Credential{}, fmt.Errorf("%w: no valid %s key", ErrAuth, provider.DisplayName())
}

// Resolve picks the credential for a provider call. With an id, that
// credential must belong to provider and be valid; without one, the active
// credential is used.
func (s *CredentialService) Resolve(ctx context.Context, provider model.ProviderID, id string) (model.Credential, error) {
	if id == "" {
		return s.Active(ctx, provider)
	}

	creds, err := s.List(ctx)
	if err != nil {
		return model.Credential{}, err
	}
	idx := indexCredential(creds, id)
	if idx < 0 {
		return model.Credential{}, fmt.Errorf("%w: %w", ErrAuth, driven.ErrCredentialNotFound)
	}

	cred := creds[idx]
	if cred.Provider != provider {
		return model.Credential{}, fmt.Errorf("%w: key %q belongs to %s", ErrAuth, cred.Name, cred.Provider.DisplayName())
	}
	if cred.Status != model.CredentialStatusValid {
		return model.Credential{}, fmt.Errorf("%w: key %q is %s", ErrAuth, cred.Name, cred.Status)
	}
	return cred, nil
}

func (s *CredentialService) setStatus(ctx context.Context, id string, status model.CredentialStatus) (model.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.store.Load(ctx)
	if err != nil {
		return model.Credential{}, fmt.Errorf("load credentials: %w", err)
	}
	idx := indexCredential(creds, id)
	if idx < 0 {
		return model.Credential{}, driven.ErrCredentialNotFound
	}

	prev := creds[idx]
	creds[idx].Status = status
	if err := s.store.Replace(ctx, creds); err != nil {
		return model.Credential{}, fmt.Errorf("save credentials: %w", err)
	}
	return prev, nil
}

func indexCredential(creds []model.Credential, id string) int {
	for i, c := range creds {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func countProvider(creds []model.Credential, provider model.ProviderID) int {
	n := 0
	for _, c := range creds {
		if c.Provider == provider {
			n++
		}
	}
	return n
}

// IsNotFound reports whether err means a credential or session was absent.
func IsNotFound(err error) bool {
	return errors.Is(err, driven.ErrCredentialNotFound) || errors.Is(err, driven.ErrSessionNotFound)
}
