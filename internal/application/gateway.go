package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// ProviderMiddleware decorates an AIProvider with a cross-cutting concern.
type ProviderMiddleware func(driven.AIProvider) driven.AIProvider

// WrapProvider applies middlewares left to right: WrapProvider(p, A, B) is A(B(p)).
func WrapProvider(inner driven.AIProvider, mws ...ProviderMiddleware) driven.AIProvider {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// WithLogging logs each provider call with its operation, model and duration.
// Prompts and keys are never logged.
func WithLogging(logger *slog.Logger, provider model.ProviderID) ProviderMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next driven.AIProvider) driven.AIProvider {
		return &loggingProvider{next: next, logger: logger.With("provider", string(provider))}
	}
}

type loggingProvider struct {
	next   driven.AIProvider
	logger *slog.Logger
}

func (l *loggingProvider) Generate(ctx context.Context, req driven.GenerateRequest) (string, error) {
	start := time.Now()
	out, err := l.next.Generate(ctx, req)
	attrs := []any{
		"operation", string(req.Operation),
		"model", req.Model,
		"prompt_bytes", len(req.Prompt),
		"duration", time.Since(start),
	}
	if err != nil {
		l.logger.Warn("provider call failed", append(attrs, "error", err)...)
		return out, err
	}
	l.logger.Info("provider call", append(attrs, "response_bytes", len(out))...)
	return out, nil
}

func (l *loggingProvider) ValidateKey(ctx context.Context, secret string) model.ValidationResult {
	start := time.Now()
	result := l.next.ValidateKey(ctx, secret)
	l.logger.Info("credential check",
		"valid", result.Valid(),
		"failure", string(result.Failure),
		"duration", time.Since(start),
	)
	return result
}

// RequestOptions carries the per-call credential and model choice.
type RequestOptions struct {
	APIKey string
	Model  string
}

// ProviderGateway routes generation and validation calls to the registered
// adapter and maps adapter failures onto the application error categories.
// It never retries.
type ProviderGateway struct {
	registry *ProviderRegistry
}

// NewProviderGateway creates a gateway over registry.
func NewProviderGateway(registry *ProviderRegistry) *ProviderGateway {
	return &ProviderGateway{registry: registry}
}

// Invoke sends prompt to the selected provider and returns the raw payload.
// An empty model selects the provider default.
func (g *ProviderGateway) Invoke(
	ctx context.Context,
	provider model.ProviderID,
	opts RequestOptions,
	op model.Operation,
	prompt, subject string,
	shape model.ResponseShape,
) (string, error) {
	p, ok := g.registry.Get(provider)
	if !ok {
		return "", fmt.Errorf("%w: unknown provider %q", ErrMissingInput, provider)
	}

	modelName := opts.Model
	if modelName == "" {
		modelName = provider.DefaultModel()
	}

	out, err := p.Generate(ctx, driven.GenerateRequest{
		Operation: op,
		Prompt:    prompt,
		Subject:   subject,
		Model:     modelName,
		APIKey:    opts.APIKey,
		Shape:     shape,
	})
	if err != nil {
		return "", mapProviderError(err)
	}
	return out, nil
}

// ValidateKey checks secret against provider. An empty secret never reaches
// the adapter.
func (g *ProviderGateway) ValidateKey(ctx context.Context, provider model.ProviderID, secret string) (model.ValidationResult, error) {
	p, ok := g.registry.Get(provider)
	if !ok {
		return model.ValidationResult{}, fmt.Errorf("%w: unknown provider %q", ErrMissingInput, provider)
	}
	if secret == "" {
		return model.ValidationFailed(model.ValidationFailureEmptySecret), nil
	}
	return p.ValidateKey(ctx, secret), nil
}

func mapProviderError(err error) error {
	if errors.Is(err, driven.ErrMissingAPIKey) {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}
	return fmt.Errorf("%w: %w", ErrProvider, err)
}
