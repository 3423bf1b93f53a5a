// Package stub implements a deterministic, offline AIProvider that returns
// canned responses after an artificial delay.
package stub

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.AIProvider = (*Client)(nil)

// Key format accepted by ValidateKey.
const (
	KeyPrefix    = "sk-"
	minKeyLength = 21
)

// Default delays.
const (
	DefaultGenerateDelay = time.Second
	DefaultValidateDelay = 500 * time.Millisecond
)

// Client is the canned provider. It performs no network I/O.
type Client struct {
	generateDelay time.Duration
	validateDelay time.Duration
}

// NewClient creates a stub with the given delays. Zero disables a delay.
func NewClient(generateDelay, validateDelay time.Duration) *Client {
	return &Client{generateDelay: generateDelay, validateDelay: validateDelay}
}

// Generate dispatches on the request's operation.
func (c *Client) Generate(ctx context.Context, req driven.GenerateRequest) (string, error) {
	if err := sleep(ctx, c.generateDelay); err != nil {
		return "", err
	}

	switch req.Operation {
	case model.OperationDiscoverNiches:
		raw, err := json.Marshal(Niches(req.Subject))
		if err != nil {
			return "", fmt.Errorf("encode canned niches: %w", err)
		}
		return string(raw), nil
	case model.OperationWriteScript:
		return Script(req.Model), nil
	default:
		return FallbackResponse, nil
	}
}

// ValidateKey accepts secrets with the "sk-" prefix longer than twenty characters.
func (c *Client) ValidateKey(ctx context.Context, secret string) model.ValidationResult {
	if secret == "" {
		return model.ValidationFailed(model.ValidationFailureEmptySecret)
	}
	if err := sleep(ctx, c.validateDelay); err != nil {
		return model.ValidationFailed(model.ValidationFailureUnreachable)
	}
	if !strings.HasPrefix(secret, KeyPrefix) || len(secret) < minKeyLength {
		return model.ValidationFailed(model.ValidationFailureMalformed)
	}
	return model.ValidationOK
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
