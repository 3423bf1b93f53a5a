package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

// ErrMissingAPIKey is returned by providers that need a key when none was
// supplied. It is checked before any network call.
var ErrMissingAPIKey = errors.New("api key not provided")

// GenerateRequest is a single generation call. Operation and Subject are
// explicit so that providers never have to parse the prompt to decide what
// is being asked.
type GenerateRequest struct {
	Operation model.Operation
	Prompt    string
	Subject   string // Topic for discovery, niche title for scripts.
	Model     string
	APIKey    string
	Shape     model.ResponseShape
}

// AIProvider defines the driven port for a generative-AI backend.
type AIProvider interface {
	// Generate returns the raw text payload of the provider's response.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	// ValidateKey checks a secret. It never returns an error; the failure
	// reason is carried in the result.
	ValidateKey(ctx context.Context, secret string) model.ValidationResult
}
