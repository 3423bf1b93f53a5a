// Package gemini implements the AIProvider port on the Gemini API through the
// official genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.AIProvider = (*Client)(nil)

const validationPrompt = "hi"

// DefaultValidationModel is the model used for key checks when none is configured.
const DefaultValidationModel = "gemini-2.5-flash"

// Options configures the adapter. Zero values fall back to the SDK defaults.
type Options struct {
	BaseURL         string
	ValidationModel string
	Timeout         time.Duration
	HTTPClient      *http.Client
}

// Client calls the Gemini API. A genai client is built per call because the
// API key arrives with each request.
type Client struct {
	opts Options
}

// NewClient creates a Gemini adapter.
func NewClient(opts Options) *Client {
	if opts.ValidationModel == "" {
		opts.ValidationModel = DefaultValidationModel
	}
	return &Client{opts: opts}
}

func (c *Client) newGenai(ctx context.Context, apiKey string) (*genai.Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.opts.HTTPClient,
	}
	if c.opts.BaseURL != "" {
		cfg.HTTPOptions.BaseURL = c.opts.BaseURL
	}
	if c.opts.Timeout > 0 {
		timeout := c.opts.Timeout
		cfg.HTTPOptions.Timeout = &timeout
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}

// Generate sends the prompt and returns the response text verbatim. Structured
// shapes request JSON output constrained by a response schema.
func (c *Client) Generate(ctx context.Context, req driven.GenerateRequest) (string, error) {
	if strings.TrimSpace(req.APIKey) == "" {
		return "", driven.ErrMissingAPIKey
	}

	client, err := c.newGenai(ctx, req.APIKey)
	if err != nil {
		return "", err
	}

	var cfg *genai.GenerateContentConfig
	if schema := schemaFor(req.Shape); schema != nil {
		cfg = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		}
	}

	resp, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content with %s: %w", req.Model, err)
	}
	return resp.Text(), nil
}

// ValidateKey makes one minimal generation call with the secret.
func (c *Client) ValidateKey(ctx context.Context, secret string) model.ValidationResult {
	if strings.TrimSpace(secret) == "" {
		return model.ValidationFailed(model.ValidationFailureEmptySecret)
	}

	client, err := c.newGenai(ctx, secret)
	if err != nil {
		return model.ValidationFailed(model.ValidationFailureUnreachable)
	}

	_, err = client.Models.GenerateContent(ctx, c.opts.ValidationModel, genai.Text(validationPrompt), nil)
	if err == nil {
		return model.ValidationOK
	}
	return model.ValidationFailed(classify(err))
}

// classify separates a refused key from everything else.
func classify(err error) model.ValidationFailure {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return model.ValidationFailureRejected
		}
	}
	return model.ValidationFailureUnreachable
}
