package application_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/nichescript/internal/application"
	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

func newGateway(p *fakeProvider) *application.ProviderGateway {
	registry := application.NewProviderRegistry()
	registry.Replace(model.ProviderGemini, p)
	return application.NewProviderGateway(registry)
}

func TestGateway_InvokePassesRequestThrough(t *testing.T) {
	p := &fakeProvider{response: "payload"}
	gw := newGateway(p)

	out, err := gw.Invoke(context.Background(), model.ProviderGemini,
		application.RequestOptions{APIKey: "k", Model: "gemini-2.5-flash"},
		model.OperationDiscoverNiches, "prompt", "cooking", model.ShapeNicheListExtended)
	require.NoError(t, err)
	assert.Equal(t, "payload", out)

	calls := p.generateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, driven.GenerateRequest{
		Operation: model.OperationDiscoverNiches,
		Prompt:    "prompt",
		Subject:   "cooking",
		Model:     "gemini-2.5-flash",
		APIKey:    "k",
		Shape:     model.ShapeNicheListExtended,
	}, calls[0])
}

func TestGateway_EmptyModelUsesProviderDefault(t *testing.T) {
	p := &fakeProvider{}
	gw := newGateway(p)

	_, err := gw.Invoke(context.Background(), model.ProviderGemini, application.RequestOptions{APIKey: "k"},
		model.OperationWriteScript, "p", "s", model.ShapeText)
	require.NoError(t, err)
	assert.Equal(t, model.ProviderGemini.DefaultModel(), p.generateCalls()[0].Model)
}

func TestGateway_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "missing key", err: driven.ErrMissingAPIKey, wantErr: application.ErrAuth},
		{name: "transport", err: errors.New("connection reset"), wantErr: application.ErrProvider},
		{name: "cancelled", err: context.Canceled, wantErr: application.ErrProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newGateway(&fakeProvider{err: tt.err})

			_, err := gw.Invoke(context.Background(), model.ProviderGemini, application.RequestOptions{},
				model.OperationWriteScript, "p", "s", model.ShapeText)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestGateway_UnknownProvider(t *testing.T) {
	gw := newGateway(&fakeProvider{})

	_, err := gw.Invoke(context.Background(), model.ProviderChatGPT, application.RequestOptions{},
		model.OperationWriteScript, "p", "s", model.ShapeText)
	require.ErrorIs(t, err, application.ErrMissingInput)
}

func TestGateway_ValidateEmptySecretSkipsAdapter(t *testing.T) {
	p := &fakeProvider{validation: model.ValidationOK}
	gw := newGateway(p)

	result, err := gw.ValidateKey(context.Background(), model.ProviderGemini, "")
	require.NoError(t, err)
	assert.Equal(t, model.ValidationFailureEmptySecret, result.Failure)
	assert.Empty(t, p.validateCalls())
}

func TestWithLogging_NeverLogsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := &fakeProvider{response: "ok", validation: model.ValidationOK}
	wrapped := application.WrapProvider(p, application.WithLogging(logger, model.ProviderGemini))

	_, err := wrapped.Generate(context.Background(), driven.GenerateRequest{
		Operation: model.OperationWriteScript,
		Prompt:    "top secret prompt",
		APIKey:    "AIza-very-secret",
		Model:     "gemini-2.5-pro",
	})
	require.NoError(t, err)
	wrapped.ValidateKey(context.Background(), "AIza-very-secret")

	out := buf.String()
	assert.Contains(t, out, "provider call")
	assert.Contains(t, out, "credential check")
	assert.Contains(t, out, "provider=gemini")
	assert.NotContains(t, out, "AIza-very-secret")
	assert.NotContains(t, out, "top secret prompt")
}
