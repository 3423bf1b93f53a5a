package application_test

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ericfisherdev/nichescript/internal/adapter/driven/kvcollection"
	"github.com/ericfisherdev/nichescript/internal/adapter/driven/memory"
	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// fakeProvider records calls and answers from its fields. A request whose
// subject has an entry in hold blocks until that channel is closed or, unless
// ignoreCancel is set, ctx ends.
type fakeProvider struct {
	mu        sync.Mutex
	requests  []driven.GenerateRequest
	validated []string

	response   string
	err        error
	validation model.ValidationResult
	respond    func(driven.GenerateRequest) (string, error)

	hold         map[string]chan struct{}
	ignoreCancel bool
}

func (f *fakeProvider) Generate(ctx context.Context, req driven.GenerateRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	gate := f.hold[req.Subject]
	respond := f.respond
	f.mu.Unlock()

	if gate != nil {
		if f.ignoreCancel {
			<-gate
		} else {
			select {
			case <-gate:
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	if respond != nil {
		return respond(req)
	}
	return f.response, f.err
}

func (f *fakeProvider) ValidateKey(_ context.Context, secret string) model.ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validated = append(f.validated, secret)
	return f.validation
}

func (f *fakeProvider) generateCalls() []driven.GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]driven.GenerateRequest(nil), f.requests...)
}

func (f *fakeProvider) validateCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.validated...)
}

func newStores() (driven.CredentialStore, driven.SessionStore) {
	kv := memory.NewKVStore()
	return kvcollection.NewCredentialStore(kv, slog.Default()),
		kvcollection.NewSessionStore(kv, slog.Default())
}
