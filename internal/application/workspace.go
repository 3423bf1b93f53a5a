package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

// Fence keys for the two provider-backed operations.
const (
	fenceDiscover = "discover"
	fenceScript   = "script"
)

// WorkspaceState is the single user's working state.
type WorkspaceState struct {
	Topic         string                `json:"topic"`
	Provider      model.ProviderID      `json:"provider"`
	Model         string                `json:"model"`
	Niches        []model.AnalyzedNiche `json:"niches"`
	SelectedNiche *model.AnalyzedNiche  `json:"selected_niche,omitempty"`
	Script        string                `json:"script"`
	Discovering   bool                  `json:"discovering"`
	Writing       bool                  `json:"writing"`
}

func (s WorkspaceState) clone() WorkspaceState {
	out := s
	if s.Niches != nil {
		out.Niches = make([]model.AnalyzedNiche, len(s.Niches))
		for i, n := range s.Niches {
			out.Niches[i] = cloneNiche(n)
		}
	}
	if s.SelectedNiche != nil {
		n := cloneNiche(*s.SelectedNiche)
		out.SelectedNiche = &n
	}
	return out
}

func cloneNiche(n model.AnalyzedNiche) model.AnalyzedNiche {
	if n.Keywords != nil {
		n.Keywords = append([]string(nil), n.Keywords...)
	}
	return n
}

// Generation selects the provider, model and credential for one call. An
// empty CredentialID uses the provider's active credential.
type Generation struct {
	Provider     model.ProviderID
	Model        string
	CredentialID string
}

// Workspace orchestrates discovery, scripting and session snapshots on top of
// the credential, gateway and session services. Overlapping requests of the
// same kind are fenced: only the latest may change the state.
type Workspace struct {
	credentials *CredentialService
	gateway     *ProviderGateway
	sessions    *SessionService
	fence       *Fence
	logger      *slog.Logger

	mu    sync.Mutex
	state WorkspaceState
}

// NewWorkspace creates an empty workspace.
func NewWorkspace(credentials *CredentialService, gateway *ProviderGateway, sessions *SessionService, logger *slog.Logger) *Workspace {
	return &Workspace{
		credentials: credentials,
		gateway:     gateway,
		sessions:    sessions,
		fence:       NewFence(),
		logger:      logger,
		state:       WorkspaceState{Provider: model.ProviderGemini},
	}
}

// Snapshot returns a copy of the current state.
func (w *Workspace) Snapshot() WorkspaceState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.clone()
}

// resolveOptions validates gen and resolves its credential.
func (w *Workspace) resolveOptions(ctx context.Context, gen Generation) (RequestOptions, error) {
	if !gen.Provider.Valid() {
		return RequestOptions{}, fmt.Errorf("%w: unknown provider %q", ErrMissingInput, gen.Provider)
	}
	if gen.Model != "" && !gen.Provider.SupportsModel(gen.Model) {
		return RequestOptions{}, fmt.Errorf("%w: model %q is not offered by %s", ErrMissingInput, gen.Model, gen.Provider.DisplayName())
	}

	cred, err := w.credentials.Resolve(ctx, gen.Provider, gen.CredentialID)
	if err != nil {
		return RequestOptions{}, err
	}
	return RequestOptions{APIKey: cred.Secret, Model: gen.Model}, nil
}

// DiscoverNiches asks the provider for niches about topic. On success the
// niches replace the workspace list and clear the selection and script.
func (w *Workspace) DiscoverNiches(ctx context.Context, topic string, gen Generation) ([]model.AnalyzedNiche, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is empty", ErrMissingInput)
	}
	opts, err := w.resolveOptions(ctx, gen)
	if err != nil {
		return nil, err
	}

	reqCtx, ticket := w.fence.BeginApply(ctx, fenceDiscover, func() {
		w.update(func(s *WorkspaceState) { s.Discovering = true })
	})
	defer w.fence.End(ticket)

	raw, err := w.gateway.Invoke(reqCtx, gen.Provider, opts, model.OperationDiscoverNiches,
		BuildDiscoverPrompt(topic), topic, model.ShapeNicheListExtended)
	var niches []model.AnalyzedNiche
	if err == nil {
		niches, err = ParseNiches(raw, model.ShapeNicheListExtended)
	}

	committed := w.fence.Commit(ticket, func() {
		w.update(func(s *WorkspaceState) {
			s.Discovering = false
			if err != nil {
				return
			}
			s.Topic = topic
			s.Provider = gen.Provider
			s.Model = gen.Model
			s.Niches = niches
			s.SelectedNiche = nil
			s.Script = ""
		})
	})
	if !committed {
		return nil, ErrSuperseded
	}
	if err != nil {
		w.logger.Warn("niche discovery failed", "provider", string(gen.Provider), "error", err)
		return nil, err
	}

	w.logger.Info("niches discovered", "provider", string(gen.Provider), "count", len(niches))
	return niches, nil
}

// WriteScript selects niche and asks the provider for a script about it.
func (w *Workspace) WriteScript(ctx context.Context, niche model.AnalyzedNiche, gen Generation) (string, error) {
	if strings.TrimSpace(niche.Title) == "" {
		return "", fmt.Errorf("%w: niche title is empty", ErrMissingInput)
	}
	opts, err := w.resolveOptions(ctx, gen)
	if err != nil {
		return "", err
	}

	selected := cloneNiche(niche)
	reqCtx, ticket := w.fence.BeginApply(ctx, fenceScript, func() {
		w.update(func(s *WorkspaceState) {
			s.Writing = true
			s.SelectedNiche = &selected
			s.Script = ""
		})
	})
	defer w.fence.End(ticket)

	script, err := w.gateway.Invoke(reqCtx, gen.Provider, opts, model.OperationWriteScript,
		BuildScriptPrompt(niche), niche.Title, model.ShapeText)

	committed := w.fence.Commit(ticket, func() {
		w.update(func(s *WorkspaceState) {
			s.Writing = false
			if err == nil {
				s.Script = script
			}
		})
	})
	if !committed {
		return "", ErrSuperseded
	}
	if err != nil {
		w.logger.Warn("script generation failed", "provider", string(gen.Provider), "error", err)
		return "", err
	}

	w.logger.Info("script written", "provider", string(gen.Provider), "niche", niche.Title, "bytes", len(script))
	return script, nil
}

// SaveSession snapshots the workspace into the session library. A blank name
// becomes "Chủ đề: <topic>".
func (w *Workspace) SaveSession(ctx context.Context, name string) (model.Session, error) {
	state := w.Snapshot()
	if len(state.Niches) == 0 {
		return model.Session{}, fmt.Errorf("%w: nothing to save yet", ErrMissingInput)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "Chủ đề: " + state.Topic
	}

	return w.sessions.Save(ctx, model.Session{
		Name:          name,
		Topic:         state.Topic,
		Niches:        state.Niches,
		SelectedNiche: state.SelectedNiche,
		Script:        state.Script,
		Provider:      state.Provider,
	})
}

// LoadSession restores a saved session into the workspace. In-flight
// requests are superseded so they cannot overwrite the restored state.
func (w *Workspace) LoadSession(ctx context.Context, id string) (WorkspaceState, error) {
	sess, err := w.sessions.Load(ctx, id)
	if err != nil {
		return WorkspaceState{}, err
	}

	for _, key := range []string{fenceDiscover, fenceScript} {
		_, t := w.fence.Begin(ctx, key)
		w.fence.End(t)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = WorkspaceState{
		Topic:         sess.Topic,
		Provider:      sess.Provider,
		Niches:        sess.Niches,
		SelectedNiche: sess.SelectedNiche,
		Script:        sess.Script,
	}
	if !w.state.Provider.Valid() {
		w.state.Provider = model.ProviderGemini
	}

	w.logger.Info("session loaded", "id", id)
	return w.state.clone(), nil
}

// DeleteSession removes a saved session. The workspace itself is unchanged.
func (w *Workspace) DeleteSession(ctx context.Context, id string) error {
	return w.sessions.Delete(ctx, id)
}

func (w *Workspace) update(fn func(*WorkspaceState)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.state)
}
