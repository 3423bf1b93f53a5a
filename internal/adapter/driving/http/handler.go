package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ericfisherdev/nichescript/internal/application"
	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	credentials *application.CredentialService
	sessions    *application.SessionService
	workspace   *application.Workspace
	registry    *application.ProviderRegistry
	logger      *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	credentials *application.CredentialService,
	sessions *application.SessionService,
	workspace *application.Workspace,
	registry *application.ProviderRegistry,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		credentials: credentials,
		sessions:    sessions,
		workspace:   workspace,
		registry:    registry,
		logger:      logger,
	}
}

// RegisterAPIRoutes registers every /api/v1 route on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/providers", h.ListProviders)

	mux.HandleFunc("GET /api/v1/credentials", h.ListCredentials)
	mux.HandleFunc("POST /api/v1/credentials", h.AddCredential)
	mux.HandleFunc("POST /api/v1/credentials/validate", h.ValidateKey)
	mux.HandleFunc("DELETE /api/v1/credentials/{id}", h.DeleteCredential)
	mux.HandleFunc("POST /api/v1/credentials/{id}/validate", h.ValidateCredential)

	mux.HandleFunc("POST /api/v1/niches/discover", h.DiscoverNiches)
	mux.HandleFunc("POST /api/v1/scripts", h.WriteScript)
	mux.HandleFunc("GET /api/v1/workspace", h.GetWorkspace)

	mux.HandleFunc("GET /api/v1/sessions", h.ListSessions)
	mux.HandleFunc("POST /api/v1/sessions", h.SaveSession)
	mux.HandleFunc("GET /api/v1/sessions/{id}", h.GetSession)
	mux.HandleFunc("DELETE /api/v1/sessions/{id}", h.DeleteSession)
	mux.HandleFunc("POST /api/v1/sessions/{id}/load", h.LoadSession)
}

// NewServeMux creates an http.Handler with only the API routes registered and
// wrapped with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, logger)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// ListProviders returns the providers that have an adapter wired.
func (h *Handler) ListProviders(w http.ResponseWriter, _ *http.Request) {
	ids := h.registry.Registered()
	resp := make([]ProviderResponse, 0, len(ids))
	for _, id := range ids {
		resp = append(resp, ProviderResponse{
			ID:           string(id),
			Name:         id.DisplayName(),
			Models:       id.Models(),
			DefaultModel: id.DefaultModel(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// DiscoverNiches proposes niches for a topic and stores them in the workspace.
func (h *Handler) DiscoverNiches(w http.ResponseWriter, r *http.Request) {
	var req DiscoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	niches, err := h.workspace.DiscoverNiches(r.Context(), req.Topic, toGeneration(req.GenerationRequest))
	if err != nil {
		h.writeServiceError(w, "niche discovery failed", err)
		return
	}

	writeJSON(w, http.StatusOK, DiscoverResponse{
		Topic:  strings.TrimSpace(req.Topic),
		Niches: toNicheResponses(niches),
	})
}

// WriteScript generates a script for the niche in the request body.
func (h *Handler) WriteScript(w http.ResponseWriter, r *http.Request) {
	var req ScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	script, err := h.workspace.WriteScript(r.Context(), req.Niche, toGeneration(req.GenerationRequest))
	if err != nil {
		h.writeServiceError(w, "script generation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, ScriptResponse{Niche: req.Niche.Title, Script: script})
}

// GetWorkspace returns the current working state.
func (h *Handler) GetWorkspace(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toWorkspaceResponse(h.workspace.Snapshot()))
}

// writeServiceError logs unexpected failures and writes the mapped error.
func (h *Handler) writeServiceError(w http.ResponseWriter, msg string, err error) {
	status, message, action := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, "error", err)
	} else {
		h.logger.Debug(msg, "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: message, Action: action})
}

func toGeneration(req GenerationRequest) application.Generation {
	return application.Generation{
		Provider:     model.ProviderID(req.Provider),
		Model:        req.Model,
		CredentialID: req.CredentialID,
	}
}
