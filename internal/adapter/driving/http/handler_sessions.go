package httphandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ListSessions returns the session library, most recent first.
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List(r.Context())
	if err != nil {
		h.writeServiceError(w, "failed to list sessions", err)
		return
	}

	resp := make([]SessionSummaryResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, toSessionSummary(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// SaveSession snapshots the workspace. The body is optional; an empty name
// falls back to one derived from the topic.
func (h *Handler) SaveSession(w http.ResponseWriter, r *http.Request) {
	var req SaveSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.workspace.SaveSession(r.Context(), req.Name)
	if err != nil {
		h.writeServiceError(w, "failed to save session", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(sess))
}

// GetSession returns one saved session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Load(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, "failed to get session", err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

// DeleteSession removes a saved session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.workspace.DeleteSession(r.Context(), r.PathValue("id")); err != nil {
		h.writeServiceError(w, "failed to delete session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LoadSession restores a saved session into the workspace and returns it.
func (h *Handler) LoadSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.workspace.LoadSession(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, "failed to load session", err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkspaceResponse(state))
}
