package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

// ListCredentials returns every stored credential with masked secrets,
// optionally filtered by ?provider=.
func (h *Handler) ListCredentials(w http.ResponseWriter, r *http.Request) {
	var (
		creds []model.Credential
		err   error
	)
	if p := r.URL.Query().Get("provider"); p != "" {
		creds, err = h.credentials.ListByProvider(r.Context(), model.ProviderID(p))
	} else {
		creds, err = h.credentials.List(r.Context())
	}
	if err != nil {
		h.writeServiceError(w, "failed to list credentials", err)
		return
	}

	resp := make([]CredentialResponse, 0, len(creds))
	for _, c := range creds {
		resp = append(resp, toCredentialResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddCredential stores a new key and validates it right away. The response
// carries the status after validation.
func (h *Handler) AddCredential(w http.ResponseWriter, r *http.Request) {
	var req AddCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cred, err := h.credentials.Add(r.Context(), model.ProviderID(req.Provider), req.Name, req.Key)
	if err != nil {
		h.writeServiceError(w, "failed to add credential", err)
		return
	}

	result, err := h.credentials.Validate(r.Context(), cred.ID)
	if err != nil {
		h.logger.Warn("credential added but validation did not complete", "id", cred.ID, "error", err)
	} else {
		cred.Status = result.Status()
	}

	writeJSON(w, http.StatusCreated, toCredentialResponse(cred))
}

// DeleteCredential removes a stored key.
func (h *Handler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	if err := h.credentials.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeServiceError(w, "failed to delete credential", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ValidateCredential re-checks a stored key and persists the outcome.
func (h *Handler) ValidateCredential(w http.ResponseWriter, r *http.Request) {
	result, err := h.credentials.Validate(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, "failed to validate credential", err)
		return
	}
	writeJSON(w, http.StatusOK, toValidationResponse(result))
}

// ValidateKey checks a key without storing it.
func (h *Handler) ValidateKey(w http.ResponseWriter, r *http.Request) {
	var req ValidateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.credentials.ValidateSecret(r.Context(), model.ProviderID(req.Provider), req.Key)
	if err != nil {
		h.writeServiceError(w, "failed to validate key", err)
		return
	}
	writeJSON(w, http.StatusOK, toValidationResponse(result))
}
