package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ericfisherdev/nichescript/internal/application"
	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body. Action hints at what the
// user can do about it.
type errorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
}

// actionManageCredentials tells clients to send the user to the key manager.
const actionManageCredentials = "manage_credentials"

// errorStatus maps an application error onto an HTTP status, a client-safe
// message and an optional action.
func errorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, application.ErrMissingInput):
		return http.StatusBadRequest, err.Error(), ""
	case errors.Is(err, application.ErrAuth):
		return http.StatusUnauthorized, err.Error(), actionManageCredentials
	case errors.Is(err, application.ErrInvalidFormat):
		return http.StatusBadGateway, "the provider returned data in an unexpected format, please try again", ""
	case errors.Is(err, application.ErrProvider):
		return http.StatusBadGateway, "the provider request failed, please try again", ""
	case errors.Is(err, application.ErrSuperseded):
		return http.StatusConflict, "superseded by a newer request", ""
	case errors.Is(err, driven.ErrCredentialNotFound):
		return http.StatusNotFound, "credential not found", ""
	case errors.Is(err, driven.ErrSessionNotFound):
		return http.StatusNotFound, "session not found", ""
	default:
		return http.StatusInternalServerError, "internal server error", ""
	}
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ProviderResponse describes one selectable provider.
type ProviderResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Models       []string `json:"models"`
	DefaultModel string   `json:"default_model"`
}

// CredentialResponse is a credential with its secret masked.
type CredentialResponse struct {
	ID        string `json:"id"`
	Provider  string `json:"provider"`
	Name      string `json:"name"`
	MaskedKey string `json:"masked_key"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// AddCredentialRequest is the JSON body for adding a credential.
type AddCredentialRequest struct {
	Provider string `json:"provider"`
	Name     string `json:"name"`
	Key      string `json:"key"`
}

// ValidateKeyRequest is the JSON body for checking an unsaved key.
type ValidateKeyRequest struct {
	Provider string `json:"provider"`
	Key      string `json:"key"`
}

// ValidationResponse reports a credential check.
type ValidationResponse struct {
	Valid   bool   `json:"valid"`
	Failure string `json:"failure,omitempty"`
}

// ScoreResponse is a score with its consumer-facing reading.
type ScoreResponse struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
	Outlook     string `json:"outlook"`
}

// NicheResponse is an analyzed niche. CompetitionLabel reads the inverted
// competition score in words.
type NicheResponse struct {
	Title                 string        `json:"title"`
	Description           string        `json:"description"`
	MonetizationPotential ScoreResponse `json:"monetization_potential"`
	AudiencePotential     ScoreResponse `json:"audience_potential"`
	CompetitionLevel      ScoreResponse `json:"competition_level"`
	CompetitionLabel      string        `json:"competition_label"`
	ContentDirection      string        `json:"content_direction"`
	Keywords              []string      `json:"keywords"`
}

// GenerationRequest selects provider, model and credential for a call.
type GenerationRequest struct {
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	CredentialID string `json:"credential_id"`
}

// DiscoverRequest is the JSON body for niche discovery.
type DiscoverRequest struct {
	GenerationRequest
	Topic string `json:"topic"`
}

// DiscoverResponse lists discovered niches.
type DiscoverResponse struct {
	Topic  string          `json:"topic"`
	Niches []NicheResponse `json:"niches"`
}

// ScriptRequest is the JSON body for script writing.
type ScriptRequest struct {
	GenerationRequest
	Niche model.AnalyzedNiche `json:"niche"`
}

// ScriptResponse carries a generated script as Markdown.
type ScriptResponse struct {
	Niche  string `json:"niche"`
	Script string `json:"script"`
}

// WorkspaceResponse is the current working state.
type WorkspaceResponse struct {
	Topic         string          `json:"topic"`
	Provider      string          `json:"provider"`
	Model         string          `json:"model"`
	Niches        []NicheResponse `json:"niches"`
	SelectedNiche *NicheResponse  `json:"selected_niche"`
	Script        string          `json:"script"`
	Discovering   bool            `json:"discovering"`
	Writing       bool            `json:"writing"`
}

// SaveSessionRequest is the JSON body for saving the workspace.
type SaveSessionRequest struct {
	Name string `json:"name"`
}

// SessionSummaryResponse is a session as listed in the library.
type SessionSummaryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Topic      string `json:"topic"`
	Provider   string `json:"provider"`
	NicheCount int    `json:"niche_count"`
	HasScript  bool   `json:"has_script"`
	Timestamp  string `json:"timestamp"`
}

// SessionResponse is a full saved session.
type SessionResponse struct {
	SessionSummaryResponse
	Niches        []NicheResponse `json:"niches"`
	SelectedNiche *NicheResponse  `json:"selected_niche"`
	Script        string          `json:"script"`
}

func toCredentialResponse(c model.Credential) CredentialResponse {
	return CredentialResponse{
		ID:        c.ID,
		Provider:  string(c.Provider),
		Name:      c.Name,
		MaskedKey: c.Masked(),
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toValidationResponse(r model.ValidationResult) ValidationResponse {
	resp := ValidationResponse{Valid: r.Valid()}
	if !resp.Valid {
		resp.Failure = string(r.Failure)
	}
	return resp
}

func toPotentialResponse(s model.Score) ScoreResponse {
	return ScoreResponse{Score: s.Score, Explanation: s.Explanation, Outlook: string(s.PotentialOutlook())}
}

func toNicheResponse(n model.AnalyzedNiche) NicheResponse {
	keywords := n.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return NicheResponse{
		Title:                 n.Title,
		Description:           n.Description,
		MonetizationPotential: toPotentialResponse(n.MonetizationPotential),
		AudiencePotential:     toPotentialResponse(n.AudiencePotential),
		CompetitionLevel: ScoreResponse{
			Score:       n.CompetitionLevel.Score,
			Explanation: n.CompetitionLevel.Explanation,
			Outlook:     string(n.CompetitionLevel.CompetitionOutlook()),
		},
		CompetitionLabel: n.CompetitionLevel.CompetitionLabel(),
		ContentDirection: n.ContentDirection,
		Keywords:         keywords,
	}
}

func toNicheResponses(niches []model.AnalyzedNiche) []NicheResponse {
	out := make([]NicheResponse, 0, len(niches))
	for _, n := range niches {
		out = append(out, toNicheResponse(n))
	}
	return out
}

func toOptionalNiche(n *model.AnalyzedNiche) *NicheResponse {
	if n == nil {
		return nil
	}
	resp := toNicheResponse(*n)
	return &resp
}

func toWorkspaceResponse(s application.WorkspaceState) WorkspaceResponse {
	return WorkspaceResponse{
		Topic:         s.Topic,
		Provider:      string(s.Provider),
		Model:         s.Model,
		Niches:        toNicheResponses(s.Niches),
		SelectedNiche: toOptionalNiche(s.SelectedNiche),
		Script:        s.Script,
		Discovering:   s.Discovering,
		Writing:       s.Writing,
	}
}

func toSessionSummary(s model.Session) SessionSummaryResponse {
	return SessionSummaryResponse{
		ID:         s.ID,
		Name:       s.Name,
		Topic:      s.Topic,
		Provider:   string(s.Provider),
		NicheCount: len(s.Niches),
		HasScript:  s.Script != "",
		Timestamp:  s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toSessionResponse(s model.Session) SessionResponse {
	return SessionResponse{
		SessionSummaryResponse: toSessionSummary(s),
		Niches:                 toNicheResponses(s.Niches),
		SelectedNiche:          toOptionalNiche(s.SelectedNiche),
		Script:                 s.Script,
	}
}
