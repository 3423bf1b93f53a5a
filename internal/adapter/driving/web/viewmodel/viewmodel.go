// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// Tone is the color class of a score bar.
type Tone string

const (
	ToneGood Tone = "good"
	ToneWarn Tone = "warn"
	ToneBad  Tone = "bad"
)

// ScoreBarViewModel holds one rendered score. Percent is the bar width.
// Caption is set for competition bars, whose scale is inverted.
type ScoreBarViewModel struct {
	Label       string
	Score       int
	Max         int
	Percent     int
	Tone        Tone
	Explanation string
	Caption     string
}

// NicheCardViewModel holds presentation-ready data for one niche card.
type NicheCardViewModel struct {
	Index            int
	Title            string
	Description      string
	Monetization     ScoreBarViewModel
	Audience         ScoreBarViewModel
	Competition      ScoreBarViewModel
	ContentDirection string
	Keywords         []string
	Selected         bool
}

// EngineOptionViewModel is one provider/model choice in the engine picker.
type EngineOptionViewModel struct {
	Value    string // "<provider>|<model>"
	Provider string
	Model    string
	Selected bool
}

// EngineGroupViewModel groups engine options by provider.
type EngineGroupViewModel struct {
	Provider string
	Options  []EngineOptionViewModel
}

// CredentialViewModel holds presentation data for a stored key.
type CredentialViewModel struct {
	ID          string
	Provider    string
	Name        string
	MaskedKey   string
	Status      string
	StatusLabel string
	ValidateURL string
	DeleteURL   string
}

// CredentialGroupViewModel lists one provider's keys.
type CredentialGroupViewModel struct {
	ProviderID  string
	Provider    string
	Credentials []CredentialViewModel
}

// SessionViewModel holds presentation data for a saved session.
type SessionViewModel struct {
	ID         string
	Name       string
	Topic      string
	Provider   string
	NicheCount int
	HasScript  bool
	SavedAt    string
	LoadURL    string
	DeleteURL  string
}

// FlashViewModel is a one-shot message shown above the page content.
type FlashViewModel struct {
	Message string
	IsError bool
	// ManageCredentials links the message to the key manager.
	ManageCredentials bool
}

// WorkspacePageViewModel holds all data needed to render the workspace page.
type WorkspacePageViewModel struct {
	CSRFToken     string
	Flash         *FlashViewModel
	Topic         string
	Engines       []EngineGroupViewModel
	Credentials   []CredentialViewModel // valid keys only
	Niches        []NicheCardViewModel
	SelectedTitle string
	ScriptHTML    string
	HasScript     bool
	CanSave       bool
	DefaultName   string
}

// CredentialsPageViewModel holds all data needed to render the key manager.
type CredentialsPageViewModel struct {
	CSRFToken string
	Flash     *FlashViewModel
	Groups    []CredentialGroupViewModel
	Providers []EngineGroupViewModel
}

// SessionsPageViewModel holds all data needed to render the session library.
type SessionsPageViewModel struct {
	CSRFToken string
	Flash     *FlashViewModel
	Sessions  []SessionViewModel
}
