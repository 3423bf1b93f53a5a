package model

import "time"

// Session is a named snapshot of a discovery and script workflow. Sessions
// are immutable once saved; the only mutation is deletion.
type Session struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CreatedAt     time.Time       `json:"timestamp"`
	Topic         string          `json:"topic"`
	Niches        []AnalyzedNiche `json:"niches"`
	SelectedNiche *AnalyzedNiche  `json:"selectedNiche"`
	Script        string          `json:"script"`
	Provider      ProviderID      `json:"provider"`
}
