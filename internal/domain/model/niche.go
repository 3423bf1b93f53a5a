package model

// Niche is the basic proposal shape: a narrow content topic for a channel.
type Niche struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Score is an integer rating from MinScore to MaxScore with its justification.
type Score struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// Score bounds, inclusive.
const (
	MinScore = 1
	MaxScore = 10
)

// InRange reports whether the score lies within [MinScore, MaxScore].
func (s Score) InRange() bool {
	return s.Score >= MinScore && s.Score <= MaxScore
}

// PotentialOutlook reads the score as a potential: higher is better.
// Use it for monetization and audience scores only.
func (s Score) PotentialOutlook() Outlook {
	switch {
	case s.Score >= 8:
		return OutlookFavorable
	case s.Score >= 4:
		return OutlookModerate
	default:
		return OutlookUnfavorable
	}
}

// CompetitionOutlook reads the score as saturation: higher is worse.
func (s Score) CompetitionOutlook() Outlook {
	switch {
	case s.Score <= 3:
		return OutlookFavorable
	case s.Score <= 7:
		return OutlookModerate
	default:
		return OutlookUnfavorable
	}
}

// CompetitionLabel describes a competition score in words.
func (s Score) CompetitionLabel() string {
	switch s.CompetitionOutlook() {
	case OutlookFavorable:
		return "low competition"
	case OutlookModerate:
		return "moderately competitive"
	default:
		return "highly competitive"
	}
}

// AnalyzedNiche is the extended proposal shape with three scores.
//
// CompetitionLevel is inverted relative to the other two scores: a high
// competition score means a saturated niche, which is bad, while a high
// monetization or audience score is good. Consumers must read it through
// CompetitionOutlook, never PotentialOutlook.
type AnalyzedNiche struct {
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	MonetizationPotential Score    `json:"monetization_potential"`
	AudiencePotential     Score    `json:"audience_potential"`
	CompetitionLevel      Score    `json:"competition_level"`
	ContentDirection      string   `json:"content_direction"`
	Keywords              []string `json:"keywords"`
}

// Basic returns the title/description projection of the niche.
func (n AnalyzedNiche) Basic() Niche {
	return Niche{Title: n.Title, Description: n.Description}
}
