package web

import (
	"fmt"
	"strings"
	"time"

	vm "github.com/ericfisherdev/nichescript/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/nichescript/internal/application"
	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

func toneFor(o model.Outlook) vm.Tone {
	switch o {
	case model.OutlookFavorable:
		return vm.ToneGood
	case model.OutlookModerate:
		return vm.ToneWarn
	default:
		return vm.ToneBad
	}
}

func barPercent(score int) int {
	if score < 0 {
		score = 0
	}
	if score > model.MaxScore {
		score = model.MaxScore
	}
	return score * 100 / model.MaxScore
}

// toPotentialBar renders a higher-is-better score.
func toPotentialBar(label string, s model.Score) vm.ScoreBarViewModel {
	return vm.ScoreBarViewModel{
		Label:       label,
		Score:       s.Score,
		Max:         model.MaxScore,
		Percent:     barPercent(s.Score),
		Tone:        toneFor(s.PotentialOutlook()),
		Explanation: s.Explanation,
	}
}

// toCompetitionBar renders the inverted competition score: a long bar is bad.
func toCompetitionBar(s model.Score) vm.ScoreBarViewModel {
	return vm.ScoreBarViewModel{
		Label:       "Mức độ cạnh tranh",
		Score:       s.Score,
		Max:         model.MaxScore,
		Percent:     barPercent(s.Score),
		Tone:        toneFor(s.CompetitionOutlook()),
		Explanation: s.Explanation,
		Caption:     s.CompetitionLabel(),
	}
}

func toNicheCard(i int, n model.AnalyzedNiche, selected *model.AnalyzedNiche) vm.NicheCardViewModel {
	keywords := n.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return vm.NicheCardViewModel{
		Index:            i,
		Title:            n.Title,
		Description:      n.Description,
		Monetization:     toPotentialBar("Tiềm năng kiếm tiền", n.MonetizationPotential),
		Audience:         toPotentialBar("Tiềm năng khán giả", n.AudiencePotential),
		Competition:      toCompetitionBar(n.CompetitionLevel),
		ContentDirection: n.ContentDirection,
		Keywords:         keywords,
		Selected:         selected != nil && selected.Title == n.Title,
	}
}

func engineValue(p model.ProviderID, modelName string) string {
	return string(p) + "|" + modelName
}

// parseEngine splits an engine picker value. A bare provider selects its
// default model.
func parseEngine(v string) (model.ProviderID, string) {
	provider, modelName, _ := strings.Cut(v, "|")
	return model.ProviderID(provider), modelName
}

func toEngineGroups(providers []model.ProviderID, current model.ProviderID, currentModel string) []vm.EngineGroupViewModel {
	if currentModel == "" {
		currentModel = current.DefaultModel()
	}

	groups := make([]vm.EngineGroupViewModel, 0, len(providers))
	for _, p := range providers {
		g := vm.EngineGroupViewModel{Provider: p.DisplayName()}
		for _, m := range p.Models() {
			g.Options = append(g.Options, vm.EngineOptionViewModel{
				Value:    engineValue(p, m),
				Provider: p.DisplayName(),
				Model:    m,
				Selected: p == current && m == currentModel,
			})
		}
		groups = append(groups, g)
	}
	return groups
}

func statusLabel(s model.CredentialStatus) string {
	switch s {
	case model.CredentialStatusValid:
		return "Hợp lệ"
	case model.CredentialStatusInvalid:
		return "Không hợp lệ"
	case model.CredentialStatusValidating:
		return "Đang xác thực"
	default:
		return "Chưa xác thực"
	}
}

func toCredentialViewModel(c model.Credential) vm.CredentialViewModel {
	return vm.CredentialViewModel{
		ID:          c.ID,
		Provider:    c.Provider.DisplayName(),
		Name:        c.Name,
		MaskedKey:   c.Masked(),
		Status:      string(c.Status),
		StatusLabel: statusLabel(c.Status),
		ValidateURL: fmt.Sprintf("/app/credentials/%s/validate", c.ID),
		DeleteURL:   fmt.Sprintf("/app/credentials/%s/delete", c.ID),
	}
}

func toCredentialGroups(providers []model.ProviderID, creds []model.Credential) []vm.CredentialGroupViewModel {
	groups := make([]vm.CredentialGroupViewModel, 0, len(providers))
	for _, p := range providers {
		g := vm.CredentialGroupViewModel{
			ProviderID:  string(p),
			Provider:    p.DisplayName(),
			Credentials: []vm.CredentialViewModel{},
		}
		for _, c := range creds {
			if c.Provider == p {
				g.Credentials = append(g.Credentials, toCredentialViewModel(c))
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func validCredentials(creds []model.Credential) []vm.CredentialViewModel {
	out := []vm.CredentialViewModel{}
	for _, c := range creds {
		if c.Status == model.CredentialStatusValid {
			out = append(out, toCredentialViewModel(c))
		}
	}
	return out
}

func toSessionViewModel(s model.Session) vm.SessionViewModel {
	return vm.SessionViewModel{
		ID:         s.ID,
		Name:       s.Name,
		Topic:      s.Topic,
		Provider:   s.Provider.DisplayName(),
		NicheCount: len(s.Niches),
		HasScript:  s.Script != "",
		SavedAt:    s.CreatedAt.Local().Format(time.DateTime),
		LoadURL:    fmt.Sprintf("/app/sessions/%s/load", s.ID),
		DeleteURL:  fmt.Sprintf("/app/sessions/%s/delete", s.ID),
	}
}

// toWorkspacePage assembles the workspace page. scriptHTML is the already
// rendered script.
func toWorkspacePage(
	state application.WorkspaceState,
	providers []model.ProviderID,
	creds []model.Credential,
	scriptHTML string,
) vm.WorkspacePageViewModel {
	page := vm.WorkspacePageViewModel{
		Topic:       state.Topic,
		Engines:     toEngineGroups(providers, state.Provider, state.Model),
		Credentials: validCredentials(creds),
		Niches:      make([]vm.NicheCardViewModel, 0, len(state.Niches)),
		ScriptHTML:  scriptHTML,
		HasScript:   state.Script != "",
		CanSave:     len(state.Niches) > 0,
		DefaultName: "Chủ đề: " + state.Topic,
	}
	for i, n := range state.Niches {
		page.Niches = append(page.Niches, toNicheCard(i, n, state.SelectedNiche))
	}
	if state.SelectedNiche != nil {
		page.SelectedTitle = state.SelectedNiche.Title
	}
	return page
}
