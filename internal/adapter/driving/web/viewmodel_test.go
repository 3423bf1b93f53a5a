package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vm "github.com/ericfisherdev/nichescript/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/nichescript/internal/application"
	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

func TestToCompetitionBar_HighScoreIsBad(t *testing.T) {
	bar := toCompetitionBar(model.Score{Score: 9, Explanation: "crowded"})

	assert.Equal(t, vm.ToneBad, bar.Tone)
	assert.Equal(t, "highly competitive", bar.Caption)
	assert.Equal(t, 90, bar.Percent)
	assert.Equal(t, "crowded", bar.Explanation)
}

func TestToCompetitionBar_LowScoreIsGood(t *testing.T) {
	bar := toCompetitionBar(model.Score{Score: 2})

	assert.Equal(t, vm.ToneGood, bar.Tone)
	assert.Equal(t, "low competition", bar.Caption)
}

func TestToPotentialBar_HighScoreIsGood(t *testing.T) {
	tests := []struct {
		score int
		want  vm.Tone
	}{
		{9, vm.ToneGood},
		{8, vm.ToneGood},
		{5, vm.ToneWarn},
		{2, vm.ToneBad},
	}
	for _, tt := range tests {
		bar := toPotentialBar("x", model.Score{Score: tt.score})
		assert.Equal(t, tt.want, bar.Tone, "score %d", tt.score)
		assert.Empty(t, bar.Caption)
	}
}

func TestBarPercent_Clamps(t *testing.T) {
	assert.Equal(t, 0, barPercent(-3))
	assert.Equal(t, 100, barPercent(42))
	assert.Equal(t, 50, barPercent(5))
}

func TestParseEngine(t *testing.T) {
	p, m := parseEngine("chatgpt|gpt-4o")
	assert.Equal(t, model.ProviderChatGPT, p)
	assert.Equal(t, "gpt-4o", m)

	p, m = parseEngine("gemini")
	assert.Equal(t, model.ProviderGemini, p)
	assert.Empty(t, m)
}

func TestToEngineGroups_SelectsDefaultModel(t *testing.T) {
	groups := toEngineGroups(model.Providers(), model.ProviderChatGPT, "")
	require.Len(t, groups, 2)

	var selected []string
	for _, g := range groups {
		for _, o := range g.Options {
			if o.Selected {
				selected = append(selected, o.Value)
			}
		}
	}
	assert.Equal(t, []string{"chatgpt|gpt-5"}, selected)
}

func TestToWorkspacePage(t *testing.T) {
	niches := []model.AnalyzedNiche{
		{Title: "A", CompetitionLevel: model.Score{Score: 9}},
		{Title: "B", CompetitionLevel: model.Score{Score: 1}},
	}
	state := application.WorkspaceState{
		Topic:         "cooking",
		Provider:      model.ProviderGemini,
		Niches:        niches,
		SelectedNiche: &niches[1],
		Script:        "# hi",
	}
	creds := []model.Credential{
		{ID: "1", Provider: model.ProviderGemini, Status: model.CredentialStatusValid, Secret: "AIzaSyExample1234"},
		{ID: "2", Provider: model.ProviderGemini, Status: model.CredentialStatusInvalid, Secret: "bad"},
	}

	page := toWorkspacePage(state, model.Providers(), creds, "<h1>hi</h1>")

	require.Len(t, page.Niches, 2)
	assert.False(t, page.Niches[0].Selected)
	assert.True(t, page.Niches[1].Selected)
	assert.Equal(t, vm.ToneBad, page.Niches[0].Competition.Tone)
	assert.Equal(t, "B", page.SelectedTitle)
	assert.True(t, page.HasScript)
	assert.True(t, page.CanSave)
	assert.Equal(t, "Chủ đề: cooking", page.DefaultName)
	require.Len(t, page.Credentials, 1, "only valid keys are offered")
	assert.Equal(t, "1", page.Credentials[0].ID)
}

func TestToWorkspacePage_Empty(t *testing.T) {
	page := toWorkspacePage(application.WorkspaceState{Provider: model.ProviderGemini}, model.Providers(), nil, "")

	assert.Empty(t, page.Niches)
	assert.False(t, page.CanSave)
	assert.False(t, page.HasScript)
	assert.NotNil(t, page.Credentials)
}

func TestToCredentialGroups(t *testing.T) {
	creds := []model.Credential{
		{ID: "g1", Provider: model.ProviderGemini, Name: "Key Gemini #1", Status: model.CredentialStatusUnvalidated, Secret: "AIzaSyExample1234"},
		{ID: "c1", Provider: model.ProviderChatGPT, Name: "Key ChatGPT #1", Status: model.CredentialStatusValid, Secret: "sk-abcdefghijklmnop"},
	}

	groups := toCredentialGroups(model.Providers(), creds)

	require.Len(t, groups, 2)
	assert.Equal(t, "Gemini", groups[0].Provider)
	require.Len(t, groups[0].Credentials, 1)
	assert.Equal(t, "Chưa xác thực", groups[0].Credentials[0].StatusLabel)
	assert.Equal(t, "/app/credentials/g1/validate", groups[0].Credentials[0].ValidateURL)
	assert.Equal(t, "AIza...1234", groups[0].Credentials[0].MaskedKey)
	require.Len(t, groups[1].Credentials, 1)
	assert.Equal(t, "Hợp lệ", groups[1].Credentials[0].StatusLabel)
}

func TestToSessionViewModel(t *testing.T) {
	s := model.Session{
		ID:        "abc",
		Name:      "Chủ đề: cooking",
		Topic:     "cooking",
		Provider:  model.ProviderChatGPT,
		Niches:    make([]model.AnalyzedNiche, 3),
		Script:    "x",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	got := toSessionViewModel(s)

	assert.Equal(t, 3, got.NicheCount)
	assert.True(t, got.HasScript)
	assert.Equal(t, "ChatGPT", got.Provider)
	assert.Equal(t, "/app/sessions/abc/load", got.LoadURL)
	assert.Equal(t, "/app/sessions/abc/delete", got.DeleteURL)
	assert.NotEmpty(t, got.SavedAt)
}
