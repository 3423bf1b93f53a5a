package model

// ProviderID identifies an AI backend the user can select.
type ProviderID string

const (
	// ProviderGemini is the live generative backend.
	ProviderGemini ProviderID = "gemini"
	// ProviderChatGPT is served by the deterministic stub.
	ProviderChatGPT ProviderID = "chatgpt"
)

var providerModels = map[ProviderID][]string{
	ProviderGemini:  {"gemini-2.5-pro", "gemini-2.5-flash", "gemini-flash-latest"},
	ProviderChatGPT: {"gpt-5", "gpt-4o", "gpt-4-turbo", "gpt-3.5-turbo"},
}

// Providers returns every known provider in display order.
func Providers() []ProviderID {
	return []ProviderID{ProviderGemini, ProviderChatGPT}
}

// Valid reports whether p is a known provider.
func (p ProviderID) Valid() bool {
	_, ok := providerModels[p]
	return ok
}

// DisplayName returns the human-readable provider name.
func (p ProviderID) DisplayName() string {
	switch p {
	case ProviderGemini:
		return "Gemini"
	case ProviderChatGPT:
		return "ChatGPT"
	default:
		return string(p)
	}
}

// Models returns a copy of the provider's model catalog.
func (p ProviderID) Models() []string {
	models := providerModels[p]
	out := make([]string, len(models))
	copy(out, models)
	return out
}

// DefaultModel returns the first catalog entry, or "" for unknown providers.
func (p ProviderID) DefaultModel() string {
	models := providerModels[p]
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

// SupportsModel reports whether model is in the provider's catalog.
func (p ProviderID) SupportsModel(model string) bool {
	for _, m := range providerModels[p] {
		if m == model {
			return true
		}
	}
	return false
}
