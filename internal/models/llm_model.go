package models

// LLMModel represents a single model option offered by a provider.
type LLMModel struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	ProviderID   string `json:"providerId"`
	ProviderName string `json:"providerName"`
}

// LLMModelGroup groups models by their provider for presentation.
type LLMModelGroup struct {
	ProviderID   string     `json:"providerId"`
	ProviderName string     `json:"providerName"`
	KeyURL       string     `json:"keyUrl"`
	Models       []LLMModel `json:"models"`
}

// ProviderKeyInfo describes whether a provider has a stored secret.
type ProviderKeyInfo struct {
	ProviderID  string `json:"provider"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Configured  bool   `json:"configured"`
}
