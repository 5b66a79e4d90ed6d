package service

import (
	"smartdna/internal/domain"
	"smartdna/internal/llm"
)

// testRegistry arma el catalogo completo; solo los ids recibidos tienen credencial.
func testRegistry(withKeys ...domain.ProviderID) *llm.Registry {
	keyed := make(map[domain.ProviderID]bool, len(withKeys))
	for _, id := range withKeys {
		keyed[id] = true
	}
	configs := []domain.ProviderConfig{
		{ID: domain.ProviderDeepInfra, Model: "meta-llama/Meta-Llama-3.1-70B-Instruct", CostPer1KInput: 0.0007, CostPer1KOutput: 0.0009},
		{ID: domain.ProviderOpenAI, Model: "gpt-4-turbo-preview", CostPer1KInput: 0.01, CostPer1KOutput: 0.03, SupportsImages: true},
		{ID: domain.ProviderAnthropic, Model: "claude-3-5-sonnet-20241022", CostPer1KInput: 0.003, CostPer1KOutput: 0.015},
		{ID: domain.ProviderGroq, Model: "llama-3.1-70b-versatile"},
		{ID: domain.ProviderGemini, Model: "gemini-1.5-flash"},
	}
	for i := range configs {
		if keyed[configs[i].ID] {
			configs[i].APIKey = "key-" + string(configs[i].ID)
		}
	}
	return llm.NewRegistry(configs)
}
