package llm

import (
	"math"
	"testing"

	"smartdna/internal/domain"
)

func testConfigs() []domain.ProviderConfig {
	return []domain.ProviderConfig{
		{ID: domain.ProviderDeepInfra, Model: "llama", APIKey: "k1", CostPer1KInput: 0.0001, CostPer1KOutput: 0.0001},
		{ID: domain.ProviderOpenAI, Model: "gpt-4o-mini", CostPer1KInput: 0.00015, CostPer1KOutput: 0.0006, SupportsImages: true},
		{ID: domain.ProviderGroq, Model: "mixtral", APIKey: "k3"},
	}
}

func TestRegistry_StatusListsUncredentialed(t *testing.T) {
	reg := NewRegistry(testConfigs())
	status := reg.Status()
	if len(status) != 3 {
		t.Fatalf("expected 3 providers, got %d", len(status))
	}
	if status[1].Name != domain.ProviderOpenAI || status[1].Available {
		t.Fatalf("openai without key must be listed as unavailable: %+v", status[1])
	}
	want := (0.00015 + 0.0006) / 2
	if math.Abs(status[1].CostPer1KTokens-want) > 1e-12 {
		t.Fatalf("expected averaged cost %v, got %v", want, status[1].CostPer1KTokens)
	}
	if !status[1].SupportsImages {
		t.Fatalf("expected image support flag")
	}
}

func TestRegistry_AvailableAndImageProvider(t *testing.T) {
	reg := NewRegistry(testConfigs())
	if !reg.Available(domain.ProviderDeepInfra) {
		t.Fatalf("deepinfra should be available")
	}
	if reg.Available(domain.ProviderOpenAI) {
		t.Fatalf("openai should not be available")
	}
	if reg.Available(domain.ProviderGemini) {
		t.Fatalf("unknown provider should not be available")
	}
	if reg.ImageProvider() != domain.ProviderOpenAI {
		t.Fatalf("unexpected image provider: %s", reg.ImageProvider())
	}
	if _, ok := reg.Get(domain.ProviderAnthropic); ok {
		t.Fatalf("anthropic was not registered")
	}
}
