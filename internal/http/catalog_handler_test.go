package http

import (
	"net/http"
	"strings"
	"testing"

	"smartdna/internal/domain"
	"smartdna/internal/llm"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t, &llm.MockClient{}, domain.ProviderGroq, domain.ProviderGemini)
	rec := env.do(t, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "healthy" || body["providers_available"] != float64(2) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestProvidersListsUnavailable(t *testing.T) {
	env := newTestEnv(t, &llm.MockClient{}, domain.ProviderOpenAI)
	rec := env.do(t, http.MethodGet, "/ai/providers", "", nil)
	providers := decodeBody(t, rec)["providers"].([]any)
	if len(providers) != len(domain.Providers) {
		t.Fatalf("expected every provider listed: %v", providers)
	}
	for _, p := range providers {
		entry := p.(map[string]any)
		if want := entry["name"] == "openai"; entry["available"] != want {
			t.Fatalf("unexpected availability: %v", entry)
		}
	}
}

func TestHubsAndTemplates(t *testing.T) {
	env := newTestEnv(t, &llm.MockClient{})
	user := assessedUser("u1", 80)
	user.HubAlignments[domain.HubFinance] = 20
	token := env.addUser(t, user)

	rec := env.do(t, http.MethodGet, "/hubs", token, nil)
	hubs := decodeBody(t, rec)["hubs"].([]any)
	if len(hubs) != len(domain.HubCatalog) {
		t.Fatalf("expected %d hubs, got %d", len(domain.HubCatalog), len(hubs))
	}
	fin := hubs[1].(map[string]any)
	if fin["id"] != "finhub" || fin["access"] != false || fin["alignment_score"] != float64(20) {
		t.Fatalf("unexpected finhub entry: %v", fin)
	}

	rec = env.do(t, http.MethodGet, "/hubs/techhub/templates", "", nil)
	if body := decodeBody(t, rec); body["hub"] != "TechHub" {
		t.Fatalf("unexpected templates: %v", body)
	}
	if rec := env.do(t, http.MethodGet, "/hubs/nohub/templates", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreditsQuote(t *testing.T) {
	env := newTestEnv(t, &llm.MockClient{})
	token := env.addUser(t, assessedUser("u1", 92))

	rec := env.do(t, http.MethodGet, "/credits/quote?hub=hrhub&content_type=document", token, nil)
	if body := decodeBody(t, rec); body["credits"] != float64(16) {
		t.Fatalf("unexpected quote: %v", body)
	}
	if rec := env.do(t, http.MethodGet, "/credits/quote?hub=bad", token, nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, &llm.MockClient{})
	env.do(t, http.MethodGet, "/health", "", nil)

	rec := env.do(t, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `smartdna_http_requests_total{endpoint="/health",method="GET",status="200"} 1`) {
		t.Fatalf("request metric missing:\n%s", rec.Body.String())
	}
}
