package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartdna/internal/domain"
)

func TestOpenAIClient_CallSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key-1" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		var body chatRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Model != "m1" || body.MaxTokens != 2000 || len(body.Messages) != 1 || body.Messages[0].Content != "hola" {
			t.Fatalf("unexpected request: %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"respuesta"}}],"usage":{"prompt_tokens":3,"completion_tokens":7}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.Client(), nil)
	cfg := domain.ProviderConfig{ID: domain.ProviderDeepInfra, APIKey: "key-1", BaseURL: srv.URL}
	res, err := client.Call(context.Background(), cfg, CallRequest{Model: "m1", Prompt: "hola", MaxTokens: 2000, Temperature: 0.7})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if res.Content != "respuesta" || res.InputTokens != 3 || res.OutputTokens != 7 || res.TotalTokens() != 10 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestOpenAIClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.Client(), nil)
	cfg := domain.ProviderConfig{ID: domain.ProviderGroq, APIKey: "k", BaseURL: srv.URL}
	_, err := client.Call(context.Background(), cfg, CallRequest{Model: "m", Prompt: "p"})
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Kind != KindStatus || pe.StatusCode != http.StatusServiceUnavailable || pe.Provider != domain.ProviderGroq {
		t.Fatalf("unexpected error: %+v", pe)
	}
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.Client(), nil)
	cfg := domain.ProviderConfig{ID: domain.ProviderOpenAI, APIKey: "k", BaseURL: srv.URL}
	_, err := client.Call(context.Background(), cfg, CallRequest{Model: "m", Prompt: "p"})
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Kind != KindEmpty {
		t.Fatalf("expected empty error, got %v", err)
	}
}

func TestOpenAIClient_DeadlineIsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.Client(), nil)
	cfg := domain.ProviderConfig{ID: domain.ProviderOpenAI, APIKey: "k", BaseURL: srv.URL}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := client.Call(ctx, cfg, CallRequest{Model: "m", Prompt: "p"})
	if !IsTimeout(err) {
		t.Fatalf("expected timeout, got %v", err)
	}
}

func TestOpenAIClient_GenerateImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/generations" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var body imageRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.N != 1 || body.Size != "1024x1024" || body.Model != "dall-e-3" {
			t.Fatalf("unexpected request: %+v", body)
		}
		_, _ = w.Write([]byte(`{"data":[{"url":"https://img.example/1.png","revised_prompt":"rp"}]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.Client(), nil)
	cfg := domain.ProviderConfig{ID: domain.ProviderOpenAI, APIKey: "k", BaseURL: srv.URL}
	res, err := client.GenerateImage(context.Background(), cfg, ImageRequest{Model: "dall-e-3", Prompt: "logo", Size: "1024x1024"})
	if err != nil {
		t.Fatalf("generate image: %v", err)
	}
	if res.URL != "https://img.example/1.png" || res.RevisedPrompt != "rp" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
