package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartdna/internal/domain"
)

func TestDispatcher_RoutesByProvider(t *testing.T) {
	deep := &MockClient{Responses: map[domain.ProviderID]MockResponse{
		domain.ProviderDeepInfra: {Result: CallResult{Content: "deep"}},
	}}
	groq := &MockClient{Responses: map[domain.ProviderID]MockResponse{
		domain.ProviderGroq: {Result: CallResult{Content: "groq"}},
	}}
	d := NewDispatcher(nil)
	d.Register(domain.ProviderDeepInfra, deep, 0, 0)
	d.Register(domain.ProviderGroq, groq, 0, 0)

	res, err := d.Call(context.Background(), domain.ProviderConfig{ID: domain.ProviderGroq}, CallRequest{Prompt: "p"})
	if err != nil || res.Content != "groq" {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
	if len(deep.Calls()) != 0 {
		t.Fatalf("deepinfra should not be called")
	}
}

func TestDispatcher_UnregisteredProvider(t *testing.T) {
	d := NewDispatcher(nil)
	_, err := d.Call(context.Background(), domain.ProviderConfig{ID: domain.ProviderGemini}, CallRequest{})
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Provider != domain.ProviderGemini {
		t.Fatalf("expected provider error, got %v", err)
	}
	if _, err := d.GenerateImage(context.Background(), domain.ProviderConfig{ID: domain.ProviderOpenAI}, ImageRequest{}); err == nil {
		t.Fatalf("expected error without image backend")
	}
}

func TestDispatcher_RateLimitHonorsCancellation(t *testing.T) {
	mock := &MockClient{Responses: map[domain.ProviderID]MockResponse{
		domain.ProviderOpenAI: {Result: CallResult{Content: "ok"}},
	}}
	d := NewDispatcher(nil)
	d.Register(domain.ProviderOpenAI, mock, 0.001, 1)
	cfg := domain.ProviderConfig{ID: domain.ProviderOpenAI}

	if _, err := d.Call(context.Background(), cfg, CallRequest{}); err != nil {
		t.Fatalf("first call should use the burst: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := d.Call(ctx, cfg, CallRequest{}); err == nil {
		t.Fatalf("expected rate limit error")
	}
	if got := len(mock.Calls()); got != 1 {
		t.Fatalf("expected 1 backend call, got %d", got)
	}
}

func TestDispatcher_CleansContent(t *testing.T) {
	mock := &MockClient{Responses: map[domain.ProviderID]MockResponse{
		domain.ProviderGroq:      {Result: CallResult{Content: "<think>draft</think>\n```\nFinal copy\n```"}},
		domain.ProviderDeepInfra: {Result: CallResult{Content: "<think>only reasoning</think>"}},
	}}
	d := NewDispatcher(nil)
	d.Register(domain.ProviderGroq, mock, 0, 0)
	d.Register(domain.ProviderDeepInfra, mock, 0, 0)

	res, err := d.Call(context.Background(), domain.ProviderConfig{ID: domain.ProviderGroq}, CallRequest{})
	if err != nil || res.Content != "Final copy" {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}

	_, err = d.Call(context.Background(), domain.ProviderConfig{ID: domain.ProviderDeepInfra}, CallRequest{})
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Kind != KindEmpty {
		t.Fatalf("expected empty-response error, got %v", err)
	}
}
