package llm

import (
	"context"
	"errors"

	"github.com/rotisserie/eris"
	"google.golang.org/genai"

	"smartdna/internal/domain"
)

// GeminiClient implementa ProviderCaller con el SDK de Google GenAI.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient crea el cliente de Gemini; requiere credencial.
func NewGeminiClient(ctx context.Context, cfg domain.ProviderConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, eris.New("gemini api key is required")
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, eris.Wrap(err, "create genai client")
	}
	return &GeminiClient{client: client}, nil
}

func (c *GeminiClient) Call(ctx context.Context, cfg domain.ProviderConfig, req CallRequest) (CallResult, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}
	temperature := float32(req.Temperature)
	resp, err := c.client.Models.GenerateContent(ctx, req.Model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
		Temperature:     &temperature,
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return CallResult{}, statusError(cfg.ID, apiErr.Code)
		}
		return CallResult{}, transportError(cfg.ID, err, "gemini: generate content")
	}

	text := resp.Text()
	if text == "" {
		return CallResult{}, emptyError(cfg.ID)
	}

	result := CallResult{Content: text}
	if resp.UsageMetadata != nil {
		result.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		result.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return result, nil
}
