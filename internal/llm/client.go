package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"smartdna/internal/domain"
)

// OpenAIClient implementa ProviderCaller e ImageCaller contra APIs compatibles
// con OpenAI (OpenAI, DeepInfra y Groq comparten el formato de chat completions).
type OpenAIClient struct {
	client *http.Client
	logger *zap.Logger
}

// NewOpenAIClient construye el cliente; los timeouts los define el contexto de cada llamada.
func NewOpenAIClient(httpClient *http.Client, logger *zap.Logger) *OpenAIClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAIClient{client: httpClient, logger: logger}
}

func (c *OpenAIClient) Call(ctx context.Context, cfg domain.ProviderConfig, req CallRequest) (CallResult, error) {
	reqBody := chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "user", Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	var cr chatResponse
	if err := c.postJSON(ctx, cfg, "/chat/completions", reqBody, &cr); err != nil {
		return CallResult{}, err
	}

	if cr.Error != nil {
		return CallResult{}, &ProviderError{Provider: cfg.ID, Kind: KindStatus, Err: eris.New(cr.Error.Message)}
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return CallResult{}, emptyError(cfg.ID)
	}

	return CallResult{
		Content:      cr.Choices[0].Message.Content,
		InputTokens:  cr.Usage.PromptTokens,
		OutputTokens: cr.Usage.CompletionTokens,
	}, nil
}

func (c *OpenAIClient) GenerateImage(ctx context.Context, cfg domain.ProviderConfig, req ImageRequest) (ImageResult, error) {
	reqBody := imageRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
		N:      1,
		Size:   req.Size,
	}

	var ir imageResponse
	if err := c.postJSON(ctx, cfg, "/images/generations", reqBody, &ir); err != nil {
		return ImageResult{}, err
	}
	if len(ir.Data) == 0 || ir.Data[0].URL == "" {
		return ImageResult{}, emptyError(cfg.ID)
	}
	return ImageResult{
		URL:           ir.Data[0].URL,
		RevisedPrompt: ir.Data[0].RevisedPrompt,
	}, nil
}

func (c *OpenAIClient) postJSON(ctx context.Context, cfg domain.ProviderConfig, path string, body any, out any) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return eris.Wrap(err, "marshal request")
	}

	url := strings.TrimRight(cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return eris.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return transportError(cfg.ID, err, "do request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(cfg.ID, err, "read response")
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("provider error status",
			zap.String("provider", string(cfg.ID)),
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(respBody), 512)),
		)
		return statusError(cfg.ID, resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &ProviderError{Provider: cfg.ID, Kind: KindTransport, Err: eris.Wrap(err, "unmarshal response")}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL           string `json:"url"`
		RevisedPrompt string `json:"revised_prompt"`
	} `json:"data"`
}
