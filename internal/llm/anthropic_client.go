package llm

import (
	"context"
	"errors"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"smartdna/internal/domain"
)

// AnthropicClient implementa ProviderCaller usando el SDK oficial.
type AnthropicClient struct {
	client sdk.Client
}

// NewAnthropicClient crea el cliente a partir de la configuracion del proveedor.
// Los reintentos del SDK se desactivan: la cadena de fallback decide que hacer ante fallas.
func NewAnthropicClient(cfg domain.ProviderConfig, opts ...option.RequestOption) *AnthropicClient {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}
	return &AnthropicClient{client: sdk.NewClient(append(base, opts...)...)}
}

func (c *AnthropicClient) Call(ctx context.Context, cfg domain.ProviderConfig, req CallRequest) (CallResult, error) {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
		Temperature: sdk.Float(req.Temperature),
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *sdk.Error
		if errors.As(err, &apiErr) {
			return CallResult{}, statusError(cfg.ID, apiErr.StatusCode)
		}
		return CallResult{}, transportError(cfg.ID, err, "anthropic: create message")
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return CallResult{}, emptyError(cfg.ID)
	}

	return CallResult{
		Content:      sb.String(),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}, nil
}
