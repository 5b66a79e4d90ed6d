package llm

import (
	"context"

	"smartdna/internal/domain"
)

// CallRequest es lo que el orquestador envia a un proveedor de texto.
type CallRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// CallResult trae el texto generado y los contadores de tokens del proveedor.
type CallResult struct {
	Content      string
	InputTokens  int
	OutputTokens int
}

// TotalTokens suma entrada y salida.
func (r CallResult) TotalTokens() int {
	return r.InputTokens + r.OutputTokens
}

// ImageRequest describe una generacion de imagen.
type ImageRequest struct {
	Model  string
	Prompt string
	Size   string
}

// ImageResult es la respuesta del proveedor de imagenes.
type ImageResult struct {
	URL           string
	RevisedPrompt string
}

// ProviderCaller es la capacidad abstracta de invocar un proveedor de texto.
// Debe respetar la cancelacion y el deadline del contexto.
type ProviderCaller interface {
	Call(ctx context.Context, cfg domain.ProviderConfig, req CallRequest) (CallResult, error)
}

// ImageCaller genera imagenes con el proveedor que las soporta.
type ImageCaller interface {
	GenerateImage(ctx context.Context, cfg domain.ProviderConfig, req ImageRequest) (ImageResult, error)
}
