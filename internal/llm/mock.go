package llm

import (
	"context"
	"sync"
	"time"

	"smartdna/internal/domain"
)

// MockResponse guion de respuesta para un proveedor.
type MockResponse struct {
	Result CallResult
	Err    error
	// Delay simula latencia; respeta la cancelacion del contexto.
	Delay time.Duration
}

// MockClient permite tests sin llamar a proveedores reales.
type MockClient struct {
	mu        sync.Mutex
	Responses map[domain.ProviderID]MockResponse
	Image     ImageResult
	ImageErr  error
	calls     []domain.ProviderID
	prompts   []string
	imageReqs []ImageRequest
}

func (m *MockClient) Call(ctx context.Context, cfg domain.ProviderConfig, req CallRequest) (CallResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, cfg.ID)
	m.prompts = append(m.prompts, req.Prompt)
	resp, ok := m.Responses[cfg.ID]
	m.mu.Unlock()

	if !ok {
		return CallResult{}, statusError(cfg.ID, 500)
	}
	if resp.Delay > 0 {
		timer := time.NewTimer(resp.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return CallResult{}, transportError(cfg.ID, ctx.Err(), "mock call")
		case <-timer.C:
		}
	}
	return resp.Result, resp.Err
}

func (m *MockClient) GenerateImage(ctx context.Context, cfg domain.ProviderConfig, req ImageRequest) (ImageResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, cfg.ID)
	m.prompts = append(m.prompts, req.Prompt)
	m.imageReqs = append(m.imageReqs, req)
	m.mu.Unlock()
	return m.Image, m.ImageErr
}

// Calls devuelve los proveedores invocados en orden.
func (m *MockClient) Calls() []domain.ProviderID {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ProviderID, len(m.calls))
	copy(out, m.calls)
	return out
}

// Prompts devuelve los prompts recibidos en orden.
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// ImageRequests devuelve los pedidos de imagen recibidos en orden.
func (m *MockClient) ImageRequests() []ImageRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ImageRequest, len(m.imageReqs))
	copy(out, m.imageReqs)
	return out
}
