package llm

import (
	"context"
	"net/http"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"smartdna/internal/domain"
)

// Dispatcher enruta cada llamada al backend del proveedor y aplica el limite
// de tasa propio de ese proveedor antes de invocarlo.
type Dispatcher struct {
	backends map[domain.ProviderID]ProviderCaller
	images   ImageCaller
	limiters map[domain.ProviderID]*rate.Limiter
	logger   *zap.Logger
}

// NewDispatcher crea un dispatcher sin backends registrados.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		backends: make(map[domain.ProviderID]ProviderCaller),
		limiters: make(map[domain.ProviderID]*rate.Limiter),
		logger:   logger,
	}
}

// Register asocia un backend a un proveedor. rps<=0 desactiva el limite.
// Debe llamarse antes de servir trafico.
func (d *Dispatcher) Register(id domain.ProviderID, backend ProviderCaller, rps float64, burst int) {
	d.backends[id] = backend
	if rps > 0 {
		if burst <= 0 {
			burst = 1
		}
		d.limiters[id] = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// RegisterImages define el backend de imagenes.
func (d *Dispatcher) RegisterImages(backend ImageCaller) {
	d.images = backend
}

func (d *Dispatcher) Call(ctx context.Context, cfg domain.ProviderConfig, req CallRequest) (CallResult, error) {
	backend, ok := d.backends[cfg.ID]
	if !ok {
		return CallResult{}, &ProviderError{Provider: cfg.ID, Kind: KindTransport, Err: eris.New("no backend registered")}
	}
	if err := d.wait(ctx, cfg.ID); err != nil {
		return CallResult{}, err
	}
	res, err := backend.Call(ctx, cfg, req)
	if err != nil {
		return CallResult{}, err
	}
	res.Content = CleanContent(res.Content)
	if res.Content == "" {
		return CallResult{}, emptyError(cfg.ID)
	}
	return res, nil
}

func (d *Dispatcher) GenerateImage(ctx context.Context, cfg domain.ProviderConfig, req ImageRequest) (ImageResult, error) {
	if d.images == nil {
		return ImageResult{}, &ProviderError{Provider: cfg.ID, Kind: KindTransport, Err: eris.New("no image backend registered")}
	}
	if err := d.wait(ctx, cfg.ID); err != nil {
		return ImageResult{}, err
	}
	return d.images.GenerateImage(ctx, cfg, req)
}

func (d *Dispatcher) wait(ctx context.Context, id domain.ProviderID) error {
	limiter, ok := d.limiters[id]
	if !ok {
		return nil
	}
	if err := limiter.Wait(ctx); err != nil {
		d.logger.Debug("provider rate limit wait aborted", zap.String("provider", string(id)), zap.Error(err))
		if ctx.Err() != nil {
			return transportError(id, ctx.Err(), "rate limit wait")
		}
		return &ProviderError{Provider: id, Kind: KindTimeout, Err: eris.Wrap(err, "rate limit wait")}
	}
	return nil
}

// NewDefaultDispatcher registra el backend de cada proveedor del registro.
// Los compatibles con la API de OpenAI comparten cliente HTTP, que tambien
// atiende imagenes. Gemini solo se registra si tiene credencial.
func NewDefaultDispatcher(ctx context.Context, registry *Registry, rps float64, burst int, logger *zap.Logger) *Dispatcher {
	d := NewDispatcher(logger)
	openAICompat := NewOpenAIClient(&http.Client{}, d.logger)

	for _, cfg := range registry.List() {
		switch cfg.ID {
		case domain.ProviderDeepInfra, domain.ProviderOpenAI, domain.ProviderGroq:
			d.Register(cfg.ID, openAICompat, rps, burst)
		case domain.ProviderAnthropic:
			d.Register(cfg.ID, NewAnthropicClient(cfg), rps, burst)
		case domain.ProviderGemini:
			if !cfg.Available() {
				continue
			}
			gemini, err := NewGeminiClient(ctx, cfg)
			if err != nil {
				d.logger.Warn("gemini client init failed", zap.Error(err))
				continue
			}
			d.Register(cfg.ID, gemini, rps, burst)
		}
	}
	d.RegisterImages(openAICompat)
	return d
}
