package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"smartdna/internal/domain"
	"smartdna/internal/llm"
)

const (
	defaultMaxTokens   = 2000
	defaultTemperature = 0.7
	packageMaxTokens   = 1500
	defaultImageModel  = "dall-e-3"
	imageSize          = "1024x1024"
	imageCost          = 0.04
	unavailableMessage = "Service temporarily unavailable. Please try again."

	imageCredentialReason = "Image generation requires OpenAI API key"
)

// AttemptOutcome es el resultado de un intento contra un proveedor.
type AttemptOutcome string

const (
	OutcomeSucceeded AttemptOutcome = "succeeded"
	OutcomeFailed    AttemptOutcome = "failed"
	OutcomeTimeout   AttemptOutcome = "timeout"
	OutcomeSkipped   AttemptOutcome = "skipped"
)

// Attempt registra un intento de la cadena primaria + fallback.
type Attempt struct {
	Provider domain.ProviderID `json:"provider"`
	Outcome  AttemptOutcome    `json:"outcome"`
	Err      error             `json:"-"`
}

type GenerationRequest struct {
	Prompt        string
	Category      domain.TaskCategory
	DNA           domain.DNAContext
	HubContext    string
	MaxTokens     int
	Temperature   float64
	RequiresImage bool
}

// GenerationResult es el resultado de Generate. Unavailable=true indica que
// todos los proveedores fallaron; es un resultado normal, no un error.
type GenerationResult struct {
	Content        string            `json:"content"`
	Provider       string            `json:"provider"`
	ProviderID     domain.ProviderID `json:"-"`
	Model          string            `json:"model,omitempty"`
	TokensUsed     int               `json:"tokens_used"`
	Cost           float64           `json:"cost"`
	AlignmentScore float64           `json:"dna_alignment_score"`
	Fallback       bool              `json:"fallback"`
	Unavailable    bool              `json:"error,omitempty"`
	Attempts       []Attempt         `json:"attempts,omitempty"`
}

type ImageGeneration struct {
	ImageURL      string            `json:"image_url"`
	RevisedPrompt string            `json:"revised_prompt"`
	Provider      domain.ProviderID `json:"provider"`
	Cost          float64           `json:"cost"`
}

// GenerationService orquesta ruteo, prompt DNA, llamada, fallback y uso.
type GenerationService struct {
	providers ProviderDirectory
	router    *TaskRouter
	caller    llm.ProviderCaller
	images    llm.ImageCaller
	usage     *UsageTracker
	timeout   time.Duration
	logger    *zap.Logger
}

func NewGenerationService(
	providers ProviderDirectory,
	caller llm.ProviderCaller,
	images llm.ImageCaller,
	usage *UsageTracker,
	timeout time.Duration,
	logger *zap.Logger,
) *GenerationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerationService{
		providers: providers,
		router:    NewTaskRouter(providers),
		caller:    caller,
		images:    images,
		usage:     usage,
		timeout:   timeout,
		logger:    logger,
	}
}

// Usage expone el tracker para estadisticas y metricas.
func (s *GenerationService) Usage() *UsageTracker {
	return s.usage
}

// Generate llama al proveedor primario y, si falla, recorre el orden de
// fallback de a uno. Solo la cancelacion del llamador devuelve error.
func (s *GenerationService) Generate(ctx context.Context, req GenerationRequest) (GenerationResult, error) {
	if req.MaxTokens <= 0 {
		req.MaxTokens = defaultMaxTokens
	}
	primary := s.router.Select(req.Category, req.RequiresImage)
	prompt := BuildDNAPrompt(req.Prompt, req.DNA, req.HubContext)
	if req.RequiresImage || req.Category == domain.TaskImage {
		return s.generateImageOnly(ctx, primary, prompt, req)
	}

	var attempts []Attempt
	if cfg, ok := s.providers.Get(primary); ok && cfg.Available() {
		res, err := s.call(ctx, cfg, prompt, req)
		if err == nil {
			attempts = append(attempts, Attempt{Provider: primary, Outcome: OutcomeSucceeded})
			return s.success(cfg, req, res, false, attempts), nil
		}
		if ctx.Err() != nil {
			return GenerationResult{Attempts: attempts}, ctx.Err()
		}
		attempts = append(attempts, failedAttempt(primary, err))
		s.logger.Warn("primary provider failed, entering fallback",
			zap.String("provider", string(primary)),
			zap.Error(err),
		)
	} else {
		attempts = append(attempts, Attempt{Provider: primary, Outcome: OutcomeSkipped})
	}

	for _, id := range domain.FallbackOrder {
		if id == primary {
			continue
		}
		cfg, ok := s.providers.Get(id)
		if !ok || !cfg.Available() {
			attempts = append(attempts, Attempt{Provider: id, Outcome: OutcomeSkipped})
			continue
		}
		res, err := s.call(ctx, cfg, prompt, req)
		if err == nil {
			attempts = append(attempts, Attempt{Provider: id, Outcome: OutcomeSucceeded})
			return s.success(cfg, req, res, true, attempts), nil
		}
		if ctx.Err() != nil {
			return GenerationResult{Attempts: attempts}, ctx.Err()
		}
		attempts = append(attempts, failedAttempt(id, err))
		s.logger.Warn("fallback provider failed", zap.String("provider", string(id)), zap.Error(err))
	}

	s.logger.Error("all providers exhausted", zap.Int("attempts", len(attempts)))
	return unavailableResult(attempts), nil
}

// generateImageOnly atiende pedidos de imagen solo con el proveedor de
// imagenes; nunca cae a un proveedor de texto.
func (s *GenerationService) generateImageOnly(ctx context.Context, id domain.ProviderID, prompt string, req GenerationRequest) (GenerationResult, error) {
	cfg, ok := s.providers.Get(id)
	if !ok || !cfg.Available() {
		return GenerationResult{Attempts: []Attempt{{Provider: id, Outcome: OutcomeSkipped}}}, &ConfigurationError{
			Component: string(id),
			Reason:    imageCredentialReason,
		}
	}
	res, err := s.call(ctx, cfg, prompt, req)
	if err == nil {
		return s.success(cfg, req, res, false, []Attempt{{Provider: id, Outcome: OutcomeSucceeded}}), nil
	}
	attempts := []Attempt{failedAttempt(id, err)}
	if ctx.Err() != nil {
		return GenerationResult{Attempts: attempts}, ctx.Err()
	}
	s.logger.Error("image provider failed, no fallback for image requests",
		zap.String("provider", string(id)),
		zap.Error(err),
	)
	return unavailableResult(attempts), nil
}

func unavailableResult(attempts []Attempt) GenerationResult {
	return GenerationResult{
		Content:     unavailableMessage,
		Provider:    string(domain.ProviderNone),
		ProviderID:  domain.ProviderNone,
		Unavailable: true,
		Attempts:    attempts,
	}
}

func (s *GenerationService) call(ctx context.Context, cfg domain.ProviderConfig, prompt string, req GenerationRequest) (llm.CallResult, error) {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.caller.Call(callCtx, cfg, llm.CallRequest{
		Model:       cfg.Model,
		Prompt:      prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
}

func (s *GenerationService) success(cfg domain.ProviderConfig, req GenerationRequest, res llm.CallResult, fallback bool, attempts []Attempt) GenerationResult {
	if s.usage != nil {
		s.usage.Record(cfg.ID, len(req.Prompt), len(res.Content))
	}
	label := string(cfg.ID)
	if fallback {
		label += " (fallback)"
	}
	return GenerationResult{
		Content:        res.Content,
		Provider:       label,
		ProviderID:     cfg.ID,
		Model:          cfg.Model,
		TokensUsed:     res.TotalTokens(),
		Cost:           cfg.Cost(float64(res.InputTokens), float64(res.OutputTokens)),
		AlignmentScore: AlignmentScore(res.Content, req.DNA),
		Fallback:       fallback,
		Attempts:       attempts,
	}
}

func failedAttempt(id domain.ProviderID, err error) Attempt {
	outcome := OutcomeFailed
	if llm.IsTimeout(err) {
		outcome = OutcomeTimeout
	}
	return Attempt{Provider: id, Outcome: outcome, Err: err}
}

// GenerateImage no tiene fallback: sin credencial del proveedor de imagenes
// devuelve ConfigurationError de inmediato.
func (s *GenerationService) GenerateImage(ctx context.Context, prompt string, dna domain.DNAContext) (ImageGeneration, error) {
	id := s.providers.ImageProvider()
	cfg, ok := s.providers.Get(id)
	if !ok || !cfg.Available() {
		return ImageGeneration{}, &ConfigurationError{
			Component: string(id),
			Reason:    imageCredentialReason,
		}
	}
	if s.images == nil {
		return ImageGeneration{}, &ConfigurationError{Component: string(id), Reason: "image backend not configured"}
	}

	enhanced := BuildImagePrompt(prompt, dna)
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	model := cfg.ImageModel
	if model == "" {
		model = defaultImageModel
	}
	res, err := s.images.GenerateImage(callCtx, cfg, llm.ImageRequest{
		Model:  model,
		Prompt: enhanced,
		Size:   imageSize,
	})
	if err != nil {
		if ctx.Err() != nil {
			return ImageGeneration{}, ctx.Err()
		}
		return ImageGeneration{}, fmt.Errorf("image generation failed: %w", err)
	}

	revised := res.RevisedPrompt
	if revised == "" {
		revised = enhanced
	}
	return ImageGeneration{
		ImageURL:      res.URL,
		RevisedPrompt: revised,
		Provider:      id,
		Cost:          imageCost,
	}, nil
}

// PackageFormat es una pieza de un paquete de contenido.
type PackageFormat struct {
	Type string
	Name string
}

// PackageFormats en el orden en que se devuelven.
var PackageFormats = []PackageFormat{
	{Type: "email", Name: "Email Campaign"},
	{Type: "social", Name: "Social Media Posts"},
	{Type: "document", Name: "Detailed Document"},
	{Type: "presentation", Name: "Presentation Outline"},
}

// PackageCredits es el costo fijo de un paquete completo.
const PackageCredits = 50

type PackageRequest struct {
	Hub          domain.Hub
	CampaignName string
	Description  string
	DNA          domain.DNAContext
}

type PackageItem struct {
	Format         string  `json:"format"`
	Name           string  `json:"name"`
	Content        string  `json:"content"`
	Provider       string  `json:"provider"`
	AlignmentScore float64 `json:"dna_alignment"`
	Unavailable    bool    `json:"unavailable,omitempty"`
}

type ContentPackage struct {
	CampaignName string        `json:"campaign_name"`
	Hub          domain.Hub    `json:"hub"`
	CreatedAt    time.Time     `json:"created_at"`
	Contents     []PackageItem `json:"contents"`
}

// GeneratePackage genera los cuatro formatos en paralelo. Cada formato pasa
// por Generate, con su propio fallback.
func (s *GenerationService) GeneratePackage(ctx context.Context, req PackageRequest) (ContentPackage, error) {
	items := make([]PackageItem, len(PackageFormats))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range PackageFormats {
		g.Go(func() error {
			res, err := s.Generate(gctx, GenerationRequest{
				Prompt:      fmt.Sprintf("Create %s for: %s", f.Name, req.Description),
				Category:    domain.TaskCreative,
				DNA:         req.DNA,
				HubContext:  string(req.Hub),
				MaxTokens:   packageMaxTokens,
				Temperature: defaultTemperature,
			})
			if err != nil {
				return fmt.Errorf("generate %s: %w", f.Type, err)
			}
			items[i] = PackageItem{
				Format:         f.Type,
				Name:           f.Name,
				Content:        res.Content,
				Provider:       res.Provider,
				AlignmentScore: res.AlignmentScore,
				Unavailable:    res.Unavailable,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return ContentPackage{}, err
		}
		return ContentPackage{}, fmt.Errorf("generate package: %w", err)
	}
	return ContentPackage{
		CampaignName: req.CampaignName,
		Hub:          req.Hub,
		CreatedAt:    time.Now().UTC(),
		Contents:     items,
	}, nil
}
