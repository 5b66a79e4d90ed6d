package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartdna/internal/domain"
	"smartdna/internal/metrics"
	"smartdna/internal/service"
)

const defaultPersona = "visionary"

// GenerationHandler expone la generacion de contenido con control de acceso DNA.
type GenerationHandler struct {
	logger      *zap.Logger
	generation  *service.GenerationService
	assessments *service.AssessmentService
	access      *service.AccessControl
	metrics     *metrics.Metrics
}

func NewGenerationHandler(
	logger *zap.Logger,
	generation *service.GenerationService,
	assessments *service.AssessmentService,
	access *service.AccessControl,
	m *metrics.Metrics,
) *GenerationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerationHandler{
		logger:      logger,
		generation:  generation,
		assessments: assessments,
		access:      access,
		metrics:     m,
	}
}

// GenerateContent maneja POST /generate/content.
func (h *GenerationHandler) GenerateContent(c *gin.Context) {
	var req struct {
		Hub          string  `json:"hub" binding:"required"`
		Prompt       string  `json:"prompt"`
		CustomPrompt string  `json:"custom_prompt"`
		Template     string  `json:"template"`
		ContentType  string  `json:"content_type"`
		TaskCategory string  `json:"task_category"`
		MaxLength    int     `json:"max_length"`
		Temperature  float64 `json:"temperature"`
		Persona      string  `json:"persona"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate content request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	hub, ok := domain.ParseHub(req.Hub)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown hub"})
		return
	}

	user, _ := GetCurrentUser(c)
	if !h.checkAccess(c, user, hub) {
		return
	}

	dna, err := h.dnaContext(c.Request.Context(), user, req.Persona)
	if err != nil {
		writeServiceError(c, h.logger, "load dna context", err)
		return
	}

	prompt := firstNonEmpty(req.CustomPrompt, req.Prompt)
	if prompt == "" {
		prompt = fmt.Sprintf("Generate a %s for %s", req.Template, hub)
	}
	category := service.TaskCategoryForHub(hub)
	if req.TaskCategory != "" {
		category = domain.ParseTaskCategory(req.TaskCategory)
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = "text"
	}

	res, err := h.generation.Generate(c.Request.Context(), service.GenerationRequest{
		Prompt:        prompt,
		Category:      category,
		DNA:           dna,
		HubContext:    string(hub),
		MaxTokens:     req.MaxLength,
		Temperature:   req.Temperature,
		RequiresImage: contentType == "image",
	})
	if err != nil {
		writeServiceError(c, h.logger, "generate content", err)
		return
	}
	if res.Unavailable {
		c.JSON(http.StatusOK, gin.H{
			"success":  false,
			"error":    res.Content,
			"provider": res.Provider,
			"attempts": res.Attempts,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"content":             res.Content,
		"hub":                 hub,
		"provider":            res.Provider,
		"model_used":          res.Model,
		"tokens_used":         res.TokensUsed,
		"cost":                res.Cost,
		"dna_alignment_score": res.AlignmentScore,
		"fallback":            res.Fallback,
		"credits_used":        service.ContentCredits(user.AccessSubject(), hub, contentType),
	})
}

// GenerateImage maneja POST /generate/image. No tiene fallback.
func (h *GenerationHandler) GenerateImage(c *gin.Context) {
	var req struct {
		Prompt  string `json:"prompt" binding:"required"`
		Hub     string `json:"hub"`
		Persona string `json:"persona"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, _ := GetCurrentUser(c)
	var hub domain.Hub
	if req.Hub != "" {
		parsed, ok := domain.ParseHub(req.Hub)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown hub"})
			return
		}
		hub = parsed
	}
	if !h.checkAccess(c, user, hub) {
		return
	}

	dna, err := h.dnaContext(c.Request.Context(), user, req.Persona)
	if err != nil {
		writeServiceError(c, h.logger, "load dna context", err)
		return
	}

	img, err := h.generation.GenerateImage(c.Request.Context(), req.Prompt, dna)
	if err != nil {
		if service.IsConfigurationError(err) {
			writeServiceError(c, h.logger, "generate image", err)
			return
		}
		h.logger.Warn("image generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "image generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"image_url":      img.ImageURL,
		"revised_prompt": img.RevisedPrompt,
		"provider":       img.Provider,
		"cost":           img.Cost,
		"credits_used":   service.ContentCredits(user.AccessSubject(), hub, "image"),
	})
}

// GeneratePackage maneja POST /generate/package.
func (h *GenerationHandler) GeneratePackage(c *gin.Context) {
	var req struct {
		Hub          string `json:"hub" binding:"required"`
		CampaignName string `json:"campaign_name" binding:"required"`
		Description  string `json:"description" binding:"required"`
		Persona      string `json:"persona"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	hub, ok := domain.ParseHub(req.Hub)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown hub"})
		return
	}

	user, _ := GetCurrentUser(c)
	if !h.checkAccess(c, user, hub) {
		return
	}

	dna, err := h.dnaContext(c.Request.Context(), user, req.Persona)
	if err != nil {
		writeServiceError(c, h.logger, "load dna context", err)
		return
	}

	pkg, err := h.generation.GeneratePackage(c.Request.Context(), service.PackageRequest{
		Hub:          hub,
		CampaignName: req.CampaignName,
		Description:  req.Description,
		DNA:          dna,
	})
	if err != nil {
		writeServiceError(c, h.logger, "generate package", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"package":      pkg,
		"credits_used": service.PackageCredits,
	})
}

// checkAccess responde 403 con la decision completa cuando se niega el acceso.
func (h *GenerationHandler) checkAccess(c *gin.Context, user domain.User, hub domain.Hub) bool {
	decision := h.access.CheckAccess(user.AccessSubject(), hub)
	if h.metrics != nil {
		h.metrics.ObserveAccess(hub, decision.Reason)
	}
	if !decision.Access {
		c.JSON(http.StatusForbidden, gin.H{"error": decision})
		return false
	}
	return true
}

// dnaContext usa el perfil guardado; el superadmin elige una persona de demo.
func (h *GenerationHandler) dnaContext(ctx context.Context, user domain.User, persona string) (domain.DNAContext, error) {
	if user.SuperAdmin {
		if p, ok := domain.DemoPersonas[strings.ToLower(persona)]; ok {
			return p, nil
		}
		return domain.DemoPersonas[defaultPersona], nil
	}
	profile, ok, err := h.assessments.Profile(ctx, user.ID)
	if err != nil {
		return domain.DNAContext{}, err
	}
	if !ok {
		return domain.DNAContext{}, nil
	}
	return profile.Context(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
