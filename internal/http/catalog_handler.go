package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartdna/internal/domain"
	"smartdna/internal/service"
)

const apiVersion = "1.0.0"

// CatalogHandler expone hubs, creditos, proveedores y salud del servicio.
type CatalogHandler struct {
	logger    *zap.Logger
	providers service.ProviderDirectory
	usage     *service.UsageTracker
	access    *service.AccessControl
}

func NewCatalogHandler(logger *zap.Logger, providers service.ProviderDirectory, usage *service.UsageTracker, access *service.AccessControl) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{
		logger:    logger,
		providers: providers,
		usage:     usage,
		access:    access,
	}
}

// Health maneja GET /health.
func (h *CatalogHandler) Health(c *gin.Context) {
	available := 0
	for _, s := range h.providers.Status() {
		if s.Available {
			available++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"timestamp":           time.Now().UTC().Format(time.RFC3339),
		"version":             apiVersion,
		"providers_available": available,
		"dna_engine":          "ready",
	})
}

// Hubs maneja GET /hubs con la alineacion del usuario por hub.
func (h *CatalogHandler) Hubs(c *gin.Context) {
	user, _ := GetCurrentUser(c)
	hubs := make([]gin.H, 0, len(domain.HubCatalog))
	for _, info := range domain.HubCatalog {
		score := user.HubAlignments[info.ID]
		hubs = append(hubs, gin.H{
			"id":              info.ID,
			"name":            info.Name,
			"icon":            info.Icon,
			"color":           info.Color,
			"description":     info.Description,
			"templates":       info.Templates,
			"alignment_score": score,
			"access":          user.SuperAdmin || score >= h.access.MinHubScore(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"hubs": hubs})
}

// HubTemplates maneja GET /hubs/:id/templates.
func (h *CatalogHandler) HubTemplates(c *gin.Context) {
	info, ok := domain.FindHubInfo(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hub not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hub": info.Name, "templates": info.Templates})
}

// CreditsQuote maneja GET /credits/quote?hub=...&content_type=...
func (h *CatalogHandler) CreditsQuote(c *gin.Context) {
	hub, ok := domain.ParseHub(c.Query("hub"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown hub"})
		return
	}
	contentType := c.DefaultQuery("content_type", "text")
	user, _ := GetCurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"hub":          hub,
		"content_type": contentType,
		"credits":      service.ContentCredits(user.AccessSubject(), hub, contentType),
	})
}

// Providers maneja GET /ai/providers.
func (h *CatalogHandler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"providers":   h.providers.Status(),
		"usage_stats": h.usage.Snapshot(),
	})
}

// UsageStats maneja GET /ai/usage-stats (solo superadmin).
func (h *CatalogHandler) UsageStats(c *gin.Context) {
	stats := h.usage.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"total_requests":        stats.TotalRequests,
		"total_cost":            fmt.Sprintf("$%.2f", stats.TotalCost),
		"average_cost":          fmt.Sprintf("$%.4f", stats.AverageCostPerRequest),
		"provider_distribution": stats.ProviderUsage,
		"most_used_provider":    stats.MostUsedProvider,
	})
}
