package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartdna/internal/metrics"
	"smartdna/internal/service"
)

// RouterDeps agrupa los handlers y servicios que necesita el router.
type RouterDeps struct {
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	JWT        *service.JWTService
	Users      *service.UserService
	Auth       *AuthHandler
	Assessment *AssessmentHandler
	Generation *GenerationHandler
	Catalog    *CatalogHandler
}

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(deps.Logger, deps.Metrics), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/health", deps.Catalog.Health)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	r.POST("/users", deps.Auth.CreateUser)

	auth := r.Group("/auth")
	auth.POST("/superadmin/login", deps.Auth.SuperAdminLogin)
	auth.POST("/refresh", deps.Auth.Refresh)

	r.GET("/assessment/questions/:round", deps.Assessment.Questions)
	r.GET("/hubs/:id/templates", deps.Catalog.HubTemplates)
	r.GET("/ai/providers", deps.Catalog.Providers)

	authed := r.Group("")
	authed.Use(JWTAuthMiddleware(deps.JWT), CurrentUserMiddleware(deps.Users))

	authed.GET("/user/dna-status", deps.Assessment.DNAStatus)
	authed.GET("/assessment/status", deps.Assessment.Status)
	authed.POST("/assessment/analyze", deps.Assessment.Analyze)

	generate := authed.Group("/generate")
	generate.POST("/content", deps.Generation.GenerateContent)
	generate.POST("/image", deps.Generation.GenerateImage)
	generate.POST("/package", deps.Generation.GeneratePackage)

	authed.GET("/ai/usage-stats", RequireSuperAdmin(), deps.Catalog.UsageStats)
	authed.GET("/hubs", deps.Catalog.Hubs)
	authed.GET("/credits/quote", deps.Catalog.CreditsQuote)

	return r
}

// zapLoggerMiddleware loguea cada request y, si hay metricas, lo registra.
func zapLoggerMiddleware(logger *zap.Logger, m *metrics.Metrics) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
		if m != nil {
			endpoint := c.FullPath()
			if endpoint == "" {
				endpoint = "unmatched"
			}
			m.ObserveRequest(c.Request.Method, endpoint, c.Writer.Status(), latency)
		}
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path != "/metrics" {
			c.Writer.Header().Set("Content-Type", "application/json")
		}
		c.Next()
	}
}
