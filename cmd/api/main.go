package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"smartdna/internal/config"
	"smartdna/internal/db"
	apihttp "smartdna/internal/http"
	"smartdna/internal/llm"
	"smartdna/internal/metrics"
	"smartdna/internal/repository"
	"smartdna/internal/service"
)

const refreshTTL = 30 * 24 * time.Hour

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()
	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal("db schema", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	profileRepo := repository.NewPgDNAProfileRepository(pool)

	registry := llm.NewRegistry(cfg.Providers.Configs())
	dispatcher := llm.NewDefaultDispatcher(ctx, registry, cfg.Providers.RPS, cfg.Providers.Burst, logger)
	usage := service.NewUsageTracker(registry)
	m := metrics.New(usage)

	var (
		loginLimiter service.LoginRateLimiter = service.NewMemoryLoginRateLimiter(cfg.LoginWindow, cfg.LoginMaxAttempts)
		tokenStore   service.RefreshTokenStore
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory limiter and token store", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, cfg.LoginWindow, cfg.LoginMaxAttempts, logger)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessTTL, refreshTTL, tokenStore)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	if cfg.SuperAdminKey == "" && cfg.SuperAdminKeyHash == "" {
		logger.Warn("superadmin key not configured, superadmin login disabled")
	}

	var jitter service.JitterSource = service.NoJitter{}
	if cfg.DNAHubJitter {
		jitter = service.RandomJitter{}
	}

	userSvc := service.NewUserService(logger, userRepo, cfg.SuperAdminKey, cfg.SuperAdminKeyHash)
	access := service.NewAccessControl(cfg.MinHubScore, cfg.DNAValidityDays, logger)
	assessmentSvc := service.NewAssessmentService(service.NewDNAEngine(jitter, logger), profileRepo, userRepo, access, logger)
	generationSvc := service.NewGenerationService(registry, dispatcher, dispatcher, usage, cfg.Providers.Timeout, logger)

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Logger:     logger,
		Metrics:    m,
		JWT:        jwtSvc,
		Users:      userSvc,
		Auth:       apihttp.NewAuthHandler(logger, userSvc, jwtSvc, loginLimiter),
		Assessment: apihttp.NewAssessmentHandler(logger, assessmentSvc),
		Generation: apihttp.NewGenerationHandler(logger, generationSvc, assessmentSvc, access, m),
		Catalog:    apihttp.NewCatalogHandler(logger, registry, usage, access),
	})

	handler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})(router)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.Int("providers_available", countAvailable(registry)),
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}

func countAvailable(registry *llm.Registry) int {
	n := 0
	for _, cfg := range registry.List() {
		if cfg.Available() {
			n++
		}
	}
	return n
}
