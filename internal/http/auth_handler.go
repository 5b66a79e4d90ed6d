package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartdna/internal/service"
)

// AuthHandler mantiene dependencias para alta de usuarios y login.
type AuthHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
	jwtServ  *service.JWTService
	limiter  service.LoginRateLimiter
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, userServ *service.UserService, jwtServ *service.JWTService, limiter service.LoginRateLimiter) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		logger:   logger,
		userServ: userServ,
		jwtServ:  jwtServ,
		limiter:  limiter,
	}
}

// CreateUser maneja POST /users.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		FullName    string `json:"full_name"`
		CompanyName string `json:"company_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.userServ.CreateUser(c.Request.Context(), service.CreateUserInput{
		Email:       req.Email,
		FullName:    req.FullName,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return
		}
		h.logger.Error("create user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	pair, err := h.jwtServ.GeneratePair(c.Request.Context(), user)
	if err != nil {
		h.logger.Error("issue tokens failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_in":    pair.ExpiresIn,
	})
}

// SuperAdminLogin maneja POST /auth/superadmin/login.
func (h *AuthHandler) SuperAdminLogin(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.Request.Context(), c.ClientIP()) {
		h.logger.Warn("superadmin login rate limited", zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	var req struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.userServ.VerifySuperAdminKey(req.Key); err != nil {
		h.logger.Warn("invalid superadmin key", zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid SuperAdmin key"})
		return
	}

	pair, err := h.jwtServ.IssueSuperAdmin()
	if err != nil {
		h.logger.Error("issue superadmin token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      pair.AccessToken,
		"role":       "superadmin",
		"message":    "SuperAdmin access granted",
		"expires_in": pair.ExpiresIn,
	})
}

// Refresh maneja POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.jwtServ.RefreshPair(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, pair)
}
