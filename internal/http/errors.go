package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartdna/internal/service"
)

// writeServiceError traduce la taxonomia de errores del servicio a HTTP.
func writeServiceError(c *gin.Context, logger *zap.Logger, op string, err error) {
	var ve *service.ValidationError
	var ce *service.ConfigurationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.As(err, &ce):
		logger.Warn(op+" not configured", zap.String("component", ce.Component))
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": ce.Reason})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Info(op+" cancelled", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "request cancelled"})
	default:
		logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
	}
}
