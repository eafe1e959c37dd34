package handler

import (
	"errors"
	"net/http"

	"invoice-dashboard-backend/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError maps the error taxonomy to HTTP: validation failures carry
// the field map back for form re-display, not-found is distinct from a
// storage failure, and storage failures are logged but never leaked.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
