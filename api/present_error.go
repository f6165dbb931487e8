package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/utils"
)

// presentError renders err on the gin context and reports whether it did.
// Sentinel errors map to their http status; everything else is logged and
// rendered as a 500.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		logger := utils.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unexpected error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
	return true
}
