package controllers

import (
	"errors"
	"net/http"

	"plume/models"

	"github.com/gin-gonic/gin"
)

// respondError maps the domain error taxonomy to HTTP. Validation detail is
// surfaced; everything else stays generic so responses never echo internal
// state or confirm the existence of a masked resource.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
	case errors.Is(err, models.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream service unavailable"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}
