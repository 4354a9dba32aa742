package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Conceptual-Machines/counterpoint-api/internal/api/middleware"
	"github.com/Conceptual-Machines/counterpoint-api/internal/logger"
	"github.com/Conceptual-Machines/counterpoint-api/internal/services"
	"github.com/gin-gonic/gin"
)

type CompositionHandler struct {
	service *services.CounterpointService
}

func NewCompositionHandler(service *services.CounterpointService) *CompositionHandler {
	return &CompositionHandler{service: service}
}

// ListCompositions returns the caller's stored generations, newest first
func (h *CompositionHandler) ListCompositions(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromGateway(c)

	page := 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	pageSize := defaultPageSize
	if s, err := strconv.Atoi(c.Query("page_size")); err == nil && s > 0 {
		pageSize = min(s, maxPageSize)
	}

	items, totalCount, err := h.service.ListCompositions(c.Request.Context(), userID, page, pageSize)
	if errors.Is(err, services.ErrPersistenceDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Composition history is not enabled"})
		return
	}
	if err != nil {
		logger.Error("Failed to list compositions", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get compositions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"compositions": items,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total_count": totalCount,
			"total_pages": (totalCount + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}

// GetComposition returns one stored generation
func (h *CompositionHandler) GetComposition(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromGateway(c)

	composition, err := h.service.GetComposition(c.Request.Context(), userID, c.Param("id"))
	switch {
	case errors.Is(err, services.ErrPersistenceDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Composition history is not enabled"})
	case errors.Is(err, services.ErrCompositionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Composition not found"})
	case err != nil:
		logger.Error("Failed to get composition", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get composition"})
	default:
		c.JSON(http.StatusOK, composition)
	}
}
