package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/counterpoint-api/internal/api/middleware"
	"github.com/Conceptual-Machines/counterpoint-api/internal/counterpoint"
	"github.com/Conceptual-Machines/counterpoint-api/internal/logger"
	"github.com/Conceptual-Machines/counterpoint-api/internal/models"
	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
	"github.com/Conceptual-Machines/counterpoint-api/internal/presets"
	"github.com/Conceptual-Machines/counterpoint-api/internal/services"
	"github.com/gin-gonic/gin"
)

type CounterpointHandler struct {
	service *services.CounterpointService
}

func NewCounterpointHandler(service *services.CounterpointService) *CounterpointHandler {
	return &CounterpointHandler{service: service}
}

// Generate handles POST /api/v1/counterpoint
func (h *CounterpointHandler) Generate(c *gin.Context) {
	var req models.CounterpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromGateway(c)
	fields := logger.WithContext(c)
	fields["species"] = req.Species
	fields["preset"] = req.Preset
	fields["cantus_firmus_length"] = len(req.CantusFirmus)
	logger.Info("Counterpoint generation requested", fields)

	resp, err := h.service.Generate(c.Request.Context(), userID, req)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Validate handles POST /api/v1/counterpoint/validate
func (h *CounterpointHandler) Validate(c *gin.Context) {
	var req models.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	resp, err := h.service.Validate(c.Request.Context(), req)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// respondEngineError maps engine and service errors to HTTP statuses
func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidRequest),
		errors.Is(err, presets.ErrPresetNotFound),
		errors.Is(err, music.ErrInvalidPitch),
		errors.Is(err, music.ErrUndefinedInterval),
		errors.Is(err, counterpoint.ErrInvalidReferenceLength),
		errors.Is(err, counterpoint.ErrInvalidSpeciesConfiguration):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
	case errors.Is(err, counterpoint.ErrNoSolution):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No valid counterpoint exists", "details": err.Error()})
	case errors.Is(err, counterpoint.ErrSearchSpaceTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Search space too large", "details": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Generation timed out"})
	case errors.Is(err, context.Canceled):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Request cancelled"})
	default:
		logger.Error("Counterpoint request failed", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Internal server error",
			"request_id": c.GetString("request_id"),
		})
	}
}
