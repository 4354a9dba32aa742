package api

import (
	"fmt"

	"github.com/Conceptual-Machines/counterpoint-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/counterpoint-api/internal/api/middleware"
	"github.com/Conceptual-Machines/counterpoint-api/internal/config"
	"github.com/Conceptual-Machines/counterpoint-api/internal/metrics"
	"github.com/Conceptual-Machines/counterpoint-api/internal/presets"
	"github.com/Conceptual-Machines/counterpoint-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter builds the HTTP API. db may be nil, in which case composition
// history is disabled. cloudwatch may be nil.
func SetupRouter(db *gorm.DB, cfg *config.Config, version string, cloudwatch *metrics.Client) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	loader, err := presets.NewLoader()
	if err != nil {
		return nil, err
	}

	var store services.CompositionStore
	if db != nil && cfg.PersistCompositions {
		store = services.NewCompositionService(db)
	}
	recorder := metrics.NewRecorder(metrics.NewSentryMetrics(), cloudwatch, cfg.MetricsEnabled)
	counterpointService, err := services.NewCounterpointService(cfg, loader, store, recorder)
	if err != nil {
		return nil, err
	}

	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cloudwatch, cfg.MetricsEnabled))

	// Health check
	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoints
	metricsHandler := handlers.NewMetricsHandler(version, cfg)
	router.GET("/api/metrics", metricsHandler.GetMetrics)
	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	if cfg.IsGatewayMode() {
		v1.Use(apimiddleware.GatewayAuth())
	} else {
		v1.Use(apimiddleware.NoAuth())
	}
	{
		presetHandler := handlers.NewPresetHandler(loader, cfg.MaxSearchSpace)
		v1.GET("/presets", presetHandler.ListPresets)
		v1.GET("/presets/:name", presetHandler.GetPreset)

		counterpointHandler := handlers.NewCounterpointHandler(counterpointService)
		v1.POST("/counterpoint", counterpointHandler.Generate)
		v1.POST("/counterpoint/validate", counterpointHandler.Validate)

		compositionHandler := handlers.NewCompositionHandler(counterpointService)
		v1.GET("/compositions", compositionHandler.ListCompositions)
		v1.GET("/compositions/:id", compositionHandler.GetComposition)
	}

	return router, nil
}
