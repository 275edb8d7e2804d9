// Package api wires the HTTP surface: routes, middleware and handlers.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/greenops/ecocycle/internal/api/handlers"
	"github.com/greenops/ecocycle/internal/api/middleware"
	"github.com/greenops/ecocycle/internal/api/models"
	"github.com/greenops/ecocycle/internal/carbonapi"
	"github.com/greenops/ecocycle/internal/config"
	"github.com/greenops/ecocycle/pkg/metrics"
)

// Version is the service version reported by /health. Overridden at
// build time with -ldflags.
var Version = "dev"

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(cfg *config.Config, logger zerolog.Logger, carbonClient *carbonapi.Client, m *metrics.Manager) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.Metrics(m))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{Status: "ok", Version: Version})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	auditHandler := handlers.NewAuditHandler(carbonClient, m)
	fleetHandler := handlers.NewFleetHandler(cfg.Server.MaxFleetRows, m)
	strategyHandler := handlers.NewStrategyHandler(m)
	roiHandler := handlers.NewROIHandler()
	cloudHandler := handlers.NewCloudHandler(m)
	refHandler := handlers.NewReferenceHandler()

	v1 := r.Group("/api/v1")
	{
		ref := v1.Group("/reference")
		{
			ref.GET("/devices", refHandler.ListDevices)
			ref.GET("/personas", refHandler.ListPersonas)
			ref.GET("/countries", refHandler.ListCountries)
			ref.GET("/strategies", refHandler.ListStrategies)
			ref.GET("/storage-classes", refHandler.ListStorageClasses)
		}

		v1.POST("/audit", auditHandler.Run)
		v1.POST("/fleet/analyze", fleetHandler.Analyze)
		v1.GET("/fleet/demo", fleetHandler.Demo)
		v1.POST("/strategy/compare", strategyHandler.Compare)
		v1.POST("/roi", roiHandler.Compute)
		v1.POST("/cloud/plan", cloudHandler.Plan)
	}

	return r
}
