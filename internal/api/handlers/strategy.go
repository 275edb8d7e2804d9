package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenops/ecocycle/internal/api/models"
	"github.com/greenops/ecocycle/internal/simulate"
	"github.com/greenops/ecocycle/pkg/metrics"
)

// StrategyHandler serves strategy simulations.
type StrategyHandler struct {
	metrics *metrics.Manager
}

// NewStrategyHandler creates a strategy handler.
func NewStrategyHandler(m *metrics.Manager) *StrategyHandler {
	return &StrategyHandler{metrics: m}
}

// Compare handles POST /api/v1/strategy/compare.
func (h *StrategyHandler) Compare(c *gin.Context) {
	var req models.StrategyCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return
	}

	results := simulate.Compare(simulate.FleetState{
		Size:              req.FleetSize,
		RefreshYears:      req.CurrentRefreshYears,
		RefurbRate:        req.CurrentRefurbRate,
		AvgDeviceValueEUR: req.AvgDeviceValueEUR,
		AvgCO2PerDeviceKg: req.AvgCO2PerDeviceKg,
		TargetReduction:   req.TargetReduction,
		HorizonMonths:     req.HorizonMonths,
	})
	h.metrics.RecordStrategyRun()

	c.JSON(http.StatusOK, gin.H{"projections": results})
}
