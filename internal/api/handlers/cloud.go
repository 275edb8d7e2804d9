package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenops/ecocycle/internal/api/models"
	"github.com/greenops/ecocycle/internal/cloudstore"
	"github.com/greenops/ecocycle/pkg/metrics"
)

// CloudHandler serves cloud storage retention planning.
type CloudHandler struct {
	metrics *metrics.Manager
}

// NewCloudHandler creates a cloud storage handler.
func NewCloudHandler(m *metrics.Manager) *CloudHandler {
	return &CloudHandler{metrics: m}
}

// Plan handles POST /api/v1/cloud/plan.
func (h *CloudHandler) Plan(c *gin.Context) {
	var req models.CloudPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return
	}

	plan := cloudstore.BuildPlan(cloudstore.PlanInput{
		Provider:         req.Provider,
		CurrentGB:        req.CurrentGB,
		AnnualGrowthRate: req.AnnualGrowthRate,
		TargetReduction:  req.TargetReduction,
		Years:            req.Years,
	})
	h.metrics.RecordStoragePlan()

	c.JSON(http.StatusOK, plan)
}
