package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenops/ecocycle/internal/api/models"
	"github.com/greenops/ecocycle/internal/audit"
	"github.com/greenops/ecocycle/internal/carbonapi"
	"github.com/greenops/ecocycle/pkg/metrics"
)

// AuditHandler serves single-device audits.
type AuditHandler struct {
	carbonClient *carbonapi.Client
	metrics      *metrics.Manager
}

// NewAuditHandler creates an audit handler.
func NewAuditHandler(carbonClient *carbonapi.Client, m *metrics.Manager) *AuditHandler {
	return &AuditHandler{carbonClient: carbonClient, metrics: m}
}

// Run handles POST /api/v1/audit.
func (h *AuditHandler) Run(c *gin.Context) {
	var req models.AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return
	}

	in := audit.Input{
		Device:   req.Device,
		AgeYears: req.AgeYears,
		Persona:  req.Persona,
		Country:  req.Country,
		Goal:     audit.Goal(req.Goal),
	}

	gridSource := carbonapi.SourceFallback
	if req.UseLiveData {
		var factor float64
		factor, gridSource = h.carbonClient.GridFactor(c.Request.Context(), req.Country)
		in.GridFactorOverride = factor
		if gridSource == carbonapi.SourceFallback {
			h.metrics.RecordCarbonAPIFallback("grid_intensity")
		}
	}

	analysis := audit.Analyze(in)
	h.metrics.RecordAudit()

	c.JSON(http.StatusOK, gin.H{
		"analysis":    analysis,
		"grid_source": gridSource,
	})
}
