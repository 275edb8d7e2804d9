package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenops/ecocycle/internal/api/models"
	"github.com/greenops/ecocycle/internal/roi"
)

// ROIHandler serves environmental ROI computations.
type ROIHandler struct{}

// NewROIHandler creates an ROI handler.
func NewROIHandler() *ROIHandler {
	return &ROIHandler{}
}

// Compute handles POST /api/v1/roi.
func (h *ROIHandler) Compute(c *gin.Context) {
	var req models.ROIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return
	}

	result := roi.Compute(req.Equipment, req.ManufacturingCO2Kg, req.AnnualSalaryEUR, req.CarbonPriceEURPerTon)
	c.JSON(http.StatusOK, result)
}
