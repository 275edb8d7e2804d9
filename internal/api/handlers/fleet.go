package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/greenops/ecocycle/internal/api/models"
	"github.com/greenops/ecocycle/internal/audit"
	"github.com/greenops/ecocycle/internal/fleet"
	"github.com/greenops/ecocycle/pkg/metrics"
)

// FleetHandler serves fleet CSV analysis.
type FleetHandler struct {
	maxRows int
	metrics *metrics.Manager
}

// NewFleetHandler creates a fleet handler. maxRows caps uploaded fleet
// size.
func NewFleetHandler(maxRows int, m *metrics.Manager) *FleetHandler {
	return &FleetHandler{maxRows: maxRows, metrics: m}
}

// Analyze handles POST /api/v1/fleet/analyze. It accepts either a JSON
// body with rows, or a multipart form with a "file" CSV upload and an
// optional "goal" field.
func (h *FleetHandler) Analyze(c *gin.Context) {
	var (
		rows     []fleet.Row
		warnings []string
		goal     audit.Goal
	)

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.NewError("INVALID_UPLOAD", err.Error()))
			return
		}
		defer f.Close()

		rows, warnings, err = fleet.ReadCSV(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.NewError("INVALID_CSV", err.Error()))
			return
		}
		goal = audit.Goal(c.PostForm("goal"))
	} else {
		var req models.FleetAnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
			return
		}
		rows = make([]fleet.Row, 0, len(req.Rows))
		for _, r := range req.Rows {
			rows = append(rows, fleet.Row{
				DeviceModel: r.DeviceModel,
				AgeYears:    r.AgeYears,
				Persona:     r.Persona,
				Country:     r.Country,
				Maison:      r.Maison,
			})
		}
		goal = audit.Goal(req.Goal)
	}

	if len(rows) > h.maxRows {
		c.JSON(http.StatusRequestEntityTooLarge, models.NewError("FLEET_TOO_LARGE",
			fmt.Sprintf("fleet has %d rows, maximum is %d", len(rows), h.maxRows)))
		return
	}

	report := fleet.Analyze(rows, goal)
	report.Warnings = append(warnings, report.Warnings...)
	h.metrics.RecordFleetDevices(len(rows))

	c.JSON(http.StatusOK, report)
}

// Demo handles GET /api/v1/fleet/demo. Query params: n (fleet size),
// seed, goal.
func (h *FleetHandler) Demo(c *gin.Context) {
	n := 200
	if v := c.Query("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", "n must be a positive integer"))
			return
		}
		n = parsed
	}
	if n > h.maxRows {
		n = h.maxRows
	}

	seed := int64(42)
	if v := c.Query("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", "seed must be an integer"))
			return
		}
		seed = parsed
	}

	rows := fleet.GenerateDemo(n, seed)
	report := fleet.Analyze(rows, audit.Goal(c.Query("goal")))
	h.metrics.RecordFleetDevices(len(rows))

	c.JSON(http.StatusOK, report)
}
