package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenops/ecocycle/internal/api/models"
	"github.com/greenops/ecocycle/internal/refdata"
)

// ReferenceHandler serves the built-in reference tables.
type ReferenceHandler struct{}

// NewReferenceHandler creates a reference data handler.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// ListDevices handles GET /api/v1/reference/devices.
func (h *ReferenceHandler) ListDevices(c *gin.Context) {
	names := refdata.DeviceNames()
	out := make([]models.DeviceInfo, 0, len(names))
	for _, name := range names {
		spec := refdata.Devices[name]
		out = append(out, models.DeviceInfo{
			Name:               spec.Name,
			PriceNewEUR:        spec.PriceNewEUR,
			LifespanMonths:     spec.LifespanMonths,
			ManufacturingCO2Kg: spec.ManufacturingCO2Kg,
			Category:           spec.Category,
			RefurbAvailable:    spec.RefurbAvailable,
		})
	}
	c.JSON(http.StatusOK, gin.H{"devices": out})
}

// ListPersonas handles GET /api/v1/reference/personas.
func (h *ReferenceHandler) ListPersonas(c *gin.Context) {
	names := refdata.PersonaNames()
	out := make([]models.PersonaInfo, 0, len(names))
	for _, name := range names {
		p := refdata.Personas[name]
		out = append(out, models.PersonaInfo{
			Name:           p.Name,
			Description:    p.Description,
			SalaryEUR:      p.SalaryEUR,
			DailyHours:     p.DailyHours,
			LagSensitivity: p.LagSensitivity,
			TypicalDevice:  p.TypicalDevice,
		})
	}
	c.JSON(http.StatusOK, gin.H{"personas": out})
}

// ListCountries handles GET /api/v1/reference/countries.
func (h *ReferenceHandler) ListCountries(c *gin.Context) {
	codes := refdata.CountryCodes()
	out := make([]models.CountryInfo, 0, len(codes))
	for _, code := range codes {
		out = append(out, models.CountryInfo{
			Code:         code,
			Name:         refdata.CountryNames[code],
			GridFactorKg: refdata.GridEmissionFactors[code],
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"countries":      out,
		"default_factor": refdata.DefaultGridFactor,
	})
}

// ListStrategies handles GET /api/v1/reference/strategies.
func (h *ReferenceHandler) ListStrategies(c *gin.Context) {
	out := make([]models.StrategyInfo, 0, len(refdata.Strategies))
	for _, s := range refdata.Strategies {
		out = append(out, models.StrategyInfo{
			Key:                      s.Key,
			Name:                     s.Name,
			Description:              s.Description,
			RefreshYears:             s.RefreshYears,
			RefurbRate:               s.RefurbRate,
			RecoveryRate:             s.RecoveryRate,
			ImplementationCostFactor: s.ImplementationCostFactor,
		})
	}
	c.JSON(http.StatusOK, gin.H{"strategies": out})
}

// ListStorageClasses handles GET /api/v1/reference/storage-classes.
func (h *ReferenceHandler) ListStorageClasses(c *gin.Context) {
	out := make([]models.StorageClassInfo, 0, len(refdata.StorageClasses))
	for _, sc := range refdata.StorageClasses {
		out = append(out, models.StorageClassInfo{
			Provider:           sc.Provider,
			Service:            sc.Service,
			Class:              sc.Class,
			Region:             sc.Region,
			PriceEURPerTBMonth: sc.PriceEURPerTBMonth,
			CO2KgPerTBMonth:    sc.CO2KgPerTBMonth,
		})
	}
	c.JSON(http.StatusOK, gin.H{"storage_classes": out})
}
