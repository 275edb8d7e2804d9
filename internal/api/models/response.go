package models

// ErrorResponse is the JSON error envelope of every error reply.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code and the human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError builds an error envelope.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// DeviceInfo is one row of GET /api/v1/reference/devices.
type DeviceInfo struct {
	Name               string  `json:"name"`
	PriceNewEUR        float64 `json:"price_new_eur"`
	LifespanMonths     float64 `json:"lifespan_months"`
	ManufacturingCO2Kg float64 `json:"manufacturing_co2_kg"`
	Category           string  `json:"category"`
	RefurbAvailable    bool    `json:"refurb_available"`
}

// PersonaInfo is one row of GET /api/v1/reference/personas.
type PersonaInfo struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	SalaryEUR      float64 `json:"salary_eur"`
	DailyHours     float64 `json:"daily_hours"`
	LagSensitivity float64 `json:"lag_sensitivity"`
	TypicalDevice  string  `json:"typical_device"`
}

// CountryInfo is one row of GET /api/v1/reference/countries.
type CountryInfo struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
	// GridFactorKg is the emission factor in kgCO2e/kWh.
	GridFactorKg float64 `json:"grid_factor_kg_per_kwh"`
}

// StrategyInfo is one row of GET /api/v1/reference/strategies.
type StrategyInfo struct {
	Key                      string  `json:"key"`
	Name                     string  `json:"name"`
	Description              string  `json:"description"`
	RefreshYears             float64 `json:"refresh_years"`
	RefurbRate               float64 `json:"refurb_rate"`
	RecoveryRate             float64 `json:"recovery_rate"`
	ImplementationCostFactor float64 `json:"implementation_cost_factor"`
}

// StorageClassInfo is one row of GET /api/v1/reference/storage-classes.
type StorageClassInfo struct {
	Provider           string  `json:"provider"`
	Service            string  `json:"service"`
	Class              string  `json:"class"`
	Region             string  `json:"region"`
	PriceEURPerTBMonth float64 `json:"price_eur_per_tb_month"`
	CO2KgPerTBMonth    float64 `json:"co2_kg_per_tb_month"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
