package models

// AuditRequest is the body of POST /api/v1/audit.
type AuditRequest struct {
	Device   string  `json:"device" binding:"required"`
	AgeYears float64 `json:"age_years" binding:"min=0"`
	Persona  string  `json:"persona"`
	Country  string  `json:"country"`
	Goal     string  `json:"goal"`

	// UseLiveData enables external carbon API lookups for this request.
	UseLiveData bool `json:"use_live_data"`
}

// FleetRowRequest is one device row in a JSON fleet submission.
type FleetRowRequest struct {
	DeviceModel string  `json:"device_model" binding:"required"`
	AgeYears    float64 `json:"age_years"`
	Persona     string  `json:"persona"`
	Country     string  `json:"country"`
	Maison      string  `json:"maison"`
}

// FleetAnalyzeRequest is the JSON body of POST /api/v1/fleet/analyze.
// Clients may alternatively upload a CSV file as multipart form data.
type FleetAnalyzeRequest struct {
	Rows []FleetRowRequest `json:"rows" binding:"required,min=1"`
	Goal string            `json:"goal"`
}

// StrategyCompareRequest is the body of POST /api/v1/strategy/compare.
type StrategyCompareRequest struct {
	FleetSize           int     `json:"fleet_size" binding:"required,min=1"`
	CurrentRefreshYears float64 `json:"current_refresh_years"`
	CurrentRefurbRate   float64 `json:"current_refurb_rate" binding:"min=0,max=1"`
	AvgDeviceValueEUR   float64 `json:"avg_device_value_eur"`
	AvgCO2PerDeviceKg   float64 `json:"avg_co2_per_device_kg"`
	// TargetReduction left null applies the default goal; an explicit
	// zero is honored.
	TargetReduction *float64 `json:"target_reduction" binding:"omitempty,min=0,max=1"`
	HorizonMonths   int      `json:"horizon_months" binding:"min=0,max=240"`
}

// ROIRequest is the body of POST /api/v1/roi.
type ROIRequest struct {
	Equipment            string  `json:"equipment" binding:"required"`
	ManufacturingCO2Kg   float64 `json:"manufacturing_co2_kg" binding:"min=0"`
	AnnualSalaryEUR      float64 `json:"annual_salary_eur" binding:"min=0"`
	CarbonPriceEURPerTon float64 `json:"carbon_price_eur_per_ton"`
}

// CloudPlanRequest is the body of POST /api/v1/cloud/plan.
type CloudPlanRequest struct {
	Provider         string   `json:"provider"`
	CurrentGB        float64  `json:"current_gb" binding:"required,gt=0"`
	AnnualGrowthRate float64  `json:"annual_growth_rate" binding:"min=0"`
	TargetReduction  *float64 `json:"target_reduction" binding:"omitempty,min=0,max=1"`
	Years            int      `json:"years" binding:"min=0,max=30"`
}
