// Package audit implements the device audit engine: total cost of
// ownership, carbon footprint and replacement urgency for the three
// scenarios (keep, buy new, buy refurbished), plus the recommendation
// that picks between them.
package audit

// Scenario identifies one of the lifecycle options being compared.
type Scenario string

const (
	// ScenarioKeep means keeping the current device one more year.
	ScenarioKeep Scenario = "KEEP"
	// ScenarioNew means replacing with a new device.
	ScenarioNew Scenario = "NEW"
	// ScenarioRefurbished means replacing with a refurbished device.
	ScenarioRefurbished Scenario = "REFURBISHED"
)

// scenarioOrder fixes the tie-break order for recommendation argmin.
var scenarioOrder = []Scenario{ScenarioKeep, ScenarioNew, ScenarioRefurbished}

// Goal selects how cost and carbon are weighed when recommending.
type Goal string

const (
	// GoalBalanced averages normalized cost and carbon.
	GoalBalanced Goal = "balanced"
	// GoalCostFirst minimizes annual TCO only.
	GoalCostFirst Goal = "cost_first"
	// GoalEcoFirst minimizes annual CO2 only.
	GoalEcoFirst Goal = "eco_first"
)

// UrgencyLevel buckets the urgency score.
type UrgencyLevel string

const (
	UrgencyHigh   UrgencyLevel = "HIGH"
	UrgencyMedium UrgencyLevel = "MEDIUM"
	UrgencyLow    UrgencyLevel = "LOW"
)

// Input is one device to analyze.
type Input struct {
	// Device is the device model name. Unknown names fall back to the
	// default model.
	Device string

	// AgeYears is the current device age.
	AgeYears float64

	// Persona is the user profile name. Unknown names fall back to the
	// default persona.
	Persona string

	// Country is the ISO country code for grid carbon intensity.
	Country string

	// GridFactorOverride, when positive, replaces the reference grid
	// factor for the country, e.g. with live API data. kgCO2e/kWh.
	GridFactorOverride float64

	// Goal selects the optimization goal. Empty means balanced.
	Goal Goal
}

// CostBreakdown itemizes an annual TCO figure. Only the components
// relevant to the scenario are non-zero.
type CostBreakdown struct {
	PurchaseEUR        float64 `json:"purchase_eur,omitempty"`
	EnergyEUR          float64 `json:"energy_eur"`
	ProductivityEUR    float64 `json:"productivity_eur,omitempty"`
	DisposalEUR        float64 `json:"disposal_eur,omitempty"`
	ResidualLossEUR    float64 `json:"residual_loss_eur,omitempty"`
	ResidualBenefitEUR float64 `json:"residual_benefit_eur,omitempty"`
}

// ScenarioCost is the annual TCO of one scenario.
type ScenarioCost struct {
	// Available is false when the scenario cannot be priced, e.g. refurb
	// for a model with no refurbished market.
	Available bool `json:"available"`

	// TotalEUR is the annual total cost of ownership.
	TotalEUR float64 `json:"total_eur"`

	// Breakdown itemizes the total.
	Breakdown CostBreakdown `json:"breakdown"`

	// ProductivityLossPct is the performance loss fraction assumed in
	// the productivity component.
	ProductivityLossPct float64 `json:"productivity_loss_pct"`
}

// ScenarioCO2 is the annual carbon footprint of one scenario.
type ScenarioCO2 struct {
	Available bool `json:"available"`

	// TotalKg is the annual footprint in kgCO2e.
	TotalKg float64 `json:"total_kg"`

	// ManufacturingKg is the amortized embodied share; zero for the keep
	// scenario because that carbon is already emitted.
	ManufacturingKg float64 `json:"manufacturing_kg"`

	// UsageKg is the operational share.
	UsageKg float64 `json:"usage_kg"`
}

// Urgency is the replacement urgency assessment.
type Urgency struct {
	Score     float64      `json:"score"`
	Level     UrgencyLevel `json:"level"`
	Rationale string       `json:"rationale"`
}

// Analysis is the complete audit result for one device.
type Analysis struct {
	Device   string  `json:"device"`
	AgeYears float64 `json:"age_years"`
	Persona  string  `json:"persona"`
	Country  string  `json:"country"`

	Recommendation Scenario `json:"recommendation"`
	Rationale      string   `json:"rationale"`
	Urgency        Urgency  `json:"urgency"`

	Cost map[Scenario]ScenarioCost `json:"cost"`
	CO2  map[Scenario]ScenarioCO2  `json:"co2"`

	// ResidualValueEUR is the current resale value of the device.
	ResidualValueEUR float64 `json:"residual_value_eur"`

	// AnnualSavingsEUR is keep-TCO minus best-TCO, floored at zero.
	AnnualSavingsEUR float64 `json:"annual_savings_eur"`

	// CO2SavingsKg is keep-CO2 minus best-CO2, floored at zero.
	CO2SavingsKg float64 `json:"co2_savings_kg"`

	// DeviceFallback and PersonaFallback report that an unknown key was
	// replaced by the default entry.
	DeviceFallback  bool `json:"device_fallback,omitempty"`
	PersonaFallback bool `json:"persona_fallback,omitempty"`
}
