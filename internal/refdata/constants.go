package refdata

import "sort"

const (
	// WorkingDaysPerYear is the number of days a device is in active use
	// per year. Based on the French legal work year.
	WorkingDaysPerYear = 220.0

	// ElectricityPriceEURPerKWh is the enterprise electricity rate.
	// Source: Eurostat, non-household consumers, France 2024.
	ElectricityPriceEURPerKWh = 0.22

	// CarbonPriceEURPerTon converts avoided CO2 mass to money.
	// Internal shadow price aligned with the EU ETS target corridor.
	CarbonPriceEURPerTon = 80.0

	// ManufacturingAvoidanceShare is the share of a new device's
	// manufacturing CO2 that is avoided by extending the life of an
	// existing one.
	ManufacturingAvoidanceShare = 0.8

	// LagCostShare is the flat share of salary lost to an aging device
	// in the simple ROI model.
	LagCostShare = 0.03
)

// ProductivityModel parameterizes performance degradation with age.
// Source: Microsoft Workplace Analytics Study 2022.
var ProductivityModel = struct {
	// OptimalYears is the age below which no degradation is assumed.
	OptimalYears float64
	// DegradationPerYear is the productivity loss fraction per year past
	// the optimal age.
	DegradationPerYear float64
	// MaxDegradation caps the loss fraction.
	MaxDegradation float64
}{
	OptimalYears:       3,
	DegradationPerYear: 0.03,
	MaxDegradation:     0.15,
}

// RefurbModel parameterizes refurbished procurement.
// Source: Apple Environmental Progress Report 2023 + refurb partner data.
var RefurbModel = struct {
	// CO2ReductionFactor is the manufacturing CO2 avoided versus new.
	CO2ReductionFactor float64
	// PriceDiscountFactor is the price reduction versus new.
	PriceDiscountFactor float64
	// EnergyPenaltyFactor is the extra energy draw of older hardware.
	EnergyPenaltyFactor float64
	// WarrantyYears is the lifespan assumed for a refurbished unit.
	WarrantyYears float64
	// EquivalentAgeYears is the wear-equivalent age used when estimating
	// productivity loss on a refurbished unit.
	EquivalentAgeYears float64
	// ResidualShare is the fraction of the refurb price recoverable at
	// end of warranty.
	ResidualShare float64
}{
	CO2ReductionFactor:  0.85,
	PriceDiscountFactor: 0.45,
	EnergyPenaltyFactor: 0.10,
	WarrantyYears:       2,
	EquivalentAgeYears:  1.5,
	ResidualShare:       0.2,
}

// UrgencyModel parameterizes replacement urgency scoring, following an
// ITIL-style incident priority matrix.
var UrgencyModel = struct {
	// AgeCriticalYears adds the largest age factor.
	AgeCriticalYears float64
	// AgeHighYears adds a smaller age factor.
	AgeHighYears float64
	// PerformanceThreshold is the performance fraction below which the
	// performance factor applies.
	PerformanceThreshold float64
	// HighThreshold and MediumThreshold map scores to levels.
	HighThreshold   float64
	MediumThreshold float64
}{
	AgeCriticalYears:     5,
	AgeHighYears:         4,
	PerformanceThreshold: 0.70,
	HighThreshold:        2.0,
	MediumThreshold:      1.3,
}

// sortedKeys returns the map keys in sorted order. Reference listings
// must be deterministic for API responses and tests.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
