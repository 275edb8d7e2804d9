// Package cloudstore estimates the footprint and cost of cloud object
// storage and plans data archival to hit an emissions target.
package cloudstore

import (
	"math"

	"github.com/greenops/ecocycle/internal/refdata"
)

const (
	// EnergyKWhPerGBYear is the estimated energy draw of one GB stored
	// for a year, replication and facility overhead included.
	// Source: Cloud Carbon Footprint storage coefficients.
	EnergyKWhPerGBYear = 1.2

	// WaterLPerKWh is the datacenter water usage effectiveness applied
	// to storage energy.
	WaterLPerKWh = 1.9

	// ArchivalReductionFactor is the emissions cut of moving a GB from
	// a hot tier to a cold archive tier.
	ArchivalReductionFactor = 0.90

	// LitersPerShower converts saved water into everyday terms.
	LitersPerShower = 50.0

	// TreeCO2KgPerYear is the annual absorption of one mature tree.
	TreeCO2KgPerYear = 22.0

	gbPerTB = 1024.0
)

// CarbonIntensity derives the effective grid intensity, in gCO2e/kWh,
// implied by the provider's standard storage class.
func CarbonIntensity(provider string) float64 {
	std := refdata.StandardStorageClass(provider)
	annualKgPerTB := std.CO2KgPerTBMonth * 12
	kWhPerTBYear := gbPerTB * EnergyKWhPerGBYear
	return annualKgPerTB / kWhPerTBYear * 1000
}

// AnnualEmissionsKg estimates the yearly footprint of storing the given
// volume at the given grid intensity (gCO2e/kWh).
func AnnualEmissionsKg(gb, intensityG float64) float64 {
	return gb * EnergyKWhPerGBYear * intensityG / 1000
}

// AnnualWaterL estimates the yearly water usage of storing the volume.
func AnnualWaterL(gb float64) float64 {
	return gb * EnergyKWhPerGBYear * WaterLPerKWh
}

// AnnualCostEUR prices the hot and archived shares of the volume at the
// provider's standard and archive tiers.
func AnnualCostEUR(gb, archivedGB float64, provider string) float64 {
	std := refdata.StandardStorageClass(provider)
	arc := refdata.ArchiveStorageClass(provider)
	hot := (gb - archivedGB) / gbPerTB * std.PriceEURPerTBMonth * 12
	cold := archivedGB / gbPerTB * arc.PriceEURPerTBMonth * 12
	return hot + cold
}

// PlanInput parameterizes a multi-year retention plan.
type PlanInput struct {
	// Provider selects the storage price and carbon rows.
	Provider string `json:"provider"`

	// CurrentGB is the stored volume today.
	CurrentGB float64 `json:"current_gb"`

	// AnnualGrowthRate is the yearly data growth (fraction).
	AnnualGrowthRate float64 `json:"annual_growth_rate"`

	// TargetReduction is the emissions reduction goal versus an
	// all-hot baseline (fraction). Nil means the default goal; an
	// explicit zero is honored.
	TargetReduction *float64 `json:"target_reduction"`

	// Years is the projection length.
	Years int `json:"years"`
}

// YearPlan is the archival plan for one projection year.
type YearPlan struct {
	Year int `json:"year"`

	TotalGB    float64 `json:"total_gb"`
	ArchivedGB float64 `json:"archived_gb"`

	BaselineEmissionsKg float64 `json:"baseline_emissions_kg"`
	EmissionsKg         float64 `json:"emissions_kg"`
	WaterL              float64 `json:"water_l"`
	CostEUR             float64 `json:"cost_eur"`

	EmissionsSavedKg float64 `json:"emissions_saved_kg"`
	CostSavedEUR     float64 `json:"cost_saved_eur"`
	TargetMet        bool    `json:"target_met"`
}

// Plan is a full retention plan with cumulative savings.
type Plan struct {
	Provider         string     `json:"provider"`
	CarbonIntensityG float64    `json:"carbon_intensity_g_per_kwh"`
	TargetReduction  float64    `json:"target_reduction"`
	Years            []YearPlan `json:"years"`

	CumulativeEmissionsSavedKg float64 `json:"cumulative_emissions_saved_kg"`
	CumulativeWaterSavedL      float64 `json:"cumulative_water_saved_l"`
	CumulativeCostSavedEUR     float64 `json:"cumulative_cost_saved_eur"`

	// Everyday equivalences of the cumulative savings.
	ShowersEquivalent float64 `json:"showers_equivalent"`
	TreesEquivalent   float64 `json:"trees_equivalent"`
}

func (in PlanInput) withDefaults() PlanInput {
	if in.Provider == "" {
		in.Provider = refdata.DefaultStorageProvider
	}
	if in.Years <= 0 {
		in.Years = 5
	}
	if in.TargetReduction == nil {
		target := 0.30
		in.TargetReduction = &target
	}
	return in
}

// BuildPlan computes, for each projection year, the volume to archive to
// hit the emissions target and the resulting footprint, water and cost.
func BuildPlan(in PlanInput) Plan {
	in = in.withDefaults()
	intensity := CarbonIntensity(in.Provider)

	plan := Plan{
		Provider:         in.Provider,
		CarbonIntensityG: round2(intensity),
		TargetReduction:  *in.TargetReduction,
		Years:            make([]YearPlan, 0, in.Years),
	}

	total := in.CurrentGB
	for year := 1; year <= in.Years; year++ {
		total *= 1 + in.AnnualGrowthRate

		baseline := AnnualEmissionsKg(total, intensity)
		targetEmissions := baseline * (1 - *in.TargetReduction)

		// Each archived GB cuts its emissions by the archival factor;
		// solve for the volume to archive and clamp to [0, total].
		perGBSaving := EnergyKWhPerGBYear * intensity / 1000 * ArchivalReductionFactor
		var toArchive float64
		if perGBSaving > 0 {
			toArchive = (baseline - targetEmissions) / perGBSaving
		}
		toArchive = math.Max(0, math.Min(total, toArchive))

		emissions := baseline - toArchive*perGBSaving
		met := emissions <= targetEmissions+1e-9

		baselineWater := AnnualWaterL(total)
		water := baselineWater
		if total > 0 {
			water = baselineWater * (1 - ArchivalReductionFactor*toArchive/total)
		}

		baselineCost := AnnualCostEUR(total, 0, in.Provider)
		cost := AnnualCostEUR(total, toArchive, in.Provider)

		plan.Years = append(plan.Years, YearPlan{
			Year:                year,
			TotalGB:             round2(total),
			ArchivedGB:          round2(toArchive),
			BaselineEmissionsKg: round2(baseline),
			EmissionsKg:         round2(emissions),
			WaterL:              round2(water),
			CostEUR:             round2(cost),
			EmissionsSavedKg:    round2(baseline - emissions),
			CostSavedEUR:        round2(baselineCost - cost),
			TargetMet:           met,
		})

		plan.CumulativeEmissionsSavedKg += baseline - emissions
		plan.CumulativeWaterSavedL += baselineWater - water
		plan.CumulativeCostSavedEUR += baselineCost - cost
	}

	plan.CumulativeEmissionsSavedKg = round2(plan.CumulativeEmissionsSavedKg)
	plan.CumulativeWaterSavedL = round2(plan.CumulativeWaterSavedL)
	plan.CumulativeCostSavedEUR = round2(plan.CumulativeCostSavedEUR)
	plan.ShowersEquivalent = round2(plan.CumulativeWaterSavedL / LitersPerShower)
	plan.TreesEquivalent = round2(plan.CumulativeEmissionsSavedKg / TreeCO2KgPerYear)
	return plan
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
