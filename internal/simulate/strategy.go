// Package simulate projects fleet-wide CO2 and financial outcomes of
// lifecycle strategies over a monthly horizon.
package simulate

import (
	"fmt"
	"math"
	"sort"

	"github.com/greenops/ecocycle/internal/refdata"
)

const (
	// avgManufacturingCO2Kg is the fleet-average embodied carbon per
	// replacement device.
	avgManufacturingCO2Kg = 200.0

	// rampUpMonths is the period over which a new strategy reaches full
	// effect.
	rampUpMonths = 6.0

	// neverReached marks projections that never hit the target within
	// the horizon.
	neverReached = 999

	// recoveredResidualShare is the fraction of device value realized
	// when a recovered unit is resold.
	recoveredResidualShare = 0.2
)

// FleetState describes the fleet the strategies are compared against.
type FleetState struct {
	// Size is the number of managed devices.
	Size int

	// RefreshYears is the current refresh cycle.
	RefreshYears float64

	// RefurbRate is the current share of refurbished procurement.
	RefurbRate float64

	// AvgDeviceValueEUR is the average device purchase value. Zero means
	// derive it from the device reference table.
	AvgDeviceValueEUR float64

	// AvgCO2PerDeviceKg is the average annualized footprint per device.
	// Zero means derive it from the device reference table.
	AvgCO2PerDeviceKg float64

	// TargetReduction is the CO2 reduction goal (fraction). Nil means
	// the default goal; an explicit zero is honored.
	TargetReduction *float64

	// HorizonMonths is the projection window.
	HorizonMonths int
}

// Projection is the simulated outcome of one strategy.
type Projection struct {
	StrategyKey  string `json:"strategy_key"`
	StrategyName string `json:"strategy_name"`
	Description  string `json:"description"`

	MonthsToTarget        float64 `json:"months_to_target"`
	ReachesTarget         bool    `json:"reaches_target"`
	FinalCO2ReductionPct  float64 `json:"final_co2_reduction_pct"`
	ImplementationCostEUR float64 `json:"implementation_cost_eur"`
	AnnualSavingsEUR      float64 `json:"annual_savings_eur"`
	AnnualRecoveryEUR     float64 `json:"annual_recovery_eur"`
	ROIYear1              float64 `json:"roi_year1"`
	PaybackMonths         float64 `json:"payback_months"`

	// MonthlyCO2Kg is the projected fleet footprint per month, index 0
	// being the current state.
	MonthlyCO2Kg []float64 `json:"monthly_co2_kg"`
}

// withDefaults fills derived averages and default parameters.
func (f FleetState) withDefaults() FleetState {
	if f.RefreshYears == 0 {
		f.RefreshYears = 4
	}
	if f.TargetReduction == nil {
		target := 0.20
		f.TargetReduction = &target
	}
	if f.HorizonMonths == 0 {
		f.HorizonMonths = 36
	}
	if f.AvgDeviceValueEUR == 0 || f.AvgCO2PerDeviceKg == 0 {
		var sumValue, sumCO2 float64
		for _, spec := range refdata.Devices {
			sumValue += spec.PriceNewEUR
			sumCO2 += spec.ManufacturingCO2Kg / spec.LifespanYears()
		}
		n := float64(len(refdata.Devices))
		if f.AvgDeviceValueEUR == 0 {
			f.AvgDeviceValueEUR = sumValue / n
		}
		if f.AvgCO2PerDeviceKg == 0 {
			f.AvgCO2PerDeviceKg = sumCO2 / n
		}
	}
	return f
}

// Run projects one strategy against the fleet state.
func Run(strategyKey string, state FleetState) (Projection, error) {
	strategy, ok := refdata.GetStrategy(strategyKey)
	if !ok {
		return Projection{}, fmt.Errorf("unknown strategy %q", strategyKey)
	}
	state = state.withDefaults()
	return run(strategy, state), nil
}

func run(strategy refdata.Strategy, state FleetState) Projection {
	fleetSize := float64(state.Size)
	currentAnnualCO2 := fleetSize * state.AvgCO2PerDeviceKg
	targetCO2 := currentAnnualCO2 * (1 - *state.TargetReduction)

	currentReplacements := fleetSize / state.RefreshYears
	newReplacements := fleetSize / strategy.RefreshYears

	// Manufacturing CO2 under current vs. strategy procurement mix.
	co2Cut := refdata.RefurbModel.CO2ReductionFactor
	currentMfgCO2 := currentReplacements * avgManufacturingCO2Kg * (1 - state.RefurbRate*co2Cut)
	newMfgCO2 := newReplacements * avgManufacturingCO2Kg * (1 - strategy.RefurbRate*co2Cut)

	annualReduction := currentMfgCO2 - newMfgCO2
	var monthlyReductionRate float64
	if currentAnnualCO2 > 0 {
		monthlyReductionRate = annualReduction / 12 / currentAnnualCO2
	}

	// Monthly projection with ramp-up over the first months.
	monthly := make([]float64, 0, state.HorizonMonths+1)
	co2 := currentAnnualCO2
	monthsToTarget := -1.0
	for month := 0; month <= state.HorizonMonths; month++ {
		monthly = append(monthly, round2(co2))
		if co2 <= targetCO2 && monthsToTarget < 0 {
			monthsToTarget = float64(month)
		}
		ramp := 1.0
		if float64(month) < rampUpMonths {
			ramp = float64(month) / rampUpMonths
		}
		co2 *= 1 - monthlyReductionRate*ramp
	}

	reaches := monthsToTarget >= 0
	if !reaches {
		monthsToTarget = neverReached
	}

	// Financials.
	implementationCost := fleetSize * state.AvgDeviceValueEUR * strategy.ImplementationCostFactor
	replacementSavings := (currentReplacements - newReplacements) * state.AvgDeviceValueEUR
	refurbSavings := newReplacements * strategy.RefurbRate * state.AvgDeviceValueEUR * refdata.RefurbModel.PriceDiscountFactor
	annualRecovery := fleetSize / strategy.RefreshYears * strategy.RecoveryRate * state.AvgDeviceValueEUR * recoveredResidualShare

	annualSavings := replacementSavings + refurbSavings
	var roiYear1 float64
	if implementationCost > 0 {
		roiYear1 = (annualSavings + annualRecovery - implementationCost) / implementationCost
	}
	payback := float64(neverReached)
	if annualSavings+annualRecovery > 0 {
		payback = implementationCost / ((annualSavings + annualRecovery) / 12)
		payback = math.Round(payback*10) / 10
		if payback >= 900 {
			payback = neverReached
		}
	}

	var finalReduction float64
	if currentAnnualCO2 > 0 {
		finalReduction = (currentAnnualCO2 - monthly[len(monthly)-1]) / currentAnnualCO2
	}

	return Projection{
		StrategyKey:           strategy.Key,
		StrategyName:          strategy.Name,
		Description:           strategy.Description,
		MonthsToTarget:        monthsToTarget,
		ReachesTarget:         reaches,
		FinalCO2ReductionPct:  round4(finalReduction),
		ImplementationCostEUR: round2(implementationCost),
		AnnualSavingsEUR:      round2(annualSavings),
		AnnualRecoveryEUR:     round2(annualRecovery),
		ROIYear1:              round2(roiYear1),
		PaybackMonths:         payback,
		MonthlyCO2Kg:          monthly,
	}
}

// Compare projects every strategy and ranks the results by
// months-to-target ascending, then year-1 ROI descending.
func Compare(state FleetState) []Projection {
	state = state.withDefaults()

	results := make([]Projection, 0, len(refdata.Strategies))
	for _, strategy := range refdata.Strategies {
		results = append(results, run(strategy, state))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MonthsToTarget != results[j].MonthsToTarget {
			return results[i].MonthsToTarget < results[j].MonthsToTarget
		}
		return results[i].ROIYear1 > results[j].ROIYear1
	})

	return results
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
