package audit

import (
	"github.com/greenops/ecocycle/internal/refdata"
)

// EnergyCostEUR returns the annual electricity cost of running the
// device for the persona's working hours.
//
// Energy cost = power_kW × annual hours × price per kWh.
func EnergyCostEUR(spec refdata.DeviceSpec, persona refdata.Persona) float64 {
	return round2(spec.PowerKW * persona.AnnualHours() * refdata.ElectricityPriceEURPerKWh)
}

// ProductivityLoss returns the performance loss fraction for a device of
// the given age and its annual cost for the persona.
//
// Below the optimal age the loss is zero. Past it:
//
//	loss = min((age − optimal) × degradation rate, cap)
//	cost = salary × loss × lag sensitivity
func ProductivityLoss(ageYears float64, persona refdata.Persona) (lossPct, costEUR float64) {
	m := refdata.ProductivityModel
	if ageYears > m.OptimalYears {
		lossPct = (ageYears - m.OptimalYears) * m.DegradationPerYear
		if lossPct > m.MaxDegradation {
			lossPct = m.MaxDegradation
		}
	}
	costEUR = round2(persona.SalaryEUR * lossPct * persona.LagSensitivity)
	return round4(lossPct), costEUR
}

// CostKeep computes the annual TCO of keeping the current device one
// more year: energy, productivity loss, and the resale value it sheds
// over that year.
func CostKeep(spec refdata.DeviceSpec, ageYears float64, persona refdata.Persona) ScenarioCost {
	energy := EnergyCostEUR(spec, persona)
	lossPct, productivity := ProductivityLoss(ageYears, persona)

	residualNow := refdata.ResidualValueEUR(spec, ageYears)
	residualNext := refdata.ResidualValueEUR(spec, ageYears+1)
	residualLoss := round2(residualNow - residualNext)

	return ScenarioCost{
		Available: true,
		TotalEUR:  round2(energy + productivity + residualLoss),
		Breakdown: CostBreakdown{
			EnergyEUR:       energy,
			ProductivityEUR: productivity,
			ResidualLossEUR: residualLoss,
		},
		ProductivityLossPct: lossPct,
	}
}

// CostNew computes the annualized TCO of buying a new device: amortized
// purchase and disposal, energy, minus the amortized year-1 residual.
func CostNew(spec refdata.DeviceSpec, persona refdata.Persona) ScenarioCost {
	years := spec.LifespanYears()
	purchase := round2(spec.PriceNewEUR / years)
	energy := EnergyCostEUR(spec, persona)
	disposal := round2(spec.DisposalCostEUR() / years)
	residualBenefit := round2(refdata.ResidualValueEUR(spec, 1) / years)

	return ScenarioCost{
		Available: true,
		TotalEUR:  round2(purchase + energy + disposal - residualBenefit),
		Breakdown: CostBreakdown{
			PurchaseEUR:        purchase,
			EnergyEUR:          energy,
			DisposalEUR:        disposal,
			ResidualBenefitEUR: residualBenefit,
		},
	}
}

// CostRefurb computes the annualized TCO of buying a refurbished
// device. Refurb units are discounted, carry an energy penalty for
// older hardware, and are assumed to behave like a 1.5-year-old unit
// for productivity purposes. Returns Available=false when no
// refurbished market exists for the model.
func CostRefurb(spec refdata.DeviceSpec, persona refdata.Persona) ScenarioCost {
	if !spec.RefurbAvailable {
		return ScenarioCost{}
	}

	m := refdata.RefurbModel
	price := spec.PriceNewEUR * (1 - m.PriceDiscountFactor)
	years := m.WarrantyYears

	purchase := round2(price / years)
	energy := round2(EnergyCostEUR(spec, persona) * (1 + m.EnergyPenaltyFactor))
	lossPct, productivity := ProductivityLoss(m.EquivalentAgeYears, persona)
	disposal := round2(spec.DisposalCostEUR() / years)
	residualBenefit := round2(price * m.ResidualShare / years)

	return ScenarioCost{
		Available: true,
		TotalEUR:  round2(purchase + energy + productivity + disposal - residualBenefit),
		Breakdown: CostBreakdown{
			PurchaseEUR:        purchase,
			EnergyEUR:          energy,
			ProductivityEUR:    productivity,
			DisposalEUR:        disposal,
			ResidualBenefitEUR: residualBenefit,
		},
		ProductivityLossPct: lossPct,
	}
}
