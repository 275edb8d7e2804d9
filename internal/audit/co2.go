package audit

import (
	"github.com/greenops/ecocycle/internal/refdata"
)

// UsageCO2Kg returns the annual operational emissions of running the
// device at the given grid factor (kgCO2e/kWh).
//
// Usage CO2 = power_kW × annual hours × grid factor.
func UsageCO2Kg(spec refdata.DeviceSpec, persona refdata.Persona, gridFactor float64) float64 {
	return round2(spec.PowerKW * persona.AnnualHours() * gridFactor)
}

// CO2Keep computes the annual footprint of keeping the current device.
// Its manufacturing carbon is already emitted, so only usage counts.
func CO2Keep(spec refdata.DeviceSpec, persona refdata.Persona, gridFactor float64) ScenarioCO2 {
	usage := UsageCO2Kg(spec, persona, gridFactor)
	return ScenarioCO2{
		Available: true,
		TotalKg:   usage,
		UsageKg:   usage,
	}
}

// CO2New computes the annual footprint of a new device: manufacturing
// amortized over the lifespan plus usage.
func CO2New(spec refdata.DeviceSpec, persona refdata.Persona, gridFactor float64) ScenarioCO2 {
	manufacturing := round2(spec.ManufacturingCO2Kg / spec.LifespanYears())
	usage := UsageCO2Kg(spec, persona, gridFactor)
	return ScenarioCO2{
		Available:       true,
		TotalKg:         round2(manufacturing + usage),
		ManufacturingKg: manufacturing,
		UsageKg:         usage,
	}
}

// CO2Refurb computes the annual footprint of a refurbished device:
// 15% of the manufacturing carbon amortized over the warranty period,
// plus usage with the older-hardware energy penalty. Returns
// Available=false when no refurbished market exists for the model.
func CO2Refurb(spec refdata.DeviceSpec, persona refdata.Persona, gridFactor float64) ScenarioCO2 {
	if !spec.RefurbAvailable {
		return ScenarioCO2{}
	}

	m := refdata.RefurbModel
	manufacturing := round2(spec.ManufacturingCO2Kg * (1 - m.CO2ReductionFactor) / m.WarrantyYears)
	usage := round2(UsageCO2Kg(spec, persona, gridFactor) * (1 + m.EnergyPenaltyFactor))
	return ScenarioCO2{
		Available:       true,
		TotalKg:         round2(manufacturing + usage),
		ManufacturingKg: manufacturing,
		UsageKg:         usage,
	}
}
