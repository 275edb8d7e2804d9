// Package roi implements the simple environmental ROI model: the value
// of the manufacturing carbon avoided by keeping a device, against the
// productivity cost of the aging hardware.
package roi

import (
	"fmt"
	"math"

	"github.com/greenops/ecocycle/internal/refdata"
)

// Result is the environmental ROI of retaining one piece of equipment.
type Result struct {
	Equipment string `json:"equipment"`

	// CO2SavedKg is the avoided manufacturing carbon (80% of the
	// embodied footprint of a new unit).
	CO2SavedKg float64 `json:"co2_saved_kg"`

	// CarbonValueEUR is the avoided carbon converted to money at the
	// carbon price.
	CarbonValueEUR float64 `json:"carbon_value_eur"`

	// LagCostEUR is the yearly productivity loss attributed to the
	// aging device (3% of salary).
	LagCostEUR float64 `json:"lag_cost_eur"`

	// NetROIEUR is CarbonValueEUR minus LagCostEUR.
	NetROIEUR float64 `json:"net_roi_eur"`

	// HasCarbonData is false when no manufacturing footprint was found
	// for the equipment; the carbon fields are then zero and the batch
	// reports a warning.
	HasCarbonData bool `json:"has_carbon_data"`
}

// Compute evaluates the retention ROI for one equipment type.
// A carbonPrice of 0 uses the default price per ton.
func Compute(equipment string, mfgCO2Kg, annualSalaryEUR, carbonPrice float64) Result {
	if carbonPrice == 0 {
		carbonPrice = refdata.CarbonPriceEURPerTon
	}

	co2Saved := mfgCO2Kg * refdata.ManufacturingAvoidanceShare
	carbonValue := co2Saved / 1000 * carbonPrice
	lagCost := annualSalaryEUR * refdata.LagCostShare

	return Result{
		Equipment:      equipment,
		CO2SavedKg:     round2(co2Saved),
		CarbonValueEUR: round2(carbonValue),
		LagCostEUR:     round2(lagCost),
		NetROIEUR:      round2(carbonValue - lagCost),
		HasCarbonData:  true,
	}
}

// BatchRow is one inventory line joined against the carbon factor
// table.
type BatchRow struct {
	EquipmentType   string
	AnnualSalaryEUR float64
}

// BatchResult aggregates a batch computation.
type BatchResult struct {
	Results []Result `json:"results"`

	// TotalNetROIEUR sums the net ROI over all rows.
	TotalNetROIEUR float64 `json:"total_net_roi_eur"`

	// Warnings lists rows whose equipment type had no carbon factor.
	// Missing joins degrade to a zero carbon value, they do not fail.
	Warnings []string `json:"warnings,omitempty"`
}

// ComputeBatch joins inventory rows against per-equipment manufacturing
// footprints and evaluates the ROI for each. Rows without a matching
// factor produce a result with HasCarbonData=false and a warning.
func ComputeBatch(rows []BatchRow, factors map[string]float64, carbonPrice float64) BatchResult {
	var out BatchResult
	for _, row := range rows {
		mfg, ok := factors[row.EquipmentType]
		if !ok {
			r := Compute(row.EquipmentType, 0, row.AnnualSalaryEUR, carbonPrice)
			r.HasCarbonData = false
			out.Results = append(out.Results, r)
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("no carbon factor for equipment type %q; carbon value set to zero", row.EquipmentType))
			out.TotalNetROIEUR += r.NetROIEUR
			continue
		}
		r := Compute(row.EquipmentType, mfg, row.AnnualSalaryEUR, carbonPrice)
		out.Results = append(out.Results, r)
		out.TotalNetROIEUR += r.NetROIEUR
	}
	out.TotalNetROIEUR = round2(out.TotalNetROIEUR)
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
