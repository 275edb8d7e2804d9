package fleet

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteResultsCSV writes per-device analysis results as CSV, one row
// per device.
func WriteResultsCSV(w io.Writer, results []DeviceResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"device",
		"age_years",
		"persona",
		"country",
		"maison",
		"recommendation",
		"urgency",
		"urgency_score",
		"tco_keep_eur",
		"tco_new_eur",
		"tco_refurb_eur",
		"co2_keep_kg",
		"co2_new_kg",
		"co2_refurb_kg",
		"residual_value_eur",
		"annual_savings_eur",
		"co2_savings_kg",
		"rationale",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		refurbCost := ""
		refurbCO2 := ""
		if c, ok := r.Cost["REFURBISHED"]; ok && c.Available {
			refurbCost = fmtFloat(c.TotalEUR)
		}
		if c, ok := r.CO2["REFURBISHED"]; ok && c.Available {
			refurbCO2 = fmtFloat(c.TotalKg)
		}

		row := []string{
			r.Device,
			fmtFloat(r.AgeYears),
			r.Persona,
			r.Country,
			r.Maison,
			string(r.Recommendation),
			string(r.Urgency.Level),
			fmtFloat(r.Urgency.Score),
			fmtFloat(r.Cost["KEEP"].TotalEUR),
			fmtFloat(r.Cost["NEW"].TotalEUR),
			refurbCost,
			fmtFloat(r.CO2["KEEP"].TotalKg),
			fmtFloat(r.CO2["NEW"].TotalKg),
			refurbCO2,
			fmtFloat(r.ResidualValueEUR),
			fmtFloat(r.AnnualSavingsEUR),
			fmtFloat(r.CO2SavingsKg),
			r.Rationale,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
