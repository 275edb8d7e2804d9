package fleet

import (
	"math"

	"github.com/greenops/ecocycle/internal/audit"
)

// MaisonRollup aggregates results for one business unit.
type MaisonRollup struct {
	Count            int     `json:"count"`
	AnnualSavingsEUR float64 `json:"annual_savings_eur"`
	CO2SavingsKg     float64 `json:"co2_savings_kg"`
	HighUrgency      int     `json:"high_urgency"`
}

// Summary aggregates a fleet analysis.
type Summary struct {
	TotalDevices int `json:"total_devices"`

	ByRecommendation map[audit.Scenario]int     `json:"by_recommendation"`
	ByUrgency        map[audit.UrgencyLevel]int `json:"by_urgency"`

	TotalAnnualSavingsEUR    float64 `json:"total_annual_savings_eur"`
	TotalCO2SavingsKg        float64 `json:"total_co2_savings_kg"`
	TotalRecoverableValueEUR float64 `json:"total_recoverable_value_eur"`

	ByMaison map[string]MaisonRollup `json:"by_maison,omitempty"`
}

// Summarize computes counts and totals over per-device results.
func Summarize(results []DeviceResult) Summary {
	s := Summary{
		TotalDevices: len(results),
		ByRecommendation: map[audit.Scenario]int{
			audit.ScenarioKeep:        0,
			audit.ScenarioNew:         0,
			audit.ScenarioRefurbished: 0,
		},
		ByUrgency: map[audit.UrgencyLevel]int{
			audit.UrgencyHigh:   0,
			audit.UrgencyMedium: 0,
			audit.UrgencyLow:    0,
		},
	}
	if len(results) == 0 {
		return s
	}

	byMaison := make(map[string]MaisonRollup)
	for _, r := range results {
		s.ByRecommendation[r.Recommendation]++
		s.ByUrgency[r.Urgency.Level]++
		s.TotalAnnualSavingsEUR += r.AnnualSavingsEUR
		s.TotalCO2SavingsKg += r.CO2SavingsKg
		s.TotalRecoverableValueEUR += r.ResidualValueEUR

		maison := r.Maison
		if maison == "" {
			maison = "Unknown"
		}
		roll := byMaison[maison]
		roll.Count++
		roll.AnnualSavingsEUR = round2(roll.AnnualSavingsEUR + r.AnnualSavingsEUR)
		roll.CO2SavingsKg = round2(roll.CO2SavingsKg + r.CO2SavingsKg)
		if r.Urgency.Level == audit.UrgencyHigh {
			roll.HighUrgency++
		}
		byMaison[maison] = roll
	}

	s.TotalAnnualSavingsEUR = round2(s.TotalAnnualSavingsEUR)
	s.TotalCO2SavingsKg = round2(s.TotalCO2SavingsKg)
	s.TotalRecoverableValueEUR = round2(s.TotalRecoverableValueEUR)
	s.ByMaison = byMaison
	return s
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
