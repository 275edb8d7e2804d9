package audit

import (
	"fmt"
	"strings"

	"github.com/greenops/ecocycle/internal/refdata"
)

// ScoreUrgency rates how urgently the device needs replacing.
//
// Score = 1.0 base
//   - +1.5 when age ≥ critical threshold, +0.8 when age ≥ high threshold
//   - +0.7 when performance has degraded below the threshold
//   - +0.3 for high-sensitivity personas
func ScoreUrgency(spec refdata.DeviceSpec, ageYears float64, persona refdata.Persona) Urgency {
	m := refdata.UrgencyModel
	score := 1.0
	var factors []string

	switch {
	case ageYears >= m.AgeCriticalYears:
		score += 1.5
		factors = append(factors, fmt.Sprintf("Device age (%.1fy) exceeds critical threshold (%.0fy)", ageYears, m.AgeCriticalYears))
	case ageYears >= m.AgeHighYears:
		score += 0.8
		factors = append(factors, fmt.Sprintf("Device age (%.1fy) above recommended (%.0fy)", ageYears, m.AgeHighYears))
	}

	lossPct, _ := ProductivityLoss(ageYears, persona)
	performance := 1 - lossPct
	if performance < m.PerformanceThreshold {
		score += 0.7
		factors = append(factors, fmt.Sprintf("Performance degraded to %.0f%%", performance*100))
	}

	if persona.LagSensitivity >= 2.0 {
		score += 0.3
		factors = append(factors, fmt.Sprintf("High-impact role (%s)", persona.Name))
	}

	var level UrgencyLevel
	switch {
	case score >= m.HighThreshold:
		level = UrgencyHigh
	case score >= m.MediumThreshold:
		level = UrgencyMedium
	default:
		level = UrgencyLow
	}

	rationale := "Device within normal parameters"
	if len(factors) > 0 {
		rationale = strings.Join(factors, " | ")
	}

	return Urgency{Score: round2(score), Level: level, Rationale: rationale}
}
