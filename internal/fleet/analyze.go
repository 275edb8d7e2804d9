package fleet

import (
	"github.com/greenops/ecocycle/internal/audit"
)

// DeviceResult pairs one fleet row with its audit analysis.
type DeviceResult struct {
	audit.Analysis
	Maison string `json:"maison,omitempty"`
}

// Report is a full fleet analysis.
type Report struct {
	Devices  []DeviceResult `json:"devices"`
	Summary  Summary        `json:"summary"`
	Warnings []string       `json:"warnings,omitempty"`
}

// Analyze runs the audit engine over every fleet row under the given
// optimization goal and returns the per-device results plus summary.
func Analyze(rows []Row, goal audit.Goal) Report {
	results := make([]DeviceResult, 0, len(rows))
	for _, row := range rows {
		analysis := audit.Analyze(audit.Input{
			Device:   row.DeviceModel,
			AgeYears: row.AgeYears,
			Persona:  row.Persona,
			Country:  row.Country,
			Goal:     goal,
		})
		results = append(results, DeviceResult{Analysis: analysis, Maison: row.Maison})
	}

	return Report{
		Devices: results,
		Summary: Summarize(results),
	}
}
