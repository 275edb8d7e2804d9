package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenops/ecocycle/internal/refdata"
)

// testSpec is a synthetic device used where the assertions depend on
// exact numbers rather than the reference table.
var testSpec = refdata.DeviceSpec{
	Name:               "Test Laptop",
	PriceNewEUR:        1000,
	LifespanMonths:     48,
	ManufacturingCO2Kg: 250,
	PowerKW:            0.030,
	Category:           "Laptop",
	RefurbAvailable:    true,
	HoldsData:          true,
}

var testPersona = refdata.Persona{
	Name:           "Test Admin",
	SalaryEUR:      50000,
	DailyHours:     8,
	LagSensitivity: 1.0,
}

func TestEnergyCostEUR(t *testing.T) {
	// 0.030 kW × 8h × 220 days × 0.22 €/kWh = 11.616 €
	assert.InDelta(t, 11.62, EnergyCostEUR(testSpec, testPersona), 0.01)
}

func TestProductivityLoss(t *testing.T) {
	tests := []struct {
		name     string
		ageYears float64
		wantLoss float64
	}{
		{"new device has no loss", 1, 0},
		{"at optimal age has no loss", 3, 0},
		{"one year past optimal", 4, 0.03},
		{"two years past optimal", 5, 0.06},
		{"loss capped at 15 percent", 20, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loss, cost := ProductivityLoss(tt.ageYears, testPersona)
			assert.InDelta(t, tt.wantLoss, loss, 1e-9)
			assert.InDelta(t, testPersona.SalaryEUR*tt.wantLoss, cost, 0.01)
		})
	}
}

func TestCostRefurb_UnavailableModel(t *testing.T) {
	spec := testSpec
	spec.RefurbAvailable = false

	cost := CostRefurb(spec, testPersona)
	assert.False(t, cost.Available)
	assert.Zero(t, cost.TotalEUR)

	co2 := CO2Refurb(spec, testPersona, 0.052)
	assert.False(t, co2.Available)
}

func TestCO2Scenarios(t *testing.T) {
	const frFactor = 0.052

	t.Run("keep counts usage only", func(t *testing.T) {
		keep := CO2Keep(testSpec, testPersona, frFactor)
		assert.True(t, keep.Available)
		assert.Zero(t, keep.ManufacturingKg)
		assert.Equal(t, keep.UsageKg, keep.TotalKg)
	})

	t.Run("new amortizes manufacturing", func(t *testing.T) {
		fresh := CO2New(testSpec, testPersona, frFactor)
		// 250 kg over 4 years.
		assert.InDelta(t, 62.5, fresh.ManufacturingKg, 0.01)
		assert.Greater(t, fresh.TotalKg, fresh.UsageKg)
	})

	t.Run("refurb emits less than new", func(t *testing.T) {
		fresh := CO2New(testSpec, testPersona, frFactor)
		refurb := CO2Refurb(testSpec, testPersona, frFactor)
		assert.Less(t, refurb.TotalKg, fresh.TotalKg)
		// 250 × 0.15 / 2 warranty years.
		assert.InDelta(t, 18.75, refurb.ManufacturingKg, 0.01)
	})

	t.Run("dirtier grid raises usage", func(t *testing.T) {
		fr := CO2Keep(testSpec, testPersona, 0.052)
		pl := CO2Keep(testSpec, testPersona, 0.700)
		assert.Greater(t, pl.TotalKg, fr.TotalKg)
	})
}

func TestScoreUrgency(t *testing.T) {
	tests := []struct {
		name      string
		ageYears  float64
		persona   refdata.Persona
		wantScore float64
		wantLevel UrgencyLevel
	}{
		{"young device is low", 2, testPersona, 1.0, UrgencyLow},
		{"four year old is medium", 4, testPersona, 1.8, UrgencyMedium},
		{"five year old is high", 5, testPersona, 2.5, UrgencyHigh},
		{
			"sensitive persona adds pressure", 4,
			refdata.Persona{Name: "Dev", SalaryEUR: 95000, DailyHours: 9, LagSensitivity: 2.5},
			2.1, UrgencyHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := ScoreUrgency(testSpec, tt.ageYears, tt.persona)
			assert.InDelta(t, tt.wantScore, u.Score, 1e-9)
			assert.Equal(t, tt.wantLevel, u.Level)
			assert.NotEmpty(t, u.Rationale)
		})
	}
}

func TestAnalyze_Fallbacks(t *testing.T) {
	a := Analyze(Input{Device: "Quantum Abacus", AgeYears: 3, Persona: "Astronaut", Country: "XX"})

	assert.True(t, a.DeviceFallback)
	assert.True(t, a.PersonaFallback)
	assert.Equal(t, refdata.DefaultDeviceName, a.Device)
	assert.Equal(t, refdata.DefaultPersonaName, a.Persona)
}

func TestAnalyze_Deterministic(t *testing.T) {
	in := Input{Device: "Laptop (Standard)", AgeYears: 4, Persona: "Admin Normal (HR/Finance)", Country: "FR"}

	first := Analyze(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Analyze(in), "same input must always produce the same analysis")
	}
}

func TestAnalyze_AllScenariosPresent(t *testing.T) {
	a := Analyze(Input{Device: "Workstation", AgeYears: 2, Persona: "Admin High (Dev/Data)", Country: "DE"})

	for _, s := range []Scenario{ScenarioKeep, ScenarioNew, ScenarioRefurbished} {
		require.Contains(t, a.Cost, s)
		require.Contains(t, a.CO2, s)
	}
	assert.Contains(t, []Scenario{ScenarioKeep, ScenarioNew, ScenarioRefurbished}, a.Recommendation)
}

func TestAnalyze_HighUrgencyOverridesKeep(t *testing.T) {
	// A six-year-old device scores HIGH urgency; even if keeping were
	// cheapest, the recommendation must move to a replacement scenario.
	a := Analyze(Input{Device: "Laptop (Standard)", AgeYears: 6, Persona: "Vendor (Phone/Tablet)", Country: "FR"})

	assert.Equal(t, UrgencyHigh, a.Urgency.Level)
	assert.NotEqual(t, ScenarioKeep, a.Recommendation)
}

func TestAnalyze_RefurbNeverRecommendedWhenUnavailable(t *testing.T) {
	// Meeting Room Screen has no refurbished market.
	a := Analyze(Input{Device: "Meeting Room Screen", AgeYears: 6, Persona: "Admin Normal (HR/Finance)", Country: "FR", Goal: GoalEcoFirst})

	assert.False(t, a.Cost[ScenarioRefurbished].Available)
	assert.NotEqual(t, ScenarioRefurbished, a.Recommendation)
}

func TestAnalyze_Goals(t *testing.T) {
	in := Input{Device: "Laptop (Standard)", AgeYears: 4, Persona: "Admin High (Dev/Data)", Country: "PL"}

	for _, goal := range []Goal{GoalBalanced, GoalCostFirst, GoalEcoFirst} {
		in.Goal = goal
		a := Analyze(in)
		assert.NotEmpty(t, a.Recommendation, "goal %s", goal)
		assert.NotEmpty(t, a.Rationale, "goal %s", goal)
	}
}

func TestAnalyze_SavingsNeverNegative(t *testing.T) {
	for name := range refdata.Devices {
		for _, age := range []float64{0.5, 2, 4, 6, 8} {
			a := Analyze(Input{Device: name, AgeYears: age, Persona: refdata.DefaultPersonaName, Country: "FR"})
			assert.GreaterOrEqual(t, a.AnnualSavingsEUR, 0.0, "%s at %.1fy", name, age)
			assert.GreaterOrEqual(t, a.CO2SavingsKg, 0.0, "%s at %.1fy", name, age)
		}
	}
}

func TestAnalyze_GridFactorOverride(t *testing.T) {
	base := Analyze(Input{Device: "Workstation", AgeYears: 2, Persona: "Admin Normal (HR/Finance)", Country: "FR"})
	dirty := Analyze(Input{Device: "Workstation", AgeYears: 2, Persona: "Admin Normal (HR/Finance)", Country: "FR", GridFactorOverride: 0.9})

	assert.Greater(t, dirty.CO2[ScenarioKeep].TotalKg, base.CO2[ScenarioKeep].TotalKg,
		"override should replace the reference grid factor")
}
