package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenops/ecocycle/internal/refdata"
)

func testState() FleetState {
	return FleetState{
		Size:              5000,
		RefreshYears:      4,
		RefurbRate:        0,
		AvgDeviceValueEUR: 900,
		AvgCO2PerDeviceKg: 80,
		TargetReduction:   fraction(0.20),
		HorizonMonths:     36,
	}
}

func fraction(v float64) *float64 {
	return &v
}

func TestRun_UnknownStrategy(t *testing.T) {
	_, err := Run("print_more_money", testState())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "print_more_money")
}

func TestRun_Baseline(t *testing.T) {
	p, err := Run("baseline", testState())
	require.NoError(t, err)

	t.Run("no change means no reduction", func(t *testing.T) {
		assert.False(t, p.ReachesTarget)
		assert.InDelta(t, 999, p.MonthsToTarget, 1e-9)
		assert.Zero(t, p.ImplementationCostEUR)
		first := p.MonthlyCO2Kg[0]
		last := p.MonthlyCO2Kg[len(p.MonthlyCO2Kg)-1]
		assert.InDelta(t, first, last, first*0.001)
	})

	t.Run("projection spans horizon", func(t *testing.T) {
		assert.Len(t, p.MonthlyCO2Kg, 37, "month 0 through 36")
	})
}

func TestRun_AggressiveTransition(t *testing.T) {
	p, err := Run("aggressive_transition", testState())
	require.NoError(t, err)

	t.Run("emissions fall every month after ramp-up", func(t *testing.T) {
		for i := 7; i < len(p.MonthlyCO2Kg); i++ {
			assert.Less(t, p.MonthlyCO2Kg[i], p.MonthlyCO2Kg[i-1], "month %d", i)
		}
	})

	t.Run("costs and savings positive", func(t *testing.T) {
		assert.Greater(t, p.ImplementationCostEUR, 0.0)
		assert.Greater(t, p.AnnualSavingsEUR, 0.0)
		assert.Greater(t, p.AnnualRecoveryEUR, 0.0)
	})
}

func TestCompare(t *testing.T) {
	results := Compare(testState())
	require.Len(t, results, len(refdata.Strategies))

	t.Run("ranked by months then ROI", func(t *testing.T) {
		for i := 1; i < len(results); i++ {
			prev, cur := results[i-1], results[i]
			if prev.MonthsToTarget == cur.MonthsToTarget {
				assert.GreaterOrEqual(t, prev.ROIYear1, cur.ROIYear1,
					"equal months-to-target must be ordered by ROI descending")
			} else {
				assert.Less(t, prev.MonthsToTarget, cur.MonthsToTarget)
			}
		}
	})

	t.Run("every strategy appears once", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, p := range results {
			assert.False(t, seen[p.StrategyKey], "duplicate %s", p.StrategyKey)
			seen[p.StrategyKey] = true
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, results, Compare(testState()))
	})
}

func TestFleetState_Defaults(t *testing.T) {
	state := FleetState{Size: 100}.withDefaults()

	assert.InDelta(t, 4.0, state.RefreshYears, 1e-9)
	require.NotNil(t, state.TargetReduction)
	assert.InDelta(t, 0.20, *state.TargetReduction, 1e-9)
	assert.Equal(t, 36, state.HorizonMonths)
	assert.Greater(t, state.AvgDeviceValueEUR, 0.0, "derived from the device table")
	assert.Greater(t, state.AvgCO2PerDeviceKg, 0.0, "derived from the device table")
}

func TestRun_ExplicitZeroTarget(t *testing.T) {
	state := testState()
	state.TargetReduction = fraction(0)

	p, err := Run("baseline", state)
	require.NoError(t, err)

	// A zero goal is already met in month 0; it must not be replaced by
	// the default goal.
	assert.True(t, p.ReachesTarget)
	assert.Zero(t, p.MonthsToTarget)
}
