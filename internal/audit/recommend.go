package audit

import (
	"fmt"

	"github.com/greenops/ecocycle/internal/refdata"
)

// residualMentionThresholdEUR is the resale value above which the
// rationale mentions recovering the current device.
const residualMentionThresholdEUR = 50.0

// Analyze runs the full audit for one device: the three scenario costs
// and footprints, the urgency score, and the recommendation.
//
// Unknown device or persona names resolve to the default entries and
// are flagged on the result. The recommendation is the argmin of the
// goal-weighted scenario scores, with ties broken in KEEP, NEW,
// REFURBISHED order. A HIGH urgency overrides a KEEP recommendation.
func Analyze(in Input) Analysis {
	spec, deviceFound := refdata.GetDeviceOrDefault(in.Device)
	persona, personaFound := refdata.GetPersonaOrDefault(in.Persona)

	goal := in.Goal
	if goal == "" {
		goal = GoalBalanced
	}

	cost := map[Scenario]ScenarioCost{
		ScenarioKeep:        CostKeep(spec, in.AgeYears, persona),
		ScenarioNew:         CostNew(spec, persona),
		ScenarioRefurbished: CostRefurb(spec, persona),
	}
	gridFactor := refdata.GetGridFactor(in.Country)
	if in.GridFactorOverride > 0 {
		gridFactor = in.GridFactorOverride
	}
	co2 := map[Scenario]ScenarioCO2{
		ScenarioKeep:        CO2Keep(spec, persona, gridFactor),
		ScenarioNew:         CO2New(spec, persona, gridFactor),
		ScenarioRefurbished: CO2Refurb(spec, persona, gridFactor),
	}

	urgency := ScoreUrgency(spec, in.AgeYears, persona)
	residual := round2(refdata.ResidualValueEUR(spec, in.AgeYears))

	best := pickScenario(cost, co2, goal)
	refurbAvailable := cost[ScenarioRefurbished].Available

	var rationale string
	switch {
	case urgency.Level == UrgencyHigh && best == ScenarioKeep:
		if refurbAvailable {
			best = ScenarioRefurbished
		} else {
			best = ScenarioNew
		}
		rationale = "High urgency: device requires replacement due to age/performance"
	case best == ScenarioKeep:
		rationale = fmt.Sprintf("Cost-effective to maintain. Annual TCO: €%.0f", cost[ScenarioKeep].TotalEUR)
	case best == ScenarioRefurbished:
		savings := cost[ScenarioKeep].TotalEUR - cost[ScenarioRefurbished].TotalEUR
		co2Saved := co2[ScenarioNew].TotalKg - co2[ScenarioRefurbished].TotalKg
		rationale = fmt.Sprintf("Best value: saves €%.0f/year and %.1fkg CO2 vs new", savings, co2Saved)
	default:
		rationale = "New device recommended for optimal performance and reliability"
	}
	if residual > residualMentionThresholdEUR && best != ScenarioKeep {
		rationale += fmt.Sprintf(". Current device recoverable value: €%.0f", residual)
	}

	bestCost := minAvailable(cost)
	bestCO2 := minAvailableCO2(co2)
	annualSavings := cost[ScenarioKeep].TotalEUR - bestCost
	if annualSavings < 0 {
		annualSavings = 0
	}
	co2Savings := co2[ScenarioKeep].TotalKg - bestCO2
	if co2Savings < 0 {
		co2Savings = 0
	}

	return Analysis{
		Device:           spec.Name,
		AgeYears:         in.AgeYears,
		Persona:          persona.Name,
		Country:          in.Country,
		Recommendation:   best,
		Rationale:        rationale,
		Urgency:          urgency,
		Cost:             cost,
		CO2:              co2,
		ResidualValueEUR: residual,
		AnnualSavingsEUR: round2(annualSavings),
		CO2SavingsKg:     round2(co2Savings),
		DeviceFallback:   !deviceFound,
		PersonaFallback:  !personaFound,
	}
}

// pickScenario returns the argmin of the goal-weighted scenario scores
// over the available scenarios. Iteration follows scenarioOrder and
// strict comparison keeps the first of any tied scenarios, so results
// are deterministic.
func pickScenario(cost map[Scenario]ScenarioCost, co2 map[Scenario]ScenarioCO2, goal Goal) Scenario {
	var maxCost, maxCO2 float64
	for _, s := range scenarioOrder {
		if !cost[s].Available {
			continue
		}
		if cost[s].TotalEUR > maxCost {
			maxCost = cost[s].TotalEUR
		}
		if co2[s].TotalKg > maxCO2 {
			maxCO2 = co2[s].TotalKg
		}
	}

	score := func(s Scenario) float64 {
		switch goal {
		case GoalCostFirst:
			return cost[s].TotalEUR
		case GoalEcoFirst:
			return co2[s].TotalKg
		default:
			var costNorm, co2Norm float64
			if maxCost > 0 {
				costNorm = cost[s].TotalEUR / maxCost
			}
			if maxCO2 > 0 {
				co2Norm = co2[s].TotalKg / maxCO2
			}
			return (costNorm + co2Norm) / 2
		}
	}

	best := ScenarioKeep
	bestScore := score(ScenarioKeep)
	for _, s := range scenarioOrder[1:] {
		if !cost[s].Available {
			continue
		}
		if sc := score(s); sc < bestScore {
			best, bestScore = s, sc
		}
	}
	return best
}

func minAvailable(cost map[Scenario]ScenarioCost) float64 {
	min := cost[ScenarioKeep].TotalEUR
	for _, s := range scenarioOrder[1:] {
		if cost[s].Available && cost[s].TotalEUR < min {
			min = cost[s].TotalEUR
		}
	}
	return min
}

func minAvailableCO2(co2 map[Scenario]ScenarioCO2) float64 {
	min := co2[ScenarioKeep].TotalKg
	for _, s := range scenarioOrder[1:] {
		if co2[s].Available && co2[s].TotalKg < min {
			min = co2[s].TotalKg
		}
	}
	return min
}
