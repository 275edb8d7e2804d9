package main

import (
	"flag"
	"fmt"

	"github.com/greenops/ecocycle/internal/audit"
	"github.com/greenops/ecocycle/internal/refdata"
)

func cmdAudit(args []string) {
	fs := flag.NewFlagSet("audit", flag.ExitOnError)
	device := fs.String("device", refdata.DefaultDeviceName, "device model name")
	age := fs.Float64("age", 3, "device age in years")
	persona := fs.String("persona", refdata.DefaultPersonaName, "user persona name")
	country := fs.String("country", "FR", "ISO country code")
	goal := fs.String("goal", "balanced", "optimization goal: balanced, cost_first, eco_first")
	_ = fs.Parse(args)

	if *age < 0 {
		fatal(fmt.Errorf("--age must not be negative, got %g", *age))
	}

	a := audit.Analyze(audit.Input{
		Device:   *device,
		AgeYears: *age,
		Persona:  *persona,
		Country:  *country,
		Goal:     audit.Goal(*goal),
	})

	fmt.Printf("Device:   %s (%.1f years)\n", a.Device, a.AgeYears)
	fmt.Printf("Persona:  %s\n", a.Persona)
	fmt.Printf("Country:  %s\n", a.Country)
	if a.DeviceFallback {
		fmt.Println("          (unknown device model, using default)")
	}
	if a.PersonaFallback {
		fmt.Println("          (unknown persona, using default)")
	}
	fmt.Println()

	fmt.Println("Scenario       Annual TCO    Annual CO2")
	for _, s := range []audit.Scenario{audit.ScenarioKeep, audit.ScenarioNew, audit.ScenarioRefurbished} {
		cost := a.Cost[s]
		co2 := a.CO2[s]
		if !cost.Available {
			fmt.Printf("%-13s %12s %13s\n", s, "n/a", "n/a")
			continue
		}
		marker := " "
		if s == a.Recommendation {
			marker = "*"
		}
		fmt.Printf("%-13s %11.0f€ %11.1fkg %s\n", s, cost.TotalEUR, co2.TotalKg, marker)
	}
	fmt.Println()

	fmt.Printf("Recommendation: %s\n", a.Recommendation)
	fmt.Printf("Rationale:      %s\n", a.Rationale)
	fmt.Printf("Urgency:        %s (%.1f) - %s\n", a.Urgency.Level, a.Urgency.Score, a.Urgency.Rationale)
	fmt.Printf("Residual value: €%.0f\n", a.ResidualValueEUR)
	fmt.Printf("Savings vs keep: €%.0f/year, %.1fkg CO2/year\n", a.AnnualSavingsEUR, a.CO2SavingsKg)
}
