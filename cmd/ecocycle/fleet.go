package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/greenops/ecocycle/internal/audit"
	"github.com/greenops/ecocycle/internal/fleet"
)

func cmdFleet(args []string) {
	fs := flag.NewFlagSet("fleet", flag.ExitOnError)
	csvPath := fs.String("csv", "", "path to fleet CSV (Device_Model, Age_Years, Persona, Country, Maison)")
	demo := fs.Int("demo", 0, "generate a demo fleet of N devices instead of reading a CSV")
	seed := fs.Int64("seed", 42, "demo fleet random seed")
	goal := fs.String("goal", "balanced", "optimization goal: balanced, cost_first, eco_first")
	outPath := fs.String("out", "", "optional: write per-device results CSV here")
	_ = fs.Parse(args)

	var (
		rows     []fleet.Row
		warnings []string
	)
	switch {
	case *demo > 0:
		rows = fleet.GenerateDemo(*demo, *seed)
	case *csvPath != "":
		f, err := os.Open(*csvPath)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		rows, warnings, err = fleet.ReadCSV(f)
		if err != nil {
			fatal(err)
		}
	default:
		fmt.Println("either --csv or --demo is required")
		os.Exit(2)
	}

	report := fleet.Analyze(rows, audit.Goal(*goal))
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	s := report.Summary
	fmt.Printf("Fleet: %d devices\n\n", s.TotalDevices)

	fmt.Println("Recommendations:")
	for _, sc := range []audit.Scenario{audit.ScenarioKeep, audit.ScenarioNew, audit.ScenarioRefurbished} {
		fmt.Printf("  %-13s %5d\n", sc, s.ByRecommendation[sc])
	}
	fmt.Println("Urgency:")
	for _, level := range []audit.UrgencyLevel{audit.UrgencyHigh, audit.UrgencyMedium, audit.UrgencyLow} {
		fmt.Printf("  %-13s %5d\n", level, s.ByUrgency[level])
	}
	fmt.Println()
	fmt.Printf("Potential annual savings: €%.0f\n", s.TotalAnnualSavingsEUR)
	fmt.Printf("Potential CO2 savings:    %.0f kg/year\n", s.TotalCO2SavingsKg)
	fmt.Printf("Recoverable value:        €%.0f\n", s.TotalRecoverableValueEUR)

	if len(s.ByMaison) > 0 {
		names := make([]string, 0, len(s.ByMaison))
		for name := range s.ByMaison {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println("\nBy maison:")
		for _, name := range names {
			roll := s.ByMaison[name]
			fmt.Printf("  %-20s %5d devices  €%8.0f savings  %7.0f kg CO2  %d high urgency\n",
				name, roll.Count, roll.AnnualSavingsEUR, roll.CO2SavingsKg, roll.HighUrgency)
		}
	}

	if *outPath != "" {
		out, err := os.Create(*outPath)
		if err != nil {
			fatal(err)
		}
		defer out.Close()
		if err := fleet.WriteResultsCSV(out, report.Devices); err != nil {
			fatal(err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(report.Devices), *outPath)
	}
}
