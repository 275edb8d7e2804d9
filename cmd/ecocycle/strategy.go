package main

import (
	"flag"
	"fmt"

	"github.com/greenops/ecocycle/internal/simulate"
)

func cmdStrategy(args []string) {
	fs := flag.NewFlagSet("strategy", flag.ExitOnError)
	fleetSize := fs.Int("fleet-size", 1000, "number of managed devices")
	refreshYears := fs.Float64("refresh-years", 4, "current refresh cycle in years")
	refurbRate := fs.Float64("refurb-rate", 0, "current refurbished procurement share (0-1)")
	target := fs.Float64("target", 0.20, "CO2 reduction target (0-1)")
	horizon := fs.Int("horizon", 36, "projection horizon in months")
	_ = fs.Parse(args)

	results := simulate.Compare(simulate.FleetState{
		Size:            *fleetSize,
		RefreshYears:    *refreshYears,
		RefurbRate:      *refurbRate,
		TargetReduction: target,
		HorizonMonths:   *horizon,
	})

	fmt.Printf("Fleet: %d devices, %.0f%% CO2 reduction target, %d month horizon\n\n",
		*fleetSize, *target*100, *horizon)

	fmt.Println("Rank  Strategy                 To target     Impl. cost  Annual savings  ROI yr1   Payback")
	for i, p := range results {
		toTarget := fmt.Sprintf("%.0f mo", p.MonthsToTarget)
		if !p.ReachesTarget {
			toTarget = "never"
		}
		payback := fmt.Sprintf("%.1f mo", p.PaybackMonths)
		if p.PaybackMonths >= 900 {
			payback = "never"
		}
		fmt.Printf("%4d  %-24s %9s %13.0f€ %14.0f€ %8.2f %9s\n",
			i+1, p.StrategyName, toTarget, p.ImplementationCostEUR,
			p.AnnualSavingsEUR+p.AnnualRecoveryEUR, p.ROIYear1, payback)
	}
}
