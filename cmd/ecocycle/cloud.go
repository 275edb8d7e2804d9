package main

import (
	"flag"
	"fmt"

	"github.com/greenops/ecocycle/internal/cloudstore"
	"github.com/greenops/ecocycle/internal/refdata"
)

func cmdCloud(args []string) {
	fs := flag.NewFlagSet("cloud", flag.ExitOnError)
	provider := fs.String("provider", refdata.DefaultStorageProvider, "cloud provider: AWS, Azure, GCP, Alibaba Cloud")
	gb := fs.Float64("gb", 10000, "current stored volume in GB")
	growth := fs.Float64("growth", 0.20, "annual data growth rate (0-1)")
	target := fs.Float64("target", 0.30, "emissions reduction target vs all-hot baseline (0-1)")
	years := fs.Int("years", 5, "projection length in years")
	_ = fs.Parse(args)

	plan := cloudstore.BuildPlan(cloudstore.PlanInput{
		Provider:         *provider,
		CurrentGB:        *gb,
		AnnualGrowthRate: *growth,
		TargetReduction:  target,
		Years:            *years,
	})

	fmt.Printf("Provider: %s (%.0f gCO2e/kWh effective intensity)\n\n", plan.Provider, plan.CarbonIntensityG)

	fmt.Println("Year    Total GB   Archive GB    CO2 kg   Saved kg     Cost €    Saved €  Target")
	for _, y := range plan.Years {
		met := "met"
		if !y.TargetMet {
			met = "missed"
		}
		fmt.Printf("%4d %11.0f %12.0f %9.1f %10.1f %10.0f %10.0f  %s\n",
			y.Year, y.TotalGB, y.ArchivedGB, y.EmissionsKg, y.EmissionsSavedKg, y.CostEUR, y.CostSavedEUR, met)
	}

	fmt.Println()
	fmt.Printf("Cumulative CO2 saved:   %.1f kg (~%.0f trees for a year)\n",
		plan.CumulativeEmissionsSavedKg, plan.TreesEquivalent)
	fmt.Printf("Cumulative water saved: %.0f L (~%.0f showers)\n",
		plan.CumulativeWaterSavedL, plan.ShowersEquivalent)
	fmt.Printf("Cumulative cost saved:  €%.0f\n", plan.CumulativeCostSavedEUR)
}
