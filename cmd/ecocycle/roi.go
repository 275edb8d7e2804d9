package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/greenops/ecocycle/internal/refdata"
	"github.com/greenops/ecocycle/internal/roi"
)

func cmdROI(args []string) {
	fs := flag.NewFlagSet("roi", flag.ExitOnError)
	equipment := fs.String("equipment", "", "equipment type name")
	mfgCO2 := fs.Float64("mfg-co2", 0, "manufacturing footprint in kgCO2e")
	salary := fs.Float64("salary", 0, "annual salary of the user in euros")
	carbonPrice := fs.Float64("carbon-price", refdata.CarbonPriceEURPerTon, "carbon price in €/tCO2e")
	inventoryPath := fs.String("inventory", "", "path to inventory CSV (Category, Item, Value)")
	factorsPath := fs.String("factors", "", "path to carbon factor CSV (equipment_type, mfg_kgco2e, annual_salary)")
	_ = fs.Parse(args)

	if *inventoryPath != "" || *factorsPath != "" {
		batchROI(*inventoryPath, *factorsPath, *carbonPrice)
		return
	}
	if *equipment == "" {
		fmt.Println("either --equipment or --inventory/--factors is required")
		os.Exit(2)
	}

	r := roi.Compute(*equipment, *mfgCO2, *salary, *carbonPrice)
	printROI(r)
}

func batchROI(inventoryPath, factorsPath string, carbonPrice float64) {
	if inventoryPath == "" || factorsPath == "" {
		fmt.Println("--inventory and --factors must be given together")
		os.Exit(2)
	}

	invFile, err := os.Open(inventoryPath)
	if err != nil {
		fatal(err)
	}
	defer invFile.Close()
	inv, warnings, err := roi.ReadInventory(invFile)
	if err != nil {
		fatal(err)
	}

	facFile, err := os.Open(factorsPath)
	if err != nil {
		fatal(err)
	}
	defer facFile.Close()
	factors, salaries, facWarnings, err := roi.ReadCarbonFactors(facFile)
	if err != nil {
		fatal(err)
	}
	warnings = append(warnings, facWarnings...)

	types := make([]string, 0, len(inv.Counts))
	for equipment := range inv.Counts {
		types = append(types, equipment)
	}
	sort.Strings(types)

	rows := make([]roi.BatchRow, 0, len(types))
	for _, equipment := range types {
		rows = append(rows, roi.BatchRow{
			EquipmentType:   equipment,
			AnnualSalaryEUR: salaries[equipment],
		})
	}

	result := roi.ComputeBatch(rows, factors, carbonPrice)
	warnings = append(warnings, result.Warnings...)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	fmt.Println("Equipment            CO2 saved   Carbon value    Lag cost     Net ROI")
	for _, r := range result.Results {
		carbon := fmt.Sprintf("€%.2f", r.CarbonValueEUR)
		if !r.HasCarbonData {
			carbon = "n/a"
		}
		fmt.Printf("%-20s %7.1fkg %14s %10.0f€ %10.0f€\n",
			r.Equipment, r.CO2SavedKg, carbon, r.LagCostEUR, r.NetROIEUR)
	}
	fmt.Printf("\nTotal net ROI: €%.2f\n", result.TotalNetROIEUR)
}

func printROI(r roi.Result) {
	fmt.Printf("Equipment:     %s\n", r.Equipment)
	fmt.Printf("CO2 saved:     %.1f kg (refurbished vs new)\n", r.CO2SavedKg)
	fmt.Printf("Carbon value:  €%.2f\n", r.CarbonValueEUR)
	fmt.Printf("Lag cost:      €%.2f/year\n", r.LagCostEUR)
	fmt.Printf("Net ROI:       €%.2f\n", r.NetROIEUR)
}
