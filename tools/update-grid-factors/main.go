// Package main provides a tool to update per-country grid emission
// factors from the ElectricityMaps yearly average dataset.
//
// The tool fetches the latest carbon intensities and rewrites the
// internal/refdata/grid_factors.go file with the new values.
//
// Usage:
//
//	go run ./tools/update-grid-factors [--dry-run] [--validate]
//
// Flags:
//
//	--dry-run   Print changes without writing to file
//	--validate  Validate the fetched values are within expected range
//	--output    Path to grid_factors.go (default: ./internal/refdata/grid_factors.go)
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	// Yearly average carbon intensity per zone, gCO2eq/kWh.
	intensityURL = "https://api.electricitymap.org/v3/carbon-intensity/yearly-averages"

	// Valid range for grid factors (kgCO2e per kWh). Near-zero grids
	// like Norway are real; nothing should exceed 1.5.
	minValidFactor = 0.0
	maxValidFactor = 1.5

	fileTemplate = `package refdata

// GridEmissionFactors maps ISO 3166-1 alpha-2 country codes to grid
// carbon intensity. Values are in kgCO2e per kWh.
//
// Source: European Environment Agency 2023 + ElectricityMaps yearly
// averages (update annually using: go run ./tools/update-grid-factors)
// Data vintage: %s
var GridEmissionFactors = map[string]float64{
%s}

// CountryNames maps the country codes in GridEmissionFactors to
// display names for API listings.
var CountryNames = map[string]string{
%s}

// DefaultGridFactor is used when a country doesn't have a specific
// factor. This is roughly the EU average.
const DefaultGridFactor = 0.270

// GetGridFactor returns the grid carbon emission factor for the given
// country code in kgCO2e per kWh. If the country is not listed in
// GridEmissionFactors, DefaultGridFactor is returned.
func GetGridFactor(country string) float64 {
	if factor, ok := GridEmissionFactors[country]; ok {
		return factor
	}
	return DefaultGridFactor
}

// CountryCodes returns the known country codes in sorted order.
func CountryCodes() []string {
	return sortedKeys(GridEmissionFactors)
}
`
)

// countryNames restricts the output to the countries the calculators
// support and supplies their display names.
var countryNames = map[string]string{
	"FR": "France", "DE": "Germany", "UK": "United Kingdom",
	"US": "United States", "CN": "China", "JP": "Japan", "IT": "Italy",
	"ES": "Spain", "CH": "Switzerland", "PL": "Poland", "HK": "Hong Kong",
	"SG": "Singapore", "AE": "UAE", "KR": "South Korea", "AU": "Australia",
	"BR": "Brazil", "MX": "Mexico", "IN": "India", "RU": "Russia",
	"CA": "Canada", "NL": "Netherlands", "BE": "Belgium", "AT": "Austria",
	"SE": "Sweden", "NO": "Norway", "DK": "Denmark", "FI": "Finland",
	"PT": "Portugal", "GR": "Greece", "CZ": "Czech Republic",
	"TW": "Taiwan", "TH": "Thailand", "MY": "Malaysia", "ID": "Indonesia",
	"PH": "Philippines", "VN": "Vietnam", "ZA": "South Africa",
	"EG": "Egypt", "SA": "Saudi Arabia", "TR": "Turkey", "IL": "Israel",
	"NZ": "New Zealand", "CL": "Chile", "AR": "Argentina",
	"CO": "Colombia", "PE": "Peru",
}

// countryFactor is one fetched emission factor.
type countryFactor struct {
	Code   string
	Factor float64
}

type intensityResponse struct {
	Zones map[string]struct {
		// CarbonIntensity is the yearly average in gCO2eq/kWh.
		CarbonIntensity float64 `json:"carbonIntensity"`
	} `json:"zones"`
}

func main() {
	dryRun := flag.Bool("dry-run", false, "Print changes without writing to file")
	validate := flag.Bool("validate", true, "Validate fetched values are within expected range")
	output := flag.String("output", "./internal/refdata/grid_factors.go", "Path to grid_factors.go")
	flag.Parse()

	fmt.Println("Fetching ElectricityMaps yearly average carbon intensities...")
	fmt.Printf("Source: %s\n", intensityURL)

	factors, err := fetchFactors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching grid factors: %v\n", err)
		os.Exit(1)
	}

	if *validate {
		if err := validateFactors(factors); err != nil {
			fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Validation passed")
	}

	content := generateFile(factors)

	if *dryRun {
		fmt.Println("\n--- Dry run output ---")
		fmt.Println(content)
		return
	}

	if err := os.WriteFile(*output, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Updated %s with %d countries\n", *output, len(factors))
	fmt.Println("Run 'go test ./internal/refdata/...' to verify the changes")
}

// fetchFactors fetches and filters the yearly average intensities,
// converted from g/kWh to kg/kWh.
func fetchFactors() ([]countryFactor, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	resp, err := client.Get(intensityURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch intensities: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var data intensityResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	var factors []countryFactor
	for zone, v := range data.Zones {
		code := zone
		// ElectricityMaps uses GB; the calculators use UK.
		if code == "GB" {
			code = "UK"
		}
		if _, ok := countryNames[code]; !ok {
			continue
		}
		factors = append(factors, countryFactor{Code: code, Factor: v.CarbonIntensity / 1000})
	}
	if len(factors) == 0 {
		return nil, fmt.Errorf("no supported countries in response")
	}
	return factors, nil
}

// validateFactors checks all factors are within the expected range.
func validateFactors(factors []countryFactor) error {
	var errs []string
	for _, f := range factors {
		if f.Factor < minValidFactor || f.Factor > maxValidFactor {
			errs = append(errs, fmt.Sprintf(
				"%s: factor %.4f is outside valid range [%.1f, %.1f]",
				f.Code, f.Factor, minValidFactor, maxValidFactor,
			))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}

// generateFile renders the refdata grid factors file.
func generateFile(factors []countryFactor) string {
	sort.Slice(factors, func(i, j int) bool {
		return factors[i].Code < factors[j].Code
	})

	var entries strings.Builder
	for _, f := range factors {
		entries.WriteString(fmt.Sprintf("\t%q: %.3f, // %s\n",
			f.Code, f.Factor, countryNames[f.Code]))
	}

	var names strings.Builder
	for _, f := range factors {
		names.WriteString(fmt.Sprintf("\t%q: %q,\n", f.Code, countryNames[f.Code]))
	}

	vintage := time.Now().Format("2006")
	return fmt.Sprintf(fileTemplate, vintage, entries.String(), names.String())
}
