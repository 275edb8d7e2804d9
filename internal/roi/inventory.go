package roi

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Inventory is the contents of an inventory CSV, split by category.
// The file uses three columns: Category, Item, Value, where Category is
// one of Inventory, Lifespan (months) or Price (euros).
type Inventory struct {
	Counts   map[string]float64
	Lifespan map[string]float64
	Price    map[string]float64
}

// ReadInventory parses an inventory CSV. Unknown categories and rows
// with non-numeric values are skipped with a warning rather than
// failing the whole file.
func ReadInventory(r io.Reader) (*Inventory, []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading inventory csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("inventory csv is empty")
	}

	idx, err := headerIndex(records[0], "Category", "Item", "Value")
	if err != nil {
		return nil, nil, err
	}

	inv := &Inventory{
		Counts:   make(map[string]float64),
		Lifespan: make(map[string]float64),
		Price:    make(map[string]float64),
	}
	var warnings []string

	for i, rec := range records[1:] {
		category := strings.TrimSpace(rec[idx["Category"]])
		item := strings.TrimSpace(rec[idx["Item"]])
		value, err := strconv.ParseFloat(strings.TrimSpace(rec[idx["Value"]]), 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("row %d: non-numeric value %q, skipped", i+2, rec[idx["Value"]]))
			continue
		}

		switch category {
		case "Inventory":
			inv.Counts[item] = value
		case "Lifespan":
			inv.Lifespan[item] = value
		case "Price":
			inv.Price[item] = value
		default:
			warnings = append(warnings, fmt.Sprintf("row %d: unknown category %q, skipped", i+2, category))
		}
	}

	return inv, warnings, nil
}

// ReadCarbonFactors parses a per-equipment carbon factor CSV with
// columns equipment_type, mfg_kgco2e and annual_salary. It returns the
// manufacturing footprints and salaries keyed by equipment type.
func ReadCarbonFactors(r io.Reader) (factors, salaries map[string]float64, warnings []string, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading carbon factor csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, nil, fmt.Errorf("carbon factor csv is empty")
	}

	idx, err := headerIndex(records[0], "equipment_type", "mfg_kgco2e", "annual_salary")
	if err != nil {
		return nil, nil, nil, err
	}

	factors = make(map[string]float64)
	salaries = make(map[string]float64)

	for i, rec := range records[1:] {
		equipment := strings.TrimSpace(rec[idx["equipment_type"]])
		if equipment == "" {
			warnings = append(warnings, fmt.Sprintf("row %d: empty equipment type, skipped", i+2))
			continue
		}
		if mfg, err := strconv.ParseFloat(strings.TrimSpace(rec[idx["mfg_kgco2e"]]), 64); err == nil {
			factors[equipment] = mfg
		} else {
			warnings = append(warnings, fmt.Sprintf("row %d: non-numeric mfg_kgco2e for %q", i+2, equipment))
		}
		if salary, err := strconv.ParseFloat(strings.TrimSpace(rec[idx["annual_salary"]]), 64); err == nil {
			salaries[equipment] = salary
		}
	}

	return factors, salaries, warnings, nil
}

// headerIndex maps required column names to their positions.
func headerIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return idx, nil
}
