// Package fleet analyzes whole device fleets: CSV ingestion, per-row
// audit, summary rollups and a seeded demo generator.
package fleet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Row is one fleet inventory line.
type Row struct {
	DeviceModel string  `json:"device_model"`
	AgeYears    float64 `json:"age_years"`
	Persona     string  `json:"persona"`
	Country     string  `json:"country"`

	// Maison is the business unit / site label used for rollups.
	Maison string `json:"maison,omitempty"`
}

const (
	// defaultAgeYears applies when the age cell is missing or malformed.
	defaultAgeYears = 3.0

	// defaultCountry applies when the country cell is empty.
	defaultCountry = "FR"
)

// fleet CSV column names; Maison is optional.
const (
	colDevice  = "Device_Model"
	colAge     = "Age_Years"
	colPersona = "Persona"
	colCountry = "Country"
	colMaison  = "Maison"
)

// ReadCSV parses a fleet inventory CSV. Rows are never fatal: malformed
// numeric cells and missing values fall back to defaults with a per-row
// warning. Only a missing header or an unreadable file is an error.
func ReadCSV(r io.Reader) ([]Row, []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading fleet csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("fleet csv is empty")
	}

	header := records[0]
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	if _, ok := idx[colDevice]; !ok {
		return nil, nil, fmt.Errorf("missing required column %q", colDevice)
	}

	cell := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []Row
	var warnings []string

	for i, rec := range records[1:] {
		row := Row{
			DeviceModel: cell(rec, colDevice),
			Persona:     cell(rec, colPersona),
			Country:     cell(rec, colCountry),
			Maison:      cell(rec, colMaison),
			AgeYears:    defaultAgeYears,
		}

		if ageStr := cell(rec, colAge); ageStr != "" {
			if age, err := strconv.ParseFloat(ageStr, 64); err == nil && age >= 0 {
				row.AgeYears = age
			} else {
				warnings = append(warnings, fmt.Sprintf("row %d: invalid age %q, using default %.0fy", i+2, ageStr, defaultAgeYears))
			}
		}
		if row.Country == "" {
			row.Country = defaultCountry
		}

		rows = append(rows, row)
	}

	return rows, warnings, nil
}
