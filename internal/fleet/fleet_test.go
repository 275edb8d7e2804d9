package fleet

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenops/ecocycle/internal/audit"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"Device_Model,Age_Years,Persona,Country,Maison",
		"Laptop (Standard),4.5,Admin Normal (HR/Finance),FR,Sephora",
		"Workstation,,Admin High (Dev/Data),DE,",
		"Tablet,banana,Vendor (Phone/Tablet),,Bulgari",
	}, "\n")

	rows, warnings, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	t.Run("full row parsed", func(t *testing.T) {
		assert.Equal(t, Row{
			DeviceModel: "Laptop (Standard)",
			AgeYears:    4.5,
			Persona:     "Admin Normal (HR/Finance)",
			Country:     "FR",
			Maison:      "Sephora",
		}, rows[0])
	})

	t.Run("empty age defaults silently", func(t *testing.T) {
		assert.InDelta(t, 3.0, rows[1].AgeYears, 1e-9)
	})

	t.Run("malformed age defaults with warning", func(t *testing.T) {
		assert.InDelta(t, 3.0, rows[2].AgeYears, 1e-9)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "banana")
	})

	t.Run("empty country defaults to FR", func(t *testing.T) {
		assert.Equal(t, "FR", rows[2].Country)
	})
}

func TestReadCSV_MissingDeviceColumn(t *testing.T) {
	_, _, err := ReadCSV(strings.NewReader("Age_Years,Persona\n3,Vendor"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Device_Model")
}

func TestReadCSV_Empty(t *testing.T) {
	_, _, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	rows := []Row{
		{DeviceModel: "Laptop (Standard)", AgeYears: 6, Persona: "Admin Normal (HR/Finance)", Country: "FR", Maison: "Sephora"},
		{DeviceModel: "Workstation", AgeYears: 1, Persona: "Admin High (Dev/Data)", Country: "DE", Maison: "Sephora"},
		{DeviceModel: "Tablet", AgeYears: 3, Persona: "Vendor (Phone/Tablet)", Country: "IT"},
	}

	report := Analyze(rows, audit.GoalBalanced)
	require.Len(t, report.Devices, 3)

	t.Run("summary counts add up", func(t *testing.T) {
		s := report.Summary
		assert.Equal(t, 3, s.TotalDevices)

		var recTotal, urgTotal int
		for _, n := range s.ByRecommendation {
			recTotal += n
		}
		for _, n := range s.ByUrgency {
			urgTotal += n
		}
		assert.Equal(t, 3, recTotal)
		assert.Equal(t, 3, urgTotal)
	})

	t.Run("maison rollup", func(t *testing.T) {
		s := report.Summary
		require.Contains(t, s.ByMaison, "Sephora")
		assert.Equal(t, 2, s.ByMaison["Sephora"].Count)
		require.Contains(t, s.ByMaison, "Unknown")
		assert.Equal(t, 1, s.ByMaison["Unknown"].Count)
	})

	t.Run("old device flagged high urgency", func(t *testing.T) {
		assert.Equal(t, audit.UrgencyHigh, report.Devices[0].Urgency.Level)
	})
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalDevices)
	assert.Equal(t, 0, s.ByRecommendation[audit.ScenarioKeep])
	assert.Equal(t, 0, s.ByUrgency[audit.UrgencyHigh])
}

func TestGenerateDemo(t *testing.T) {
	t.Run("deterministic for a seed", func(t *testing.T) {
		a := GenerateDemo(100, 42)
		b := GenerateDemo(100, 42)
		assert.Equal(t, a, b)
	})

	t.Run("different seeds differ", func(t *testing.T) {
		a := GenerateDemo(100, 1)
		b := GenerateDemo(100, 2)
		assert.NotEqual(t, a, b)
	})

	t.Run("ages within clamp", func(t *testing.T) {
		for _, row := range GenerateDemo(500, 7) {
			assert.GreaterOrEqual(t, row.AgeYears, 0.5)
			assert.LessOrEqual(t, row.AgeYears, 7.0)
			assert.NotEmpty(t, row.DeviceModel)
			assert.NotEmpty(t, row.Persona)
			assert.NotEmpty(t, row.Country)
			assert.NotEmpty(t, row.Maison)
		}
	})
}

func TestWriteResultsCSV(t *testing.T) {
	rows := GenerateDemo(10, 42)
	report := Analyze(rows, audit.GoalBalanced)

	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, report.Devices))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11, "header plus one row per device")

	header := records[0]
	assert.Equal(t, "device", header[0])
	assert.Equal(t, "recommendation", header[5])
	assert.Equal(t, "rationale", header[len(header)-1])

	for _, rec := range records[1:] {
		assert.Len(t, rec, len(header))
	}
}
