package roi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompute_WorkedExample pins the reference calculation: a 250 kg
// laptop kept by a €50,000 employee at the default €80/t carbon price.
func TestCompute_WorkedExample(t *testing.T) {
	r := Compute("Laptop", 250, 50000, 0)

	assert.InDelta(t, 200.0, r.CO2SavedKg, 1e-9, "80%% of 250 kg")
	assert.InDelta(t, 16.0, r.CarbonValueEUR, 1e-9, "0.2 t at €80/t")
	assert.InDelta(t, 1500.0, r.LagCostEUR, 1e-9, "3%% of €50,000")
	assert.InDelta(t, -1484.0, r.NetROIEUR, 1e-9)
	assert.True(t, r.HasCarbonData)
}

func TestCompute_CustomCarbonPrice(t *testing.T) {
	r := Compute("Laptop", 250, 0, 1000)
	assert.InDelta(t, 200.0, r.CO2SavedKg, 1e-9)
	assert.InDelta(t, 200.0, r.CarbonValueEUR, 1e-9, "0.2 t at €1000/t")
	assert.InDelta(t, 200.0, r.NetROIEUR, 1e-9)
}

func TestComputeBatch(t *testing.T) {
	factors := map[string]float64{
		"Laptop":     250,
		"Smartphone": 60,
	}
	rows := []BatchRow{
		{EquipmentType: "Laptop", AnnualSalaryEUR: 50000},
		{EquipmentType: "Smartphone", AnnualSalaryEUR: 35000},
		{EquipmentType: "Fax Machine", AnnualSalaryEUR: 40000},
	}

	result := ComputeBatch(rows, factors, 0)
	require.Len(t, result.Results, 3)

	t.Run("missing factor warns instead of failing", func(t *testing.T) {
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "Fax Machine")

		fax := result.Results[2]
		assert.False(t, fax.HasCarbonData)
		assert.Zero(t, fax.CO2SavedKg)
		assert.InDelta(t, -1200.0, fax.NetROIEUR, 1e-9, "lag cost still applies")
	})

	t.Run("total sums net ROI", func(t *testing.T) {
		var sum float64
		for _, r := range result.Results {
			sum += r.NetROIEUR
		}
		assert.InDelta(t, sum, result.TotalNetROIEUR, 0.01)
	})
}

func TestReadInventory(t *testing.T) {
	csv := strings.Join([]string{
		"Category,Item,Value",
		"Inventory,Laptop,120",
		"Lifespan,Laptop,48",
		"Price,Laptop,1000",
		"Inventory,Smartphone,300",
		"Inventory,Broken,not-a-number",
		"Mystery,Laptop,5",
	}, "\n")

	inv, warnings, err := ReadInventory(strings.NewReader(csv))
	require.NoError(t, err)

	assert.InDelta(t, 120.0, inv.Counts["Laptop"], 1e-9)
	assert.InDelta(t, 48.0, inv.Lifespan["Laptop"], 1e-9)
	assert.InDelta(t, 1000.0, inv.Price["Laptop"], 1e-9)
	assert.InDelta(t, 300.0, inv.Counts["Smartphone"], 1e-9)

	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "non-numeric")
	assert.Contains(t, warnings[1], "unknown category")
}

func TestReadInventory_MissingColumn(t *testing.T) {
	_, _, err := ReadInventory(strings.NewReader("Category,Item\nInventory,Laptop"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Value")
}

func TestReadCarbonFactors(t *testing.T) {
	csv := strings.Join([]string{
		"equipment_type,mfg_kgco2e,annual_salary",
		"Laptop,250,50000",
		"Smartphone,60,35000",
		",100,40000",
		"Tablet,oops,30000",
	}, "\n")

	factors, salaries, warnings, err := ReadCarbonFactors(strings.NewReader(csv))
	require.NoError(t, err)

	assert.InDelta(t, 250.0, factors["Laptop"], 1e-9)
	assert.InDelta(t, 50000.0, salaries["Laptop"], 1e-9)
	assert.NotContains(t, factors, "Tablet", "non-numeric footprint is skipped")
	assert.InDelta(t, 30000.0, salaries["Tablet"], 1e-9, "valid salary still read")

	require.Len(t, warnings, 2)
}
