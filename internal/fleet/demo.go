package fleet

import (
	"math"
	"math/rand"
)

// demoDeviceWeights is the device mix of the generated demo fleet.
var demoDeviceWeights = []struct {
	model  string
	weight float64
}{
	{"Laptop (Standard)", 0.35},
	{"Smartphone (Generic)", 0.25},
	{"iPhone 14 (Alternative)", 0.10},
	{"Tablet", 0.10},
	{"Scanner (Logistics)", 0.08},
	{"Workstation", 0.05},
	{"Screen (Monitor)", 0.05},
	{"Switch/Router", 0.02},
}

// demoPersonaWeights is the persona mix of the generated demo fleet.
var demoPersonaWeights = []struct {
	persona string
	weight  float64
}{
	{"Admin Normal (HR/Finance)", 0.40},
	{"Vendor (Phone/Tablet)", 0.35},
	{"Admin High (Dev/Data)", 0.10},
	{"Depot Worker (Logistics)", 0.15},
}

// demoCountries over-represents the main operating countries.
var demoCountries = []string{"FR", "FR", "FR", "US", "US", "CN", "CN", "JP", "DE", "IT", "UK", "HK"}

// demoMaisons are the business units demo devices are assigned to,
// weighted by approximate fleet size.
var demoMaisons = []struct {
	name   string
	weight float64
}{
	{"Louis Vuitton", 8500},
	{"Christian Dior", 6200},
	{"Sephora", 12000},
	{"Moët Hennessy", 3800},
	{"Bulgari", 2100},
	{"Tiffany & Co.", 2800},
	{"Fendi", 1900},
	{"Loewe", 1200},
	{"Celine", 1500},
	{"Kenzo", 900},
	{"Rimowa", 600},
	{"Le Bon Marché", 1100},
}

// GenerateDemo builds a deterministic demo fleet of n devices from the
// given seed: weighted device/persona/maison mixes and ages drawn from
// a clamped normal distribution centered at 3.5 years.
func GenerateDemo(n int, seed int64) []Row {
	rng := rand.New(rand.NewSource(seed))

	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		age := rng.NormFloat64()*1.2 + 3.5
		age = math.Max(0.5, math.Min(7, age))

		rows = append(rows, Row{
			DeviceModel: pickWeightedDevice(rng),
			AgeYears:    math.Round(age*10) / 10,
			Persona:     pickWeightedPersona(rng),
			Country:     demoCountries[rng.Intn(len(demoCountries))],
			Maison:      pickWeightedMaison(rng),
		})
	}
	return rows
}

func pickWeightedDevice(rng *rand.Rand) string {
	r := rng.Float64()
	var acc float64
	for _, d := range demoDeviceWeights {
		acc += d.weight
		if r < acc {
			return d.model
		}
	}
	return demoDeviceWeights[len(demoDeviceWeights)-1].model
}

func pickWeightedPersona(rng *rand.Rand) string {
	r := rng.Float64()
	var acc float64
	for _, p := range demoPersonaWeights {
		acc += p.weight
		if r < acc {
			return p.persona
		}
	}
	return demoPersonaWeights[len(demoPersonaWeights)-1].persona
}

func pickWeightedMaison(rng *rand.Rand) string {
	var total float64
	for _, m := range demoMaisons {
		total += m.weight
	}
	r := rng.Float64() * total
	var acc float64
	for _, m := range demoMaisons {
		acc += m.weight
		if r < acc {
			return m.name
		}
	}
	return demoMaisons[len(demoMaisons)-1].name
}
