// Package refdata holds the static reference tables the calculators
// consume: device specifications, personas, grid carbon factors,
// depreciation curves and lifecycle strategy definitions. All lookups
// are read-only and fall back to a documented default entry when a key
// is unknown.
package refdata

// DeviceSpec describes the purchase, lifespan and environmental profile
// of one device model.
type DeviceSpec struct {
	// Name is the canonical device model name used as the lookup key.
	Name string

	// PriceNewEUR is the average purchase price of a new unit.
	PriceNewEUR float64

	// LifespanMonths is the expected service life of a new unit.
	LifespanMonths float64

	// ManufacturingCO2Kg is the embodied carbon of manufacturing one unit.
	ManufacturingCO2Kg float64

	// PowerKW is the average power draw during use.
	PowerKW float64

	// Category groups models for reporting (Laptop, Smartphone, ...).
	Category string

	// RefurbAvailable indicates a refurbished equivalent exists on the market.
	RefurbAvailable bool

	// HoldsData marks data-bearing devices, which require a wipe pass at
	// disposal and therefore cost more to retire.
	HoldsData bool
}

// DefaultDeviceName is the fallback model used when a fleet row or API
// request names a device that is not in the table.
const DefaultDeviceName = "Laptop (Standard)"

// Devices maps device model names to their specifications.
//
// Sources: manufacturer environmental reports (Apple, Dell, HP, Zebra,
// Cisco, Samsung) and the Boavizta average-device dataset.
var Devices = map[string]DeviceSpec{
	"iPhone SE (Legacy)": {
		Name: "iPhone SE (Legacy)", PriceNewEUR: 529, LifespanMonths: 48,
		ManufacturingCO2Kg: 73, PowerKW: 0.005, Category: "Smartphone",
		RefurbAvailable: true, HoldsData: true,
	},
	"iPhone 16e (New Target)": {
		Name: "iPhone 16e (New Target)", PriceNewEUR: 969, LifespanMonths: 48,
		ManufacturingCO2Kg: 249.5, PowerKW: 0.005, Category: "Smartphone",
		RefurbAvailable: false, HoldsData: true,
	},
	"iPhone 14 (Alternative)": {
		Name: "iPhone 14 (Alternative)", PriceNewEUR: 749, LifespanMonths: 48,
		ManufacturingCO2Kg: 226.5, PowerKW: 0.005, Category: "Smartphone",
		RefurbAvailable: true, HoldsData: true,
	},
	"iPhone 13 (Refurbished)": {
		Name: "iPhone 13 (Refurbished)", PriceNewEUR: 450, LifespanMonths: 24,
		ManufacturingCO2Kg: 79, PowerKW: 0.005, Category: "Smartphone",
		RefurbAvailable: true, HoldsData: true,
	},
	"iPhone 12 (Refurbished)": {
		Name: "iPhone 12 (Refurbished)", PriceNewEUR: 350, LifespanMonths: 24,
		ManufacturingCO2Kg: 12, PowerKW: 0.005, Category: "Smartphone",
		RefurbAvailable: true, HoldsData: true,
	},
	"Laptop (Standard)": {
		Name: "Laptop (Standard)", PriceNewEUR: 1000, LifespanMonths: 48,
		ManufacturingCO2Kg: 250, PowerKW: 0.030, Category: "Laptop",
		RefurbAvailable: true, HoldsData: true,
	},
	"Workstation": {
		Name: "Workstation", PriceNewEUR: 2200, LifespanMonths: 60,
		ManufacturingCO2Kg: 450, PowerKW: 0.080, Category: "Workstation",
		RefurbAvailable: true, HoldsData: true,
	},
	"Smartphone (Generic)": {
		Name: "Smartphone (Generic)", PriceNewEUR: 500, LifespanMonths: 36,
		ManufacturingCO2Kg: 60, PowerKW: 0.005, Category: "Smartphone",
		RefurbAvailable: true, HoldsData: true,
	},
	"Tablet": {
		Name: "Tablet", PriceNewEUR: 500, LifespanMonths: 48,
		ManufacturingCO2Kg: 150, PowerKW: 0.010, Category: "Tablet",
		RefurbAvailable: true, HoldsData: true,
	},
	"Scanner (Logistics)": {
		Name: "Scanner (Logistics)", PriceNewEUR: 1200, LifespanMonths: 48,
		ManufacturingCO2Kg: 180, PowerKW: 0.015, Category: "Scanner",
		RefurbAvailable: true, HoldsData: true,
	},
	"Screen (Monitor)": {
		Name: "Screen (Monitor)", PriceNewEUR: 300, LifespanMonths: 72,
		ManufacturingCO2Kg: 350, PowerKW: 0.035, Category: "Monitor",
		RefurbAvailable: true, HoldsData: false,
	},
	"Meeting Room Screen": {
		Name: "Meeting Room Screen", PriceNewEUR: 3000, LifespanMonths: 84,
		ManufacturingCO2Kg: 800, PowerKW: 0.150, Category: "Display",
		RefurbAvailable: false, HoldsData: false,
	},
	"Switch/Router": {
		Name: "Switch/Router", PriceNewEUR: 250, LifespanMonths: 72,
		ManufacturingCO2Kg: 100, PowerKW: 0.050, Category: "Network",
		RefurbAvailable: true, HoldsData: false,
	},
}

// GetDevice returns the spec for the named device model.
// Returns (spec, true) if found, (zero, false) if not found.
func GetDevice(name string) (DeviceSpec, bool) {
	spec, ok := Devices[name]
	return spec, ok
}

// GetDeviceOrDefault returns the spec for the named device model, or
// the DefaultDeviceName spec when the name is unknown. The second
// return reports whether the requested name itself was found.
func GetDeviceOrDefault(name string) (DeviceSpec, bool) {
	if spec, ok := Devices[name]; ok {
		return spec, true
	}
	return Devices[DefaultDeviceName], false
}

// DeviceNames returns the known device model names in sorted order.
func DeviceNames() []string {
	return sortedKeys(Devices)
}

// LifespanYears returns the device lifespan in years.
func (d DeviceSpec) LifespanYears() float64 {
	return d.LifespanMonths / 12
}

const (
	// DisposalCostDataBearingEUR is the retirement cost for devices that
	// hold data (includes a one-pass wipe). Refurb partner pricing,
	// January 2025.
	DisposalCostDataBearingEUR = 14.0

	// DisposalCostPlainEUR is the retirement cost for devices without
	// storage (screens, network gear).
	DisposalCostPlainEUR = 8.0
)

// DisposalCostEUR returns the end-of-life handling cost for the device.
func (d DeviceSpec) DisposalCostEUR() float64 {
	if d.HoldsData {
		return DisposalCostDataBearingEUR
	}
	return DisposalCostPlainEUR
}
