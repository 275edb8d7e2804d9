package refdata

// Persona describes a class of device user. Salary and lag sensitivity
// drive the productivity-loss side of the TCO model.
type Persona struct {
	// Name is the canonical persona name used as the lookup key.
	Name string

	// Description summarizes the role and how the device is used.
	Description string

	// SalaryEUR is the representative annual gross salary.
	SalaryEUR float64

	// DailyHours is the hours per working day the device is in use.
	DailyHours float64

	// LagSensitivity scales productivity loss: how much a slow device
	// actually hurts this role (0.2 for a POS terminal user, 2.5 for a
	// developer compiling all day).
	LagSensitivity float64

	// TypicalDevice is the model usually issued to this persona.
	TypicalDevice string
}

// DefaultPersonaName is the fallback persona for unknown keys.
const DefaultPersonaName = "Admin Normal (HR/Finance)"

// Personas maps persona names to their profiles.
var Personas = map[string]Persona{
	"Vendor (Phone/Tablet)": {
		Name:           "Vendor (Phone/Tablet)",
		Description:    "Sales floor staff, retail associates. Device used for POS, inventory lookup.",
		SalaryEUR:      35000,
		DailyHours:     8,
		LagSensitivity: 0.2,
		TypicalDevice:  "Smartphone (Generic)",
	},
	"Admin Normal (HR/Finance)": {
		Name:           "Admin Normal (HR/Finance)",
		Description:    "Back-office staff. Email, spreadsheets, ERP systems.",
		SalaryEUR:      55000,
		DailyHours:     8,
		LagSensitivity: 1.0,
		TypicalDevice:  "Laptop (Standard)",
	},
	"Admin High (Dev/Data)": {
		Name:           "Admin High (Dev/Data)",
		Description:    "Developers, data scientists, IT. Heavy compute needs.",
		SalaryEUR:      95000,
		DailyHours:     9,
		LagSensitivity: 2.5,
		TypicalDevice:  "Workstation",
	},
	"Depot Worker (Logistics)": {
		Name:           "Depot Worker (Logistics)",
		Description:    "Warehouse staff, logistics. Device critical for operations.",
		SalaryEUR:      40000,
		DailyHours:     16,
		LagSensitivity: 1.5,
		TypicalDevice:  "Scanner (Logistics)",
	},
}

// GetPersona returns the profile for the named persona.
// Returns (persona, true) if found, (zero, false) if not found.
func GetPersona(name string) (Persona, bool) {
	p, ok := Personas[name]
	return p, ok
}

// GetPersonaOrDefault returns the named persona, or the
// DefaultPersonaName profile when the name is unknown. The second
// return reports whether the requested name itself was found.
func GetPersonaOrDefault(name string) (Persona, bool) {
	if p, ok := Personas[name]; ok {
		return p, true
	}
	return Personas[DefaultPersonaName], false
}

// PersonaNames returns the known persona names in sorted order.
func PersonaNames() []string {
	return sortedKeys(Personas)
}

// AnnualHours returns the hours per year the persona uses the device,
// based on 220 working days.
func (p Persona) AnnualHours() float64 {
	return p.DailyHours * WorkingDaysPerYear
}
