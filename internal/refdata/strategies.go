package refdata

// Strategy defines one fleet lifecycle strategy for the simulator.
type Strategy struct {
	// Key is the stable identifier used in API requests.
	Key string

	// Name and Description are for display.
	Name        string
	Description string

	// RefreshYears is the device refresh cycle under this strategy.
	RefreshYears float64

	// RefurbRate is the share of replacements sourced refurbished.
	RefurbRate float64

	// RecoveryRate is the share of retired devices resold.
	RecoveryRate float64

	// ImplementationCostFactor is the one-off program cost as a fraction
	// of total fleet value.
	ImplementationCostFactor float64
}

// Strategies lists the lifecycle strategies in comparison order.
var Strategies = []Strategy{
	{
		Key:          "baseline",
		Name:         "Baseline",
		Description:  "Current 4-year refresh cycle with 100% new device procurement",
		RefreshYears: 4,
	},
	{
		Key:                      "lifecycle_extension",
		Name:                     "Lifecycle Extension",
		Description:              "Extend device refresh cycle from 4 to 5 years",
		RefreshYears:             5,
		ImplementationCostFactor: 0.02,
	},
	{
		Key:                      "circular_procurement",
		Name:                     "Circular Procurement",
		Description:              "Prioritize refurbished devices for 70% of replacements",
		RefreshYears:             4,
		RefurbRate:               0.70,
		ImplementationCostFactor: 0.05,
	},
	{
		Key:                      "asset_recovery",
		Name:                     "Asset Recovery",
		Description:              "Systematic resale program for all retired devices",
		RefreshYears:             4,
		RecoveryRate:             0.85,
		ImplementationCostFactor: 0.03,
	},
	{
		Key:                      "combined_optimization",
		Name:                     "Combined Optimization",
		Description:              "Lifecycle extension + circular procurement + asset recovery",
		RefreshYears:             5,
		RefurbRate:               0.70,
		RecoveryRate:             0.85,
		ImplementationCostFactor: 0.08,
	},
	{
		Key:                      "aggressive_transition",
		Name:                     "Aggressive Transition",
		Description:              "Maximum impact: 6-year cycle, 90% refurbished, full recovery",
		RefreshYears:             6,
		RefurbRate:               0.90,
		RecoveryRate:             0.95,
		ImplementationCostFactor: 0.12,
	},
}

// GetStrategy returns the strategy with the given key.
// Returns (strategy, true) if found, (zero, false) if not found.
func GetStrategy(key string) (Strategy, bool) {
	for _, s := range Strategies {
		if s.Key == key {
			return s, true
		}
	}
	return Strategy{}, false
}

// StrategyKeys returns the strategy keys in comparison order.
func StrategyKeys() []string {
	keys := make([]string, len(Strategies))
	for i, s := range Strategies {
		keys[i] = s.Key
	}
	return keys
}
