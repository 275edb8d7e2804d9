package refdata

// GridEmissionFactors maps ISO 3166-1 alpha-2 country codes to grid
// carbon intensity. Values are in kgCO2e per kWh.
//
// Source: European Environment Agency 2023 + ElectricityMaps yearly
// averages (update annually using: go run ./tools/update-grid-factors)
var GridEmissionFactors = map[string]float64{
	"FR": 0.052, // France
	"DE": 0.350, // Germany
	"UK": 0.230, // United Kingdom
	"US": 0.380, // United States
	"CN": 0.550, // China
	"JP": 0.450, // Japan
	"IT": 0.270, // Italy
	"ES": 0.210, // Spain
	"CH": 0.030, // Switzerland
	"PL": 0.700, // Poland
	"HK": 0.510, // Hong Kong
	"SG": 0.408, // Singapore
	"AE": 0.420, // UAE
	"KR": 0.460, // South Korea
	"AU": 0.510, // Australia
	"BR": 0.070, // Brazil
	"MX": 0.420, // Mexico
	"IN": 0.700, // India
	"RU": 0.310, // Russia
	"CA": 0.120, // Canada
	"NL": 0.290, // Netherlands
	"BE": 0.140, // Belgium
	"AT": 0.100, // Austria
	"SE": 0.020, // Sweden
	"NO": 0.010, // Norway
	"DK": 0.120, // Denmark
	"FI": 0.080, // Finland
	"PT": 0.200, // Portugal
	"GR": 0.350, // Greece
	"CZ": 0.380, // Czech Republic
	"TW": 0.500, // Taiwan
	"TH": 0.440, // Thailand
	"MY": 0.550, // Malaysia
	"ID": 0.650, // Indonesia
	"PH": 0.500, // Philippines
	"VN": 0.480, // Vietnam
	"ZA": 0.850, // South Africa
	"EG": 0.400, // Egypt
	"SA": 0.550, // Saudi Arabia
	"TR": 0.380, // Turkey
	"IL": 0.450, // Israel
	"NZ": 0.100, // New Zealand
	"CL": 0.340, // Chile
	"AR": 0.300, // Argentina
	"CO": 0.150, // Colombia
	"PE": 0.200, // Peru
}

// CountryNames maps the country codes in GridEmissionFactors to
// display names for API listings.
var CountryNames = map[string]string{
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
