package refdata

// StorageClassSpec describes one cloud object-storage class used by the
// retention planner.
type StorageClassSpec struct {
	// Provider is the cloud vendor (AWS, Azure, GCP, Alibaba Cloud).
	Provider string

	// Service is the storage product (S3, Blob Storage, ...).
	Service string

	// Class is the storage tier within the service.
	Class string

	// Region is the reference region the rates were sampled in.
	Region string

	// PriceEURPerTBMonth is the list price per TB-month.
	PriceEURPerTBMonth float64

	// CO2KgPerTBMonth is the estimated operational carbon per TB-month.
	CO2KgPerTBMonth float64
}

// StorageClasses lists the reference storage tiers, ordered by provider
// then decreasing price. Per provider, the first row is the standard
// (hot) tier and the last row is the cheapest archive tier.
//
// Sources: public list prices 2024 + Cloud Carbon Footprint storage
// coefficients.
var StorageClasses = []StorageClassSpec{
	{Provider: "AWS", Service: "S3", Class: "Standard", Region: "EU-West-1", PriceEURPerTBMonth: 23.0, CO2KgPerTBMonth: 6.0},
	{Provider: "AWS", Service: "S3", Class: "Infrequent Access", Region: "EU-West-1", PriceEURPerTBMonth: 12.5, CO2KgPerTBMonth: 4.2},
	{Provider: "AWS", Service: "S3", Class: "Glacier", Region: "EU-West-1", PriceEURPerTBMonth: 4.0, CO2KgPerTBMonth: 2.0},
	{Provider: "Azure", Service: "Blob Storage", Class: "Hot", Region: "West Europe", PriceEURPerTBMonth: 21.5, CO2KgPerTBMonth: 5.8},
	{Provider: "Azure", Service: "Blob Storage", Class: "Cool", Region: "West Europe", PriceEURPerTBMonth: 10.0, CO2KgPerTBMonth: 3.9},
	{Provider: "Azure", Service: "Blob Storage", Class: "Archive", Region: "West Europe", PriceEURPerTBMonth: 3.6, CO2KgPerTBMonth: 1.9},
	{Provider: "GCP", Service: "Cloud Storage", Class: "Standard", Region: "Europe-West1", PriceEURPerTBMonth: 20.0, CO2KgPerTBMonth: 4.5},
	{Provider: "GCP", Service: "Cloud Storage", Class: "Nearline", Region: "Europe-West1", PriceEURPerTBMonth: 10.0, CO2KgPerTBMonth: 3.0},
	{Provider: "GCP", Service: "Cloud Storage", Class: "Coldline", Region: "Europe-West1", PriceEURPerTBMonth: 4.0, CO2KgPerTBMonth: 1.8},
	{Provider: "GCP", Service: "Cloud Storage", Class: "Archive", Region: "Europe-West1", PriceEURPerTBMonth: 2.8, CO2KgPerTBMonth: 1.2},
	{Provider: "Alibaba Cloud", Service: "OSS", Class: "Standard", Region: "Germany (FRA)", PriceEURPerTBMonth: 16.0, CO2KgPerTBMonth: 4.8},
	{Provider: "Alibaba Cloud", Service: "OSS", Class: "Infrequent Access", Region: "Germany (FRA)", PriceEURPerTBMonth: 11.0, CO2KgPerTBMonth: 3.2},
	{Provider: "Alibaba Cloud", Service: "OSS", Class: "Archive", Region: "Germany (FRA)", PriceEURPerTBMonth: 4.5, CO2KgPerTBMonth: 1.5},
}

// DefaultStorageProvider is the fallback provider for unknown keys.
const DefaultStorageProvider = "AWS"

// StorageProviders returns the distinct providers in listing order.
func StorageProviders() []string {
	seen := make(map[string]bool)
	var out []string
	for _, sc := range StorageClasses {
		if !seen[sc.Provider] {
			seen[sc.Provider] = true
			out = append(out, sc.Provider)
		}
	}
	return out
}

// StorageClassesFor returns the storage tiers of the given provider in
// listing order. Unknown providers fall back to DefaultStorageProvider.
func StorageClassesFor(provider string) []StorageClassSpec {
	var out []StorageClassSpec
	for _, sc := range StorageClasses {
		if sc.Provider == provider {
			out = append(out, sc)
		}
	}
	if len(out) == 0 && provider != DefaultStorageProvider {
		return StorageClassesFor(DefaultStorageProvider)
	}
	return out
}

// StandardStorageClass returns the hot tier for the provider.
func StandardStorageClass(provider string) StorageClassSpec {
	return StorageClassesFor(provider)[0]
}

// ArchiveStorageClass returns the cheapest archive tier for the provider.
func ArchiveStorageClass(provider string) StorageClassSpec {
	classes := StorageClassesFor(provider)
	return classes[len(classes)-1]
}
