package packing

// Strategy markers used when no configured box could be selected.
const (
	// StrategyGeneric is returned when the model's dimensions are missing or
	// non-positive and no box can be chosen.
	StrategyGeneric = "Generic"

	// StrategyUnknownMethod is returned when the order's shipping method does
	// not match any configured tier.
	StrategyUnknownMethod = "Unknown Method"
)

// Dimensions is an exterior package size estimate in inches.
type Dimensions struct {
	LengthIn float64 `json:"length_in"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

// Result is the packing recommendation returned by Calculate. It is a value
// object constructed fresh on every call and never persisted.
type Result struct {
	// Strategy is the selected box tier's name, or a fallback marker.
	Strategy string `json:"strategy"`

	// Recommendation is a human-readable packing instruction.
	Recommendation string `json:"recommendation"`

	// EstimatedPackageDimensions is the chosen box plus the exterior wall
	// buffer. Nil on fallback results, which carry no dimensional details.
	EstimatedPackageDimensions *Dimensions `json:"estimated_package_dimensions,omitempty"`

	// EstimatedTotalWeightLbs is the whole order's estimated shipping weight,
	// including packing material.
	EstimatedTotalWeightLbs float64 `json:"estimated_total_weight_lbs"`

	// WeightPerPackageLbs is EstimatedTotalWeightLbs divided evenly across
	// the packages.
	WeightPerPackageLbs float64 `json:"weight_per_package_lbs"`

	// NumberOfPackages is at least 1 in every result, fallbacks included.
	NumberOfPackages int `json:"number_of_packages"`

	// ItemsPerPackage is the per-box capacity implied by the chosen
	// orientation. Zero on fallback results.
	ItemsPerPackage int `json:"items_per_package,omitempty"`

	// Quantity echoes the number of units the calculation covered.
	Quantity int `json:"quantity"`

	// Notes list the arrangement description, weight per package and any
	// carrier-specific warnings, in that order.
	Notes []string `json:"notes"`
}
