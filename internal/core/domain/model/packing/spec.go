package packing

import "sort"

// MethodFamily classifies a carrier service tier for warning generation.
type MethodFamily int

const (
	// FamilyStandard tiers get no extra notes.
	FamilyStandard MethodFamily = iota

	// FamilyDimensionalWeight tiers are girth-constrained: packages over the
	// tier's length-plus-girth limit may incur dimensional-weight surcharges
	// or be rejected.
	FamilyDimensionalWeight

	// FamilyFlatRate tiers charge by container, so a flat-rate box may apply
	// regardless of the computed arrangement.
	FamilyFlatRate
)

// BoxSpec describes one candidate box within a service tier.
// All dimensions are interior inches.
type BoxSpec struct {
	Name        string
	LengthIn    float64
	WidthIn     float64
	HeightIn    float64
	MaxWeightLb float64
}

// VolumeIn3 returns the box's interior volume in cubic inches.
func (b BoxSpec) VolumeIn3() float64 {
	return b.LengthIn * b.WidthIn * b.HeightIn
}

// MethodSpec is the static configuration for one carrier service tier.
type MethodSpec struct {
	// Name is the tier key stored on orders (e.g. "usps_priority").
	Name string

	// DisplayName is the customer-facing tier name.
	DisplayName string

	// MaxLengthIn is the carrier's longest-side limit.
	MaxLengthIn float64

	// MaxLengthPlusGirthIn is the carrier's combined length + girth limit,
	// where girth = 2 x (width + height).
	MaxLengthPlusGirthIn float64

	// MaxWeightLb is the carrier's per-package weight limit.
	MaxWeightLb float64

	Family MethodFamily

	// Boxes are the candidate boxes, smallest first.
	Boxes []BoxSpec
}

// Catalog holds the shipping-method configuration the optimizer runs against.
type Catalog struct {
	methods map[string]MethodSpec
}

// NewCatalog builds a catalog from tier specs. Each tier's boxes are sorted
// by interior volume ascending, which keeps the optimizer's first-fit policy
// equivalent to smallest-fit even if a tier was declared out of order.
func NewCatalog(specs ...MethodSpec) Catalog {
	methods := make(map[string]MethodSpec, len(specs))
	for _, spec := range specs {
		boxes := make([]BoxSpec, len(spec.Boxes))
		copy(boxes, spec.Boxes)
		sort.SliceStable(boxes, func(i, j int) bool {
			return boxes[i].VolumeIn3() < boxes[j].VolumeIn3()
		})
		spec.Boxes = boxes
		methods[spec.Name] = spec
	}
	return Catalog{methods: methods}
}

// Method looks up a tier by its key.
func (c Catalog) Method(name string) (MethodSpec, bool) {
	spec, ok := c.methods[name]
	return spec, ok
}

// DefaultCatalog returns the storefront's configured service tiers.
func DefaultCatalog() Catalog {
	return NewCatalog(
		MethodSpec{
			Name:                 "usps_ground_advantage",
			DisplayName:          "USPS Ground Advantage",
			MaxLengthIn:          22,
			MaxLengthPlusGirthIn: 130,
			MaxWeightLb:          70,
			Family:               FamilyDimensionalWeight,
			Boxes: []BoxSpec{
				{Name: "Small Box", LengthIn: 8, WidthIn: 6, HeightIn: 4, MaxWeightLb: 20},
				{Name: "Medium Box", LengthIn: 12, WidthIn: 10, HeightIn: 8, MaxWeightLb: 40},
				{Name: "Large Box", LengthIn: 16, WidthIn: 14, HeightIn: 12, MaxWeightLb: 65},
			},
		},
		MethodSpec{
			Name:                 "usps_priority",
			DisplayName:          "USPS Priority Mail",
			MaxLengthIn:          22,
			MaxLengthPlusGirthIn: 108,
			MaxWeightLb:          70,
			Family:               FamilyDimensionalWeight,
			Boxes: []BoxSpec{
				{Name: "Small Box", LengthIn: 8, WidthIn: 6, HeightIn: 4, MaxWeightLb: 20},
				{Name: "Medium Box", LengthIn: 12, WidthIn: 10, HeightIn: 8, MaxWeightLb: 40},
				{Name: "Large Box", LengthIn: 16, WidthIn: 14, HeightIn: 12, MaxWeightLb: 65},
			},
		},
		MethodSpec{
			Name:                 "usps_priority_flat_rate",
			DisplayName:          "USPS Priority Mail Flat Rate",
			MaxLengthIn:          12.25,
			MaxLengthPlusGirthIn: 108,
			MaxWeightLb:          70,
			Family:               FamilyFlatRate,
			Boxes: []BoxSpec{
				{Name: "Flat Rate Small Box", LengthIn: 8.69, WidthIn: 5.44, HeightIn: 1.75, MaxWeightLb: 70},
				{Name: "Flat Rate Medium Box", LengthIn: 11.25, WidthIn: 8.75, HeightIn: 6, MaxWeightLb: 70},
				{Name: "Flat Rate Large Box", LengthIn: 12.25, WidthIn: 12.25, HeightIn: 6, MaxWeightLb: 70},
			},
		},
		MethodSpec{
			Name:                 "ups_ground",
			DisplayName:          "UPS Ground",
			MaxLengthIn:          108,
			MaxLengthPlusGirthIn: 165,
			MaxWeightLb:          150,
			Family:               FamilyDimensionalWeight,
			Boxes: []BoxSpec{
				{Name: "Small Box", LengthIn: 8, WidthIn: 6, HeightIn: 4, MaxWeightLb: 20},
				{Name: "Medium Box", LengthIn: 12, WidthIn: 10, HeightIn: 8, MaxWeightLb: 40},
				{Name: "Large Box", LengthIn: 16, WidthIn: 14, HeightIn: 12, MaxWeightLb: 65},
				{Name: "Extra Large Box", LengthIn: 20, WidthIn: 18, HeightIn: 16, MaxWeightLb: 100},
			},
		},
	)
}
