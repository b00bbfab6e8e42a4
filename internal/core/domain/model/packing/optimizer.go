package packing

import (
	"fmt"
	"math"
)

// Fixed constants of the packing model. Padding is applied per axis in
// millimeters before unit conversion; the wall buffer is exterior inches.
const (
	clearancePaddingMM    = 10.0
	mmPerInch             = 25.4
	packagingGramsPerItem = 50.0
	gramsPerPound         = 453.592
	boxWallBufferIn       = 0.5
)

// Input carries the order attributes the optimizer works from.
// Dimension pointers are nil for unmeasured models.
type Input struct {
	LengthMM *float64
	WidthMM  *float64
	HeightMM *float64

	// Quantity is the number of units ordered; values below 1 are treated as 1.
	Quantity int

	// UnitWeightGrams is the weight of a single printed unit. The optimizer
	// multiplies by quantity and adds packing material per item.
	UnitWeightGrams float64

	// ShippingMethod is the tier key to resolve against the catalog.
	ShippingMethod string
}

// orientation is one way of assigning the padded item dimensions to a box's
// axes, with the resulting per-axis counts.
type orientation struct {
	countLength int
	countWidth  int
	countHeight int
	items       int
	wasteIn3    float64
}

// itemAxisPermutations are the six assignments of item dimensions to box
// axes, enumerated in a fixed order so results are deterministic.
var itemAxisPermutations = [6][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

// Calculate computes the packing recommendation for the given input against
// this catalog. It is pure and never fails: malformed input degrades to a
// fallback Result with a non-empty recommendation.
func (c Catalog) Calculate(in Input) Result {
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	totalWeightLbs := EstimateTotalWeightLbs(quantity, in.UnitWeightGrams)

	if !dimensionsUsable(in) {
		return genericFallback(quantity, totalWeightLbs)
	}

	spec, ok := c.Method(in.ShippingMethod)
	if !ok || len(spec.Boxes) == 0 {
		return unknownMethodFallback(in.ShippingMethod, quantity, totalWeightLbs)
	}

	// Pad in millimeters first, convert to inches after.
	paddedItem := [3]float64{
		(*in.LengthMM + clearancePaddingMM) / mmPerInch,
		(*in.WidthMM + clearancePaddingMM) / mmPerInch,
		(*in.HeightMM + clearancePaddingMM) / mmPerInch,
	}

	var (
		chosenBox BoxSpec
		chosenFit orientation
		boxFound  bool
		oversized bool
	)

	// First-fit across the smallest-first box list; lowest-waste orientation
	// within the chosen box.
	for _, box := range spec.Boxes {
		if fit, ok := bestOrientation(box, paddedItem); ok {
			chosenBox = box
			chosenFit = fit
			boxFound = true
			break
		}
	}

	if !boxFound {
		// Nothing in the tier holds even one item: fall back to the largest
		// configured box, one item per package.
		oversized = true
		chosenBox = spec.Boxes[len(spec.Boxes)-1]
		chosenFit = orientation{countLength: 1, countWidth: 1, countHeight: 1, items: 1}
	}

	numberOfPackages := int(math.Ceil(float64(quantity) / float64(chosenFit.items)))
	weightPerPackageLbs := totalWeightLbs / float64(numberOfPackages)

	packageDims := Dimensions{
		LengthIn: chosenBox.LengthIn + boxWallBufferIn,
		WidthIn:  chosenBox.WidthIn + boxWallBufferIn,
		HeightIn: chosenBox.HeightIn + boxWallBufferIn,
	}

	notes := make([]string, 0, 5)
	notes = append(notes, fmt.Sprintf("%d×%d×%d grid = %d items per box",
		chosenFit.countLength, chosenFit.countWidth, chosenFit.countHeight, chosenFit.items))
	notes = append(notes, fmt.Sprintf("Estimated %.2f lb per package (%.2f lb total across %d package(s))",
		weightPerPackageLbs, totalWeightLbs, numberOfPackages))

	if oversized {
		notes = append(notes, fmt.Sprintf(
			"Model does not fit any configured %s box even after padding; largest box selected with one item per package",
			spec.DisplayName))
	}

	switch spec.Family {
	case FamilyDimensionalWeight:
		girthIn := 2 * (packageDims.WidthIn + packageDims.HeightIn)
		combinedIn := packageDims.LengthIn + girthIn
		if combinedIn > spec.MaxLengthPlusGirthIn {
			notes = append(notes, fmt.Sprintf(
				"Package length plus girth (%.1f in) exceeds the %s limit of %.1f in; dimensional-weight surcharges or rejection are likely",
				combinedIn, spec.DisplayName, spec.MaxLengthPlusGirthIn))
		}
	case FamilyFlatRate:
		notes = append(notes, "A flat-rate container may apply regardless of the computed box size")
	case FamilyStandard:
	}

	if weightPerPackageLbs > spec.MaxWeightLb {
		notes = append(notes, fmt.Sprintf(
			"Estimated package weight %.2f lb exceeds the %s limit of %.0f lb",
			weightPerPackageLbs, spec.DisplayName, spec.MaxWeightLb))
	}

	return Result{
		Strategy: chosenBox.Name,
		Recommendation: fmt.Sprintf("Ship %d item(s) in %d package(s) using the %s (%s)",
			quantity, numberOfPackages, chosenBox.Name, spec.DisplayName),
		EstimatedPackageDimensions: &packageDims,
		EstimatedTotalWeightLbs:    totalWeightLbs,
		WeightPerPackageLbs:        weightPerPackageLbs,
		NumberOfPackages:           numberOfPackages,
		ItemsPerPackage:            chosenFit.items,
		Quantity:                   quantity,
		Notes:                      notes,
	}
}

// bestOrientation tests all six assignments of the padded item dimensions to
// the box axes and returns the one with the lowest unused volume. Returns
// false when no orientation fits even a single item.
func bestOrientation(box BoxSpec, paddedItem [3]float64) (orientation, bool) {
	itemVolume := paddedItem[0] * paddedItem[1] * paddedItem[2]
	boxVolume := box.VolumeIn3()

	var best orientation
	found := false

	for _, perm := range itemAxisPermutations {
		countLength := int(math.Floor(box.LengthIn / paddedItem[perm[0]]))
		countWidth := int(math.Floor(box.WidthIn / paddedItem[perm[1]]))
		countHeight := int(math.Floor(box.HeightIn / paddedItem[perm[2]]))

		items := countLength * countWidth * countHeight
		if items == 0 {
			continue
		}

		waste := boxVolume - float64(items)*itemVolume
		if !found || waste < best.wasteIn3 {
			best = orientation{
				countLength: countLength,
				countWidth:  countWidth,
				countHeight: countHeight,
				items:       items,
				wasteIn3:    waste,
			}
			found = true
		}
	}

	return best, found
}

// EstimateTotalWeightLbs converts an order's weight to pounds, including a
// fixed packing-material allowance per item. It is the single weight model
// shared by the optimizer and the carrier label request.
func EstimateTotalWeightLbs(quantity int, unitWeightGrams float64) float64 {
	if quantity < 1 {
		quantity = 1
	}
	if unitWeightGrams < 0 {
		unitWeightGrams = 0
	}
	totalGrams := (unitWeightGrams + packagingGramsPerItem) * float64(quantity)
	return totalGrams / gramsPerPound
}

func dimensionsUsable(in Input) bool {
	for _, d := range []*float64{in.LengthMM, in.WidthMM, in.HeightMM} {
		if d == nil || *d <= 0 {
			return false
		}
	}
	return true
}

func genericFallback(quantity int, totalWeightLbs float64) Result {
	return Result{
		Strategy: StrategyGeneric,
		Recommendation: "Model dimensions are missing or invalid; measure the printed model " +
			"and recalculate, or pack manually",
		EstimatedTotalWeightLbs: totalWeightLbs,
		WeightPerPackageLbs:     totalWeightLbs,
		NumberOfPackages:        1,
		Quantity:                quantity,
		Notes: []string{fmt.Sprintf(
			"Best-effort estimate: %.2f lb total for %d item(s)", totalWeightLbs, quantity)},
	}
}

func unknownMethodFallback(method string, quantity int, totalWeightLbs float64) Result {
	return Result{
		Strategy: StrategyUnknownMethod,
		Recommendation: fmt.Sprintf(
			"Shipping method %q is not recognized; contact support to have it configured", method),
		EstimatedTotalWeightLbs: totalWeightLbs,
		WeightPerPackageLbs:     totalWeightLbs,
		NumberOfPackages:        1,
		Quantity:                quantity,
		Notes: []string{fmt.Sprintf(
			"Best-effort estimate: %.2f lb total for %d item(s)", totalWeightLbs, quantity)},
	}
}
