// Package packing implements the box-optimization engine for printed models.
//
// Given a model's measured dimensions, quantity, per-unit weight and the
// carrier service tier chosen at checkout, Calculate produces a packing
// recommendation: which configured box to use, how many items fit per box in
// which orientation, how many packages the order needs, estimated weights,
// and carrier-specific warnings (dimensional-weight girth overage, flat-rate
// hints).
//
// The engine is a pure function over its inputs: no persistence, no clock,
// no randomness. Identical inputs always produce identical results, which the
// dashboard's "Recalculate" button depends on.
//
// Box selection is deliberately first-fit over a smallest-first box catalog,
// not a global minimum-waste search across box sizes; waste minimization
// applies only across the six orientations within the chosen box. Catalogs
// sort their boxes by volume at construction so first-fit stays equivalent
// to smallest-fit for any tier added later.
//
// Malformed input never produces an error: packing recommendations are
// advisory and must not block an operational workflow, so missing dimensions
// or an unrecognized service tier degrade to fallback results instead.
package packing
