// Package projection decomposes lattice elements into ordered dimensions so
// that the backtracking engine can decide them one at a time.
//
// What:
//
//   - Adapter[E, P]: extension by one dimension, extremal completion,
//     projection of a full element, conversion of a complete projection back
//     to an element, and prefix equality.
//   - Relations(n, extreme):  one dimension per matrix cell, row-major;
//     values false, true; completion fills undecided cells with the extreme.
//   - Equivalences(n):        one dimension per element, its class among the
//     classes already used plus one fresh class (restricted growth);
//     minimal completion puts every undecided element in its own class.
//   - Rankings(n):            one dimension per matrix cell, row-major; the
//     projection carries the reflexive-transitive closure of its decided
//     pairs, updated in O(n²) per extension. A value is offered only when it
//     agrees with the closure: false only for cells not already implied,
//     true only when no decided-false cell becomes implied. The minimal
//     completion is the closure. Project keeps cells only; the closure of
//     a projected prefix is built on first use.
//
// Projections are values; Extend always returns fresh projections.
//
// Errors:
//
//   - ErrDimensionMismatch  wrong next dimension, prefix longer than the
//     decided part, element over another domain, or an incomplete
//     projection converted to an element
//   - ErrNoMaximalCompletion  maximal completion requested where none exists
package projection
