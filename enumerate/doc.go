// Package enumerate lists every fixed point of a monotone operator on a
// finite lattice exactly once, lazily.
//
// What:
//
//   - Covers: depth-first search over covers. A stack of levels holds the
//     fixed points on the current path, the cover adapter of each and the
//     cover last taken from it. A candidate op(cover) is dropped when any
//     level's adapter reports that it lies beyond a cover produced before
//     that level's current one; such candidates are reached on an earlier
//     branch. Uses cover.Adapter only.
//   - Projections: backtracking over the dimensions of a projection.Adapter.
//     An extension survives when op applied to its extremal completion
//     projects back onto it, i.e. when some fixed point carries that prefix.
//
// Both engines return a *Sequence. Each Cursor (and each range over All)
// runs its own search from scratch; nothing is shared between traversals.
//
// Operators must return a fixed point in one call: closures (non-decreasing)
// pair with upper covers / minimal completions, interiors (non-increasing)
// with lower covers / maximal completions. Monotonicity is not checked.
//
// Skip predicates prune: a skipped element is neither emitted nor expanded.
// For results to match a plain filter, skip should be closed in the search
// direction (if x is skipped, so is everything beyond x).
//
// Cancellation:
//
//	WithContext(ctx) is polled before every candidate. Once ctx is done the
//	cursor reports no further output; Interrupted() tells the cases apart.
//	The context is left as is.
//
// Errors:
//
//   - ErrExhausted     Next on a cursor without further output
//   - ErrNilOperator   nil operator
//   - ErrNilAdapter    nil cover factory or projection adapter
//   - adapter errors   returned by Cursor.Err / Sequence.Collect and as the
//     last pair of Sequence.Results; All traces them and stops
package enumerate
