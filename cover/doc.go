// Package cover generates covers of lattice elements on demand and answers
// the de-duplication query used by the cover-based enumeration engine.
//
// What:
//
//   - Adapter[E]: a one-shot generator of the upper or lower covers of one
//     parent element, in a fixed order, plus DescendsFromEarlier.
//   - RelationLower / RelationUpper:       remove / add one pair.
//   - EquivalenceLower / EquivalenceUpper: split one class in two / merge two classes.
//   - RankingLower / RankingUpper:         remove a covering block between two
//     indifference classes or split a class into an ordered pair of parts /
//     add a block between two classes that forces no further pairs.
//
// DescendsFromEarlier(candidate, reference):
//
//	reference is a cover this adapter has produced; candidate lies on the
//	adapter's side of the parent (below it for lower covers, above it for
//	upper covers). The answer is true iff candidate lies beyond some cover
//	produced strictly before reference. Every implementation answers in a
//	single ordered scan without materializing earlier covers.
//
// Complexity (n = domain size, k = number of classes, m = class size):
//
//   - construction:        O(n²) relations/equivalences, O(n² + k³) rankings
//   - Next:                O(n²) (rankings: O(m²·n) for splits)
//   - DescendsFromEarlier: O(n²)
//
// Split enumeration uses a 64-bit mask per class: classes larger than 63
// elements are rejected with a panic carrying ErrClassTooLarge.
package cover
