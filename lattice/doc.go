// Package lattice defines the three finite lattices on which role structures
// live: binary relations, equivalences (partitions) and rankings (preorders).
//
// What:
//
//   - Relation: a set of ordered pairs over {0,…,n-1}, stored as an n×n
//     boolean matrix in row-major order. Ordered by containment.
//   - Equivalence: an assignment of class ids to the domain. Ids need not be
//     contiguous or normalized; two equivalences are Equal when they group the
//     domain identically. Ordered by refinement (finer ≤ coarser).
//   - Ranking: a reflexive, transitive relation. Has(i, j) reads "i is ranked
//     at most j". Its indifference classes are the strongly connected
//     components of the order. Ordered by containment.
//
// Values are immutable by convention: every method that "changes" an element
// (With, Merge, closures) returns a fresh value and leaves the receiver as is.
// The zero value of each type is the element on the empty domain.
//
// Complexity:
//
//   - Has/Same:               O(1)
//   - Leq/Equal:              O(n²)
//   - closures:               O(n³) (Warshall)
//   - IndifferenceClasses:    O(n²) (Tarjan on the dense matrix)
//
// Errors:
//
//   - ErrBadSize        negative domain size
//   - ErrOutOfRange     pair or element outside the domain
//   - ErrSizeMismatch   operands over different domains
//   - ErrNotPreorder    relation is not reflexive and transitive
package lattice
