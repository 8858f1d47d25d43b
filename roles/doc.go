// Package roles is the entry point for enumerating stable role structures
// of a network.
//
// A Structure pairs the lower and upper cover generators of one lattice
// (Relations, Equivalences, Rankings). Stable wires a role operator, a
// starting structure and the covers of the requested Direction into the
// cover-based engine:
//
//	seq := roles.Stable(roles.Equivalences, roles.Restriction,
//		roles.RegularEquivalenceInterior(net), lattice.IndiscreteEquivalence(n), nil)
//	for e := range seq.All() {
//		fmt.Println(e)
//	}
//
// Role operators read the neighbour lists of a *network.Network once, when
// they are built, and are provided for both directions:
//
//   - Restriction (interiors, largest regular structure below x):
//     RegularRelationInterior, RegularEquivalenceInterior, RegularRankingInterior.
//   - Extension (closures, smallest structure above x closed under successors):
//     TransitiveClosure, SuccessorCongruence, SuccessorRankingClosure.
package roles

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rolelattice'.
func tracer() tracing.Trace {
	return tracing.Select("rolelattice")
}
