// Package rolelattice enumerates the fixed points of monotone operators on
// three finite lattices of role structures over n actors: binary relations,
// equivalences (partitions) and rankings (preorders).
//
// What is rolelattice?
//
//	A small, dependency-light library that lists every stable role
//	structure of a network exactly once, lazily:
//		• lattice/     element types: Relation, Equivalence, Ranking
//		• network/     actors, directed ties and random test networks
//		• cover/       upper and lower cover generators per lattice
//		• projection/  dimension-by-dimension decompositions per lattice
//		• enumerate/   the cover-based and the projection-based engines
//		• roles/       facade: structures, directions and role operators
//		• cmd/rolefix  command line front end reading a YAML network
//
// Quick start:
//
//	net, _ := network.FromPairs(3, [][2]int{{0, 2}, {1, 2}})
//	seq := roles.Stable(roles.Equivalences, roles.Restriction,
//		roles.RegularEquivalenceInterior(net), lattice.IndiscreteEquivalence(3), nil)
//	for e := range seq.All() {
//		fmt.Println(e) // {0 1}{2}, then {0}{1}{2}
//	}
//
// Closures (non-decreasing operators) search upward through upper covers or
// minimal completions; interiors (non-increasing) search downward through
// lower covers or maximal completions.
package rolelattice
