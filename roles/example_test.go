package roles_test

import (
	"fmt"

	"github.com/katalvlaran/rolelattice/lattice"
	"github.com/katalvlaran/rolelattice/network"
	"github.com/katalvlaran/rolelattice/roles"
)

// ExampleStable enumerates the regular equivalences of a network in which
// actors 0 and 1 both tie to actor 2. Starting from the indiscrete
// partition, the search restricts downward through lower covers.
//
//	0 ─┐
//	   ├─> 2
//	1 ─┘
func ExampleStable() {
	net, err := network.FromPairs(3, [][2]int{{0, 2}, {1, 2}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seq := roles.Stable(roles.Equivalences, roles.Restriction,
		roles.RegularEquivalenceInterior(net), lattice.IndiscreteEquivalence(3), nil)
	for e := range seq.All() {
		fmt.Println(e)
	}

	// Output:
	// {0 1}{2}
	// {0}{1}{2}
}
