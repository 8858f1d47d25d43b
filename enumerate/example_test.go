package enumerate_test

import (
	"fmt"

	"github.com/katalvlaran/rolelattice/cover"
	"github.com/katalvlaran/rolelattice/enumerate"
	"github.com/katalvlaran/rolelattice/lattice"
	"github.com/katalvlaran/rolelattice/projection"
)

// ExampleCovers walks upward from the partition {0 1}{2 3} under the
// identity operator. WithStrict leaves out the start itself, so the only
// element printed is its single upper cover.
func ExampleCovers() {
	start := lattice.NewEquivalence(0, 0, 1, 1)
	seq := enumerate.Covers(func(e lattice.Equivalence) lattice.Equivalence { return e },
		start, cover.EquivalenceUpper, nil, enumerate.WithStrict())

	for e := range seq.All() {
		fmt.Println(e)
	}

	// Output:
	// {0 1 2 3}
}

// ExampleProjections lists the partitions of three elements by deciding
// one element at a time. Every prefix survives under the identity operator,
// so the order is that of restricted-growth strings: 000, 001, 010, 011, 012.
func ExampleProjections() {
	a := projection.Equivalences(3)
	seq := enumerate.Projections(func(e lattice.Equivalence) lattice.Equivalence { return e },
		a, a.Empty(), 0, nil)

	c := seq.Cursor()
	for c.HasNext() {
		e, _ := c.Next()
		fmt.Println(e)
	}
	fmt.Println("emitted:", c.Emitted())

	// Output:
	// {0 1 2}
	// {0 1}{2}
	// {0 2}{1}
	// {0}{1 2}
	// {0}{1}{2}
	// emitted: 5
}
