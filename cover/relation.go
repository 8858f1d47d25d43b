// SPDX-License-Identifier: MIT

package cover

import "github.com/katalvlaran/rolelattice/lattice"

// relationCovers walks the cells of the parent in row-major order and yields
// one cover per cell whose membership equals want: present pairs are removed
// (lower covers), absent pairs are added (upper covers).
type relationCovers struct {
	parent lattice.Relation
	want   bool // parent membership of the cells that yield a cover
	pos    int  // next candidate cell
	total  int
}

// RelationLower returns the adapter of the lower covers of parent: every
// relation obtained by removing exactly one pair.
func RelationLower(parent lattice.Relation) Adapter[lattice.Relation] {
	return newRelationCovers(parent, true)
}

// RelationUpper returns the adapter of the upper covers of parent: every
// relation obtained by adding exactly one absent pair.
func RelationUpper(parent lattice.Relation) Adapter[lattice.Relation] {
	return newRelationCovers(parent, false)
}

func newRelationCovers(parent lattice.Relation, want bool) *relationCovers {
	n := parent.Size()
	a := &relationCovers{parent: parent, want: want, total: n * n}
	a.seek()

	return a
}

func (a *relationCovers) seek() {
	for a.pos < a.total && a.parent.Cell(a.pos) != a.want {
		a.pos++
	}
}

func (a *relationCovers) HasNext() bool { return a.pos < a.total }

func (a *relationCovers) Next() lattice.Relation {
	if a.pos >= a.total {
		panic(ErrExhausted)
	}
	n := a.parent.Size()
	c := a.parent.With(a.pos/n, a.pos%n, !a.want)
	a.pos++
	a.seek()

	return c
}

// DescendsFromEarlier scans the flippable cells in generation order. The
// first cell flipped in reference ends the scan; before it, a cell flipped
// in candidate as well means candidate lies beyond that earlier cover.
func (a *relationCovers) DescendsFromEarlier(candidate, reference lattice.Relation) bool {
	for k := 0; k < a.total; k++ {
		if a.parent.Cell(k) != a.want {
			continue
		}
		if reference.Cell(k) != a.want {
			return false
		}
		if candidate.Cell(k) != a.want {
			return true
		}
	}

	return false
}
