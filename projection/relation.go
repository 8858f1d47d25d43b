// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"

	"github.com/katalvlaran/rolelattice/lattice"
)

// RelationProjection holds the decided prefix of a relation's cells.
type RelationProjection struct {
	cells []bool // row-major, len = decided dimensions
}

// Decided returns the number of decided cells.
func (p RelationProjection) Decided() int { return len(p.cells) }

// RelationAdapter decomposes relations on a fixed domain cell by cell.
type RelationAdapter struct {
	n       int
	extreme Extreme
}

// Relations returns the adapter for relations on {0,…,n-1}. extreme picks
// the completion: Minimal fills undecided cells with false, Maximal with true.
func Relations(n int, extreme Extreme) *RelationAdapter {
	if n < 0 {
		n = 0
	}

	return &RelationAdapter{n: n, extreme: extreme}
}

// Dimensions returns n².
func (a *RelationAdapter) Dimensions() int { return a.n * a.n }

// Empty returns the projection with no decided cell.
func (a *RelationAdapter) Empty() RelationProjection { return RelationProjection{} }

// Extend offers false and true for cell next.
func (a *RelationAdapter) Extend(p RelationProjection, next int) ([]RelationProjection, error) {
	if next != len(p.cells) || next >= a.Dimensions() {
		return nil, fmt.Errorf("relation Extend: next=%d decided=%d dims=%d: %w",
			next, len(p.cells), a.Dimensions(), ErrDimensionMismatch)
	}
	out := make([]RelationProjection, 0, 2)
	for _, v := range [2]bool{false, true} {
		c := make([]bool, next+1)
		copy(c, p.cells)
		c[next] = v
		out = append(out, RelationProjection{cells: c})
	}

	return out, nil
}

// Extremal fills cells dims… with the adapter's extreme.
func (a *RelationAdapter) Extremal(p RelationProjection, dims int) ([]lattice.Relation, error) {
	if err := a.checkPrefix(len(p.cells), dims); err != nil {
		return nil, err
	}
	c := make([]bool, a.Dimensions())
	copy(c, p.cells[:dims])
	if a.extreme == Maximal {
		for k := dims; k < len(c); k++ {
			c[k] = true
		}
	}
	r, err := lattice.RelationFromCells(a.n, c)
	if err != nil {
		return nil, err
	}

	return []lattice.Relation{r}, nil
}

// ToElement converts a fully decided projection.
func (a *RelationAdapter) ToElement(p RelationProjection, dims int) (lattice.Relation, error) {
	if dims != a.Dimensions() || len(p.cells) != dims {
		return lattice.Relation{}, fmt.Errorf("relation ToElement: dims=%d decided=%d want %d: %w",
			dims, len(p.cells), a.Dimensions(), ErrDimensionMismatch)
	}

	return lattice.RelationFromCells(a.n, p.cells)
}

// Project keeps the first dims cells of r.
func (a *RelationAdapter) Project(r lattice.Relation, dims int) (RelationProjection, error) {
	if r.Size() != a.n {
		return RelationProjection{}, fmt.Errorf("relation Project: size %d, adapter %d: %w",
			r.Size(), a.n, ErrDimensionMismatch)
	}
	if err := a.checkPrefix(a.Dimensions(), dims); err != nil {
		return RelationProjection{}, err
	}
	c := make([]bool, dims)
	for k := range c {
		c[k] = r.Cell(k)
	}

	return RelationProjection{cells: c}, nil
}

// Equal compares the first dims cells.
func (a *RelationAdapter) Equal(p, q RelationProjection, dims int) (bool, error) {
	if err := a.checkPrefix(min(len(p.cells), len(q.cells)), dims); err != nil {
		return false, err
	}
	for k := 0; k < dims; k++ {
		if p.cells[k] != q.cells[k] {
			return false, nil
		}
	}

	return true, nil
}

func (a *RelationAdapter) checkPrefix(decided, dims int) error {
	if dims < 0 || dims > decided || dims > a.Dimensions() {
		return fmt.Errorf("relation: prefix %d of %d decided: %w", dims, decided, ErrDimensionMismatch)
	}

	return nil
}
