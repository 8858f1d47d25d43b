// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"

	"github.com/katalvlaran/rolelattice/lattice"
)

// RankingProjection holds the decided prefix of a ranking's cells and, once
// known, the reflexive-transitive closure of its decided true cells.
// Projections from Project carry cells only; the closure is computed when
// first needed.
type RankingProjection struct {
	n          int
	cells      []bool          // row-major, len = decided dimensions
	closure    lattice.Ranking // smallest ranking holding every decided true cell
	hasClosure bool
}

// Decided returns the number of decided cells.
func (p RankingProjection) Decided() int { return len(p.cells) }

// Closure returns the least ranking carrying the decided true cells.
func (p RankingProjection) Closure() lattice.Ranking {
	if p.hasClosure {
		return p.closure
	}
	c := make([]bool, p.n*p.n)
	copy(c, p.cells)
	r, _ := lattice.RelationFromCells(p.n, c)

	return lattice.RankingClosure(r)
}

// closed returns p with its closure filled in.
func (p RankingProjection) closed() RankingProjection {
	if !p.hasClosure {
		p.closure, p.hasClosure = p.Closure(), true
	}

	return p
}

// RankingAdapter decomposes rankings cell by cell, row-major. Every
// projection it hands out agrees with its closure on the decided cells.
type RankingAdapter struct {
	n int
}

// Rankings returns the adapter for rankings on {0,…,n-1}.
func Rankings(n int) *RankingAdapter {
	if n < 0 {
		n = 0
	}

	return &RankingAdapter{n: n}
}

// Dimensions returns n².
func (a *RankingAdapter) Dimensions() int { return a.n * a.n }

// Empty returns the projection with no decided cell; its closure is the identity.
func (a *RankingAdapter) Empty() RankingProjection {
	return RankingProjection{n: a.n, closure: lattice.IdentityRanking(a.n), hasClosure: true}
}

// Extend offers the values of cell next that keep the closure consistent
// with the decided cells: false unless the cell is already implied, true
// unless it would imply a cell decided false.
func (a *RankingAdapter) Extend(p RankingProjection, next int) ([]RankingProjection, error) {
	if next != len(p.cells) || next >= a.Dimensions() {
		return nil, fmt.Errorf("ranking Extend: next=%d decided=%d dims=%d: %w",
			next, len(p.cells), a.Dimensions(), ErrDimensionMismatch)
	}
	p = p.closed()
	i, j := next/a.n, next%a.n
	out := make([]RankingProjection, 0, 2)
	child := func(v bool, closure lattice.Ranking) RankingProjection {
		return RankingProjection{n: a.n, cells: appendCell(p.cells, v), closure: closure, hasClosure: true}
	}

	if !p.closure.Has(i, j) {
		out = append(out, child(false, p.closure))

		grown := p.closure.AddPair(i, j)
		if a.respectsFalse(p.cells, grown) {
			out = append(out, child(true, grown))
		}

		return out, nil
	}

	// already implied: true is the only consistent value
	out = append(out, child(true, p.closure))

	return out, nil
}

// respectsFalse reports whether closure keeps every decided-false cell false.
func (a *RankingAdapter) respectsFalse(cells []bool, closure lattice.Ranking) bool {
	rel := closure.Relation()
	for k, v := range cells {
		if !v && rel.Cell(k) {
			return false
		}
	}

	return true
}

// Extremal returns the minimal completion, the closure of the decided true
// cells among the first dims.
func (a *RankingAdapter) Extremal(p RankingProjection, dims int) ([]lattice.Ranking, error) {
	if err := a.checkPrefix(len(p.cells), dims); err != nil {
		return nil, err
	}
	if dims == len(p.cells) {
		return []lattice.Ranking{p.Closure()}, nil
	}
	k, err := a.closureOf(p.cells[:dims])
	if err != nil {
		return nil, err
	}

	return []lattice.Ranking{k}, nil
}

// ToElement converts a fully decided projection.
func (a *RankingAdapter) ToElement(p RankingProjection, dims int) (lattice.Ranking, error) {
	if dims != a.Dimensions() || len(p.cells) != dims {
		return lattice.Ranking{}, fmt.Errorf("ranking ToElement: dims=%d decided=%d want %d: %w",
			dims, len(p.cells), a.Dimensions(), ErrDimensionMismatch)
	}

	return p.Closure(), nil
}

// Project keeps the first dims cells of k. The closure is left to the first
// call that reads it.
func (a *RankingAdapter) Project(k lattice.Ranking, dims int) (RankingProjection, error) {
	if k.Size() != a.n {
		return RankingProjection{}, fmt.Errorf("ranking Project: size %d, adapter %d: %w",
			k.Size(), a.n, ErrDimensionMismatch)
	}
	if err := a.checkPrefix(a.Dimensions(), dims); err != nil {
		return RankingProjection{}, err
	}
	rel := k.Relation()
	c := make([]bool, dims)
	for q := range c {
		c[q] = rel.Cell(q)
	}

	return RankingProjection{n: a.n, cells: c}, nil
}

// Equal compares the first dims cells.
func (a *RankingAdapter) Equal(p, q RankingProjection, dims int) (bool, error) {
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

func (a *RankingAdapter) closureOf(prefix []bool) (lattice.Ranking, error) {
	c := make([]bool, a.Dimensions())
	copy(c, prefix)
	r, err := lattice.RelationFromCells(a.n, c)
	if err != nil {
		return lattice.Ranking{}, err
	}

	return lattice.RankingClosure(r), nil
}

func (a *RankingAdapter) checkPrefix(decided, dims int) error {
	if dims < 0 || dims > decided || dims > a.Dimensions() {
		return fmt.Errorf("ranking: prefix %d of %d decided: %w", dims, decided, ErrDimensionMismatch)
	}

	return nil
}

func appendCell(cells []bool, v bool) []bool {
	c := make([]bool, len(cells)+1)
	copy(c, cells)
	c[len(cells)] = v

	return c
}
