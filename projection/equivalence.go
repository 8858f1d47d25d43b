// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"

	"github.com/katalvlaran/rolelattice/lattice"
)

// EquivalenceProjection holds restricted-growth labels of the decided elements.
type EquivalenceProjection struct {
	labels []int // labels[i] <= max(labels[:i])+1
	used   int   // number of distinct labels
}

// Decided returns the number of decided elements.
func (p EquivalenceProjection) Decided() int { return len(p.labels) }

// EquivalenceAdapter decomposes partitions element by element. Only minimal
// completions exist: the greatest partition with a given prefix is not unique.
type EquivalenceAdapter struct {
	n int
}

// Equivalences returns the adapter for partitions of {0,…,n-1}.
func Equivalences(n int) *EquivalenceAdapter {
	if n < 0 {
		n = 0
	}

	return &EquivalenceAdapter{n: n}
}

// Dimensions returns n.
func (a *EquivalenceAdapter) Dimensions() int { return a.n }

// Empty returns the projection with no decided element.
func (a *EquivalenceAdapter) Empty() EquivalenceProjection { return EquivalenceProjection{} }

// Extend puts element next into each used class, then into a fresh one.
func (a *EquivalenceAdapter) Extend(p EquivalenceProjection, next int) ([]EquivalenceProjection, error) {
	if next != len(p.labels) || next >= a.n {
		return nil, fmt.Errorf("equivalence Extend: next=%d decided=%d dims=%d: %w",
			next, len(p.labels), a.n, ErrDimensionMismatch)
	}
	out := make([]EquivalenceProjection, 0, p.used+1)
	for c := 0; c <= p.used; c++ {
		l := make([]int, next+1)
		copy(l, p.labels)
		l[next] = c
		used := p.used
		if c == p.used {
			used++
		}
		out = append(out, EquivalenceProjection{labels: l, used: used})
	}

	return out, nil
}

// Extremal returns the minimal completion: undecided elements as singletons.
func (a *EquivalenceAdapter) Extremal(p EquivalenceProjection, dims int) ([]lattice.Equivalence, error) {
	if err := a.checkPrefix(len(p.labels), dims); err != nil {
		return nil, err
	}
	ids := make([]int, a.n)
	fresh := 0
	for i := 0; i < dims; i++ {
		ids[i] = p.labels[i]
		if p.labels[i] >= fresh {
			fresh = p.labels[i] + 1
		}
	}
	for i := dims; i < a.n; i++ {
		ids[i] = fresh
		fresh++
	}

	return []lattice.Equivalence{lattice.NewEquivalence(ids...)}, nil
}

// ToElement converts a fully decided projection.
func (a *EquivalenceAdapter) ToElement(p EquivalenceProjection, dims int) (lattice.Equivalence, error) {
	if dims != a.n || len(p.labels) != dims {
		return lattice.Equivalence{}, fmt.Errorf("equivalence ToElement: dims=%d decided=%d want %d: %w",
			dims, len(p.labels), a.n, ErrDimensionMismatch)
	}

	return lattice.NewEquivalence(p.labels...), nil
}

// Project relabels the first dims elements of e as a restricted-growth string.
func (a *EquivalenceAdapter) Project(e lattice.Equivalence, dims int) (EquivalenceProjection, error) {
	if e.Size() != a.n {
		return EquivalenceProjection{}, fmt.Errorf("equivalence Project: size %d, adapter %d: %w",
			e.Size(), a.n, ErrDimensionMismatch)
	}
	if err := a.checkPrefix(a.n, dims); err != nil {
		return EquivalenceProjection{}, err
	}
	labels := make([]int, dims)
	seen := make(map[int]int, dims)
	for i := 0; i < dims; i++ {
		id := e.ClassID(i)
		l, ok := seen[id]
		if !ok {
			l = len(seen)
			seen[id] = l
		}
		labels[i] = l
	}

	return EquivalenceProjection{labels: labels, used: len(seen)}, nil
}

// Equal compares the grouping of the first dims elements.
func (a *EquivalenceAdapter) Equal(p, q EquivalenceProjection, dims int) (bool, error) {
	if err := a.checkPrefix(min(len(p.labels), len(q.labels)), dims); err != nil {
		return false, err
	}
	for i := 0; i < dims; i++ {
		for j := i + 1; j < dims; j++ {
			if (p.labels[i] == p.labels[j]) != (q.labels[i] == q.labels[j]) {
				return false, nil
			}
		}
	}

	return true, nil
}

func (a *EquivalenceAdapter) checkPrefix(decided, dims int) error {
	if dims < 0 || dims > decided || dims > a.n {
		return fmt.Errorf("equivalence: prefix %d of %d decided: %w", dims, decided, ErrDimensionMismatch)
	}

	return nil
}
