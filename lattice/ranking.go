// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// Ranking is a preorder on {0,…,n-1}. Has(i, j) means i is ranked at most j.
type Ranking struct {
	rel Relation // reflexive and transitive
}

// NewRanking validates that r is reflexive and transitive and wraps it.
func NewRanking(r Relation) (Ranking, error) {
	if !r.IsReflexive() || !r.IsTransitive() {
		return Ranking{}, fmt.Errorf("NewRanking(%s): %w", r, ErrNotPreorder)
	}

	return Ranking{rel: r}, nil
}

// UncheckedRanking wraps r without validation. r must be reflexive and
// transitive; use NewRanking when that is not already known.
func UncheckedRanking(r Relation) Ranking {
	return Ranking{rel: r}
}

// RankingClosure returns the smallest ranking containing r.
func RankingClosure(r Relation) Ranking {
	return Ranking{rel: r.ReflexiveTransitiveClosure()}
}

// IdentityRanking returns the ranking in which no two distinct elements are ordered.
func IdentityRanking(n int) Ranking {
	return Ranking{rel: IdentityRelation(n)}
}

// CompleteRanking returns the ranking in which all elements are indifferent.
func CompleteRanking(n int) Ranking {
	return Ranking{rel: UniversalRelation(n)}
}

// Size returns the domain size.
func (k Ranking) Size() int { return k.rel.n }

// Has reports whether i is ranked at most j.
func (k Ranking) Has(i, j int) bool { return k.rel.Has(i, j) }

// Indifferent reports whether i and j are ranked at most each other.
func (k Ranking) Indifferent(i, j int) bool { return k.rel.Has(i, j) && k.rel.Has(j, i) }

// Relation returns the underlying relation.
func (k Ranking) Relation() Relation { return k.rel }

// Leq reports containment of the orders.
func (k Ranking) Leq(o Ranking) bool { return k.rel.Leq(o.rel) }

// Equal reports structural equality.
func (k Ranking) Equal(o Ranking) bool { return k.rel.Equal(o.rel) }

// IndifferenceClasses returns the strongly connected components of the order,
// each sorted ascending and ordered by smallest member, together with the
// class index of every element.
func (k Ranking) IndifferenceClasses() ([][]int, []int) {
	return StronglyConnected(k.rel)
}

// AddPair returns the smallest ranking containing k and (a, b):
// k ∪ {(x, y) : x ≤ a, b ≤ y}. O(n²).
func (k Ranking) AddPair(a, b int) Ranking {
	n := k.rel.n
	c := k.rel.Cells()
	if c[a*n+b] {
		return Ranking{rel: Relation{n: n, cells: c}}
	}
	for x := 0; x < n; x++ {
		if !k.rel.cells[x*n+a] {
			continue
		}
		for y := 0; y < n; y++ {
			if k.rel.cells[b*n+y] {
				c[x*n+y] = true
			}
		}
	}

	return Ranking{rel: Relation{n: n, cells: c}}
}

// RemoveBlock returns k without the pairs from×to. The result must still be
// a ranking; otherwise ErrNotPreorder is returned. Only triples through the
// removed pairs are checked: O(|from|·|to|·n).
func (k Ranking) RemoveBlock(from, to []int) (Ranking, error) {
	n := k.rel.n
	c := k.rel.Cells()
	for _, x := range from {
		for _, y := range to {
			if x < 0 || x >= n || y < 0 || y >= n {
				return Ranking{}, fmt.Errorf("RemoveBlock: pair (%d,%d): %w", x, y, ErrOutOfRange)
			}
			if x == y {
				return Ranking{}, fmt.Errorf("RemoveBlock: diagonal (%d,%d): %w", x, y, ErrNotPreorder)
			}
			c[x*n+y] = false
		}
	}
	// a removed pair must not be re-implied by a two-step path
	for _, x := range from {
		for _, y := range to {
			for z := 0; z < n; z++ {
				if c[x*n+z] && c[z*n+y] {
					return Ranking{}, fmt.Errorf("RemoveBlock: (%d,%d) implied via %d: %w", x, y, z, ErrNotPreorder)
				}
			}
		}
	}

	return Ranking{rel: Relation{n: n, cells: c}}, nil
}

// String renders the underlying relation.
func (k Ranking) String() string { return k.rel.String() }
