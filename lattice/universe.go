// SPDX-License-Identifier: MIT

package lattice

import "iter"

// The generators below walk whole lattices. They are meant for tiny domains
// (brute-force oracles, exhaustive checks); sizes grow as 2^(n²) for
// relations and Bell(n) for equivalences.

// AllRelations yields every relation on a domain of size n.
func AllRelations(n int) iter.Seq[Relation] {
	return func(yield func(Relation) bool) {
		if n < 0 || n*n > 30 {
			return
		}
		total := 1 << (n * n)
		for m := 0; m < total; m++ {
			c := make([]bool, n*n)
			for k := range c {
				c[k] = m&(1<<k) != 0
			}
			if !yield(Relation{n: n, cells: c}) {
				return
			}
		}
	}
}

// AllEquivalences yields every partition of {0,…,n-1} once, labelled as a
// restricted-growth string.
func AllEquivalences(n int) iter.Seq[Equivalence] {
	return func(yield func(Equivalence) bool) {
		if n < 0 {
			return
		}
		ids := make([]int, n)
		var rec func(i, used int) bool
		rec = func(i, used int) bool {
			if i == n {
				return yield(NewEquivalence(ids...))
			}
			for c := 0; c <= used; c++ {
				ids[i] = c
				nu := used
				if c == used {
					nu++
				}
				if !rec(i+1, nu) {
					return false
				}
			}

			return true
		}
		rec(0, 0)
	}
}

// AllRankings yields every preorder on a domain of size n.
func AllRankings(n int) iter.Seq[Ranking] {
	return func(yield func(Ranking) bool) {
		for r := range AllRelations(n) {
			if r.IsReflexive() && r.IsTransitive() {
				if !yield(Ranking{rel: r}) {
					return
				}
			}
		}
	}
}
