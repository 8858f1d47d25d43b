// SPDX-License-Identifier: MIT

package roles

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/rolelattice/enumerate"
	"github.com/katalvlaran/rolelattice/lattice"
	"github.com/katalvlaran/rolelattice/network"
)

// neighbourhoods snapshots the out- and in-neighbours of every actor of net
// when an operator is built; later changes to net are not seen.
type neighbourhoods struct {
	n   int
	out [][]int
	in  [][]int
}

func newNeighbourhoods(net *network.Network) neighbourhoods {
	n := net.Size()
	nb := neighbourhoods{n: n, out: make([][]int, n), in: make([][]int, n)}
	for u := 0; u < n; u++ {
		nb.out[u] = net.Successors(u)
		nb.in[u] = net.Predecessors(u)
	}

	return nb
}

// simulated reports ∀a ∈ as ∃b ∈ bs with rel[a*n+b].
func simulated(rel []bool, n int, as, bs []int) bool {
	for _, a := range as {
		found := false
		for _, b := range bs {
			if rel[a*n+b] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// greatestFixpoint removes pairs of rel violating keep until none does.
func greatestFixpoint(rel []bool, n int, keep func(rel []bool, u, v int) bool) int {
	rounds := 0
	for changed := true; changed; rounds++ {
		changed = false
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if rel[u*n+v] && !keep(rel, u, v) {
					rel[u*n+v] = false
					changed = true
				}
			}
		}
	}

	return rounds
}

// backSimulated reports ∀b ∈ bs ∃a ∈ as with rel[a*n+b].
func backSimulated(rel []bool, n int, as, bs []int) bool {
	for _, b := range bs {
		found := false
		for _, a := range as {
			if rel[a*n+b] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// RegularRelationInterior returns the interior mapping x to the largest
// regular role relation contained in x: (u,v) may stay only if every
// out-neighbour of u is matched by an out-neighbour of v and vice versa,
// and likewise for in-neighbours.
func RegularRelationInterior(net *network.Network) enumerate.Operator[lattice.Relation] {
	nb := newNeighbourhoods(net)

	return func(x lattice.Relation) lattice.Relation {
		n := nb.n
		rel := x.Cells()
		rounds := greatestFixpoint(rel, n, func(r []bool, u, v int) bool {
			return simulated(r, n, nb.out[u], nb.out[v]) &&
				simulated(r, n, nb.in[u], nb.in[v]) &&
				backSimulated(r, n, nb.out[u], nb.out[v]) &&
				backSimulated(r, n, nb.in[u], nb.in[v])
		})
		tracer().Debugf("roles: regular relation interior stable after %d rounds", rounds)
		out, _ := lattice.RelationFromCells(n, rel)

		return out
	}
}

// RegularRankingInterior returns the interior mapping a ranking x to the
// largest ranking R ⊆ x such that u ≤ v implies: every out-neighbour of u
// lies below some out-neighbour of v, and every in-neighbour of u lies
// below some in-neighbour of v.
func RegularRankingInterior(net *network.Network) enumerate.Operator[lattice.Ranking] {
	nb := newNeighbourhoods(net)

	return func(x lattice.Ranking) lattice.Ranking {
		n := nb.n
		rel := x.Relation().Cells()
		greatestFixpoint(rel, n, func(r []bool, u, v int) bool {
			return simulated(r, n, nb.out[u], nb.out[v]) &&
				simulated(r, n, nb.in[u], nb.in[v])
		})
		out, _ := lattice.RelationFromCells(n, rel)

		// the greatest such relation inside a preorder is a preorder
		return lattice.UncheckedRanking(out)
	}
}

// RegularEquivalenceInterior returns the interior mapping a partition x to
// the coarsest regular equivalence refining x: equivalent actors reach the
// same classes through out-ties and through in-ties.
func RegularEquivalenceInterior(net *network.Network) enumerate.Operator[lattice.Equivalence] {
	nb := newNeighbourhoods(net)

	return func(x lattice.Equivalence) lattice.Equivalence {
		ids := x.Normalized().IDs()
		classes := count(ids)
		for {
			next := refine(ids, classes, nb)
			k := count(next)
			ids = next
			if k == classes {
				break
			}
			classes = k
		}

		return lattice.NewEquivalence(ids...)
	}
}

// refine splits every class by the sets of classes its members reach.
func refine(ids []int, k int, nb neighbourhoods) []int {
	label := make(map[string]int, len(ids))
	out := make([]int, len(ids))
	var b strings.Builder
	for v := range ids {
		b.Reset()
		b.WriteString(strconv.Itoa(ids[v]))
		b.WriteByte('|')
		writeClassSet(&b, ids, nb.out[v], k)
		b.WriteByte('|')
		writeClassSet(&b, ids, nb.in[v], k)
		key := b.String()
		l, ok := label[key]
		if !ok {
			l = len(label)
			label[key] = l
		}
		out[v] = l
	}

	return out
}

func writeClassSet(b *strings.Builder, ids, vs []int, k int) {
	set := make([]bool, k)
	for _, v := range vs {
		set[ids[v]] = true
	}
	for _, in := range set {
		if in {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
}

func count(ids []int) int {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}

	return len(seen)
}

// TransitiveClosure returns the closure mapping a relation to its transitive closure.
func TransitiveClosure() enumerate.Operator[lattice.Relation] {
	return func(x lattice.Relation) lattice.Relation {
		return x.TransitiveClosure()
	}
}

// SuccessorCongruence returns the closure mapping a partition x to the
// finest partition coarser than x in which the successors of each class
// share one class.
func SuccessorCongruence(net *network.Network) enumerate.Operator[lattice.Equivalence] {
	nb := newNeighbourhoods(net)

	return func(x lattice.Equivalence) lattice.Equivalence {
		uf := newUnionFind(x.Size())
		for i := 0; i < x.Size(); i++ {
			for j := i + 1; j < x.Size(); j++ {
				if x.Same(i, j) {
					uf.union(i, j)
				}
			}
		}
		for changed := true; changed; {
			changed = false
			// first successor seen per class root
			anchor := make(map[int]int, nb.n)
			for u := 0; u < nb.n; u++ {
				r := uf.find(u)
				for _, s := range nb.out[u] {
					a, ok := anchor[r]
					if !ok {
						anchor[r] = s
						continue
					}
					if uf.union(a, s) {
						changed = true
					}
				}
			}
		}
		ids := make([]int, nb.n)
		for i := range ids {
			ids[i] = uf.find(i)
		}

		return lattice.NewEquivalence(ids...)
	}
}

// SuccessorRankingClosure returns the closure mapping a ranking x to the
// smallest ranking containing x such that u ≤ v implies u' ≤ v' for all
// successors u' of u and v' of v.
func SuccessorRankingClosure(net *network.Network) enumerate.Operator[lattice.Ranking] {
	nb := newNeighbourhoods(net)

	return func(x lattice.Ranking) lattice.Ranking {
		cur := x
		for {
			rel := cur.Relation().Cells()
			grown := false
			for u := 0; u < nb.n; u++ {
				for v := 0; v < nb.n; v++ {
					if !cur.Has(u, v) {
						continue
					}
					for _, a := range nb.out[u] {
						for _, b := range nb.out[v] {
							if !rel[a*nb.n+b] {
								rel[a*nb.n+b] = true
								grown = true
							}
						}
					}
				}
			}
			if !grown {
				return cur
			}
			r, _ := lattice.RelationFromCells(nb.n, rel)
			cur = lattice.RankingClosure(r)
		}
	}
}

// unionFind is a disjoint-set forest with path halving.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// union joins the sets of a and b and reports whether they were distinct.
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra

	return true
}
