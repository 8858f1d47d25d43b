package cover_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rolelattice/cover"
	"github.com/katalvlaran/rolelattice/lattice"
)

// element is what the brute-force oracles need from a lattice value.
type element[E any] interface {
	Leq(E) bool
	Equal(E) bool
	String() string
}

// drain pulls every cover of the adapter.
func drain[E any](a cover.Adapter[E]) []E {
	var out []E
	for a.HasNext() {
		out = append(out, a.Next())
	}

	return out
}

// bruteLowerCovers returns the maximal elements strictly below x.
func bruteLowerCovers[E element[E]](universe []E, x E) []E {
	var below []E
	for _, y := range universe {
		if y.Leq(x) && !y.Equal(x) {
			below = append(below, y)
		}
	}
	var out []E
	for _, y := range below {
		maximal := true
		for _, z := range below {
			if y.Leq(z) && !y.Equal(z) {
				maximal = false
				break
			}
		}
		if maximal {
			out = append(out, y)
		}
	}

	return out
}

// bruteUpperCovers returns the minimal elements strictly above x.
func bruteUpperCovers[E element[E]](universe []E, x E) []E {
	var above []E
	for _, y := range universe {
		if x.Leq(y) && !y.Equal(x) {
			above = append(above, y)
		}
	}
	var out []E
	for _, y := range above {
		minimal := true
		for _, z := range above {
			if z.Leq(y) && !y.Equal(z) {
				minimal = false
				break
			}
		}
		if minimal {
			out = append(out, y)
		}
	}

	return out
}

func keys[E element[E]](xs []E) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, x.String())
	}
	slices.Sort(out)

	return out
}

// checkCovers compares adapter output with the brute-force covers of every
// element and verifies that the parent is left untouched.
func checkCovers[E element[E]](t *testing.T, universe []E, factory cover.Factory[E], upper bool) {
	t.Helper()
	for _, x := range universe {
		before := x.String()
		got := drain(factory(x))
		var want []E
		if upper {
			want = bruteUpperCovers(universe, x)
		} else {
			want = bruteLowerCovers(universe, x)
		}
		gk := keys(got)
		require.Equal(t, keys(want), gk, "covers of %s", before)
		assert.Equal(t, len(slices.Compact(slices.Clone(gk))), len(gk), "duplicate cover of %s", before)
		assert.Equal(t, before, x.String(), "parent mutated")
	}
}

// checkDescendsFromEarlier compares the predicate with a brute-force answer:
// candidate lies beyond cover i < j, for every cover j and every candidate
// on the adapter's side of the parent.
func checkDescendsFromEarlier[E element[E]](t *testing.T, universe []E, factory cover.Factory[E], upper bool) {
	t.Helper()
	beyond := func(c, y E) bool {
		if upper {
			return c.Leq(y)
		}

		return y.Leq(c)
	}
	for _, x := range universe {
		a := factory(x)
		covers := drain(a)
		if len(covers) == 0 {
			continue
		}
		for _, y := range universe {
			if upper && !x.Leq(y) || !upper && !y.Leq(x) {
				continue
			}
			first := len(covers)
			for i, c := range covers {
				if beyond(c, y) {
					first = i
					break
				}
			}
			for j, ref := range covers {
				want := first < j
				got := a.DescendsFromEarlier(y, ref)
				if want != got {
					t.Fatalf("parent %s, ref #%d %s, candidate %s: got %v want %v",
						x, j, ref, y, got, want)
				}
			}
		}
	}
}

func collect[E any](seq func(yield func(E) bool)) []E {
	var out []E
	for e := range seq {
		out = append(out, e)
	}

	return out
}

func TestRelationCovers(t *testing.T) {
	universe := collect(lattice.AllRelations(2))
	require.Len(t, universe, 16)
	checkCovers(t, universe, cover.RelationLower, false)
	checkCovers(t, universe, cover.RelationUpper, true)
	checkDescendsFromEarlier(t, universe, cover.RelationLower, false)
	checkDescendsFromEarlier(t, universe, cover.RelationUpper, true)
}

func TestRelationCovers_Domain3(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive 512-element check")
	}
	universe := collect(lattice.AllRelations(3))
	checkDescendsFromEarlier(t, universe[:64], cover.RelationUpper, true)
	checkDescendsFromEarlier(t, universe[len(universe)-64:], cover.RelationLower, false)
}

func TestEquivalenceCovers(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		universe := collect(lattice.AllEquivalences(n))
		checkCovers(t, universe, cover.EquivalenceLower, false)
		checkCovers(t, universe, cover.EquivalenceUpper, true)
		checkDescendsFromEarlier(t, universe, cover.EquivalenceLower, false)
		checkDescendsFromEarlier(t, universe, cover.EquivalenceUpper, true)
	}
}

func TestEquivalenceCovers_UnnormalizedIDs(t *testing.T) {
	// same partition as {0 2}{1}{3}, arbitrary ids
	x := lattice.NewEquivalence(40, -3, 40, 9)
	got := drain(cover.EquivalenceLower(x))
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(lattice.DiscreteEquivalence(4)))

	up := drain(cover.EquivalenceUpper(x))
	assert.Len(t, up, 3)
	for _, u := range up {
		assert.True(t, x.Leq(u))
		assert.Equal(t, 2, u.NumClasses())
	}
}

func TestRankingCovers(t *testing.T) {
	universe := collect(lattice.AllRankings(3))
	require.Len(t, universe, 29)
	checkCovers(t, universe, cover.RankingLower, false)
	checkCovers(t, universe, cover.RankingUpper, true)
	checkDescendsFromEarlier(t, universe, cover.RankingLower, false)
	checkDescendsFromEarlier(t, universe, cover.RankingUpper, true)
}

func TestRankingCovers_Domain4(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive 355-element check")
	}
	universe := collect(lattice.AllRankings(4))
	require.Len(t, universe, 355)
	checkCovers(t, universe, cover.RankingLower, false)
	checkCovers(t, universe, cover.RankingUpper, true)
	checkDescendsFromEarlier(t, universe, cover.RankingLower, false)
	checkDescendsFromEarlier(t, universe, cover.RankingUpper, true)
}

func TestRankingLower_SplitsAfterRemovals(t *testing.T) {
	// 0 ~ 1 below 2
	r, _ := lattice.RelationFromPairs(3, [2]int{0, 1}, [2]int{1, 0}, [2]int{0, 2}, [2]int{1, 2})
	k := lattice.RankingClosure(r)
	got := drain(cover.RankingLower(k))
	// one block removal, then the two ordered splits of {0,1}
	require.Len(t, got, 3)
	assert.False(t, got[0].Has(0, 2))
	assert.True(t, got[0].Indifferent(0, 1))
	for _, s := range got[1:] {
		assert.False(t, s.Indifferent(0, 1))
		assert.True(t, s.Has(0, 2) && s.Has(1, 2))
	}
}

func TestTwoClassEquivalence_SingleUpperCover(t *testing.T) {
	x := lattice.NewEquivalence(0, 0, 1, 1)
	a := cover.EquivalenceUpper(x)
	require.True(t, a.HasNext())
	merged := a.Next()
	assert.True(t, merged.Equal(lattice.IndiscreteEquivalence(4)))
	assert.False(t, a.HasNext())
	assert.False(t, cover.EquivalenceUpper(merged).HasNext())
}

func TestSingletonClassesHaveNoLowerCover(t *testing.T) {
	assert.False(t, cover.EquivalenceLower(lattice.DiscreteEquivalence(4)).HasNext())
	assert.False(t, cover.RankingLower(lattice.IdentityRanking(3)).HasNext())
}

func TestNextPanicsWhenExhausted(t *testing.T) {
	empty, _ := lattice.NewRelation(2)
	a := cover.RelationLower(empty)
	assert.False(t, a.HasNext())
	assert.PanicsWithValue(t, cover.ErrExhausted, func() { a.Next() })

	assert.PanicsWithValue(t, cover.ErrExhausted, func() {
		cover.EquivalenceUpper(lattice.IndiscreteEquivalence(2)).Next()
	})
	assert.PanicsWithValue(t, cover.ErrExhausted, func() {
		cover.RankingUpper(lattice.CompleteRanking(2)).Next()
	})
	assert.PanicsWithValue(t, cover.ErrExhausted, func() {
		cover.RankingLower(lattice.IdentityRanking(2)).Next()
	})
}
