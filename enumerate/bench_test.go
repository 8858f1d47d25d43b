package enumerate_test

import (
	"testing"

	"github.com/katalvlaran/rolelattice/cover"
	"github.com/katalvlaran/rolelattice/enumerate"
	"github.com/katalvlaran/rolelattice/lattice"
	"github.com/katalvlaran/rolelattice/network"
	"github.com/katalvlaran/rolelattice/projection"
	"github.com/katalvlaran/rolelattice/roles"
)

// ring returns the directed cycle 0 → 1 → … → n-1 → 0 with one chord.
func ring(n int) *network.Network {
	pairs := make([][2]int, 0, n+1)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]int{i, (i + 1) % n})
	}
	pairs = append(pairs, [2]int{0, n / 2})
	net, _ := network.FromPairs(n, pairs)

	return net
}

// BenchmarkCovers_EquivalenceIdentity6 enumerates all 203 partitions of six
// elements downward from the indiscrete partition.
func BenchmarkCovers_EquivalenceIdentity6(b *testing.B) {
	seq := enumerate.Covers(identity[lattice.Equivalence], lattice.IndiscreteEquivalence(6),
		cover.EquivalenceLower, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = seq.Collect()
	}
}

// BenchmarkCovers_RankingInterior5 searches the regular rankings of a
// five-actor ring below the complete ranking.
func BenchmarkCovers_RankingInterior5(b *testing.B) {
	seq := enumerate.Covers(roles.RegularRankingInterior(ring(5)), lattice.CompleteRanking(5),
		cover.RankingLower, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = seq.Collect()
	}
}

// BenchmarkProjections_RankingClosure5 runs the backtracking engine on the
// same ring with the successor closure.
func BenchmarkProjections_RankingClosure5(b *testing.B) {
	a := projection.Rankings(5)
	seq := enumerate.Projections(roles.SuccessorRankingClosure(ring(5)), a, a.Empty(), 0, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = seq.Collect()
	}
}
