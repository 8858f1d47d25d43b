package network_test

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rolelattice/lattice"
	"github.com/katalvlaran/rolelattice/network"
)

func TestAddTieAddsActors(t *testing.T) {
	net := network.New()
	require.NoError(t, net.AddTie("alice", "carol"))
	require.NoError(t, net.AddTie("bob", "carol"))

	assert.Equal(t, []string{"alice", "carol", "bob"}, net.Actors())
	assert.Equal(t, 3, net.Size())
	assert.Equal(t, 2, net.TieCount())

	c, err := net.Index("carol")
	require.NoError(t, err)
	assert.Equal(t, 1, c)
	assert.Equal(t, []int{0, 2}, net.Predecessors(c))
	assert.Equal(t, []int{1}, net.Successors(0))
	assert.Empty(t, net.Successors(c))
	assert.True(t, net.HasTie(2, 1))
	assert.False(t, net.HasTie(1, 2))
	assert.False(t, net.HasTie(7, 1))
	assert.Nil(t, net.Successors(-1))

	_, err = net.Index("dave")
	assert.ErrorIs(t, err, network.ErrActorNotFound)
}

func TestAddTieErrors(t *testing.T) {
	net := network.New()
	assert.ErrorIs(t, net.AddTie("", "x"), network.ErrEmptyActorID)
	assert.ErrorIs(t, net.AddTie("x", "x"), network.ErrLoopNotAllowed)
	require.NoError(t, net.AddTie("x", "y"))
	assert.ErrorIs(t, net.AddTie("x", "y"), network.ErrDuplicateTie)
	assert.ErrorIs(t, net.AddTieIndex(0, 5), network.ErrActorNotFound)
	_, err := net.AddActor("")
	assert.ErrorIs(t, err, network.ErrEmptyActorID)

	looped := network.New(network.WithLoops())
	require.NoError(t, looped.AddTie("x", "x"))
	assert.True(t, looped.Looped())
	assert.Equal(t, []int{0}, looped.Successors(0))
	assert.Equal(t, []int{0}, looped.Predecessors(0))
}

func TestFromPairs(t *testing.T) {
	net, err := network.FromPairs(4, [][2]int{{2, 0}, {0, 3}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, net.Actors())
	assert.Equal(t, [][2]int{{0, 1}, {0, 3}, {2, 0}}, net.Ties())
	assert.Equal(t, []int{1, 3}, net.Successors(0))

	want, _ := lattice.RelationFromPairs(4, [2]int{2, 0}, [2]int{0, 3}, [2]int{0, 1})
	assert.True(t, net.Relation().Equal(want))

	_, err = network.FromPairs(2, [][2]int{{0, 5}})
	assert.ErrorIs(t, err, network.ErrActorNotFound)
	_, err = network.FromPairs(-1, nil)
	assert.ErrorIs(t, err, lattice.ErrBadSize)
	_, err = network.FromPairs(2, [][2]int{{1, 1}})
	assert.ErrorIs(t, err, network.ErrLoopNotAllowed)

	empty, err := network.FromPairs(0, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Relation().Size())
}

func TestRandomSparse(t *testing.T) {
	a, err := network.RandomSparse(6, 0.4, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	b, err := network.RandomSparse(6, 0.4, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, a.Ties(), b.Ties(), "fixed seed, fixed network")
	for _, tie := range a.Ties() {
		assert.NotEqual(t, tie[0], tie[1], "self-tie without WithLoops")
	}

	full, err := network.RandomSparse(4, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, full.TieCount())
	looped, err := network.RandomSparse(4, 1, nil, network.WithLoops())
	require.NoError(t, err)
	assert.Equal(t, 16, looped.TieCount())
	none, err := network.RandomSparse(4, 0, nil)
	require.NoError(t, err)
	assert.Zero(t, none.TieCount())
	assert.Equal(t, 4, none.Size())
}

func TestRandomSparseErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, tc := range []struct {
		name string
		n    int
		p    float64
		rng  *rand.Rand
		want error
	}{
		{"zero actors", 0, 0.5, rng, network.ErrTooFewActors},
		{"negative p", 3, -0.1, rng, network.ErrInvalidProbability},
		{"p above one", 3, 1.5, rng, network.ErrInvalidProbability},
		{"nil rng", 3, 0.5, nil, network.ErrNeedRandSource},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.RandomSparse(tc.n, tc.p, tc.rng)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestConcurrentAddTie adds ties from many goroutines and checks that every
// tie and actor is recorded once.
func TestConcurrentAddTie(t *testing.T) {
	net := network.New()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, net.AddTie("hub", fmt.Sprintf("v%d", id)))
			_ = net.Successors(0)
		}(i)
	}
	wg.Wait()

	hub, err := net.Index("hub")
	require.NoError(t, err)
	assert.Len(t, net.Successors(hub), num)
	assert.Equal(t, num+1, net.Size())
	assert.Equal(t, num, net.Relation().Count())
}
