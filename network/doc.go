// Package network stores the directed tie structure of a social network:
// actors identified by string IDs, each mapped to a dense index 0..n-1 in
// insertion order, and directed ties between them.
//
// Role operators read a Network through Size, Successors and Predecessors,
// which return sorted, caller-owned slices. A Network is safe for concurrent
// use; every method takes the internal RWMutex.
//
// Configuration Options (Option):
//
//	– WithLoops()
//	    Permits self-ties u→u; otherwise AddTie(u, u) → ErrLoopNotAllowed.
//
// Construction:
//
//	net := network.New()
//	_ = net.AddTie("alice", "carol") // adds both actors on first use
//	_ = net.AddTie("bob", "carol")
//
//	net, err := network.FromPairs(3, [][2]int{{0, 2}, {1, 2}}) // actors "0","1","2"
//	net, err := network.RandomSparse(5, 0.3, rand.New(rand.NewSource(1)))
//
// Errors:
//
//	ErrEmptyActorID   – an actor ID is "".
//	ErrActorNotFound  – an index or ID names no actor.
//	ErrLoopNotAllowed – a self-tie without WithLoops.
//	ErrDuplicateTie   – the tie already exists.
//	ErrTooFewActors   – a generator was asked for fewer than one actor.
//	ErrInvalidProbability, ErrNeedRandSource – RandomSparse parameter checks.
//
// Complexity: AddActor and AddTie are O(1) amortized; Successors and
// Predecessors are O(d log d) for degree d; Relation is O(n² + m).
package network
