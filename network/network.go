// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/rolelattice/lattice"
)

// FromPairs builds a network over actors "0".."n-1" with the given ties.
// It fails with lattice.ErrBadSize for n < 0 and ErrActorNotFound for an
// endpoint outside [0, n).
func FromPairs(n int, pairs [][2]int, opts ...Option) (*Network, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromPairs: n=%d: %w", n, lattice.ErrBadSize)
	}
	net := New(opts...)
	for i := 0; i < n; i++ {
		if _, err := net.AddActor(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}
	for _, p := range pairs {
		if err := net.AddTieIndex(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("FromPairs: %w", err)
		}
	}

	return net, nil
}

// AddActor adds id if absent and returns its index.
func (n *Network) AddActor(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyActorID
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.addActorLocked(id), nil
}

func (n *Network) addActorLocked(id string) int {
	if i, ok := n.index[id]; ok {
		return i
	}
	i := len(n.ids)
	n.ids = append(n.ids, id)
	n.index[id] = i
	n.succ = append(n.succ, make(map[int]struct{}))
	n.pred = append(n.pred, make(map[int]struct{}))

	return i
}

// AddTie adds the tie from→to, adding missing actors first.
func (n *Network) AddTie(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyActorID
	}
	if from == to && !n.allowLoops {
		return fmt.Errorf("AddTie(%s→%s): %w", from, to, ErrLoopNotAllowed)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	u := n.addActorLocked(from)
	v := n.addActorLocked(to)
	if err := n.addTieLocked(u, v); err != nil {
		return fmt.Errorf("AddTie(%s→%s): %w", from, to, err)
	}

	return nil
}

// AddTieIndex adds the tie u→v between existing actors.
func (n *Network) AddTieIndex(u, v int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.validLocked(u) || !n.validLocked(v) {
		return fmt.Errorf("AddTieIndex(%d→%d) with %d actors: %w", u, v, len(n.ids), ErrActorNotFound)
	}
	if u == v && !n.allowLoops {
		return fmt.Errorf("AddTieIndex(%d→%d): %w", u, v, ErrLoopNotAllowed)
	}

	return n.addTieLocked(u, v)
}

func (n *Network) addTieLocked(u, v int) error {
	if _, ok := n.succ[u][v]; ok {
		return ErrDuplicateTie
	}
	n.succ[u][v] = struct{}{}
	n.pred[v][u] = struct{}{}
	n.ties++

	return nil
}

func (n *Network) validLocked(i int) bool { return i >= 0 && i < len(n.ids) }

// Looped reports whether self-ties are permitted.
func (n *Network) Looped() bool { return n.allowLoops }

// Size returns the number of actors.
func (n *Network) Size() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.ids)
}

// TieCount returns the number of ties.
func (n *Network) TieCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.ties
}

// Actors returns the actor IDs in index order.
func (n *Network) Actors() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Clone(n.ids)
}

// Index returns the index of actor id.
func (n *Network) Index(id string) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	i, ok := n.index[id]
	if !ok {
		return 0, fmt.Errorf("Index(%q): %w", id, ErrActorNotFound)
	}

	return i, nil
}

// HasTie reports whether the tie u→v exists. Out-of-range indices have no ties.
func (n *Network) HasTie(u, v int) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if !n.validLocked(u) || !n.validLocked(v) {
		return false
	}
	_, ok := n.succ[u][v]

	return ok
}

// Successors returns the sorted out-neighbours of u, or nil if u is not an actor.
func (n *Network) Successors(u int) []int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if !n.validLocked(u) {
		return nil
	}

	return sortedKeys(n.succ[u])
}

// Predecessors returns the sorted in-neighbours of v, or nil if v is not an actor.
func (n *Network) Predecessors(v int) []int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if !n.validLocked(v) {
		return nil
	}

	return sortedKeys(n.pred[v])
}

// Ties returns every tie as an index pair, sorted by source then target.
func (n *Network) Ties() [][2]int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.tiesLocked()
}

func (n *Network) tiesLocked() [][2]int {
	out := make([][2]int, 0, n.ties)
	for u := range n.ids {
		for _, v := range sortedKeys(n.succ[u]) {
			out = append(out, [2]int{u, v})
		}
	}

	return out
}

// Relation returns the adjacency relation on the actor indices.
func (n *Network) Relation() lattice.Relation {
	n.mu.RLock()
	defer n.mu.RUnlock()
	// every endpoint is a valid index, so construction cannot fail
	r, _ := lattice.RelationFromPairs(len(n.ids), n.tiesLocked()...)

	return r
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}
