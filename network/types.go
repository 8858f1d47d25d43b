// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"sync"
)

// Sentinel errors; every message is prefixed with "network: ".
var (
	// ErrEmptyActorID indicates that an actor ID is the empty string.
	ErrEmptyActorID = errors.New("network: actor ID is empty")

	// ErrActorNotFound indicates that an index or ID names no actor.
	ErrActorNotFound = errors.New("network: actor not found")

	// ErrLoopNotAllowed indicates a self-tie on a network built without WithLoops.
	ErrLoopNotAllowed = errors.New("network: self-ties not allowed")

	// ErrDuplicateTie indicates that the tie from→to is already present.
	ErrDuplicateTie = errors.New("network: duplicate tie")

	// ErrTooFewActors indicates that a generator was asked for n < 1 actors.
	ErrTooFewActors = errors.New("network: too few actors")

	// ErrInvalidProbability indicates a tie probability outside [0,1].
	ErrInvalidProbability = errors.New("network: probability out of range")

	// ErrNeedRandSource indicates that a stochastic generator got a nil rng.
	ErrNeedRandSource = errors.New("network: rng is required")
)

// Network is a directed graph over actors. Actor indices are dense and
// assigned in insertion order; ties form a set (no parallel ties).
type Network struct {
	mu sync.RWMutex

	allowLoops bool

	ids   []string       // index → actor ID
	index map[string]int // actor ID → index
	succ  []map[int]struct{}
	pred  []map[int]struct{}
	ties  int
}

// Option configures a Network before any actor is added.
type Option func(*Network)

// WithLoops permits self-ties u→u.
func WithLoops() Option {
	return func(n *Network) { n.allowLoops = true }
}

// New creates an empty Network.
func New(opts ...Option) *Network {
	n := &Network{index: make(map[string]int)}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
