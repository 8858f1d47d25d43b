// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math/rand"
	"strconv"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomActors    = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse samples a directed network over actors "0".."n-1" in which
// every admissible ordered pair (i,j) is tied independently with
// probability p. Self-pairs are admissible only with WithLoops.
//
// Trials run i asc, then j asc, so a fixed seed yields a fixed network.
// rng may be nil only when p is 0 or 1.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64, rng *rand.Rand, opts ...Option) (*Network, error) {
	// 1) Validate before any side effect: size, probability, rng.
	if n < minRandomActors {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomActors, ErrTooFewActors)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	// 2) Actors in index order; net is not shared yet, so no locking.
	net := New(opts...)
	for i := 0; i < n; i++ {
		net.addActorLocked(strconv.Itoa(i))
	}

	// 3) One Bernoulli trial per ordered pair.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j && !net.allowLoops {
				continue
			}
			var keep bool
			if rng == nil {
				keep = p == probMax
			} else {
				keep = rng.Float64() < p
			}
			if !keep {
				continue
			}
			if err := net.addTieLocked(i, j); err != nil {
				return nil, fmt.Errorf("%s: tie %d→%d: %w", methodRandomSparse, i, j, err)
			}
		}
	}

	return net, nil
}
