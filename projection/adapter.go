// SPDX-License-Identifier: MIT

package projection

import "errors"

var (
	// ErrDimensionMismatch reports a dimension count that does not fit the
	// projection or the adapter.
	ErrDimensionMismatch = errors.New("projection: dimension mismatch")

	// ErrNoMaximalCompletion reports a lattice without unique maximal completions.
	ErrNoMaximalCompletion = errors.New("projection: no maximal completion")
)

// Extreme selects which completion of a projection is used.
type Extreme int

const (
	// Minimal completes with the least element carrying the prefix; pair with closures.
	Minimal Extreme = iota
	// Maximal completes with the greatest element carrying the prefix; pair with interiors.
	Maximal
)

// String names the extreme.
func (x Extreme) String() string {
	if x == Maximal {
		return "maximal"
	}

	return "minimal"
}

// Adapter decomposes elements of type E into projections of type P.
type Adapter[E, P any] interface {
	// Dimensions returns the number of dimensions of a full element.
	Dimensions() int

	// Empty returns the projection with no decided dimension.
	Empty() P

	// Extend returns the admissible values of dimension next of p, which
	// must have exactly next decided dimensions.
	Extend(p P, next int) ([]P, error)

	// Extremal returns the extremal completions of the first dims
	// dimensions of p. All adapters in this package return one element.
	Extremal(p P, dims int) ([]E, error)

	// ToElement converts a projection with all dimensions decided.
	ToElement(p P, dims int) (E, error)

	// Project restricts e to its first dims dimensions.
	Project(e E, dims int) (P, error)

	// Equal compares the first dims dimensions of p and q.
	Equal(p, q P, dims int) (bool, error)
}
