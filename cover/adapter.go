// SPDX-License-Identifier: MIT

package cover

import "errors"

var (
	// ErrExhausted is the panic value of Next on an adapter with no covers left.
	ErrExhausted = errors.New("cover: no more covers")

	// ErrClassTooLarge is the panic value when a class is too large for mask-based splits.
	ErrClassTooLarge = errors.New("cover: class too large to split")
)

// maxSplitClass bounds class size for 64-bit split masks.
const maxSplitClass = 63

// Adapter generates the covers of one parent element, in a fixed order.
type Adapter[E any] interface {
	// HasNext reports whether another cover is available.
	HasNext() bool

	// Next returns the next cover as a fresh value. It panics with
	// ErrExhausted when HasNext is false.
	Next() E

	// DescendsFromEarlier reports whether candidate lies beyond some cover
	// produced strictly before reference, a cover produced by this adapter.
	DescendsFromEarlier(candidate, reference E) bool
}

// Factory builds the adapter for the covers of parent.
type Factory[E any] func(parent E) Adapter[E]
