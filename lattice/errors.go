// SPDX-License-Identifier: MIT

package lattice

import "errors"

// Every message is prefixed with "lattice: " so callers can match with
// errors.Is after wrapping.
var (
	// ErrBadSize is returned when a negative domain size is requested.
	ErrBadSize = errors.New("lattice: invalid domain size")

	// ErrOutOfRange indicates that an element index is outside [0, n).
	ErrOutOfRange = errors.New("lattice: index out of range")

	// ErrSizeMismatch indicates that two operands live on different domains.
	ErrSizeMismatch = errors.New("lattice: domain size mismatch")

	// ErrNotPreorder indicates that a relation offered as a ranking is not
	// reflexive and transitive.
	ErrNotPreorder = errors.New("lattice: relation is not a preorder")
)
