// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strings"
)

// Relation is a binary relation on the domain {0,…,n-1}.
// Cells are stored row-major: pair (i, j) lives at index i*n+j.
type Relation struct {
	n     int    // domain size
	cells []bool // n*n membership flags, never mutated after construction
}

// NewRelation returns the empty relation on a domain of size n.
func NewRelation(n int) (Relation, error) {
	if n < 0 {
		return Relation{}, fmt.Errorf("NewRelation(%d): %w", n, ErrBadSize)
	}

	return Relation{n: n, cells: make([]bool, n*n)}, nil
}

// RelationFromPairs returns the relation on {0,…,n-1} holding exactly pairs.
func RelationFromPairs(n int, pairs ...[2]int) (Relation, error) {
	r, err := NewRelation(n)
	if err != nil {
		return Relation{}, err
	}
	for _, p := range pairs {
		if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
			return Relation{}, fmt.Errorf("RelationFromPairs: pair %v: %w", p, ErrOutOfRange)
		}
		r.cells[p[0]*n+p[1]] = true
	}

	return r, nil
}

// RelationFromCells wraps a row-major cell slice of length n*n.
// The slice is copied.
func RelationFromCells(n int, cells []bool) (Relation, error) {
	if n < 0 {
		return Relation{}, fmt.Errorf("RelationFromCells(%d): %w", n, ErrBadSize)
	}
	if len(cells) != n*n {
		return Relation{}, fmt.Errorf("RelationFromCells: %d cells for n=%d: %w", len(cells), n, ErrSizeMismatch)
	}
	c := make([]bool, len(cells))
	copy(c, cells)

	return Relation{n: n, cells: c}, nil
}

// UniversalRelation returns the relation holding every pair of the domain.
// A negative n yields the empty domain.
func UniversalRelation(n int) Relation {
	if n < 0 {
		n = 0
	}
	c := make([]bool, n*n)
	for i := range c {
		c[i] = true
	}

	return Relation{n: n, cells: c}
}

// IdentityRelation returns {(i,i)} on a domain of size n.
func IdentityRelation(n int) Relation {
	if n < 0 {
		n = 0
	}
	c := make([]bool, n*n)
	for i := 0; i < n; i++ {
		c[i*n+i] = true
	}

	return Relation{n: n, cells: c}
}

// Size returns the domain size n.
func (r Relation) Size() int { return r.n }

// Has reports whether (i, j) is in r. It panics for indices outside the domain.
func (r Relation) Has(i, j int) bool { return r.cells[i*r.n+j] }

// Cell reports membership of the pair at row-major index k.
func (r Relation) Cell(k int) bool { return r.cells[k] }

// With returns a copy of r with (i, j) set to v.
func (r Relation) With(i, j int, v bool) Relation {
	c := make([]bool, len(r.cells))
	copy(c, r.cells)
	c[i*r.n+j] = v

	return Relation{n: r.n, cells: c}
}

// Cells returns a copy of the row-major cell slice.
func (r Relation) Cells() []bool {
	c := make([]bool, len(r.cells))
	copy(c, r.cells)

	return c
}

// Leq reports whether r ⊆ o. Relations over different domains are incomparable.
func (r Relation) Leq(o Relation) bool {
	if r.n != o.n {
		return false
	}
	for k, v := range r.cells {
		if v && !o.cells[k] {
			return false
		}
	}

	return true
}

// Equal reports structural equality.
func (r Relation) Equal(o Relation) bool {
	if r.n != o.n {
		return false
	}
	for k, v := range r.cells {
		if v != o.cells[k] {
			return false
		}
	}

	return true
}

// Count returns the number of pairs in r.
func (r Relation) Count() int {
	cnt := 0
	for _, v := range r.cells {
		if v {
			cnt++
		}
	}

	return cnt
}

// Pairs lists the pairs of r in row-major order.
func (r Relation) Pairs() [][2]int {
	out := make([][2]int, 0, r.Count())
	for k, v := range r.cells {
		if v {
			out = append(out, [2]int{k / r.n, k % r.n})
		}
	}

	return out
}

// Union returns r ∪ o.
func (r Relation) Union(o Relation) (Relation, error) {
	if r.n != o.n {
		return Relation{}, fmt.Errorf("Union: %d vs %d: %w", r.n, o.n, ErrSizeMismatch)
	}
	c := make([]bool, len(r.cells))
	for k := range c {
		c[k] = r.cells[k] || o.cells[k]
	}

	return Relation{n: r.n, cells: c}, nil
}

// Transpose returns the converse relation {(j,i) : (i,j) ∈ r}.
func (r Relation) Transpose() Relation {
	c := make([]bool, len(r.cells))
	for i := 0; i < r.n; i++ {
		for j := 0; j < r.n; j++ {
			c[j*r.n+i] = r.cells[i*r.n+j]
		}
	}

	return Relation{n: r.n, cells: c}
}

// TransitiveClosure returns the smallest transitive relation containing r.
func (r Relation) TransitiveClosure() Relation {
	c := make([]bool, len(r.cells))
	copy(c, r.cells)
	warshall(r.n, c)

	return Relation{n: r.n, cells: c}
}

// ReflexiveTransitiveClosure returns the smallest preorder containing r.
func (r Relation) ReflexiveTransitiveClosure() Relation {
	c := make([]bool, len(r.cells))
	copy(c, r.cells)
	for i := 0; i < r.n; i++ {
		c[i*r.n+i] = true
	}
	warshall(r.n, c)

	return Relation{n: r.n, cells: c}
}

// IsReflexive reports whether every (i,i) is in r.
func (r Relation) IsReflexive() bool {
	for i := 0; i < r.n; i++ {
		if !r.cells[i*r.n+i] {
			return false
		}
	}

	return true
}

// IsTransitive reports whether r is closed under composition.
func (r Relation) IsTransitive() bool {
	n := r.n
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			if !r.cells[i*n+k] {
				continue
			}
			for j := 0; j < n; j++ {
				if r.cells[k*n+j] && !r.cells[i*n+j] {
					return false
				}
			}
		}
	}

	return true
}

// String renders r as rows of 0/1 separated by '/'.
func (r Relation) String() string {
	var b strings.Builder
	for i := 0; i < r.n; i++ {
		if i > 0 {
			b.WriteByte('/')
		}
		for j := 0; j < r.n; j++ {
			if r.cells[i*r.n+j] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}

	return b.String()
}

// warshall closes c (row-major, n×n) under composition in place.
func warshall(n int, c []bool) {
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !c[i*n+k] {
				continue
			}
			for j := 0; j < n; j++ {
				if c[k*n+j] {
					c[i*n+j] = true
				}
			}
		}
	}
}
