// SPDX-License-Identifier: MIT

package roles

import (
	"github.com/katalvlaran/rolelattice/cover"
	"github.com/katalvlaran/rolelattice/enumerate"
	"github.com/katalvlaran/rolelattice/lattice"
)

// Direction selects which way the search moves from the start.
type Direction int

const (
	// Restriction searches below the start through lower covers; use interiors.
	Restriction Direction = iota
	// Extension searches above the start through upper covers; use closures.
	Extension
)

// String names the direction.
func (d Direction) String() string {
	if d == Extension {
		return "extension"
	}

	return "restriction"
}

// Structure is one lattice of role structures with its cover generators.
type Structure[E any] struct {
	name  string
	lower cover.Factory[E]
	upper cover.Factory[E]
}

// Name identifies the structure.
func (s Structure[E]) Name() string { return s.name }

// Covers returns the cover factory for dir.
func (s Structure[E]) Covers(dir Direction) cover.Factory[E] {
	if dir == Extension {
		return s.upper
	}

	return s.lower
}

// The three lattices of role structures.
var (
	Relations = Structure[lattice.Relation]{
		name: "relation", lower: cover.RelationLower, upper: cover.RelationUpper,
	}
	Equivalences = Structure[lattice.Equivalence]{
		name: "equivalence", lower: cover.EquivalenceLower, upper: cover.EquivalenceUpper,
	}
	Rankings = Structure[lattice.Ranking]{
		name: "ranking", lower: cover.RankingLower, upper: cover.RankingUpper,
	}
)

// Stable enumerates every structure of s fixed by op that lies in direction
// dir from op(start), each exactly once, starting with op(start).
func Stable[E any](
	s Structure[E],
	dir Direction,
	op enumerate.Operator[E],
	start E,
	skip enumerate.Skip[E],
	opts ...enumerate.Option,
) *enumerate.Sequence[E] {
	tracer().Debugf("roles: stable %s structures under %s", s.name, dir)

	return enumerate.Covers(op, start, s.Covers(dir), skip, opts...)
}
