// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/rolelattice/enumerate"
	"github.com/katalvlaran/rolelattice/lattice"
	"github.com/katalvlaran/rolelattice/projection"
	"github.com/katalvlaran/rolelattice/roles"
)

// run enumerates the structures described by cfg and writes one per line.
// It returns the number of structures written.
func run(ctx context.Context, cfg Config, w io.Writer) (int, error) {
	net, err := cfg.network()
	if err != nil {
		return 0, err
	}
	dir, err := cfg.direction()
	if err != nil {
		return 0, err
	}
	opts := []enumerate.Option{enumerate.WithContext(ctx), enumerate.WithLimit(cfg.Limit)}
	n := net.Size()
	projections := cfg.Engine == "projections"

	switch cfg.Structure {
	case "relation":
		if dir == roles.Restriction {
			op := roles.RegularRelationInterior(net)
			if projections {
				a := projection.Relations(n, projection.Maximal)
				return emit(w, enumerate.Projections(op, a, a.Empty(), 0, nil, opts...))
			}
			return emit(w, roles.Stable(roles.Relations, dir, op, lattice.UniversalRelation(n), nil, opts...))
		}
		op := roles.TransitiveClosure()
		if projections {
			a := projection.Relations(n, projection.Minimal)
			return emit(w, enumerate.Projections(op, a, a.Empty(), 0, nil, opts...))
		}
		empty, _ := lattice.NewRelation(n)
		return emit(w, roles.Stable(roles.Relations, dir, op, empty, nil, opts...))

	case "equivalence":
		if dir == roles.Restriction {
			if projections {
				return 0, fmt.Errorf("equivalence restriction: %w", projection.ErrNoMaximalCompletion)
			}
			op := roles.RegularEquivalenceInterior(net)
			return emit(w, roles.Stable(roles.Equivalences, dir, op, lattice.IndiscreteEquivalence(n), nil, opts...))
		}
		op := roles.SuccessorCongruence(net)
		if projections {
			a := projection.Equivalences(n)
			return emit(w, enumerate.Projections(op, a, a.Empty(), 0, nil, opts...))
		}
		return emit(w, roles.Stable(roles.Equivalences, dir, op, lattice.DiscreteEquivalence(n), nil, opts...))

	case "ranking":
		if dir == roles.Restriction {
			if projections {
				return 0, fmt.Errorf("ranking restriction: %w", projection.ErrNoMaximalCompletion)
			}
			op := roles.RegularRankingInterior(net)
			return emit(w, roles.Stable(roles.Rankings, dir, op, lattice.CompleteRanking(n), nil, opts...))
		}
		op := roles.SuccessorRankingClosure(net)
		if projections {
			a := projection.Rankings(n)
			return emit(w, enumerate.Projections(op, a, a.Empty(), 0, nil, opts...))
		}
		return emit(w, roles.Stable(roles.Rankings, dir, op, lattice.IdentityRanking(n), nil, opts...))
	}

	return 0, fmt.Errorf("%q: %w", cfg.Structure, ErrUnknownStructure)
}

// emit drains seq into w.
func emit[E fmt.Stringer](w io.Writer, seq *enumerate.Sequence[E]) (int, error) {
	c := seq.Cursor()
	for c.HasNext() {
		e, err := c.Next()
		if err != nil {
			return c.Emitted(), err
		}
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return c.Emitted(), err
		}
	}
	if c.Interrupted() {
		tracer().Infof("rolefix: interrupted after %d structures", c.Emitted())
	}

	return c.Emitted(), c.Err()
}
