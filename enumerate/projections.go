// SPDX-License-Identifier: MIT

package enumerate

import (
	"fmt"

	"github.com/katalvlaran/rolelattice/projection"
)

// projFrame is one level of the backtracking stack: a projection with dims
// decided dimensions and the extensions still to try.
type projFrame[P any] struct {
	proj P
	dims int
	exts []P
	next int
	init bool // exts computed
}

// projSearch walks projections depth-first, one dimension per level.
type projSearch[E, P any] struct {
	op      Operator[E]
	skip    Skip[E]
	adapter projection.Adapter[E, P]
	initial P
	decided int
	total   int
	env     *searchEnv
	stack   []projFrame[P]
	started bool
	done    bool
}

// Projections returns the sequence of fixed points of op whose first
// decided dimensions agree with initial, each exactly once. The adapter's
// completion must match op: minimal completions for closures, maximal for
// interiors. Pass adapter.Empty() and 0 to enumerate all fixed points.
//
// An extension at depth d survives only if op applied to its extremal
// completion projects back onto it; that single op call decides whether any
// fixed point carries the extension. Skip is tested on that fixed point and
// prunes the extension.
//
// Complexity: at most one op call and one Project per candidate extension.
func Projections[E, P any](
	op Operator[E],
	adapter projection.Adapter[E, P],
	initial P,
	decided int,
	skip Skip[E],
	opts ...Option,
) *Sequence[E] {
	seq := &Sequence[E]{opts: buildOptions(opts)}
	switch {
	case op == nil:
		seq.err = ErrNilOperator
	case adapter == nil:
		seq.err = ErrNilAdapter
	case decided < 0 || decided > adapter.Dimensions():
		seq.err = fmt.Errorf("enumerate: initial projection with %d of %d dimensions: %w",
			decided, adapter.Dimensions(), projection.ErrDimensionMismatch)
	}
	seq.newSearch = func(env *searchEnv) stepper[E] {
		return &projSearch[E, P]{
			op:      op,
			skip:    skip,
			adapter: adapter,
			initial: initial,
			decided: decided,
			total:   adapter.Dimensions(),
			env:     env,
		}
	}

	return seq
}

func (s *projSearch[E, P]) step() (E, bool, error) {
	var zero E
	if s.done {
		return zero, false, nil
	}
	if !s.started {
		s.started = true
		tracer().Debugf("enumerate: projection search over %d dimensions started", s.total)
		if s.env.cancelled() {
			return s.stop()
		}
		if s.decided == s.total {
			e, ok, err := s.leaf(s.initial)
			if err != nil || !ok {
				s.done = true

				return zero, false, err
			}
			s.done = true

			return e, true, nil
		}
		ok, err := s.viable(s.initial, s.decided)
		if err != nil {
			s.done = true

			return zero, false, err
		}
		if !ok {
			return s.stop()
		}
		s.stack = append(s.stack, projFrame[P]{proj: s.initial, dims: s.decided})
	}

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if !top.init {
			exts, err := s.adapter.Extend(top.proj, top.dims)
			if err != nil {
				s.done = true

				return zero, false, err
			}
			top.exts, top.init = exts, true
		}
		if top.next >= len(top.exts) {
			s.stack[len(s.stack)-1] = projFrame[P]{}
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}
		if s.env.cancelled() {
			return s.stop()
		}
		ext := top.exts[top.next]
		top.next++
		d := top.dims + 1

		if d == s.total {
			e, ok, err := s.leaf(ext)
			if err != nil {
				s.done = true

				return zero, false, err
			}
			if ok {
				return e, true, nil
			}
			continue
		}

		ok, err := s.viable(ext, d)
		if err != nil {
			s.done = true

			return zero, false, err
		}
		if ok {
			s.stack = append(s.stack, projFrame[P]{proj: ext, dims: d})
		}
	}

	return s.stop()
}

// viable reports whether some fixed point carries the first d dimensions of
// p and is not skipped.
func (s *projSearch[E, P]) viable(p P, d int) (bool, error) {
	ext, err := s.adapter.Extremal(p, d)
	if err != nil {
		return false, err
	}
	for _, x := range ext {
		fx := s.op(x)
		back, err := s.adapter.Project(fx, d)
		if err != nil {
			return false, err
		}
		eq, err := s.adapter.Equal(back, p, d)
		if err != nil {
			return false, err
		}
		if eq && (s.skip == nil || !s.skip(fx)) {
			return true, nil
		}
	}

	return false, nil
}

// leaf converts a complete projection and keeps it if op fixes it.
func (s *projSearch[E, P]) leaf(p P) (E, bool, error) {
	var zero E
	e, err := s.adapter.ToElement(p, s.total)
	if err != nil {
		return zero, false, err
	}
	back, err := s.adapter.Project(s.op(e), s.total)
	if err != nil {
		return zero, false, err
	}
	eq, err := s.adapter.Equal(back, p, s.total)
	if err != nil {
		return zero, false, err
	}
	if !eq || (s.skip != nil && s.skip(e)) {
		return zero, false, nil
	}

	return e, true, nil
}

func (s *projSearch[E, P]) stop() (E, bool, error) {
	var zero E
	s.done = true
	s.stack = nil

	return zero, false, nil
}
