// SPDX-License-Identifier: MIT

package enumerate

import "github.com/katalvlaran/rolelattice/cover"

// coverState is the position of the cover search state machine.
type coverState int

const (
	stateStart     coverState = iota // apply op to the start element
	stateAdvance                     // pull the next cover of the top level
	stateDescend                     // push the accepted candidate
	stateBacktrack                   // pop an exhausted level
	stateExhausted                   // nothing left
)

// coverLevel is one fixed point on the current path together with its
// cover adapter and the cover last taken from it. The (covers, ref) pairs
// of all levels form the record of what earlier branches already produced.
type coverLevel[E any] struct {
	elem   E
	covers cover.Adapter[E]
	ref    E
	hasRef bool
}

// coverSearch walks the fixed points reachable through covers.
type coverSearch[E any] struct {
	op        Operator[E]
	skip      Skip[E]
	factory   cover.Factory[E]
	start     E
	strict    bool
	env       *searchEnv
	stack     []coverLevel[E]
	state     coverState
	candidate E
}

// Covers returns the sequence of fixed points of op reachable from
// op(start) through the covers produced by factory, each exactly once.
// op(start) is emitted first unless WithStrict is given. Skipped elements
// are neither emitted nor expanded; skip may be nil.
//
// factory decides the direction: lower covers for interiors, upper covers
// for closures.
//
// Complexity: per emitted element O(depth·q) for the duplicate test, where
// q is the cost of DescendsFromEarlier, plus one op call per cover visited.
func Covers[E any](op Operator[E], start E, factory cover.Factory[E], skip Skip[E], opts ...Option) *Sequence[E] {
	seq := &Sequence[E]{opts: buildOptions(opts)}
	switch {
	case op == nil:
		seq.err = ErrNilOperator
	case factory == nil:
		seq.err = ErrNilAdapter
	}
	seq.newSearch = func(env *searchEnv) stepper[E] {
		return &coverSearch[E]{
			op:      op,
			skip:    skip,
			factory: factory,
			start:   start,
			strict:  seq.opts.Strict,
			env:     env,
			state:   stateStart,
		}
	}

	return seq
}

func (s *coverSearch[E]) step() (E, bool, error) {
	var zero E
	for {
		switch s.state {
		case stateStart:
			if s.env.cancelled() {
				s.state = stateExhausted
				continue
			}
			x := s.op(s.start)
			if s.skip != nil && s.skip(x) {
				s.state = stateExhausted
				continue
			}
			tracer().Debugf("enumerate: cover search started")
			s.candidate = x
			s.state = stateDescend

		case stateAdvance:
			top := &s.stack[len(s.stack)-1]
			if !top.covers.HasNext() {
				s.state = stateBacktrack
				continue
			}
			if s.env.cancelled() {
				s.state = stateExhausted
				continue
			}
			c := top.covers.Next()
			top.ref, top.hasRef = c, true
			y := s.op(c)
			if s.reachedEarlier(y) {
				continue
			}
			if s.skip != nil && s.skip(y) {
				continue
			}
			s.candidate = y
			s.state = stateDescend

		case stateDescend:
			y := s.candidate
			s.candidate = zero
			s.stack = append(s.stack, coverLevel[E]{elem: y, covers: s.factory(y)})
			s.state = stateAdvance
			if s.strict && len(s.stack) == 1 {
				continue
			}

			return y, true, nil

		case stateBacktrack:
			s.stack[len(s.stack)-1] = coverLevel[E]{}
			s.stack = s.stack[:len(s.stack)-1]
			if len(s.stack) == 0 {
				s.state = stateExhausted
				continue
			}
			s.state = stateAdvance

		default: // stateExhausted
			s.stack = nil

			return zero, false, nil
		}
	}
}

// reachedEarlier reports whether y lies beyond a cover that some level on
// the path produced before its current one. Those covers were expanded (or
// pruned) on earlier branches, which already cover y.
func (s *coverSearch[E]) reachedEarlier(y E) bool {
	for i := range s.stack {
		l := &s.stack[i]
		if l.hasRef && l.covers.DescendsFromEarlier(y, l.ref) {
			return true
		}
	}

	return false
}
