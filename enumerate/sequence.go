// SPDX-License-Identifier: MIT

package enumerate

import (
	"context"
	"iter"
)

// stepper drives one search. step returns the next element, or ok=false when
// the search is over. Implementations poll env before each candidate.
type stepper[E any] interface {
	step() (e E, ok bool, err error)
}

// searchEnv is the per-traversal cancellation state.
type searchEnv struct {
	ctx         context.Context
	interrupted bool
}

// cancelled polls the context and latches the interruption.
func (s *searchEnv) cancelled() bool {
	if s.interrupted {
		return true
	}
	select {
	case <-s.ctx.Done():
		s.interrupted = true
		tracer().Debugf("enumerate: search interrupted: %v", s.ctx.Err())

		return true
	default:
		return false
	}
}

// Sequence is a restartable, lazy sequence of fixed points. Every Cursor
// (and every range over All) owns an independent search.
type Sequence[E any] struct {
	newSearch func(env *searchEnv) stepper[E]
	opts      Options
	err       error // construction error, reported by every cursor
}

// Cursor starts a fresh search.
func (s *Sequence[E]) Cursor() *Cursor[E] {
	c := &Cursor[E]{
		env:   &searchEnv{ctx: s.opts.Ctx},
		limit: s.opts.Limit,
	}
	if s.err != nil {
		c.err = s.err
		c.done = true

		return c
	}
	c.st = s.newSearch(c.env)

	return c
}

// All ranges over a fresh search. An adapter error ends the range and is
// traced; use Results, Cursor or Collect to receive it.
func (s *Sequence[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		c := s.Cursor()
		for c.HasNext() {
			e, _ := c.Next()
			if !yield(e) {
				return
			}
		}
		if err := c.Err(); err != nil {
			tracer().Errorf("enumerate: search ended after %d elements: %v", c.Emitted(), err)
		}
	}
}

// Results ranges over a fresh search, pairing every element with a nil
// error. If an adapter error ends the search, one final pair carries the
// zero element and that error.
func (s *Sequence[E]) Results() iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		c := s.Cursor()
		for c.HasNext() {
			e, _ := c.Next()
			if !yield(e, nil) {
				return
			}
		}
		if err := c.Err(); err != nil {
			var zero E
			yield(zero, err)
		}
	}
}

// Collect drains a fresh search into a slice. It returns the elements found
// before the first adapter error along with that error. An interrupted
// search returns what it produced and no error.
func (s *Sequence[E]) Collect() ([]E, error) {
	c := s.Cursor()
	var out []E
	for c.HasNext() {
		e, _ := c.Next()
		out = append(out, e)
	}

	return out, c.Err()
}

// Cursor pulls elements from one search.
type Cursor[E any] struct {
	st      stepper[E]
	env     *searchEnv
	limit   int
	emitted int
	pending E
	loaded  bool
	done    bool
	err     error
}

// HasNext reports whether Next will return an element. It computes ahead by
// one element; it returns false once the search is exhausted, interrupted,
// limited or failed.
func (c *Cursor[E]) HasNext() bool {
	if c.loaded {
		return true
	}
	if c.done {
		return false
	}
	if c.limit > 0 && c.emitted >= c.limit {
		c.finish()

		return false
	}
	e, ok, err := c.st.step()
	if err != nil {
		c.err = err
		c.finish()

		return false
	}
	if !ok {
		c.finish()

		return false
	}
	c.pending, c.loaded = e, true

	return true
}

// Next returns the next element, or ErrExhausted.
func (c *Cursor[E]) Next() (E, error) {
	if !c.HasNext() {
		var zero E

		return zero, ErrExhausted
	}
	e := c.pending
	var zero E
	c.pending, c.loaded = zero, false
	c.emitted++

	return e, nil
}

// Err returns the error that ended the search, if any.
func (c *Cursor[E]) Err() error { return c.err }

// Interrupted reports whether the search stopped on cancellation.
func (c *Cursor[E]) Interrupted() bool { return c.env.interrupted }

// Emitted returns the number of elements returned by Next so far.
func (c *Cursor[E]) Emitted() int { return c.emitted }

func (c *Cursor[E]) finish() {
	if !c.done {
		tracer().Debugf("enumerate: search finished after %d elements", c.emitted)
	}
	c.done = true
	c.st = nil
}
