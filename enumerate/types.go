// SPDX-License-Identifier: MIT

package enumerate

import (
	"context"
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

var (
	// ErrExhausted is returned by Cursor.Next when no element is left.
	ErrExhausted = errors.New("enumerate: sequence exhausted")

	// ErrNilOperator indicates a nil operator.
	ErrNilOperator = errors.New("enumerate: operator is nil")

	// ErrNilAdapter indicates a nil cover factory or projection adapter.
	ErrNilAdapter = errors.New("enumerate: adapter is nil")
)

// Operator maps an element to a fixed point of itself in one call.
type Operator[E any] func(E) E

// Skip reports whether an element is pruned. A nil Skip prunes nothing.
type Skip[E any] func(E) bool

// Option configures a search.
type Option func(*Options)

// Options holds search settings.
type Options struct {
	// Ctx is polled before each candidate; defaults to context.Background().
	Ctx context.Context

	// Limit caps the number of emitted elements; <= 0 means unlimited.
	Limit int

	// Strict omits op(start) itself from a cover search, leaving only the
	// fixed points strictly beyond it. Projection searches ignore it.
	Strict bool
}

// DefaultOptions returns Background context, no limit, op(start) included.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Limit: 0, Strict: false}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimit stops a cursor after limit elements. Values <= 0 mean unlimited.
func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = limit
	}
}

// WithStrict makes a cover search omit op(start) from its output.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// tracer traces with key 'rolelattice'.
func tracer() tracing.Trace {
	return tracing.Select("rolelattice")
}
