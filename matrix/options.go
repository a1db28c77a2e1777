// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for determinant and Cramer solving.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Panic only on invalid parameters (programmer error); data-dependent
//     failures (pivot row outside the matrix) are returned as errors.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotRow is the row used for the top-level Laplace expansion.
	DefaultPivotRow = 0

	// DefaultMaxOrder bounds the order accepted by cofactor expansion. The
	// expansion does O(n!) work and recurses n levels deep; 10! ≈ 3.6e6 minors.
	DefaultMaxOrder = 10

	// DefaultAllowSingular keeps SolveCramer strict: a zero determinant is
	// reported as ErrSingular instead of dividing by zero.
	DefaultAllowSingular = false
)

const (
	panicPivotRowNegative = "matrix: WithPivotRow: row must be non-negative"
	panicMaxOrderInvalid  = "matrix: WithMaxOrder: order must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; build it
// with NewOptions or pass Option values directly to the operations.
type Options struct {
	pivotRow      int
	maxOrder      int
	allowSingular bool
}

// defaultOptions returns the zero-configuration behavior.
func defaultOptions() Options {
	return Options{
		pivotRow:      DefaultPivotRow,
		maxOrder:      DefaultMaxOrder,
		allowSingular: DefaultAllowSingular,
	}
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// PivotRow reports the configured expansion row.
func (o Options) PivotRow() int { return o.pivotRow }

// MaxOrder reports the configured cofactor expansion limit.
func (o Options) MaxOrder() int { return o.maxOrder }

// AllowSingular reports whether SolveCramer divides by a zero determinant.
func (o Options) AllowSingular() bool { return o.allowSingular }

// gatherOptions applies opts in order over the defaults; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithPivotRow selects the row for the top-level cofactor expansion.
// Any row gives the same determinant; it only changes which minors are built.
// Panics if row < 0. A row beyond the matrix is reported by Determinant.
func WithPivotRow(row int) Option {
	if row < 0 {
		panic(panicPivotRowNegative)
	}

	return func(o *Options) { o.pivotRow = row }
}

// WithMaxOrder overrides DefaultMaxOrder. Panics if order < 1.
func WithMaxOrder(order int) Option {
	if order < 1 {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = order }
}

// WithAllowSingular lets SolveCramer divide by a zero determinant and return
// whatever the element type's division yields (±Inf/NaN for floats).
// Integer element types are always checked: Go integer division by zero panics.
func WithAllowSingular(allow bool) Option {
	return func(o *Options) { o.allowSingular = allow }
}
