// SPDX-License-Identifier: MIT

package solve

import "math"

// Defaults for the accuracy gates.
const (
	// DefaultConditionLimit matches gonum's mat.ConditionTolerance.
	DefaultConditionLimit = 1e16

	// DefaultResidualTolerance bounds ‖A·x − b‖∞ / max(1, ‖b‖∞).
	DefaultResidualTolerance = 1e-8
)

const (
	panicConditionLimit = "solve: condition limit must be ≥ 1"
	panicResidualTol    = "solve: residual tolerance must be > 0"
)

// Option customizes a solve call.
type Option func(*Options)

// Options holds the resolved accuracy gates.
type Options struct {
	condLimit   float64
	residualTol float64
	residual    bool
}

// WithConditionLimit sets the largest condition estimate the dense engine
// accepts before returning ErrIllConditioned.
// Panics if limit < 1 or NaN.
func WithConditionLimit(limit float64) Option {
	if math.IsNaN(limit) || limit < 1 {
		panic(panicConditionLimit)
	}

	return func(o *Options) { o.condLimit = limit }
}

// WithResidualTolerance sets the relative residual bound checked after a
// solve and enables the check for both engines.
// Panics if tol ≤ 0 or NaN.
func WithResidualTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol <= 0 {
		panic(panicResidualTol)
	}

	return func(o *Options) {
		o.residualTol = tol
		o.residual = true
	}
}

// WithoutResidualCheck skips the residual check (the sparse engine runs it by default).
func WithoutResidualCheck() Option {
	return func(o *Options) { o.residual = false }
}

// gatherOptions applies setters over the defaults; residualDefault is the
// engine's own default for the residual check.
func gatherOptions(residualDefault bool, opts ...Option) Options {
	o := Options{
		condLimit:   DefaultConditionLimit,
		residualTol: DefaultResidualTolerance,
		residual:    residualDefault,
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
