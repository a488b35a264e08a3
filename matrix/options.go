// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Rendering is used both for human inspection and for feeding external tools
//     (triangulation) with plain-text coordinate lists, so the defaults favour a
//     stable, whitespace-delimited layout without brackets.
package matrix

import "strings"

// ---------- Defaults (single source of truth) ----------

// Rendering policy.
const (
	// DefaultWidth is the minimum cell width; cells are right-aligned.
	DefaultWidth = 10

	// DefaultPrecision is the number of significant digits for float/complex cells.
	// -1 selects the shortest representation that round-trips.
	DefaultPrecision = 6

	// DefaultDelimiter separates cells within a row.
	DefaultDelimiter = " "

	// DefaultBrackets wraps every row in "[" ... "]" when true.
	DefaultBrackets = false

	// DefaultPointsHeader makes WritePoints emit the "dimension\ncount\n" header.
	DefaultPointsHeader = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWidthInvalid     = "matrix: WithWidth: width must be >= 0"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
	panicDelimiterInvalid = "matrix: WithDelimiter: delimiter must not contain a line break"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	width     int    // >= 0; DefaultWidth
	precision int    // >= -1; DefaultPrecision
	delimiter string // no line breaks; DefaultDelimiter
	brackets  bool   // DefaultBrackets
	header    bool   // DefaultPointsHeader (WritePoints only)
}

// ---------- Constructors (WithX) ----------

// WithWidth sets the minimum cell width; 0 disables padding.
// Implementation:
//   - Stage 1: validate width ≥ 0.
//   - Stage 2: return a setter that writes width into Options.
//
// Errors:
//   - Panics with a stable message when width is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithWidth(width int) Option {
	if width < 0 {
		panic(panicWidthInvalid)
	}

	return func(o *Options) { o.width = width }
}

// WithPrecision sets the significant digits for float/complex cells
// (-1: shortest round-trip form). Integer and Field elements ignore it.
// Complexity: O(1).
func WithPrecision(precision int) Option {
	if precision < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = precision }
}

// WithDelimiter sets the separator placed between cells of a row.
// Complexity: O(1).
//
// Notes:
//   - Line breaks are rejected: rows are always newline-terminated and a
//     delimiter containing one would make the output unparseable.
func WithDelimiter(delimiter string) Option {
	if strings.ContainsAny(delimiter, "\r\n") {
		panic(panicDelimiterInvalid)
	}

	return func(o *Options) { o.delimiter = delimiter }
}

// WithBrackets wraps every row in "[" ... "]".
// Complexity: O(1).
func WithBrackets() Option {
	return func(o *Options) { o.brackets = true }
}

// WithoutBrackets disables row brackets (default).
// Complexity: O(1).
func WithoutBrackets() Option {
	return func(o *Options) { o.brackets = false }
}

// WithoutPointsHeader makes WritePoints emit only the coordinate rows.
// Complexity: O(1).
func WithoutPointsHeader() Option {
	return func(o *Options) { o.header = false }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Complexity: O(k) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		width:     DefaultWidth,
		precision: DefaultPrecision,
		delimiter: DefaultDelimiter,
		brackets:  DefaultBrackets,
		header:    DefaultPointsHeader,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//   - Stage 3: finalizeOptions.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
//
// Notes:
//   - An empty delimiter with zero width would glue cells together; fall back
//     to a single space so the output stays tokenizable.
func finalizeOptions(o *Options) {
	if o.delimiter == "" && o.width == 0 {
		o.delimiter = DefaultDelimiter
	}
}

// Width reports the resolved cell width.
func (o Options) Width() int { return o.width }

// Precision reports the resolved precision.
func (o Options) Precision() int { return o.precision }

// Delimiter reports the resolved cell delimiter.
func (o Options) Delimiter() string { return o.delimiter }

// Brackets reports whether rows are bracketed.
func (o Options) Brackets() bool { return o.brackets }
