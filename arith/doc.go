// SPDX-License-Identifier: MIT

// Package arith resolves the arithmetic operator set used by generic matrix code.
//
// Go generics cannot express "T supports +, -, *, /" for an arbitrary T, so the
// matrix package asks arith for an *Ops[T] once and keeps it for the lifetime of
// the matrix. Four sources are tried, in order:
//
//   - an operator table installed explicitly with Register;
//   - the built-in numeric kinds (integers, floats, complex), through the
//     compile-time Scalar constraint (see Numeric);
//   - element types implementing Field[T] (rationals, fixed-point, intervals);
//   - named types whose underlying kind is numeric (type Meters float64), via reflection.
//
// Anything else fails fast with ErrUnsupportedElementType, at construction time,
// instead of somewhere deep inside a kernel.
//
// Resolution happens at most once per concrete type and is cached process-wide;
// For is safe for concurrent use.
package arith
