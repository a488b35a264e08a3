// SPDX-License-Identifier: MIT

// Package arith - the immutable per-type operator set.
//
// Purpose:
//   - Give generic kernels one value (*Ops[T]) that carries every operation they need.
//   - Keep the set immutable after construction: fields are unexported and only
//     reachable through methods, so a cached set can be shared by any number of matrices.

package arith

import (
	"fmt"
	"math"
	"math/cmplx"
	"reflect"
)

// Kind reports where an operator set came from.
type Kind uint8

// Operator set origins.
const (
	KindUnknown Kind = iota // zero value; never returned by For
	KindInteger             // signed or unsigned integer (compile-time)
	KindFloat               // float32 / float64 (compile-time)
	KindComplex             // complex64 / complex128 (compile-time)
	KindField               // element implements Field[T]
	KindReflect             // named numeric type resolved through reflection
	KindCustom              // installed with Register
)

// String returns a short name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindField:
		return "field"
	case KindReflect:
		return "reflect"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Integer is the set of built-in integer kinds (including named types over them).
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of built-in complex kinds.
type Complex interface {
	~complex64 | ~complex128
}

// Scalar is the compile-time bound for element types with native operators.
// Matrices over a Scalar type can never fail resolution.
type Scalar interface {
	Integer | Float | Complex
}

// Ops is the resolved operator set for T.
// A nil *Ops is never returned together with a nil error.
type Ops[T any] struct {
	add    func(a, b T) T
	sub    func(a, b T) T
	mul    func(a, b T) T
	div    func(a, b T) T
	neg    func(a T) T
	isZero func(a T) bool
	equal  func(a, b T) bool
	abs    func(a T) float64
	absSq  func(a T) float64
	format func(a T, prec int) string
	kind   Kind
}

// Kind reports the origin of the operator set.
func (o *Ops[T]) Kind() Kind { return o.kind }

// Zero returns the additive identity (the zero value of T).
func (o *Ops[T]) Zero() T {
	var z T
	return z
}

// Add returns a + b.
func (o *Ops[T]) Add(a, b T) T { return o.add(a, b) }

// Sub returns a - b.
func (o *Ops[T]) Sub(a, b T) T { return o.sub(a, b) }

// Mul returns a * b.
func (o *Ops[T]) Mul(a, b T) T { return o.mul(a, b) }

// Div returns a / b. Integer division by zero panics like the native operator;
// callers that accept user scalars must check IsZero first.
func (o *Ops[T]) Div(a, b T) T { return o.div(a, b) }

// Neg returns -a.
func (o *Ops[T]) Neg(a T) T { return o.neg(a) }

// Accumulate returns acc + a*b, the inner step of dot products and matrix products.
func (o *Ops[T]) Accumulate(acc, a, b T) T { return o.add(acc, o.mul(a, b)) }

// IsZero reports whether a equals the additive identity.
func (o *Ops[T]) IsZero(a T) bool { return o.isZero(a) }

// Equal reports exact equality.
func (o *Ops[T]) Equal(a, b T) bool { return o.equal(a, b) }

// Abs returns the magnitude |a| as float64 (modulus for complex values).
func (o *Ops[T]) Abs(a T) float64 { return o.abs(a) }

// AbsSq returns |a|² as float64; for complex values Re²+Im² without a sqrt.
func (o *Ops[T]) AbsSq(a T) float64 { return o.absSq(a) }

// Format renders a for text output. prec < 0 selects the shortest exact form.
func (o *Ops[T]) Format(a T, prec int) string { return o.format(a, prec) }

// Numeric builds the operator set for a built-in numeric kind using native operators.
// It never fails; the result is not cached (use For for the cached set).
//
// Complexity: O(1); every operator is O(1).
func Numeric[T Scalar]() *Ops[T] {
	kind := scalarKind[T]()
	abs, absSq := magnitudeOf[T](kind)

	return &Ops[T]{
		add:    func(a, b T) T { return a + b },
		sub:    func(a, b T) T { return a - b },
		mul:    func(a, b T) T { return a * b },
		div:    func(a, b T) T { return a / b },
		neg:    func(a T) T { return -a },
		isZero: func(a T) bool { return a == 0 },
		equal:  func(a, b T) bool { return a == b },
		abs:    abs,
		absSq:  absSq,
		format: formatterOf[T](kind),
		kind:   kind,
	}
}

// scalarKind classifies T by its underlying reflect.Kind.
func scalarKind[T Scalar]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Complex64, reflect.Complex128:
		return KindComplex
	default:
		return KindInteger
	}
}

// magnitudeOf returns |x| and |x|² for a Scalar kind.
// Exact built-in types take direct conversions; named types go through reflect.
func magnitudeOf[T Scalar](kind Kind) (func(T) float64, func(T) float64) {
	var zero T
	switch any(zero).(type) {
	case float64:
		return func(a T) float64 { return math.Abs(any(a).(float64)) },
			func(a T) float64 { return sq(any(a).(float64)) }
	case float32:
		return func(a T) float64 { return math.Abs(float64(any(a).(float32))) },
			func(a T) float64 { return sq(float64(any(a).(float32))) }
	case complex128:
		return func(a T) float64 { return cmplx.Abs(any(a).(complex128)) },
			func(a T) float64 { return csq(any(a).(complex128)) }
	case complex64:
		return func(a T) float64 { return cmplx.Abs(complex128(any(a).(complex64))) },
			func(a T) float64 { return csq(complex128(any(a).(complex64))) }
	case int:
		return func(a T) float64 { return math.Abs(float64(any(a).(int))) },
			func(a T) float64 { return sq(float64(any(a).(int))) }
	}

	// Remaining integer widths and named types.
	return reflectMagnitude[T](kind)
}

// reflectMagnitude builds |x| and |x|² through reflect for any numeric kind.
func reflectMagnitude[T any](kind Kind) (func(T) float64, func(T) float64) {
	toFloat := func(a T) float64 {
		rv := reflect.ValueOf(a)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return float64(rv.Uint())
		default:
			return rv.Float()
		}
	}
	if kind == KindComplex {
		return func(a T) float64 { return cmplx.Abs(reflect.ValueOf(a).Complex()) },
			func(a T) float64 { return csq(reflect.ValueOf(a).Complex()) }
	}

	return func(a T) float64 { return math.Abs(toFloat(a)) },
		func(a T) float64 { return sq(toFloat(a)) }
}

// sq rounds x·x before any caller adds it, so no fused multiply-add applies.
func sq(x float64) float64 { return float64(x * x) }

// csq is |c|² = Re²+Im².
func csq(c complex128) float64 { return real(c)*real(c) + imag(c)*imag(c) }

// formatterOf returns a renderer honoring a precision for float and complex kinds.
func formatterOf[T any](kind Kind) func(T, int) string {
	switch kind {
	case KindFloat, KindComplex:
		return func(a T, prec int) string {
			if prec < 0 {
				return fmt.Sprintf("%g", a)
			}
			return fmt.Sprintf("%.*g", prec, a)
		}
	default:
		return func(a T, _ int) string { return fmt.Sprint(a) }
	}
}
