// SPDX-License-Identifier: MIT

// Package arith - reflective operator sets for named numeric types.
//
// A named type such as `type Meters float64` satisfies Scalar, but code holding
// only `T any` cannot hand it to Numeric. These operators go through
// reflect.Value; they are slower than the native set and are used only when
// nothing faster applies.

package arith

import (
	"reflect"
)

// numericClass groups reflect kinds by the accessor pair that reads and writes them.
type numericClass uint8

const (
	classNone numericClass = iota
	classInt
	classUint
	classFloat
	classComplex
)

func classOf(k reflect.Kind) numericClass {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.Complex64, reflect.Complex128:
		return classComplex
	default:
		return classNone
	}
}

// reflectOps builds the operator set for a named numeric type, or returns
// ErrUnsupportedElementType when T's kind is not numeric.
func reflectOps[T any](rt reflect.Type) (*Ops[T], error) {
	class := classOf(rt.Kind())
	if class == classNone {
		return nil, ErrUnsupportedElementType
	}

	var binary func(op byte) func(a, b T) T
	var isZero func(a T) bool
	kind := KindReflect

	switch class {
	case classInt:
		binary = func(op byte) func(a, b T) T {
			return func(a, b T) T {
				x, y := reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int()
				var out T
				reflect.ValueOf(&out).Elem().SetInt(intOp(op, x, y))
				return out
			}
		}
		isZero = func(a T) bool { return reflect.ValueOf(a).Int() == 0 }
	case classUint:
		binary = func(op byte) func(a, b T) T {
			return func(a, b T) T {
				x, y := reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint()
				var out T
				reflect.ValueOf(&out).Elem().SetUint(uintOp(op, x, y))
				return out
			}
		}
		isZero = func(a T) bool { return reflect.ValueOf(a).Uint() == 0 }
	case classFloat:
		binary = func(op byte) func(a, b T) T {
			return func(a, b T) T {
				x, y := reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float()
				var out T
				reflect.ValueOf(&out).Elem().SetFloat(floatOp(op, x, y))
				return out
			}
		}
		isZero = func(a T) bool { return reflect.ValueOf(a).Float() == 0 }
	case classComplex:
		binary = func(op byte) func(a, b T) T {
			return func(a, b T) T {
				x, y := reflect.ValueOf(a).Complex(), reflect.ValueOf(b).Complex()
				var out T
				reflect.ValueOf(&out).Elem().SetComplex(complexOp(op, x, y))
				return out
			}
		}
		isZero = func(a T) bool { return reflect.ValueOf(a).Complex() == 0 }
	}

	magnitudeKind, formatKind := KindFloat, KindFloat
	switch class {
	case classComplex:
		magnitudeKind, formatKind = KindComplex, KindComplex
	case classInt, classUint:
		formatKind = KindInteger
	}
	abs, absSq := reflectMagnitude[T](magnitudeKind)

	sub := binary('-')
	return &Ops[T]{
		add:    binary('+'),
		sub:    sub,
		mul:    binary('*'),
		div:    binary('/'),
		neg:    func(a T) T { return sub(zeroOf[T](), a) },
		isZero: isZero,
		equal:  func(a, b T) bool { return reflect.ValueOf(a).Equal(reflect.ValueOf(b)) },
		abs:    abs,
		absSq:  absSq,
		format: formatterOf[T](formatKind),
		kind:   kind,
	}, nil
}

func zeroOf[T any]() (z T) { return }

func intOp(op byte, x, y int64) int64 {
	switch op {
	case '+':
		return x + y
	case '-':
		return x - y
	case '*':
		return x * y
	default:
		return x / y
	}
}

func uintOp(op byte, x, y uint64) uint64 {
	switch op {
	case '+':
		return x + y
	case '-':
		return x - y
	case '*':
		return x * y
	default:
		return x / y
	}
}

func floatOp(op byte, x, y float64) float64 {
	switch op {
	case '+':
		return x + y
	case '-':
		return x - y
	case '*':
		return x * y
	default:
		return x / y
	}
}

func complexOp(op byte, x, y complex128) complex128 {
	switch op {
	case '+':
		return x + y
	case '-':
		return x - y
	case '*':
		return x * y
	default:
		return x / y
	}
}
