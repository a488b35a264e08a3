// SPDX-License-Identifier: MIT

// Package arith - process-wide operator cache.
//
// Purpose:
//   - Resolve *Ops[T] at most once per concrete type and hand out the same pointer afterwards.
//   - Let callers install an explicit operator Table for exotic types before first use.
//
// Concurrency:
//   - The cache is a sync.Map of *entry keyed by reflect.Type. Each entry carries a
//     sync.Once, so concurrent first calls for one type run the resolver exactly once
//     and all observe the same result (success or ErrUnsupportedElementType).

package arith

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// entry is one cache slot; ops holds a *Ops[T] for the slot's T.
type entry struct {
	once sync.Once
	done atomic.Bool
	ops  any
	err  error
}

// registry maps reflect.Type -> *entry.
var registry sync.Map

// slot returns the cache entry for rt, inserting an empty one on first sight.
func slot(rt reflect.Type) *entry {
	if v, ok := registry.Load(rt); ok {
		return v.(*entry)
	}
	v, _ := registry.LoadOrStore(rt, &entry{})

	return v.(*entry)
}

// For returns the cached operator set for T, resolving it on first use.
//
// Implementation:
//   - Stage 1: fetch (or create) the cache slot for reflect.TypeFor[T]().
//   - Stage 2: run resolve[T] under the slot's sync.Once.
//   - Stage 3: return the stored set or the stored error.
//
// Errors:
//   - ErrUnsupportedElementType (wrapped with the type name) when T has no usable
//     operator surface. The failure is cached; later calls fail identically.
//
// Complexity:
//   - First call per type: O(1) plus resolver cost; afterwards one map load.
func For[T any]() (*Ops[T], error) {
	rt := reflect.TypeFor[T]()
	e := slot(rt)
	e.once.Do(func() {
		defer e.done.Store(true)
		ops, err := resolve[T](rt)
		if err != nil {
			e.err = fmt.Errorf("%v: %w", rt, err)
			return
		}
		e.ops = ops
	})
	if e.err != nil {
		return nil, e.err
	}

	return e.ops.(*Ops[T]), nil
}

// MustFor is like For but panics on failure. Intended for package-level variables.
func MustFor[T any]() *Ops[T] {
	ops, err := For[T]()
	if err != nil {
		panic(err)
	}

	return ops
}

// Resolved reports whether T already has a cache entry that finished resolution.
func Resolved[T any]() bool {
	v, ok := registry.Load(reflect.TypeFor[T]())
	if !ok {
		return false
	}

	return v.(*entry).done.Load()
}

// resolve picks the operator source for T (see package doc for the order).
func resolve[T any](rt reflect.Type) (*Ops[T], error) {
	var zero T
	switch any(zero).(type) {
	case int:
		return any(Numeric[int]()).(*Ops[T]), nil
	case int8:
		return any(Numeric[int8]()).(*Ops[T]), nil
	case int16:
		return any(Numeric[int16]()).(*Ops[T]), nil
	case int32:
		return any(Numeric[int32]()).(*Ops[T]), nil
	case int64:
		return any(Numeric[int64]()).(*Ops[T]), nil
	case uint:
		return any(Numeric[uint]()).(*Ops[T]), nil
	case uint8:
		return any(Numeric[uint8]()).(*Ops[T]), nil
	case uint16:
		return any(Numeric[uint16]()).(*Ops[T]), nil
	case uint32:
		return any(Numeric[uint32]()).(*Ops[T]), nil
	case uint64:
		return any(Numeric[uint64]()).(*Ops[T]), nil
	case uintptr:
		return any(Numeric[uintptr]()).(*Ops[T]), nil
	case float32:
		return any(Numeric[float32]()).(*Ops[T]), nil
	case float64:
		return any(Numeric[float64]()).(*Ops[T]), nil
	case complex64:
		return any(Numeric[complex64]()).(*Ops[T]), nil
	case complex128:
		return any(Numeric[complex128]()).(*Ops[T]), nil
	}

	// Interface element types (T = any, error, ...) have a nil zero value and no
	// operator surface of their own.
	if rt.Kind() == reflect.Interface {
		return nil, ErrUnsupportedElementType
	}
	if rt.Implements(reflect.TypeFor[Field[T]]()) {
		return fieldOps[T](), nil
	}

	return reflectOps[T](rt)
}

// Table is an explicit operator table for Register. Add, Sub, Mul, Neg and IsZero
// are required; the rest default as documented on each field. IsZero must hold
// for the zero value of T.
type Table[T any] struct {
	Add    func(a, b T) T
	Sub    func(a, b T) T
	Mul    func(a, b T) T
	Div    func(a, b T) T             // nil: Div panics with ErrUnsupportedElementType
	Neg    func(a T) T
	IsZero func(a T) bool
	Equal  func(a, b T) bool          // nil: IsZero(Sub(a, b))
	Abs    func(a T) float64          // nil: 0 for zero elements, 1 otherwise
	Format func(a T, prec int) string // nil: fmt.Sprint
}

// Register installs t as the operator set for T. It must run before the first
// For[T] call (typically from an init function).
//
// Errors:
//   - ErrIncompleteTable when a required operator is nil.
//   - ErrZeroNotIdentity when IsZero(zero value of T) is false.
//   - ErrAlreadyResolved when T already has a cache entry.
func Register[T any](t Table[T]) error {
	if t.Add == nil || t.Sub == nil || t.Mul == nil || t.Neg == nil || t.IsZero == nil {
		return ErrIncompleteTable
	}
	if !t.IsZero(zeroOf[T]()) {
		return fmt.Errorf("%v: %w", reflect.TypeFor[T](), ErrZeroNotIdentity)
	}
	ops := &Ops[T]{
		add:    t.Add,
		sub:    t.Sub,
		mul:    t.Mul,
		div:    t.Div,
		neg:    t.Neg,
		isZero: t.IsZero,
		equal:  t.Equal,
		abs:    t.Abs,
		format: t.Format,
		kind:   KindCustom,
	}
	if ops.div == nil {
		ops.div = func(a, b T) T { panic(fmt.Errorf("Div: %w", ErrUnsupportedElementType)) }
	}
	if ops.equal == nil {
		ops.equal = func(a, b T) bool { return t.IsZero(t.Sub(a, b)) }
	}
	if ops.abs == nil {
		ops.abs = func(a T) float64 {
			if t.IsZero(a) {
				return 0
			}
			return 1
		}
	}
	abs := ops.abs
	ops.absSq = func(a T) float64 { return sq(abs(a)) }
	if ops.format == nil {
		ops.format = formatterOf[T](KindCustom)
	}

	e := &entry{}
	e.once.Do(func() {
		e.ops = ops
		e.done.Store(true)
	})
	if _, loaded := registry.LoadOrStore(reflect.TypeFor[T](), e); loaded {
		return fmt.Errorf("%v: %w", reflect.TypeFor[T](), ErrAlreadyResolved)
	}

	return nil
}
