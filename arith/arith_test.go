// SPDX-License-Identifier: MIT

package arith_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lvmat/arith"
	"github.com/stretchr/testify/require"
)

// meters is a named numeric type; it resolves through reflection.
type meters float64

// phase is a named complex type; it resolves through reflection.
type phase complex128

// gf7 is arithmetic modulo 7; it implements Field[gf7].
type gf7 uint8

func (a gf7) Add(b gf7) gf7 { return (a + b) % 7 }
func (a gf7) Sub(b gf7) gf7 { return (a + 7 - b) % 7 }
func (a gf7) Mul(b gf7) gf7 { return (a * b) % 7 }
func (a gf7) Neg() gf7 { return (7 - a) % 7 }
func (a gf7) IsZero() bool { return a%7 == 0 }
func (a gf7) Equal(b gf7) bool { return a%7 == b%7 }
func (a gf7) Abs() float64 { return float64(a % 7) }
func (a gf7) Quo(b gf7) gf7 {
	// b^(7-2) is the multiplicative inverse in GF(7).
	inv := gf7(1)
	for i := 0; i < 5; i++ {
		inv = inv.Mul(b)
	}
	return a.Mul(inv)
}

// opaque has no operator surface at all.
type opaque struct{ name string }

func TestNumeric_Float64(t *testing.T) {
	ops := arith.Numeric[float64]()
	require.Equal(t, arith.KindFloat, ops.Kind())
	require.Equal(t, 5.0, ops.Add(2, 3))
	require.Equal(t, -1.0, ops.Sub(2, 3))
	require.Equal(t, 6.0, ops.Mul(2, 3))
	require.Equal(t, 1.5, ops.Div(3, 2))
	require.Equal(t, -2.0, ops.Neg(2))
	require.Equal(t, 14.0, ops.Accumulate(2, 3, 4))
	require.True(t, ops.IsZero(0))
	require.False(t, ops.IsZero(1e-300))
	require.Equal(t, 3.0, ops.Abs(-3))
	require.Equal(t, 9.0, ops.AbsSq(-3))
	require.Equal(t, "0.333", ops.Format(1.0/3, 3))
	require.Equal(t, "0.5", ops.Format(0.5, -1))
}

func TestNumeric_Complex(t *testing.T) {
	ops := arith.Numeric[complex128]()
	require.Equal(t, arith.KindComplex, ops.Kind())
	require.Equal(t, complex(4, 6), ops.Add(complex(1, 2), complex(3, 4)))
	require.Equal(t, 5.0, ops.Abs(complex(3, 4)))
	require.Equal(t, 25.0, ops.AbsSq(complex(3, 4)))
	require.Equal(t, complex(-5, 10), ops.Mul(complex(1, 2), complex(3, 4)))
}

func TestNumeric_Integer(t *testing.T) {
	ops := arith.Numeric[int16]()
	require.Equal(t, arith.KindInteger, ops.Kind())
	require.Equal(t, int16(3), ops.Div(7, 2))
	require.Equal(t, 7.0, ops.Abs(-7))
	require.Equal(t, 49.0, ops.AbsSq(-7))
	require.Equal(t, "42", ops.Format(42, 3))
}

func TestFor_CachesSamePointer(t *testing.T) {
	a, err := arith.For[float32]()
	require.NoError(t, err)
	b, err := arith.For[float32]()
	require.NoError(t, err)
	require.Same(t, a, b)
	require.True(t, arith.Resolved[float32]())
}

func TestFor_NamedFloatViaReflect(t *testing.T) {
	ops, err := arith.For[meters]()
	require.NoError(t, err)
	require.Equal(t, arith.KindReflect, ops.Kind())
	require.Equal(t, meters(5), ops.Add(2, 3))
	require.Equal(t, meters(-1), ops.Sub(2, 3))
	require.Equal(t, meters(6), ops.Mul(2, 3))
	require.Equal(t, meters(1.5), ops.Div(3, 2))
	require.Equal(t, meters(-2), ops.Neg(2))
	require.True(t, ops.IsZero(0))
	require.True(t, ops.Equal(4, 4))
	require.Equal(t, 2.0, ops.Abs(-2))
}

func TestFor_NamedComplexViaReflect(t *testing.T) {
	ops, err := arith.For[phase]()
	require.NoError(t, err)
	require.Equal(t, phase(complex(4, 6)), ops.Add(phase(complex(1, 2)), phase(complex(3, 4))))
	require.InDelta(t, 5.0, ops.Abs(phase(complex(3, 4))), 1e-12)
	require.InDelta(t, 25.0, ops.AbsSq(phase(complex(3, 4))), 1e-12)
}

func TestFor_FieldType(t *testing.T) {
	ops, err := arith.For[gf7]()
	require.NoError(t, err)
	require.Equal(t, arith.KindField, ops.Kind())
	require.Equal(t, gf7(1), ops.Add(3, 5))
	require.Equal(t, gf7(6), ops.Sub(3, 4))
	require.Equal(t, gf7(1), ops.Mul(3, 5))
	require.Equal(t, gf7(3), ops.Div(1, 5)) // 5*3 = 15 = 1 mod 7
	require.Equal(t, gf7(4), ops.Neg(3))
	require.True(t, ops.IsZero(7))
}

func TestFor_Unsupported(t *testing.T) {
	_, err := arith.For[opaque]()
	require.ErrorIs(t, err, arith.ErrUnsupportedElementType)

	_, err = arith.For[string]()
	require.ErrorIs(t, err, arith.ErrUnsupportedElementType)

	_, err = arith.For[any]()
	require.ErrorIs(t, err, arith.ErrUnsupportedElementType)

	// The failure is cached and repeats identically.
	_, err2 := arith.For[opaque]()
	require.ErrorIs(t, err2, arith.ErrUnsupportedElementType)
	require.True(t, arith.Resolved[opaque]())

	require.Panics(t, func() { arith.MustFor[opaque]() })
}

// racer is used only by the concurrency test so its first resolution happens there.
type racer int32

func TestFor_ConcurrentFirstUseResolvesOnce(t *testing.T) {
	require.False(t, arith.Resolved[racer]())

	const workers = 64
	got := make([]*arith.Ops[racer], workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			ops, err := arith.For[racer]()
			require.NoError(t, err)
			got[i] = ops
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Same(t, got[0], got[i], "worker %d saw a different operator set", i)
	}
	require.True(t, arith.Resolved[racer]())
}

// mod7 is arithmetic modulo 7, installed explicitly.
type mod7 uint8

func TestRegister_CustomTable(t *testing.T) {
	err := arith.Register(arith.Table[mod7]{
		Add:    func(a, b mod7) mod7 { return (a + b) % 7 },
		Sub:    func(a, b mod7) mod7 { return (a + 7 - b) % 7 },
		Mul:    func(a, b mod7) mod7 { return (a * b) % 7 },
		Neg:    func(a mod7) mod7 { return (7 - a) % 7 },
		IsZero: func(a mod7) bool { return a%7 == 0 },
	})
	require.NoError(t, err)

	ops, err := arith.For[mod7]()
	require.NoError(t, err)
	require.Equal(t, arith.KindCustom, ops.Kind())
	require.Equal(t, mod7(0), ops.Add(2, 5))
	require.Equal(t, mod7(3), ops.Mul(2, 5))
	require.Equal(t, mod7(3), ops.Accumulate(2, 3, 5))
	require.Equal(t, mod7(4), ops.Neg(3))
	require.Equal(t, 1.0, ops.Abs(3))
	require.Panics(t, func() { ops.Div(1, 1) })

	err = arith.Register(arith.Table[mod7]{
		Add: ops.Add, Sub: ops.Sub, Mul: ops.Mul, Neg: ops.Neg, IsZero: ops.IsZero,
	})
	require.ErrorIs(t, err, arith.ErrAlreadyResolved)
}

// tropical is the min-plus semiring: its additive identity is +Inf, not the
// zero value, so storage that fills with the zero value cannot hold it.
type tropical float64

func TestRegister_ZeroValueMustBeIdentity(t *testing.T) {
	err := arith.Register(arith.Table[tropical]{
		Add:    func(a, b tropical) tropical { return tropical(math.Min(float64(a), float64(b))) },
		Sub:    func(a, b tropical) tropical { return a - b },
		Mul:    func(a, b tropical) tropical { return a + b },
		Neg:    func(a tropical) tropical { return -a },
		IsZero: func(a tropical) bool { return math.IsInf(float64(a), 1) },
	})
	require.ErrorIs(t, err, arith.ErrZeroNotIdentity)

	// a rejected table leaves T unresolved
	require.False(t, arith.Resolved[tropical]())
}

// count is a named integer resolved through reflection.
type count int

func TestReflect_NamedIntegerFormat(t *testing.T) {
	ops, err := arith.For[count]()
	require.NoError(t, err)
	require.Equal(t, "42", ops.Format(42, 6))
	require.Equal(t, "-7", ops.Format(-7, -1))
	require.Equal(t, 7.0, ops.Abs(-7))
}

func TestRegister_IncompleteTable(t *testing.T) {
	err := arith.Register(arith.Table[meters]{})
	require.ErrorIs(t, err, arith.ErrIncompleteTable)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "float", arith.KindFloat.String())
	require.Equal(t, "field", arith.KindField.String())
	require.Equal(t, "unknown", arith.KindUnknown.String())
}
