// SPDX-License-Identifier: MIT

package arith

// Field is the method surface a user-defined element type offers to take part
// in matrix arithmetic. The zero value of T must be the additive identity.
//
// Example: a rational type
//
//	type Rat struct{ num, den int64 }
//	func (r Rat) Add(o Rat) Rat { ... }
//	...
type Field[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) T
	Neg() T
	IsZero() bool
	Equal(T) bool
	Abs() float64
}

// fieldOps adapts a Field implementation to an operator set.
func fieldOps[T any]() *Ops[T] {
	as := func(a T) Field[T] { return any(a).(Field[T]) }

	return &Ops[T]{
		add:    func(a, b T) T { return as(a).Add(b) },
		sub:    func(a, b T) T { return as(a).Sub(b) },
		mul:    func(a, b T) T { return as(a).Mul(b) },
		div:    func(a, b T) T { return as(a).Quo(b) },
		neg:    func(a T) T { return as(a).Neg() },
		isZero: func(a T) bool { return as(a).IsZero() },
		equal:  func(a, b T) bool { return as(a).Equal(b) },
		abs:    func(a T) float64 { return as(a).Abs() },
		absSq:  func(a T) float64 { return sq(as(a).Abs()) },
		format: formatterOf[T](KindField),
		kind:   KindField,
	}
}
