// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

import "golang.org/x/exp/constraints"

// Monoid is an associative combining function with an identity element.
type Monoid[T any] struct {
	Zero    T
	Combine func(a, b T) T
}

// NewMonoid creates a Monoid from its identity and combining function.
func NewMonoid[T any](zero T, combine func(a, b T) T) Monoid[T] {
	return Monoid[T]{Zero: zero, Combine: combine}
}

// FoldLeft combines xs from the left, starting with Zero.
func (m Monoid[T]) FoldLeft(xs ...T) T {
	acc := m.Zero
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}

// FoldRight combines xs from the right, starting with Zero.
func (m Monoid[T]) FoldRight(xs ...T) T {
	acc := m.Zero
	for i := len(xs) - 1; i >= 0; i-- {
		acc = m.Combine(xs[i], acc)
	}
	return acc
}

// eraseMonoid adapts m to operate on erased values for capability dispatch.
func eraseMonoid[T any](m Monoid[T]) Monoid[Erased] {
	return Monoid[Erased]{
		Zero: m.Zero,
		Combine: func(a, b Erased) Erased {
			return m.Combine(cast[T](a), cast[T](b))
		},
	}
}

// Number is the set of types with + and *.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum is the additive monoid.
func Sum[N Number]() Monoid[N] {
	return Monoid[N]{Zero: 0, Combine: func(a, b N) N { return a + b }}
}

// Product is the multiplicative monoid.
func Product[N Number]() Monoid[N] {
	return Monoid[N]{Zero: 1, Combine: func(a, b N) N { return a * b }}
}

// StringConcat concatenates strings.
func StringConcat() Monoid[string] {
	return Monoid[string]{Zero: "", Combine: func(a, b string) string { return a + b }}
}

// SliceConcat concatenates slices without aliasing either operand.
func SliceConcat[T any]() Monoid[[]T] {
	return Monoid[[]T]{Combine: func(a, b []T) []T {
		out := make([]T, 0, len(a)+len(b))
		out = append(out, a...)
		return append(out, b...)
	}}
}

// All is conjunction.
func All() Monoid[bool] {
	return Monoid[bool]{Zero: true, Combine: func(a, b bool) bool { return a && b }}
}

// Any is disjunction.
func Any() Monoid[bool] {
	return Monoid[bool]{Zero: false, Combine: func(a, b bool) bool { return a || b }}
}

// FirstOption keeps the leftmost present value.
func FirstOption[T any]() Monoid[Option[T]] {
	return Monoid[Option[T]]{Combine: func(a, b Option[T]) Option[T] {
		return OrElseOption(a, b)
	}}
}

// LastOption keeps the rightmost present value.
func LastOption[T any]() Monoid[Option[T]] {
	return Monoid[Option[T]]{Combine: func(a, b Option[T]) Option[T] {
		return OrElseOption(b, a)
	}}
}
