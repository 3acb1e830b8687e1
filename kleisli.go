// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Kleisli is an arrow A → Kind[W, B] carried together with the Monad that
// composes it.
type Kleisli[W Witness, A, B any] struct {
	m  Monad[W]
	fn func(A) Kind[W, B]
}

// NewKleisli pairs fn with m. Panics if either is nil.
func NewKleisli[W Witness, A, B any](m Monad[W], fn func(A) Kind[W, B]) Kleisli[W, A, B] {
	if m == nil || fn == nil {
		misuse("kleisli arrow without monad or function")
	}
	return Kleisli[W, A, B]{m: m, fn: fn}
}

// Apply runs the arrow on a.
func (k Kleisli[W, A, B]) Apply(a A) Kind[W, B] {
	if k.fn == nil {
		misuse("apply of zero Kleisli")
	}
	return k.fn(a)
}

// AndThen runs k, then feeds its value into next.
func AndThen[W Witness, A, B, C any](k Kleisli[W, A, B], next Kleisli[W, B, C]) Kleisli[W, A, C] {
	return NewKleisli(k.m, func(a A) Kind[W, C] {
		return Bind(k.m, next.Apply, k.Apply(a))
	})
}

// Compose runs before, then feeds its value into k.
func Compose[W Witness, A, B, C any](k Kleisli[W, B, C], before Kleisli[W, A, B]) Kleisli[W, A, C] {
	return AndThen(before, k)
}

// Cokleisli is an arrow Kind[W, A] → B.
type Cokleisli[W Witness, A, B any] struct {
	fn func(Kind[W, A]) B
}

// NewCokleisli wraps fn. Panics if fn is nil.
func NewCokleisli[W Witness, A, B any](fn func(Kind[W, A]) B) Cokleisli[W, A, B] {
	if fn == nil {
		misuse("cokleisli arrow without function")
	}
	return Cokleisli[W, A, B]{fn: fn}
}

// Apply runs the arrow on fa.
func (c Cokleisli[W, A, B]) Apply(fa Kind[W, A]) B {
	if c.fn == nil {
		misuse("apply of zero Cokleisli")
	}
	return c.fn(fa)
}

// CokleisliAndThen runs first over every position of fa through the
// comonad's Extend and hands the result to second.
func CokleisliAndThen[W Witness, A, B, C any](cm Comonad[W], first Cokleisli[W, A, B], second Cokleisli[W, B, C]) Cokleisli[W, A, C] {
	return NewCokleisli(func(fa Kind[W, A]) C {
		return second.Apply(Extend(cm, first.Apply, fa))
	})
}

// StateKleisli lifts a State into its generic handle as a Kleisli arrow
// over the State monad.
func StateKleisli[S, T any]() Kleisli[StateW[S], State[S, T], T] {
	return NewKleisli(Instances[StateW[S]]().Monad, WidenState[S, T])
}

// StateCokleisli narrows a generic handle back into a State.
func StateCokleisli[S, T any]() Cokleisli[StateW[S], T, State[S, T]] {
	return NewCokleisli(NarrowState[S, T])
}
