// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Either holds exactly one of a Left or a Right value.
//
// Tail-recursive loops ([TailRec], [TailRecM]) read Left as "continue with
// this seed" and Right as "done with this result". [Coproduct] uses it to
// hold one of two families.
//
// The side that is not held is always its zero value.
type Either[L, R any] struct {
	right bool
	l     L
	r     R
}

// Left creates a Left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{l: l}
}

// Right creates a Right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: true, r: r}
}

// IsRight reports whether e holds a Right value.
func (e Either[L, R]) IsRight() bool { return e.right }

// IsLeft reports whether e holds a Left value.
func (e Either[L, R]) IsLeft() bool { return !e.right }

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) { return e.r, e.right }

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) { return e.l, !e.right }

// Visit calls onLeft or onRight depending on which side is held.
func (e Either[L, R]) Visit(onLeft func(L), onRight func(R)) {
	if e.right {
		onRight(e.r)
	} else {
		onLeft(e.l)
	}
}

// erase widens both sides to Erased. Capability implementations see every
// Either[L, R] through this method regardless of L and R.
func (e Either[L, R]) erase() Either[Erased, Erased] {
	return Either[Erased, Erased]{right: e.right, l: e.l, r: e.r}
}

type erasableEither interface {
	erase() Either[Erased, Erased]
}

// eraseEither recovers an Either from a value yielded by a tail-recursive step.
func eraseEither(v Erased) Either[Erased, Erased] {
	e, ok := v.(erasableEither)
	if !ok {
		misuse("tail recursion step did not yield an Either")
	}
	return e.erase()
}

// MatchEither folds e into a single value.
func MatchEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.right {
		return onRight(e.r)
	}
	return onLeft(e.l)
}

// MapEither transforms the Right side and keeps a Left as is.
func MapEither[L, R, B any](e Either[L, R], f func(R) B) Either[L, B] {
	return MatchEither(e, Left[L, B], func(r R) Either[L, B] { return Right[L](f(r)) })
}

// MapLeftEither transforms the Left side and keeps a Right as is.
func MapLeftEither[L, F, R any](e Either[L, R], f func(L) F) Either[F, R] {
	return MatchEither(e, func(l L) Either[F, R] { return Left[F, R](f(l)) }, Right[F, R])
}
