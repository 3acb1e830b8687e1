// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Generic algorithms written once against the capability interfaces.
// None of them depend on a concrete family; they erase typed arguments,
// dispatch through the capability, and re-tag the result.

// Fmap applies fn to the value of fa.
func Fmap[W Witness, A, B any](f Functor[W], fn func(A) B, fa Kind[W, A]) Kind[W, B] {
	return rekind[W, B](f.Map(func(v Erased) Erased {
		return fn(cast[A](v))
	}, rekind[W, Erased](fa)))
}

// Lift lifts a into the family's trivial computation.
func Lift[W Witness, A any](p Pure[W], a A) Kind[W, A] {
	return rekind[W, A](p.Unit(a))
}

// Ap applies the functions produced by ff to the values produced by fa.
func Ap[W Witness, A, B any](ap Applicative[W], ff Kind[W, func(A) B], fa Kind[W, A]) Kind[W, B] {
	fns := ap.Map(func(v Erased) Erased {
		fn := cast[func(A) B](v)
		return func(x Erased) Erased { return fn(cast[A](x)) }
	}, rekind[W, Erased](ff))
	return rekind[W, B](ap.Ap(fns, rekind[W, Erased](fa)))
}

// Map2 combines the values of fa and fb with f.
func Map2[W Witness, A, B, C any](ap Applicative[W], f func(A, B) C, fa Kind[W, A], fb Kind[W, B]) Kind[W, C] {
	curried := Fmap[W, A, func(B) C](ap, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}, fa)
	return Ap(ap, curried, fb)
}

// Bind sequences fa into the computation fn selects from its value.
func Bind[W Witness, A, B any](m Monad[W], fn func(A) Kind[W, B], fa Kind[W, A]) Kind[W, B] {
	return rekind[W, B](m.FlatMap(func(v Erased) Kind[W, Erased] {
		return rekind[W, Erased](fn(cast[A](v)))
	}, rekind[W, Erased](fa)))
}

// TailRecM runs fn from initial until it yields Right.
func TailRecM[W Witness, T, R any](rec MonadRec[W], initial T, fn func(T) Kind[W, Either[T, R]]) Kind[W, R] {
	return rekind[W, R](rec.TailRec(initial, func(v Erased) Kind[W, Erased] {
		return rekind[W, Erased](fn(cast[T](v)))
	}))
}

// derivedMonadRec drives tail recursion with FlatMap and a terminal check.
// It is stack-safe for families whose FlatMap is trampolined.
type derivedMonadRec[W Witness] struct {
	m Monad[W]
}

// DeriveMonadRec builds a MonadRec from m. Each iteration is one FlatMap
// whose continuation either recurses on a Left seed or lifts the Right
// result with Unit.
func DeriveMonadRec[W Witness](m Monad[W]) MonadRec[W] {
	return derivedMonadRec[W]{m: m}
}

func (r derivedMonadRec[W]) TailRec(initial Erased, f func(Erased) Kind[W, Erased]) Kind[W, Erased] {
	return r.m.FlatMap(func(v Erased) Kind[W, Erased] {
		e := eraseEither(v)
		if next, ok := e.GetLeft(); ok {
			return r.TailRec(next, f)
		}
		done, _ := e.GetRight()
		return r.m.Unit(done)
	}, f(initial))
}

// FoldLeft folds the values of fa into m from the left.
func FoldLeft[W Witness, T any](fo Foldable[W], m Monoid[T], fa Kind[W, T]) T {
	return cast[T](fo.FoldLeft(eraseMonoid(m), rekind[W, Erased](fa)))
}

// FoldRight folds the values of fa into m from the right.
func FoldRight[W Witness, T any](fo Foldable[W], m Monoid[T], fa Kind[W, T]) T {
	return cast[T](fo.FoldRight(eraseMonoid(m), rekind[W, Erased](fa)))
}

// FoldMap maps the values of fa with fn and folds them into m.
func FoldMap[W Witness, A, B any](fo Foldable[W], f Functor[W], m Monoid[B], fn func(A) B, fa Kind[W, A]) B {
	return FoldLeft(fo, m, Fmap(f, fn, fa))
}

// erasedApplicative presents an Applicative[C] as an Applicative[Witness]
// so that Traverse implementations can accept any foreign applicative.
type erasedApplicative[C Witness] struct {
	ap Applicative[C]
}

// EraseApplicative hides the witness of ap.
func EraseApplicative[C Witness](ap Applicative[C]) Applicative[Witness] {
	return erasedApplicative[C]{ap: ap}
}

func (e erasedApplicative[C]) Map(f func(Erased) Erased, fa Kind[Witness, Erased]) Kind[Witness, Erased] {
	return rekind[Witness, Erased](e.ap.Map(f, rekind[C, Erased](fa)))
}

func (e erasedApplicative[C]) Unit(v Erased) Kind[Witness, Erased] {
	return rekind[Witness, Erased](e.ap.Unit(v))
}

func (e erasedApplicative[C]) Ap(ff Kind[Witness, Erased], fa Kind[Witness, Erased]) Kind[Witness, Erased] {
	return rekind[Witness, Erased](e.ap.Ap(rekind[C, Erased](ff), rekind[C, Erased](fa)))
}

// TraverseA runs fn over the value of fa inside the applicative ap and
// re-lifts fa's family around the result.
func TraverseA[W, C Witness, A, B any](t Traverse[W], ap Applicative[C], fn func(A) Kind[C, B], fa Kind[W, A]) Kind[C, Kind[W, B]] {
	out := t.TraverseA(EraseApplicative(ap), func(v Erased) Kind[Witness, Erased] {
		return rekind[Witness, Erased](fn(cast[A](v)))
	}, rekind[W, Erased](fa))
	typed := ap.Map(func(v Erased) Erased {
		return rekind[W, B](cast[Kind[W, Erased]](v))
	}, rekind[C, Erased](out))
	return rekind[C, Kind[W, B]](typed)
}

// SequenceA turns a computation of applicative values inside out.
func SequenceA[W, C Witness, A any](t Traverse[W], ap Applicative[C], fa Kind[W, Kind[C, A]]) Kind[C, Kind[W, A]] {
	return TraverseA(t, ap, func(x Kind[C, A]) Kind[C, A] { return x }, fa)
}

// Empty returns the family's empty computation.
func Empty[W Witness, A any](z MonadZero[W]) Kind[W, A] {
	return rekind[W, A](z.Zero())
}

// Plus chooses between a and b as the family defines it.
func Plus[W Witness, A any](p MonadPlus[W], a, b Kind[W, A]) Kind[W, A] {
	return rekind[W, A](p.Plus(rekind[W, Erased](a), rekind[W, Erased](b)))
}

// Extract returns the value held by fa.
func Extract[W Witness, A any](c Comonad[W], fa Kind[W, A]) A {
	return cast[A](c.Extract(rekind[W, Erased](fa)))
}

// Extend replaces the value of fa with fn applied to fa itself.
func Extend[W Witness, A, B any](c Comonad[W], fn func(Kind[W, A]) B, fa Kind[W, A]) Kind[W, B] {
	return rekind[W, B](c.Extend(func(k Kind[W, Erased]) Erased {
		return fn(rekind[W, A](k))
	}, rekind[W, Erased](fa)))
}

// Unfold builds a computation from seed until f returns empty.
func Unfold[W Witness, S, A any](u Unfoldable[W], seed S, f func(S) Option[Pair[A, S]]) Kind[W, A] {
	return rekind[W, A](u.Unfold(seed, func(v Erased) Option[Pair[Erased, Erased]] {
		return MapOption(f(cast[S](v)), func(p Pair[A, S]) Pair[Erased, Erased] {
			return Pair[Erased, Erased]{Fst: p.Fst, Snd: p.Snd}
		})
	}))
}
