// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Active bundles a computation handle with the definitions that operate on
// it, so callers can map, bind and fold without looking the family up.
type Active[W Witness, A any] struct {
	k    Kind[W, A]
	defs *Definitions[W]
}

// MakeActive pairs k with defs. Panics if defs is nil.
func MakeActive[W Witness, A any](k Kind[W, A], defs *Definitions[W]) Active[W, A] {
	if defs == nil {
		misuse("active value without definitions")
	}
	return Active[W, A]{k: k, defs: defs}
}

// Kind returns the bundled handle.
func (a Active[W, A]) Kind() Kind[W, A] { return a.k }

// Definitions returns the bundled definitions.
func (a Active[W, A]) Definitions() *Definitions[W] { return a.defs }

// FoldLeft folds the value of a into m. Panics if the definitions carry no
// Foldable.
func (a Active[W, A]) FoldLeft(m Monoid[A]) A {
	return FoldLeft(a.foldable(), m, a.k)
}

// FoldRight folds the value of a into m from the right.
func (a Active[W, A]) FoldRight(m Monoid[A]) A {
	return FoldRight(a.foldable(), m, a.k)
}

func (a Active[W, A]) foldable() Foldable[W] {
	if a.defs == nil || a.defs.Foldable == nil {
		misuse("fold of " + a.k.tag + " without Foldable")
	}
	return a.defs.Foldable
}

// ActiveMap applies f to the value of a through its own Functor.
func ActiveMap[W Witness, A, B any](a Active[W, A], f func(A) B) Active[W, B] {
	return Active[W, B]{k: Fmap(a.defs.Functor, f, a.k), defs: a.defs}
}

// ActiveFlatMap sequences a into the computation f selects, through its own Monad.
func ActiveFlatMap[W Witness, A, B any](a Active[W, A], f func(A) Kind[W, B]) Active[W, B] {
	return Active[W, B]{k: Bind(a.defs.Monad, f, a.k), defs: a.defs}
}

// AllTypeclasses bundles m with the State definitions seeded with seed.
func (m State[S, T]) AllTypeclasses(seed S) Active[StateW[S], T] {
	return MakeActive(WidenState(m), StateInstances(seed))
}

// Nested is a computation of family W1 whose values are computations of
// family W2, with the definitions of both.
type Nested[W1, W2 Witness, A any] struct {
	k     Kind[W1, Kind[W2, A]]
	outer *Definitions[W1]
	inner *Definitions[W2]
}

// MakeNested bundles k with the outer and inner definitions.
func MakeNested[W1, W2 Witness, A any](k Kind[W1, Kind[W2, A]], outer *Definitions[W1], inner *Definitions[W2]) Nested[W1, W2, A] {
	if outer == nil || inner == nil {
		misuse("nested value without definitions")
	}
	return Nested[W1, W2, A]{k: k, outer: outer, inner: inner}
}

// Kind returns the bundled handle.
func (n Nested[W1, W2, A]) Kind() Kind[W1, Kind[W2, A]] { return n.k }

// NestedMap applies f beneath both layers.
func NestedMap[W1, W2 Witness, A, B any](n Nested[W1, W2, A], f func(A) B) Nested[W1, W2, B] {
	k := Fmap(n.outer.Functor, func(in Kind[W2, A]) Kind[W2, B] {
		return Fmap(n.inner.Functor, f, in)
	}, n.k)
	return Nested[W1, W2, B]{k: k, outer: n.outer, inner: n.inner}
}

// NestedSequence swaps the layers using the outer Traverse and the inner
// Applicative. Panics if the outer definitions carry no Traverse.
func NestedSequence[W1, W2 Witness, A any](n Nested[W1, W2, A]) Nested[W2, W1, A] {
	if n.outer.Traverse == nil {
		misuse("sequence of " + n.k.tag + " without Traverse")
	}
	return Nested[W2, W1, A]{
		k:     SequenceA(n.outer.Traverse, n.inner.Applicative, n.k),
		outer: n.inner,
		inner: n.outer,
	}
}

// MapM maps the value of m into family W2 and nests the result under the
// State definitions seeded with seed.
func MapM[S, T any, W2 Witness, R any](m State[S, T], seed S, f func(T) Kind[W2, R], inner *Definitions[W2]) Nested[StateW[S], W2, R] {
	return MakeNested(WidenState(Map(m, f)), StateInstances(seed), inner)
}

// NestState nests a State whose values belong to family W2.
func NestState[S any, W2 Witness, R any](m State[S, Kind[W2, R]], seed S, inner *Definitions[W2]) Nested[StateW[S], W2, R] {
	return MakeNested(WidenState(m), StateInstances(seed), inner)
}

// FamilyProduct holds one computation of each of two families.
type FamilyProduct[W1, W2 Witness, A any] struct {
	First  Active[W1, A]
	Second Active[W2, A]
}

// ProductMap applies f to both computations.
func ProductMap[W1, W2 Witness, A, B any](p FamilyProduct[W1, W2, A], f func(A) B) FamilyProduct[W1, W2, B] {
	return FamilyProduct[W1, W2, B]{First: ActiveMap(p.First, f), Second: ActiveMap(p.Second, f)}
}

// StateProduct pairs m, under the State definitions seeded with seed, with other.
func StateProduct[S, T any, W2 Witness](m State[S, T], seed S, other Active[W2, T]) FamilyProduct[StateW[S], W2, T] {
	return FamilyProduct[StateW[S], W2, T]{First: m.AllTypeclasses(seed), Second: other}
}

// Coproduct holds a computation of either of two families.
type Coproduct[W1, W2 Witness, A any] struct {
	e Either[Active[W1, A], Active[W2, A]]
}

// CoproductLeft holds a computation of the first family.
func CoproductLeft[W1, W2 Witness, A any](a Active[W1, A]) Coproduct[W1, W2, A] {
	return Coproduct[W1, W2, A]{e: Left[Active[W1, A], Active[W2, A]](a)}
}

// CoproductRight holds a computation of the second family.
func CoproductRight[W1, W2 Witness, A any](a Active[W2, A]) Coproduct[W1, W2, A] {
	return Coproduct[W1, W2, A]{e: Right[Active[W1, A]](a)}
}

// Either exposes the held side.
func (c Coproduct[W1, W2, A]) Either() Either[Active[W1, A], Active[W2, A]] { return c.e }

// FoldLeft folds whichever computation is held.
func (c Coproduct[W1, W2, A]) FoldLeft(m Monoid[A]) A {
	return MatchEither(c.e,
		func(a Active[W1, A]) A { return a.FoldLeft(m) },
		func(a Active[W2, A]) A { return a.FoldLeft(m) })
}

// CoproductMap applies f to whichever computation is held.
func CoproductMap[W1, W2 Witness, A, B any](c Coproduct[W1, W2, A], f func(A) B) Coproduct[W1, W2, B] {
	right := MapEither(c.e, func(a Active[W2, A]) Active[W2, B] { return ActiveMap(a, f) })
	both := MapLeftEither(right, func(a Active[W1, A]) Active[W1, B] { return ActiveMap(a, f) })
	return Coproduct[W1, W2, B]{e: both}
}

// StateCoproduct places m, under the State definitions seeded with seed, on
// the right side of a coproduct whose left family is W1.
func StateCoproduct[W1 Witness, S, T any](m State[S, T], seed S) Coproduct[W1, StateW[S], T] {
	return CoproductRight[W1](m.AllTypeclasses(seed))
}
