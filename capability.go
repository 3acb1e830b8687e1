// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Capability interfaces.
//
// Go interface methods cannot introduce type parameters, so capabilities
// operate on erased handles Kind[W, Erased] and erased functions. The typed
// generic helpers in algorithms.go perform erasure at the boundary; callers
// normally use those rather than the methods below.
//
// Every implementation narrows its argument to the family's concrete type,
// delegates to the family's native combinator, and widens the result.
// Dispatch introduces no behavior of its own.

// Functor maps over the value of a computation.
type Functor[W Witness] interface {
	Map(f func(Erased) Erased, fa Kind[W, Erased]) Kind[W, Erased]
}

// Pure lifts a raw value into the family's trivial computation.
type Pure[W Witness] interface {
	Unit(v Erased) Kind[W, Erased]
}

// Applicative applies a computation of functions to a computation of
// arguments. The values of ff must be func(Erased) Erased.
type Applicative[W Witness] interface {
	Functor[W]
	Pure[W]
	Ap(ff Kind[W, Erased], fa Kind[W, Erased]) Kind[W, Erased]
}

// Monad sequences dependent computations.
type Monad[W Witness] interface {
	Applicative[W]
	FlatMap(f func(Erased) Kind[W, Erased], fa Kind[W, Erased]) Kind[W, Erased]
}

// MonadZero adds an empty computation.
type MonadZero[W Witness] interface {
	Monad[W]
	Zero() Kind[W, Erased]
}

// MonadPlus adds a choice between two computations.
type MonadPlus[W Witness] interface {
	MonadZero[W]
	Plus(a, b Kind[W, Erased]) Kind[W, Erased]
}

// MonadRec runs a loop until a terminal result. Each step yields an
// Either: Left continues with a new seed, Right ends the loop.
type MonadRec[W Witness] interface {
	TailRec(initial Erased, f func(Erased) Kind[W, Erased]) Kind[W, Erased]
}

// Traverse runs f inside a foreign applicative and re-lifts the family
// computation around the result. The foreign applicative arrives erased to
// Applicative[Witness]; see [EraseApplicative]. The values of the returned
// handle are Kind[W, Erased].
type Traverse[W Witness] interface {
	Applicative[W]
	TraverseA(ap Applicative[Witness], f func(Erased) Kind[Witness, Erased], fa Kind[W, Erased]) Kind[Witness, Erased]
}

// Foldable folds the values of a computation into a monoid.
type Foldable[W Witness] interface {
	FoldLeft(m Monoid[Erased], fa Kind[W, Erased]) Erased
	FoldRight(m Monoid[Erased], fa Kind[W, Erased]) Erased
}

// Comonad extracts a value from a computation and extends functions that
// consume whole computations.
type Comonad[W Witness] interface {
	Functor[W]
	Extract(fa Kind[W, Erased]) Erased
	Extend(f func(Kind[W, Erased]) Erased, fa Kind[W, Erased]) Kind[W, Erased]
}

// Unfoldable builds a computation from a seed. f returns the next element
// and seed, or empty to stop.
type Unfoldable[W Witness] interface {
	Unfold(seed Erased, f func(Erased) Option[Pair[Erased, Erased]]) Kind[W, Erased]
}

// Definitions is the capability bundle bound to a witness.
//
// Optional capabilities are nil when the family does not support them, or
// when they need a seed and the definitions were built without one.
type Definitions[W Witness] struct {
	Functor     Functor[W]
	Pure        Pure[W]
	Applicative Applicative[W]
	Monad       Monad[W]
	MonadZero   MonadZero[W]
	MonadPlus   MonadPlus[W]
	MonadRec    MonadRec[W]
	Traverse    Traverse[W]
	Foldable    Foldable[W]
	Comonad     Comonad[W]
	Unfoldable  Unfoldable[W]
}

// Capabilities lists the names of the capabilities present in d.
func (d *Definitions[W]) Capabilities() []string {
	var names []string
	add := func(name string, present bool) {
		if present {
			names = append(names, name)
		}
	}
	add("Functor", d.Functor != nil)
	add("Pure", d.Pure != nil)
	add("Applicative", d.Applicative != nil)
	add("Monad", d.Monad != nil)
	add("MonadZero", d.MonadZero != nil)
	add("MonadPlus", d.MonadPlus != nil)
	add("MonadRec", d.MonadRec != nil)
	add("Traverse", d.Traverse != nil)
	add("Foldable", d.Foldable != nil)
	add("Comonad", d.Comonad != nil)
	add("Unfoldable", d.Unfoldable != nil)
	return names
}

// monadDefinitions fills the capabilities every monad provides.
func monadDefinitions[W Witness](m Monad[W]) *Definitions[W] {
	return &Definitions[W]{
		Functor:     m,
		Pure:        m,
		Applicative: m,
		Monad:       m,
		MonadRec:    DeriveMonadRec(m),
	}
}
