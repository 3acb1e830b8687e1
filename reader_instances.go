// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// ReaderW is the witness of the Reader family with environment type E.
type ReaderW[E any] struct{}

func (ReaderW[E]) WitnessName() string { return "reader" }

// Define builds the Reader capabilities; seed is the environment used by
// Traverse and Foldable.
func (ReaderW[E]) Define(seed Option[Erased]) *Definitions[ReaderW[E]] {
	d := monadDefinitions[ReaderW[E]](readerMonad[E]{})
	if env, ok := seedValue[E](seed, "reader"); ok {
		d.Traverse = readerTraverse[E]{env: env}
		d.Foldable = readerFoldable[E]{env: env}
	}
	return d
}

// ReaderInstances returns the Reader capabilities seeded with env.
func ReaderInstances[E any](env E) *Definitions[ReaderW[E]] {
	return InstancesWith[ReaderW[E]](env)
}

type readerMonad[E any] struct{}

func (readerMonad[E]) Map(f func(Erased) Erased, fa Kind[ReaderW[E], Erased]) Kind[ReaderW[E], Erased] {
	return WidenReader(ReaderMap(NarrowReader(fa), f))
}

func (readerMonad[E]) Unit(v Erased) Kind[ReaderW[E], Erased] {
	return WidenReader(ReaderOf[E](v))
}

func (readerMonad[E]) Ap(ff Kind[ReaderW[E], Erased], fa Kind[ReaderW[E], Erased]) Kind[ReaderW[E], Erased] {
	a := NarrowReader(fa)
	return WidenReader(ReaderFlatMap(NarrowReader(ff), func(fn Erased) Reader[E, Erased] {
		return ReaderMap(a, cast[func(Erased) Erased](fn))
	}))
}

func (readerMonad[E]) FlatMap(f func(Erased) Kind[ReaderW[E], Erased], fa Kind[ReaderW[E], Erased]) Kind[ReaderW[E], Erased] {
	return WidenReader(ReaderFlatMap(NarrowReader(fa), func(v Erased) Reader[E, Erased] {
		return NarrowReader(f(v))
	}))
}

type readerTraverse[E any] struct {
	readerMonad[E]
	env E
}

func (t readerTraverse[E]) TraverseA(ap Applicative[Witness], f func(Erased) Kind[Witness, Erased], fa Kind[ReaderW[E], Erased]) Kind[Witness, Erased] {
	v := NarrowReader(fa).Run(t.env)
	return ap.Map(func(r Erased) Erased {
		return WidenReader(ReaderOf[E](r))
	}, f(v))
}

type readerFoldable[E any] struct {
	env E
}

func (f readerFoldable[E]) FoldLeft(m Monoid[Erased], fa Kind[ReaderW[E], Erased]) Erased {
	return m.FoldLeft(NarrowReader(fa).Run(f.env))
}

func (f readerFoldable[E]) FoldRight(m Monoid[Erased], fa Kind[ReaderW[E], Erased]) Erased {
	return m.FoldRight(NarrowReader(fa).Run(f.env))
}
