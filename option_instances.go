// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// OptionW is the witness of the Option family.
type OptionW struct{}

func (OptionW) WitnessName() string { return "option" }

// Define builds the Option capabilities. Option is strict, so its MonadRec
// is a plain loop rather than the FlatMap-derived one.
func (OptionW) Define(Option[Erased]) *Definitions[OptionW] {
	m := optionMonad{}
	return &Definitions[OptionW]{
		Functor:     m,
		Pure:        m,
		Applicative: m,
		Monad:       m,
		MonadZero:   m,
		MonadPlus:   m,
		MonadRec:    optionRec{},
		Traverse:    optionTraverse{},
		Foldable:    optionFoldable{},
		Unfoldable:  optionUnfoldable{},
	}
}

// WidenOption converts o into its generic handle.
func WidenOption[A any](o Option[A]) Kind[OptionW, A] {
	if !o.ok {
		return newKind[OptionW, A](Option[Erased]{})
	}
	return newKind[OptionW, A](Option[Erased]{ok: true, value: o.value})
}

// NarrowOption converts a generic handle back into an Option.
// Panics if k does not originate from the Option family.
func NarrowOption[A any](k Kind[OptionW, A]) Option[A] {
	r := narrowRepr[Option[Erased]](k)
	if !r.ok {
		return None[A]()
	}
	return Some(cast[A](r.value))
}

type optionMonad struct{}

func (optionMonad) Map(f func(Erased) Erased, fa Kind[OptionW, Erased]) Kind[OptionW, Erased] {
	return WidenOption(MapOption(NarrowOption(fa), f))
}

func (optionMonad) Unit(v Erased) Kind[OptionW, Erased] {
	return WidenOption(Some(v))
}

func (optionMonad) Ap(ff Kind[OptionW, Erased], fa Kind[OptionW, Erased]) Kind[OptionW, Erased] {
	return WidenOption(FlatMapOption(NarrowOption(ff), func(fn Erased) Option[Erased] {
		return MapOption(NarrowOption(fa), cast[func(Erased) Erased](fn))
	}))
}

func (optionMonad) FlatMap(f func(Erased) Kind[OptionW, Erased], fa Kind[OptionW, Erased]) Kind[OptionW, Erased] {
	return WidenOption(FlatMapOption(NarrowOption(fa), func(v Erased) Option[Erased] {
		return NarrowOption(f(v))
	}))
}

func (optionMonad) Zero() Kind[OptionW, Erased] {
	return WidenOption(None[Erased]())
}

// Plus keeps a when present and falls back to b.
func (optionMonad) Plus(a, b Kind[OptionW, Erased]) Kind[OptionW, Erased] {
	return WidenOption(OrElseOption(NarrowOption(a), NarrowOption(b)))
}

type optionRec struct{}

func (optionRec) TailRec(initial Erased, f func(Erased) Kind[OptionW, Erased]) Kind[OptionW, Erased] {
	seed := initial
	for {
		v, ok := NarrowOption(f(seed)).Get()
		if !ok {
			return WidenOption(None[Erased]())
		}
		e := eraseEither(v)
		if next, ok := e.GetLeft(); ok {
			seed = next
			continue
		}
		r, _ := e.GetRight()
		return WidenOption(Some(r))
	}
}

type optionTraverse struct {
	optionMonad
}

func (optionTraverse) TraverseA(ap Applicative[Witness], f func(Erased) Kind[Witness, Erased], fa Kind[OptionW, Erased]) Kind[Witness, Erased] {
	v, ok := NarrowOption(fa).Get()
	if !ok {
		return ap.Unit(WidenOption(None[Erased]()))
	}
	return ap.Map(func(r Erased) Erased {
		return WidenOption(Some(r))
	}, f(v))
}

type optionFoldable struct{}

func (optionFoldable) FoldLeft(m Monoid[Erased], fa Kind[OptionW, Erased]) Erased {
	if v, ok := NarrowOption(fa).Get(); ok {
		return m.FoldLeft(v)
	}
	return m.Zero
}

func (optionFoldable) FoldRight(m Monoid[Erased], fa Kind[OptionW, Erased]) Erased {
	if v, ok := NarrowOption(fa).Get(); ok {
		return m.FoldRight(v)
	}
	return m.Zero
}

// optionUnfoldable keeps the first element the generator yields.
type optionUnfoldable struct{}

func (optionUnfoldable) Unfold(seed Erased, f func(Erased) Option[Pair[Erased, Erased]]) Kind[OptionW, Erased] {
	return WidenOption(MapOption(f(seed), func(p Pair[Erased, Erased]) Erased {
		return p.Fst
	}))
}
