// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// WriterW is the witness of the Writer family with output type W.
type WriterW[W any] struct{}

func (WriterW[W]) WitnessName() string { return "writer" }

// Define builds the Writer capabilities. A Writer needs no input to run,
// so seed is ignored and Traverse, Foldable and Comonad are always present.
func (WriterW[W]) Define(Option[Erased]) *Definitions[WriterW[W]] {
	d := monadDefinitions[WriterW[W]](writerMonad[W]{})
	d.Traverse = writerTraverse[W]{}
	d.Foldable = writerFoldable[W]{}
	d.Comonad = writerComonad[W]{}
	return d
}

type writerMonad[W any] struct{}

func (writerMonad[W]) Map(f func(Erased) Erased, fa Kind[WriterW[W], Erased]) Kind[WriterW[W], Erased] {
	return WidenWriter(WriterMap(NarrowWriter(fa), f))
}

func (writerMonad[W]) Unit(v Erased) Kind[WriterW[W], Erased] {
	return WidenWriter(WriterOf[W](v))
}

func (writerMonad[W]) Ap(ff Kind[WriterW[W], Erased], fa Kind[WriterW[W], Erased]) Kind[WriterW[W], Erased] {
	a := NarrowWriter(fa)
	return WidenWriter(WriterFlatMap(NarrowWriter(ff), func(fn Erased) Writer[W, Erased] {
		return WriterMap(a, cast[func(Erased) Erased](fn))
	}))
}

func (writerMonad[W]) FlatMap(f func(Erased) Kind[WriterW[W], Erased], fa Kind[WriterW[W], Erased]) Kind[WriterW[W], Erased] {
	return WidenWriter(WriterFlatMap(NarrowWriter(fa), func(v Erased) Writer[W, Erased] {
		return NarrowWriter(f(v))
	}))
}

type writerTraverse[W any] struct {
	writerMonad[W]
}

// TraverseA runs fa, applies f to its value and re-lifts a Writer carrying
// the same output around each result inside ap.
func (writerTraverse[W]) TraverseA(ap Applicative[Witness], f func(Erased) Kind[Witness, Erased], fa Kind[WriterW[W], Erased]) Kind[Witness, Erased] {
	v, out := NarrowWriter(fa).Run()
	return ap.Map(func(r Erased) Erased {
		return WidenWriter(TellAll(out, r))
	}, f(v))
}

type writerFoldable[W any] struct{}

func (writerFoldable[W]) FoldLeft(m Monoid[Erased], fa Kind[WriterW[W], Erased]) Erased {
	v, _ := NarrowWriter(fa).Run()
	return m.FoldLeft(v)
}

func (writerFoldable[W]) FoldRight(m Monoid[Erased], fa Kind[WriterW[W], Erased]) Erased {
	v, _ := NarrowWriter(fa).Run()
	return m.FoldRight(v)
}

// writerComonad treats a Writer as its (value, output) pair: Extract reads
// the value, Extend keeps the output and replaces the value.
type writerComonad[W any] struct {
	writerMonad[W]
}

func (writerComonad[W]) Extract(fa Kind[WriterW[W], Erased]) Erased {
	v, _ := NarrowWriter(fa).Run()
	return v
}

func (writerComonad[W]) Extend(f func(Kind[WriterW[W], Erased]) Erased, fa Kind[WriterW[W], Erased]) Kind[WriterW[W], Erased] {
	return WidenWriter(WriterMap(NarrowWriter(fa), func(Erased) Erased {
		return f(fa)
	}))
}
