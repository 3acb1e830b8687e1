// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Writer is a computation that produces a value of type A and accumulates
// output of type W (logging, tracing).
//
// Output is threaded through the computation as an append-only slice, so
// sequencing n Tells costs amortized O(n) rather than re-concatenating
// logs at every FlatMap.
type Writer[W, A any] struct {
	run func(out []W) Trampoline[Pair[[]W, Erased]]
}

func (w Writer[W, A]) step(out []W) Trampoline[Pair[[]W, Erased]] {
	if w.run == nil {
		misuse("run of zero Writer")
	}
	return w.run(out)
}

func suspendedWriter[W, A any](f func(out []W) Trampoline[Pair[[]W, Erased]]) Writer[W, A] {
	return Writer[W, A]{run: func(out []W) Trampoline[Pair[[]W, Erased]] {
		return Suspend(func() Trampoline[Pair[[]W, Erased]] { return f(out) })
	}}
}

// WriterOf produces a without output.
func WriterOf[W, A any](a A) Writer[W, A] {
	return Writer[W, A]{run: func(out []W) Trampoline[Pair[[]W, Erased]] {
		return Done(Pair[[]W, Erased]{Fst: out, Snd: a})
	}}
}

// Tell appends w to the output.
func Tell[W any](w W) Writer[W, Unit] {
	return Writer[W, Unit]{run: func(out []W) Trampoline[Pair[[]W, Erased]] {
		return Done(Pair[[]W, Erased]{Fst: append(out, w), Snd: Unit{}})
	}}
}

// TellAll appends ws to the output and produces a.
func TellAll[W, A any](ws []W, a A) Writer[W, A] {
	return Writer[W, A]{run: func(out []W) Trampoline[Pair[[]W, Erased]] {
		return Done(Pair[[]W, Erased]{Fst: append(out, ws...), Snd: a})
	}}
}

// Listen runs body and produces its output alongside its result.
// The output is still appended to the enclosing computation.
func Listen[W, A any](body Writer[W, A]) Writer[W, Pair[A, []W]] {
	return suspendedWriter[W, Pair[A, []W]](func(out []W) Trampoline[Pair[[]W, Erased]] {
		startLen := len(out)
		return TrampolineMap(body.step(out), func(p Pair[[]W, Erased]) Pair[[]W, Erased] {
			written := make([]W, len(p.Fst)-startLen)
			copy(written, p.Fst[startLen:])
			return Pair[[]W, Erased]{Fst: p.Fst, Snd: Pair[A, []W]{Fst: cast[A](p.Snd), Snd: written}}
		})
	})
}

// Censor runs body and replaces the output it wrote with f applied to it.
func Censor[W, A any](f func([]W) []W, body Writer[W, A]) Writer[W, A] {
	return suspendedWriter[W, A](func(out []W) Trampoline[Pair[[]W, Erased]] {
		startLen := len(out)
		return TrampolineMap(body.step(out), func(p Pair[[]W, Erased]) Pair[[]W, Erased] {
			newOutput := f(p.Fst[startLen:])
			return Pair[[]W, Erased]{Fst: append(p.Fst[:startLen], newOutput...), Snd: p.Snd}
		})
	})
}

// WriterMap transforms the value produced by w.
func WriterMap[W, A, B any](w Writer[W, A], f func(A) B) Writer[W, B] {
	return suspendedWriter[W, B](func(out []W) Trampoline[Pair[[]W, Erased]] {
		return TrampolineMap(w.step(out), func(p Pair[[]W, Erased]) Pair[[]W, Erased] {
			return Pair[[]W, Erased]{Fst: p.Fst, Snd: f(cast[A](p.Snd))}
		})
	})
}

// WriterFlatMap runs w, then runs the Writer f selects from its value,
// appending both outputs in order.
func WriterFlatMap[W, A, B any](w Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	return suspendedWriter[W, B](func(out []W) Trampoline[Pair[[]W, Erased]] {
		return TrampolineFlatMap(w.step(out), func(p Pair[[]W, Erased]) Trampoline[Pair[[]W, Erased]] {
			return f(cast[A](p.Snd)).step(p.Fst)
		})
	})
}

// Apply returns the unforced trampoline producing the result and output.
func (w Writer[W, A]) Apply() Trampoline[Pair[A, []W]] {
	return TrampolineMap(w.step(nil), func(p Pair[[]W, Erased]) Pair[A, []W] {
		return Pair[A, []W]{Fst: cast[A](p.Snd), Snd: p.Fst}
	})
}

// Run runs w and returns its result and output.
func (w Writer[W, A]) Run() (A, []W) {
	p := w.step(nil).Run()
	return cast[A](p.Snd), p.Fst
}

// Exec runs w and returns only its output.
func (w Writer[W, A]) Exec() []W {
	_, out := w.Run()
	return out
}

type writerRepr[W any] func(out []W) Trampoline[Pair[[]W, Erased]]

// WidenWriter converts w into its generic handle.
func WidenWriter[W, A any](w Writer[W, A]) Kind[WriterW[W], A] {
	return newKind[WriterW[W], A](writerRepr[W](w.run))
}

// NarrowWriter converts a generic handle back into a Writer.
// Panics if k does not originate from the Writer family with output type W.
func NarrowWriter[W, A any](k Kind[WriterW[W], A]) Writer[W, A] {
	return Writer[W, A]{run: narrowRepr[writerRepr[W]](k)}
}
