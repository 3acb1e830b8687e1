// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Reader is a computation with read-only access to an environment of type E.
// Like [State], derived Readers re-enter through a suspension and evaluate
// in a flat loop.
type Reader[E, A any] struct {
	run func(E) Trampoline[Erased]
}

func (r Reader[E, A]) step(env E) Trampoline[Erased] {
	if r.run == nil {
		misuse("run of zero Reader")
	}
	return r.run(env)
}

func suspendedReader[E, A any](f func(E) Trampoline[Erased]) Reader[E, A] {
	return Reader[E, A]{run: func(env E) Trampoline[Erased] {
		return Suspend(func() Trampoline[Erased] { return f(env) })
	}}
}

// ReaderOf ignores the environment and produces a.
func ReaderOf[E, A any](a A) Reader[E, A] {
	return Reader[E, A]{run: func(E) Trampoline[Erased] { return Done[Erased](a) }}
}

// Ask produces the environment.
func Ask[E any]() Reader[E, E] {
	return Reader[E, E]{run: func(env E) Trampoline[Erased] { return Done[Erased](env) }}
}

// Asks produces a projection of the environment.
func Asks[E, A any](f func(E) A) Reader[E, A] {
	return Reader[E, A]{run: func(env E) Trampoline[Erased] { return Done[Erased](f(env)) }}
}

// Local runs r with the environment transformed by f.
func Local[E, A any](f func(E) E, r Reader[E, A]) Reader[E, A] {
	return suspendedReader[E, A](func(env E) Trampoline[Erased] {
		return r.step(f(env))
	})
}

// ReaderMap transforms the value produced by r.
func ReaderMap[E, A, B any](r Reader[E, A], f func(A) B) Reader[E, B] {
	return suspendedReader[E, B](func(env E) Trampoline[Erased] {
		return TrampolineMap(r.step(env), func(v Erased) Erased {
			return f(cast[A](v))
		})
	})
}

// ReaderFlatMap runs r, then runs the Reader f selects from its value
// against the same environment.
func ReaderFlatMap[E, A, B any](r Reader[E, A], f func(A) Reader[E, B]) Reader[E, B] {
	return suspendedReader[E, B](func(env E) Trampoline[Erased] {
		return TrampolineFlatMap(r.step(env), func(v Erased) Trampoline[Erased] {
			return f(cast[A](v)).step(env)
		})
	})
}

// Apply applies r to env and returns the unforced trampoline.
func (r Reader[E, A]) Apply(env E) Trampoline[A] {
	return TrampolineMap(r.step(env), cast[A])
}

// Run runs r against env.
func (r Reader[E, A]) Run(env E) A {
	return cast[A](r.step(env).Run())
}

type readerRepr[E any] func(E) Trampoline[Erased]

// WidenReader converts r into its generic handle.
func WidenReader[E, A any](r Reader[E, A]) Kind[ReaderW[E], A] {
	return newKind[ReaderW[E], A](readerRepr[E](r.run))
}

// NarrowReader converts a generic handle back into a Reader.
// Panics if k does not originate from the Reader family with environment type E.
func NarrowReader[E, A any](k Kind[ReaderW[E], A]) Reader[E, A] {
	return Reader[E, A]{run: narrowRepr[readerRepr[E]](k)}
}
