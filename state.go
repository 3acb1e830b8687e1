// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// State is a state-threading computation: a function from an input state
// to a trampoline producing the next state and a value of type T.
//
// State values are immutable and may be shared and run concurrently with
// different input states. Every combinator returns a new State, and every
// derived State re-enters through a suspension, so arbitrarily long
// Map/FlatMap chains evaluate in a flat loop.
//
// The zero State is invalid; running it panics.
type State[S, T any] struct {
	run func(S) Trampoline[Pair[S, Erased]]
}

// step applies m to s without forcing the trampoline.
func (m State[S, T]) step(s S) Trampoline[Pair[S, Erased]] {
	if m.run == nil {
		misuse("run of zero State")
	}
	return m.run(s)
}

// suspended wraps a transition so that running it first yields a suspension.
func suspended[S, T any](f func(S) Trampoline[Pair[S, Erased]]) State[S, T] {
	return State[S, T]{run: func(s S) Trampoline[Pair[S, Erased]] {
		return Suspend(func() Trampoline[Pair[S, Erased]] {
			return f(s)
		})
	}}
}

// MakeState creates a State from a plain transition function.
// Running it returns the result of f immediately, without suspension.
func MakeState[S, T any](f func(S) (S, T)) State[S, T] {
	return State[S, T]{run: func(s S) Trampoline[Pair[S, Erased]] {
		next, t := f(s)
		return Done(Pair[S, Erased]{Fst: next, Snd: t})
	}}
}

// Suspended creates a State from a transition that already returns a
// trampoline. Running the result suspends before invoking f.
func Suspended[S, T any](f func(S) Trampoline[Pair[S, T]]) State[S, T] {
	return suspended[S, T](func(s S) Trampoline[Pair[S, Erased]] {
		return TrampolineMap(f(s), func(p Pair[S, T]) Pair[S, Erased] {
			return Pair[S, Erased]{Fst: p.Fst, Snd: p.Snd}
		})
	})
}

// Get returns the current state as both the next state and the value.
func Get[S any]() State[S, S] {
	return MakeState(func(s S) (S, S) { return s, s })
}

// Gets projects the current state into the value, leaving the state unchanged.
func Gets[S, T any](f func(S) T) State[S, T] {
	return MakeState(func(s S) (S, T) { return s, f(s) })
}

// Put replaces the state with s and produces no value.
func Put[S any](s S) State[S, Nothing] {
	return MakeState(func(S) (S, Nothing) { return s, None[Unit]() })
}

// Of is an alias for [Put].
func Of[S any](s S) State[S, Nothing] {
	return Put(s)
}

// Transition applies f to the state and produces no value.
func Transition[S any](f func(S) S) State[S, Nothing] {
	return MakeState(func(s S) (S, Nothing) { return f(s), None[Unit]() })
}

// TransitionWith applies f to the state and produces v.
func TransitionWith[S, T any](f func(S) S, v T) State[S, T] {
	return MakeState(func(s S) (S, T) { return f(s), v })
}

// Constant leaves the state untouched and always produces t.
func Constant[S, T any](t T) State[S, T] {
	return MakeState(func(s S) (S, T) { return s, t })
}

// MapState transforms the (state, value) pair produced by m.
func MapState[S, T, R any](m State[S, T], f func(Pair[S, T]) Pair[S, R]) State[S, R] {
	return suspended[S, R](func(s S) Trampoline[Pair[S, Erased]] {
		return TrampolineMap(m.step(s), func(p Pair[S, Erased]) Pair[S, Erased] {
			r := f(Pair[S, T]{Fst: p.Fst, Snd: cast[T](p.Snd)})
			return Pair[S, Erased]{Fst: r.Fst, Snd: r.Snd}
		})
	})
}

// Map transforms the value produced by m, leaving the state untouched.
func Map[S, T, R any](m State[S, T], f func(T) R) State[S, R] {
	return MapState(m, func(p Pair[S, T]) Pair[S, R] {
		return Pair[S, R]{Fst: p.Fst, Snd: f(p.Snd)}
	})
}

// FlatMap runs m, then runs the computation f selects from m's value,
// starting from the state m left behind.
func FlatMap[S, T, R any](m State[S, T], f func(T) State[S, R]) State[S, R] {
	return suspended[S, R](func(s S) Trampoline[Pair[S, Erased]] {
		return TrampolineFlatMap(m.step(s), func(p Pair[S, Erased]) Trampoline[Pair[S, Erased]] {
			return f(cast[T](p.Snd)).step(p.Fst)
		})
	})
}

// Combine sequences m then other and merges their values with combiner.
func Combine[S, T, T2, R any](m State[S, T], other State[S, T2], combiner func(T, T2) R) State[S, R] {
	return FlatMap(m, func(a T) State[S, R] {
		return Map(other, func(b T2) R { return combiner(a, b) })
	})
}

// ForEach2 sequences m with a dependent computation and yields a combined result.
func ForEach2[S, T, R1, R any](
	m State[S, T],
	value2 func(T) State[S, R1],
	yield func(T, R1) R,
) State[S, R] {
	return FlatMap(m, func(a T) State[S, R] {
		return Map(value2(a), func(b R1) R { return yield(a, b) })
	})
}

// ForEach3 sequences three dependent computations and yields a combined result.
func ForEach3[S, T, R1, R2, R any](
	m State[S, T],
	value2 func(T) State[S, R1],
	value3 func(T, R1) State[S, R2],
	yield func(T, R1, R2) R,
) State[S, R] {
	return FlatMap(m, func(a T) State[S, R] {
		return FlatMap(value2(a), func(b R1) State[S, R] {
			return Map(value3(a, b), func(c R2) R { return yield(a, b, c) })
		})
	})
}

// ForEach4 sequences four dependent computations and yields a combined result.
func ForEach4[S, T, R1, R2, R3, R any](
	m State[S, T],
	value2 func(T) State[S, R1],
	value3 func(T, R1) State[S, R2],
	value4 func(T, R1, R2) State[S, R3],
	yield func(T, R1, R2, R3) R,
) State[S, R] {
	return FlatMap(m, func(a T) State[S, R] {
		return FlatMap(value2(a), func(b R1) State[S, R] {
			return FlatMap(value3(a, b), func(c R2) State[S, R] {
				return Map(value4(a, b, c), func(d R3) R { return yield(a, b, c, d) })
			})
		})
	})
}

// TailRec repeatedly applies f, starting from initial. A Left result
// continues the loop with the new seed; a Right result ends it.
//
// The loop is driven through the State family's MonadRec capability and
// costs O(1) native stack however many iterations it takes. A step
// function that never returns Right loops forever.
func TailRec[S, T, R any](initial T, f func(T) State[S, Either[T, R]]) State[S, R] {
	rec := DeriveMonadRec[StateW[S]](stateMonad[S]{})
	return NarrowState(TailRecM(rec, initial, func(t T) Kind[StateW[S], Either[T, R]] {
		return WidenState(f(t))
	}))
}

// Apply applies m to s and returns the unforced trampoline.
func (m State[S, T]) Apply(s S) Trampoline[Pair[S, T]] {
	return TrampolineMap(m.step(s), func(p Pair[S, Erased]) Pair[S, T] {
		return Pair[S, T]{Fst: p.Fst, Snd: cast[T](p.Snd)}
	})
}

// Run runs m from state s and returns the final state and value.
func (m State[S, T]) Run(s S) (S, T) {
	p := m.step(s).Run()
	return p.Fst, cast[T](p.Snd)
}

// Eval runs m from state s and returns only the value.
func (m State[S, T]) Eval(s S) T {
	_, t := m.Run(s)
	return t
}

// Exec runs m from state s and returns only the final state.
func (m State[S, T]) Exec(s S) S {
	next, _ := m.Run(s)
	return next
}

// stateRepr is the erased representation of every State[S, T] behind a
// Kind[StateW[S], T] handle.
type stateRepr[S any] func(S) Trampoline[Pair[S, Erased]]

// WidenState converts m into its generic handle.
func WidenState[S, T any](m State[S, T]) Kind[StateW[S], T] {
	return newKind[StateW[S], T](stateRepr[S](m.run))
}

// NarrowState converts a generic handle back into a State.
// Panics if k does not originate from the State family with state type S.
func NarrowState[S, T any](k Kind[StateW[S], T]) State[S, T] {
	return State[S, T]{run: narrowRepr[stateRepr[S]](k)}
}
