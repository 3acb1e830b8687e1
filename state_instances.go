// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// StateW is the witness of the State family with state type S.
type StateW[S any] struct{}

func (StateW[S]) WitnessName() string { return "state" }

// Define builds the State capabilities. Traverse and Foldable must run the
// computation to observe its value, so they are present only when seed
// holds a default state of type S.
func (StateW[S]) Define(seed Option[Erased]) *Definitions[StateW[S]] {
	d := monadDefinitions[StateW[S]](stateMonad[S]{})
	if s, ok := seedValue[S](seed, "state"); ok {
		d.Traverse = stateTraverse[S]{seed: s}
		d.Foldable = stateFoldable[S]{seed: s}
	}
	return d
}

// StateInstances returns the State capabilities seeded with a default state.
func StateInstances[S any](seed S) *Definitions[StateW[S]] {
	return InstancesWith[StateW[S]](seed)
}

// seedValue recovers a typed seed. Panics if seed holds a value of another type.
func seedValue[S any](seed Option[Erased], family string) (S, bool) {
	v, ok := seed.Get()
	if !ok {
		var zero S
		return zero, false
	}
	if v == nil {
		var zero S
		return zero, true
	}
	s, ok := v.(S)
	if !ok {
		misuse("seed of foreign type for " + family + " instances")
	}
	return s, true
}

// stateMonad delegates every operation to the concrete State combinators.
type stateMonad[S any] struct{}

func (stateMonad[S]) Map(f func(Erased) Erased, fa Kind[StateW[S], Erased]) Kind[StateW[S], Erased] {
	return WidenState(Map(NarrowState(fa), f))
}

func (stateMonad[S]) Unit(v Erased) Kind[StateW[S], Erased] {
	return WidenState(Constant[S](v))
}

func (stateMonad[S]) Ap(ff Kind[StateW[S], Erased], fa Kind[StateW[S], Erased]) Kind[StateW[S], Erased] {
	a := NarrowState(fa)
	return WidenState(FlatMap(NarrowState(ff), func(fn Erased) State[S, Erased] {
		return Map(a, cast[func(Erased) Erased](fn))
	}))
}

func (stateMonad[S]) FlatMap(f func(Erased) Kind[StateW[S], Erased], fa Kind[StateW[S], Erased]) Kind[StateW[S], Erased] {
	return WidenState(FlatMap(NarrowState(fa), func(v Erased) State[S, Erased] {
		return NarrowState(f(v))
	}))
}

type stateTraverse[S any] struct {
	stateMonad[S]
	seed S
}

// TraverseA evaluates fa from the seed, applies f to the value and lifts a
// constant State around each result inside ap.
func (t stateTraverse[S]) TraverseA(ap Applicative[Witness], f func(Erased) Kind[Witness, Erased], fa Kind[StateW[S], Erased]) Kind[Witness, Erased] {
	v := NarrowState(fa).Eval(t.seed)
	return ap.Map(func(r Erased) Erased {
		return WidenState(Constant[S](r))
	}, f(v))
}

type stateFoldable[S any] struct {
	seed S
}

func (f stateFoldable[S]) FoldLeft(m Monoid[Erased], fa Kind[StateW[S], Erased]) Erased {
	return m.FoldLeft(NarrowState(fa).Eval(f.seed))
}

func (f stateFoldable[S]) FoldRight(m Monoid[Erased], fa Kind[StateW[S], Erased]) Erased {
	return m.FoldRight(NarrowState(fa).Eval(f.seed))
}
