// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tramp provides stack-safe, trampolined state-threading
// computations and a capability registry for writing generic algorithms
// over computation families in Go.
//
// The core type [State] represents a function from an input state to a
// [Trampoline] producing the next state and a value. Composition through
// [Map] and [FlatMap] never nests native calls: every derived computation
// re-enters through a suspension, and [Trampoline.Run] unrolls the result
// in a flat loop with an explicit continuation stack.
//
// # Design Philosophy
//
// tramp provides:
//   - O(1) native stack for arbitrarily deep Map/FlatMap chains and tail-recursive loops
//   - Immutable computation values, safe to share and run concurrently
//   - Capabilities (Functor, Monad, Traverse, ...) as plain values selected by witness type
//
// # Trampoline
//
//   - [Done]: A trampoline that already holds its result
//   - [Suspend]: A trampoline whose next step is produced by a thunk
//   - [TrampolineMap], [TrampolineFlatMap]: Lazy composition
//   - [Trampoline.Run]: Iterative evaluation
//   - [Trampoline.Result]: Peek at a completed trampoline without running it
//
// # State
//
// Construction:
//
//   - [MakeState]: Wrap a plain transition func(S) (S, T)
//   - [Suspended]: Wrap a transition that already returns a trampoline
//   - [Get], [Gets]: Read the state
//   - [Put], [Of]: Replace the state
//   - [Transition], [TransitionWith]: Modify the state
//   - [Constant]: Produce a value, leave the state alone
//
// Composition:
//
//   - [Map], [MapState]: Transform the value or the whole (state, value) pair
//   - [FlatMap]: Sequence a dependent computation
//   - [Combine]: Sequence two computations and merge their values
//   - [ForEach2], [ForEach3], [ForEach4]: Sequence dependent computations without nesting
//   - [TailRec]: Loop until a Right result, in constant stack
//
// Execution:
//
//   - [State.Run]: Returns (final state, value)
//   - [State.Eval], [State.Exec]: Value only, state only
//   - [State.Apply]: The unforced trampoline
//
// Transitions that produce no value return [Nothing], an always-empty [Option].
//
// # Reader and Writer
//
// Two further trampolined families share the same evaluator:
//
//   - [Reader]: [Ask], [Asks], [Local], [ReaderOf], [ReaderMap], [ReaderFlatMap]
//   - [Writer]: [Tell], [TellAll], [Listen], [Censor], [WriterOf], [WriterMap], [WriterFlatMap]
//
// # Witnesses and Handles
//
// Go has no higher-kinded types. A family is named by a zero-sized witness
// type ([StateW], [ReaderW], [WriterW], [OptionW]) and its computations are
// passed to generic code as an opaque [Kind] handle:
//
//   - [WidenState], [WidenReader], [WidenWriter], [WidenOption]: concrete → handle
//   - [NarrowState], [NarrowReader], [NarrowWriter], [NarrowOption]: handle → concrete
//
// Narrowing checks the family tag and the representation type; a handle
// from another family panics instead of producing wrong results.
//
// # Capabilities
//
// [Definitions] bundles a family's [Functor], [Pure], [Applicative],
// [Monad], [MonadZero], [MonadPlus], [MonadRec], [Traverse], [Foldable],
// [Comonad] and [Unfoldable]. Unsupported capabilities are nil.
//
//   - [Instances]: Seedless definitions of a family, cached in the registry
//   - [InstancesWith], [StateInstances], [ReaderInstances]: Definitions seeded with a default input
//   - [Register], [Lookup], [Unregister], [Families]: Registry access for custom families
//
// Generic algorithms work with any registered family:
//
//   - [Fmap], [Lift], [Ap], [Map2], [Bind]
//   - [TailRecM], [DeriveMonadRec]
//   - [FoldLeft], [FoldRight], [FoldMap] with a [Monoid]
//   - [TraverseA], [SequenceA], [EraseApplicative]
//   - [Empty], [Plus], [Extract], [Extend], [Unfold]
//
// Traverse and Foldable for [State] and [Reader] must run the computation
// to observe a value, so they exist only in seeded definitions, and the
// observed value depends on the seed.
//
// # Arrows and bundled values
//
//   - [Kleisli] with [AndThen] and [Compose]; [Cokleisli] with [CokleisliAndThen]
//   - [Active]: a handle with its definitions; [State.AllTypeclasses]
//   - [Nested], [MapM], [NestState], [NestedSequence]
//   - [FamilyProduct], [Coproduct], [StateProduct], [StateCoproduct]
//
// # Example
//
//	counter := tramp.FlatMap(tramp.Transition(func(s int) int { return s * 2 }),
//		func(tramp.Nothing) tramp.State[int, int] {
//			return tramp.Get[int]()
//		})
//	s, v := counter.Run(3)
//	// s == 6, v == 6
//
//	loop := tramp.TailRec(0, func(n int) tramp.State[string, tramp.Either[int, int]] {
//		if n < 3 {
//			return tramp.Constant[string](tramp.Left[int, int](n + 1))
//		}
//		return tramp.Constant[string](tramp.Right[int](n))
//	})
//	// loop.Eval("any") == 3
package tramp
