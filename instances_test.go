// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/tramp"
)

// double is written once against Functor and works for every family.
func double[W tramp.Witness](f tramp.Functor[W], k tramp.Kind[W, int]) tramp.Kind[W, int] {
	return tramp.Fmap(f, func(x int) int { return x * 2 }, k)
}

func TestGenericAlgorithmAcrossFamilies(t *testing.T) {
	st := tramp.Instances[tramp.StateW[string]]()
	rd := tramp.Instances[tramp.ReaderW[int]]()
	wr := tramp.Instances[tramp.WriterW[string]]()
	op := tramp.Instances[tramp.OptionW]()

	s := double(st.Functor, tramp.WidenState(tramp.Gets(func(s string) int { return len(s) })))
	require.Equal(t, 6, tramp.NarrowState(s).Eval("abc"))

	r := double(rd.Functor, tramp.WidenReader(tramp.Ask[int]()))
	require.Equal(t, 14, tramp.NarrowReader(r).Run(7))

	w := double(wr.Functor, tramp.WidenWriter(tramp.TellAll([]string{"x"}, 5)))
	v, out := tramp.NarrowWriter(w).Run()
	require.Equal(t, 10, v)
	require.Equal(t, []string{"x"}, out)

	o := double(op.Functor, tramp.WidenOption(tramp.Some(21)))
	require.Equal(t, tramp.Some(42), tramp.NarrowOption(o))
}

func TestStateLiftApMap2(t *testing.T) {
	defs := tramp.Instances[tramp.StateW[int]]()

	lifted := tramp.Lift(defs.Pure, "x")
	s, v := tramp.NarrowState(lifted).Run(3)
	require.Equal(t, 3, s)
	require.Equal(t, "x", v)

	ff := tramp.WidenState(tramp.Constant[int](func(x int) string { return "n=" + strconv.Itoa(x) }))
	applied := tramp.Ap(defs.Applicative, ff, tramp.WidenState(tick(1)))
	s, v = tramp.NarrowState(applied).Run(10)
	require.Equal(t, 11, s)
	require.Equal(t, "n=10", v)

	both := tramp.Map2(defs.Applicative, func(a, b int) string {
		return strconv.Itoa(a) + "," + strconv.Itoa(b)
	}, tramp.WidenState(tick(1)), tramp.WidenState(tick(10)))
	s, v = tramp.NarrowState(both).Run(0)
	require.Equal(t, 11, s)
	require.Equal(t, "0,1", v)
}

func TestStateTailRecMDeep(t *testing.T) {
	defs := tramp.Instances[tramp.StateW[int]]()
	k := tramp.TailRecM(defs.MonadRec, 0, func(n int) tramp.Kind[tramp.StateW[int], tramp.Either[int, int]] {
		if n == deepN {
			return tramp.WidenState(tramp.Gets(tramp.Right[int, int]))
		}
		return tramp.WidenState(tramp.TransitionWith(func(s int) int { return s + 1 }, tramp.Left[int, int](n+1)))
	})
	s, v := tramp.NarrowState(k).Run(0)
	require.Equal(t, deepN, s)
	require.Equal(t, deepN, v)
}

func TestTailRecStepMustYieldEither(t *testing.T) {
	rec := tramp.DeriveMonadRec(tramp.Instances[tramp.StateW[int]]().Monad)
	k := rec.TailRec(0, func(v tramp.Erased) tramp.Kind[tramp.StateW[int], tramp.Erased] {
		return tramp.Instances[tramp.StateW[int]]().Pure.Unit("not an either")
	})
	require.PanicsWithValue(t, "tramp: tail recursion step did not yield an Either", func() {
		tramp.NarrowState(k).Run(0)
	})
}

func TestReaderInstances(t *testing.T) {
	defs := tramp.Instances[tramp.ReaderW[int]]()
	k := tramp.Bind(defs.Monad, func(x int) tramp.Kind[tramp.ReaderW[int], string] {
		return tramp.WidenReader(tramp.Asks(func(e int) string { return strconv.Itoa(x + e) }))
	}, tramp.WidenReader(tramp.Ask[int]()))
	require.Equal(t, "8", tramp.NarrowReader(k).Run(4))

	loop := tramp.TailRecM(defs.MonadRec, 0, func(n int) tramp.Kind[tramp.ReaderW[int], tramp.Either[int, int]] {
		return tramp.WidenReader(tramp.Asks(func(limit int) tramp.Either[int, int] {
			if n == limit {
				return tramp.Right[int](n)
			}
			return tramp.Left[int, int](n + 1)
		}))
	})
	require.Equal(t, deepN, tramp.NarrowReader(loop).Run(deepN))

	seeded := tramp.ReaderInstances(3)
	sum := tramp.FoldRight(seeded.Foldable, tramp.Sum[int](), tramp.WidenReader(tramp.Asks(func(e int) int { return e * 5 })))
	require.Equal(t, 15, sum)
}

func TestOptionMonadZeroPlus(t *testing.T) {
	defs := tramp.Instances[tramp.OptionW]()

	require.True(t, tramp.NarrowOption(tramp.Empty[tramp.OptionW, int](defs.MonadZero)).IsEmpty())

	none := tramp.WidenOption(tramp.None[int]())
	some := tramp.WidenOption(tramp.Some(2))
	require.Equal(t, tramp.Some(2), tramp.NarrowOption(tramp.Plus(defs.MonadPlus, none, some)))
	require.Equal(t, tramp.Some(2), tramp.NarrowOption(tramp.Plus(defs.MonadPlus, some, tramp.WidenOption(tramp.Some(9)))))

	ff := tramp.WidenOption(tramp.Some(func(x int) int { return x + 1 }))
	require.Equal(t, tramp.Some(3), tramp.NarrowOption(tramp.Ap(defs.Applicative, ff, some)))
	require.True(t, tramp.NarrowOption(tramp.Ap(defs.Applicative, ff, none)).IsEmpty())
}

func TestOptionTailRec(t *testing.T) {
	defs := tramp.Instances[tramp.OptionW]()
	done := tramp.TailRecM(defs.MonadRec, 0, func(n int) tramp.Kind[tramp.OptionW, tramp.Either[int, string]] {
		if n == deepN {
			return tramp.WidenOption(tramp.Some(tramp.Right[int]("done")))
		}
		return tramp.WidenOption(tramp.Some(tramp.Left[int, string](n + 1)))
	})
	require.Equal(t, tramp.Some("done"), tramp.NarrowOption(done))

	aborted := tramp.TailRecM(defs.MonadRec, 0, func(n int) tramp.Kind[tramp.OptionW, tramp.Either[int, string]] {
		if n == 5 {
			return tramp.WidenOption(tramp.None[tramp.Either[int, string]]())
		}
		return tramp.WidenOption(tramp.Some(tramp.Left[int, string](n + 1)))
	})
	require.True(t, tramp.NarrowOption(aborted).IsEmpty())
}

func TestOptionUnfold(t *testing.T) {
	defs := tramp.Instances[tramp.OptionW]()
	k := tramp.Unfold(defs.Unfoldable, 1, func(s int) tramp.Option[tramp.Pair[string, int]] {
		return tramp.Some(tramp.MakePair(strconv.Itoa(s), s+1))
	})
	require.Equal(t, tramp.Some("1"), tramp.NarrowOption(k))

	empty := tramp.Unfold(defs.Unfoldable, 1, func(int) tramp.Option[tramp.Pair[string, int]] {
		return tramp.None[tramp.Pair[string, int]]()
	})
	require.True(t, tramp.NarrowOption(empty).IsEmpty())
}

func TestOptionFoldable(t *testing.T) {
	defs := tramp.Instances[tramp.OptionW]()
	require.Equal(t, 0, tramp.FoldLeft(defs.Foldable, tramp.Sum[int](), tramp.WidenOption(tramp.None[int]())))
	require.Equal(t, 4, tramp.FoldMap(defs.Foldable, defs.Functor, tramp.Sum[int](), func(s string) int {
		return len(s)
	}, tramp.WidenOption(tramp.Some("four"))))
}

func TestTraverseStateThroughOption(t *testing.T) {
	st := tramp.StateInstances(3)
	op := tramp.Instances[tramp.OptionW]()
	fa := tramp.WidenState(tramp.Gets(func(s int) int { return s * 2 }))

	out := tramp.TraverseA(st.Traverse, op.Applicative, func(x int) tramp.Kind[tramp.OptionW, string] {
		return tramp.WidenOption(tramp.Some(strconv.Itoa(x)))
	}, fa)
	inner, ok := tramp.NarrowOption(out).Get()
	require.True(t, ok)
	s, v := tramp.NarrowState(inner).Run(100)
	require.Equal(t, 100, s)
	require.Equal(t, "6", v)

	rejected := tramp.TraverseA(st.Traverse, op.Applicative, func(int) tramp.Kind[tramp.OptionW, string] {
		return tramp.WidenOption(tramp.None[string]())
	}, fa)
	require.True(t, tramp.NarrowOption(rejected).IsEmpty())
}

func TestTraverseDependsOnSeed(t *testing.T) {
	op := tramp.Instances[tramp.OptionW]()
	fa := tramp.WidenState(tramp.Get[int]())
	pick := func(x int) tramp.Kind[tramp.OptionW, int] { return tramp.WidenOption(tramp.Some(x)) }

	a, _ := tramp.NarrowOption(tramp.TraverseA(tramp.StateInstances(1).Traverse, op.Applicative, pick, fa)).Get()
	b, _ := tramp.NarrowOption(tramp.TraverseA(tramp.StateInstances(2).Traverse, op.Applicative, pick, fa)).Get()
	require.Equal(t, 1, tramp.NarrowState(a).Eval(0))
	require.Equal(t, 2, tramp.NarrowState(b).Eval(0))
}

func TestSequenceWriterOfOption(t *testing.T) {
	wr := tramp.Instances[tramp.WriterW[string]]()
	op := tramp.Instances[tramp.OptionW]()

	fa := tramp.WidenWriter(tramp.TellAll([]string{"log"}, tramp.WidenOption(tramp.Some(4))))
	out := tramp.SequenceA(wr.Traverse, op.Applicative, fa)
	inner, ok := tramp.NarrowOption(out).Get()
	require.True(t, ok)
	v, log := tramp.NarrowWriter(inner).Run()
	require.Equal(t, 4, v)
	require.Equal(t, []string{"log"}, log)
}

func TestSequenceOptionOfReader(t *testing.T) {
	op := tramp.Instances[tramp.OptionW]()
	rd := tramp.Instances[tramp.ReaderW[int]]()

	fa := tramp.WidenOption(tramp.Some(tramp.WidenReader(tramp.Asks(func(e int) int { return e + 1 }))))
	out := tramp.SequenceA(op.Traverse, rd.Applicative, fa)
	require.Equal(t, tramp.Some(10), tramp.NarrowOption(tramp.NarrowReader(out).Run(9)))

	empty := tramp.WidenOption(tramp.None[tramp.Kind[tramp.ReaderW[int], int]]())
	require.True(t, tramp.NarrowOption(tramp.NarrowReader(tramp.SequenceA(op.Traverse, rd.Applicative, empty)).Run(9)).IsEmpty())
}

func TestWriterComonad(t *testing.T) {
	defs := tramp.Instances[tramp.WriterW[string]]()
	k := tramp.WidenWriter(tramp.TellAll([]string{"a", "b"}, 7))

	require.Equal(t, 7, tramp.Extract(defs.Comonad, k))

	counted := tramp.Extend(defs.Comonad, func(w tramp.Kind[tramp.WriterW[string], int]) int {
		return len(tramp.NarrowWriter(w).Exec())
	}, k)
	v, out := tramp.NarrowWriter(counted).Run()
	require.Equal(t, 2, v)
	require.Equal(t, []string{"a", "b"}, out)
}

func TestWriterFoldAndTailRec(t *testing.T) {
	defs := tramp.Instances[tramp.WriterW[int]]()
	sum := tramp.FoldMap(defs.Foldable, defs.Functor, tramp.Sum[int](), func(s string) int {
		return len(s)
	}, tramp.WidenWriter(tramp.WriterOf[int]("hello")))
	require.Equal(t, 5, sum)

	loop := tramp.TailRecM(defs.MonadRec, 0, func(n int) tramp.Kind[tramp.WriterW[int], tramp.Either[int, int]] {
		if n == deepN {
			return tramp.WidenWriter(tramp.WriterOf[int](tramp.Right[int](n)))
		}
		return tramp.WidenWriter(tramp.TellAll([]int{n}, tramp.Left[int, int](n+1)))
	})
	v, out := tramp.NarrowWriter(loop).Run()
	require.Equal(t, deepN, v)
	require.Len(t, out, deepN)
	require.Equal(t, deepN-1, out[deepN-1])
}

func TestStateFoldableUsesSeed(t *testing.T) {
	defs := tramp.StateInstances("seed")
	k := tramp.WidenState(tramp.Gets(func(s string) string { return s + "!" }))
	require.Equal(t, "seed!", tramp.FoldLeft(defs.Foldable, tramp.StringConcat(), k))
	require.Equal(t, "seed!", tramp.FoldRight(defs.Foldable, tramp.StringConcat(), k))
}
