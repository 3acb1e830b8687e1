// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// node is the marker interface for trampoline steps.
// Dispatch uses type switches, not tags.
type node interface {
	node() // unexported marker method
}

// continuation resumes a bind node with the value of its sub-computation.
type continuation func(Erased) node

// doneNode holds a fully computed result.
type doneNode struct {
	value Erased
}

func (doneNode) node() {}

// suspendNode holds a thunk that yields the next step when invoked.
type suspendNode struct {
	thunk func() node
}

func (suspendNode) node() {}

// bindNode sequences sub into k. The evaluator pushes k onto its
// continuation stack instead of nesting a native call, so left-nested
// FlatMap chains flatten in a loop.
type bindNode struct {
	sub node
	k   continuation
}

func (bindNode) node() {}

// Trampoline is a computation that either already holds a result ([Done])
// or must be resumed to make progress ([Suspend]). Evaluation by
// [Trampoline.Run] uses O(1) native stack regardless of how many suspensions
// or flat-maps are chained.
//
// The zero Trampoline is invalid; running it panics.
type Trampoline[A any] struct {
	n node
}

// Done creates a trampoline that already holds a.
func Done[A any](a A) Trampoline[A] {
	return Trampoline[A]{n: doneNode{value: a}}
}

// Suspend creates a trampoline whose next step is produced by thunk.
// The thunk is not invoked until the trampoline is run.
func Suspend[A any](thunk func() Trampoline[A]) Trampoline[A] {
	return Trampoline[A]{n: suspendNode{thunk: func() node {
		return thunk().n
	}}}
}

// TrampolineMap transforms the eventual value of t.
// Construction is lazy: neither t nor f is evaluated here.
func TrampolineMap[A, B any](t Trampoline[A], f func(A) B) Trampoline[B] {
	return Trampoline[B]{n: bindNode{sub: t.n, k: func(v Erased) node {
		return doneNode{value: f(cast[A](v))}
	}}}
}

// TrampolineFlatMap sequences t into the dependent trampoline produced by f.
// Both the evaluation of t and the application of f are deferred until run.
func TrampolineFlatMap[A, B any](t Trampoline[A], f func(A) Trampoline[B]) Trampoline[B] {
	return Trampoline[B]{n: bindNode{sub: t.n, k: func(v Erased) node {
		return f(cast[A](v)).n
	}}}
}

// Result returns the value and true if t is already [Done], without
// evaluating anything. Suspended trampolines return zero and false.
func (t Trampoline[A]) Result() (A, bool) {
	if d, ok := t.n.(doneNode); ok {
		return cast[A](d.value), true
	}
	var zero A
	return zero, false
}

// Run evaluates t to completion.
//
// Panics raised by thunks or continuations propagate to the caller
// unchanged. A thunk that keeps returning new suspensions loops forever.
func (t Trampoline[A]) Run() A {
	return cast[A](evaluate(t.n))
}

// evaluate is the iterative trampoline loop. The only mutable state is the
// current step and the continuation stack, both local to one call.
func evaluate(current node) Erased {
	ks := acquireStack()
	defer releaseStack(ks)
	for {
		switch n := current.(type) {
		case doneNode:
			top := len(*ks) - 1
			if top < 0 {
				return n.value
			}
			k := (*ks)[top]
			(*ks)[top] = nil
			*ks = (*ks)[:top]
			current = k(n.value)
		case suspendNode:
			current = n.thunk()
		case bindNode:
			*ks = append(*ks, n.k)
			current = n.sub
		case nil:
			misuse("run of zero Trampoline")
		default:
			misuse("unknown trampoline node")
		}
	}
}
