// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Erased represents a type-erased value flowing through trampoline nodes and
// capability dispatch. Concrete types are recovered via checked assertions
// at the typed API boundary.
type Erased = any

// Unit is the type of computations that produce no interesting value.
type Unit struct{}

// cast recovers a concrete value from the erased representation.
// A nil Erased is read as the zero value of A, so computations whose
// result type is an interface or pointer may carry nil.
func cast[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// misuse panics with a descriptive message for programmer errors.
// Extracted as a noinline function so that callers remain inlineable.
//
//go:noinline
func misuse(msg string) {
	panic("tramp: " + msg)
}
