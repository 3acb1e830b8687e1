// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

import "sync"

// Continuation stacks for the trampoline evaluator.
// Each Run acquires its own stack and releases it on every exit path,
// including panics raised by user thunks. Stacks are never shared
// between concurrent runs.

// maxPooledStack bounds the capacity of stacks returned to the pool so that
// one very deep left-nested chain does not pin a large backing array.
const maxPooledStack = 1 << 12

var stackPool = sync.Pool{New: func() any {
	s := make([]continuation, 0, 16)
	return &s
}}

func acquireStack() *[]continuation {
	return stackPool.Get().(*[]continuation)
}

// releaseStack zeroes ks and returns it to the pool; oversized stacks are dropped.
func releaseStack(ks *[]continuation) {
	if cap(*ks) > maxPooledStack {
		return
	}
	clear(*ks)
	*ks = (*ks)[:0]
	stackPool.Put(ks)
}
