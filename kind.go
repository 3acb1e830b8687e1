// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Witness is implemented by the zero-sized marker types that name a
// computation family. A witness carries no runtime data; its name is the
// discriminant checked when a generic handle is narrowed.
type Witness interface {
	WitnessName() string
}

// Family is the F-bounded interface for witnesses that can build their own
// capability definitions. The self-referencing constraint W Family[W] lets
// [Instances] and [InstancesWith] select the family statically.
//
// seed is the default input used by capabilities that must run a
// computation to observe its value (Traverse, Foldable). Families that
// need a seed leave those capabilities nil when seed is empty.
type Family[W Witness] interface {
	Witness
	Define(seed Option[Erased]) *Definitions[W]
}

// Kind is the opaque generic handle of a computation in family W
// producing values of type A.
//
// Kind holds the family's erased representation; A is a phantom. Handles
// are created by the per-family Widen functions and converted back by the
// matching Narrow functions, the only place where the generic and concrete
// worlds meet.
type Kind[W Witness, A any] struct {
	tag  string
	repr any
}

// Family returns the name of the family that produced k, or "" for the
// zero handle.
func (k Kind[W, A]) Family() string {
	return k.tag
}

func newKind[W Witness, A any](repr any) Kind[W, A] {
	var w W
	return Kind[W, A]{tag: w.WitnessName(), repr: repr}
}

// rekind re-tags a handle. The representation is shared, so this is free.
func rekind[W2 Witness, B any, W1 Witness, A any](k Kind[W1, A]) Kind[W2, B] {
	return Kind[W2, B]{tag: k.tag, repr: k.repr}
}

// narrowRepr is the single checked cast from a generic handle to a family
// representation. The tag check rejects handles of other families; the
// assertion rejects handles of the same family with different parameters.
func narrowRepr[R any, W Witness, A any](k Kind[W, A]) R {
	var w W
	name := w.WitnessName()
	if k.tag != name {
		if k.tag == "" {
			misuse("narrow of zero handle to " + name)
		}
		misuse("narrow of " + k.tag + " handle to " + name)
	}
	r, ok := k.repr.(R)
	if !ok {
		misuse("narrow of " + name + " handle with foreign type parameters")
	}
	return r
}

// WrapKind creates a handle of family W around repr. Custom families use it
// in their Widen functions.
func WrapKind[W Witness, A any](repr any) Kind[W, A] {
	return newKind[W, A](repr)
}

// UnwrapKind recovers the representation of k as R.
// Panics if k was not produced by family W or does not hold an R.
func UnwrapKind[R any, W Witness, A any](k Kind[W, A]) R {
	return narrowRepr[R](k)
}
