// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Option holds zero or one value.
type Option[A any] struct {
	ok    bool
	value A
}

// Nothing is the result type of state transitions that produce no value.
// Values of type Nothing are always empty.
type Nothing = Option[Unit]

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{ok: true, value: a}
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsEmpty reports whether the Option holds no value.
func (o Option[A]) IsEmpty() bool {
	return !o.ok
}

// IsPresent reports whether the Option holds a value.
func (o Option[A]) IsPresent() bool {
	return o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// OrElse returns the value, or alt when empty.
func (o Option[A]) OrElse(alt A) A {
	if o.ok {
		return o.value
	}
	return alt
}

// MapOption applies f to the value if present.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two Option computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.ok {
		return f(o.value)
	}
	return None[B]()
}

// OrElseOption returns o when present and alt otherwise.
func OrElseOption[A any](o, alt Option[A]) Option[A] {
	if o.ok {
		return o
	}
	return alt
}
