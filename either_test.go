// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/tramp"
)

func TestEitherLeft(t *testing.T) {
	e := tramp.Left[string, int]("more")

	if !e.IsLeft() {
		t.Fatal("expected IsLeft true")
	}
	if e.IsRight() {
		t.Fatal("expected IsRight false")
	}
	l, ok := e.GetLeft()
	if !ok || l != "more" {
		t.Fatalf("GetLeft = (%q, %v), want (\"more\", true)", l, ok)
	}
	if _, ok := e.GetRight(); ok {
		t.Fatal("GetRight should return false")
	}
}

func TestEitherRight(t *testing.T) {
	e := tramp.Right[string, int](42)

	if e.IsLeft() {
		t.Fatal("expected IsLeft false")
	}
	val, ok := e.GetRight()
	if !ok || val != 42 {
		t.Fatalf("GetRight = (%d, %v), want (42, true)", val, ok)
	}
}

func TestEitherVisit(t *testing.T) {
	var seen string
	tramp.Right[int]("r").Visit(func(int) { seen = "left" }, func(r string) { seen = r })
	if seen != "r" {
		t.Fatalf("got %q, want %q", seen, "r")
	}
	tramp.Left[int, string](1).Visit(func(int) { seen = "left" }, func(r string) { seen = r })
	if seen != "left" {
		t.Fatalf("got %q, want %q", seen, "left")
	}
}

func TestMatchEither(t *testing.T) {
	show := func(e tramp.Either[int, string]) string {
		return tramp.MatchEither(e, strconv.Itoa, func(s string) string { return "R:" + s })
	}
	if got := show(tramp.Left[int, string](5)); got != "5" {
		t.Fatalf("got %q", got)
	}
	if got := show(tramp.Right[int]("x")); got != "R:x" {
		t.Fatalf("got %q", got)
	}
}

func TestMapEither(t *testing.T) {
	r := tramp.MapEither(tramp.Right[string](21), func(x int) int { return x * 2 })
	if v, _ := r.GetRight(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
	l := tramp.MapEither(tramp.Left[string, int]("err"), func(x int) int { return x * 2 })
	if v, _ := l.GetLeft(); v != "err" {
		t.Fatalf("got %q, want %q", v, "err")
	}
}

func TestMapLeftEither(t *testing.T) {
	e := tramp.MapLeftEither(tramp.Left[int, bool](3), strconv.Itoa)
	if v, _ := e.GetLeft(); v != "3" {
		t.Fatalf("got %q, want %q", v, "3")
	}
}
