package functional

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestOptionMapPreservesStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("MapOption on Some returns Some(fn(value))", prop.ForAll(
		func(n int) bool {
			fn := func(x int) int { return x * 2 }
			mapped := MapOption(Some(n), fn)
			return mapped.IsSome() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("MapOption on None returns None", prop.ForAll(
		func(n int) bool {
			mapped := MapOption(None[int](), func(x int) int { return x + n })
			return mapped.IsNone()
		},
		gen.Int(),
	))

	properties.Property("ZipOption is present only when both are", prop.ForAll(
		func(a, b int, hasA, hasB bool) bool {
			oa, ob := None[int](), None[int]()
			if hasA {
				oa = Some(a)
			}
			if hasB {
				ob = Some(b)
			}
			z := ZipOption(oa, ob)
			if z.IsSome() != (hasA && hasB) {
				return false
			}
			return z.IsNone() || z.Unwrap() == NewPair(a, b)
		},
		gen.Int(), gen.Int(), gen.Bool(), gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestOptionBasicOperations(t *testing.T) {
	t.Run("Get reports presence", func(t *testing.T) {
		v, ok := Some(42).Get()
		if !ok || v != 42 {
			t.Errorf("expected (42, true), got (%d, %v)", v, ok)
		}
		if _, ok := None[int]().Get(); ok {
			t.Error("expected None to report absence")
		}
	})

	t.Run("FromPair follows comma-ok", func(t *testing.T) {
		m := map[string]int{"a": 1}
		v, ok := m["a"]
		if FromPair(v, ok).Unwrap() != 1 {
			t.Error("expected Some(1)")
		}
		v, ok = m["b"]
		if FromPair(v, ok).IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("Unwrap on None panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		None[string]().Unwrap()
	})

	t.Run("OrElse and UnwrapOr fall back", func(t *testing.T) {
		if None[int]().OrElse(Some(3)).Unwrap() != 3 {
			t.Error("expected fallback option")
		}
		if None[int]().UnwrapOr(7) != 7 {
			t.Error("expected default")
		}
		if Some(1).Filter(func(x int) bool { return x > 1 }).IsSome() {
			t.Error("expected filter to reject")
		}
	})

	t.Run("String renders both states", func(t *testing.T) {
		if Some(5).String() != "Some(5)" || None[int]().String() != "None" {
			t.Errorf("unexpected rendering %s / %s", Some(5), None[int]())
		}
	})
}

func TestEitherBasicOperations(t *testing.T) {
	l := Left[int, string](5)
	r := Right[int]("five")

	if !l.IsLeft() || l.IsRight() || l.LeftValue() != 5 {
		t.Error("expected Left(5)")
	}
	if !r.IsRight() || r.RightValue() != "five" {
		t.Error("expected Right(five)")
	}
	if l.GetRight().IsSome() || r.GetLeft().IsSome() {
		t.Error("expected opposite accessors to be None")
	}
	if r.Swap().LeftValue() != "five" {
		t.Error("expected swapped Left(five)")
	}

	size := MatchEither(r, func(n int) int { return n }, func(s string) int { return len(s) })
	if size != 4 {
		t.Errorf("expected 4, got %d", size)
	}
	if MapEitherRight(r, func(s string) int { return len(s) }).RightValue() != 4 {
		t.Error("expected mapped right")
	}
	if MapEitherLeft(l, func(n int) int { return n + 1 }).LeftValue() != 6 {
		t.Error("expected mapped left")
	}
}

func TestPairAndTriple(t *testing.T) {
	p := NewPair(1, "a")
	a, b := p.Unpack()
	if a != 1 || b != "a" {
		t.Error("unexpected unpack")
	}
	if p.Swap() != NewPair("a", 1) {
		t.Error("unexpected swap")
	}
	if MapPairFirst(p, func(n int) int { return n * 10 }).First != 10 {
		t.Error("unexpected MapPairFirst")
	}
	if MapPairSecond(p, func(s string) int { return len(s) }).Second != 1 {
		t.Error("unexpected MapPairSecond")
	}

	tr := NewTriple(1, 2, 3)
	x, y, z := tr.Unpack()
	if x+y+z != 6 || tr.String() != "(1, 2, 3)" {
		t.Error("unexpected triple")
	}
}
