package optics

import (
	"strconv"

	"github.com/authcorp/optics/functional"
)

// PPrism focuses on one case of a sum type. TryGet fails when the whole is
// in another case; Inject always builds a whole in the focused case.
type PPrism[S, T, A, B any] struct {
	tryGet func(S) functional.Option[A]
	inject func(B) T
}

// Prism is a PPrism that does not change types.
type Prism[S, A any] = PPrism[S, S, A, A]

// NewPrism creates a prism from tryGet and inject functions.
func NewPrism[S, A any](tryGet func(S) functional.Option[A], inject func(A) S) Prism[S, A] {
	return Prism[S, A]{tryGet: tryGet, inject: inject}
}

// NewPPrism creates a type-changing prism.
func NewPPrism[S, T, A, B any](tryGet func(S) functional.Option[A], inject func(B) T) PPrism[S, T, A, B] {
	return PPrism[S, T, A, B]{tryGet: tryGet, inject: inject}
}

// TryGet attempts to extract the focused value.
func (p PPrism[S, T, A, B]) TryGet(source S) functional.Option[A] {
	return p.tryGet(source)
}

// Inject constructs a whole from the focused value.
func (p PPrism[S, T, A, B]) Inject(value B) T {
	return p.inject(value)
}

// IsCase reports whether source is in the focused case.
func (p PPrism[S, T, A, B]) IsCase(source S) bool {
	return p.tryGet(source).IsSome()
}

// TryModify injects fn of the focused value, or returns None when source is
// not in the focused case.
func (p PPrism[S, T, A, B]) TryModify(source S, fn func(A) B) functional.Option[T] {
	a, ok := p.tryGet(source).Get()
	if !ok {
		return functional.None[T]()
	}
	return functional.Some(p.inject(fn(a)))
}

// TrySet injects value only when source is already in the focused case.
func (p PPrism[S, T, A, B]) TrySet(source S, value B) functional.Option[T] {
	if p.tryGet(source).IsNone() {
		return functional.None[T]()
	}
	return functional.Some(p.inject(value))
}

// ToAffine widens the prism into an affine whose set fails outside the
// focused case.
func (p PPrism[S, T, A, B]) ToAffine() PAffine[S, T, A, B] {
	return PAffine[S, T, A, B]{
		tryGet: p.tryGet,
		trySet: p.TrySet,
	}
}

// OverPrism applies fn to the focused value, or returns source unchanged
// when it is not in the focused case.
func OverPrism[S, A any](p Prism[S, A], source S, fn func(A) A) S {
	return p.TryModify(source, fn).UnwrapOr(source)
}

// SetPrism replaces the focused value, or returns source unchanged when it
// is not in the focused case.
func SetPrism[S, A any](p Prism[S, A], source S, value A) S {
	return p.TrySet(source, value).UnwrapOr(source)
}

// ComposePrism creates a prism focusing deeper. TryGet stops at the first
// mismatch; Inject always succeeds.
func ComposePrism[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PPrism[A, B, C, D]) PPrism[S, T, C, D] {
	return PPrism[S, T, C, D]{
		tryGet: func(s S) functional.Option[C] {
			return functional.FlatMapOption(outer.tryGet(s), inner.tryGet)
		},
		inject: func(d D) T {
			return outer.inject(inner.inject(d))
		},
	}
}

// ZipPrism combines prisms over mutually exclusive cases of the same whole.
// TryGet tries first, then second, tagging the match Left or Right; Inject
// dispatches on the tag.
func ZipPrism[S, A, B any](first Prism[S, A], second Prism[S, B]) Prism[S, functional.Either[A, B]] {
	return Prism[S, functional.Either[A, B]]{
		tryGet: func(s S) functional.Option[functional.Either[A, B]] {
			if a, ok := first.tryGet(s).Get(); ok {
				return functional.Some(functional.Left[A, B](a))
			}
			if b, ok := second.tryGet(s).Get(); ok {
				return functional.Some(functional.Right[A](b))
			}
			return functional.None[functional.Either[A, B]]()
		},
		inject: func(e functional.Either[A, B]) S {
			return functional.MatchEither(e, first.inject, second.inject)
		},
	}
}

// SomePrism focuses on the Some case of an Option.
func SomePrism[T any]() Prism[functional.Option[T], T] {
	return Prism[functional.Option[T], T]{
		tryGet: func(o functional.Option[T]) functional.Option[T] { return o },
		inject: functional.Some[T],
	}
}

// LeftPrism focuses on the Left case of an Either.
func LeftPrism[L, R any]() Prism[functional.Either[L, R], L] {
	return Prism[functional.Either[L, R], L]{
		tryGet: functional.Either[L, R].GetLeft,
		inject: functional.Left[L, R],
	}
}

// RightPrism focuses on the Right case of an Either.
func RightPrism[L, R any]() Prism[functional.Either[L, R], R] {
	return Prism[functional.Either[L, R], R]{
		tryGet: functional.Either[L, R].GetRight,
		inject: functional.Right[L, R],
	}
}

// Decimal focuses on the integer spelled by a canonical base-10 string.
// Non-canonical spellings such as "007" or "+7" do not match, so that
// injecting the parsed value reproduces the original string.
func Decimal() Prism[string, int] {
	return Prism[string, int]{
		tryGet: func(s string) functional.Option[int] {
			n, err := strconv.Atoi(s)
			if err != nil || strconv.Itoa(n) != s {
				return functional.None[int]()
			}
			return functional.Some(n)
		},
		inject: strconv.Itoa,
	}
}
