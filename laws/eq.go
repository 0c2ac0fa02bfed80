package laws

import (
	"maps"
	"slices"

	"github.com/authcorp/optics/functional"
)

// Eq decides whether two values are equal. Laws take equality as a
// capability so that any focus or whole type can be checked.
type Eq[T any] func(x, y T) bool

// Equal is == for comparable types.
func Equal[T comparable]() Eq[T] {
	return func(x, y T) bool { return x == y }
}

// SliceEq compares slices element-wise with eq. A nil slice equals an
// empty one.
func SliceEq[T any](eq Eq[T]) Eq[[]T] {
	return func(x, y []T) bool {
		return slices.EqualFunc(x, y, eq)
	}
}

// MapEq compares maps entry-wise with eq. A nil map equals an empty one.
func MapEq[K comparable, V any](eq Eq[V]) Eq[map[K]V] {
	return func(x, y map[K]V) bool {
		return maps.EqualFunc(x, y, eq)
	}
}

// OptionEq compares options: both None, or both Some with equal values.
func OptionEq[T any](eq Eq[T]) Eq[functional.Option[T]] {
	return func(x, y functional.Option[T]) bool {
		xv, xok := x.Get()
		yv, yok := y.Get()
		if xok != yok {
			return false
		}
		return !xok || eq(xv, yv)
	}
}

// EitherEq compares eithers tag first, then value.
func EitherEq[L, R any](left Eq[L], right Eq[R]) Eq[functional.Either[L, R]] {
	return func(x, y functional.Either[L, R]) bool {
		if x.IsRight() != y.IsRight() {
			return false
		}
		if x.IsRight() {
			return right(x.RightValue(), y.RightValue())
		}
		return left(x.LeftValue(), y.LeftValue())
	}
}

// PairEq compares pairs component-wise.
func PairEq[A, B any](first Eq[A], second Eq[B]) Eq[functional.Pair[A, B]] {
	return func(x, y functional.Pair[A, B]) bool {
		return first(x.First, y.First) && second(x.Second, y.Second)
	}
}

// TripleEq compares triples component-wise.
func TripleEq[A, B, C any](first Eq[A], second Eq[B], third Eq[C]) Eq[functional.Triple[A, B, C]] {
	return func(x, y functional.Triple[A, B, C]) bool {
		return first(x.First, y.First) && second(x.Second, y.Second) && third(x.Third, y.Third)
	}
}
