// Package opticstest provides rapid generators for the functional value
// types and helpers that check optic laws as property tests.
package opticstest

import (
	"github.com/authcorp/optics/functional"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return functional.Some(valueGen.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}

// EitherGen generates Either[L, R] values.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return functional.Right[L](rightGen.Draw(t, "right"))
		}
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// PairGen generates Pair[A, B] values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[functional.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) functional.Pair[A, B] {
		return functional.NewPair(firstGen.Draw(t, "first"), secondGen.Draw(t, "second"))
	})
}

// TripleGen generates Triple[A, B, C] values.
func TripleGen[A, B, C any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B], thirdGen *rapid.Generator[C]) *rapid.Generator[functional.Triple[A, B, C]] {
	return rapid.Custom(func(t *rapid.T) functional.Triple[A, B, C] {
		return functional.NewTriple(
			firstGen.Draw(t, "first"),
			secondGen.Draw(t, "second"),
			thirdGen.Draw(t, "third"),
		)
	})
}

// EndoGen generates simple int -> int functions for modify laws.
func EndoGen() *rapid.Generator[func(int) int] {
	return rapid.Custom(func(t *rapid.T) func(int) int {
		k := rapid.IntRange(-100, 100).Draw(t, "k")
		switch rapid.IntRange(0, 3).Draw(t, "shape") {
		case 0:
			return func(x int) int { return x + k }
		case 1:
			return func(x int) int { return x * k }
		case 2:
			return func(int) int { return k }
		default:
			return func(x int) int { return -x }
		}
	})
}
